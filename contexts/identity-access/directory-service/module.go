package directoryservice

import (
	"log/slog"

	httpadapter "quotient/contexts/identity-access/directory-service/adapters/http"
	"quotient/contexts/identity-access/directory-service/adapters/memory"
	"quotient/contexts/identity-access/directory-service/application"
	"quotient/contexts/identity-access/directory-service/domain/entities"
	"quotient/contexts/identity-access/directory-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Users  ports.UserRepository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Users:  deps.Users,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(seed []entities.User, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Users:  store,
		Clock:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
