package notificationservice

import (
	"log/slog"

	httpadapter "quotient/contexts/marketplace/notification-service/adapters/http"
	"quotient/contexts/marketplace/notification-service/adapters/memory"
	"quotient/contexts/marketplace/notification-service/application"
	"quotient/contexts/marketplace/notification-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Notifications ports.NotificationRepository
	Directory     ports.Directory
	Live          ports.LivePublisher
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Notifications: deps.Notifications,
		Directory:     deps.Directory,
		Live:          deps.Live,
		Clock:         deps.Clock,
		IDGen:         deps.IDGen,
		Logger:        deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(directory ports.Directory, live ports.LivePublisher, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Notifications: store,
		Directory:     directory,
		Live:          live,
		Clock:         store,
		IDGen:         store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
