package quoteservice

import (
	"log/slog"
	"time"

	httpadapter "quotient/contexts/marketplace/quote-service/adapters/http"
	"quotient/contexts/marketplace/quote-service/adapters/memory"
	"quotient/contexts/marketplace/quote-service/application/commands"
	"quotient/contexts/marketplace/quote-service/application/queries"
	"quotient/contexts/marketplace/quote-service/domain/entities"
	"quotient/contexts/marketplace/quote-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Quotes         ports.QuoteRepository
	Directory      ports.Directory
	Notifier       ports.Notifier
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createQuote := commands.CreateQuoteUseCase{
		Quotes:         deps.Quotes,
		Directory:      deps.Directory,
		Notifier:       deps.Notifier,
		Idempotency:    deps.Idempotency,
		Clock:          deps.Clock,
		IDGenerator:    deps.IDGenerator,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}
	updateStatus := commands.UpdateStatusUseCase{
		Quotes:   deps.Quotes,
		Notifier: deps.Notifier,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	reviewQuote := commands.ReviewQuoteUseCase{
		Quotes:   deps.Quotes,
		Notifier: deps.Notifier,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	queryQuotes := queries.QueryUseCase{
		Quotes:    deps.Quotes,
		Directory: deps.Directory,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateQuote:  createQuote,
			UpdateStatus: updateStatus,
			ReviewQuote:  reviewQuote,
			Queries:      queryQuotes,
		},
	}
}

func NewInMemoryModule(
	seed []entities.QuoteRequest,
	directory ports.Directory,
	notifier ports.Notifier,
	logger *slog.Logger,
) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Quotes:         store,
		Directory:      directory,
		Notifier:       notifier,
		Idempotency:    store,
		Clock:          store,
		IDGenerator:    store,
		IdempotencyTTL: 24 * time.Hour,
		Logger:         logger,
	})
	module.Store = store
	return module
}
