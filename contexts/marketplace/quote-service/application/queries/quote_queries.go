package queries

import (
	"context"
	"log/slog"
	"strings"

	"quotient/contexts/marketplace/quote-service/domain/entities"
	domainerrors "quotient/contexts/marketplace/quote-service/domain/errors"
	"quotient/contexts/marketplace/quote-service/domain/services"
	"quotient/contexts/marketplace/quote-service/ports"
)

// QuoteView pairs a quote request with the resolved party profiles. A nil
// profile means the party record could not be resolved; the quote itself is a
// snapshot and stays listable regardless.
type QuoteView struct {
	Quote     entities.QuoteRequest
	Requester *ports.PublicProfile
	Creator   *ports.PublicProfile
}

type QueryUseCase struct {
	Quotes    ports.QuoteRepository
	Directory ports.Directory
	Logger    *slog.Logger
}

// ListForCreator returns the creator's inbound requests, newest first, with
// each requester's public profile resolved.
func (uc QueryUseCase) ListForCreator(ctx context.Context, actor services.Actor, creatorID string) ([]QuoteView, error) {
	creatorID = strings.TrimSpace(creatorID)
	if !services.CanListForCreator(actor, creatorID) {
		return nil, domainerrors.ErrForbidden
	}
	quotes, err := uc.Quotes.ListQuotes(ctx, ports.QuoteFilter{CreatorID: creatorID})
	if err != nil {
		return nil, err
	}
	return uc.attachParties(ctx, quotes, true, false)
}

// ListOwnCreator lists for the authenticated creator; no path parameter.
func (uc QueryUseCase) ListOwnCreator(ctx context.Context, actor services.Actor) ([]QuoteView, error) {
	if !services.CanListOwnCreator(actor) {
		return nil, domainerrors.ErrForbidden
	}
	quotes, err := uc.Quotes.ListQuotes(ctx, ports.QuoteFilter{CreatorID: actor.UserID})
	if err != nil {
		return nil, err
	}
	return uc.attachParties(ctx, quotes, true, false)
}

// ListForBrand returns the brand's outbound requests with each creator's
// public profile resolved.
func (uc QueryUseCase) ListForBrand(ctx context.Context, actor services.Actor, brandID string) ([]QuoteView, error) {
	brandID = strings.TrimSpace(brandID)
	if !services.CanListForBrand(actor, brandID) {
		return nil, domainerrors.ErrForbidden
	}
	quotes, err := uc.Quotes.ListQuotes(ctx, ports.QuoteFilter{RequesterID: brandID})
	if err != nil {
		return nil, err
	}
	return uc.attachParties(ctx, quotes, false, true)
}

// ListForBrandUsername resolves the username to a brand id first; an unknown
// username fails with not-found before any listing happens.
func (uc QueryUseCase) ListForBrandUsername(ctx context.Context, actor services.Actor, username string) ([]QuoteView, error) {
	username = strings.TrimSpace(username)
	if !services.CanListForBrandUsername(actor, username) {
		return nil, domainerrors.ErrForbidden
	}
	brand, err := uc.Directory.GetProfileByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	quotes, err := uc.Quotes.ListQuotes(ctx, ports.QuoteFilter{RequesterID: brand.UserID})
	if err != nil {
		return nil, err
	}
	return uc.attachParties(ctx, quotes, false, true)
}

// GetByID returns a single request with both parties resolved. Existence is
// checked before ownership so an unknown id reads as not-found, not forbidden.
func (uc QueryUseCase) GetByID(ctx context.Context, actor services.Actor, requestID string) (QuoteView, error) {
	quote, err := uc.Quotes.GetQuote(ctx, strings.TrimSpace(requestID))
	if err != nil {
		return QuoteView{}, err
	}
	if !services.CanView(actor, quote) {
		return QuoteView{}, domainerrors.ErrForbidden
	}
	views, err := uc.attachParties(ctx, []entities.QuoteRequest{quote}, true, true)
	if err != nil {
		return QuoteView{}, err
	}
	return views[0], nil
}

func (uc QueryUseCase) ListAll(ctx context.Context, actor services.Actor) ([]QuoteView, error) {
	if !services.IsAdmin(actor) {
		return nil, domainerrors.ErrForbidden
	}
	quotes, err := uc.Quotes.ListQuotes(ctx, ports.QuoteFilter{})
	if err != nil {
		return nil, err
	}
	return uc.attachParties(ctx, quotes, true, true)
}

func (uc QueryUseCase) attachParties(ctx context.Context, quotes []entities.QuoteRequest, withRequester, withCreator bool) ([]QuoteView, error) {
	ids := make([]string, 0, len(quotes)*2)
	for _, quote := range quotes {
		if withRequester {
			ids = append(ids, quote.RequesterID)
		}
		if withCreator {
			ids = append(ids, quote.CreatorID)
		}
	}

	profiles, err := uc.Directory.ResolveProfiles(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]QuoteView, 0, len(quotes))
	for _, quote := range quotes {
		view := QuoteView{Quote: quote}
		if withRequester {
			if profile, ok := profiles[quote.RequesterID]; ok {
				resolved := profile
				view.Requester = &resolved
			}
		}
		if withCreator {
			if profile, ok := profiles[quote.CreatorID]; ok {
				resolved := profile
				view.Creator = &resolved
			}
		}
		views = append(views, view)
	}
	return views, nil
}
