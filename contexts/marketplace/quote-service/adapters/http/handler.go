package httpadapter

import (
	"context"
	"time"

	"quotient/contexts/marketplace/quote-service/application/commands"
	"quotient/contexts/marketplace/quote-service/application/queries"
	"quotient/contexts/marketplace/quote-service/domain/entities"
	"quotient/contexts/marketplace/quote-service/domain/services"
	"quotient/contexts/marketplace/quote-service/ports"
	httptransport "quotient/contexts/marketplace/quote-service/transport/http"
)

type Handler struct {
	CreateQuote  commands.CreateQuoteUseCase
	UpdateStatus commands.UpdateStatusUseCase
	ReviewQuote  commands.ReviewQuoteUseCase
	Queries      queries.QueryUseCase
}

func (h Handler) CreateQuoteHandler(
	ctx context.Context,
	actor services.Actor,
	idempotencyKey string,
	req httptransport.CreateQuoteRequest,
) (httptransport.CreateQuoteResponse, error) {
	result, err := h.CreateQuote.Execute(ctx, commands.CreateQuoteCommand{
		Actor:              actor,
		IdempotencyKey:     idempotencyKey,
		CreatorID:          req.CreatorID,
		PromotionType:      req.PromotionType,
		CampaignObjective:  req.CampaignObjective,
		PlatformPreference: append([]string(nil), req.PlatformPreference...),
		ContentFormat:      append([]string(nil), req.ContentFormat...),
		ContentGuidelines:  req.ContentGuidelines,
		Attachments:        append([]string(nil), req.Attachments...),
		AudienceTargeting:  audienceTargetingFromDTO(req.AudienceTargeting),
		Timeline:           timelineFromDTO(req.Timeline),
		Budget:             budgetFromDTO(req.Budget),
		AdditionalNotes:    req.AdditionalNotes,
		IsPrivateEvent:     req.IsPrivateEvent,
		EventDetails:       eventDetailsFromDTO(req.EventDetails),
	})
	if err != nil {
		return httptransport.CreateQuoteResponse{}, err
	}
	return httptransport.CreateQuoteResponse{
		Message: "Quote request sent successfully",
		Data:    mapQuote(result.Quote, nil, nil),
	}, nil
}

func (h Handler) CreatorInboxHandler(ctx context.Context, actor services.Actor) (httptransport.CreatorInboxResponse, error) {
	views, err := h.Queries.ListOwnCreator(ctx, actor)
	if err != nil {
		return httptransport.CreatorInboxResponse{}, err
	}
	return httptransport.CreatorInboxResponse{
		Success: true,
		Message: "Quote requests fetched successfully",
		Data:    mapViews(views),
	}, nil
}

func (h Handler) ListForCreatorHandler(ctx context.Context, actor services.Actor, creatorID string) (httptransport.QuoteListResponse, error) {
	views, err := h.Queries.ListForCreator(ctx, actor, creatorID)
	if err != nil {
		return httptransport.QuoteListResponse{}, err
	}
	return httptransport.QuoteListResponse{
		Message: "Quote requests fetched successfully",
		Data:    mapViews(views),
	}, nil
}

func (h Handler) ListForBrandHandler(ctx context.Context, actor services.Actor, brandID string) (httptransport.QuoteListResponse, error) {
	views, err := h.Queries.ListForBrand(ctx, actor, brandID)
	if err != nil {
		return httptransport.QuoteListResponse{}, err
	}
	return httptransport.QuoteListResponse{
		Message: "Quote requests fetched successfully",
		Data:    mapViews(views),
	}, nil
}

func (h Handler) ListForBrandUsernameHandler(ctx context.Context, actor services.Actor, username string) (httptransport.QuoteListResponse, error) {
	views, err := h.Queries.ListForBrandUsername(ctx, actor, username)
	if err != nil {
		return httptransport.QuoteListResponse{}, err
	}
	return httptransport.QuoteListResponse{
		Message: "Quote requests fetched successfully",
		Data:    mapViews(views),
	}, nil
}

func (h Handler) AdminListHandler(ctx context.Context, actor services.Actor) (httptransport.AdminListResponse, error) {
	views, err := h.Queries.ListAll(ctx, actor)
	if err != nil {
		return httptransport.AdminListResponse{}, err
	}
	return httptransport.AdminListResponse{
		Success: true,
		Data:    mapViews(views),
	}, nil
}

func (h Handler) GetQuoteHandler(ctx context.Context, actor services.Actor, requestID string) (httptransport.GetQuoteResponse, error) {
	view, err := h.Queries.GetByID(ctx, actor, requestID)
	if err != nil {
		return httptransport.GetQuoteResponse{}, err
	}
	return httptransport.GetQuoteResponse{
		Message: "Quote request fetched successfully",
		Data:    mapQuote(view.Quote, view.Requester, view.Creator),
	}, nil
}

func (h Handler) UpdateStatusHandler(
	ctx context.Context,
	actor services.Actor,
	requestID string,
	req httptransport.UpdateStatusRequest,
) (httptransport.UpdateStatusResponse, error) {
	quote, err := h.UpdateStatus.Execute(ctx, commands.UpdateStatusCommand{
		RequestID: requestID,
		Actor:     actor,
		Status:    req.Status,
		Response:  req.Response,
	})
	if err != nil {
		return httptransport.UpdateStatusResponse{}, err
	}
	return httptransport.UpdateStatusResponse{
		Message: "Quote request status updated successfully",
		Data:    mapQuote(quote, nil, nil),
	}, nil
}

func (h Handler) AcceptQuoteHandler(ctx context.Context, actor services.Actor, requestID string) (httptransport.ReviewResponse, error) {
	if err := h.ReviewQuote.Accept(ctx, commands.ReviewQuoteCommand{RequestID: requestID, Actor: actor}); err != nil {
		return httptransport.ReviewResponse{}, err
	}
	return httptransport.ReviewResponse{Success: true, Message: "Quote request accepted successfully"}, nil
}

func (h Handler) RejectQuoteHandler(ctx context.Context, actor services.Actor, requestID string) (httptransport.ReviewResponse, error) {
	if err := h.ReviewQuote.Reject(ctx, commands.ReviewQuoteCommand{RequestID: requestID, Actor: actor}); err != nil {
		return httptransport.ReviewResponse{}, err
	}
	return httptransport.ReviewResponse{Success: true, Message: "Quote request rejected successfully"}, nil
}

func mapViews(views []queries.QuoteView) []httptransport.QuoteDTO {
	result := make([]httptransport.QuoteDTO, 0, len(views))
	for _, view := range views {
		result = append(result, mapQuote(view.Quote, view.Requester, view.Creator))
	}
	return result
}

func mapQuote(item entities.QuoteRequest, requester, creator *ports.PublicProfile) httptransport.QuoteDTO {
	result := httptransport.QuoteDTO{
		RequestID:          item.RequestID,
		RequesterID:        item.RequesterID,
		CreatorID:          item.CreatorID,
		PromotionType:      item.PromotionType,
		CampaignObjective:  item.CampaignObjective,
		PlatformPreference: append([]string(nil), item.PlatformPreference...),
		ContentFormat:      append([]string(nil), item.ContentFormat...),
		ContentGuidelines:  item.ContentGuidelines,
		Attachments:        append([]string(nil), item.Attachments...),
		AudienceTargeting: httptransport.AudienceTargetingDTO{
			Demographics: item.AudienceTargeting.Demographics,
			Interests:    item.AudienceTargeting.Interests,
			Geography:    item.AudienceTargeting.Geography,
		},
		Timeline: httptransport.TimelineDTO{
			StartDate:         item.Timeline.StartDate,
			EndDate:           item.Timeline.EndDate,
			DeliveryDeadlines: item.Timeline.DeliveryDeadlines,
		},
		Budget: httptransport.BudgetDTO{
			Min:                 item.Budget.Min,
			Max:                 item.Budget.Max,
			Currency:            item.Budget.Currency,
			CompensationDetails: item.Budget.CompensationDetails,
		},
		AdditionalNotes: item.AdditionalNotes,
		IsPrivateEvent:  item.IsPrivateEvent,
		Status:          string(item.Status),
		Response:        item.Response,
		Requester:       mapProfile(requester),
		Creator:         mapProfile(creator),
		CreatedAt:       item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       item.UpdatedAt.Format(time.RFC3339),
	}
	if item.EventDetails != nil {
		result.EventDetails = &httptransport.EventDetailsDTO{
			EventName:           item.EventDetails.EventName,
			EventType:           item.EventDetails.EventType,
			EventDate:           item.EventDetails.EventDate,
			EventLocation:       item.EventDetails.EventLocation,
			ExpectedAttendance:  item.EventDetails.ExpectedAttendance,
			EventDescription:    item.EventDetails.EventDescription,
			SpecialRequirements: item.EventDetails.SpecialRequirements,
		}
	}
	return result
}

func mapProfile(profile *ports.PublicProfile) *httptransport.PublicProfileDTO {
	if profile == nil {
		return nil
	}
	return &httptransport.PublicProfileDTO{
		UserID:    profile.UserID,
		FullName:  profile.FullName,
		Username:  profile.Username,
		Email:     profile.Email,
		AvatarURL: profile.AvatarURL,
	}
}

func timelineFromDTO(dto *httptransport.TimelineDTO) *entities.Timeline {
	if dto == nil {
		return nil
	}
	return &entities.Timeline{
		StartDate:         dto.StartDate,
		EndDate:           dto.EndDate,
		DeliveryDeadlines: dto.DeliveryDeadlines,
	}
}

func budgetFromDTO(dto *httptransport.BudgetDTO) *entities.Budget {
	if dto == nil {
		return nil
	}
	return &entities.Budget{
		Min:                 dto.Min,
		Max:                 dto.Max,
		Currency:            dto.Currency,
		CompensationDetails: dto.CompensationDetails,
	}
}

func audienceTargetingFromDTO(dto *httptransport.AudienceTargetingDTO) *entities.AudienceTargeting {
	if dto == nil {
		return nil
	}
	return &entities.AudienceTargeting{
		Demographics: dto.Demographics,
		Interests:    dto.Interests,
		Geography:    dto.Geography,
	}
}

func eventDetailsFromDTO(dto *httptransport.EventDetailsDTO) *entities.EventDetails {
	if dto == nil {
		return nil
	}
	return &entities.EventDetails{
		EventName:           dto.EventName,
		EventType:           dto.EventType,
		EventDate:           dto.EventDate,
		EventLocation:       dto.EventLocation,
		ExpectedAttendance:  dto.ExpectedAttendance,
		EventDescription:    dto.EventDescription,
		SpecialRequirements: dto.SpecialRequirements,
	}
}
