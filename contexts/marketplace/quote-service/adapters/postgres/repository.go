package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"quotient/contexts/marketplace/quote-service/domain/entities"
	domainerrors "quotient/contexts/marketplace/quote-service/domain/errors"
	"quotient/contexts/marketplace/quote-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateQuote(ctx context.Context, quote entities.QuoteRequest) error {
	row := quoteModelFromEntity(quote)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrQuoteAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateQuote(ctx context.Context, quote entities.QuoteRequest) error {
	row := quoteModelFromEntity(quote)
	result := r.db.WithContext(ctx).
		Model(&quoteRequestModel{}).
		Where("request_id = ?", row.RequestID).
		Updates(map[string]any{
			"status":     row.Status,
			"response":   row.Response,
			"updated_at": row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrQuoteNotFound
	}
	return nil
}

func (r *Repository) GetQuote(ctx context.Context, requestID string) (entities.QuoteRequest, error) {
	var row quoteRequestModel
	err := r.db.WithContext(ctx).
		Where("request_id = ?", strings.TrimSpace(requestID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.QuoteRequest{}, domainerrors.ErrQuoteNotFound
		}
		return entities.QuoteRequest{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListQuotes(ctx context.Context, filter ports.QuoteFilter) ([]entities.QuoteRequest, error) {
	tx := r.db.WithContext(ctx).Model(&quoteRequestModel{})
	if strings.TrimSpace(filter.CreatorID) != "" {
		tx = tx.Where("creator_id = ?", strings.TrimSpace(filter.CreatorID))
	}
	if strings.TrimSpace(filter.RequesterID) != "" {
		tx = tx.Where("requester_id = ?", strings.TrimSpace(filter.RequesterID))
	}

	var rows []quoteRequestModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.QuoteRequest, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type quoteRequestModel struct {
	RequestID          string   `gorm:"column:request_id;primaryKey"`
	RequesterID        string   `gorm:"column:requester_id;index"`
	CreatorID          string   `gorm:"column:creator_id;index"`
	PromotionType      string   `gorm:"column:promotion_type"`
	CampaignObjective  string   `gorm:"column:campaign_objective"`
	PlatformPreference []string `gorm:"column:platform_preference;type:text[]"`
	ContentFormat      []string `gorm:"column:content_format;type:text[]"`
	ContentGuidelines  string   `gorm:"column:content_guidelines"`
	Attachments        []string `gorm:"column:attachments;type:text[]"`

	TargetDemographics string `gorm:"column:target_demographics"`
	TargetInterests    string `gorm:"column:target_interests"`
	TargetGeography    string `gorm:"column:target_geography"`

	TimelineStartDate string `gorm:"column:timeline_start_date"`
	TimelineEndDate   string `gorm:"column:timeline_end_date"`
	DeliveryDeadlines string `gorm:"column:delivery_deadlines"`

	BudgetMin           float64 `gorm:"column:budget_min"`
	BudgetMax           float64 `gorm:"column:budget_max"`
	BudgetCurrency      string  `gorm:"column:budget_currency"`
	CompensationDetails string  `gorm:"column:compensation_details"`

	AdditionalNotes string `gorm:"column:additional_notes"`

	IsPrivateEvent      bool    `gorm:"column:is_private_event"`
	EventName           *string `gorm:"column:event_name"`
	EventType           *string `gorm:"column:event_type"`
	EventDate           *string `gorm:"column:event_date"`
	EventLocation       *string `gorm:"column:event_location"`
	ExpectedAttendance  *int    `gorm:"column:expected_attendance"`
	EventDescription    *string `gorm:"column:event_description"`
	SpecialRequirements *string `gorm:"column:special_requirements"`

	Status    string    `gorm:"column:status;index"`
	Response  string    `gorm:"column:response"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (quoteRequestModel) TableName() string {
	return "quote_requests"
}

func quoteModelFromEntity(item entities.QuoteRequest) quoteRequestModel {
	row := quoteRequestModel{
		RequestID:          strings.TrimSpace(item.RequestID),
		RequesterID:        strings.TrimSpace(item.RequesterID),
		CreatorID:          strings.TrimSpace(item.CreatorID),
		PromotionType:      strings.TrimSpace(item.PromotionType),
		CampaignObjective:  strings.TrimSpace(item.CampaignObjective),
		PlatformPreference: copyOrEmpty(item.PlatformPreference),
		ContentFormat:      copyOrEmpty(item.ContentFormat),
		ContentGuidelines:  item.ContentGuidelines,
		Attachments:        copyOrEmpty(item.Attachments),

		TargetDemographics: item.AudienceTargeting.Demographics,
		TargetInterests:    item.AudienceTargeting.Interests,
		TargetGeography:    item.AudienceTargeting.Geography,

		TimelineStartDate: item.Timeline.StartDate,
		TimelineEndDate:   item.Timeline.EndDate,
		DeliveryDeadlines: item.Timeline.DeliveryDeadlines,

		BudgetMin:           item.Budget.Min,
		BudgetMax:           item.Budget.Max,
		BudgetCurrency:      item.Budget.Currency,
		CompensationDetails: item.Budget.CompensationDetails,

		AdditionalNotes: item.AdditionalNotes,

		IsPrivateEvent: item.IsPrivateEvent,

		Status:    string(item.Status),
		Response:  item.Response,
		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
	if item.EventDetails != nil {
		details := *item.EventDetails
		row.EventName = &details.EventName
		row.EventType = &details.EventType
		row.EventDate = &details.EventDate
		row.EventLocation = &details.EventLocation
		row.ExpectedAttendance = &details.ExpectedAttendance
		row.EventDescription = &details.EventDescription
		row.SpecialRequirements = &details.SpecialRequirements
	}
	return row
}

func (m quoteRequestModel) toEntity() entities.QuoteRequest {
	item := entities.QuoteRequest{
		RequestID:          m.RequestID,
		RequesterID:        m.RequesterID,
		CreatorID:          m.CreatorID,
		PromotionType:      m.PromotionType,
		CampaignObjective:  m.CampaignObjective,
		PlatformPreference: copyOrEmpty(m.PlatformPreference),
		ContentFormat:      copyOrEmpty(m.ContentFormat),
		ContentGuidelines:  m.ContentGuidelines,
		Attachments:        copyOrEmpty(m.Attachments),
		AudienceTargeting: entities.AudienceTargeting{
			Demographics: m.TargetDemographics,
			Interests:    m.TargetInterests,
			Geography:    m.TargetGeography,
		},
		Timeline: entities.Timeline{
			StartDate:         m.TimelineStartDate,
			EndDate:           m.TimelineEndDate,
			DeliveryDeadlines: m.DeliveryDeadlines,
		},
		Budget: entities.Budget{
			Min:                 m.BudgetMin,
			Max:                 m.BudgetMax,
			Currency:            m.BudgetCurrency,
			CompensationDetails: m.CompensationDetails,
		},
		AdditionalNotes: m.AdditionalNotes,
		IsPrivateEvent:  m.IsPrivateEvent,
		Status:          entities.QuoteStatus(m.Status),
		Response:        m.Response,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
	if m.IsPrivateEvent {
		details := entities.EventDetails{}
		if m.EventName != nil {
			details.EventName = *m.EventName
		}
		if m.EventType != nil {
			details.EventType = *m.EventType
		}
		if m.EventDate != nil {
			details.EventDate = *m.EventDate
		}
		if m.EventLocation != nil {
			details.EventLocation = *m.EventLocation
		}
		if m.ExpectedAttendance != nil {
			details.ExpectedAttendance = *m.ExpectedAttendance
		}
		if m.EventDescription != nil {
			details.EventDescription = *m.EventDescription
		}
		if m.SpecialRequirements != nil {
			details.SpecialRequirements = *m.SpecialRequirements
		}
		item.EventDetails = &details
	}
	return item
}

func copyOrEmpty(items []string) []string {
	if len(items) == 0 {
		return []string{}
	}
	return append([]string(nil), items...)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
