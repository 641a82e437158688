package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TimelineDTO struct {
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	DeliveryDeadlines string `json:"delivery_deadlines"`
}

type BudgetDTO struct {
	Min                 float64 `json:"min"`
	Max                 float64 `json:"max"`
	Currency            string  `json:"currency"`
	CompensationDetails string  `json:"compensation_details"`
}

type AudienceTargetingDTO struct {
	Demographics string `json:"demographics"`
	Interests    string `json:"interests"`
	Geography    string `json:"geography"`
}

type EventDetailsDTO struct {
	EventName           string `json:"event_name"`
	EventType           string `json:"event_type"`
	EventDate           string `json:"event_date"`
	EventLocation       string `json:"event_location"`
	ExpectedAttendance  int    `json:"expected_attendance"`
	EventDescription    string `json:"event_description"`
	SpecialRequirements string `json:"special_requirements"`
}

type CreateQuoteRequest struct {
	CreatorID          string                `json:"creator_id"`
	PromotionType      string                `json:"promotion_type"`
	CampaignObjective  string                `json:"campaign_objective"`
	PlatformPreference []string              `json:"platform_preference"`
	ContentFormat      []string              `json:"content_format"`
	ContentGuidelines  string                `json:"content_guidelines"`
	Attachments        []string              `json:"attachments"`
	AudienceTargeting  *AudienceTargetingDTO `json:"audience_targeting"`
	Timeline           *TimelineDTO          `json:"timeline"`
	Budget             *BudgetDTO            `json:"budget"`
	AdditionalNotes    string                `json:"additional_notes"`
	IsPrivateEvent     bool                  `json:"is_private_event"`
	EventDetails       *EventDetailsDTO      `json:"event_details"`
}

type UpdateStatusRequest struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

type PublicProfileDTO struct {
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type QuoteDTO struct {
	RequestID          string               `json:"request_id"`
	RequesterID        string               `json:"requester_id"`
	CreatorID          string               `json:"creator_id"`
	PromotionType      string               `json:"promotion_type"`
	CampaignObjective  string               `json:"campaign_objective"`
	PlatformPreference []string             `json:"platform_preference"`
	ContentFormat      []string             `json:"content_format"`
	ContentGuidelines  string               `json:"content_guidelines"`
	Attachments        []string             `json:"attachments"`
	AudienceTargeting  AudienceTargetingDTO `json:"audience_targeting"`
	Timeline           TimelineDTO          `json:"timeline"`
	Budget             BudgetDTO            `json:"budget"`
	AdditionalNotes    string               `json:"additional_notes,omitempty"`
	IsPrivateEvent     bool                 `json:"is_private_event"`
	EventDetails       *EventDetailsDTO     `json:"event_details,omitempty"`
	Status             string               `json:"status"`
	Response           string               `json:"response,omitempty"`
	Requester          *PublicProfileDTO    `json:"requester,omitempty"`
	Creator            *PublicProfileDTO    `json:"creator,omitempty"`
	CreatedAt          string               `json:"created_at"`
	UpdatedAt          string               `json:"updated_at"`
}

type CreateQuoteResponse struct {
	Message string   `json:"message"`
	Data    QuoteDTO `json:"data"`
}

// CreatorInboxResponse is the shape of the authenticated creator's own list.
type CreatorInboxResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    []QuoteDTO `json:"data"`
}

type QuoteListResponse struct {
	Message string     `json:"message"`
	Data    []QuoteDTO `json:"data"`
}

type GetQuoteResponse struct {
	Message string   `json:"message"`
	Data    QuoteDTO `json:"data"`
}

type UpdateStatusResponse struct {
	Message string   `json:"message"`
	Data    QuoteDTO `json:"data"`
}

type ReviewResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AdminListResponse struct {
	Success bool       `json:"success"`
	Data    []QuoteDTO `json:"data"`
}
