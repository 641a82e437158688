package entities

import (
	"strings"
	"time"
)

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCompleted QuoteStatus = "completed"
)

type Timeline struct {
	StartDate         string
	EndDate           string
	DeliveryDeadlines string
}

type Budget struct {
	Min                 float64
	Max                 float64
	Currency            string
	CompensationDetails string
}

type AudienceTargeting struct {
	Demographics string
	Interests    string
	Geography    string
}

type EventDetails struct {
	EventName           string
	EventType           string
	EventDate           string
	EventLocation       string
	ExpectedAttendance  int
	EventDescription    string
	SpecialRequirements string
}

// QuoteRequest is the central entity. Content fields are immutable after
// creation; only Status, Response and UpdatedAt change afterwards.
type QuoteRequest struct {
	RequestID          string
	RequesterID        string
	CreatorID          string
	PromotionType      string
	CampaignObjective  string
	PlatformPreference []string
	ContentFormat      []string
	ContentGuidelines  string
	Attachments        []string
	AudienceTargeting  AudienceTargeting
	Timeline           Timeline
	Budget             Budget
	AdditionalNotes    string
	IsPrivateEvent     bool
	EventDetails       *EventDetails
	Status             QuoteStatus
	Response           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// MissingRequiredFields names the creation fields that are absent. Timeline and
// Budget are passed as pointers by the creation command so that an omitted
// object is distinguishable from a zero one.
func MissingRequiredFields(creatorID, promotionType, campaignObjective, contentGuidelines string, timeline *Timeline, budget *Budget) []string {
	missing := make([]string, 0, 6)
	if strings.TrimSpace(creatorID) == "" {
		missing = append(missing, "creator_id")
	}
	if strings.TrimSpace(promotionType) == "" {
		missing = append(missing, "promotion_type")
	}
	if strings.TrimSpace(campaignObjective) == "" {
		missing = append(missing, "campaign_objective")
	}
	if strings.TrimSpace(contentGuidelines) == "" {
		missing = append(missing, "content_guidelines")
	}
	if timeline == nil {
		missing = append(missing, "timeline")
	}
	if budget == nil {
		missing = append(missing, "budget")
	}
	return missing
}

// Complete reports whether every required private-event sub-field is present.
func (d EventDetails) Complete() bool {
	return strings.TrimSpace(d.EventName) != "" &&
		strings.TrimSpace(d.EventType) != "" &&
		strings.TrimSpace(d.EventDate) != "" &&
		strings.TrimSpace(d.EventLocation) != "" &&
		d.ExpectedAttendance > 0 &&
		strings.TrimSpace(d.EventDescription) != ""
}

func IsSupportedStatusUpdate(value QuoteStatus) bool {
	switch value {
	case QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransition encodes the status machine: pending may be accepted or
// rejected, accepted may be completed, and nothing leaves a terminal state.
func CanTransition(from, to QuoteStatus) bool {
	switch to {
	case QuoteStatusAccepted, QuoteStatusRejected:
		return from == QuoteStatusPending
	case QuoteStatusCompleted:
		return from == QuoteStatusAccepted
	default:
		return false
	}
}
