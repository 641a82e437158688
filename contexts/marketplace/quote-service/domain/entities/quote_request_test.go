package entities

import "testing"

func TestMissingRequiredFields(t *testing.T) {
	missing := MissingRequiredFields("", "", "", "", nil, nil)
	want := []string{"creator_id", "promotion_type", "campaign_objective", "content_guidelines", "timeline", "budget"}
	if len(missing) != len(want) {
		t.Fatalf("expected %d missing fields, got %v", len(want), missing)
	}
	for i, field := range want {
		if missing[i] != field {
			t.Fatalf("expected %s at position %d, got %s", field, i, missing[i])
		}
	}

	missing = MissingRequiredFields(
		"creator-1",
		"sponsored_post",
		"awareness",
		"keep it on brand",
		&Timeline{StartDate: "2026-09-01", EndDate: "2026-09-30"},
		&Budget{Min: 100, Max: 500, Currency: "USD"},
	)
	if len(missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", missing)
	}
}

func TestMissingRequiredFieldsTreatsWhitespaceAsAbsent(t *testing.T) {
	missing := MissingRequiredFields("  ", "sponsored_post", "awareness", "guidelines", &Timeline{}, &Budget{})
	if len(missing) != 1 || missing[0] != "creator_id" {
		t.Fatalf("expected only creator_id missing, got %v", missing)
	}
}

func TestEventDetailsComplete(t *testing.T) {
	details := EventDetails{
		EventName:          "Launch Party",
		EventType:          "product_launch",
		EventDate:          "2026-10-01",
		EventLocation:      "Berlin",
		ExpectedAttendance: 150,
		EventDescription:   "Evening launch event",
	}
	if !details.Complete() {
		t.Fatal("expected complete event details")
	}

	details.ExpectedAttendance = 0
	if details.Complete() {
		t.Fatal("expected incomplete details when attendance is zero")
	}

	details.ExpectedAttendance = 150
	details.EventLocation = "   "
	if details.Complete() {
		t.Fatal("expected incomplete details when location is blank")
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    QuoteStatus
		to      QuoteStatus
		allowed bool
	}{
		{QuoteStatusPending, QuoteStatusAccepted, true},
		{QuoteStatusPending, QuoteStatusRejected, true},
		{QuoteStatusAccepted, QuoteStatusCompleted, true},
		{QuoteStatusPending, QuoteStatusCompleted, false},
		{QuoteStatusAccepted, QuoteStatusAccepted, false},
		{QuoteStatusAccepted, QuoteStatusRejected, false},
		{QuoteStatusRejected, QuoteStatusAccepted, false},
		{QuoteStatusRejected, QuoteStatusCompleted, false},
		{QuoteStatusCompleted, QuoteStatusAccepted, false},
		{QuoteStatusCompleted, QuoteStatusCompleted, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestIsSupportedStatusUpdate(t *testing.T) {
	for _, status := range []QuoteStatus{QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusCompleted} {
		if !IsSupportedStatusUpdate(status) {
			t.Fatalf("expected %s to be a supported update", status)
		}
	}
	if IsSupportedStatusUpdate(QuoteStatusPending) {
		t.Fatal("pending must not be a supported update target")
	}
	if IsSupportedStatusUpdate("archived") {
		t.Fatal("unknown status must not be supported")
	}
}
