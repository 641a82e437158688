package services

import (
	"testing"

	"quotient/contexts/marketplace/quote-service/domain/entities"
)

var (
	brand   = Actor{UserID: "brand-1", Username: "acme", Role: RoleBrand}
	creator = Actor{UserID: "creator-1", Username: "jane", Role: RoleCreator}
	admin   = Actor{UserID: "admin-1", Username: "ops", Role: RoleAdmin}

	quote = entities.QuoteRequest{
		RequestID:   "req-1",
		RequesterID: "brand-1",
		CreatorID:   "creator-1",
		Status:      entities.QuoteStatusPending,
	}
)

func TestCanCreateIsBrandOnly(t *testing.T) {
	if !CanCreate(brand) {
		t.Fatal("brand must be allowed to create")
	}
	if CanCreate(creator) || CanCreate(admin) {
		t.Fatal("only brands create quote requests")
	}
}

func TestCanListForCreator(t *testing.T) {
	if !CanListForCreator(creator, "creator-1") {
		t.Fatal("creator must list own inbox")
	}
	if CanListForCreator(creator, "creator-2") {
		t.Fatal("creator must not list another creator's inbox")
	}
	if !CanListForCreator(admin, "creator-2") {
		t.Fatal("admin may list any creator's inbox")
	}
	if CanListForCreator(brand, "creator-1") {
		t.Fatal("brand must not list a creator's inbox")
	}
}

func TestCanListForBrand(t *testing.T) {
	if !CanListForBrand(brand, "brand-1") {
		t.Fatal("brand must list own outbound requests")
	}
	if CanListForBrand(brand, "brand-2") {
		t.Fatal("brand must not list another brand's requests")
	}
	if !CanListForBrand(admin, "brand-2") {
		t.Fatal("admin may list any brand's requests")
	}
}

func TestCanListForBrandUsername(t *testing.T) {
	if !CanListForBrandUsername(brand, "acme") {
		t.Fatal("brand must list by own username")
	}
	if CanListForBrandUsername(brand, "other") {
		t.Fatal("brand must not list by another username")
	}
	if !CanListForBrandUsername(admin, "other") {
		t.Fatal("admin may list by any username")
	}
}

func TestCanViewIsPartyOrAdmin(t *testing.T) {
	if !CanView(brand, quote) || !CanView(creator, quote) || !CanView(admin, quote) {
		t.Fatal("both parties and admin may view")
	}
	outsider := Actor{UserID: "creator-2", Role: RoleCreator}
	if CanView(outsider, quote) {
		t.Fatal("an unrelated user must not view")
	}
}

func TestCanUpdateStatus(t *testing.T) {
	if !CanUpdateStatus(creator, quote) {
		t.Fatal("owning creator must update status")
	}
	if !CanUpdateStatus(admin, quote) {
		t.Fatal("admin must update status")
	}
	if CanUpdateStatus(brand, quote) {
		t.Fatal("requester must not update status")
	}
	otherCreator := Actor{UserID: "creator-2", Role: RoleCreator}
	if CanUpdateStatus(otherCreator, quote) {
		t.Fatal("a different creator must not update status")
	}
}

func TestCanReviewIsOwningCreatorOnly(t *testing.T) {
	if !CanReview(creator, quote) {
		t.Fatal("owning creator must review")
	}
	if CanReview(admin, quote) {
		t.Fatal("admin uses the status update, not review")
	}
	if CanReview(brand, quote) {
		t.Fatal("requester must not review")
	}
}
