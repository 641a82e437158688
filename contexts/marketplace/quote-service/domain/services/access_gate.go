package services

import "quotient/contexts/marketplace/quote-service/domain/entities"

type Role string

const (
	RoleBrand   Role = "brand"
	RoleCreator Role = "creator"
	RoleAdmin   Role = "admin"
)

// Actor is the authenticated caller as seen by the access gate.
type Actor struct {
	UserID   string
	Username string
	Role     Role
}

// The gate is a pure predicate layer consulted before every operation.
// Ownership rule: either party may read a quote request, only the creator side
// (or an admin) drives status transitions, and only brands create.

func CanCreate(actor Actor) bool {
	return actor.Role == RoleBrand
}

func CanListForCreator(actor Actor, creatorID string) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	return actor.Role == RoleCreator && actor.UserID == creatorID
}

func CanListOwnCreator(actor Actor) bool {
	return actor.Role == RoleCreator
}

func CanListForBrand(actor Actor, brandID string) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	return actor.Role == RoleBrand && actor.UserID == brandID
}

func CanListForBrandUsername(actor Actor, username string) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	return actor.Role == RoleBrand && actor.Username == username
}

func CanView(actor Actor, quote entities.QuoteRequest) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	return actor.UserID == quote.RequesterID || actor.UserID == quote.CreatorID
}

func CanUpdateStatus(actor Actor, quote entities.QuoteRequest) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	return actor.Role == RoleCreator && actor.UserID == quote.CreatorID
}

// CanReview guards the dedicated accept/reject operations, which are
// creator-only: admins use the generic status update instead.
func CanReview(actor Actor, quote entities.QuoteRequest) bool {
	return actor.Role == RoleCreator && actor.UserID == quote.CreatorID
}

func IsAdmin(actor Actor) bool {
	return actor.Role == RoleAdmin
}
