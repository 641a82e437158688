package entities

import (
	"strings"
	"time"
)

type Role string

const (
	RoleBrand   Role = "brand"
	RoleCreator Role = "creator"
	RoleAdmin   Role = "admin"
)

type User struct {
	UserID    string
	Role      Role
	FullName  string
	Email     string
	Username  string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicProfile is the subset of a user shared with counterparties.
type PublicProfile struct {
	UserID    string
	FullName  string
	Username  string
	Email     string
	AvatarURL string
}

func (u User) PublicProfile() PublicProfile {
	return PublicProfile{
		UserID:    u.UserID,
		FullName:  u.FullName,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
	}
}

func (u User) ValidateBasics() bool {
	return strings.TrimSpace(u.FullName) != "" &&
		strings.TrimSpace(u.Username) != "" &&
		strings.TrimSpace(u.Email) != "" &&
		IsSupportedRole(u.Role)
}

func IsSupportedRole(value Role) bool {
	switch value {
	case RoleBrand, RoleCreator, RoleAdmin:
		return true
	default:
		return false
	}
}
