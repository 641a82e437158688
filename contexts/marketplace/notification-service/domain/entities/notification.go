package entities

import "time"

type Notification struct {
	NotificationID string
	UserID         string
	Type           string
	Message        string
	FromUserID     string
	Read           bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
