package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type NotificationDTO struct {
	NotificationID string `json:"notification_id"`
	UserID         string `json:"user_id"`
	Type           string `json:"type"`
	Message        string `json:"message"`
	FromUserID     string `json:"from_user_id"`
	IsRead         bool   `json:"is_read"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type ListNotificationsResponse struct {
	Success bool              `json:"success"`
	Data    []NotificationDTO `json:"data"`
}

type MarkReadResponse struct {
	Message string          `json:"message"`
	Data    NotificationDTO `json:"data"`
}
