package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterUserRequest struct {
	Role      string `json:"role"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

type UserDTO struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type RegisterUserResponse struct {
	Message string  `json:"message"`
	Data    UserDTO `json:"data"`
}

type GetUserResponse struct {
	Message string  `json:"message"`
	Data    UserDTO `json:"data"`
}
