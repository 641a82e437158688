package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"quotient/contexts/identity-access/directory-service/application"
	"quotient/contexts/identity-access/directory-service/domain/entities"
	httptransport "quotient/contexts/identity-access/directory-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterUserHandler(ctx context.Context, req httptransport.RegisterUserRequest) (httptransport.RegisterUserResponse, error) {
	user, err := h.Service.RegisterUser(ctx, application.RegisterUserInput{
		Role:      req.Role,
		FullName:  req.FullName,
		Email:     req.Email,
		Username:  req.Username,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return httptransport.RegisterUserResponse{}, err
	}
	return httptransport.RegisterUserResponse{
		Message: "User registered",
		Data:    mapUser(user),
	}, nil
}

func (h Handler) GetUserHandler(ctx context.Context, userID string) (httptransport.GetUserResponse, error) {
	user, err := h.Service.GetUser(ctx, userID)
	if err != nil {
		return httptransport.GetUserResponse{}, err
	}
	return httptransport.GetUserResponse{
		Message: "User fetched",
		Data:    mapUser(user),
	}, nil
}

func (h Handler) GetUserByUsernameHandler(ctx context.Context, username string) (httptransport.GetUserResponse, error) {
	user, err := h.Service.GetUserByUsername(ctx, username)
	if err != nil {
		return httptransport.GetUserResponse{}, err
	}
	return httptransport.GetUserResponse{
		Message: "User fetched",
		Data:    mapUser(user),
	}, nil
}

func mapUser(item entities.User) httptransport.UserDTO {
	return httptransport.UserDTO{
		UserID:    item.UserID,
		Role:      string(item.Role),
		FullName:  item.FullName,
		Email:     item.Email,
		Username:  item.Username,
		AvatarURL: item.AvatarURL,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.Format(time.RFC3339),
	}
}
