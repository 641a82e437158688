package directoryadapter

import (
	"context"

	directoryapp "quotient/contexts/identity-access/directory-service/application"
	"quotient/contexts/marketplace/notification-service/ports"
)

// Adapter bridges the directory service into the notification Directory port.
type Adapter struct {
	Directory directoryapp.Service
}

func (a Adapter) GetSenderProfile(ctx context.Context, userID string) (ports.SenderProfile, error) {
	profile, err := a.Directory.ResolveProfile(ctx, userID)
	if err != nil {
		return ports.SenderProfile{}, err
	}
	return ports.SenderProfile{
		UserID:    profile.UserID,
		FullName:  profile.FullName,
		AvatarURL: profile.AvatarURL,
	}, nil
}
