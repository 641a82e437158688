package directoryadapter

import (
	"context"
	"errors"

	directoryapp "quotient/contexts/identity-access/directory-service/application"
	directoryentities "quotient/contexts/identity-access/directory-service/domain/entities"
	directoryerrors "quotient/contexts/identity-access/directory-service/domain/errors"
	domainerrors "quotient/contexts/marketplace/quote-service/domain/errors"
	"quotient/contexts/marketplace/quote-service/ports"
)

// Adapter bridges the directory service into the quote Directory port,
// translating the directory's not-found into the quote domain's sentinel.
type Adapter struct {
	Directory directoryapp.Service
}

func (a Adapter) GetProfile(ctx context.Context, userID string) (ports.PublicProfile, error) {
	profile, err := a.Directory.ResolveProfile(ctx, userID)
	if err != nil {
		return ports.PublicProfile{}, mapError(err)
	}
	return mapProfile(profile), nil
}

func (a Adapter) GetProfileByUsername(ctx context.Context, username string) (ports.PublicProfile, error) {
	user, err := a.Directory.GetUserByUsername(ctx, username)
	if err != nil {
		return ports.PublicProfile{}, mapError(err)
	}
	return mapProfile(user.PublicProfile()), nil
}

func (a Adapter) ResolveProfiles(ctx context.Context, userIDs []string) (map[string]ports.PublicProfile, error) {
	profiles, err := a.Directory.ResolveProfiles(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	result := make(map[string]ports.PublicProfile, len(profiles))
	for id, profile := range profiles {
		result[id] = mapProfile(profile)
	}
	return result, nil
}

func mapProfile(item directoryentities.PublicProfile) ports.PublicProfile {
	return ports.PublicProfile{
		UserID:    item.UserID,
		FullName:  item.FullName,
		Username:  item.Username,
		Email:     item.Email,
		AvatarURL: item.AvatarURL,
	}
}

func mapError(err error) error {
	if errors.Is(err, directoryerrors.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	return err
}
