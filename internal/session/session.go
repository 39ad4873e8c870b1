// Package session resolves the active local user. The active user id lives
// in the OS keyring; profiles live in the entity store.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/keyring"
	"github.com/lifeos-app/lifeos/internal/logger"
	"github.com/lifeos-app/lifeos/internal/models"
	"github.com/lifeos-app/lifeos/internal/storage"
)

// CurrentUser returns the profile of the logged-in user. It fails with
// ErrUnauthenticated before touching entity data when nobody is logged in.
func CurrentUser(store storage.Provider) (models.Profile, error) {
	userID, err := keyring.GetSessionUserID()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return models.Profile{}, fmt.Errorf("%w: run 'lifeos login <email>' first", apperrors.ErrUnauthenticated)
		}
		return models.Profile{}, err
	}

	profile, err := store.GetProfile(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Stale session entry pointing at a profile that no longer exists
			_ = keyring.ClearSession()
			return models.Profile{}, fmt.Errorf("%w: session expired, run 'lifeos login <email>'", apperrors.ErrUnauthenticated)
		}
		return models.Profile{}, err
	}

	return profile, nil
}

// Login activates the profile registered under email, creating it on first
// use, and records the user id in the keyring.
func Login(store storage.Provider, email string) (models.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	profile, err := store.GetProfileByEmail(email)
	if errors.Is(err, apperrors.ErrNotFound) {
		now := time.Now()
		profile = models.Profile{
			UserID:    uuid.NewString(),
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := profile.Validate(); err != nil {
			return models.Profile{}, fmt.Errorf("%w: %v", apperrors.ErrInvalid, err)
		}
		if err := store.SaveProfile(profile); err != nil {
			return models.Profile{}, err
		}
		logger.Info("Created new profile", "email", email)
	} else if err != nil {
		return models.Profile{}, err
	}

	if err := keyring.SetSessionUserID(profile.UserID); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// Logout clears the active session. Logging out with no session is not an error.
func Logout() error {
	err := keyring.ClearSession()
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
