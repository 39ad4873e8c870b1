package session

import (
	"errors"
	"path/filepath"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	apperrors "github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/storage/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "lifeos.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCurrentUserWithoutSession(t *testing.T) {
	gokeyring.MockInit()
	store := newTestStore(t)

	_, err := CurrentUser(store)
	if !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Errorf("CurrentUser() without session error = %v, want ErrUnauthenticated", err)
	}
}

func TestLoginCreatesProfile(t *testing.T) {
	gokeyring.MockInit()
	store := newTestStore(t)

	profile, err := Login(store, "  Me@Example.COM  ")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if profile.Email != "me@example.com" {
		t.Errorf("Login() email = %q, want normalized lowercase", profile.Email)
	}
	if profile.UserID == "" {
		t.Error("Login() created profile without user id")
	}

	current, err := CurrentUser(store)
	if err != nil {
		t.Fatalf("CurrentUser() after login failed: %v", err)
	}
	if current.UserID != profile.UserID {
		t.Errorf("CurrentUser() = %q, want %q", current.UserID, profile.UserID)
	}
}

func TestLoginReusesExistingProfile(t *testing.T) {
	gokeyring.MockInit()
	store := newTestStore(t)

	first, err := Login(store, "me@example.com")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	second, err := Login(store, "ME@example.com")
	if err != nil {
		t.Fatalf("second Login() failed: %v", err)
	}
	if second.UserID != first.UserID {
		t.Errorf("second Login() created a new profile: %q != %q", second.UserID, first.UserID)
	}
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	gokeyring.MockInit()
	store := newTestStore(t)

	_, err := Login(store, "not-an-email")
	if !errors.Is(err, apperrors.ErrInvalid) {
		t.Errorf("Login(invalid email) error = %v, want ErrInvalid", err)
	}
}

func TestLogout(t *testing.T) {
	gokeyring.MockInit()
	store := newTestStore(t)

	if _, err := Login(store, "me@example.com"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if err := Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	if _, err := CurrentUser(store); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Errorf("CurrentUser() after logout error = %v, want ErrUnauthenticated", err)
	}

	// Logging out twice is fine
	if err := Logout(); err != nil {
		t.Errorf("second Logout() failed: %v", err)
	}
}
