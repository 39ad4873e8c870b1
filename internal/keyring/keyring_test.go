package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	testConnStr := "postgres://testuser@localhost:5432/testdb?sslmode=disable"

	if err := SetConnectionString(testConnStr); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	retrieved, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if retrieved != testConnStr {
		t.Errorf("GetConnectionString() = %q, want %q", retrieved, testConnStr)
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() failed: %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetConnectionString() after delete error = %v, want ErrNotFound", err)
	}
}

func TestSetConnectionStringEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString(""); err == nil {
		t.Error("SetConnectionString(\"\") should return an error")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	gokeyring.MockInit()

	if _, err := GetSessionUserID(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetSessionUserID() with no session error = %v, want ErrNotFound", err)
	}

	if err := SetSessionUserID("user-123"); err != nil {
		t.Fatalf("SetSessionUserID() failed: %v", err)
	}

	userID, err := GetSessionUserID()
	if err != nil {
		t.Fatalf("GetSessionUserID() failed: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("GetSessionUserID() = %q, want %q", userID, "user-123")
	}

	if err := ClearSession(); err != nil {
		t.Fatalf("ClearSession() failed: %v", err)
	}
	if _, err := GetSessionUserID(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetSessionUserID() after clear error = %v, want ErrNotFound", err)
	}
}

func TestSetSessionUserIDEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetSessionUserID(""); err == nil {
		t.Error("SetSessionUserID(\"\") should return an error")
	}
}

// Session and connection entries must not clobber each other
func TestAccountsAreIndependent(t *testing.T) {
	gokeyring.MockInit()

	if err := SetSessionUserID("user-abc"); err != nil {
		t.Fatalf("SetSessionUserID() failed: %v", err)
	}
	if err := SetConnectionString("postgres://u@h/db"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	userID, err := GetSessionUserID()
	if err != nil || userID != "user-abc" {
		t.Errorf("GetSessionUserID() = %q, %v", userID, err)
	}

	if err := ClearSession(); err != nil {
		t.Fatalf("ClearSession() failed: %v", err)
	}
	if _, err := GetConnectionString(); err != nil {
		t.Errorf("connection string lost after session clear: %v", err)
	}
}
