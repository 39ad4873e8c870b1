package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/lifeos-app/lifeos/internal/logger"
)

// Sentinel error kinds. Stores translate backend failures into these so
// callers can branch on errors.Is instead of sniffing message text.
var (
	// ErrNotFound is returned when a requested row does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a uniqueness constraint is violated,
	// e.g. a second weekly review for the same week
	ErrConflict = errors.New("already exists")
	// ErrUnauthenticated is returned when no user session is active
	ErrUnauthenticated = errors.New("not logged in")
	// ErrInvalid is returned when input fails validation
	ErrInvalid = errors.New("invalid input")
)

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
