package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/habitlog/internal/logger"
)

var (
	// ErrValidation marks input rejected before it reaches the store.
	ErrValidation = stderrors.New("invalid input")
	// ErrStorage marks a failed insert, query or delete. Operations that fail
	// with it are not retried.
	ErrStorage = stderrors.New("storage failure")
)

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

// Notice maps err to the short, transient message shown after action failed.
// Action reads as a verb phrase, e.g. "save your habit".
func Notice(action string, err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, ErrValidation):
		return err.Error()
	case stderrors.Is(err, ErrStorage):
		if action == "" {
			return "Something went wrong. Please try again."
		}
		return fmt.Sprintf("Failed to %s! Please try again.", action)
	default:
		return Format(err)
	}
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
