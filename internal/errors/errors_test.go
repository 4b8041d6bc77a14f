package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "wrapped storage error",
			err:      fmt.Errorf("%w: insert entry: %w", ErrStorage, errors.New("disk full")),
			expected: "Error: storage failure: insert entry: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	result := Formatf("entry %d not found", 42)
	if result != "Error: entry 42 not found" {
		t.Errorf("Formatf() = %q, want %q", result, "Error: entry 42 not found")
	}
}

func TestNotice(t *testing.T) {
	storageErr := fmt.Errorf("%w: insert entry: %w", ErrStorage, errors.New("database is locked"))

	tests := []struct {
		name     string
		action   string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			action:   "save your habit",
			err:      nil,
			expected: "",
		},
		{
			name:     "validation error keeps its message",
			action:   "save your habit",
			err:      fmt.Errorf("%w: habit name cannot be empty", ErrValidation),
			expected: "invalid input: habit name cannot be empty",
		},
		{
			name:     "storage error on save",
			action:   "save your habit",
			err:      storageErr,
			expected: "Failed to save your habit! Please try again.",
		},
		{
			name:     "storage error on load",
			action:   "load today's habits",
			err:      storageErr,
			expected: "Failed to load today's habits! Please try again.",
		},
		{
			name:     "storage error without action",
			err:      storageErr,
			expected: "Something went wrong. Please try again.",
		},
		{
			name:     "other errors are formatted",
			action:   "delete the entry",
			err:      errors.New("boom"),
			expected: "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Notice(tt.action, tt.err); got != tt.expected {
				t.Errorf("Notice(%q, %v) = %q, want %q", tt.action, tt.err, got, tt.expected)
			}
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	err := fmt.Errorf("%w: query: %w", ErrStorage, errors.New("closed"))
	if !errors.Is(err, ErrStorage) {
		t.Error("expected wrapped error to match ErrStorage")
	}
	if errors.Is(err, ErrValidation) {
		t.Error("storage error should not match ErrValidation")
	}
}

// TestFatal tests the Fatal function using exec helper process
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(errors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: test error") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderr.String(), "Error: test error")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

// TestFatal_NilError tests that Fatal does nothing when passed a nil error
func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal_NilError")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}

func TestFatalf(t *testing.T) {
	if os.Getenv("GO_TEST_FATALF") == "1" {
		Fatalf("failed to open %s storage: %v", "sqlite", errors.New("storage not initialized"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatalf$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATALF=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		want := "Error: failed to open sqlite storage: storage not initialized"
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("Fatalf() stderr = %q, want to contain %q", stderr.String(), want)
		}
	} else {
		t.Errorf("Fatalf() did not exit with error: %v", err)
	}
}
