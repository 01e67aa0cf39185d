package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUserFriendlyError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      UserFriendlyError
		contains []string
	}{
		{
			name:     "message only",
			err:      UserFriendlyError{Message: "something broke"},
			contains: []string{"something broke"},
		},
		{
			name: "all fields",
			err: UserFriendlyError{
				Message: "startup failed",
				Reason:  "no tty",
				Hint:    "use a real terminal",
				Try:     "pulsepad play --cli",
				Err:     fmt.Errorf("open /dev/tty: no such device"),
			},
			contains: []string{"startup failed", "Reason: no tty", "Hint: use a real terminal", "Try: pulsepad play --cli", "Details: open /dev/tty: no such device"},
		},
		{
			name: "no reason",
			err: UserFriendlyError{
				Message: "failed",
				Hint:    "hint here",
			},
			contains: []string{"failed", "Hint: hint here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error() = %q, want to contain %q", msg, s)
				}
			}
		})
	}
}

func TestUserFriendlyError_ErrorOmitsEmptyFields(t *testing.T) {
	err := UserFriendlyError{Message: "msg"}
	msg := err.Error()
	if strings.Contains(msg, "Reason:") || strings.Contains(msg, "Hint:") || strings.Contains(msg, "Try:") || strings.Contains(msg, "Details:") {
		t.Errorf("Error() = %q, should not contain empty fields", msg)
	}
}

func TestUserFriendlyError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("root cause")
	err := UserFriendlyError{Message: "wrapper", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("Unwrap should return the inner error")
	}

	var nilErr UserFriendlyError
	if nilErr.Unwrap() != nil {
		t.Error("Unwrap on nil Err should return nil")
	}
}

func TestWrapConfigError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if WrapConfigError(nil, "config.yaml") != nil {
			t.Error("expected nil")
		}
	})

	t.Run("wraps config error", func(t *testing.T) {
		err := WrapConfigError(fmt.Errorf("invalid yaml"), "pulsepad.yaml")
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Message, "pulsepad.yaml") {
			t.Errorf("message should contain config path, got %q", ufe.Message)
		}
		if ufe.Reason != "invalid yaml" {
			t.Errorf("reason should be inner error message, got %q", ufe.Reason)
		}
		if !strings.Contains(ufe.Try, "pulsepad init") {
			t.Errorf("try should suggest regenerating the config, got %q", ufe.Try)
		}
	})
}

func TestWrapTerminalError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if WrapTerminalError(nil) != nil {
			t.Error("expected nil")
		}
	})

	t.Run("not a terminal", func(t *testing.T) {
		err := WrapTerminalError(fmt.Errorf("stdin is not a terminal"))
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Reason, "not attached to a terminal") {
			t.Errorf("reason should mention the missing terminal, got %q", ufe.Reason)
		}
		if !strings.Contains(ufe.Try, "--cli") {
			t.Errorf("try should suggest the cli fallback, got %q", ufe.Try)
		}
	})

	t.Run("missing tty device", func(t *testing.T) {
		err := WrapTerminalError(fmt.Errorf("open /dev/tty: no such device"))
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Reason, "TTY") {
			t.Errorf("reason should mention the tty device, got %q", ufe.Reason)
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		err := WrapTerminalError(fmt.Errorf("open /dev/tty: permission denied"))
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Reason, "Permission denied") {
			t.Errorf("reason should mention permissions, got %q", ufe.Reason)
		}
	})

	t.Run("generic terminal error", func(t *testing.T) {
		err := WrapTerminalError(fmt.Errorf("something else"))
		ufe := err.(UserFriendlyError)
		if ufe.Reason != "Terminal initialization failed" {
			t.Errorf("unexpected reason: %q", ufe.Reason)
		}
	})
}

func TestWrapSessionError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if WrapSessionError(nil, "runs") != nil {
			t.Error("expected nil")
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		err := WrapSessionError(fmt.Errorf("mkdir runs: permission denied"), "runs")
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Message, "runs") {
			t.Errorf("message should contain the directory, got %q", ufe.Message)
		}
		if !strings.Contains(ufe.Reason, "not writable") {
			t.Errorf("reason should mention writability, got %q", ufe.Reason)
		}
	})

	t.Run("disk full", func(t *testing.T) {
		err := WrapSessionError(fmt.Errorf("write summary.json: no space left on device"), "runs")
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Reason, "full") {
			t.Errorf("reason should mention the full disk, got %q", ufe.Reason)
		}
	})

	t.Run("read-only file system", func(t *testing.T) {
		err := WrapSessionError(fmt.Errorf("mkdir runs: read-only file system"), "runs")
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Reason, "read-only") {
			t.Errorf("reason should mention read-only, got %q", ufe.Reason)
		}
	})

	t.Run("generic session error", func(t *testing.T) {
		err := WrapSessionError(fmt.Errorf("something"), "runs")
		ufe := err.(UserFriendlyError)
		if ufe.Reason != "Session artifact write failed" {
			t.Errorf("unexpected reason: %q", ufe.Reason)
		}
	})
}
