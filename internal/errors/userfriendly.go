package errors

import (
	"fmt"
	"strings"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "The config file may be missing, unreadable, or contain invalid values",
		Try:     fmt.Sprintf("Regenerate a default config: pulsepad init --config %s", configPath),
		Err:     err,
	}
}

// WrapTerminalError wraps terminal setup errors with user-friendly context
func WrapTerminalError(err error) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: "Failed to start the interactive playground",
		Reason:  extractTerminalReason(err),
		Hint:    "The playground needs an interactive terminal; pipes and plain CI shells will not work",
		Try:     "pulsepad play --cli",
		Err:     err,
	}
}

// WrapSessionError wraps session artifact errors with user-friendly context
func WrapSessionError(err error, dir string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to write session artifacts under %s", dir),
		Reason:  extractSessionReason(err),
		Hint:    "Session recording needs a writable directory",
		Try:     "pulsepad play --session-dir /tmp/pulsepad-runs",
		Err:     err,
	}
}

func extractTerminalReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "not a terminal") || strings.Contains(errStr, "inappropriate ioctl") {
		return "Standard input is not attached to a terminal"
	}
	if strings.Contains(errStr, "could not open") || strings.Contains(errStr, "no such device") {
		return "No usable TTY device was found"
	}
	if strings.Contains(errStr, "permission denied") {
		return "Permission denied while opening the terminal device"
	}

	return "Terminal initialization failed"
}

func extractSessionReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "permission denied") {
		return "Permission denied - the session directory is not writable"
	}
	if strings.Contains(errStr, "no space left") {
		return "The disk holding the session directory is full"
	}
	if strings.Contains(errStr, "read-only file system") {
		return "The session directory lives on a read-only file system"
	}
	if strings.Contains(errStr, "not a directory") {
		return "The session path exists but is not a directory"
	}

	return "Session artifact write failed"
}
