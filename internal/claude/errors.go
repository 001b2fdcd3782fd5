package claude

import (
	"context"
	"errors"
	"fmt"
)

// ConnectError means the collaborator process could not be launched at all.
// Callers treat it as a connectivity failure and fall back to canned content.
type ConnectError struct {
	Binary string
	Cause  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect to %s: %v", e.Binary, e.Cause)
}

func (e *ConnectError) Unwrap() error {
	return e.Cause
}

// ProcessError means the collaborator ran but failed: a non-zero exit, an
// error result, or an exit before the terminating result line.
type ProcessError struct {
	Message  string
	ExitCode int
	Stderr   string
	Cause    error
}

func (e *ProcessError) Error() string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("claude process: %s (exit code %d)", e.Message, e.ExitCode)
	}
	return fmt.Sprintf("claude process: %s", e.Message)
}

func (e *ProcessError) Unwrap() error {
	return e.Cause
}

// ProtocolError means a stdout line did not parse as stream-json.
type ProtocolError struct {
	Message string
	Line    string
	Cause   error
}

func (e *ProtocolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("protocol error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("protocol error: %s", e.Message)
}

func (e *ProtocolError) Unwrap() error {
	return e.Cause
}

// IsCancellation reports whether err is user-initiated cancellation.
// Cancellation is fatal to the whole run and must propagate unwrapped;
// every other collaborator error degrades to fallback behavior.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsConnectivity reports whether err is a launch/connection failure, which
// gets the connectivity wording in fallback documents.
func IsConnectivity(err error) bool {
	var ce *ConnectError
	return errors.As(err, &ce)
}
