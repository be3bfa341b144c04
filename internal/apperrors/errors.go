// Package apperrors defines the typed error kinds shared across the
// operator and worker binaries. Every layer wraps the error it receives
// from a collaborator into one of these kinds via Wrap, preserving the
// original cause so callers can still errors.Is/errors.As through it.
package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the category of failure. Kinds are stable across
// releases; callers should match on Kind rather than on error strings.
type Kind string

const (
	// ConfigMissing indicates a required environment variable was absent.
	ConfigMissing Kind = "ConfigMissing"
	// ApiError indicates a Kubernetes API transport or server error.
	ApiError Kind = "ApiError"
	// CrdNameInvalid indicates a CRD object had no metadata.name set.
	CrdNameInvalid Kind = "CrdNameInvalid"
	// SecretShapeInvalid indicates a referenced Secret was missing a
	// required key, or a key expected to be UTF-8 was not.
	SecretShapeInvalid Kind = "SecretShapeInvalid"
	// GitError indicates a clone, auth, or host-key failure.
	GitError Kind = "GitError"
	// OciError indicates an OCI artifact pull failure.
	OciError Kind = "OciError"
	// FetchError is the umbrella kind over Git/OCI fetch failures that
	// don't fit either more specific kind (e.g. unknown source variant).
	FetchError Kind = "FetchError"
	// UpdateFailed indicates the stack service could not materialize the
	// stack's workload objects.
	UpdateFailed Kind = "UpdateFailed"
	// CancelFailed indicates the stack service could not revoke the
	// stack's workload.
	CancelFailed Kind = "CancelFailed"
	// UpdateWatchFailed indicates the controller's watch stream ended
	// unexpectedly.
	UpdateWatchFailed Kind = "UpdateWatchFailed"
)

// Error is the concrete error type carried through every layer boundary.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As traverse through it.
func (e *Error) Unwrap() error { return e.cause }

// New creates a kind-tagged error with no wrapped cause.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a kind-tagged error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags cause with kind, preserving it as the Unwrap() target and
// prefixing it with message via github.com/pkg/errors so the stack trace
// recorded at the original failure site survives the wrap.
func Wrap(cause error, kind Kind, message string) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, cause: errors.Wrap(cause, message)}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(cause error, kind Kind, format string, args ...interface{}) error {
	if cause == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return &Error{Kind: kind, Message: msg, cause: errors.Wrap(cause, msg)}
}

// Is reports whether err (or any error it wraps) carries the given Kind.
func Is(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.cause
	}
	return false
}
