// Package apperr holds the typed failures returned by capability adapters
// (identity, documents, uploads, generative AI). Adapters classify provider
// errors once, at their boundary; callers branch on the type.
package apperr

import (
	"errors"
	"fmt"
)

// QuotaExceededError reports that a provider rejected the call for quota or
// rate reasons (HTTP 429, RESOURCE_EXHAUSTED).
type QuotaExceededError struct {
	Provider string
	Err      error
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s: quota exceeded: %v", e.Provider, e.Err)
}

func (e *QuotaExceededError) Unwrap() error { return e.Err }

// TransientError is any other provider failure: network, timeout, 5xx,
// permission problems on the backing project.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// AuthError is a credential rejection. Message is safe to show to the visitor.
type AuthError struct {
	Code    string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AuthError) Unwrap() error { return e.Err }

// Quota wraps err as a QuotaExceededError.
func Quota(provider string, err error) error {
	return &QuotaExceededError{Provider: provider, Err: err}
}

// Transient wraps err as a TransientError.
func Transient(op string, err error) error {
	return &TransientError{Op: op, Err: err}
}

// IsQuota reports whether err is or wraps a QuotaExceededError.
func IsQuota(err error) bool {
	var q *QuotaExceededError
	return errors.As(err, &q)
}

// IsTransient reports whether err is or wraps a TransientError.
func IsTransient(err error) bool {
	var t *TransientError
	return errors.As(err, &t)
}

// AsAuth extracts an AuthError from err.
func AsAuth(err error) (*AuthError, bool) {
	var a *AuthError
	if errors.As(err, &a) {
		return a, true
	}
	return nil, false
}
