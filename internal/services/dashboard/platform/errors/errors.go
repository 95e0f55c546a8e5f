// Package errors classifies dashboard request failures so handlers can pick
// an HTTP status and a localized visitor message from one value.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies a failure.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
)

// Message keys used when an Error carries no key of its own.
const (
	KeyInvalidInput = "error.invalid_input"
	KeyNotFound     = "error.not_found"
	KeyFailed       = "error.update_failed"
)

// Error is a classified failure. Key names the localized message shown to
// visitors; Message and Err are for logs.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error
}

func (e Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e Error) Unwrap() error {
	return e.Err
}

// New returns a classified error. An empty key falls back to the kind's
// default key.
func New(kind Kind, key, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Wrap classifies cause. A nil cause returns nil.
func Wrap(kind Kind, key, message string, cause error) error {
	if cause == nil {
		return nil
	}
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message, Err: cause}
}

func as(err error) (Error, bool) {
	var appErr Error
	ok := err != nil && stderrors.As(err, &appErr)
	return appErr, ok
}

// KindOf returns the kind of the first Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	if appErr, ok := as(err); ok {
		return appErr.Kind
	}
	return KindUnknown
}

// LocalizationKey returns the message key for err: its own key when set,
// otherwise the default for its kind. A nil err has no key.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := as(err); ok && appErr.Key != "" {
		return appErr.Key
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return KeyInvalidInput
	case KindNotFound:
		return KeyNotFound
	default:
		return KeyFailed
	}
}

// HTTPStatus maps err to a response status.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
