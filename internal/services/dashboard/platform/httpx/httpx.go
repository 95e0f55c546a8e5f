// Package httpx provides HTTP middleware and response helpers for the dashboard.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	apperrors "github.com/louisbranch/covidau/internal/services/dashboard/platform/errors"
)

const (
	htmxHeader      = "HX-Request"
	requestIDHeader = "X-Request-ID"
)

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware in declaration order, so the first entry sees
// the request first. Nil entries are skipped.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	wrapped := orNotFound(handler)
	for idx := len(middleware) - 1; idx >= 0; idx-- {
		if middleware[idx] != nil {
			wrapped = middleware[idx](wrapped)
		}
	}
	return wrapped
}

func orNotFound(next http.Handler) http.Handler {
	if next == nil {
		return http.NotFoundHandler()
	}
	return next
}

// wrap adapts a handler-level function into a nil-safe Middleware.
func wrap(fn func(next http.Handler, w http.ResponseWriter, r *http.Request)) Middleware {
	return func(next http.Handler) http.Handler {
		next = orNotFound(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fn(next, w, r)
		})
	}
}

// RequestID reuses an incoming X-Request-ID or assigns a UUID, and echoes
// it on the response.
func RequestID() Middleware {
	return wrap(func(next http.Handler, w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set(requestIDHeader, requestID)
		}
		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

// RecoverPanic logs a recovered panic with its request and answers 500.
func RecoverPanic() Middleware {
	return wrap(func(next http.Handler, w http.ResponseWriter, r *http.Request) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if requestID == "" {
				requestID = "-"
			}
			log.Printf("panic recovered method=%s path=%s request_id=%s panic=%v stack=%s",
				r.Method, r.URL.Path, requestID, recovered, bytes.TrimSpace(debug.Stack()))
			w.WriteHeader(http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}

// AccessLog writes one Apache combined log line per request to out.
// A nil out logs to the standard logger's writer.
func AccessLog(out io.Writer) Middleware {
	return func(next http.Handler) http.Handler {
		if out == nil {
			out = log.Writer()
		}
		return handlers.CombinedLoggingHandler(out, orNotFound(next))
	}
}

// Compress gzips responses for clients that accept it.
func Compress() Middleware {
	return func(next http.Handler) http.Handler {
		return handlers.CompressHandler(orNotFound(next))
	}
}

// CacheControl sets a Cache-Control header on every response.
func CacheControl(value string) Middleware {
	value = strings.TrimSpace(value)
	return wrap(func(next http.Handler, w http.ResponseWriter, r *http.Request) {
		if value != "" {
			w.Header().Set("Cache-Control", value)
		}
		next.ServeHTTP(w, r)
	})
}

// WriteJSON writes a JSON response with the provided status code.
func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return fmt.Errorf("response writer is required")
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

type errorBody struct {
	Error string `json:"error"`
}

// WriteJSONError writes {"error": message} with status.
func WriteJSONError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, errorBody{Error: message})
}

// WriteError writes message as plain text with err's typed status. An
// empty message falls back to err's text.
func WriteError(w http.ResponseWriter, err error, message string) {
	if w == nil {
		return
	}
	if err == nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	if message == "" {
		message = err.Error()
	}
	http.Error(w, message, apperrors.HTTPStatus(err))
}

// RequestContext returns the request context, or Background for a nil request.
func RequestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

// IsHTMXRequest reports whether the current request came from HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return r.Header.Get(htmxHeader) == "true"
}

// WriteHTML writes an HTML payload with the provided status code.
func WriteHTML(w http.ResponseWriter, status int, payload string) error {
	if w == nil {
		return fmt.Errorf("response writer is required")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, payload)
	return err
}
