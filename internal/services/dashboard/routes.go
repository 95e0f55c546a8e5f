package dashboard

import (
	"net/http"

	"github.com/louisbranch/covidau/internal/services/dashboard/routepath"
)

// instrumentFunc wraps a route handler with request metrics.
type instrumentFunc func(route string, next http.Handler) http.Handler

func registerRoutes(mux *http.ServeMux, h handlers, instrument instrumentFunc) {
	if mux == nil {
		return
	}
	if instrument == nil {
		instrument = func(_ string, next http.Handler) http.Handler { return next }
	}
	mux.Handle(http.MethodGet+" "+routepath.Root, instrument("page", http.HandlerFunc(h.handlePage)))
	mux.Handle(http.MethodGet+" "+routepath.Update, instrument("update", http.HandlerFunc(h.handleUpdate)))
	mux.Handle(http.MethodGet+" "+routepath.UpdateJSON, instrument("update_json", http.HandlerFunc(h.handleUpdateJSON)))
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
}
