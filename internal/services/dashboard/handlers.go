package dashboard

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/covidau/internal/platform/branding"
	"github.com/louisbranch/covidau/internal/services/dashboard/i18n"
	apperrors "github.com/louisbranch/covidau/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/covidau/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/covidau/internal/services/dashboard/routepath"
	"github.com/louisbranch/covidau/internal/services/dashboard/templates"
	"golang.org/x/text/message"
)

// Page resources loaded by the layout.
var (
	pageStyles  = []string{routepath.StaticPrefix + "dashboard.css"}
	pageScripts = []string{
		"https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js",
		"https://cdn.plot.ly/plotly-2.35.2.min.js",
		routepath.StaticPrefix + "dashboard.js",
	}
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

type updateOutput struct {
	Slot  string `json:"slot"`
	Value any    `json:"value"`
}

type updateResponse struct {
	Outputs []updateOutput `json:"outputs"`
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	loc := i18n.Printer(i18n.ResolveTag(r))
	if routepath.Resolve(r.URL.Path) != routepath.ViewOverview {
		notFound := apperrors.New(apperrors.KindNotFound, "title.not_found", "no view for "+r.URL.Path)
		h.writePage(w, r, loc, apperrors.LocalizationKey(notFound), apperrors.HTTPStatus(notFound), templates.NotFound(loc))
		return
	}

	sel, err := parseSelection(r.URL.Query(), r.URL.Path, h.service.bounds())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	data, err := h.service.overview(i18n.WithPrinter(httpx.RequestContext(r), loc), sel)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	data.Loc = loc
	h.writePage(w, r, loc, "title.overview", http.StatusOK, templates.Overview(data))
}

func (h handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r.URL.Query(), "", h.service.bounds())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	updates, err := h.service.update(requestPrinterContext(r), sel)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(updates) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	components := make([]templ.Component, 0, len(updates))
	for _, u := range updates {
		c, err := fragment(u)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		components = append(components, c)
	}
	var buf bytes.Buffer
	if err := templates.Join(components...).Render(httpx.RequestContext(r), &buf); err != nil {
		h.writeError(w, r, err)
		return
	}
	_ = httpx.WriteHTML(w, http.StatusOK, buf.String())
}

func (h handlers) handleUpdateJSON(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r.URL.Query(), "", h.service.bounds())
	if err != nil {
		h.writeJSONError(w, err)
		return
	}
	updates, err := h.service.update(requestPrinterContext(r), sel)
	if err != nil {
		h.writeJSONError(w, err)
		return
	}
	resp := updateResponse{Outputs: make([]updateOutput, 0, len(updates))}
	for _, u := range updates {
		resp.Outputs = append(resp.Outputs, updateOutput{Slot: string(u.Slot), Value: u.Value})
	}
	if err := httpx.WriteJSON(w, http.StatusOK, resp); err != nil {
		log.Printf("write update json: %v", err)
	}
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

// writePage renders body inside the layout, or alone for HTMX requests.
func (h handlers) writePage(w http.ResponseWriter, r *http.Request, loc *message.Printer, titleKey string, status int, body templ.Component) {
	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := body.Render(ctx, &buf); err != nil {
			h.writeError(w, r, err)
			return
		}
	} else {
		layout := templates.Layout(templates.LayoutData{
			Title:      loc.Sprintf(titleKey, branding.AppName),
			Lang:       i18n.ResolveTag(r).String(),
			LogoPath:   h.service.settings.Assets.LogoPath,
			ActivePath: r.URL.Path,
			Palette:    h.service.settings.Palette,
			Styles:     pageStyles,
			Scripts:    pageScripts,
			Loc:        loc,
		})
		if err := layout.Render(templ.WithChildren(ctx, body), &buf); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	_ = httpx.WriteHTML(w, status, buf.String())
}

// requestPrinterContext carries the request language into binding dispatch.
func requestPrinterContext(r *http.Request) context.Context {
	return i18n.WithPrinter(httpx.RequestContext(r), i18n.Printer(i18n.ResolveTag(r)))
}

// writeError answers with err's status and its localized visitor message.
// Server-side failures are logged because their detail is not shown.
func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
		log.Printf("dashboard request failed path=%s: %v", r.URL.Path, err)
	}
	loc := i18n.Printer(i18n.ResolveTag(r))
	httpx.WriteError(w, err, loc.Sprintf(apperrors.LocalizationKey(err)))
}

func (h handlers) writeJSONError(w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatus(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		log.Printf("dashboard update failed: %v", err)
		msg = http.StatusText(status)
	}
	_ = httpx.WriteJSONError(w, status, msg)
}
