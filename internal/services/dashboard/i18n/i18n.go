// Package i18n provides the dashboard's message catalog and number formatting.
package i18n

import (
	"context"
	"math"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var (
	supported = []language.Tag{language.English}
	matcher   = language.NewMatcher(supported)
)

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

type printerKey struct{}

// WithPrinter attaches the request's printer to ctx.
func WithPrinter(ctx context.Context, p *message.Printer) context.Context {
	return context.WithValue(ctx, printerKey{}, p)
}

// PrinterFrom returns the printer attached by WithPrinter, or a printer for
// Default.
func PrinterFrom(ctx context.Context) *message.Printer {
	if ctx != nil {
		if p, ok := ctx.Value(printerKey{}).(*message.Printer); ok && p != nil {
			return p
		}
	}
	return Printer(Default())
}

// ResolveTag picks the best supported tag from the lang query parameter,
// then Accept-Language, falling back to Default.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	var prefs []string
	if lang := strings.TrimSpace(r.URL.Query().Get(LangParam)); lang != "" {
		prefs = append(prefs, lang)
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		prefs = append(prefs, accept)
	}
	if len(prefs) == 0 {
		return Default()
	}
	tag, _ := language.MatchStrings(matcher, prefs...)
	base, _ := tag.Base()
	for _, candidate := range supported {
		if b, _ := candidate.Base(); b == base {
			return candidate
		}
	}
	return Default()
}

// FormatCount rounds v to a whole number and groups thousands for p's locale.
func FormatCount(p *message.Printer, v float64) string {
	if p == nil {
		p = Printer(Default())
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return p.Sprintf("%d", int64(math.Round(v)))
}
