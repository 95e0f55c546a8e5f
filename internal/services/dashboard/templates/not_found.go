package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NotFound renders the static page shown for every path but the overview.
func NotFound(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.open("div", "id", "404", "class", "not-found")
		m.element("h1", T(loc, "not_found.heading"))
		m.element("a", T(loc, "not_found.back"), "href", "/")
		m.close("div")
		return m.err
	})
}
