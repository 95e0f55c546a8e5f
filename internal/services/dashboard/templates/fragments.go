package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// StatValue renders a stat slot. With oob set it carries hx-swap-oob so an
// update response replaces the slot in place.
func StatValue(slot, value string, oob bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		attrs := []string{"id", slot, "class", "stat-value"}
		if oob {
			attrs = append(attrs, "hx-swap-oob", "true")
		}
		m.element("span", value, attrs...)
		return m.err
	})
}

// ChartGraph renders a chart slot; the figure is drawn client-side from
// its data-figure attribute.
func ChartGraph(slot string, figure []byte, oob bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		attrs := []string{"id", slot, "class", "chart-graph", "data-figure", string(figure)}
		if oob {
			attrs = append(attrs, "hx-swap-oob", "true")
		}
		m.open("div", attrs...)
		m.close("div")
		return m.err
	})
}

// Join renders components back to back.
func Join(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		for _, c := range components {
			m.child(ctx, c)
		}
		return m.err
	})
}
