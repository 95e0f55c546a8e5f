package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// markup writes HTML and keeps the first write error.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// open writes a start tag. attrs alternate name and value; an empty value
// for a name ending in "?" writes nothing, otherwise a boolean attribute.
func (m *markup) open(tag string, attrs ...string) {
	m.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		name, value := attrs[i], attrs[i+1]
		if optional, ok := strings.CutSuffix(name, "?"); ok {
			if value == "" {
				continue
			}
			m.raw(" " + optional)
			continue
		}
		m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
	}
	m.raw(">")
}

func (m *markup) close(tag string) {
	m.raw("</" + tag + ">")
}

func (m *markup) element(tag, content string, attrs ...string) {
	m.open(tag, attrs...)
	m.text(content)
	m.close(tag)
}

func (m *markup) child(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

func boolAttr(on bool) string {
	if on {
		return "on"
	}
	return ""
}
