package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/covidau/internal/platform/branding"
)

// LayoutData configures the page shell shared by every view.
type LayoutData struct {
	Title      string
	Lang       string
	LogoPath   string
	ActivePath string
	Palette    branding.Palette
	// Styles and Scripts are emitted in order in the document head.
	Styles  []string
	Scripts []string
	Loc     Localizer
}

// NavLink is one entry in the top navigation bar.
type NavLink struct {
	Key  string
	Path string
}

// NavLinks lists the navigation entries in display order.
var NavLinks = []NavLink{
	{Key: "nav.overview", Path: "/"},
	{Key: "nav.about", Path: "/about"},
}

// Layout renders the full HTML document around the context's children.
func Layout(data LayoutData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		lang := strings.TrimSpace(data.Lang)
		if lang == "" {
			lang = "en"
		}
		m.raw("<!doctype html>")
		m.open("html", "lang", lang)
		m.raw("<head>")
		m.open("meta", "charset", "utf-8")
		m.open("meta", "name", "viewport", "content", "width=device-width, initial-scale=1")
		m.element("title", data.Title)
		for _, href := range data.Styles {
			m.open("link", "rel", "stylesheet", "href", href)
		}
		for _, src := range data.Scripts {
			m.open("script", "src", src, "defer?", "defer")
			m.close("script")
		}
		m.raw("</head>")
		m.open("body", "style", paletteStyle(data.Palette))
		navBar(m, data)
		m.open("main", "id", "page-content", "class", "content")
		m.child(ctx, templ.GetChildren(ctx))
		m.close("main")
		m.raw("</body></html>")
		return m.err
	})
}

func navBar(m *markup, data LayoutData) {
	m.open("nav", "id", "nav", "class", "nav")
	m.open("a", "id", "nav-logo", "class", "nav-logo", "href", "/")
	m.open("img", "src", data.LogoPath, "alt", T(data.Loc, "nav.logo_alt", branding.AppName), "height", "32")
	m.close("a")
	for _, link := range NavLinks {
		class := "nav-link"
		if link.Path == data.ActivePath {
			class += " active"
		}
		id := "nav-" + strings.TrimPrefix(strings.ReplaceAll(link.Key, ".", "-"), "nav-") + "-link"
		m.element("a", T(data.Loc, link.Key), "id", id, "class", class, "href", link.Path)
	}
	m.close("nav")
}

func paletteStyle(p branding.Palette) string {
	vars := []struct{ name, value string }{
		{"--light-gray", p.LightGray},
		{"--dark-gray", p.DarkGray},
		{"--blue", p.Blue},
		{"--green", p.Green},
		{"--red", p.Red},
		{"--pink", p.Pink},
		{"--orange", p.Orange},
		{"--aqua", p.Aqua},
	}
	var b strings.Builder
	for _, v := range vars {
		if v.value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(v.name + ": " + v.value + ";")
	}
	return b.String()
}
