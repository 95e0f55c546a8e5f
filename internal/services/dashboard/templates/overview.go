package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// StateOption is one entry of the state selector.
type StateOption struct {
	Code     string
	Name     string
	Selected bool
}

// DateRange bounds and fills the date range control. Values use 2006-01-02.
type DateRange struct {
	Min   string
	Max   string
	Start string
	End   string
}

// StatTile is a headline number with its copy keys and accent colour.
type StatTile struct {
	Slot        string
	TitleKey    string
	SubtitleKey string
	Color       string
	Value       string
}

// ChartPanel is a titled chart slot holding an encoded figure.
type ChartPanel struct {
	Slot        string
	TitleKey    string
	SubtitleKey string
	Figure      []byte
}

// OverviewData is everything the overview body renders.
type OverviewData struct {
	Path       string
	UpdatePath string
	States     []StateOption
	Dates      DateRange
	Stats      []StatTile
	Charts     []ChartPanel
	Loc        Localizer
}

// Overview renders the controls, stat tiles, and chart panels.
func Overview(data OverviewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.open("div", "id", "overview", "class", "overview")
		controls(m, data)

		m.open("div", "id", "overview-stats", "class", "row stats")
		for _, tile := range data.Stats {
			m.open("div", "id", tile.Slot+"-tile", "class", "col stat", "style", "--stat-color: "+tile.Color+";")
			m.element("p", T(data.Loc, tile.TitleKey), "class", "stat-title")
			m.element("p", T(data.Loc, tile.SubtitleKey), "class", "stat-subtitle")
			m.child(ctx, StatValue(tile.Slot, tile.Value, false))
			m.close("div")
		}
		m.close("div")

		m.open("div", "id", "overview-charts", "class", "row charts")
		for _, panel := range data.Charts {
			m.open("div", "id", panel.Slot+"-panel", "class", "col chart")
			m.element("h2", T(data.Loc, panel.TitleKey), "class", "chart-title")
			if panel.SubtitleKey != "" {
				m.element("p", T(data.Loc, panel.SubtitleKey), "class", "chart-subtitle")
			}
			m.child(ctx, ChartGraph(panel.Slot, panel.Figure, false))
			m.close("div")
		}
		m.close("div")

		m.close("div")
		return m.err
	})
}

func controls(m *markup, data OverviewData) {
	m.open("form", "id", "overview-controls", "class", "row controls", "action", data.Path, "method", "get")
	m.open("input", "type", "hidden", "name", "path", "value", data.Path)

	m.open("div", "id", "state-dropdown", "class", "col control")
	m.element("label", T(data.Loc, "overview.state.label"), "class", "control-label", "for", "state-dropdown-select")
	m.open("select",
		"id", "state-dropdown-select",
		"name", "state",
		"hx-get", data.UpdatePath,
		"hx-trigger", "change",
		"hx-include", "#overview-controls",
		"hx-vals", `{"changed":"state"}`,
		"hx-swap", "none",
	)
	m.open("option", "value", "", "selected?", boolAttr(!anySelected(data.States)))
	m.text(T(data.Loc, "overview.state.all"))
	m.close("option")
	for _, state := range data.States {
		m.open("option", "value", state.Code, "selected?", boolAttr(state.Selected))
		m.text(state.Name)
		m.close("option")
	}
	m.close("select")
	m.close("div")

	m.open("div", "id", "date-picker", "class", "col control date-picker")
	m.element("label", T(data.Loc, "overview.date.label"), "class", "control-label", "for", "date-picker-start")
	for _, field := range []struct{ id, name, key, value string }{
		{"date-picker-start", "start", "overview.date.start", data.Dates.Start},
		{"date-picker-end", "end", "overview.date.end", data.Dates.End},
	} {
		m.open("input",
			"id", field.id,
			"type", "date",
			"name", field.name,
			"aria-label", T(data.Loc, field.key),
			"min", data.Dates.Min,
			"max", data.Dates.Max,
			"value", field.value,
			"hx-get", data.UpdatePath,
			"hx-trigger", "change",
			"hx-include", "#overview-controls",
			"hx-vals", `{"changed":"dates"}`,
			"hx-swap", "none",
		)
	}
	m.close("div")
	m.close("form")
}

func anySelected(states []StateOption) bool {
	for _, s := range states {
		if s.Selected {
			return true
		}
	}
	return false
}
