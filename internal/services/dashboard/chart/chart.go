// Package chart builds Plotly-compatible figure specifications from
// aggregated series. Figures are plain values; the browser renders them.
package chart

import (
	"encoding/json"

	"github.com/louisbranch/covidau/internal/covid/aggregate"
	"github.com/louisbranch/covidau/internal/covid/dataset"
)

const (
	TypeScatter = "scatter"
	ModeLines   = "lines"

	// SecondaryAxis assigns a trace to the right-hand y axis.
	SecondaryAxis = "y2"

	background = "#ffffff"
	gridColor  = "#EBF0F8"
)

// Figure is a complete chart: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one plotted series.
type Trace struct {
	Type  string    `json:"type"`
	Mode  string    `json:"mode"`
	Name  string    `json:"name"`
	X     []string  `json:"x"`
	Y     []float64 `json:"y"`
	YAxis string    `json:"yaxis,omitempty"`
}

// Layout holds the figure-wide presentation.
type Layout struct {
	PaperBGColor string `json:"paper_bgcolor"`
	PlotBGColor  string `json:"plot_bgcolor"`
	ShowLegend   bool   `json:"showlegend"`
	Margin       Margin `json:"margin"`
	XAxis        Axis   `json:"xaxis"`
	YAxis        Axis   `json:"yaxis"`
	YAxis2       *Axis  `json:"yaxis2,omitempty"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Axis configures one axis.
type Axis struct {
	Type       string `json:"type,omitempty"`
	GridColor  string `json:"gridcolor,omitempty"`
	Overlaying string `json:"overlaying,omitempty"`
	Side       string `json:"side,omitempty"`
	ShowGrid   *bool  `json:"showgrid,omitempty"`
}

// JSON encodes the figure.
func (f Figure) JSON() ([]byte, error) {
	return json.Marshal(f)
}

func whiteLayout() Layout {
	return Layout{
		PaperBGColor: background,
		PlotBGColor:  background,
		ShowLegend:   true,
		Margin:       Margin{L: 40, R: 40, T: 20, B: 40},
		XAxis:        Axis{Type: "date", GridColor: gridColor},
		YAxis:        Axis{GridColor: gridColor},
	}
}

func line(name string, n int) Trace {
	return Trace{
		Type: TypeScatter,
		Mode: ModeLines,
		Name: name,
		X:    make([]string, 0, n),
		Y:    make([]float64, 0, n),
	}
}

// LinesByState draws confirmed cases over time, one line per state in the
// order the states first appear.
func LinesByState(series aggregate.ByState) Figure {
	fig := Figure{Data: make([]Trace, 0, len(series.States)), Layout: whiteLayout()}
	for _, state := range series.States {
		rows := series.Series(state)
		trace := line(string(state), len(rows))
		for _, row := range rows {
			trace.X = append(trace.X, row.Date.Format(dataset.DateLayout))
			trace.Y = append(trace.Y, row.Totals.Get(dataset.Confirmed))
		}
		fig.Data = append(fig.Data, trace)
	}
	return fig
}

// VaccinationsVsHospitalisations draws vaccinations on the primary axis and
// hospitalisations on a secondary right-hand axis over a shared date axis.
func VaccinationsVsHospitalisations(rows []aggregate.DateRow, vaccinations, hospitalisations string) Figure {
	vaccs := line(vaccinations, len(rows))
	hosps := line(hospitalisations, len(rows))
	hosps.YAxis = SecondaryAxis
	for _, row := range rows {
		date := row.Date.Format(dataset.DateLayout)
		vaccs.X = append(vaccs.X, date)
		vaccs.Y = append(vaccs.Y, row.Totals.Get(dataset.Vaccinations))
		hosps.X = append(hosps.X, date)
		hosps.Y = append(hosps.Y, row.Totals.Get(dataset.Hospitalizations))
	}

	showGrid := false
	layout := whiteLayout()
	layout.YAxis2 = &Axis{Overlaying: "y", Side: "right", ShowGrid: &showGrid}
	return Figure{Data: []Trace{vaccs, hosps}, Layout: layout}
}
