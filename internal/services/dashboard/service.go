package dashboard

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/covidau/internal/covid/dataset"
	"github.com/louisbranch/covidau/internal/platform/branding"
	"github.com/louisbranch/covidau/internal/services/dashboard/binding"
	"github.com/louisbranch/covidau/internal/services/dashboard/chart"
	apperrors "github.com/louisbranch/covidau/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/covidau/internal/services/dashboard/routepath"
	"github.com/louisbranch/covidau/internal/services/dashboard/templates"
)

// statTiles lists the stat tiles in display order.
var statTiles = []struct {
	slot        binding.Slot
	titleKey    string
	subtitleKey string
	color       func(branding.Palette) string
}{
	{SlotCases, "overview.stat.cases.title", "overview.stat.cases.subtitle", func(p branding.Palette) string { return p.Orange }},
	{SlotDeaths, "overview.stat.deaths.title", "overview.stat.deaths.subtitle", func(p branding.Palette) string { return p.Red }},
	{SlotTests, "overview.stat.tests.title", "overview.stat.tests.subtitle", func(p branding.Palette) string { return p.Blue }},
	{SlotPositives, "overview.stat.positives.title", "overview.stat.positives.subtitle", func(p branding.Palette) string { return p.Aqua }},
	{SlotRecovered, "overview.stat.recovered.title", "overview.stat.recovered.subtitle", func(p branding.Palette) string { return p.Aqua }},
}

var chartPanels = []struct {
	slot        binding.Slot
	titleKey    string
	subtitleKey string
}{
	{SlotTimeSeries, "overview.chart.time_series.title", "overview.chart.time_series.subtitle"},
	{SlotVaccsVsHosps, "overview.chart.vaccs_vs_hosps.title", ""},
}

type service struct {
	table    *binding.Table
	settings Settings
	now      func() time.Time
}

func newService(table *binding.Table, settings Settings, now func() time.Time) service {
	if now == nil {
		now = time.Now
	}
	return service{table: table, settings: settings.withDefaults(), now: now}
}

func (s service) bounds() dateBounds {
	return newDateBounds(s.settings.Data.MinDate, s.now())
}

// overview evaluates every binding and lays the results out for rendering.
func (s service) overview(ctx context.Context, sel Selection) (templates.OverviewData, error) {
	logUnknownState(sel.State)
	updates, err := s.table.Initial(ctx, sel.Inputs())
	if err != nil {
		return templates.OverviewData{}, apperrors.Wrap(apperrors.KindUnknown, apperrors.KeyFailed, "evaluate overview", err)
	}
	values := make(map[binding.Slot]binding.Value, len(updates))
	for _, u := range updates {
		values[u.Slot] = u.Value
	}

	bounds := s.bounds()
	data := templates.OverviewData{
		Path:       routepath.Root,
		UpdatePath: routepath.Update,
		Dates: templates.DateRange{
			Min:   formatDate(bounds.min),
			Max:   formatDate(bounds.max),
			Start: formatDate(sel.Start),
			End:   formatDate(sel.End),
		},
	}
	for _, state := range dataset.States() {
		data.States = append(data.States, templates.StateOption{
			Code:     string(state.Code),
			Name:     state.Name,
			Selected: state.Code == sel.State,
		})
	}
	for _, tile := range statTiles {
		text, err := statText(values[tile.slot])
		if err != nil {
			return templates.OverviewData{}, fmt.Errorf("slot %s: %w", tile.slot, err)
		}
		data.Stats = append(data.Stats, templates.StatTile{
			Slot:        string(tile.slot),
			TitleKey:    tile.titleKey,
			SubtitleKey: tile.subtitleKey,
			Color:       tile.color(s.settings.Palette),
			Value:       text,
		})
	}
	for _, panel := range chartPanels {
		figure, err := figureJSON(values[panel.slot])
		if err != nil {
			return templates.OverviewData{}, fmt.Errorf("slot %s: %w", panel.slot, err)
		}
		data.Charts = append(data.Charts, templates.ChartPanel{
			Slot:        string(panel.slot),
			TitleKey:    panel.titleKey,
			SubtitleKey: panel.subtitleKey,
			Figure:      figure,
		})
	}
	return data, nil
}

// update dispatches the bindings affected by sel. Paths other than the
// overview have no bound outputs and yield nothing.
func (s service) update(ctx context.Context, sel Selection) ([]binding.Update, error) {
	if routepath.Resolve(sel.Path) != routepath.ViewOverview {
		return nil, nil
	}
	logUnknownState(sel.State)
	var (
		updates []binding.Update
		err     error
	)
	if sel.Initial() {
		updates, err = s.table.Initial(ctx, sel.Inputs())
	} else {
		updates, err = s.table.Changed(ctx, sel.Inputs(), sel.Changed...)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnknown, apperrors.KeyFailed, "evaluate update", err)
	}
	return updates, nil
}

// logUnknownState notes filters that can only produce zeros. They are
// still served, since an unknown code is indistinguishable from no data.
func logUnknownState(code dataset.StateCode) {
	if code != "" && !code.Known() {
		log.Printf("unknown state filter %q", code)
	}
}

// fragment renders an update as an out-of-band swap.
func fragment(u binding.Update) (templ.Component, error) {
	switch v := u.Value.(type) {
	case string:
		return templates.StatValue(string(u.Slot), v, true), nil
	case chart.Figure:
		data, err := v.JSON()
		if err != nil {
			return nil, fmt.Errorf("encode figure %s: %w", u.Slot, err)
		}
		return templates.ChartGraph(string(u.Slot), data, true), nil
	default:
		return nil, fmt.Errorf("slot %s: unsupported value %T", u.Slot, u.Value)
	}
}

func statText(v binding.Value) (string, error) {
	text, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("want formatted text, got %T", v)
	}
	return text, nil
}

func figureJSON(v binding.Value) ([]byte, error) {
	fig, ok := v.(chart.Figure)
	if !ok {
		return nil, fmt.Errorf("want chart figure, got %T", v)
	}
	return fig.JSON()
}
