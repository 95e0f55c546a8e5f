package dashboard

import (
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/covidau/internal/covid/dataset"
	"github.com/louisbranch/covidau/internal/services/dashboard/binding"
	apperrors "github.com/louisbranch/covidau/internal/services/dashboard/platform/errors"
)

// Query parameters accepted by the page and update endpoints.
const (
	paramPath    = "path"
	paramState   = "state"
	paramStart   = "start"
	paramEnd     = "end"
	paramChanged = "changed"
)

// Selection is the current value of every input control.
type Selection struct {
	Path  string
	State dataset.StateCode
	// Start and End are zero when unset.
	Start time.Time
	End   time.Time
	// Changed lists the slots whose change triggered the request. Empty
	// means the request is an initial render.
	Changed []binding.Slot
}

// Initial reports whether every binding should be evaluated.
func (s Selection) Initial() bool {
	return len(s.Changed) == 0
}

// Inputs converts the selection to binding inputs.
func (s Selection) Inputs() binding.Inputs {
	return binding.Inputs{
		SlotPath:      s.Path,
		SlotState:     string(s.State),
		SlotStartDate: formatDate(s.Start),
		SlotEndDate:   formatDate(s.End),
	}
}

// dateBounds is the inclusive range the date control may select.
type dateBounds struct {
	min time.Time
	max time.Time
}

func newDateBounds(minDate time.Time, now time.Time) dateBounds {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	minDay := time.Date(minDate.Year(), minDate.Month(), minDate.Day(), 0, 0, 0, 0, time.UTC)
	if today.Before(minDay) {
		today = minDay
	}
	return dateBounds{min: minDay, max: today}
}

func (b dateBounds) clamp(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	if t.Before(b.min) {
		return b.min
	}
	if t.After(b.max) {
		return b.max
	}
	return t
}

// parseSelection reads the control values from a query. A missing path
// falls back to defaultPath. The date range drives no output, so it never
// fails a request: an unparsable bound is dropped, bounds are clamped, and
// an inverted range is swapped. Only unknown change names are invalid.
func parseSelection(q url.Values, defaultPath string, bounds dateBounds) (Selection, error) {
	sel := Selection{
		Path:  q.Get(paramPath),
		State: dataset.ParseStateCode(q.Get(paramState)),
		Start: bounds.clamp(parseDate(q.Get(paramStart))),
		End:   bounds.clamp(parseDate(q.Get(paramEnd))),
	}
	if _, ok := q[paramPath]; !ok {
		sel.Path = defaultPath
	}
	if !sel.Start.IsZero() && !sel.End.IsZero() && sel.End.Before(sel.Start) {
		sel.Start, sel.End = sel.End, sel.Start
	}

	seen := make(map[binding.Slot]bool)
	for _, raw := range q[paramChanged] {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			slots, ok := changeNames[name]
			if !ok {
				return Selection{}, apperrors.New(apperrors.KindInvalidInput, "", "unknown changed input "+name)
			}
			for _, slot := range slots {
				if !seen[slot] {
					seen[slot] = true
					sel.Changed = append(sel.Changed, slot)
				}
			}
		}
	}
	return sel, nil
}

// parseDate returns the zero time for an empty or malformed value.
func parseDate(raw string) time.Time {
	t, err := time.Parse(dataset.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dataset.DateLayout)
}
