package dataset

import (
	"sort"
	"strings"
)

// StateCode is an Australian state or territory abbreviation.
//
// The empty code means "no state" and is used as the unfiltered selection.
type StateCode string

const (
	StateACT StateCode = "ACT"
	StateTAS StateCode = "TAS"
	StateVIC StateCode = "VIC"
	StateWA  StateCode = "WA"
	StateNT  StateCode = "NT"
	StateQLD StateCode = "QLD"
	StateNSW StateCode = "NSW"
)

// State pairs a state code with its display name.
type State struct {
	Name string
	Code StateCode
}

var knownStates = []State{
	{Name: "Australian Capital Territory", Code: StateACT},
	{Name: "Tasmania", Code: StateTAS},
	{Name: "Victoria", Code: StateVIC},
	{Name: "Western Australia", Code: StateWA},
	{Name: "Northern Territory", Code: StateNT},
	{Name: "Queensland", Code: StateQLD},
	{Name: "New South Wales", Code: StateNSW},
}

// States returns the known states sorted by display name.
func States() []State {
	out := make([]State, len(knownStates))
	copy(out, knownStates)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Known reports whether code is one of the seven known state codes.
func (c StateCode) Known() bool {
	for _, state := range knownStates {
		if state.Code == c {
			return true
		}
	}
	return false
}

// Name returns the display name for a known code, or the code itself.
func (c StateCode) Name() string {
	for _, state := range knownStates {
		if state.Code == c {
			return state.Name
		}
	}
	return string(c)
}

// ParseStateCode trims a raw selector value into a StateCode.
//
// Unknown codes are returned as-is; filtering by them yields empty subsets.
func ParseStateCode(raw string) StateCode {
	return StateCode(strings.TrimSpace(raw))
}
