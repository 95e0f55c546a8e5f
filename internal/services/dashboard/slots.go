package dashboard

import "github.com/louisbranch/covidau/internal/services/dashboard/binding"

// Input slots.
const (
	SlotPath      binding.Slot = "url.pathname"
	SlotState     binding.Slot = "state-dropdown.value"
	SlotStartDate binding.Slot = "date-picker.start_date"
	SlotEndDate   binding.Slot = "date-picker.end_date"
)

// Output slots. Each doubles as the DOM id of the element it fills.
const (
	SlotCases        binding.Slot = "overview-n-cases"
	SlotDeaths       binding.Slot = "overview-n-deaths"
	SlotTests        binding.Slot = "overview-n-tests"
	SlotPositives    binding.Slot = "overview-n-positives"
	SlotRecovered    binding.Slot = "overview-n-recovered"
	SlotTimeSeries   binding.Slot = "overview-time-series"
	SlotVaccsVsHosps binding.Slot = "overview-vaccs-vs-hosps"
)

// changeNames maps the update endpoint's changed parameter to input slots.
var changeNames = map[string][]binding.Slot{
	"path":  {SlotPath},
	"state": {SlotState},
	"dates": {SlotStartDate, SlotEndDate},
}
