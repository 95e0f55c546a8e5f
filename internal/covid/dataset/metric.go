package dataset

// Metric identifies one of the seven per-row counts.
type Metric int

const (
	Confirmed Metric = iota
	Deaths
	Tests
	Positives
	Recovered
	Hospitalizations
	Vaccinations

	metricCount
)

var metricColumns = [metricCount]string{
	Confirmed:        "confirmed",
	Deaths:           "deaths",
	Tests:            "tests",
	Positives:        "positives",
	Recovered:        "recovered",
	Hospitalizations: "hosp",
	Vaccinations:     "vaccines",
}

// Metrics returns every metric in column order.
func Metrics() []Metric {
	out := make([]Metric, 0, metricCount)
	for m := Metric(0); m < metricCount; m++ {
		out = append(out, m)
	}
	return out
}

// Column returns the CSV column name holding the metric.
func (m Metric) Column() string {
	if m < 0 || m >= metricCount {
		return ""
	}
	return metricColumns[m]
}

// String returns the column name.
func (m Metric) String() string {
	return m.Column()
}

// Totals holds one value per metric. The zero value is all zeros.
type Totals [metricCount]float64

// Get returns the value for m.
func (t Totals) Get(m Metric) float64 {
	if m < 0 || m >= metricCount {
		return 0
	}
	return t[m]
}

// Add returns the elementwise sum of t and other.
func (t Totals) Add(other Totals) Totals {
	for i := range t {
		t[i] += other[i]
	}
	return t
}

// Map returns the totals keyed by column name.
func (t Totals) Map() map[string]float64 {
	out := make(map[string]float64, metricCount)
	for m := Metric(0); m < metricCount; m++ {
		out[m.Column()] = t[m]
	}
	return out
}
