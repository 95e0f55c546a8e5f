package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/louisbranch/covidau/internal/covid/dataset"
	"gopkg.in/yaml.v3"
)

// writeReport renders v in format. Text output is a tab-aligned table with
// metrics in column order.
func writeReport(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return writeText(w, v)
	default:
		return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
	}
}

func writeText(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	switch report := v.(type) {
	case SumsReport:
		state := report.State
		if state == "" {
			state = "all"
		}
		fmt.Fprintf(tw, "state\t%s\n", state)
		fmt.Fprintf(tw, "records\t%d\n", report.Records)
		for _, m := range dataset.Metrics() {
			fmt.Fprintf(tw, "%s\t%s\n", m.Column(), formatValue(report.Totals[m.Column()]))
		}
	case SeriesReport:
		fmt.Fprint(tw, "date\tstate")
		for _, m := range dataset.Metrics() {
			fmt.Fprintf(tw, "\t%s", m.Column())
		}
		fmt.Fprintln(tw)
		for _, row := range report.Rows {
			state := row.State
			if state == "" {
				state = "-"
			}
			fmt.Fprintf(tw, "%s\t%s", row.Date, state)
			for _, m := range dataset.Metrics() {
				fmt.Fprintf(tw, "\t%s", formatValue(row.Totals[m.Column()]))
			}
			fmt.Fprintln(tw)
		}
	default:
		return fmt.Errorf("unsupported report type %T", v)
	}
	return tw.Flush()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
