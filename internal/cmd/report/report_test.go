package report

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testCSV = "date,state_abbrev,confirmed,deaths,tests,positives,recovered,hosp,vaccines\n" +
	"2021-01-01,NSW,10,1,100,10,5,2,0\n" +
	"2021-01-01,VIC,5,0,50,5,5,1,0\n" +
	"2021-01-02,NSW,3,0,80,3,2,2,100\n"

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "states.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func fieldsByKey(output string) map[string][]string {
	out := make(map[string][]string)
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			out[fields[0]] = fields[1:]
		}
	}
	return out
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "covidau-report", cmd.Use)
	assert.Contains(t, cmd.Long, "YAML")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"sums", "series"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"format", "dataset-url", "dataset-path"} {
		require.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %s", name)
	}

	series, _, err := cmd.Find([]string{"series"})
	require.NoError(t, err)
	overall := series.Flags().Lookup("overall")
	require.NotNil(t, overall)
	assert.Equal(t, "false", overall.DefValue)
}

func TestFormatFromEnv(t *testing.T) {
	t.Setenv("COVIDAU_REPORT_FORMAT", "yaml")

	cmd := NewRootCommand()
	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "yaml", format.DefValue)
}

func TestSumsText(t *testing.T) {
	out, err := run(t, "sums", "--dataset-path", writeDataset(t), "--state", "NSW")
	require.NoError(t, err)

	fields := fieldsByKey(out)
	assert.Equal(t, []string{"NSW"}, fields["state"])
	assert.Equal(t, []string{"2"}, fields["records"])
	assert.Equal(t, []string{"13"}, fields["confirmed"])
	assert.Equal(t, []string{"180"}, fields["tests"])
	assert.Equal(t, []string{"100"}, fields["vaccines"])
}

func TestSumsJSONAllStates(t *testing.T) {
	out, err := run(t, "sums", "--dataset-path", writeDataset(t), "--format", "json")
	require.NoError(t, err)

	var report SumsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Empty(t, report.State)
	assert.Equal(t, 3, report.Records)
	assert.Equal(t, 18.0, report.Totals["confirmed"])
	assert.Equal(t, 1.0, report.Totals["deaths"])
	assert.Equal(t, 230.0, report.Totals["tests"])
	assert.Equal(t, 5.0, report.Totals["hosp"])
}

func TestSumsUnknownStateIsZero(t *testing.T) {
	out, err := run(t, "sums", "--dataset-path", writeDataset(t), "--state", "XYZ", "--format", "json")
	require.NoError(t, err)

	var report SumsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 0, report.Records)
	for column, v := range report.Totals {
		assert.Zero(t, v, column)
	}
}

func TestSeriesByStateYAML(t *testing.T) {
	out, err := run(t, "series", "--dataset-path", writeDataset(t), "--format", "yaml")
	require.NoError(t, err)

	var report SeriesReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, []string{"NSW", "VIC"}, report.States)
	require.Len(t, report.Rows, 3)
	assert.Equal(t, "2021-01-01", report.Rows[0].Date)
	assert.Equal(t, "NSW", report.Rows[0].State)
	assert.Equal(t, "VIC", report.Rows[1].State)
	assert.Equal(t, "2021-01-02", report.Rows[2].Date)
	assert.Equal(t, 3.0, report.Rows[2].Totals["confirmed"])
}

func TestSeriesOverallText(t *testing.T) {
	out, err := run(t, "series", "--dataset-path", writeDataset(t), "--overall")
	require.NoError(t, err)

	fields := fieldsByKey(out)
	require.Contains(t, fields, "date")
	assert.Equal(t, "state", fields["date"][0])
	assert.Equal(t, []string{"-", "15", "1", "150", "15", "10", "3", "0"}, fields["2021-01-01"])
	assert.Equal(t, []string{"-", "3", "0", "80", "3", "2", "2", "100"}, fields["2021-01-02"])
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, "sums", "--dataset-path", writeDataset(t), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestMissingDataset(t *testing.T) {
	_, err := run(t, "sums", "--dataset-path", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load dataset")
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, err := run(t, "series", "--dataset-path", writeDataset(t), "extra")
	require.Error(t, err)
}

func TestExecute(t *testing.T) {
	err := Execute(context.Background(), []string{"sums", "--dataset-path", writeDataset(t), "--format", "json"})
	require.NoError(t, err)
}
