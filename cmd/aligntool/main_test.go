package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-align/correlation"
	"github.com/cwbudde/algo-align/flags"
	"github.com/cwbudde/algo-align/internal/testutil"
	"github.com/cwbudde/algo-align/lag"
	"github.com/cwbudde/algo-align/search"
	"github.com/cwbudde/algo-align/span"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const flightCSV = `time,pressure,altitude
1,1,2
2,2,4
3,3,5
4,4,4
5,5,5
`

func TestReverse(t *testing.T) {
	out, _, err := run(t, "reverse", "--width", "4", "1", "0", "0", "2", "0", "8")
	require.NoError(t, err)
	assert.Equal(t, "8 0 0 4 0 1\n", out)
}

func TestReverseOverflow(t *testing.T) {
	_, stderr, err := run(t, "reverse", "--width", "4", "1", "16")
	require.ErrorIs(t, err, flags.ErrOverflow)
	assert.Contains(t, stderr, "Error:")
}

func TestReverseQuality(t *testing.T) {
	out, _, err := run(t, "reverse", "--width", "8", "--quality", "patchy", "0", "15", "16")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Accepted (patchy)")
	assert.Equal(t, []string{"0", "0", "true"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"15", "240", "true"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"16", "8", "false"}, strings.Fields(lines[3]))
}

func TestClosest(t *testing.T) {
	out, _, err := run(t, "closest", "--reference", "1,5,10", "--policy", "closest_low", "6", "7.5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"6", "1", "5"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"7.5", "1", "5"}, strings.Fields(lines[2]))
}

func TestClosestNoCandidate(t *testing.T) {
	_, _, err := run(t, "closest", "--reference", "1,5,10", "--policy", "closest_high", "11")
	require.ErrorIs(t, err, search.ErrNoEligibleCandidate)
}

func TestClosestPolicyFromConfig(t *testing.T) {
	cfg := writeFile(t, "aligntool.yaml", "policy: closest_high\n")

	out, _, err := run(t, "--config", cfg, "closest", "--reference", "1,5,10", "6")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"6", "2", "10"}, strings.Fields(lines[1]))

	// An explicit flag wins over the file.
	out, _, err = run(t, "--config", cfg, "closest", "--reference", "1,5,10", "--policy", "closest_low", "6")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"6", "1", "5"}, strings.Fields(lines[1]))
}

func TestInvalidConfig(t *testing.T) {
	cfg := writeFile(t, "bad.yaml", "delimiter: ';;'\n")
	_, _, err := run(t, "--config", cfg, "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delimiter")
}

func TestCorrelateText(t *testing.T) {
	path := writeFile(t, "flight.csv", flightCSV)

	out, _, err := run(t, "correlate", path, "--x", "pressure", "--y", "altitude")
	require.NoError(t, err)
	assert.Contains(t, out, "0.774597")
	assert.Contains(t, out, "0.600000")
	assert.Contains(t, out, "2.200000")
}

func TestCorrelateJSON(t *testing.T) {
	path := writeFile(t, "flight.csv", flightCSV)

	out, _, err := run(t, "correlate", path, "--x", "pressure", "--y", "altitude", "--index", "time", "--json")
	require.NoError(t, err)

	var report correlateReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 5, report.Pairs)
	assert.Equal(t, 0, report.Dropped)
	assert.InDelta(t, 0.7745966692414834, report.R, 1e-12)
	assert.InDelta(t, 0.12402706265755459, report.PValue, 1e-9)
	assert.InDelta(t, 0.6, report.Slope, 1e-12)
	assert.InDelta(t, 2.2, report.Intercept, 1e-12)
	assert.InDelta(t, 0.28284271247461895, report.StdErr, 1e-12)
	assert.InDelta(t, 0.9380831519646857, report.InterceptStdErr, 1e-12)
	assert.Equal(t, [2]float64{1, 5}, report.LineX)
	assert.InDeltaSlice(t, []float64{2.8, 5.2}, report.LineY[:], 1e-12)
	require.NotNil(t, report.IndexFirst)
	assert.InDelta(t, 1.0, *report.IndexFirst, 0)
	assert.InDelta(t, 5.0, *report.IndexLast, 0)
}

func TestCorrelateZeroFilter(t *testing.T) {
	path := writeFile(t, "zeros.csv", "x,y\n1,2\n0,3\n2,4\n3,0\n4,8\n")

	out, _, err := run(t, "correlate", path, "--x", "x", "--y", "y", "--json")
	require.NoError(t, err)
	var filtered correlateReport
	require.NoError(t, json.Unmarshal([]byte(out), &filtered))
	assert.Equal(t, 3, filtered.Pairs)
	assert.Equal(t, 2, filtered.Dropped)

	out, _, err = run(t, "correlate", path, "--x", "x", "--y", "y", "--json", "--no-zero-filter")
	require.NoError(t, err)
	var all correlateReport
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	assert.Equal(t, 5, all.Pairs)
	assert.Equal(t, 0, all.Dropped)
}

func TestCorrelateRange(t *testing.T) {
	path := writeFile(t, "flight.csv", flightCSV)

	out, _, err := run(t, "correlate", path, "--x", "pressure", "--y", "altitude",
		"--index", "time", "--start", "2", "--end", "4", "--json")
	require.NoError(t, err)

	var report correlateReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 3, report.Pairs)
	assert.InDelta(t, 2.0, *report.IndexFirst, 0)
	assert.InDelta(t, 4.0, *report.IndexLast, 0)
	assert.InDelta(t, 0.0, report.Slope, 1e-12)

	_, _, err = run(t, "correlate", path, "--x", "pressure", "--y", "altitude", "--start", "2")
	require.ErrorIs(t, err, errRangeWithoutIndex)

	_, _, err = run(t, "correlate", path, "--x", "pressure", "--y", "altitude",
		"--index", "time", "--start", "6", "--end", "9")
	require.ErrorIs(t, err, span.ErrEmptySpan)
}

func TestCorrelateMissingColumn(t *testing.T) {
	path := writeFile(t, "flight.csv", flightCSV)
	_, _, err := run(t, "correlate", path, "--x", "pressure", "--y", "humidity")
	require.ErrorIs(t, err, errNoColumn)
}

func TestCorrelateDelimiter(t *testing.T) {
	path := writeFile(t, "flight.csv", strings.ReplaceAll(flightCSV, ",", ";"))
	cfg := writeFile(t, "aligntool.yaml", "delimiter: ';'\njson: true\n")

	out, _, err := run(t, "--config", cfg, "correlate", path, "--x", "pressure", "--y", "altitude")
	require.NoError(t, err)

	var report correlateReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 5, report.Pairs)
}

func TestLag(t *testing.T) {
	b := testutil.DeterministicNoise(7, 1, 128)
	a := testutil.CircularShift(b, 4)

	var sb strings.Builder
	sb.WriteString("a,b\n")
	for i := range a {
		fmt.Fprintf(&sb, "%.17g,%.17g\n", a[i], b[i])
	}
	path := writeFile(t, "pair.csv", sb.String())

	out, _, err := run(t, "lag", path, "--x", "a", "--y", "b", "--max-lag", "10", "--json")
	require.NoError(t, err)

	var report lagReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 128, report.Samples)
	assert.Equal(t, 4, report.Lag)
	assert.Greater(t, report.Coefficient, 0.8)
}

func TestInfo(t *testing.T) {
	out, stderr, err := run(t, "--verbose", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "version")
	assert.Contains(t, out, "simd")
	assert.Contains(t, stderr, "cpu features")
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	path := writeFile(t, "partial.yaml", "width: 4\n")
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Width)
	assert.Equal(t, "closest", cfg.Policy)
	assert.True(t, cfg.ZeroFilter)
}

func TestNonFiniteCSVRejected(t *testing.T) {
	path := writeFile(t, "gaps.csv", "a,b\n1,1\n2,2\nNaN,3\n4,4\n5,Inf\n")

	_, _, err := run(t, "lag", path, "--x", "a", "--y", "b", "--max-lag", "2")
	require.ErrorIs(t, err, lag.ErrInvalidInput)

	_, _, err = run(t, "correlate", path, "--x", "a", "--y", "b", "--json")
	require.ErrorIs(t, err, correlation.ErrInvalidInput)
}
