package pairwise_report

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quast_buddy_go/quast_report"
)

const reportA = "Assembly\tk31\n" +
	"# contigs\t3\n" +
	"Largest contig\t7000\n" +
	"Total length\t11000\n" +
	"Reference length\t10624\n" +
	"GC (%)\t44.30\n" +
	"Reference GC (%)\t44.14\n" +
	"N50\t7000\n" +
	"# misassemblies\t1\n" +
	"Genome fraction (%)\t80.890\n" +
	"Duplication ratio\t1.010\n" +
	"NA50\t-\n"

const reportB = "Assembly\tk91\n" +
	"# contigs\t2\n" +
	"Largest contig\t8000\n" +
	"Total length\t10500\n" +
	"GC (%)\t44.10\n" +
	"N50\t8000\n" +
	"# misassemblies\t1\n" +
	"Genome fraction (%)\t90.100\n" +
	"Duplication ratio\t1.000\n"

func writeReports(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	a := filepath.Join(dir, "a.tsv")
	b := filepath.Join(dir, "b.tsv")
	require.NoError(t, os.WriteFile(a, []byte(reportA), 0o644))
	require.NoError(t, os.WriteFile(b, []byte(reportB), 0o644))
	return a, b
}

func TestWinner(t *testing.T) {
	cases := []struct {
		name string
		m    Metric
		want string
	}{
		{"higher", Metric{A: 2, B: 1}, "A"},
		{"lower", Metric{A: 2, B: 1, Direction: LowerIsBetter}, "B"},
		{"tie", Metric{A: 0, B: 0, Direction: LowerIsBetter}, Tie},
		{"closer", Metric{A: 16159, B: 9936, Direction: CloserIsBetter, Target: 10624}, "B"},
		{"closer tie", Metric{A: 0.9, B: 1.1, Direction: CloserIsBetter, Target: 1}, Tie},
		{"closer tie around reference GC", Metric{A: 44.10, B: 44.18, Direction: CloserIsBetter, Target: 44.14, Decimals: 2}, Tie},
		{"closer by one hundredth", Metric{A: 44.11, B: 44.18, Direction: CloserIsBetter, Target: 44.14, Decimals: 2}, "A"},
		{"missing value", Metric{A: math.NaN(), B: 1}, "n/a"},
		{"missing target", Metric{A: 1, B: 2, Direction: CloserIsBetter, Target: math.NaN()}, "n/a"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.m.Winner("A", "B"))
		})
	}
}

func TestBuiltinWinners(t *testing.T) {
	c := Builtin()
	want := map[string]string{
		"# contigs":                Tie,
		"Largest contig":           "51mers",
		"Total length":             "Minia",
		"Genome fraction (%)":      "Minia",
		"# misassemblies":          Tie,
		"# local misassemblies":    "Minia",
		"Unaligned length":         "Minia",
		"# mismatches per 100 kbp": "Minia",
		"N50":                      "51mers",
		"NA50":                     "Minia",
		"Duplication ratio":        "Minia",
		"GC (%)":                   "Minia",
	}
	for name, w := range want {
		m, ok := c.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, w, m.Winner(c.AName, c.BName), name)
	}
	assert.True(t, c.Builtin)
	assert.Len(t, c.Metrics, 12)
}

func TestPairUnknownMetric(t *testing.T) {
	a, b := Builtin().Pair("NG75")
	assert.True(t, math.IsNaN(a))
	assert.True(t, math.IsNaN(b))
}

func TestFromReports(t *testing.T) {
	a, b := writeReports(t)
	c, err := FromReports("k31", a, "k91", b)
	require.NoError(t, err)

	assert.False(t, c.Builtin)
	assert.Equal(t, "k31", c.AName)
	assert.Equal(t, 10624.0, c.ReferenceLength)
	assert.Equal(t, 44.14, c.ReferenceGC)

	x, y := c.Pair("# contigs")
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 2.0, y)

	x, y = c.Pair("NA50")
	assert.True(t, math.IsNaN(x), "a '-' value is unknown")
	assert.True(t, math.IsNaN(y), "an absent key is unknown")

	total, _ := c.Get("Total length")
	assert.Equal(t, 10624.0, total.Target)
	assert.Equal(t, "k91", total.Winner(c.AName, c.BName))

	gc, _ := c.Get("GC (%)")
	assert.Equal(t, "k91", gc.Winner(c.AName, c.BName))
}

func TestFromReportsErrors(t *testing.T) {
	a, b := writeReports(t)

	_, err := FromReports("same", a, "same", b)
	assert.Error(t, err)

	_, err = FromReports("k31", a, "k91", filepath.Join(t.TempDir(), "missing.tsv"))
	assert.ErrorIs(t, err, quast_report.ErrReportNotFound)
}
