package assembly_compare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quast_buddy_go/config"
	"quast_buddy_go/quast_report"
)

func tableOf(t *testing.T, labels []string, cols map[string][]quast_report.Value) *quast_report.Table {
	t.Helper()
	table := quast_report.NewTable()
	for i, label := range labels {
		rec := quast_report.NewRecord()
		for name, vals := range cols {
			require.Len(t, vals, len(labels), name)
			rec.Set(name, vals[i])
		}
		table.Append(label, rec)
	}
	return table
}

func floatsOf(xs ...float64) []quast_report.Value {
	out := make([]quast_report.Value, len(xs))
	for i, x := range xs {
		out[i] = quast_report.FloatValue(x)
	}
	return out
}

func TestNormalizeGenomeFractionEndToEnd(t *testing.T) {
	table := tableOf(t, []string{"A", "B"}, map[string][]quast_report.Value{
		"Genome fraction (%)": floatsOf(88.41, 93.52),
	})
	n, err := Normalize(table, MetricSet{Maximize: []string{"Genome fraction (%)"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, n.Labels)
	assert.Equal(t, []float64{0, 1}, n.Column("Genome fraction (%)"))
}

func TestNormalizeMaximizeSpansUnitInterval(t *testing.T) {
	cols := [][]float64{
		{3, 1, 2},
		{-5, 10, 10, 2.5},
		{1e9, 1e9 + 1},
		{0.1, 0.2, 0.3, 0.4, 0.5, 0.6},
	}
	for _, col := range cols {
		labels := make([]string, len(col))
		for i := range labels {
			labels[i] = string(rune('a' + i))
		}
		table := tableOf(t, labels, map[string][]quast_report.Value{"N50": floatsOf(col...)})
		n, err := Normalize(table, MetricSet{Maximize: []string{"N50"}})
		require.NoError(t, err)

		got := n.Column("N50")
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, s := range got {
			lo = math.Min(lo, s)
			hi = math.Max(hi, s)
		}
		assert.Equal(t, 0.0, lo, "%v", col)
		assert.Equal(t, 1.0, hi, "%v", col)
	}
}

func TestNormalizeMinimizeInverts(t *testing.T) {
	table := tableOf(t, []string{"k31", "k51", "Minia"}, map[string][]quast_report.Value{
		"# mismatches per 100 kbp": floatsOf(6407.0, 2329.29, 0),
	})
	n, err := Normalize(table, MetricSet{Minimize: []string{"# mismatches per 100 kbp"}})
	require.NoError(t, err)

	got := n.Column("# mismatches per 100 kbp")
	assert.Equal(t, 0.0, got[0])
	assert.InDelta(t, 1-2329.29/6407.0, got[1], 1e-12)
	assert.Equal(t, 1.0, got[2])
}

func TestNormalizeAllEqualIsOne(t *testing.T) {
	for _, v := range []float64{0, 1, 16159, -3.5} {
		table := tableOf(t, []string{"a", "b", "c"}, map[string][]quast_report.Value{
			"Largest contig": floatsOf(v, v, v),
			"# contigs":      floatsOf(v, v, v),
		})
		n, err := Normalize(table, MetricSet{Maximize: []string{"Largest contig"}, Minimize: []string{"# contigs"}})
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 1, 1}, n.Column("Largest contig"))
		assert.Equal(t, []float64{1, 1, 1}, n.Column("# contigs"))
	}
}

func TestNormalizeTargetScore(t *testing.T) {
	ratios := []float64{1.0, 1.001, 1.05, 1.2, 2.5}
	table := tableOf(t, []string{"a", "b", "c", "d", "e"}, map[string][]quast_report.Value{
		"Duplication ratio": floatsOf(ratios...),
	})
	n, err := Normalize(table, MetricSet{Target: "Duplication ratio", TargetValue: 1.0})
	require.NoError(t, err)

	got := n.Column("Duplication ratio")
	assert.Equal(t, 1.0, got[0])
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i], got[i-1])
	}
	assert.InDelta(t, -0.5, got[4], 1e-12, "scores far from the target are not clamped")
}

func TestNormalizeMissingCellsScoreZero(t *testing.T) {
	table := tableOf(t, []string{"a", "b", "c"}, map[string][]quast_report.Value{
		"NGA50":             {quast_report.IntValue(100), {}, quast_report.IntValue(300)},
		"Duplication ratio": {quast_report.FloatValue(1), quast_report.TextValue("n/a"), {}},
	})
	n, err := Normalize(table, MetricSet{Maximize: []string{"NGA50"}, Target: "Duplication ratio", TargetValue: 1})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 1}, n.Column("NGA50"))
	assert.Equal(t, []float64{1, 0, 0}, n.Column("Duplication ratio"))
}

func TestNormalizeEqualPresentValuesFillEveryRow(t *testing.T) {
	table := tableOf(t, []string{"a", "b"}, map[string][]quast_report.Value{
		"NGA50": {quast_report.IntValue(100), {}},
	})
	n, err := Normalize(table, MetricSet{Maximize: []string{"NGA50"}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, n.Column("NGA50"))
}

func TestNormalizeMissingMetric(t *testing.T) {
	table := tableOf(t, []string{"a"}, map[string][]quast_report.Value{"N50": floatsOf(1)})
	_, err := Normalize(table, MetricSet{Maximize: []string{"N50", "NGA50"}})
	assert.ErrorIs(t, err, ErrMissingMetric)
}

func TestDefaultMetricOrder(t *testing.T) {
	m := MetricSetFromConfig(config.Default().Metrics)
	assert.Equal(t, []string{
		"Genome fraction (%)", "N50", "NGA50", "Largest contig",
		"# contigs", "# misassemblies", "# mismatches per 100 kbp", "# indels per 100 kbp",
		"Duplication ratio",
	}, m.Metrics())
	assert.True(t, m.IsMinimized("# contigs"))
	assert.False(t, m.IsMinimized("N50"))
}
