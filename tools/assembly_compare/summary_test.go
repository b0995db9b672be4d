package assembly_compare

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quast_buddy_go/config"
	"quast_buddy_go/quast_report"
)

func sampleTable(t *testing.T) *quast_report.Table {
	t.Helper()
	rec := func(body string) *quast_report.Record {
		r, err := quast_report.ParseReport(strings.NewReader(body))
		require.NoError(t, err)
		return r
	}
	table := quast_report.NewTable()
	table.Append("51-mers", rec("# contigs\t1\nTotal length\t16159\nLargest contig\t16159\nN50\t16159\nNGA50\t9402\n"+
		"GC (%)\t44.58\nReference GC (%)\t44.14\nGenome fraction (%)\t88.413\n# misassemblies\t0\n"+
		"# mismatches per 100 kbp\t2329.29\n# indels per 100 kbp\t521.17\nDuplication ratio\t1.001\n"))
	table.Append("Minia", rec("# contigs\t1\nTotal length\t9936\nLargest contig\t9936\nN50\t9936\nNGA50\t9936\n"+
		"GC (%)\t44.05\nReference GC (%)\t44.14\nGenome fraction (%)\t93.524\n# misassemblies\t0\n"+
		"# mismatches per 100 kbp\t0.00\n# indels per 100 kbp\t0.00\nDuplication ratio\t1.000\n"))
	table.Append("7-mers", rec("# contigs\t40\nTotal length\t5000\nLargest contig\t300\nN50\t150\nNGA50\t-\n"+
		"GC (%)\t41.2\nGenome fraction (%)\t12.5\n# misassemblies\t-\nDuplication ratio\t1.3\n"))
	return table
}

func defaultMetrics() MetricSet {
	return MetricSetFromConfig(config.Default().Metrics)
}

func column(s Summary, name string) int {
	for j, c := range s.Columns {
		if c == name {
			return j
		}
	}
	return -1
}

func TestBuildSummaryRoundingAndBest(t *testing.T) {
	s := BuildSummary(sampleTable(t), defaultMetrics())
	require.Len(t, s.Rows, 3)

	gf := column(s, "Genome fraction (%)")
	assert.Equal(t, "88.41", s.Rows[0].Cells[gf].Text)
	assert.Equal(t, "93.52", s.Rows[1].Cells[gf].Text)
	assert.True(t, s.Rows[1].Cells[gf].Best)
	assert.False(t, s.Rows[0].Cells[gf].Best)

	mm := column(s, "# mismatches per 100 kbp")
	assert.True(t, s.Rows[1].Cells[mm].Best, "lower is better")
	assert.True(t, s.Rows[2].Cells[mm].Missing)

	dup := column(s, "Duplication ratio")
	assert.Equal(t, "1.0", s.Rows[1].Cells[dup].Text)
	assert.True(t, s.Rows[1].Cells[dup].Best, "closest to 1.0")
	assert.False(t, s.Rows[2].Cells[dup].Best)

	mis := column(s, "# misassemblies")
	assert.True(t, s.Rows[0].Cells[mis].Best)
	assert.True(t, s.Rows[1].Cells[mis].Best, "ties are all highlighted")
	assert.True(t, s.Rows[2].Cells[mis].Missing)

	n50 := column(s, "N50")
	assert.Equal(t, "16159", s.Rows[0].Cells[n50].Text)
	assert.True(t, s.Rows[0].Cells[n50].Best)
}

func TestWriteSummaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), SummaryCSVFile)
	require.NoError(t, WriteSummaryCSV(path, BuildSummary(sampleTable(t), defaultMetrics())))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	r := csv.NewReader(f)
	r.Comma = '\t'
	rows, err := r.ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, "Assembly_Name", rows[0][0])
	assert.Equal(t, "Duplication ratio", rows[0][len(rows[0])-1])
	assert.Equal(t, []string{"Minia", "1", "9936", "9936", "9936", "9936", "44.05", "93.52", "0", "0.0", "0.0", "1.0"}, rows[2])
	assert.Equal(t, "", rows[3][5], "missing NGA50 is an empty cell")
}

func TestWriteSummaryHTML(t *testing.T) {
	table := sampleTable(t)
	m := defaultMetrics()
	path := filepath.Join(t.TempDir(), SummaryHTMLFile)
	require.NoError(t, WriteSummaryHTML(path, BuildSummary(table, m), table, m, []string{HeatmapFile}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(data)

	assert.Contains(t, page, "<th>Assembly_Name</th>")
	assert.Contains(t, page, "<th># mismatches per 100 kbp</th>")
	assert.Contains(t, page, `<td class="best">93.52</td>`)
	assert.Contains(t, page, "<td>88.41</td>")
	assert.Contains(t, page, "<td>-</td>")
	assert.Contains(t, page, "<strong>Genome fraction (%)</strong>")
	assert.Contains(t, page, "44.14%")
	assert.Contains(t, page, `<img src="heatmap_comparison.png"`)
}

func TestRenderNotesKeepsPercentSigns(t *testing.T) {
	html, err := renderNotes("44.14", 1.0)
	require.NoError(t, err)
	out := string(html)

	assert.NotContains(t, out, "%!")
	assert.Contains(t, out, "<strong>Genome fraction (%)</strong>")
	assert.Contains(t, out, "<strong>GC (%)</strong>")
	assert.Contains(t, out, "50% of the assembly")
	assert.Contains(t, out, "close to the reference: 44.14%)")
	assert.Contains(t, out, "ideal ≈ 1.0")
}

func TestRenderNotesWithoutReference(t *testing.T) {
	html, err := renderNotes("", 1.0)
	require.NoError(t, err)
	assert.Contains(t, string(html), "close to the reference)")
	assert.Contains(t, string(html), "<li>")
}
