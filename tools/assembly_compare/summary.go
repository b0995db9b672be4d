package assembly_compare

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html/template"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"

	"quast_buddy_go/quast_report"
)

const (
	SummaryCSVFile  = "assembly_comparison_summary.csv"
	SummaryHTMLFile = "assembly_comparison_summary.html"
)

// SummaryColumns are the metrics shown in the CSV and HTML summaries.
var SummaryColumns = []string{
	"# contigs",
	"Total length",
	"Largest contig",
	"N50",
	"NGA50",
	"GC (%)",
	"Genome fraction (%)",
	"# misassemblies",
	"# mismatches per 100 kbp",
	"# indels per 100 kbp",
	"Duplication ratio",
}

// SummaryCell is one rounded table cell.
type SummaryCell struct {
	Text    string
	Number  float64
	Numeric bool
	Missing bool
	Best    bool
}

type SummaryRow struct {
	Label string
	Cells []SummaryCell
}

type Summary struct {
	Columns []string
	Rows    []SummaryRow
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// BuildSummary rounds floats to two decimals and flags the best cell of
// every column: lowest for minimized metrics, closest to the target for the
// target metric, highest otherwise.
func BuildSummary(t *quast_report.Table, m MetricSet) Summary {
	s := Summary{Columns: SummaryColumns}
	for i, label := range t.Labels() {
		row := SummaryRow{Label: label, Cells: make([]SummaryCell, len(SummaryColumns))}
		for j, col := range SummaryColumns {
			row.Cells[j] = summaryCell(t.Value(i, col))
		}
		s.Rows = append(s.Rows, row)
	}

	for j, col := range SummaryColumns {
		best, ok := bestValue(s, j, col, m)
		if !ok {
			continue
		}
		for i := range s.Rows {
			c := &s.Rows[i].Cells[j]
			if c.Numeric && c.Number == best {
				c.Best = true
			}
		}
	}
	return s
}

func summaryCell(v quast_report.Value) SummaryCell {
	switch v.Kind {
	case quast_report.Integer:
		return SummaryCell{Text: v.String(), Number: float64(v.Int), Numeric: true}
	case quast_report.Float:
		r := round2(v.Float)
		return SummaryCell{Text: quast_report.FormatFloat(r), Number: r, Numeric: true}
	case quast_report.Text:
		return SummaryCell{Text: v.Text}
	}
	return SummaryCell{Missing: true}
}

func bestValue(s Summary, j int, metric string, m MetricSet) (float64, bool) {
	found := false
	var best float64
	for _, row := range s.Rows {
		c := row.Cells[j]
		if !c.Numeric {
			continue
		}
		if !found {
			best, found = c.Number, true
			continue
		}
		switch {
		case metric == m.Target:
			if math.Abs(c.Number-m.TargetValue) < math.Abs(best-m.TargetValue) {
				best = c.Number
			}
		case m.IsMinimized(metric):
			best = math.Min(best, c.Number)
		default:
			best = math.Max(best, c.Number)
		}
	}
	return best, found
}

// WriteSummaryCSV writes the summary as a tab separated file. Missing
// values are left empty.
func WriteSummaryCSV(path string, s Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	writer.Comma = '\t'

	header := append([]string{quast_report.LabelColumn}, s.Columns...)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range s.Rows {
		rec := make([]string, 0, len(row.Cells)+1)
		rec = append(rec, row.Label)
		for _, c := range row.Cells {
			rec = append(rec, c.Text)
		}
		if err := writer.Write(rec); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return f.Close()
}

const interpretationNotes = `### How to read the metrics

- **Genome fraction (%)**: share of the reference genome covered by the assembly (higher is better).
- **N50**: contig length such that 50% of the assembly lies in contigs at least that long.
- **NGA50**: N50 computed on blocks aligned to the reference (more reliable).
- **# misassemblies**: number of assembly errors detected (lower is better).
- **GC (%)**: GC content of the assembly (should be close to the reference{{gc}}).
- **Duplication ratio**: redundant coverage of the reference (ideal ≈ {{target}}).
`

// renderNotes turns the metric notes into HTML.
func renderNotes(referenceGC string, target float64) (template.HTML, error) {
	gc := ""
	if referenceGC != "" {
		gc = ": " + referenceGC + "%"
	}
	md := strings.NewReplacer(
		"{{gc}}", gc,
		"{{target}}", strconv.FormatFloat(target, 'f', 1, 64),
	).Replace(interpretationNotes)

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// referenceGC returns the first reference GC value found in the table.
func referenceGC(t *quast_report.Table) string {
	for i := range t.Rows {
		if x, ok := t.Value(i, "Reference GC (%)").Number(); ok {
			return quast_report.FormatFloat(round2(x))
		}
	}
	return ""
}

var summaryPage = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Assembly comparison</title>
	<style>
		body { font-family: Arial, sans-serif; margin: 20px; background-color: #f5f5f5; }
		h1 { color: #2c3e50; text-align: center; }
		table { border-collapse: collapse; width: 100%; margin: 20px 0; background-color: white; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
		th { background-color: #3498db; color: white; padding: 12px; text-align: left; font-weight: bold; }
		td { padding: 10px; border-bottom: 1px solid #ddd; }
		tr:hover { background-color: #f5f5f5; }
		.best { background-color: #d4edda; font-weight: bold; }
		.note { margin-top: 20px; padding: 15px; background-color: #fff3cd; border-left: 4px solid #ffc107; }
		.info { background-color: #d1ecf1; border-left-color: #17a2b8; margin-top: 30px; }
		figure { margin: 20px 0; }
		figure img { max-width: 100%; }
	</style>
</head>
<body>
	<h1>📊 Assembly comparison - QUAST results</h1>
	<div class="note">
		<strong>Note:</strong> Light green cells mark the best value of each metric.
	</div>
	<table class="data">
		<thead>
			<tr><th>{{.LabelColumn}}</th>{{range .Summary.Columns}}<th>{{.}}</th>{{end}}</tr>
		</thead>
		<tbody>
		{{- range .Summary.Rows}}
			<tr><td>{{.Label}}</td>{{range .Cells}}<td{{if .Best}} class="best"{{end}}>{{if .Missing}}-{{else}}{{.Text}}{{end}}</td>{{end}}</tr>
		{{- end}}
		</tbody>
	</table>
	<div class="note info">
		{{.Notes}}
	</div>
	{{- range .Charts}}
	<figure><img src="{{.}}" alt="{{.}}"></figure>
	{{- end}}
</body>
</html>
`))

// WriteSummaryHTML writes a standalone page with the summary table, the
// metric notes and links to the rendered charts.
func WriteSummaryHTML(path string, s Summary, t *quast_report.Table, m MetricSet, charts []string) error {
	notes, err := renderNotes(referenceGC(t), m.TargetValue)
	if err != nil {
		return fmt.Errorf("render notes: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data := struct {
		LabelColumn string
		Summary     Summary
		Notes       template.HTML
		Charts      []string
	}{quast_report.LabelColumn, s, notes, charts}

	if err := summaryPage.Execute(f, data); err != nil {
		return err
	}
	return f.Close()
}
