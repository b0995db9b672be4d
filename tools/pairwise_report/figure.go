package pairwise_report

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"quast_buddy_go/quast_report"
	common "quast_buddy_go/utils"
)

const FigureFile = "comparison_51mers_vs_minia.png"

var (
	steelBlue  = color.RGBA{R: 70, G: 130, B: 180, A: 204}
	coral      = color.RGBA{R: 255, G: 127, B: 80, A: 204}
	green      = color.RGBA{G: 128, A: 255}
	red        = color.RGBA{R: 255, A: 204}
	orange     = color.RGBA{R: 255, G: 165, A: 204}
	purple     = color.RGBA{R: 128, B: 128, A: 204}
	pink       = color.RGBA{R: 255, G: 192, B: 203, A: 204}
	safeGreen  = color.RGBA{G: 128, A: 204}
	headerBlue = color.RGBA{R: 0x44, G: 0x72, B: 0xC4, A: 255}
	bestB      = color.RGBA{R: 0x90, G: 0xEE, B: 0x90, A: 255}
	bestA      = color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 255}
	tieYellow  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xE0, A: 255}
	wheat      = color.RGBA{R: 245, G: 222, B: 179, A: 128}
)

// finite replaces unknown values by zero so they can be drawn.
func finite(vals ...float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[i] = v
		}
	}
	return out
}

func pairColors(i int, _ float64) color.Color {
	if i == 0 {
		return steelBlue
	}
	return coral
}

func lengthsPanel(c Comparison) (*plot.Plot, error) {
	names := []string{"Total length", "Largest contig", "N50", "NA50"}
	a := make([]float64, len(names))
	b := make([]float64, len(names))
	for i, n := range names {
		a[i], b[i] = c.Pair(n)
	}
	p := common.NewPanel("Length comparison", "", "Length (bp)", names)
	if err := common.AddGroupedBars(p, finite(a...), finite(b...), c.AName, c.BName, steelBlue, coral); err != nil {
		return nil, err
	}
	if !math.IsNaN(c.ReferenceLength) {
		common.AddHLine(p, c.ReferenceLength, green, vg.Points(2), "Reference")
	}
	p.Y.Min = 0
	return p, nil
}

func singlePanel(c Comparison, title, yLabel, metric string, colorAt func(int, float64) color.Color, format func(float64) string) (*plot.Plot, []float64, error) {
	p := common.NewPanel(title, "", yLabel, []string{c.AName, c.BName})
	vals := finite(c.Pair(metric))
	if err := common.AddColoredBars(p, vals, colorAt); err != nil {
		return nil, nil, err
	}
	if err := common.AddValueLabels(p, vals, format); err != nil {
		return nil, nil, err
	}
	return p, vals, nil
}

func coveragePanel(c Comparison) (*plot.Plot, error) {
	p, _, err := singlePanel(c, "Genome fraction assembled", "Coverage (%)", "Genome fraction (%)",
		pairColors, func(v float64) string { return fmt.Sprintf("%.2f%%", v) })
	if err != nil {
		return nil, err
	}
	common.AddHLine(p, 100, green, vg.Points(2), "Full coverage")
	p.Y.Min, p.Y.Max = 0, 105
	return p, nil
}

func contigsPanel(c Comparison) (*plot.Plot, error) {
	p, vals, err := singlePanel(c, "Number of contigs", "Number of contigs", "# contigs",
		pairColors, func(v float64) string { return fmt.Sprintf("%.0f", v) })
	if err != nil {
		return nil, err
	}
	p.Y.Min, p.Y.Max = 0, math.Max(vals[0], vals[1])+0.5
	return p, nil
}

func misassemblyPanel(c Comparison) (*plot.Plot, error) {
	p := common.NewPanel("Assembly errors", "", "Count", []string{c.AName, c.BName})
	mis := finite(c.Pair("# misassemblies"))
	local := finite(c.Pair("# local misassemblies"))
	if err := common.AddGroupedBars(p, mis, local, "Misassemblies", "Local misassemblies", red, orange); err != nil {
		return nil, err
	}
	p.Y.Min = 0
	return p, nil
}

func unalignedPanel(c Comparison) (*plot.Plot, error) {
	colorAt := func(i int, _ float64) color.Color {
		if i == 0 {
			return red
		}
		return safeGreen
	}
	p, _, err := singlePanel(c, "Unaligned sequence", "Unaligned length (bp)", "Unaligned length",
		colorAt, func(v float64) string { return formatNumber(v, 0) + " bp" })
	if err != nil {
		return nil, err
	}
	p.Y.Min = 0
	return p, nil
}

func errorRatePanel(c Comparison) (*plot.Plot, error) {
	p := common.NewPanel("Error rates", "", "Errors per 100 kbp", []string{c.AName, c.BName})
	mm := finite(c.Pair("# mismatches per 100 kbp"))
	indels := finite(c.Pair("# indels per 100 kbp"))
	if err := common.AddGroupedBars(p, mm, indels, "Mismatches", "Indels", purple, pink); err != nil {
		return nil, err
	}
	p.Y.Min = 0
	return p, nil
}

func duplicationPanel(c Comparison) (*plot.Plot, error) {
	p, _, err := singlePanel(c, "Genome duplication", "Duplication ratio", "Duplication ratio",
		pairColors, func(v float64) string { return fmt.Sprintf("%.3f", v) })
	if err != nil {
		return nil, err
	}
	common.AddHLine(p, 1.0, green, vg.Points(2), "No duplication")
	p.Y.Min, p.Y.Max = 0.99, 1.01
	return p, nil
}

// summaryRows are the metrics of the figure's recap table.
var summaryRows = []struct {
	Label, Metric string
}{
	{"Genome fraction (%)", "Genome fraction (%)"},
	{"# misassemblies", "# misassemblies"},
	{"# local misassemblies", "# local misassemblies"},
	{"Mismatches/100kbp", "# mismatches per 100 kbp"},
	{"Indels/100kbp", "# indels per 100 kbp"},
	{"Unaligned length", "Unaligned length"},
	{"N50", "N50"},
}

// SummaryTable returns the recap table drawn in the figure, header first.
func SummaryTable(c Comparison) [][]string {
	rows := [][]string{{"Metric", c.AName, c.BName, "Best"}}
	for _, r := range summaryRows {
		m, ok := c.Get(r.Metric)
		if !ok {
			continue
		}
		format := func(v float64) string {
			if math.IsNaN(v) {
				return quast_report.MissingMarker
			}
			return fmt.Sprintf("%.*f", m.Decimals, v)
		}
		rows = append(rows, []string{r.Label, format(m.A), format(m.B), m.Winner(c.AName, c.BName)})
	}
	return rows
}

var tableColumns = []float64{0, 0.35, 0.55, 0.75, 1}

// blankPanel is a plot with hidden axes spanning [0,1] on both axes.
func blankPanel(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.HideAxes()
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	return p
}

func rectangle(x0, y0, x1, y1 float64, fill color.Color) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}})
	if err != nil {
		return nil, err
	}
	poly.Color = fill
	poly.LineStyle.Color = color.Gray{Y: 160}
	poly.LineStyle.Width = vg.Points(0.5)
	return poly, nil
}

func tablePanel(c Comparison) (*plot.Plot, error) {
	p := blankPanel("Summary table")
	rows := SummaryTable(c)
	h := 1 / float64(len(rows))

	var xys plotter.XYs
	var labels []string
	var styles []color.Color
	for r, row := range rows {
		y1 := 1 - float64(r)*h
		y0 := y1 - h
		for col, text := range row {
			fill := color.Color(color.White)
			switch {
			case r == 0:
				fill = headerBlue
			case col == 3 && text == c.BName:
				fill = bestB
			case col == 3 && text == c.AName:
				fill = bestA
			case col == 3:
				fill = tieYellow
			}
			cell, err := rectangle(tableColumns[col], y0, tableColumns[col+1], y1, fill)
			if err != nil {
				return nil, err
			}
			p.Add(cell)

			xys = append(xys, plotter.XY{X: (tableColumns[col] + tableColumns[col+1]) / 2, Y: (y0 + y1) / 2})
			labels = append(labels, text)
			if r == 0 {
				styles = append(styles, color.White)
			} else {
				styles = append(styles, color.Black)
			}
		}
	}

	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = draw.XCenter
		l.TextStyle[i].YAlign = draw.YCenter
		l.TextStyle[i].Font.Size = vg.Points(8)
		l.TextStyle[i].Color = styles[i]
	}
	p.Add(l)
	return p, nil
}

const builtinAssessment = `QUALITATIVE ASSESSMENT:

51mers assembler:
+ Good: no major misassemblies
+ Good: high N50 (16159 bp)
+ Good: a single contig
- Issue: 88.41% of the genome covered
- Issue: 6757 bp unaligned
- Issue: moderate error rate
  (2329.29 mismatches/100kbp)
  (521.17 indels/100kbp)
- Issue: 5 local misassemblies

Minia:
+ Excellent: 93.52% of the genome covered
+ Excellent: no errors detected
+ Excellent: no unaligned sequence
+ Good: a single contig
~ Slightly lower N50 (9936 bp)

CONCLUSION: Minia produces a better
assembly with fewer errors and
better coverage.`

// Assessment is the text block of the last panel.
func Assessment(c Comparison) string {
	if c.Builtin {
		return builtinAssessment
	}
	return "QUALITATIVE ASSESSMENT:\n\n" + verdicts(c)
}

func assessmentPanel(c Comparison) (*plot.Plot, error) {
	p := blankPanel("")
	box, err := rectangle(0.02, 0.02, 0.98, 0.98, wheat)
	if err != nil {
		return nil, err
	}
	p.Add(box)

	lines := strings.Split(Assessment(c), "\n")
	step := 0.94 / float64(len(lines)+1)
	xys := make(plotter.XYs, len(lines))
	for i := range lines {
		xys[i] = plotter.XY{X: 0.06, Y: 0.96 - float64(i+1)*step}
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: lines})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Variant = "Mono"
		l.TextStyle[i].Font.Size = vg.Points(7)
		l.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(l)
	return p, nil
}

// WriteFigure renders the 3x3 comparison figure.
func WriteFigure(path string, c Comparison, dpi int) error {
	builders := []func(Comparison) (*plot.Plot, error){
		lengthsPanel, coveragePanel, contigsPanel,
		misassemblyPanel, unalignedPanel, errorRatePanel,
		duplicationPanel, tablePanel, assessmentPanel,
	}
	grid := make([][]*plot.Plot, 3)
	for i, build := range builders {
		p, err := build(c)
		if err != nil {
			return fmt.Errorf("panel %d: %w", i+1, err)
		}
		grid[i/3] = append(grid[i/3], p)
	}
	return common.SaveGrid(path, grid, 16*vg.Inch, 12*vg.Inch, dpi)
}
