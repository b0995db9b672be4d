package assembly_compare

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	common "quast_buddy_go/utils"
)

const HeatmapFile = "heatmap_comparison.png"

// redYellowGreen is a diverging palette from worst (red) to best (green).
type redYellowGreen struct{ steps int }

var _ palette.Palette = redYellowGreen{}

var (
	rygLow  = color.RGBA{R: 0xd7, G: 0x30, B: 0x27, A: 255}
	rygMid  = color.RGBA{R: 0xff, G: 0xff, B: 0xbf, A: 255}
	rygHigh = color.RGBA{R: 0x1a, G: 0x98, B: 0x50, A: 255}
)

func (p redYellowGreen) Colors() []color.Color {
	n := p.steps
	if n < 2 {
		n = 2
	}
	out := make([]color.Color, n)
	for i := range out {
		f := float64(i) / float64(n-1)
		if f < 0.5 {
			out[i] = lerpColor(rygLow, rygMid, f*2)
		} else {
			out[i] = lerpColor(rygMid, rygHigh, (f-0.5)*2)
		}
	}
	return out
}

func lerpColor(a, b color.RGBA, f float64) color.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// scoreGrid exposes a NormalizedTable as a heat map grid: columns are
// assemblies, rows are metrics with the first metric on top.
type scoreGrid struct{ n *NormalizedTable }

func (g scoreGrid) Dims() (c, r int) { return len(g.n.Labels), len(g.n.Metrics) }
func (g scoreGrid) Z(c, r int) float64 {
	return g.n.Scores[c][len(g.n.Metrics)-1-r]
}
func (g scoreGrid) X(c int) float64 { return float64(c) }
func (g scoreGrid) Y(r int) float64 { return float64(r) }

// WriteHeatmap renders the normalized scores with every cell annotated.
func WriteHeatmap(path string, n *NormalizedTable, dpi int) error {
	if len(n.Labels) == 0 || len(n.Metrics) == 0 {
		return fmt.Errorf("heatmap: nothing to draw")
	}

	p := plot.New()
	p.Title.Text = "Normalized comparison of assembly metrics\n(green = better, red = worse; 0 = worst, 1 = best)"
	p.Title.TextStyle.Font.Size = vg.Points(13)
	p.X.Label.Text = "Assembly"
	p.Y.Label.Text = "Metric"

	grid := scoreGrid{n}
	hm := plotter.NewHeatMap(grid, redYellowGreen{steps: 64})
	lo := 0.0
	for _, row := range n.Scores {
		for _, s := range row {
			lo = math.Min(lo, s)
		}
	}
	hm.Min, hm.Max = lo, 1
	hm.Underflow = rygLow
	hm.Overflow = rygHigh
	p.Add(hm)

	cols, rows := grid.Dims()
	xys := make(plotter.XYs, 0, cols*rows)
	labels := make([]string, 0, cols*rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			xys = append(xys, plotter.XY{X: grid.X(c), Y: grid.Y(r)})
			labels = append(labels, fmt.Sprintf("%.2f", grid.Z(c, r)))
		}
	}
	annotations, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return fmt.Errorf("heatmap labels: %w", err)
	}
	for i := range annotations.TextStyle {
		annotations.TextStyle[i].XAlign = draw.XCenter
		annotations.TextStyle[i].YAlign = draw.YCenter
		annotations.TextStyle[i].Font.Size = vg.Points(10)
	}
	p.Add(annotations)

	metricsTopDown := make([]string, rows)
	for r := 0; r < rows; r++ {
		metricsTopDown[r] = n.Metrics[rows-1-r]
	}
	p.NominalX(n.Labels...)
	p.NominalY(metricsTopDown...)
	p.X.Min, p.X.Max = -0.5, float64(cols)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(rows)-0.5

	return common.SavePlot(path, p, 14*vg.Inch, 8*vg.Inch, dpi)
}
