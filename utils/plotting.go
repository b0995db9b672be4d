package common

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// BarWidth is the width of one bar in grouped and single bar panels.
var BarWidth = vg.Points(18)

// NewPanel returns a plot with a title, axis labels and a grid. Non-empty
// names become a nominal X axis with rotated tick labels.
func NewPanel(title, xLabel, yLabel string, names []string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	if len(names) > 0 {
		p.NominalX(names...)
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
		p.X.Min = -0.5
		p.X.Max = float64(len(names)) - 0.5
	}
	return p
}

// AddGroupedBars draws two bar series side by side around each nominal tick.
func AddGroupedBars(p *plot.Plot, left, right []float64, leftName, rightName string, leftColor, rightColor color.Color) error {
	lb, err := plotter.NewBarChart(plotter.Values(left), BarWidth)
	if err != nil {
		return err
	}
	lb.Color = leftColor
	lb.LineStyle.Width = 0
	lb.Offset = -BarWidth / 2

	rb, err := plotter.NewBarChart(plotter.Values(right), BarWidth)
	if err != nil {
		return err
	}
	rb.Color = rightColor
	rb.LineStyle.Width = 0
	rb.Offset = BarWidth / 2

	p.Add(lb, rb)
	p.Legend.Add(leftName, lb)
	p.Legend.Add(rightName, rb)
	return nil
}

// AddColoredBars draws one bar per value, each with its own color.
func AddColoredBars(p *plot.Plot, values []float64, colorAt func(i int, v float64) color.Color) error {
	for i, v := range values {
		b, err := plotter.NewBarChart(plotter.Values{v}, BarWidth*1.6)
		if err != nil {
			return err
		}
		b.XMin = float64(i)
		b.Color = colorAt(i, v)
		b.LineStyle.Width = 0
		p.Add(b)
	}
	return nil
}

// AddValueLabels writes format(v) just above each bar.
func AddValueLabels(p *plot.Plot, values []float64, format func(float64) string) error {
	xys := make(plotter.XYs, len(values))
	labels := make([]string, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		labels[i] = format(v)
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = draw.XCenter
		l.TextStyle[i].Font.Size = vg.Points(8)
	}
	l.Offset = vg.Point{Y: vg.Points(2)}
	p.Add(l)
	return nil
}

// AddHLine draws a dashed horizontal reference line and keeps it in view.
func AddHLine(p *plot.Plot, y float64, c color.Color, width vg.Length, legend string) {
	f := plotter.NewFunction(func(float64) float64 { return y })
	f.Color = c
	f.Width = width
	f.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(f)
	if legend != "" {
		p.Legend.Add(legend, f)
	}
	if p.Y.Max < y {
		p.Y.Max = y * 1.05
	}
	if p.Y.Min > y {
		p.Y.Min = y * 0.95
	}
}

// AddMarkerLine draws values as a connected line with point markers.
func AddMarkerLine(p *plot.Plot, values []float64, c color.Color, shape draw.GlyphDrawer, legend string) error {
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = vg.Points(2)
	points.Color = c
	points.Shape = shape
	points.Radius = vg.Points(4)
	p.Add(line, points)
	p.Legend.Add(legend, line, points)
	return nil
}

// SaveGrid lays the plots out in rows and columns and writes a PNG.
func SaveGrid(path string, plots [][]*plot.Plot, width, height vg.Length, dpi int) error {
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      vg.Millimeter * 8,
		PadY:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 4,
		PadBottom: vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 4,
	}

	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}
	return writePNG(path, img)
}

// SavePlot writes a single plot as a PNG at the given resolution.
func SavePlot(path string, p *plot.Plot, width, height vg.Length, dpi int) error {
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(img))
	return writePNG(path, img)
}

func writePNG(path string, img *vgimg.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
