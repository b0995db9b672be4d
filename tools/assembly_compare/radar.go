package assembly_compare

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	common "quast_buddy_go/utils"
)

const RadarFile = "radar_comparison.png"

var radarColors = []color.RGBA{
	{R: 0x34, G: 0x98, B: 0xdb, A: 255},
	{R: 0xe7, G: 0x4c, B: 0x3c, A: 255},
	{R: 0x2e, G: 0xcc, B: 0x71, A: 255},
	{R: 0xf3, G: 0x9c, B: 0x12, A: 255},
	{R: 0x9b, G: 0x59, B: 0xb6, A: 255},
	{R: 0x1a, G: 0xbc, B: 0x9c, A: 255},
}

var radarRings = []float64{0.2, 0.4, 0.6, 0.8, 1.0}

// SpokeAngles returns the polar angle of each of n spokes, evenly spaced
// counter-clockwise from the positive X axis.
func SpokeAngles(n int) []float64 {
	angles := make([]float64, n)
	for k := range angles {
		angles[k] = float64(k) / float64(n) * 2 * math.Pi
	}
	return angles
}

// radarPoints places one score per spoke. Radii are clipped to the
// displayed [0,1] range.
func radarPoints(scores, angles []float64) plotter.XYs {
	pts := make(plotter.XYs, len(scores))
	for k, s := range scores {
		r := math.Max(0, math.Min(1, s))
		pts[k] = plotter.XY{X: r * math.Cos(angles[k]), Y: r * math.Sin(angles[k])}
	}
	return pts
}

func closed(pts plotter.XYs) plotter.XYs {
	return append(append(plotter.XYs(nil), pts...), pts[0])
}

// WriteRadar renders one filled polygon per assembly over the metric spokes.
func WriteRadar(path string, n *NormalizedTable, dpi int) error {
	if len(n.Metrics) == 0 {
		return fmt.Errorf("radar: no metrics")
	}

	p := plot.New()
	p.Title.Text = "Overall assembly comparison\n(larger area = better assembly)"
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.HideAxes()
	p.X.Min, p.X.Max = -1.45, 1.45
	p.Y.Min, p.Y.Max = -1.3, 1.3
	p.Legend.Top = true

	angles := SpokeAngles(len(n.Metrics))
	gridColor := color.Gray{Y: 200}

	for _, ring := range radarRings {
		circle := make(plotter.XYs, 0, 121)
		for i := 0; i <= 120; i++ {
			a := float64(i) / 120 * 2 * math.Pi
			circle = append(circle, plotter.XY{X: ring * math.Cos(a), Y: ring * math.Sin(a)})
		}
		l, err := plotter.NewLine(circle)
		if err != nil {
			return err
		}
		l.Color = gridColor
		l.Width = vg.Points(0.5)
		p.Add(l)
	}

	for _, a := range angles {
		spoke, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: math.Cos(a), Y: math.Sin(a)}})
		if err != nil {
			return err
		}
		spoke.Color = gridColor
		spoke.Width = vg.Points(0.5)
		p.Add(spoke)
	}

	for idx, label := range n.Labels {
		c := radarColors[idx%len(radarColors)]
		pts := radarPoints(n.Scores[idx], angles)

		area, err := plotter.NewPolygon(pts)
		if err != nil {
			return fmt.Errorf("radar %s: %w", label, err)
		}
		area.Color = color.NRGBA{R: c.R, G: c.G, B: c.B, A: 38}
		area.LineStyle.Width = 0
		p.Add(area)

		outline, markers, err := plotter.NewLinePoints(closed(pts))
		if err != nil {
			return fmt.Errorf("radar %s: %w", label, err)
		}
		outline.Color = c
		outline.Width = vg.Points(2)
		markers.Color = c
		markers.Shape = draw.CircleGlyph{}
		markers.Radius = vg.Points(3)
		p.Add(outline, markers)
		p.Legend.Add(label, outline, markers)
	}

	axisLabels, err := spokeLabels(n.Metrics, angles)
	if err != nil {
		return err
	}
	p.Add(axisLabels)

	ringXYs := make(plotter.XYs, len(radarRings))
	ringText := make([]string, len(radarRings))
	for i, ring := range radarRings {
		a := math.Pi / 8
		ringXYs[i] = plotter.XY{X: ring * math.Cos(a), Y: ring * math.Sin(a)}
		ringText[i] = fmt.Sprintf("%.1f", ring)
	}
	ringLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: ringXYs, Labels: ringText})
	if err != nil {
		return err
	}
	for i := range ringLabels.TextStyle {
		ringLabels.TextStyle[i].Font.Size = vg.Points(8)
		ringLabels.TextStyle[i].Color = color.Gray{Y: 110}
	}
	p.Add(ringLabels)

	return common.SavePlot(path, p, 10*vg.Inch, 10*vg.Inch, dpi)
}

// spokeLabels puts each metric name just outside the unit circle, aligned
// away from the center.
func spokeLabels(metrics []string, angles []float64) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(metrics))
	for k, a := range angles {
		xys[k] = plotter.XY{X: 1.08 * math.Cos(a), Y: 1.08 * math.Sin(a)}
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: metrics})
	if err != nil {
		return nil, err
	}
	for k, a := range angles {
		switch cos := math.Cos(a); {
		case cos > 0.1:
			l.TextStyle[k].XAlign = draw.XLeft
		case cos < -0.1:
			l.TextStyle[k].XAlign = draw.XRight
		default:
			l.TextStyle[k].XAlign = draw.XCenter
		}
		l.TextStyle[k].YAlign = draw.YCenter
		l.TextStyle[k].Font.Size = vg.Points(10)
	}
	return l, nil
}
