package assembly_compare

import (
	"fmt"
	"image/color"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"quast_buddy_go/quast_report"
	common "quast_buddy_go/utils"
)

const (
	OverviewFile = "comparison_overview.png"
	DetailedFile = "detailed_stats.png"
)

func genomeFractionColor(_ int, v float64) color.Color {
	switch {
	case v > 90:
		return goodColor
	case v > 50:
		return fairColor
	default:
		return poorColor
	}
}

func duplicationColor(_ int, v float64) color.Color {
	switch {
	case v <= 1.05:
		return color.NRGBA{R: 0x27, G: 0xae, B: 0x60, A: 178}
	case v <= 1.2:
		return color.NRGBA{R: 0xe6, G: 0x7e, B: 0x22, A: 178}
	default:
		return color.NRGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 178}
	}
}

// WriteOverview renders GC content, genome fraction, N50/NGA50 and
// fragmentation panels into one 2x2 figure.
func WriteOverview(path string, t *quast_report.Table, dpi int) error {
	names := t.Labels()

	gc := common.NewPanel("GC content comparison", "Assembly", "GC (%)", names)
	if err := common.AddGroupedBars(gc, t.Numbers("GC (%)", 0), t.Numbers("Reference GC (%)", 0),
		"Assembly", "Reference", skyBlue, lightCoral); err != nil {
		return fmt.Errorf("gc panel: %w", err)
	}

	fraction := t.Numbers("Genome fraction (%)", 0)
	gf := common.NewPanel("Reference genome coverage", "Assembly", "Genome fraction (%)", names)
	if err := common.AddColoredBars(gf, fraction, genomeFractionColor); err != nil {
		return fmt.Errorf("genome fraction panel: %w", err)
	}
	common.AddHLine(gf, 90, green, vg.Points(1), "Excellent (>90%)")
	common.AddHLine(gf, 50, orange, vg.Points(1), "Fair (>50%)")
	if err := common.AddValueLabels(gf, fraction, func(v float64) string { return fmt.Sprintf("%.1f%%", v) }); err != nil {
		return fmt.Errorf("genome fraction labels: %w", err)
	}

	contiguity := common.NewPanel("N50 and NGA50 (contiguity)", "Assembly", "Length (bp)", names)
	if err := common.AddGroupedBars(contiguity, t.Numbers("N50", 0), t.Numbers("NGA50", 0),
		"N50", "NGA50", steelBlue, darkOrange); err != nil {
		return fmt.Errorf("contiguity panel: %w", err)
	}

	frag := common.NewPanel("Fragmentation and assembly errors", "Assembly", "Count", names)
	if err := common.AddMarkerLine(frag, t.Numbers("# contigs", 0), blue, draw.CircleGlyph{}, "Number of contigs"); err != nil {
		return fmt.Errorf("fragmentation panel: %w", err)
	}
	if err := common.AddMarkerLine(frag, t.Numbers("# misassemblies", 0), red, draw.BoxGlyph{}, "Misassemblies"); err != nil {
		return fmt.Errorf("fragmentation panel: %w", err)
	}
	frag.Legend.Left = true

	return common.SaveGrid(path, [][]*plot.Plot{{gc, gf}, {contiguity, frag}}, 16*vg.Inch, 12*vg.Inch, dpi)
}

// WriteDetailedStats renders lengths, largest contig, error rates and
// duplication ratio into one 2x2 figure.
func WriteDetailedStats(path string, t *quast_report.Table, dpi int) error {
	names := t.Labels()

	lengths := common.NewPanel("Total length vs reference", "Assembly", "Length (bp)", names)
	if err := common.AddGroupedBars(lengths, t.Numbers("Total length", 0), t.Numbers("Reference length", 0),
		"Assembly length", "Reference length", mediumSeaGreen, salmon); err != nil {
		return fmt.Errorf("length panel: %w", err)
	}

	largest := t.Numbers("Largest contig", 0)
	lc := common.NewPanel("Largest contig", "Assembly", "Length (bp)", names)
	if err := common.AddColoredBars(lc, largest, func(int, float64) color.Color { return purple }); err != nil {
		return fmt.Errorf("largest contig panel: %w", err)
	}
	if err := common.AddValueLabels(lc, largest, func(v float64) string { return humanize.Comma(int64(v)) }); err != nil {
		return fmt.Errorf("largest contig labels: %w", err)
	}

	rates := common.NewPanel("Error rates (mismatches and indels)", "Assembly", "Errors per 100 kbp", names)
	if err := common.AddGroupedBars(rates, t.Numbers("# mismatches per 100 kbp", 0), t.Numbers("# indels per 100 kbp", 0),
		"Mismatches", "Indels", indianRed, lightCoral); err != nil {
		return fmt.Errorf("error rate panel: %w", err)
	}

	ratio := t.Numbers("Duplication ratio", 1)
	dup := common.NewPanel("Duplication ratio (ideal ≈ 1.0)", "Assembly", "Duplication ratio", names)
	if err := common.AddColoredBars(dup, ratio, duplicationColor); err != nil {
		return fmt.Errorf("duplication panel: %w", err)
	}
	common.AddHLine(dup, 1.0, green, vg.Points(2), "Ideal (1.0)")
	common.AddHLine(dup, 1.05, orange, vg.Points(1), "Acceptable (<1.05)")
	if err := common.AddValueLabels(dup, ratio, func(v float64) string { return fmt.Sprintf("%.3f", v) }); err != nil {
		return fmt.Errorf("duplication labels: %w", err)
	}

	return common.SaveGrid(path, [][]*plot.Plot{{lengths, lc}, {rates, dup}}, 16*vg.Inch, 12*vg.Inch, dpi)
}
