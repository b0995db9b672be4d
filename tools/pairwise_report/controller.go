package pairwise_report

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Options select the data and the output folder of a pairwise report.
// With both report paths empty the built-in 51mers vs Minia figures are used.
type Options struct {
	OutDir  string
	AReport string
	BReport string
	AName   string
	BName   string
	DPI     int
}

func Run(args []string) {
	fs := flag.NewFlagSet("pairwise", flag.ExitOnError)
	outDir := fs.String("out_dir", ".", "Folder receiving the figure, text report and CSV table")
	aReport := fs.String("a_report", "", "QUAST report.tsv of the first assembly (optional)")
	bReport := fs.String("b_report", "", "QUAST report.tsv of the second assembly (optional)")
	aName := fs.String("a_name", "51mers", "Label of the first assembly")
	bName := fs.String("b_name", "Minia", "Label of the second assembly")
	dpi := fs.Int("dpi", 300, "Resolution of the PNG figure")

	err := fs.Parse(args)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}
	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}
	if (*aReport == "") != (*bReport == "") {
		fmt.Println("Error: -a_report and -b_report must be given together.")
		os.Exit(1)
	}

	opts := Options{
		OutDir:  *outDir,
		AReport: *aReport,
		BReport: *bReport,
		AName:   *aName,
		BName:   *bName,
		DPI:     *dpi,
	}
	if err := Generate(opts, os.Stdout, slog.Default()); err != nil {
		fmt.Fprintln(os.Stderr, "❌ Error:", err)
		os.Exit(1)
	}
}

// Load returns the comparison selected by opts.
func Load(opts Options) (Comparison, error) {
	if opts.AReport == "" && opts.BReport == "" {
		return Builtin(), nil
	}
	if opts.AReport == "" || opts.BReport == "" {
		return Comparison{}, fmt.Errorf("both reports are needed, got %q and %q", opts.AReport, opts.BReport)
	}
	return FromReports(opts.AName, opts.AReport, opts.BName, opts.BReport)
}

// Generate writes the figure, the text report and the CSV table into
// opts.OutDir, and echoes the report to out. The first failure stops it.
func Generate(opts Options, out io.Writer, logger *slog.Logger) error {
	c, err := Load(opts)
	if err != nil {
		return err
	}
	if opts.DPI <= 0 {
		opts.DPI = 300
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	logger.Debug("pairwise comparison", "a", c.AName, "b", c.BName, "builtin", c.Builtin, "out_dir", opts.OutDir)

	if err := WriteFigure(filepath.Join(opts.OutDir, FigureFile), c, opts.DPI); err != nil {
		return fmt.Errorf("figure: %w", err)
	}
	fmt.Fprintf(out, "✓ Comparison figure saved: %s\n", FigureFile)

	if err := SaveTextReport(filepath.Join(opts.OutDir, ReportFile), c); err != nil {
		return fmt.Errorf("text report: %w", err)
	}
	fmt.Fprintf(out, "✓ Detailed report saved: %s\n", ReportFile)

	if err := WriteTableCSV(filepath.Join(opts.OutDir, TableFile), c); err != nil {
		return fmt.Errorf("comparison table: %w", err)
	}
	fmt.Fprintf(out, "✓ Comparison table saved: %s\n", TableFile)

	WriteTextReport(out, c)
	return nil
}
