package assembly_compare

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"quast_buddy_go/config"
	"quast_buddy_go/quast_report"
)

// ErrNoData means none of the configured reports could be read.
var ErrNoData = errors.New("no QUAST data could be collected")

// Result lists what a comparison run produced.
type Result struct {
	OutputDir  string
	Assemblies []string
	Written    []string
	Failed     map[string]error
}

func Run(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgFile := fs.String("config", "", "YAML run configuration (defaults are built in)")
	basePath := fs.String("base_path", "", "Folder holding one QUAST result folder per assembly")
	outDir := fs.String("out_dir", "", "Output folder (relative paths are taken from base_path)")
	dpi := fs.Int("dpi", 0, "Resolution of the PNG charts")

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

	cfg := config.Default()
	if *cfgFile != "" {
		cfg, err = config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to load config:", err)
			os.Exit(1)
		}
	}
	if *basePath != "" {
		cfg.BasePath = *basePath
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *dpi > 0 {
		cfg.DPI = *dpi
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
		os.Exit(1)
	}

	res, err := Compare(cfg, os.Stdout, slog.Default())
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ Error:", err)
		os.Exit(1)
	}
	if len(res.Failed) > 0 {
		os.Exit(1)
	}
}

// Compare collects the configured reports and writes every chart and
// summary into the output directory. Artifacts that fail are recorded in
// Result.Failed and do not stop the others.
func Compare(cfg config.RunConfig, out io.Writer, logger *slog.Logger) (*Result, error) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "QUAST assembly comparison")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "📊 Collecting QUAST data...")
	sources := make([]quast_report.Source, len(cfg.Assemblies))
	for i, a := range cfg.Assemblies {
		sources[i] = quast_report.Source{Label: a.Label, Folder: a.Folder}
	}
	table, err := quast_report.Collect(cfg.BasePath, sources, logger)
	if err != nil {
		return nil, err
	}
	if table.Len() == 0 {
		return nil, ErrNoData
	}
	fmt.Fprintf(out, "✓ %d assemblies analysed: %s\n\n", table.Len(), strings.Join(table.Labels(), ", "))

	metrics := MetricSetFromConfig(cfg.Metrics)
	normalized, err := Normalize(table, metrics)
	if err != nil {
		return nil, err
	}

	res := &Result{
		OutputDir:  cfg.ResolvedOutputDir(),
		Assemblies: table.Labels(),
		Failed:     make(map[string]error),
	}
	if err := os.MkdirAll(res.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	fmt.Fprintln(out, "📈 Rendering comparison charts...")
	charts := RenderCharts(res.OutputDir, table, normalized, cfg.DPI)
	var chartFiles []string
	for _, c := range charts {
		if c.Err != nil {
			logger.Error("chart failed", "file", c.File, "err", c.Err)
			res.Failed[c.File] = c.Err
			continue
		}
		fmt.Fprintf(out, "✓ Saved %s\n", c.File)
		res.Written = append(res.Written, c.File)
		chartFiles = append(chartFiles, c.File)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "📋 Writing summary table...")
	summary := BuildSummary(table, metrics)
	if err := WriteSummaryCSV(filepath.Join(res.OutputDir, SummaryCSVFile), summary); err != nil {
		logger.Error("summary CSV failed", "err", err)
		res.Failed[SummaryCSVFile] = err
	} else {
		fmt.Fprintf(out, "✓ Saved %s\n", SummaryCSVFile)
		res.Written = append(res.Written, SummaryCSVFile)
	}
	if err := WriteSummaryHTML(filepath.Join(res.OutputDir, SummaryHTMLFile), summary, table, metrics, chartFiles); err != nil {
		logger.Error("summary HTML failed", "err", err)
		res.Failed[SummaryHTMLFile] = err
	} else {
		fmt.Fprintf(out, "✓ Saved %s\n", SummaryHTMLFile)
		res.Written = append(res.Written, SummaryHTMLFile)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "✅ Analysis complete")
	fmt.Fprintf(out, "📁 Results are in: %s\n", res.OutputDir)
	fmt.Fprintln(out, rule)
	return res, nil
}

// ChartResult is the outcome of rendering one chart file.
type ChartResult struct {
	File string
	Err  error
}

// RenderCharts draws the four chart files concurrently. Each chart owns
// its plot; the tables are only read.
func RenderCharts(dir string, t *quast_report.Table, n *NormalizedTable, dpi int) []ChartResult {
	jobs := []struct {
		file   string
		render func(path string) error
	}{
		{OverviewFile, func(p string) error { return WriteOverview(p, t, dpi) }},
		{DetailedFile, func(p string) error { return WriteDetailedStats(p, t, dpi) }},
		{HeatmapFile, func(p string) error { return WriteHeatmap(p, n, dpi) }},
		{RadarFile, func(p string) error { return WriteRadar(p, n, dpi) }},
	}

	results := make([]ChartResult, len(jobs))
	var g errgroup.Group
	for i, job := range jobs {
		i, job := i, job
		results[i].File = job.file
		g.Go(func() error {
			err := job.render(filepath.Join(dir, job.file))
			results[i].Err = err
			return err
		})
	}
	_ = g.Wait() // per-chart errors are reported through results
	return results
}
