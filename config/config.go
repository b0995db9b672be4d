// Package config holds version constants and the run configuration of the
// compare tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AssemblySource names one QUAST result folder and the label it is shown under.
type AssemblySource struct {
	Label  string `yaml:"label"`
	Folder string `yaml:"folder"`
}

// TargetMetric is scored by closeness to Value.
type TargetMetric struct {
	Metric string  `yaml:"metric"`
	Value  float64 `yaml:"value"`
}

type MetricConfig struct {
	Maximize []string     `yaml:"maximize"`
	Minimize []string     `yaml:"minimize"`
	Target   TargetMetric `yaml:"target"`
}

type RunConfig struct {
	BasePath   string           `yaml:"base_path"`
	OutputDir  string           `yaml:"output_dir"`
	DPI        int              `yaml:"dpi"`
	Assemblies []AssemblySource `yaml:"assemblies"`
	Metrics    MetricConfig     `yaml:"metrics"`
}

// Default returns the settings the comparison was originally run with.
func Default() RunConfig {
	return RunConfig{
		BasePath:  "/home/najat/quast_ascii/resultats",
		OutputDir: "comparison_plots",
		DPI:       300,
		Assemblies: []AssemblySource{
			{Label: "7-mers", Folder: "7mers"},
			{Label: "11-mers", Folder: "11mers"},
			{Label: "21-mers", Folder: "21mers"},
			{Label: "31-mers", Folder: "31mers"},
			{Label: "91-mers", Folder: "91mers"},
			{Label: "Minia", Folder: "minia_results"},
		},
		Metrics: MetricConfig{
			Maximize: []string{"Genome fraction (%)", "N50", "NGA50", "Largest contig"},
			Minimize: []string{"# contigs", "# misassemblies", "# mismatches per 100 kbp", "# indels per 100 kbp"},
			Target:   TargetMetric{Metric: "Duplication ratio", Value: 1.0},
		},
	}
}

// Load reads a YAML run configuration. Keys missing from the file keep
// their Default values.
func Load(path string) (RunConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("config path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ResolvedOutputDir joins a relative output directory onto the base path.
func (c RunConfig) ResolvedOutputDir() string {
	if filepath.IsAbs(c.OutputDir) {
		return c.OutputDir
	}
	return filepath.Join(c.BasePath, c.OutputDir)
}

func (c RunConfig) Validate() error {
	if c.BasePath == "" {
		return errors.New("base_path is required")
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}
	if len(c.Assemblies) == 0 {
		return errors.New("at least one assembly is required")
	}

	labels := make(map[string]bool)
	for _, a := range c.Assemblies {
		if a.Label == "" || a.Folder == "" {
			return errors.New("assembly label and folder are required")
		}
		if labels[a.Label] {
			return fmt.Errorf("duplicate assembly label %q", a.Label)
		}
		labels[a.Label] = true
	}

	seen := make(map[string]string)
	check := func(category string, names ...string) error {
		for _, name := range names {
			if name == "" {
				continue
			}
			if prev, ok := seen[name]; ok {
				return fmt.Errorf("metric %q listed as both %s and %s", name, prev, category)
			}
			seen[name] = category
		}
		return nil
	}
	if err := check("maximize", c.Metrics.Maximize...); err != nil {
		return err
	}
	if err := check("minimize", c.Metrics.Minimize...); err != nil {
		return err
	}
	return check("target", c.Metrics.Target.Metric)
}
