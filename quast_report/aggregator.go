package quast_report

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
)

// ReportFileName is the file QUAST writes into every result folder.
const ReportFileName = "report.tsv"

type Source struct {
	Label  string
	Folder string
}

func ReportPath(basePath string, s Source) string {
	return filepath.Join(basePath, s.Folder, ReportFileName)
}

// Collect parses <basePath>/<folder>/report.tsv for each source, in order.
// Sources whose report is missing or empty are logged and left out; any
// other read failure is returned.
func Collect(basePath string, sources []Source, logger *slog.Logger) (*Table, error) {
	if logger == nil {
		logger = slog.Default()
	}

	table := NewTable()
	for _, s := range sources {
		path := ReportPath(basePath, s)
		rec, err := ParseReportFile(path)
		if errors.Is(err, ErrReportNotFound) {
			logger.Warn("report file not found, skipping assembly", "assembly", s.Label, "path", path)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("collect %s: %w", s.Label, err)
		}
		if rec.Len() == 0 {
			logger.Warn("report has no metrics, skipping assembly", "assembly", s.Label, "path", path)
			continue
		}
		logger.Debug("parsed report", "assembly", s.Label, "metrics", rec.Len())
		table.Append(s.Label, rec)
	}
	return table, nil
}
