package quast_report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	common "quast_buddy_go/utils"
)

// ErrReportNotFound is returned when a report file does not exist.
var ErrReportNotFound = fmt.Errorf("report not found: %w", fs.ErrNotExist)

// ParseReportFile parses a QUAST report.tsv (optionally gzipped).
func ParseReportFile(path string) (*Record, error) {
	r, err := common.OpenMaybeGzip(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, path)
		}
		return nil, fmt.Errorf("open report %s: %w", path, err)
	}
	defer r.Close()

	rec, err := ParseReport(r)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}
	return rec, nil
}

// ParseReport reads two-column tab separated lines. Lines that do not split
// into exactly two fields are skipped.
func ParseReport(r io.Reader) (*Record, error) {
	rec := NewRecord()
	br := bufio.NewReader(r) // no line length limit
	for {
		line, err := br.ReadString('\n')
		if parts := strings.Split(strings.TrimSpace(line), "\t"); len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			rec.Set(key, ParseValue(strings.TrimSpace(parts[1])))
		}
		if err == io.EOF {
			return rec, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
