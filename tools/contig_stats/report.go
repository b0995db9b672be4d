package contig_stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"quast_buddy_go/quast_report"
)

// Rows returns the report as QUAST metric/value pairs, "Assembly" first.
// Values QUAST cannot compute are written as "-".
func (s *ContigStats) Rows() [][2]string {
	itoa := strconv.Itoa
	dash := quast_report.MissingMarker

	rows := [][2]string{
		{"Assembly", s.Name},
		{"# contigs (>= 0 bp)", itoa(s.AllContigs)},
		{"Total length (>= 0 bp)", itoa(s.AllLength)},
	}
	if s.MinContig > 0 {
		rows = append(rows, [2]string{fmt.Sprintf("# contigs (>= %d bp)", s.MinContig), itoa(s.Contigs())})
	}
	rows = append(rows, [][2]string{
		{"# contigs", itoa(s.Contigs())},
		{"Largest contig", itoa(s.Largest())},
		{"Total length", itoa(s.TotalLength())},
	}...)
	if s.ReferenceLength > 0 {
		rows = append(rows, [2]string{"Reference length", itoa(s.ReferenceLength)})
	}

	gc := dash
	if v, ok := s.GCPercent(); ok {
		gc = strconv.FormatFloat(v, 'f', 2, 64)
	}
	rows = append(rows, [2]string{"GC (%)", gc})

	n50, l50 := dash, dash
	if n, l, ok := s.N50(); ok {
		n50, l50 = itoa(n), itoa(l)
	}
	ng50, lg50 := dash, dash
	if n, l, ok := s.NG50(); ok {
		ng50, lg50 = itoa(n), itoa(l)
	}
	rows = append(rows,
		[2]string{"N50", n50},
		[2]string{"NG50", ng50},
		[2]string{"L50", l50},
		[2]string{"LG50", lg50},
		[2]string{"# N's per 100 kbp", strconv.FormatFloat(s.NsPer100k(), 'f', 2, 64)},
	)
	return rows
}

// WriteReport writes the two-column tab separated report.
func (s *ContigStats) WriteReport(w io.Writer) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'
	for _, row := range s.Rows() {
		if err := writer.Write(row[:]); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveReport writes the report to path.
func (s *ContigStats) SaveReport(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := s.WriteReport(f); err != nil {
		return err
	}
	return f.Close()
}

// PrintSummary prints a short human readable overview.
func (s *ContigStats) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "Contig statistics: %s\n", s.Name)
	fmt.Fprintln(w, "------------------------------------------")
	fmt.Fprintf(w, "Records read: %d (%d bp)\n", s.AllContigs, s.AllLength)
	fmt.Fprintf(w, "Contigs >= %d bp: %d (%d bp)\n", s.MinContig, s.Contigs(), s.TotalLength())
	fmt.Fprintf(w, "Largest contig: %d bp\n", s.Largest())
	if gc, ok := s.GCPercent(); ok {
		fmt.Fprintf(w, "GC content: %.2f%%\n", gc)
	}
	if n, l, ok := s.N50(); ok {
		fmt.Fprintf(w, "N50: %d bp (L50 = %d)\n", n, l)
	}
	if n, l, ok := s.NG50(); ok {
		fmt.Fprintf(w, "NG50: %d bp (LG50 = %d)\n", n, l)
	}
}
