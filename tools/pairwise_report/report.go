package pairwise_report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"quast_buddy_go/quast_report"
)

const (
	ReportFile = "rapport_comparaison_quast.txt"
	TableFile  = "comparison_table.csv"
)

var printer = message.NewPrinter(language.English)

// formatNumber groups thousands ("16,159", "2,329.29"); NaN prints as "-".
func formatNumber(v float64, decimals int) string {
	if math.IsNaN(v) {
		return quast_report.MissingMarker
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

type reportRow struct {
	Label  string
	Metric string
}

type reportSection struct {
	Title string
	Rows  []reportRow
	Note  string // commentary for the built-in dataset
}

var sections = []reportSection{
	{
		Title: "1. GENERAL STATISTICS",
		Rows: []reportRow{
			{"Number of contigs", "# contigs"},
			{"Total length (bp)", "Total length"},
			{"Largest contig (bp)", "Largest contig"},
			{"Genome fraction (%)", "Genome fraction (%)"},
			{"GC content (%)", "GC (%)"},
		},
		Note: `ANALYSIS: Minia covers 93.52% of the genome against 88.41% for 51mers.
The 51-mer assembler produces a longer contig, but that length includes errors.`,
	},
	{
		Title: "2. ASSEMBLY QUALITY (alignment metrics)",
		Rows: []reportRow{
			{"# Misassemblies", "# misassemblies"},
			{"# Local misassemblies", "# local misassemblies"},
			{"Unaligned length (bp)", "Unaligned length"},
			{"Largest alignment (bp)", "Largest alignment"},
			{"Total aligned length (bp)", "Total aligned length"},
		},
		Note: `CRITICAL ANALYSIS:
- The 51-mer assembler has 5 local misassemblies (minor assembly errors)
- 6,757 bp do not align to the reference (41.8% of the assembly!)
- Minia aligns perfectly with 0 errors`,
	},
	{
		Title: "3. ACCURACY (error rates)",
		Rows: []reportRow{
			{"Mismatches per 100 kbp", "# mismatches per 100 kbp"},
			{"Indels per 100 kbp", "# indels per 100 kbp"},
			{"Duplication ratio", "Duplication ratio"},
		},
		Note: `CRITICAL ANALYSIS:
- The 51-mer assembler has a HIGH ERROR RATE:
  * ~2.3% mismatches (about one error every 43 bp!)
  * ~0.52% indels
- Minia is PERFECTLY accurate (0 errors)
- These errors explain why the 51-mer contig is longer`,
	},
	{
		Title: "4. CONTIGUITY METRICS",
		Rows: []reportRow{
			{"N50", "N50"},
			{"NG50", "NG50"},
			{"NA50 (aligned)", "NA50"},
			{"NGA50 (aligned)", "NGA50"},
		},
		Note: `ANALYSIS:
- The 51mers N50 is artificially inflated by errors
- Counting ONLY correctly aligned sequence (NA50),
  Minia is slightly better (9,936 vs 9,402)
- NA50 and NGA50 matter most because they
  exclude assembly errors`,
	},
}

const builtinConclusion = `STRENGTHS of the 51-mer assembler:
✓ Simple structure (a single contig)
✓ No major misassemblies
✓ High N50 (but see below)
✓ Better coverage than with 31-mers (88.41% vs 80.89%)

WEAKNESSES of the 51-mer assembler:
✗ Insufficient coverage: only 88.41% of the genome
✗ HIGH error rate (2329.29 mismatches/100kbp)
✗ 6,757 bp unaligned (erroneous sequence or absent from the reference)
✗ 5 local misassemblies
✗ Poor accuracy compared with Minia

STRENGTHS of Minia:
✓✓✓ PERFECT ACCURACY (0 errors)
✓✓ Excellent coverage (93.52% of the genome)
✓✓ No unaligned sequence
✓✓ No misassemblies
✓ Simple structure (a single contig)

OVERALL CONCLUSION:
-------------------
With k=51 the assembler produces an assembly of AVERAGE quality compared
with Minia. The main issues are:

1. COVERAGE: ~11.6% of the genome is missing (vs 6.5% for Minia)
   A clear improvement over k=31 (88.41% vs 80.89%)

2. ACCURACY: the error rate stays high, most likely because of:
   - Erroneous k-mers left unfiltered (sequencing errors)
   - Poorly handled repeats
   - Unresolved bubbles in the De Bruijn graph
   - An Eulerian path that walks through erroneous edges
   NOTE: k=51 cuts errors significantly compared with k=31
         (2329 vs 6407 mismatches/100kbp)

3. ERRONEOUS SEQUENCE: 6,757 bp do not align to the reference,
   which is 41.8% of the assembly!

RECOMMENDATIONS:
----------------
1. Filter low-coverage k-mers (probably errors)
2. Implement better bubble resolution in the graph
3. Try other values of k (21, 31, 51, 71, 91)
4. Add an error-correction step before assembly
5. Improve the choice of Eulerian path

==================================================================================
FINAL ASSESSMENT:
==================================================================================

51mers assembler: 5/10 - Average quality, improved over 31mers
Minia:            10/10 - Excellent quality, reference assembly

Minia is superior in quality and accuracy.
The assembler works and k=51 improves the results,
but further improvements are still needed.`

const rule = "=================================================================================="

// bestLabel is the winner plus the target it was judged against, if any.
func bestLabel(c Comparison, m Metric) string {
	w := m.Winner(c.AName, c.BName)
	if m.Direction == CloserIsBetter && w != Tie && w != "n/a" {
		return fmt.Sprintf("%s (closest to %s)", w, formatNumber(m.Target, m.Decimals))
	}
	return w
}

// writeTable prints one metric table with columns padded to display width.
func writeTable(w io.Writer, c Comparison, rows []reportRow) {
	cells := make([][4]string, 0, len(rows)+1)
	cells = append(cells, [4]string{"Metric", c.AName, c.BName, "Best"})
	for _, r := range rows {
		m, ok := c.Get(r.Metric)
		if !ok {
			m = Metric{Name: r.Metric, A: math.NaN(), B: math.NaN()}
		}
		cells = append(cells, [4]string{
			r.Label,
			formatNumber(m.A, m.Decimals),
			formatNumber(m.B, m.Decimals),
			bestLabel(c, m),
		})
	}

	widths := [3]int{33, 9, 9}
	for _, row := range cells {
		for i := 0; i < 3; i++ {
			if sw := runewidth.StringWidth(row[i]); sw > widths[i] {
				widths[i] = sw
			}
		}
	}

	line := func(row [4]string) {
		fmt.Fprintf(w, "%s | %s | %s | %s\n",
			runewidth.FillRight(row[0], widths[0]),
			runewidth.FillRight(row[1], widths[1]),
			runewidth.FillRight(row[2], widths[2]),
			row[3])
	}
	line(cells[0])
	fmt.Fprintf(w, "%s|%s|%s|%s\n",
		strings.Repeat("-", widths[0]+1),
		strings.Repeat("-", widths[1]+2),
		strings.Repeat("-", widths[2]+2),
		strings.Repeat("-", 10))
	for _, row := range cells[1:] {
		line(row)
	}
}

// verdicts summarizes which assembly wins each metric, for comparisons
// that have no hand-written commentary.
func verdicts(c Comparison) string {
	var b strings.Builder
	wins := map[string][]string{}
	var ties, unknown []string
	for _, m := range append(append([]Metric(nil), c.Metrics...), c.Extra...) {
		switch w := m.Winner(c.AName, c.BName); w {
		case Tie:
			ties = append(ties, m.Name)
		case "n/a":
			unknown = append(unknown, m.Name)
		default:
			wins[w] = append(wins[w], m.Name)
		}
	}
	for _, name := range []string{c.AName, c.BName} {
		fmt.Fprintf(&b, "%s is better on %d metric(s):\n", name, len(wins[name]))
		for _, m := range wins[name] {
			fmt.Fprintf(&b, "✓ %s\n", m)
		}
		b.WriteString("\n")
	}
	if len(ties) > 0 {
		fmt.Fprintf(&b, "Tied: %s\n", strings.Join(ties, ", "))
	}
	if len(unknown) > 0 {
		fmt.Fprintf(&b, "Not available: %s\n", strings.Join(unknown, ", "))
	}

	switch a, bw := len(wins[c.AName]), len(wins[c.BName]); {
	case a > bw:
		fmt.Fprintf(&b, "\nCONCLUSION: %s wins on more metrics.", c.AName)
	case bw > a:
		fmt.Fprintf(&b, "\nCONCLUSION: %s wins on more metrics.", c.BName)
	default:
		b.WriteString("\nCONCLUSION: neither assembly wins on more metrics.")
	}
	return b.String()
}

// WriteTextReport renders the full text report.
func WriteTextReport(w io.Writer, c Comparison) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "QUAST COMPARISON REPORT")
	fmt.Fprintf(w, "%s assembly vs %s\n", c.AName, c.BName)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "REFERENCE GENOME:")
	fmt.Fprintf(w, "- Length: %s bp\n", formatNumber(c.ReferenceLength, 0))
	fmt.Fprintf(w, "- GC%%: %s%%\n", formatNumber(c.ReferenceGC, 2))
	fmt.Fprintln(w)

	for _, s := range sections {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, s.Title)
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w)
		writeTable(w, c, s.Rows)
		fmt.Fprintln(w)
		if c.Builtin && s.Note != "" {
			fmt.Fprintln(w, s.Note)
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "5. SYNTHESIS AND CONCLUSION")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	if c.Builtin {
		fmt.Fprintln(w, builtinConclusion)
	} else {
		fmt.Fprintln(w, verdicts(c))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
}

// SaveTextReport writes the report to path.
func SaveTextReport(path string, c Comparison) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	WriteTextReport(f, c)
	return f.Close()
}

// WriteTableCSV exports Metrics as Metric,<A>,<B>.
func WriteTableCSV(path string, c Comparison) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"Metric", c.AName, c.BName}); err != nil {
		return err
	}
	cell := func(v float64, decimals int) string {
		switch {
		case math.IsNaN(v):
			return ""
		case decimals == 0:
			return fmt.Sprintf("%.0f", v)
		}
		return quast_report.FormatFloat(v)
	}
	for _, m := range c.Metrics {
		if err := writer.Write([]string{m.Name, cell(m.A, m.Decimals), cell(m.B, m.Decimals)}); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return f.Close()
}
