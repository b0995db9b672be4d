package pairwise_report

import (
	"fmt"
	"math"

	"quast_buddy_go/quast_report"
)

type Direction int

const (
	HigherIsBetter Direction = iota
	LowerIsBetter
	CloserIsBetter // closest to Metric.Target
)

// Metric holds one QUAST metric for both assemblies. NaN marks a value the
// report did not provide.
type Metric struct {
	Name      string
	A, B      float64
	Direction Direction
	Target    float64
	Decimals  int
}

// Tie is reported when neither assembly is better.
const Tie = "Tie"

const tieTolerance = 1e-9

// Winner names the better assembly for this metric, Tie when equal, and
// "n/a" when a value is missing.
func (m Metric) Winner(aName, bName string) string {
	if math.IsNaN(m.A) || math.IsNaN(m.B) || (m.Direction == CloserIsBetter && math.IsNaN(m.Target)) {
		return "n/a"
	}
	a, b := m.A, m.B
	switch m.Direction {
	case LowerIsBetter:
		a, b = -a, -b
	case CloserIsBetter:
		a, b = -math.Abs(a-m.Target), -math.Abs(b-m.Target)
	}
	// distances to a target carry float noise; equal within tolerance is a tie
	if math.Abs(a-b) <= tieTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b))) {
		return Tie
	}
	if a > b {
		return aName
	}
	return bName
}

// Comparison is a two-way table of QUAST metrics. Metrics are drawn and
// exported; Extra metrics only appear in the text report.
type Comparison struct {
	AName, BName    string
	Metrics         []Metric
	Extra           []Metric
	ReferenceLength float64
	ReferenceGC     float64
	Builtin         bool // hand-written commentary applies
}

// Get finds a metric by its QUAST name in Metrics or Extra.
func (c Comparison) Get(name string) (Metric, bool) {
	for _, list := range [][]Metric{c.Metrics, c.Extra} {
		for _, m := range list {
			if m.Name == name {
				return m, true
			}
		}
	}
	return Metric{}, false
}

// Pair returns the (A, B) values of a metric, NaN when unknown.
func (c Comparison) Pair(name string) (float64, float64) {
	m, ok := c.Get(name)
	if !ok {
		return math.NaN(), math.NaN()
	}
	return m.A, m.B
}

// Builtin returns the 51-mer assembly vs Minia figures measured by QUAST
// against the 10,624 bp reference.
func Builtin() Comparison {
	const refLen = 10624
	return Comparison{
		AName: "51mers",
		BName: "Minia",
		Metrics: []Metric{
			{Name: "# contigs", A: 1, B: 1, Direction: LowerIsBetter},
			{Name: "Largest contig", A: 16159, B: 9936},
			{Name: "Total length", A: 16159, B: 9936, Direction: CloserIsBetter, Target: refLen},
			{Name: "Genome fraction (%)", A: 88.413, B: 93.524, Decimals: 2},
			{Name: "# misassemblies", A: 0, B: 0, Direction: LowerIsBetter},
			{Name: "# local misassemblies", A: 5, B: 0, Direction: LowerIsBetter},
			{Name: "Unaligned length", A: 6757, B: 0, Direction: LowerIsBetter},
			{Name: "# mismatches per 100 kbp", A: 2329.29, B: 0, Direction: LowerIsBetter, Decimals: 2},
			{Name: "# indels per 100 kbp", A: 521.17, B: 0, Direction: LowerIsBetter, Decimals: 2},
			{Name: "N50", A: 16159, B: 9936},
			{Name: "NA50", A: 9402, B: 9936},
			{Name: "Duplication ratio", A: 1.001, B: 1.000, Direction: CloserIsBetter, Target: 1, Decimals: 3},
		},
		Extra: []Metric{
			{Name: "GC (%)", A: 44.58, B: 44.05, Direction: CloserIsBetter, Target: 44.14, Decimals: 2},
			{Name: "Largest alignment", A: 9402, B: 9936},
			{Name: "Total aligned length", A: 9402, B: 9936},
			{Name: "NG50", A: 16159, B: 9936},
			{Name: "NGA50", A: 9402, B: 9936},
		},
		ReferenceLength: refLen,
		ReferenceGC:     44.14,
		Builtin:         true,
	}
}

// FromReports builds a comparison with the same metrics as Builtin but
// values read from two QUAST reports. Reference length and GC come from
// the first report that carries them.
func FromReports(aName, aPath, bName, bPath string) (Comparison, error) {
	if aName == bName {
		return Comparison{}, fmt.Errorf("assembly names must differ, both are %q", aName)
	}
	a, err := quast_report.ParseReportFile(aPath)
	if err != nil {
		return Comparison{}, err
	}
	b, err := quast_report.ParseReportFile(bPath)
	if err != nil {
		return Comparison{}, err
	}

	number := func(r *quast_report.Record, key string) float64 {
		v, _ := r.Get(key)
		if x, ok := v.Number(); ok {
			return x
		}
		return math.NaN()
	}
	either := func(key string) float64 {
		if x := number(a, key); !math.IsNaN(x) {
			return x
		}
		return number(b, key)
	}

	c := Builtin()
	c.AName, c.BName = aName, bName
	c.Builtin = false
	c.ReferenceLength = either("Reference length")
	c.ReferenceGC = either("Reference GC (%)")

	fill := func(list []Metric) {
		for i := range list {
			list[i].A = number(a, list[i].Name)
			list[i].B = number(b, list[i].Name)
			switch list[i].Name {
			case "Total length":
				list[i].Target = c.ReferenceLength
			case "GC (%)":
				list[i].Target = c.ReferenceGC
			}
		}
	}
	fill(c.Metrics)
	fill(c.Extra)
	return c, nil
}
