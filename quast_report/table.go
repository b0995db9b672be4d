package quast_report

// LabelColumn is the header used for the assembly label in tabular output.
const LabelColumn = "Assembly_Name"

// Record maps metric names to values and remembers the order in which the
// metrics first appeared in the report.
type Record struct {
	keys   []string
	values map[string]Value
}

func NewRecord() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set stores v under key. Re-setting a key keeps its original position.
func (r *Record) Set(key string, v Value) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

func (r *Record) Len() int { return len(r.keys) }

type Row struct {
	Label   string
	Metrics *Record
}

// Table is the comparison table: one labelled row per assembly, columns are
// the union of every row's metrics.
type Table struct {
	Rows    []Row
	columns []string
	known   map[string]bool
}

func NewTable() *Table {
	return &Table{known: make(map[string]bool)}
}

func (t *Table) Append(label string, rec *Record) {
	if t.known == nil {
		t.known = make(map[string]bool)
	}
	for _, k := range rec.keys {
		if !t.known[k] {
			t.known[k] = true
			t.columns = append(t.columns, k)
		}
	}
	t.Rows = append(t.Rows, Row{Label: label, Metrics: rec})
}

func (t *Table) Len() int { return len(t.Rows) }

// Columns lists metric names in first-seen order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

func (t *Table) HasColumn(metric string) bool { return t.known[metric] }

func (t *Table) Labels() []string {
	labels := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		labels[i] = r.Label
	}
	return labels
}

// Value returns the cell at row i, Missing when the row lacks the metric.
func (t *Table) Value(i int, metric string) Value {
	v, _ := t.Rows[i].Metrics.Get(metric)
	return v
}

// Numbers returns a numeric column, substituting fill for missing or
// non-numeric cells.
func (t *Table) Numbers(metric string, fill float64) []float64 {
	out := make([]float64, len(t.Rows))
	for i := range t.Rows {
		if x, ok := t.Value(i, metric).Number(); ok {
			out[i] = x
		} else {
			out[i] = fill
		}
	}
	return out
}
