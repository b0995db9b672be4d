package assembly_compare

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"quast_buddy_go/config"
	"quast_buddy_go/quast_report"
)

// ErrMissingMetric means a configured metric is absent from every report.
var ErrMissingMetric = errors.New("metric missing from all reports")

// MetricSet partitions the scored metrics by what counts as better.
type MetricSet struct {
	Maximize    []string
	Minimize    []string
	Target      string  // scored by closeness to TargetValue, may be empty
	TargetValue float64
}

func MetricSetFromConfig(c config.MetricConfig) MetricSet {
	return MetricSet{
		Maximize:    c.Maximize,
		Minimize:    c.Minimize,
		Target:      c.Target.Metric,
		TargetValue: c.Target.Value,
	}
}

// Metrics lists every scored metric: maximized, minimized, then the target.
func (m MetricSet) Metrics() []string {
	out := make([]string, 0, len(m.Maximize)+len(m.Minimize)+1)
	out = append(out, m.Maximize...)
	out = append(out, m.Minimize...)
	if m.Target != "" {
		out = append(out, m.Target)
	}
	return out
}

// IsMinimized reports whether a lower value of metric is better.
func (m MetricSet) IsMinimized(metric string) bool {
	for _, name := range m.Minimize {
		if name == metric {
			return true
		}
	}
	return false
}

// NormalizedTable holds per-assembly scores in [0,1] (the target metric may
// go below 0). Scores[i][j] belongs to Labels[i] and Metrics[j].
type NormalizedTable struct {
	Labels  []string
	Metrics []string
	Scores  [][]float64
}

// Column returns the scores of one metric across assemblies.
func (n *NormalizedTable) Column(metric string) []float64 {
	for j, name := range n.Metrics {
		if name == metric {
			col := make([]float64, len(n.Scores))
			for i := range n.Scores {
				col[i] = n.Scores[i][j]
			}
			return col
		}
	}
	return nil
}

// Normalize rescales each metric of m independently. Cells with no numeric
// value score 0.
func Normalize(t *quast_report.Table, m MetricSet) (*NormalizedTable, error) {
	metrics := m.Metrics()
	n := &NormalizedTable{
		Labels:  t.Labels(),
		Metrics: metrics,
		Scores:  make([][]float64, t.Len()),
	}
	for i := range n.Scores {
		n.Scores[i] = make([]float64, len(metrics))
	}

	for j, metric := range metrics {
		if !t.HasColumn(metric) {
			return nil, fmt.Errorf("%w: %q", ErrMissingMetric, metric)
		}

		col := t.Numbers(metric, math.NaN())
		var scores []float64
		switch {
		case metric == m.Target:
			scores = targetScores(col, m.TargetValue)
		case m.IsMinimized(metric):
			scores = minMaxScores(col, true)
		default:
			scores = minMaxScores(col, false)
		}

		for i, s := range scores {
			if math.IsNaN(s) {
				s = 0
			}
			n.Scores[i][j] = s
		}
	}
	return n, nil
}

// minMaxScores maps col linearly onto [0,1], inverted when lower is better.
// A column without spread scores 1 everywhere. NaN marks a missing cell.
func minMaxScores(col []float64, invert bool) []float64 {
	present := make([]float64, 0, len(col))
	for _, x := range col {
		if !math.IsNaN(x) {
			present = append(present, x)
		}
	}

	out := make([]float64, len(col))
	if len(present) == 0 {
		for i := range out {
			out[i] = 1
		}
		return out
	}

	lo, hi := floats.Min(present), floats.Max(present)
	if !(hi > lo) {
		for i := range out {
			out[i] = 1
		}
		return out
	}

	for i, x := range col {
		s := (x - lo) / (hi - lo)
		if invert {
			s = 1 - s
		}
		out[i] = s
	}
	return out
}

// targetScores is 1 - |x - target|, unclamped.
func targetScores(col []float64, target float64) []float64 {
	out := make([]float64, len(col))
	for i, x := range col {
		out[i] = 1 - math.Abs(x-target)
	}
	return out
}
