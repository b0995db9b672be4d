package quast_report

import (
	"strconv"
	"strings"
)

// MissingMarker is what QUAST writes for a metric it could not compute.
const MissingMarker = "-"

type Kind int

const (
	Missing Kind = iota
	Integer
	Float
	Text
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Text:
		return "text"
	default:
		return "missing"
	}
}

// Value is a single metric cell. The zero Value is Missing.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Text  string
}

func IntValue(i int64) Value     { return Value{Kind: Integer, Int: i} }
func FloatValue(f float64) Value { return Value{Kind: Float, Float: f} }
func TextValue(s string) Value   { return Value{Kind: Text, Text: s} }

// ParseValue coerces a raw report cell. A '.' selects float parsing,
// otherwise integer parsing is tried; unparsable cells become Missing when
// they hold the QUAST marker and Text otherwise.
func ParseValue(raw string) Value {
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return FloatValue(f)
		}
	} else if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return IntValue(i)
	}
	if raw == MissingMarker {
		return Value{}
	}
	return TextValue(raw)
}

func (v Value) IsMissing() bool { return v.Kind == Missing }

// Number returns the numeric content of Integer and Float values.
func (v Value) Number() (float64, bool) {
	switch v.Kind {
	case Integer:
		return float64(v.Int), true
	case Float:
		return v.Float, true
	}
	return 0, false
}

// String renders the value the way it would be written back to a report.
func (v Value) String() string {
	switch v.Kind {
	case Integer:
		return strconv.FormatInt(v.Int, 10)
	case Float:
		return FormatFloat(v.Float)
	case Text:
		return v.Text
	}
	return MissingMarker
}

// FormatFloat prints the shortest representation that round-trips,
// always keeping a decimal point (1 -> "1.0").
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
