package quast_report

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minia51Report = "Assembly\tcontigs\n" +
	"# contigs (>= 0 bp)\t1\n" +
	"# contigs\t1\n" +
	"Largest contig\t9936\n" +
	"Total length\t9936\n" +
	"Reference length\t10624\n" +
	"GC (%)\t44.05\n" +
	"Reference GC (%)\t44.14\n" +
	"N50\t9936\n" +
	"NGA50\t9936\n" +
	"# misassemblies\t0\n" +
	"Genome fraction (%)\t93.524\n" +
	"Duplication ratio\t1.000\n" +
	"# N's per 100 kbp\t0.00\n" +
	"# mismatches per 100 kbp\t0.00\n" +
	"NG75\t-\n"

func TestParseValueCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want Value
	}{
		{"42", IntValue(42)},
		{"-7", IntValue(-7)},
		{"3.14", FloatValue(3.14)},
		{"1.000", FloatValue(1)},
		{"1.5e3", FloatValue(1500)},
		{"-", Value{}},
		{"NA", TextValue("NA")},
		{"3.x", TextValue("3.x")},
		{"1e5", TextValue("1e5")},
		{"1_000", TextValue("1_000")},
		{"", TextValue("")},
		{"contigs", TextValue("contigs")},
	}
	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			assert.Equal(t, c.want, ParseValue(c.raw))
		})
	}
}

func TestValueNumberAndString(t *testing.T) {
	x, ok := IntValue(9936).Number()
	assert.True(t, ok)
	assert.Equal(t, 9936.0, x)

	_, ok = TextValue("NA").Number()
	assert.False(t, ok)
	_, ok = Value{}.Number()
	assert.False(t, ok)

	assert.Equal(t, "-", Value{}.String())
	assert.Equal(t, "1.0", FloatValue(1).String())
	assert.Equal(t, "88.413", FloatValue(88.413).String())
	assert.Equal(t, "16159", IntValue(16159).String())
	assert.Equal(t, "float", Float.String())
}

func TestParseReport(t *testing.T) {
	rec, err := ParseReport(strings.NewReader(minia51Report))
	require.NoError(t, err)

	assert.Equal(t, 16, rec.Len())
	assert.Equal(t, "Assembly", rec.Keys()[0])

	v, ok := rec.Get("Genome fraction (%)")
	require.True(t, ok)
	assert.Equal(t, FloatValue(93.524), v)

	v, _ = rec.Get("# contigs")
	assert.Equal(t, IntValue(1), v)

	v, ok = rec.Get("NG75")
	assert.True(t, ok)
	assert.True(t, v.IsMissing())

	v, _ = rec.Get("Assembly")
	assert.Equal(t, TextValue("contigs"), v)
}

func TestParseReportSkipsNonConformingLines(t *testing.T) {
	in := "  N50 \t 9936 \n" +
		"no tab here\n" +
		"a\tb\tc\n" +
		"trailing\t\n" +
		"\n" +
		"NA50\tNA\n"
	rec, err := ParseReport(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"N50", "NA50"}, rec.Keys())
	v, _ := rec.Get("N50")
	assert.Equal(t, IntValue(9936), v)
}

func TestParseReportLongLine(t *testing.T) {
	in := "Assembly\tk51\n" +
		strings.Repeat("x", 200*1024) + "\n" +
		"N50\t9936"
	rec, err := ParseReport(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Assembly", "N50"}, rec.Keys())
	v, _ := rec.Get("N50")
	assert.Equal(t, IntValue(9936), v, "last line without newline is kept")
}

func TestParseReportRepeatedKeyKeepsPosition(t *testing.T) {
	rec, err := ParseReport(strings.NewReader("N50\t1\nL50\t2\nN50\t3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"N50", "L50"}, rec.Keys())
	v, _ := rec.Get("N50")
	assert.Equal(t, IntValue(3), v)
}

func TestParseReportFileMissing(t *testing.T) {
	_, err := ParseReportFile(filepath.Join(t.TempDir(), "31mers", "report.tsv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReportNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestParseReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.tsv")
	require.NoError(t, os.WriteFile(path, []byte(minia51Report), 0o644))

	rec, err := ParseReportFile(path)
	require.NoError(t, err)
	v, _ := rec.Get("N50")
	assert.Equal(t, IntValue(9936), v)
}
