package contig_stats

import (
	"io"
	"sort"

	"gonum.org/v1/gonum/floats"

	common "quast_buddy_go/utils"
)

// ContigStats holds the QUAST-style basic statistics of one assembly.
// Lengths, GC and N counts only cover contigs of at least MinContig bp.
type ContigStats struct {
	Name            string
	MinContig       int
	ReferenceLength int // 0 when unknown

	AllContigs int // every record, whatever its length
	AllLength  int
	Lengths    []float64 // kept contigs, longest first

	GC   int
	ACGT int
	Ns   int
}

// Contigs is the number of contigs of at least MinContig bp.
func (s *ContigStats) Contigs() int {
	return len(s.Lengths)
}

func (s *ContigStats) TotalLength() int {
	return int(floats.Sum(s.Lengths))
}

func (s *ContigStats) Largest() int {
	if len(s.Lengths) == 0 {
		return 0
	}
	return int(floats.Max(s.Lengths))
}

// GCPercent is the GC share of A/C/G/T bases; ok is false with no such base.
func (s *ContigStats) GCPercent() (float64, bool) {
	if s.ACGT == 0 {
		return 0, false
	}
	return 100 * float64(s.GC) / float64(s.ACGT), true
}

// NsPer100k is the number of N bases per 100 kbp of kept sequence.
func (s *ContigStats) NsPer100k() float64 {
	total := s.TotalLength()
	if total == 0 {
		return 0
	}
	return 100000 * float64(s.Ns) / float64(total)
}

// Nx returns the length of the contig that brings the cumulative length
// (longest first) to x percent of base, and how many contigs that takes.
// ok is false when base is not positive or the contigs never reach it.
func Nx(lengths []float64, base float64, x float64) (n int, l int, ok bool) {
	if base <= 0 {
		return 0, 0, false
	}
	goal := base * x / 100
	cum := 0.0
	for i, v := range lengths {
		cum += v
		if cum >= goal {
			return int(v), i + 1, true
		}
	}
	return 0, 0, false
}

// N50 and L50 over the assembly's own length.
func (s *ContigStats) N50() (int, int, bool) {
	return Nx(s.Lengths, floats.Sum(s.Lengths), 50)
}

// NG50 and LG50 over the reference length.
func (s *ContigStats) NG50() (int, int, bool) {
	return Nx(s.Lengths, float64(s.ReferenceLength), 50)
}

func (s *ContigStats) add(seq string) {
	s.AllContigs++
	s.AllLength += len(seq)
	if len(seq) < s.MinContig {
		return
	}
	s.Lengths = append(s.Lengths, float64(len(seq)))
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C':
			s.GC++
			s.ACGT++
		case 'A', 'T':
			s.ACGT++
		case 'N':
			s.Ns++
		}
	}
}

func (s *ContigStats) finish() {
	sort.Sort(sort.Reverse(sort.Float64Slice(s.Lengths)))
}

// Compute reads contigs from r.
func Compute(r io.Reader, name string, minContig, referenceLength int) (*ContigStats, error) {
	s := &ContigStats{Name: name, MinContig: minContig, ReferenceLength: referenceLength}
	err := common.StreamFastaReader(r, func(_ string, seq string) error {
		s.add(seq)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.finish()
	return s, nil
}

// ComputeFile reads contigs from a plain or gzipped FASTA file.
func ComputeFile(path, name string, minContig, referenceLength int) (*ContigStats, error) {
	s := &ContigStats{Name: name, MinContig: minContig, ReferenceLength: referenceLength}
	err := common.StreamFasta(path, func(_ string, seq string) error {
		s.add(seq)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.finish()
	return s, nil
}
