package contig_stats

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultName derives an assembly label from the FASTA file name.
func defaultName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func Run(args []string) {
	fs := flag.NewFlagSet("contig_stats", flag.ExitOnError)
	inFile := fs.String("in_file", "", "Contig FASTA file (plain or gzipped)")
	name := fs.String("name", "", "Assembly label (defaults to the file name)")
	minContig := fs.Int("min_contig", 500, "Ignore contigs shorter than this (bp)")
	refLength := fs.Int("ref_length", 0, "Reference genome length, enables NG50/LG50")
	outFile := fs.String("out_file", "report.tsv", "Output report path")

	err := fs.Parse(args)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}
	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}
	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -in_file is required")
		fs.Usage()
		os.Exit(1)
	}
	if *minContig < 0 || *refLength < 0 {
		fmt.Fprintln(os.Stderr, "Error: -min_contig and -ref_length cannot be negative")
		os.Exit(1)
	}
	if *name == "" {
		*name = defaultName(*inFile)
	}

	stats, err := ComputeFile(*inFile, *name, *minContig, *refLength)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to read contigs:", err)
		os.Exit(1)
	}
	if dir := filepath.Dir(*outFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to create output folder:", err)
			os.Exit(1)
		}
	}
	if err := stats.SaveReport(*outFile); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to write report:", err)
		os.Exit(1)
	}

	stats.PrintSummary(os.Stdout)
	fmt.Printf("✓ Report saved: %s\n", *outFile)
}
