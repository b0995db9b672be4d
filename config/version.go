package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.1.0"

	// Modular tools
	Benchmark        = "v1.0.1"
	Assembly_Compare = "v1.2.0"
	Pairwise_Report  = "v1.0.2"
	Contig_Stats     = "v0.3.0"
	QUAST_Report     = "v1.1.0" // Shared report.tsv parser
	Sanity_check     = "v1.0.0"
)
