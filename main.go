package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"quast_buddy_go/benchmark"
	"quast_buddy_go/config"
	"quast_buddy_go/tools/assembly_compare"
	"quast_buddy_go/tools/contig_stats"
	"quast_buddy_go/tools/pairwise_report"
	"quast_buddy_go/tools/sanity_check"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`QUAST Buddy - Custom Help Menu
Usage:
  quast_buddy <tool> [options]

Tools:
  compare		Compare the QUAST reports of several assemblies
			(charts, heatmap, radar, CSV and HTML summaries)
  pairwise		Two-assembly comparison figure and text report
  contig_stats		QUAST-style report.tsv from a contig FASTA
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information

Environment:
  QUAST_BUDDY_DEBUG	Enable debug logging on stderr
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("QUAST Buddy - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tQUAST Buddy:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tAssembly Compare:\t%s\n", config.Assembly_Compare)
	fmt.Printf("\tPairwise Report:\t%s\n", config.Pairwise_Report)
	fmt.Printf("\tContig Stats:\t\t%s\n", config.Contig_Stats)
	fmt.Printf("\tQUAST Report Parser:\t%s\n", config.QUAST_Report)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// setupLogging sends diagnostics to stderr; stdout is kept for tool output.
func setupLogging() {
	level := slog.LevelInfo
	if os.Getenv("QUAST_BUDDY_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executable-specific help flags
	if len(os.Args) < 3 {
		if arg := os.Args[1]; arg == "-h" || arg == "-help" {
			printCustomHelp()
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	setupLogging()

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "compare":
			assembly_compare.Run(cleanedArgs)
		case "pairwise":
			pairwise_report.Run(cleanedArgs)
		case "contig_stats":
			contig_stats.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("quast_buddy %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
