package sanity_check

import (
	"fmt"
	"io"
	"os"

	"quast_buddy_go/config" // Version control file
)

// Run performs a simple sanity check to ensure QUAST Buddy is
// running properly, printing a helpful message and the version number.
func Run(args []string) {
	if err := Check(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Sanity check failed:", err)
		os.Exit(1)
	}
}

// Check validates the built-in run configuration and reports success to w.
func Check(w io.Writer) error {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("built-in configuration: %w", err)
	}
	fmt.Fprintf(w, "Successfully running QUAST Buddy! (%s)\n", config.Main_version)
	fmt.Fprintf(w, "Default comparison: %d assemblies under %s\n", len(cfg.Assemblies), cfg.BasePath)
	return nil
}
