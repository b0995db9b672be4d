// benchmark.go
// Reusable benchmarking wrapper for QUAST Buddy tools
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

// Usage is the resource summary of one wrapped run.
type Usage struct {
	Elapsed        time.Duration
	Allocated      uint64 // bytes allocated over the run
	HeapAlloc      uint64 // live heap at the end of the run
	GCCycles       uint32
	GoroutineStart int
	GoroutineEnd   int
}

// Run wraps f, measures its runtime and memory use, and prints the report to stdout.
func Run(label string, f func()) Usage {
	return RunTo(os.Stdout, label, f)
}

// RunTo is Run with an explicit destination for the report.
func RunTo(w io.Writer, label string, f func()) Usage {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()
	u := Usage{GoroutineStart: runtime.NumGoroutine()}

	f()

	u.Elapsed = time.Since(start)
	runtime.ReadMemStats(&memEnd)
	u.GoroutineEnd = runtime.NumGoroutine()
	u.Allocated = memEnd.TotalAlloc - memStart.TotalAlloc
	u.HeapAlloc = memEnd.HeapAlloc
	u.GCCycles = memEnd.NumGC - memStart.NumGC

	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", u.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %s\n", humanize.IBytes(u.Allocated))
	fmt.Fprintf(w, "[Benchmark] Heap In Use: %s\n", humanize.IBytes(u.HeapAlloc))
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", u.GCCycles)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "[Benchmark] Goroutines: %d → %d\n", u.GoroutineStart, u.GoroutineEnd)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
	return u
}
