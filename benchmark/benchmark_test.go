package benchmark

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunToReportsAndCallsFunc(t *testing.T) {
	var buf bytes.Buffer
	called := false

	u := RunTo(&buf, "quast_buddy compare", func() {
		called = true
		_ = make([]byte, 1<<20)
	})

	assert.True(t, called)
	assert.GreaterOrEqual(t, int64(u.Elapsed), int64(0))
	out := buf.String()
	assert.Contains(t, out, "[Benchmark] Running: quast_buddy compare")
	assert.Contains(t, out, "[Benchmark] Total Allocated:")
	assert.Contains(t, out, "[Benchmark] Goroutines:")
}
