package bench

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-e1/demux"
	"github.com/cwbudde/algo-e1/internal/machine"
)

func TestWriteTable(t *testing.T) {
	info := machine.Info{GOOS: "linux", GOARCH: "amd64", NumCPU: 8, CacheLine: 64, Features: []string{"sse2", "avx2"}}
	results := []Result{
		{
			Strategy: "unrolled-full", Geometry: demux.E1, Iterations: 1000, Repetitions: 5,
			Summary: Summarize([]time.Duration{time.Millisecond}, 1000, demux.FrameSize),
		},
		{
			Strategy: "source-major-divmod", Geometry: demux.E1, Iterations: 1000, Repetitions: 5,
			Summary: Summarize([]time.Duration{4 * time.Millisecond}, 1000, demux.FrameSize),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, info, results))
	out := buf.String()

	assert.Contains(t, out, "machine: linux/amd64 cpus=8 cacheline=64 simd=sse2,avx2")
	assert.Contains(t, out, "geometry: 32x64, 1000 iterations x 5 rounds")
	assert.Contains(t, out, "Strategy")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := lines[len(lines)-1]
	assert.Contains(t, last, "source-major-divmod")
	assert.Contains(t, last, "4.00x")
	assert.Contains(t, lines[len(lines)-2], "1.00x")
	assert.Contains(t, lines[len(lines)-2], "2048")
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, machine.Info{GOOS: "linux", GOARCH: "arm64"}, nil))
	assert.Contains(t, buf.String(), "no results")
}

func TestRelativeAndThroughput(t *testing.T) {
	assert.Equal(t, "-", relative(time.Second, 0))
	assert.Equal(t, "1.50x", relative(3*time.Second, 2*time.Second))
	assert.Equal(t, "-", throughput(0))
	assert.Equal(t, "12", throughput(12.4))
	assert.Equal(t, 1500*time.Millisecond, round(1500*time.Millisecond+400*time.Microsecond))
}
