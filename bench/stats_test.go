package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeOdd(t *testing.T) {
	samples := []time.Duration{5 * time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond, 4 * time.Millisecond, 5 * time.Millisecond}
	s := Summarize(samples, 1000, 2048)

	assert.Equal(t, 5, s.Rounds)
	assert.Equal(t, 2*time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 4*time.Millisecond, s.Median)
	assert.Equal(t, 4*time.Millisecond, s.Mean)
	// Deviations -2, 0, 0, 1, 1 ms: variance 6/5 ms^2.
	assert.InDelta(t, float64(1095445), float64(s.StdDev), 1)
	assert.InDelta(t, 2000.0, s.NsPerOp, 1e-9)
	// 2048 * 1000 bytes in 2ms.
	assert.InDelta(t, 1024.0, s.MBPerSec, 1e-9)

	// Input order is preserved.
	assert.Equal(t, 5*time.Millisecond, samples[0])
}

func TestSummarizeEven(t *testing.T) {
	s := Summarize([]time.Duration{10, 40, 20, 30}, 1, 1)
	assert.Equal(t, time.Duration(25), s.Median)
	assert.Equal(t, time.Duration(25), s.Mean)
}

func TestSummarizeConstant(t *testing.T) {
	s := Summarize([]time.Duration{time.Second, time.Second, time.Second}, 10, 100)
	assert.Equal(t, time.Duration(0), s.StdDev)
	assert.Equal(t, time.Second, s.Median)
}

func TestSummarizeEdgeCases(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil, 10, 10))

	s := Summarize([]time.Duration{0, 0}, 10, 10)
	assert.Equal(t, 0.0, s.MBPerSec, "zero duration must not yield +Inf")
	assert.Equal(t, 0.0, s.NsPerOp)

	s = Summarize([]time.Duration{time.Millisecond}, 0, 10)
	assert.Equal(t, 0.0, s.NsPerOp)
}
