package bench

import (
	"math"
	"slices"
	"time"

	"github.com/cwbudde/algo-vecmath"
)

// Summary holds statistics over round durations.
type Summary struct {
	Rounds int
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	Median time.Duration
	StdDev time.Duration // population standard deviation

	// NsPerOp is the best round divided by the iterations per round.
	NsPerOp float64

	// MBPerSec is the input throughput of the best round, in 10^6 bytes
	// per second. Zero when the best round took no measurable time.
	MBPerSec float64
}

// Summarize computes statistics over samples. iterations and bytesPerOp
// describe one round and feed the per-operation figures.
func Summarize(samples []time.Duration, iterations, bytesPerOp int) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}

	ns := make([]float64, n)
	var sum float64
	for i, d := range samples {
		ns[i] = float64(d)
		sum += ns[i]
	}
	mean := sum / float64(n)

	dev := make([]float64, n)
	for i, x := range ns {
		dev[i] = x - mean
	}
	sq := make([]float64, n)
	vecmath.MulBlock(sq, dev, dev)
	var sumSq float64
	for _, v := range sq {
		sumSq += v
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var median time.Duration
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	s := Summary{
		Rounds: n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   time.Duration(math.Round(mean)),
		Median: median,
		StdDev: time.Duration(math.Round(math.Sqrt(sumSq / float64(n)))),
	}

	if iterations > 0 {
		s.NsPerOp = float64(s.Min) / float64(iterations)
		if s.Min > 0 {
			total := float64(bytesPerOp) * float64(iterations)
			s.MBPerSec = total / s.Min.Seconds() / 1e6
		}
	}
	return s
}
