package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-e1/internal/machine"
)

// WriteTable prints the machine description followed by one row per
// result. Results are printed in the given order; the relative column
// compares each median against the smallest one.
func WriteTable(w io.Writer, info machine.Info, results []Result) error {
	if _, err := fmt.Fprintf(w, "machine: %s\n", info); err != nil {
		return err
	}
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "no results")
		return err
	}
	if _, err := fmt.Fprintf(w, "geometry: %s, %d iterations x %d rounds\n\n",
		results[0].Geometry, results[0].Iterations, results[0].Repetitions); err != nil {
		return err
	}

	fastest := results[0].Summary.Median
	for _, r := range results[1:] {
		fastest = min(fastest, r.Summary.Median)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprint(tw, "Strategy\tMedian\tMin\tMax\tStdDev\tns/op\tMB/s\tRelative\t\n"); err != nil {
		return err
	}
	for _, r := range results {
		s := r.Summary
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.1f\t%s\t%s\t\n",
			r.Strategy,
			round(s.Median),
			round(s.Min),
			round(s.Max),
			round(s.StdDev),
			s.NsPerOp,
			throughput(s.MBPerSec),
			relative(s.Median, fastest),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func round(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(time.Microsecond)
	default:
		return d
	}
}

func throughput(mbps float64) string {
	if mbps <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f", mbps)
}

func relative(d, fastest time.Duration) string {
	if fastest <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(d)/float64(fastest))
}
