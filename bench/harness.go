package bench

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/cwbudde/algo-e1/demux"
)

// Result is the outcome of one verified benchmark run.
type Result struct {
	Strategy    string
	Geometry    demux.Geometry
	Iterations  int
	Repetitions int
	Samples     []time.Duration
	Summary     Summary
}

// Harness drives strategies and records round durations. It is not safe
// for concurrent use.
type Harness struct {
	cfg    Config
	inputs map[demux.Geometry][]byte // read once per geometry
}

// New returns a Harness configured by opts.
func New(opts ...Option) *Harness {
	return &Harness{cfg: ApplyOptions(opts...)}
}

// Config returns the effective configuration.
func (h *Harness) Config() Config {
	return h.cfg
}

// Input returns the input buffer for g, read from the configured source or
// generated from the seed. The first call for a geometry consumes
// g.InputLen() bytes from the source; later calls return a copy of the same
// bytes, so every strategy of that geometry sees identical input.
func (h *Harness) Input(g demux.Geometry) ([]byte, error) {
	if src, ok := h.inputs[g]; ok {
		return bytes.Clone(src), nil
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	r := h.cfg.Source
	if r == nil {
		r = rand.New(rand.NewSource(h.cfg.Seed))
	}
	src := g.NewInput()
	if _, err := io.ReadFull(r, src); err != nil {
		return nil, fmt.Errorf("bench: read input: %w", err)
	}
	if h.inputs == nil {
		h.inputs = make(map[demux.Geometry][]byte)
	}
	h.inputs[g] = src
	return bytes.Clone(src), nil
}

// Benchmark times s on the harness input for its geometry. It returns
// exactly repetitions samples.
func (h *Harness) Benchmark(s demux.Demuxer, iterations, repetitions int) ([]time.Duration, error) {
	if s == nil {
		return nil, ErrNilStrategy
	}
	if err := checkCounts(iterations, repetitions); err != nil {
		return nil, err
	}
	src, err := h.Input(s.Geometry())
	if err != nil {
		return nil, err
	}
	return h.Measure(s, src, iterations, repetitions)
}

// Measure times s on src. Every round calls s iterations times against the
// same input and the same output buffers, which each call overwrites
// completely.
func (h *Harness) Measure(s demux.Demuxer, src []byte, iterations, repetitions int) ([]time.Duration, error) {
	if s == nil {
		return nil, ErrNilStrategy
	}
	if err := checkCounts(iterations, repetitions); err != nil {
		return nil, err
	}
	g := s.Geometry()
	dst := g.NewOutputs()
	if err := g.Check(src, dst); err != nil {
		return nil, err
	}

	clock := h.cfg.Clock
	samples := make([]time.Duration, repetitions)
	for r := range samples {
		start := clock.Now()
		for range iterations {
			if err := s.Demux(src, dst); err != nil {
				return nil, fmt.Errorf("bench: %s round %d: %w", s.Name(), r, err)
			}
		}
		elapsed := max(clock.Now()-start, 0)
		samples[r] = elapsed

		h.cfg.Logger.Debug("round complete",
			"strategy", s.Name(),
			"round", r,
			"iterations", iterations,
			"elapsed", elapsed,
		)
	}
	return samples, nil
}

// Run verifies s against the reference strategy on the benchmark input,
// then times it with the configured counts and summarises the samples.
func (h *Harness) Run(s demux.Demuxer) (Result, error) {
	if s == nil {
		return Result{}, ErrNilStrategy
	}
	g := s.Geometry()
	src, err := h.Input(g)
	if err != nil {
		return Result{}, err
	}
	if err := demux.Verify(s, demux.WithSource(bytes.NewReader(src))); err != nil {
		return Result{}, err
	}

	samples, err := h.Measure(s, src, h.cfg.Iterations, h.cfg.Repetitions)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Strategy:    s.Name(),
		Geometry:    g,
		Iterations:  h.cfg.Iterations,
		Repetitions: h.cfg.Repetitions,
		Samples:     samples,
		Summary:     Summarize(samples, h.cfg.Iterations, g.InputLen()),
	}
	h.cfg.Logger.Info("benchmark complete",
		"strategy", res.Strategy,
		"median", res.Summary.Median,
		"ns_per_op", res.Summary.NsPerOp,
	)
	return res, nil
}

// Compare runs every strategy in turn and returns the results ordered by
// SortResults. Strategies that fail are left out and their errors joined
// into the returned error. Once ctx is done no further strategy is started;
// the results gathered so far are returned together with ctx.Err().
func (h *Harness) Compare(ctx context.Context, strategies []demux.Demuxer) ([]Result, error) {
	results := make([]Result, 0, len(strategies))
	var errs []error
	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			h.cfg.Logger.Warn("compare interrupted", "completed", len(results))
			errs = append(errs, err)
			break
		}
		res, err := h.Run(s)
		if err != nil {
			name := "<nil>"
			if s != nil {
				name = s.Name()
			}
			h.cfg.Logger.Warn("strategy skipped", "strategy", name, "error", err)
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}

	SortResults(results)
	return results, errors.Join(errs...)
}

// SortResults orders results by median round duration, fastest first, and
// by strategy name among equal medians.
func SortResults(results []Result) {
	slices.SortStableFunc(results, func(a, b Result) int {
		if c := cmp.Compare(a.Summary.Median, b.Summary.Median); c != 0 {
			return c
		}
		return cmp.Compare(a.Strategy, b.Strategy)
	})
}

func checkCounts(iterations, repetitions int) error {
	if iterations < 1 || repetitions < 1 {
		return fmt.Errorf("%w: iterations=%d repetitions=%d", ErrInvalidCount, iterations, repetitions)
	}
	return nil
}
