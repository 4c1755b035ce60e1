package bench

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-e1/demux"
	"github.com/cwbudde/algo-e1/internal/testutil"
)

// stepClock advances by a fixed step on every reading.
type stepClock struct {
	now  time.Duration
	step time.Duration
}

func (c *stepClock) Now() time.Duration {
	c.now += c.step
	return c.now
}

// backwardsClock goes back in time on every reading.
type backwardsClock struct{ now time.Duration }

func (c *backwardsClock) Now() time.Duration {
	c.now -= time.Millisecond
	return c.now
}

// countingDemuxer wraps a strategy and counts calls.
type countingDemuxer struct {
	demux.Demuxer
	calls int
}

func (c *countingDemuxer) Demux(src []byte, dst [][]byte) error {
	c.calls++
	return c.Demuxer.Demux(src, dst)
}

// corruptDemuxer flips one output byte after a correct demux.
type corruptDemuxer struct {
	demux.Demuxer
}

func (c corruptDemuxer) Name() string { return "corrupt" }

func (c corruptDemuxer) Demux(src []byte, dst [][]byte) error {
	if err := c.Demuxer.Demux(src, dst); err != nil {
		return err
	}
	dst[3][7] ^= 0xFF
	return nil
}

// cancellingDemuxer cancels a context once it has been called.
type cancellingDemuxer struct {
	demux.Demuxer
	cancel context.CancelFunc
}

func (c *cancellingDemuxer) Demux(src []byte, dst [][]byte) error {
	c.cancel()
	return c.Demuxer.Demux(src, dst)
}

func lookup(t *testing.T, name string) *demux.Strategy {
	t.Helper()
	s, ok := demux.Default.Lookup(name)
	require.True(t, ok, "strategy %q not registered", name)
	return s
}

func TestBenchmarkReturnsOneSamplePerRound(t *testing.T) {
	h := New()
	samples, err := h.Benchmark(lookup(t, "dest-major-cursor"), 1000, 5)
	require.NoError(t, err)
	require.Len(t, samples, 5)
	for i, d := range samples {
		assert.GreaterOrEqual(t, d, time.Duration(0), "sample %d negative", i)
	}
}

func TestBenchmarkEveryStrategy(t *testing.T) {
	h := New()
	for _, s := range demux.Default.List() {
		t.Run(s.Name(), func(t *testing.T) {
			samples, err := h.Benchmark(s, 10, 2)
			require.NoError(t, err)
			assert.Len(t, samples, 2)
		})
	}
}

func TestMeasureUsesClockDeltas(t *testing.T) {
	clock := &stepClock{step: 3 * time.Millisecond}
	h := New(WithClock(clock))

	c := &countingDemuxer{Demuxer: lookup(t, "source-major")}
	src := testutil.Ramp(demux.FrameSize)
	samples, err := h.Measure(c, src, 7, 4)
	require.NoError(t, err)

	// Start and stop of each round are consecutive readings.
	assert.Equal(t, []time.Duration{
		3 * time.Millisecond, 3 * time.Millisecond, 3 * time.Millisecond, 3 * time.Millisecond,
	}, samples)
	assert.Equal(t, 28, c.calls)
}

func TestMeasureClampsNegativeDurations(t *testing.T) {
	h := New(WithClock(&backwardsClock{}))
	samples, err := h.Benchmark(lookup(t, "dest-major"), 1, 3)
	require.NoError(t, err)
	for _, d := range samples {
		assert.Equal(t, time.Duration(0), d)
	}
}

func TestMeasureRejectsInvalidCounts(t *testing.T) {
	h := New()
	s := lookup(t, "dest-major")
	for _, tc := range []struct{ iterations, repetitions int }{{0, 5}, {5, 0}, {-1, 1}} {
		_, err := h.Benchmark(s, tc.iterations, tc.repetitions)
		assert.ErrorIs(t, err, ErrInvalidCount)
	}
}

func TestMeasureRejectsWrongInput(t *testing.T) {
	h := New()
	_, err := h.Measure(lookup(t, "dest-major"), make([]byte, 100), 1, 1)
	assert.ErrorIs(t, err, demux.ErrPreconditionViolation)
}

func TestInputDeterministic(t *testing.T) {
	h := New(WithSeed(5))
	a, err := h.Input(demux.E1)
	require.NoError(t, err)
	b, err := h.Input(demux.E1)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, testutil.DeterministicBytes(5, demux.FrameSize), a)
}

func TestInputFromSource(t *testing.T) {
	src := testutil.Ramp(demux.FrameSize)
	h := New(WithSource(bytes.NewReader(src)))
	got, err := h.Input(demux.E1)
	require.NoError(t, err)
	assert.Equal(t, src, got)

	// The reader is exhausted; the first read is reused.
	again, err := h.Input(demux.E1)
	require.NoError(t, err)
	assert.Equal(t, src, again)

	// Callers get their own copy.
	again[0] ^= 0xFF
	third, err := h.Input(demux.E1)
	require.NoError(t, err)
	assert.Equal(t, src, third)
}

func TestInputShortSource(t *testing.T) {
	h := New(WithSource(bytes.NewReader(make([]byte, 100))))
	_, err := h.Input(demux.E1)
	assert.ErrorContains(t, err, "read input")
}

func TestRunVerifiesFirst(t *testing.T) {
	h := New(WithIterations(5), WithRepetitions(2))
	_, err := h.Run(corruptDemuxer{lookup(t, "dest-major")})

	var mm *demux.MismatchError
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, "corrupt", mm.Strategy)
	assert.Equal(t, 3, mm.Channel)
	assert.Equal(t, 7, mm.Offset)
}

func TestRunSummarises(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := New(
		WithIterations(10),
		WithRepetitions(3),
		WithClock(&stepClock{step: time.Microsecond}),
		WithLogger(logger),
	)

	res, err := h.Run(lookup(t, "unrolled-full"))
	require.NoError(t, err)
	assert.Equal(t, "unrolled-full", res.Strategy)
	assert.Equal(t, demux.E1, res.Geometry)
	assert.Len(t, res.Samples, 3)
	assert.Equal(t, time.Microsecond, res.Summary.Median)
	assert.InDelta(t, 100.0, res.Summary.NsPerOp, 1e-9)

	assert.Equal(t, 3, strings.Count(logs.String(), "round complete"))
	assert.Contains(t, logs.String(), "benchmark complete")
}

func TestCompareOrdersAndSkipsFailures(t *testing.T) {
	h := New(WithIterations(200), WithRepetitions(3))
	ss := []demux.Demuxer{
		lookup(t, "source-major-divmod"),
		corruptDemuxer{lookup(t, "dest-major")},
		lookup(t, "unrolled-inner"),
	}

	results, err := h.Compare(context.Background(), ss)
	assert.ErrorIs(t, err, demux.ErrResultMismatch)
	require.Len(t, results, 2)
	assert.LessOrEqual(t, results[0].Summary.Median, results[1].Summary.Median)
	for _, r := range results {
		assert.NotEqual(t, "corrupt", r.Strategy)
	}
}

func TestCompareWithSourceTimesEveryStrategy(t *testing.T) {
	src := testutil.Ramp(demux.FrameSize)
	h := New(WithSource(bytes.NewReader(src)), WithIterations(10), WithRepetitions(2))

	results, err := h.Compare(context.Background(), []demux.Demuxer{
		lookup(t, "dest-major"),
		lookup(t, "unrolled-full"),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	in, err := h.Input(demux.E1)
	require.NoError(t, err)
	assert.Equal(t, src, in)
}

func TestCompareUsesOneInputPerGeometry(t *testing.T) {
	// A source that fails after one frame: a second read would surface
	// as a skipped strategy.
	src := testutil.DeterministicBytes(3, demux.FrameSize)
	h := New(WithSource(bytes.NewReader(src)), WithIterations(2), WithRepetitions(1))

	var ss []demux.Demuxer
	for _, s := range demux.Default.List() {
		ss = append(ss, s)
	}
	results, err := h.Compare(context.Background(), ss)
	require.NoError(t, err)
	assert.Len(t, results, len(ss))
}

func TestCompareStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := New(WithIterations(2), WithRepetitions(1))

	first := &cancellingDemuxer{Demuxer: lookup(t, "dest-major"), cancel: cancel}
	second := &countingDemuxer{Demuxer: lookup(t, "unrolled-inner")}
	results, err := h.Compare(ctx, []demux.Demuxer{first, second})

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.Equal(t, "dest-major", results[0].Strategy)
	assert.Zero(t, second.calls, "no strategy may start after cancellation")
}

func TestCompareSkipsNilStrategy(t *testing.T) {
	h := New(WithIterations(2), WithRepetitions(1))
	results, err := h.Compare(context.Background(), []demux.Demuxer{nil, lookup(t, "dest-major")})
	assert.ErrorIs(t, err, ErrNilStrategy)
	require.Len(t, results, 1)
}

func TestNilStrategy(t *testing.T) {
	h := New()
	_, err := h.Run(nil)
	assert.ErrorIs(t, err, ErrNilStrategy)
	_, err = h.Benchmark(nil, 1, 1)
	assert.ErrorIs(t, err, ErrNilStrategy)
	_, err = h.Measure(nil, testutil.Ramp(demux.FrameSize), 1, 1)
	assert.ErrorIs(t, err, ErrNilStrategy)
}

func TestSortResults(t *testing.T) {
	results := []Result{
		{Strategy: "b", Summary: Summary{Median: 2}},
		{Strategy: "c", Summary: Summary{Median: 1}},
		{Strategy: "a", Summary: Summary{Median: 2}},
	}
	SortResults(results)
	var names []string
	for _, r := range results {
		names = append(names, r.Strategy)
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

func TestVerifyAll(t *testing.T) {
	var ss []demux.Demuxer
	for _, s := range demux.Default.List() {
		ss = append(ss, s)
	}
	require.NoError(t, VerifyAll(context.Background(), ss, demux.WithSeed(11)))

	ss = append(ss, corruptDemuxer{lookup(t, "dest-major")}, corruptDemuxer{lookup(t, "source-major-mul")})
	err := VerifyAll(context.Background(), ss)
	require.ErrorIs(t, err, demux.ErrResultMismatch)
	assert.Equal(t, 2, strings.Count(err.Error(), "corrupt disagrees"))
}

func TestVerifyAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ss := []demux.Demuxer{lookup(t, "dest-major")}
	err := VerifyAll(ctx, ss)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := New(WithIterations(-3), WithRepetitions(0), WithClock(nil), WithLogger(nil), WithSource(nil)).Config()
	def := DefaultConfig()
	assert.Equal(t, def.Iterations, cfg.Iterations)
	assert.Equal(t, def.Repetitions, cfg.Repetitions)
	assert.Equal(t, demux.DefaultSeed, cfg.Seed)
	assert.NotNil(t, cfg.Clock)
	assert.NotNil(t, cfg.Logger)
	assert.Nil(t, cfg.Source)
}
