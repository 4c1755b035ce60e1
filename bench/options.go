package bench

import (
	"io"
	"log/slog"

	"github.com/cwbudde/algo-e1/demux"
)

// Config holds harness settings.
type Config struct {
	// Iterations is the number of strategy calls per round.
	Iterations int

	// Repetitions is the number of timed rounds.
	Repetitions int

	// Seed seeds the input generator when Source is nil.
	Seed int64

	// Source, if set, supplies the input bytes instead of the seeded PRNG.
	Source io.Reader

	// Clock measures round durations.
	Clock Clock

	// Logger receives per-round debug records.
	Logger *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns settings suitable for a quick comparison run.
func DefaultConfig() Config {
	return Config{
		Iterations:  100_000,
		Repetitions: 5,
		Seed:        demux.DefaultSeed,
		Clock:       SystemClock(),
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// WithIterations sets the number of calls per round.
func WithIterations(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Iterations = n
		}
	}
}

// WithRepetitions sets the number of timed rounds.
func WithRepetitions(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Repetitions = n
		}
	}
}

// WithSeed sets the PRNG seed of the generated input.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// WithSource reads inputs from r instead of the seeded PRNG.
func WithSource(r io.Reader) Option {
	return func(cfg *Config) {
		if r != nil {
			cfg.Source = r
		}
	}
}

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(cfg *Config) {
		if c != nil {
			cfg.Clock = c
		}
	}
}

// WithLogger sets the logger for per-round records.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
