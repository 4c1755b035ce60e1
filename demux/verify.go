package demux

import (
	"fmt"
	"io"
	"math/rand"
)

// DefaultSeed seeds the input generator used by Verify.
const DefaultSeed int64 = 0xE1

type verifyConfig struct {
	source io.Reader
	oracle Demuxer
}

// VerifyOption configures Verify.
type VerifyOption func(*verifyConfig)

// WithSeed generates the verification input from a PRNG seeded with seed.
func WithSeed(seed int64) VerifyOption {
	return func(cfg *verifyConfig) {
		cfg.source = rand.New(rand.NewSource(seed))
	}
}

// WithSource reads the verification input from r. The reader must supply
// at least Geometry().InputLen() bytes.
func WithSource(r io.Reader) VerifyOption {
	return func(cfg *verifyConfig) {
		if r != nil {
			cfg.source = r
		}
	}
}

// WithOracle replaces the reference strategy. The oracle must share the
// candidate's geometry.
func WithOracle(oracle Demuxer) VerifyOption {
	return func(cfg *verifyConfig) {
		if oracle != nil {
			cfg.oracle = oracle
		}
	}
}

// Verify runs candidate and the reference strategy on one deterministic
// input and compares every output byte.
//
// It returns a *MismatchError wrapping ErrResultMismatch for the first
// differing byte, the candidate's error if it rejects a valid input, or nil.
func Verify(candidate Demuxer, opts ...VerifyOption) error {
	g := candidate.Geometry()
	if err := g.Validate(); err != nil {
		return err
	}

	cfg := verifyConfig{}
	WithSeed(DefaultSeed)(&cfg)
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.oracle == nil {
		ref, err := Reference(g)
		if err != nil {
			return err
		}
		cfg.oracle = ref
	}
	if og := cfg.oracle.Geometry(); og != g {
		return fmt.Errorf("%w: oracle geometry %s, candidate %s", ErrPreconditionViolation, og, g)
	}

	src := g.NewInput()
	if _, err := io.ReadFull(cfg.source, src); err != nil {
		return fmt.Errorf("demux: read verification input: %w", err)
	}

	want := g.NewOutputs()
	if err := cfg.oracle.Demux(src, want); err != nil {
		return fmt.Errorf("demux: oracle %s: %w", cfg.oracle.Name(), err)
	}

	got := g.NewOutputs()
	if err := candidate.Demux(src, got); err != nil {
		return fmt.Errorf("demux: %s: %w", candidate.Name(), err)
	}

	if c, p, ok := Compare(want, got); !ok {
		e := &MismatchError{Strategy: candidate.Name(), Channel: c, Offset: p}
		if c < len(got) && p < len(got[c]) {
			e.Got = got[c][p]
		}
		if c < len(want) && p < len(want[c]) {
			e.Want = want[c][p]
		}
		return e
	}
	return nil
}

// Compare reports whether want and got hold the same bytes. When they do
// not, it returns the first differing channel and offset. A length
// difference is reported at the first offset past the shorter buffer.
func Compare(want, got [][]byte) (channel, offset int, ok bool) {
	n := min(len(want), len(got))
	for c := range n {
		w, g := want[c], got[c]
		m := min(len(w), len(g))
		for p := range m {
			if w[p] != g[p] {
				return c, p, false
			}
		}
		if len(w) != len(g) {
			return c, m, false
		}
	}
	if len(want) != len(got) {
		return n, 0, false
	}
	return 0, 0, true
}
