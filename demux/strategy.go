package demux

import "fmt"

// Demuxer is implemented by every demultiplexing strategy.
type Demuxer interface {
	// Name returns the registry name of the strategy.
	Name() string

	// Geometry returns the buffer shape the strategy accepts.
	Geometry() Geometry

	// Demux fills dst[c][p] with src[p*Channels+c] for every channel c and
	// offset p. It fails with ErrPreconditionViolation, leaving dst
	// untouched, when the buffers do not match Geometry.
	Demux(src []byte, dst [][]byte) error
}

// Kind identifies one member of the closed strategy family.
type Kind int

const (
	// KindSourceMajor walks the input once and tracks the destination with
	// two counters that wrap every Channels bytes. It is the reference.
	KindSourceMajor Kind = iota

	// KindSourceMajorMul loops over offsets, then channels, and computes
	// the input index as offset*Channels+channel.
	KindSourceMajorMul

	// KindSourceMajorDivMod derives channel and offset from the input index
	// with modulo and division.
	KindSourceMajorDivMod

	// KindDestMajor loops over channels, then offsets, reading the input at
	// stride Channels.
	KindDestMajor

	// KindDestMajorCursor is KindDestMajor with the output slice bound once
	// per channel and a running input cursor.
	KindDestMajorCursor

	// KindDestMajorFixed is KindDestMajorCursor with the E1 constants as
	// loop bounds. E1 only.
	KindDestMajorFixed

	// KindUnrolledInner expands the offset loop into one assignment per
	// output byte. E1 only.
	KindUnrolledInner

	// KindUnrolledFull spells out every assignment against literal input
	// indices. E1 only.
	KindUnrolledFull

	// KindUnrolledPerChannel splits the fully unrolled body into one
	// procedure per channel. E1 only.
	KindUnrolledPerChannel

	numKinds
)

var kindNames = [numKinds]string{
	KindSourceMajor:        "source-major",
	KindSourceMajorMul:     "source-major-mul",
	KindSourceMajorDivMod:  "source-major-divmod",
	KindDestMajor:          "dest-major",
	KindDestMajorCursor:    "dest-major-cursor",
	KindDestMajorFixed:     "dest-major-fixed",
	KindUnrolledInner:      "unrolled-inner",
	KindUnrolledFull:       "unrolled-full",
	KindUnrolledPerChannel: "unrolled-per-channel",
}

var kindDescriptions = [numKinds]string{
	KindSourceMajor:        "linear source walk, wrapping channel/offset counters",
	KindSourceMajorMul:     "offset outer, channel inner, index p*C+c",
	KindSourceMajorDivMod:  "single loop, channel i%C, offset i/C",
	KindDestMajor:          "channel outer, offset inner, strided reads",
	KindDestMajorCursor:    "hoisted output slice, running input cursor",
	KindDestMajorFixed:     "hoisted cursor with constant E1 bounds",
	KindUnrolledInner:      "generated, offset loop fully unrolled",
	KindUnrolledFull:       "generated, all assignments unrolled",
	KindUnrolledPerChannel: "generated, one unrolled procedure per channel",
}

// String returns the registry name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// FixedGeometry reports whether the kind only supports the E1 geometry.
func (k Kind) FixedGeometry() bool {
	switch k {
	case KindDestMajorFixed, KindUnrolledInner, KindUnrolledFull, KindUnrolledPerChannel:
		return true
	default:
		return false
	}
}

// Kinds returns every strategy kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind returns the kind registered under name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// kernel performs the transform without any shape checks.
type kernel func(src []byte, dst [][]byte)

// Strategy is one concrete demultiplexing algorithm bound to a geometry.
// It is stateless and safe for concurrent use on distinct buffers.
type Strategy struct {
	kind        Kind
	name        string
	description string
	geometry    Geometry
	run         kernel
}

var _ Demuxer = (*Strategy)(nil)

// New builds the strategy of the given kind for g.
func New(kind Kind, g Geometry) (*Strategy, error) {
	if kind < 0 || kind >= numKinds {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if kind.FixedGeometry() && g != E1 {
		return nil, fmt.Errorf("%w: %s is %s only, got %s", ErrUnsupportedGeometry, kind, E1, g)
	}

	channels := g.Channels
	var run kernel
	switch kind {
	case KindSourceMajor:
		run = func(src []byte, dst [][]byte) { demuxSourceMajor(channels, src, dst) }
	case KindSourceMajorMul:
		run = func(src []byte, dst [][]byte) { demuxSourceMajorMul(channels, src, dst) }
	case KindSourceMajorDivMod:
		run = func(src []byte, dst [][]byte) { demuxSourceMajorDivMod(channels, src, dst) }
	case KindDestMajor:
		run = func(src []byte, dst [][]byte) { demuxDestMajor(channels, src, dst) }
	case KindDestMajorCursor:
		run = func(src []byte, dst [][]byte) { demuxDestMajorCursor(channels, src, dst) }
	case KindDestMajorFixed:
		run = demuxDestMajorFixed
	case KindUnrolledInner:
		run = demuxUnrolledInner
	case KindUnrolledFull:
		run = demuxUnrolledFull
	case KindUnrolledPerChannel:
		run = demuxUnrolledPerChannel
	}

	return &Strategy{
		kind:        kind,
		name:        kindNames[kind],
		description: kindDescriptions[kind],
		geometry:    g,
		run:         run,
	}, nil
}

// MustNew is like New but panics on error. Intended for package-level
// initialisation with known-good arguments.
func MustNew(kind Kind, g Geometry) *Strategy {
	s, err := New(kind, g)
	if err != nil {
		panic(err)
	}
	return s
}

// Reference returns the oracle strategy for g.
func Reference(g Geometry) (*Strategy, error) {
	return New(KindSourceMajor, g)
}

// ForGeometry builds every strategy that supports g, in Kind order.
func ForGeometry(g Geometry) ([]*Strategy, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	out := make([]*Strategy, 0, numKinds)
	for _, k := range Kinds() {
		if k.FixedGeometry() && g != E1 {
			continue
		}
		s, err := New(k, g)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Kind returns the strategy kind.
func (s *Strategy) Kind() Kind { return s.kind }

// Name returns the registry name.
func (s *Strategy) Name() string { return s.name }

// Description returns a one-line summary of the traversal.
func (s *Strategy) Description() string { return s.description }

// Geometry returns the bound geometry.
func (s *Strategy) Geometry() Geometry { return s.geometry }

func (s *Strategy) String() string {
	return s.name + "/" + s.geometry.String()
}

// Demux implements Demuxer.
func (s *Strategy) Demux(src []byte, dst [][]byte) error {
	if err := s.geometry.Check(src, dst); err != nil {
		return err
	}
	s.run(src, dst)
	return nil
}
