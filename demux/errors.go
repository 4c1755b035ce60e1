package demux

import (
	"errors"
	"fmt"
)

var (
	// ErrPreconditionViolation is returned when buffers do not match the
	// geometry of the strategy. No output is modified in that case.
	ErrPreconditionViolation = errors.New("demux: precondition violation")

	// ErrResultMismatch is wrapped by MismatchError.
	ErrResultMismatch = errors.New("demux: result mismatch")

	// ErrInvalidGeometry is returned for non-positive extents.
	ErrInvalidGeometry = errors.New("demux: invalid geometry")

	// ErrUnsupportedGeometry is returned when a fixed-extent strategy is
	// requested for a geometry other than E1.
	ErrUnsupportedGeometry = errors.New("demux: strategy requires E1 geometry")

	// ErrUnknownKind is returned by New for a Kind outside the closed set.
	ErrUnknownKind = errors.New("demux: unknown strategy kind")

	// ErrDuplicateStrategy is returned when a name is registered twice.
	ErrDuplicateStrategy = errors.New("demux: duplicate strategy name")
)

// MismatchError reports the first byte where a candidate disagrees with the
// oracle.
type MismatchError struct {
	Strategy string
	Channel  int
	Offset   int
	Got      byte
	Want     byte
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("demux: %s disagrees with reference at channel %d offset %d: got 0x%02x, want 0x%02x",
		e.Strategy, e.Channel, e.Offset, e.Got, e.Want)
}

// Unwrap makes errors.Is(err, ErrResultMismatch) hold.
func (e *MismatchError) Unwrap() error {
	return ErrResultMismatch
}
