package demux

import (
	"fmt"
	"math"
)

// E1 frame constants.
const (
	// Timeslots is the number of interleaved channels in an E1 frame.
	Timeslots = 32

	// ChannelCapacity is the number of bytes collected per channel.
	ChannelCapacity = 64

	// FrameSize is the length of one interleaved input buffer.
	FrameSize = Timeslots * ChannelCapacity
)

// Geometry describes the shape of one demultiplexing job.
type Geometry struct {
	Channels int // interleaved channels per frame
	Capacity int // bytes per channel
}

// E1 is the default geometry: 32 timeslots of 64 bytes each.
var E1 = Geometry{Channels: Timeslots, Capacity: ChannelCapacity}

// Validate reports whether both extents are positive and their product,
// the input length, fits in an int.
func (g Geometry) Validate() error {
	if g.Channels <= 0 || g.Capacity <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, g.Channels, g.Capacity)
	}
	if g.Channels > math.MaxInt/g.Capacity {
		return fmt.Errorf("%w: %dx%d overflows the input length", ErrInvalidGeometry, g.Channels, g.Capacity)
	}
	return nil
}

// InputLen returns the required input buffer length.
func (g Geometry) InputLen() int {
	return g.Channels * g.Capacity
}

// String returns the geometry as "CxL".
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Channels, g.Capacity)
}

// NewInput returns a zeroed input buffer of InputLen bytes.
func (g Geometry) NewInput() []byte {
	return make([]byte, g.InputLen())
}

// NewOutputs returns Channels output buffers of Capacity bytes each.
//
// All channels share one backing array. Each slice has its capacity clamped
// to its length so that an append on one channel cannot spill into the next.
func (g Geometry) NewOutputs() [][]byte {
	backing := make([]byte, g.InputLen())
	dst := make([][]byte, g.Channels)
	for c := range dst {
		lo := c * g.Capacity
		hi := lo + g.Capacity
		dst[c] = backing[lo:hi:hi]
	}
	return dst
}

// Check validates src and dst against the geometry.
//
// It returns an error wrapping ErrPreconditionViolation when the input length
// differs from InputLen, when dst does not hold exactly Channels buffers, or
// when any buffer is not exactly Capacity bytes long.
func (g Geometry) Check(src []byte, dst [][]byte) error {
	if len(src) != g.InputLen() {
		return fmt.Errorf("%w: input length %d, want %d (%s)",
			ErrPreconditionViolation, len(src), g.InputLen(), g)
	}
	if len(dst) != g.Channels {
		return fmt.Errorf("%w: %d output buffers, want %d",
			ErrPreconditionViolation, len(dst), g.Channels)
	}
	for c, d := range dst {
		if len(d) != g.Capacity {
			return fmt.Errorf("%w: output buffer %d has length %d, want %d",
				ErrPreconditionViolation, c, len(d), g.Capacity)
		}
	}
	return nil
}
