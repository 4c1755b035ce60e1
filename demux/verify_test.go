package demux

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cwbudde/algo-e1/internal/testutil"
)

// doubleStepMul reproduces an early revision of the multiplication strategy
// that advanced the offset twice per frame.
func doubleStepMul(src []byte, dst [][]byte) {
	capacity := len(src) / Timeslots
	for p := 0; p < capacity; p++ {
		for c := 0; c < Timeslots; c++ {
			dst[c][p] = src[p*Timeslots+c]
		}
		p++
	}
}

// swapLastTwo writes correct output except for one swapped pair.
func swapLastTwo(src []byte, dst [][]byte) {
	demuxDestMajorCursor(Timeslots, src, dst)
	last := dst[Timeslots-1]
	last[ChannelCapacity-2], last[ChannelCapacity-1] = last[ChannelCapacity-1], last[ChannelCapacity-2]
}

func brokenStrategy(name string, run kernel) *Strategy {
	return &Strategy{kind: KindSourceMajorMul, name: name, geometry: E1, run: run}
}

func TestVerifyAcceptsEveryStrategy(t *testing.T) {
	for _, g := range testGeometries {
		for _, s := range mustForGeometry(t, g) {
			t.Run(s.String(), func(t *testing.T) {
				if err := Verify(s); err != nil {
					t.Fatalf("Verify: %v", err)
				}
				if err := Verify(s, WithSeed(99)); err != nil {
					t.Fatalf("Verify(seed 99): %v", err)
				}
			})
		}
	}
}

func TestVerifyReportsFirstMismatch(t *testing.T) {
	src := testutil.Ramp(FrameSize)
	err := Verify(brokenStrategy("double-step", doubleStepMul), WithSource(bytes.NewReader(src)))
	if !errors.Is(err, ErrResultMismatch) {
		t.Fatalf("Verify() = %v, want ErrResultMismatch", err)
	}
	var mm *MismatchError
	if !errors.As(err, &mm) {
		t.Fatalf("Verify() = %T, want *MismatchError", err)
	}
	// Offset 1 of channel 0 is never written by the double-step loop.
	if mm.Strategy != "double-step" || mm.Channel != 0 || mm.Offset != 1 {
		t.Fatalf("mismatch at %s ch %d off %d, want double-step ch 0 off 1", mm.Strategy, mm.Channel, mm.Offset)
	}
	if mm.Got != 0 {
		t.Fatalf("Got = 0x%02x, want 0 (unwritten)", mm.Got)
	}
}

func TestVerifyReportsGotAndWant(t *testing.T) {
	src := testutil.Ramp(FrameSize)
	err := Verify(brokenStrategy("swap", swapLastTwo), WithSource(bytes.NewReader(src)))

	var mm *MismatchError
	if !errors.As(err, &mm) {
		t.Fatalf("Verify() = %v, want *MismatchError", err)
	}
	if mm.Channel != Timeslots-1 || mm.Offset != ChannelCapacity-2 {
		t.Fatalf("mismatch at ch %d off %d, want ch 31 off 62", mm.Channel, mm.Offset)
	}
	wantByte := src[(ChannelCapacity-2)*Timeslots+Timeslots-1]
	gotByte := src[(ChannelCapacity-1)*Timeslots+Timeslots-1]
	if mm.Want != wantByte || mm.Got != gotByte {
		t.Fatalf("got/want = 0x%02x/0x%02x, want 0x%02x/0x%02x", mm.Got, mm.Want, gotByte, wantByte)
	}
	if mm.Error() == "" {
		t.Fatal("empty error message")
	}
}

func TestVerifyShortSource(t *testing.T) {
	err := Verify(MustNew(KindDestMajor, E1), WithSource(bytes.NewReader(make([]byte, 10))))
	if err == nil {
		t.Fatal("Verify with short source succeeded")
	}
}

func TestVerifyOracleGeometryMismatch(t *testing.T) {
	oracle := MustNew(KindSourceMajor, Geometry{Channels: 2, Capacity: 2})
	err := Verify(MustNew(KindDestMajor, E1), WithOracle(oracle))
	if !errors.Is(err, ErrPreconditionViolation) {
		t.Fatalf("Verify() = %v, want ErrPreconditionViolation", err)
	}
}

func TestVerifyCustomOracle(t *testing.T) {
	oracle := MustNew(KindDestMajorCursor, E1)
	if err := Verify(MustNew(KindUnrolledPerChannel, E1), WithOracle(oracle)); err != nil {
		t.Fatalf("Verify with dest-major-cursor oracle: %v", err)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name      string
		want, got [][]byte
		ch, off   int
		ok        bool
	}{
		{"equal", [][]byte{{1, 2}, {3, 4}}, [][]byte{{1, 2}, {3, 4}}, 0, 0, true},
		{"byte differs", [][]byte{{1, 2}, {3, 4}}, [][]byte{{1, 2}, {3, 5}}, 1, 1, false},
		{"short channel", [][]byte{{1, 2}, {3, 4}}, [][]byte{{1}, {3, 4}}, 0, 1, false},
		{"missing channel", [][]byte{{1, 2}, {3, 4}}, [][]byte{{1, 2}}, 1, 0, false},
		{"empty", nil, nil, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, off, ok := Compare(tt.want, tt.got)
			if ch != tt.ch || off != tt.off || ok != tt.ok {
				t.Fatalf("Compare() = (%d, %d, %v), want (%d, %d, %v)", ch, off, ok, tt.ch, tt.off, tt.ok)
			}
		})
	}
}
