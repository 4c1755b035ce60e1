package demux

import (
	"errors"
	"math"
	"testing"
)

func TestE1Constants(t *testing.T) {
	if FrameSize != 2048 {
		t.Fatalf("FrameSize = %d, want 2048", FrameSize)
	}
	if E1.InputLen() != FrameSize {
		t.Fatalf("E1.InputLen() = %d, want %d", E1.InputLen(), FrameSize)
	}
	if E1.String() != "32x64" {
		t.Fatalf("E1.String() = %q, want 32x64", E1.String())
	}
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		g       Geometry
		wantErr bool
	}{
		{Geometry{Channels: 1, Capacity: 1}, false},
		{E1, false},
		{Geometry{Channels: 0, Capacity: 64}, true},
		{Geometry{Channels: 32, Capacity: 0}, true},
		{Geometry{Channels: -1, Capacity: 4}, true},
		{Geometry{Channels: math.MaxInt/2 + 1, Capacity: 2}, true},
		{Geometry{Channels: 2, Capacity: math.MaxInt/2 + 1}, true},
		{Geometry{Channels: math.MaxInt, Capacity: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.g.String(), func(t *testing.T) {
			err := tt.g.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGeometry) {
					t.Fatalf("Validate() = %v, want ErrInvalidGeometry", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestNewOutputsShape(t *testing.T) {
	g := Geometry{Channels: 3, Capacity: 5}
	dst := g.NewOutputs()
	if len(dst) != 3 {
		t.Fatalf("len(dst) = %d, want 3", len(dst))
	}
	for c, d := range dst {
		if len(d) != 5 || cap(d) != 5 {
			t.Fatalf("channel %d: len %d cap %d, want 5/5", c, len(d), cap(d))
		}
	}

	// Appending to one channel must not overwrite its neighbour.
	dst[0] = append(dst[0], 0xFF)
	if dst[1][0] != 0 {
		t.Fatalf("append on channel 0 leaked into channel 1")
	}
}

func TestGeometryCheck(t *testing.T) {
	g := Geometry{Channels: 4, Capacity: 2}

	if err := g.Check(g.NewInput(), g.NewOutputs()); err != nil {
		t.Fatalf("Check on valid buffers: %v", err)
	}

	short := g.NewOutputs()
	short[2] = short[2][:1]

	tests := []struct {
		name string
		src  []byte
		dst  [][]byte
	}{
		{"short input", make([]byte, 7), g.NewOutputs()},
		{"long input", make([]byte, 9), g.NewOutputs()},
		{"empty input", nil, g.NewOutputs()},
		{"too few outputs", g.NewInput(), g.NewOutputs()[:3]},
		{"too many outputs", g.NewInput(), append(g.NewOutputs(), make([]byte, 2))},
		{"short output", g.NewInput(), short},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.Check(tt.src, tt.dst); !errors.Is(err, ErrPreconditionViolation) {
				t.Fatalf("Check() = %v, want ErrPreconditionViolation", err)
			}
		})
	}
}
