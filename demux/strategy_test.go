package demux

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-e1/internal/testutil"
)

var testGeometries = []Geometry{
	{Channels: 1, Capacity: 1},
	{Channels: 1, Capacity: 8},
	{Channels: 8, Capacity: 1},
	{Channels: 3, Capacity: 5},
	{Channels: 7, Capacity: 33},
	E1,
}

func mustForGeometry(t *testing.T, g Geometry) []*Strategy {
	t.Helper()
	ss, err := ForGeometry(g)
	if err != nil {
		t.Fatalf("ForGeometry(%s): %v", g, err)
	}
	return ss
}

func TestStrategiesRealiseMapping(t *testing.T) {
	for _, g := range testGeometries {
		for _, s := range mustForGeometry(t, g) {
			t.Run(s.String(), func(t *testing.T) {
				src := testutil.DeterministicBytes(int64(g.InputLen()), g.InputLen())
				dst := g.NewOutputs()
				if err := s.Demux(src, dst); err != nil {
					t.Fatalf("Demux: %v", err)
				}
				testutil.RequireDemuxed(t, src, dst)
			})
		}
	}
}

func TestStrategiesIdempotent(t *testing.T) {
	src := testutil.DeterministicBytes(7, FrameSize)
	for _, s := range mustForGeometry(t, E1) {
		t.Run(s.Name(), func(t *testing.T) {
			first := E1.NewOutputs()
			second := E1.NewOutputs()
			if err := s.Demux(src, first); err != nil {
				t.Fatalf("first Demux: %v", err)
			}
			if err := s.Demux(src, second); err != nil {
				t.Fatalf("second Demux: %v", err)
			}
			testutil.RequireChannelsEqual(t, second, first)
		})
	}
}

func TestStrategiesOverwriteReusedOutputs(t *testing.T) {
	src := testutil.Ramp(FrameSize)
	for _, s := range mustForGeometry(t, E1) {
		t.Run(s.Name(), func(t *testing.T) {
			dst := E1.NewOutputs()
			testutil.Fill(dst, 0xEE)
			if err := s.Demux(src, dst); err != nil {
				t.Fatalf("Demux: %v", err)
			}
			testutil.RequireDemuxed(t, src, dst)
		})
	}
}

func TestAllStrategiesMatchReference(t *testing.T) {
	seeds := []int64{1, 2, 0xE1, 1 << 40}
	for _, g := range testGeometries {
		ref, err := Reference(g)
		if err != nil {
			t.Fatalf("Reference(%s): %v", g, err)
		}
		for _, s := range mustForGeometry(t, g) {
			t.Run(s.String(), func(t *testing.T) {
				for _, seed := range seeds {
					src := testutil.DeterministicBytes(seed, g.InputLen())
					want := g.NewOutputs()
					got := g.NewOutputs()
					if err := ref.Demux(src, want); err != nil {
						t.Fatalf("reference: %v", err)
					}
					if err := s.Demux(src, got); err != nil {
						t.Fatalf("candidate: %v", err)
					}
					testutil.RequireChannelsEqual(t, got, want)
				}
			})
		}
	}
}

func TestE1ByteLanding(t *testing.T) {
	src := make([]byte, FrameSize)
	marks := []struct {
		index   int
		channel int
		offset  int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{32, 0, 1},
		{2047, 31, 63},
	}
	for i, m := range marks {
		src[m.index] = byte(0x10 + i)
	}

	for _, s := range mustForGeometry(t, E1) {
		t.Run(s.Name(), func(t *testing.T) {
			dst := E1.NewOutputs()
			if err := s.Demux(src, dst); err != nil {
				t.Fatalf("Demux: %v", err)
			}
			for i, m := range marks {
				if got := dst[m.channel][m.offset]; got != byte(0x10+i) {
					t.Fatalf("input %d: dst[%d][%d] = 0x%02x, want 0x%02x",
						m.index, m.channel, m.offset, got, 0x10+i)
				}
			}
		})
	}
}

func TestPreconditionLeavesOutputsUntouched(t *testing.T) {
	const sentinel = 0x5A
	bad := []struct {
		name string
		src  []byte
		dst  func() [][]byte
	}{
		{"short input", make([]byte, FrameSize-1), E1.NewOutputs},
		{"long input", make([]byte, FrameSize+Timeslots), E1.NewOutputs},
		{"missing channel", make([]byte, FrameSize), func() [][]byte { return E1.NewOutputs()[:Timeslots-1] }},
		{"short channel", make([]byte, FrameSize), func() [][]byte {
			dst := E1.NewOutputs()
			dst[Timeslots-1] = dst[Timeslots-1][:ChannelCapacity-1]
			return dst
		}},
	}

	for _, s := range mustForGeometry(t, E1) {
		for _, tt := range bad {
			t.Run(s.Name()+"/"+tt.name, func(t *testing.T) {
				src := tt.src
				for i := range src {
					src[i] = byte(i)
				}
				dst := tt.dst()
				testutil.Fill(dst, sentinel)

				err := s.Demux(src, dst)
				if !errors.Is(err, ErrPreconditionViolation) {
					t.Fatalf("Demux() = %v, want ErrPreconditionViolation", err)
				}
				testutil.RequireFilled(t, dst, sentinel)
			})
		}
	}
}

func TestNewRejectsFixedKindsOffE1(t *testing.T) {
	g := Geometry{Channels: 16, Capacity: 64}
	for _, k := range Kinds() {
		_, err := New(k, g)
		if k.FixedGeometry() {
			if !errors.Is(err, ErrUnsupportedGeometry) {
				t.Fatalf("New(%s, %s) = %v, want ErrUnsupportedGeometry", k, g, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("New(%s, %s): %v", k, g, err)
		}
	}
}

func TestNewRejectsUnknownKind(t *testing.T) {
	for _, k := range []Kind{-1, numKinds, 99} {
		if _, err := New(k, E1); !errors.Is(err, ErrUnknownKind) {
			t.Fatalf("New(%d) = %v, want ErrUnknownKind", int(k), err)
		}
	}
}

func TestNewRejectsInvalidGeometry(t *testing.T) {
	if _, err := New(KindDestMajor, Geometry{}); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("New with zero geometry = %v, want ErrInvalidGeometry", err)
	}
	huge := Geometry{Channels: math.MaxInt/2 + 1, Capacity: 2}
	if _, err := New(KindDestMajor, huge); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("New(%s) = %v, want ErrInvalidGeometry", huge, err)
	}
}

func TestForGeometryCounts(t *testing.T) {
	if n := len(mustForGeometry(t, E1)); n != int(numKinds) {
		t.Fatalf("E1 strategies = %d, want %d", n, numKinds)
	}
	if n := len(mustForGeometry(t, Geometry{Channels: 2, Capacity: 2})); n != 5 {
		t.Fatalf("2x2 strategies = %d, want 5", n)
	}
}

func TestKindNamesRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k, err)
		}
		if got != k {
			t.Fatalf("ParseKind(%q) = %v, want %v", k, got, k)
		}
	}
	if _, err := ParseKind("transpose"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("ParseKind(unknown) = %v, want ErrUnknownKind", err)
	}
	if s := Kind(42).String(); s != "Kind(42)" {
		t.Fatalf("Kind(42).String() = %q", s)
	}
}

func TestReferenceIsSourceMajor(t *testing.T) {
	ref, err := Reference(E1)
	if err != nil {
		t.Fatal(err)
	}
	if ref.Kind() != KindSourceMajor || ref.Name() != "source-major" {
		t.Fatalf("Reference = %s (%v), want source-major", ref.Name(), ref.Kind())
	}
	if ref.Description() == "" {
		t.Fatal("reference has no description")
	}
}
