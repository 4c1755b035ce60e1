package demux

import (
	"errors"
	"testing"
)

func TestDefaultRegistryHoldsEveryKind(t *testing.T) {
	list := Default.List()
	if len(list) != int(numKinds) {
		t.Fatalf("Default has %d strategies, want %d", len(list), numKinds)
	}
	for i, s := range list {
		if s.Kind() != Kind(i) {
			t.Fatalf("List()[%d] = %s, want %s", i, s.Kind(), Kind(i))
		}
		if s.Geometry() != E1 {
			t.Fatalf("%s bound to %s, want E1", s.Name(), s.Geometry())
		}
	}
	if names := Default.Names(); names[0] != "source-major" {
		t.Fatalf("first name = %q, want source-major", names[0])
	}
}

func TestRegistryLookup(t *testing.T) {
	if s, ok := Default.Lookup("unrolled-full"); !ok || s.Kind() != KindUnrolledFull {
		t.Fatalf("Lookup(unrolled-full) = %v, %t", s, ok)
	}
	if s, ok := Default.Lookup("nope"); ok || s != nil {
		t.Fatalf("Lookup(nope) = %v, %t, want nil, false", s, ok)
	}
}

func TestRegistryLookupMissIsNotADemuxer(t *testing.T) {
	// A missed lookup must not yield a non-nil Demuxer holding a nil
	// *Strategy.
	var d Demuxer
	if s, ok := Default.Lookup("dest-major-cursr"); ok {
		d = s
	}
	if d != nil {
		t.Fatalf("missed lookup produced Demuxer %v", d)
	}
}

func TestRegistrySortsByKind(t *testing.T) {
	reg := &Registry{}
	g := Geometry{Channels: 4, Capacity: 4}
	for _, k := range []Kind{KindDestMajorCursor, KindSourceMajor, KindDestMajor} {
		if err := reg.Register(MustNew(k, g)); err != nil {
			t.Fatalf("Register(%s): %v", k, err)
		}
	}

	want := []string{"source-major", "dest-major", "dest-major-cursor"}
	got := reg.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := &Registry{}
	if err := reg.Register(MustNew(KindDestMajor, E1)); err != nil {
		t.Fatal(err)
	}
	err := reg.Register(MustNew(KindDestMajor, Geometry{Channels: 2, Capacity: 2}))
	if !errors.Is(err, ErrDuplicateStrategy) {
		t.Fatalf("duplicate Register = %v, want ErrDuplicateStrategy", err)
	}
	if err := reg.Register(nil); err == nil {
		t.Fatal("Register(nil) succeeded")
	}
}

func TestRegistryReset(t *testing.T) {
	reg := &Registry{}
	_ = reg.Register(MustNew(KindSourceMajor, E1))
	reg.Reset()
	if n := len(reg.List()); n != 0 {
		t.Fatalf("List() after Reset has %d entries", n)
	}
}
