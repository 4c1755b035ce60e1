package testutil

import "testing"

// RequireDemuxed fails t unless dst[c][p] == src[p*len(dst)+c] for every
// channel c and offset p, and every channel holds len(src)/len(dst) bytes.
func RequireDemuxed(t testing.TB, src []byte, dst [][]byte) {
	t.Helper()
	channels := len(dst)
	if channels == 0 {
		t.Fatal("no output channels")
	}
	if len(src)%channels != 0 {
		t.Fatalf("input length %d is not a multiple of %d channels", len(src), channels)
	}
	capacity := len(src) / channels
	for c, ch := range dst {
		if len(ch) != capacity {
			t.Fatalf("channel %d: length %d, want %d", c, len(ch), capacity)
		}
		for p, got := range ch {
			if want := src[p*channels+c]; got != want {
				t.Fatalf("channel %d offset %d: got 0x%02x, want 0x%02x (input index %d)",
					c, p, got, want, p*channels+c)
			}
		}
	}
}

// RequireChannelsEqual fails t at the first byte where got and want differ.
func RequireChannelsEqual(t testing.TB, got, want [][]byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("channel count: got %d, want %d", len(got), len(want))
	}
	for c := range want {
		if len(got[c]) != len(want[c]) {
			t.Fatalf("channel %d: length %d, want %d", c, len(got[c]), len(want[c]))
		}
		for p := range want[c] {
			if got[c][p] != want[c][p] {
				t.Fatalf("channel %d offset %d: got 0x%02x, want 0x%02x", c, p, got[c][p], want[c][p])
			}
		}
	}
}

// RequireFilled fails t unless every byte of every channel equals v.
func RequireFilled(t testing.TB, channels [][]byte, v byte) {
	t.Helper()
	for c, ch := range channels {
		for p, got := range ch {
			if got != v {
				t.Fatalf("channel %d offset %d: got 0x%02x, want untouched 0x%02x", c, p, got, v)
			}
		}
	}
}
