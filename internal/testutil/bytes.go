package testutil

import "math/rand"

// DeterministicBytes returns pseudo-random bytes from a fixed seed.
func DeterministicBytes(seed int64, length int) []byte {
	out := make([]byte, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = byte(rng.Intn(256))
	}
	return out
}

// Ramp returns a buffer whose byte at i is byte(i).
func Ramp(length int) []byte {
	out := make([]byte, length)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

// Fill sets every byte of every channel to v.
func Fill(channels [][]byte, v byte) {
	for _, ch := range channels {
		for i := range ch {
			ch[i] = v
		}
	}
}

// Clone returns a deep copy of channels.
func Clone(channels [][]byte) [][]byte {
	out := make([][]byte, len(channels))
	for i, ch := range channels {
		out[i] = append([]byte(nil), ch...)
	}
	return out
}
