package demux

// Source-major kernels walk the input in order and scatter each byte to its
// channel. Reads are sequential, writes jump between channels.

func demuxSourceMajor(channels int, src []byte, dst [][]byte) {
	ch, pos := 0, 0
	for _, b := range src {
		dst[ch][pos] = b
		ch++
		if ch == channels {
			ch = 0
			pos++
		}
	}
}

func demuxSourceMajorMul(channels int, src []byte, dst [][]byte) {
	capacity := len(src) / channels
	for p := 0; p < capacity; p++ {
		for c := 0; c < channels; c++ {
			dst[c][p] = src[p*channels+c]
		}
	}
}

func demuxSourceMajorDivMod(channels int, src []byte, dst [][]byte) {
	for i, b := range src {
		dst[i%channels][i/channels] = b
	}
}
