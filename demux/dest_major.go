package demux

// Destination-major kernels fill one channel at a time. Writes are
// sequential, reads stride through the input by the channel count.

func demuxDestMajor(channels int, src []byte, dst [][]byte) {
	capacity := len(src) / channels
	for c := 0; c < channels; c++ {
		for p := 0; p < capacity; p++ {
			dst[c][p] = src[p*channels+c]
		}
	}
}

func demuxDestMajorCursor(channels int, src []byte, dst [][]byte) {
	for c, d := range dst {
		j := c
		for p := range d {
			d[p] = src[j]
			j += channels
		}
	}
}

// demuxDestMajorFixed re-slices every buffer to its constant extent so the
// compiler can prove the loop indices in range.
func demuxDestMajorFixed(src []byte, dst [][]byte) {
	src = src[:FrameSize:FrameSize]
	dst = dst[:Timeslots:Timeslots]
	for c := 0; c < Timeslots; c++ {
		d := dst[c][:ChannelCapacity:ChannelCapacity]
		j := c
		for p := 0; p < ChannelCapacity; p++ {
			d[p] = src[j]
			j += Timeslots
		}
	}
}
