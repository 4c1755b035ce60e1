// Package demux splits a byte-interleaved E1 frame train into its
// per-timeslot byte sequences.
//
// An input buffer holds Capacity frames of Channels bytes each. Byte i of
// the input belongs to channel i%Channels at offset i/Channels:
//
//	dst[c][p] == src[p*Channels + c]
//
// The package ships a closed family of strategies that realise this mapping
// with different traversal orders and addressing algebra. They are
// interchangeable behind the [Demuxer] interface and differ only in speed.
// The source-major strategy returned by [Reference] is the oracle that every
// other strategy is checked against with [Verify].
//
// # Strategies
//
//   - source-major: linear walk over the input with two wrap counters
//   - source-major-mul: offset-major loops, input index p*C+c
//   - source-major-divmod: one loop, channel i%C and offset i/C
//   - dest-major: channel-major loops with strided reads
//   - dest-major-cursor: hoisted output slice and running input cursor
//   - dest-major-fixed: as dest-major-cursor with constant bounds (E1 only)
//   - unrolled-inner: generated, offset loop expanded (E1 only)
//   - unrolled-full: generated, every assignment spelled out (E1 only)
//   - unrolled-per-channel: generated, one procedure per channel (E1 only)
//
// # Buffers
//
// Callers own all buffers. Use [Geometry.NewInput] and [Geometry.NewOutputs]
// to allocate correctly sized ones. A strategy validates the shapes before
// touching anything, so a rejected call leaves the outputs unmodified.
package demux
