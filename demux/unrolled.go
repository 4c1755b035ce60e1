package demux

// The unrolled kernels live in unrolled_gen.go. They assume the E1 geometry
// and are only reachable through strategies built for E1, after Check has
// accepted the buffers.

//go:generate go run ../cmd/e1gen -o unrolled_gen.go -pkg demux -channels 32 -capacity 64
