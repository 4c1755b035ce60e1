package bench

import "errors"

// ErrNilStrategy is returned when a nil Demuxer is handed to the harness.
var ErrNilStrategy = errors.New("bench: nil strategy")

// ErrInvalidCount is returned for non-positive iteration or repetition
// counts.
var ErrInvalidCount = errors.New("bench: iterations and repetitions must be > 0")
