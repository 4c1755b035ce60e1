// Package bench times demultiplexing strategies.
//
// A Harness runs a strategy for a number of rounds (repetitions), each round
// calling it a fixed number of times (iterations) on one input and one
// reused output set, and records the duration of every round:
//
//	s, ok := demux.Default.Lookup("dest-major-cursor")
//	if !ok {
//		return errors.New("dest-major-cursor not registered")
//	}
//	h := bench.New(bench.WithIterations(100_000), bench.WithRepetitions(5))
//	res, err := h.Run(s)
//
// Run verifies the strategy against the reference before timing it;
// Benchmark and Measure assume the caller already did. Compare runs several
// strategies one after the other on the same input and orders them fastest
// first.
package bench
