// Command e1bench verifies and times the E1 demultiplexing strategies.
//
// Usage:
//
//	e1bench [flags] [strategy ...]
//
// Without arguments every registered strategy is benchmarked. All selected
// strategies are checked against the reference before any timing starts.
//
// Examples:
//
//	e1bench
//	e1bench -iterations 1000000 -repetitions 10 dest-major-cursor unrolled-full
//	e1bench -verify
//	e1bench -list
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-e1/bench"
	"github.com/cwbudde/algo-e1/demux"
	"github.com/cwbudde/algo-e1/internal/machine"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("e1bench", flag.ContinueOnError)
	def := bench.DefaultConfig()
	iterations := fs.Int("iterations", def.Iterations, "strategy calls per timed round")
	repetitions := fs.Int("repetitions", def.Repetitions, "number of timed rounds")
	seed := fs.Int64("seed", def.Seed, "seed of the generated input")
	list := fs.Bool("list", false, "list available strategies")
	verifyOnly := fs.Bool("verify", false, "verify strategies against the reference and exit")
	verbose := fs.Bool("v", false, "log every timed round")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: e1bench [flags] [strategy ...]\n\n")
		fmt.Fprintf(os.Stderr, "Verifies and times E1 demultiplexing strategies.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, runs every registered strategy.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose || os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		printList()
		return 0
	}

	strategies, err := resolve(fs.Args())
	if err != nil {
		logger.Error("invalid arguments", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("verifying strategies", "count", len(strategies), "seed", *seed)
	if err := bench.VerifyAll(ctx, strategies, demux.WithSeed(*seed)); err != nil {
		logger.Error("verification failed", "error", err)
		return 1
	}
	if *verifyOnly {
		logger.Info("all strategies agree with the reference")
		return 0
	}

	h := bench.New(
		bench.WithIterations(*iterations),
		bench.WithRepetitions(*repetitions),
		bench.WithSeed(*seed),
		bench.WithLogger(logger),
	)

	results, err := h.Compare(ctx, strategies)
	if err != nil && ctx.Err() == nil {
		logger.Error("benchmark failed", "error", err)
		return 1
	}

	if err := bench.WriteTable(os.Stdout, machine.Describe(), results); err != nil {
		logger.Error("write report", "error", err)
		return 1
	}
	return 0
}

func resolve(names []string) ([]demux.Demuxer, error) {
	if len(names) == 0 {
		var out []demux.Demuxer
		for _, s := range demux.Default.List() {
			out = append(out, s)
		}
		return out, nil
	}

	out := make([]demux.Demuxer, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		s, ok := demux.Default.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown strategy %q (use -list to see available)", name)
		}
		out = append(out, s)
	}
	return out, nil
}

func printList() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, s := range demux.Default.List() {
		geometry := "any"
		if s.Kind().FixedGeometry() {
			geometry = demux.E1.String()
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name(), geometry, s.Description())
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
