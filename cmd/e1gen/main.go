// Command e1gen writes the unrolled demultiplexing kernels.
//
// Usage:
//
//	e1gen [-o file] [-pkg name] [-channels n] [-capacity n]
//
// It is normally run through go generate in the demux package.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-e1/internal/unrollgen"
)

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	pkg := flag.String("pkg", "demux", "package name of the generated file")
	channels := flag.Int("channels", 32, "interleaved channels per frame")
	capacity := flag.Int("capacity", 64, "bytes per channel")
	flag.Parse()

	src, err := unrollgen.Generate(unrollgen.Config{
		Package:  *pkg,
		Command:  "e1gen",
		Channels: *channels,
		Capacity: *capacity,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "e1gen: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		_, err = os.Stdout.Write(src)
	} else {
		err = os.WriteFile(*out, src, 0o644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "e1gen: %v\n", err)
		os.Exit(1)
	}
}
