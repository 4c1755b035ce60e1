package demux_test

import (
	"fmt"

	"github.com/cwbudde/algo-e1/demux"
)

func ExampleStrategy_Demux() {
	g := demux.Geometry{Channels: 3, Capacity: 2}
	s, err := demux.New(demux.KindDestMajorCursor, g)
	if err != nil {
		panic(err)
	}

	src := []byte("abcABC")
	dst := g.NewOutputs()
	if err := s.Demux(src, dst); err != nil {
		panic(err)
	}
	for c, ch := range dst {
		fmt.Printf("channel %d: %s\n", c, ch)
	}
	// Output:
	// channel 0: aA
	// channel 1: bB
	// channel 2: cC
}

func ExampleVerify() {
	for _, s := range demux.Default.List() {
		if err := demux.Verify(s); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println("all strategies agree with", demux.Default.Names()[0])
	// Output:
	// all strategies agree with source-major
}
