package demux

import (
	"testing"

	"github.com/cwbudde/algo-e1/internal/testutil"
)

func BenchmarkDemuxE1(b *testing.B) {
	src := testutil.DeterministicBytes(DefaultSeed, FrameSize)
	for _, s := range Default.List() {
		b.Run(s.Name(), func(b *testing.B) {
			dst := E1.NewOutputs()
			b.SetBytes(FrameSize)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if err := s.Demux(src, dst); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkKernelE1 calls the kernels directly to show the cost of the
// shape check in Demux.
func BenchmarkKernelE1(b *testing.B) {
	src := testutil.DeterministicBytes(DefaultSeed, FrameSize)
	for _, s := range Default.List() {
		b.Run(s.Name(), func(b *testing.B) {
			dst := E1.NewOutputs()
			b.SetBytes(FrameSize)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				s.run(src, dst)
			}
		})
	}
}

func BenchmarkDemuxGeometries(b *testing.B) {
	geometries := []Geometry{
		{Channels: 2, Capacity: 4096},
		{Channels: 32, Capacity: 256},
		{Channels: 256, Capacity: 32},
	}
	for _, g := range geometries {
		src := testutil.DeterministicBytes(1, g.InputLen())
		ss, err := ForGeometry(g)
		if err != nil {
			b.Fatal(err)
		}
		for _, s := range ss {
			b.Run(s.String(), func(b *testing.B) {
				dst := g.NewOutputs()
				b.SetBytes(int64(g.InputLen()))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_ = s.Demux(src, dst)
				}
			})
		}
	}
}
