//go:build amd64

package machine

import "golang.org/x/sys/cpu"

// detectFeatures reads CPUID through x/sys/cpu. SSE2 is part of the
// x86-64 baseline.
func detectFeatures() []string {
	var f []string
	add := func(ok bool, name string) {
		if ok {
			f = append(f, name)
		}
	}
	add(cpu.X86.HasSSE2, "sse2")
	add(cpu.X86.HasSSE41, "sse4.1")
	add(cpu.X86.HasAVX, "avx")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasBMI2, "bmi2")
	add(cpu.X86.HasAVX512F, "avx512f")
	return f
}
