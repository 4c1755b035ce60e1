//go:build arm64

package machine

import "golang.org/x/sys/cpu"

// detectFeatures reports ARM SIMD support. ASIMD (NEON) is mandatory on
// ARMv8.
func detectFeatures() []string {
	var f []string
	if cpu.ARM64.HasASIMD {
		f = append(f, "asimd")
	}
	if cpu.ARM64.HasSVE {
		f = append(f, "sve")
	}
	return f
}
