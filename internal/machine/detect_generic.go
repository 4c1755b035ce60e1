//go:build !amd64 && !arm64

package machine

// detectFeatures reports no SIMD extensions on other architectures.
func detectFeatures() []string {
	return nil
}
