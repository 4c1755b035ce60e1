// Package machine describes the host a benchmark runs on.
//
// Demultiplexing speed depends on cache geometry and on what the compiler
// may emit for the target, so benchmark reports carry the architecture,
// cache line size and detected SIMD extensions alongside the timings.
//
// Detection runs once and is cached. Tests can override it with SetForced.
package machine

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Info describes the current machine.
type Info struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	GoVersion  string

	// CacheLine is the cache line size in bytes assumed by x/sys/cpu.
	CacheLine int

	// Features lists detected SIMD extensions, e.g. "sse2", "avx2", "asimd".
	Features []string
}

// String returns a one-line summary.
func (i Info) String() string {
	var b strings.Builder
	b.WriteString(i.GOOS)
	b.WriteByte('/')
	b.WriteString(i.GOARCH)
	b.WriteString(" cpus=")
	b.WriteString(strconv.Itoa(i.NumCPU))
	b.WriteString(" cacheline=")
	b.WriteString(strconv.Itoa(i.CacheLine))
	if len(i.Features) > 0 {
		b.WriteString(" simd=")
		b.WriteString(strings.Join(i.Features, ","))
	}
	return b.String()
}

// Has reports whether feature was detected.
func (i Info) Has(feature string) bool {
	for _, f := range i.Features {
		if f == feature {
			return true
		}
	}
	return false
}

var (
	detected   Info
	detectOnce sync.Once

	forced   *Info
	forcedMu sync.RWMutex
)

// Describe returns the cached machine description.
func Describe() Info {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()
	if f != nil {
		return *f
	}

	detectOnce.Do(func() {
		detected = Info{
			GOOS:       runtime.GOOS,
			GOARCH:     runtime.GOARCH,
			NumCPU:     runtime.NumCPU(),
			GOMAXPROCS: runtime.GOMAXPROCS(0),
			GoVersion:  runtime.Version(),
			CacheLine:  int(unsafe.Sizeof(cpu.CacheLinePad{})),
			Features:   detectFeatures(),
		}
	})
	return detected
}

// SetForced overrides detection. Intended for tests.
func SetForced(info Info) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	f := info
	forced = &f
}

// Reset removes any override set by SetForced.
func Reset() {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forced = nil
}
