// Package unrollgen generates the fully unrolled demultiplexing kernels.
//
// The unrolled strategies spell out one assignment per output byte. Writing
// thousands of literal index expressions by hand is error prone, so they are
// produced from the geometry constants by this package and committed as
// generated source.
package unrollgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"text/template"
)

// Config selects the package name and geometry of the generated file.
type Config struct {
	Package  string
	Command  string // name recorded in the "Code generated" header
	Channels int
	Capacity int
}

var errInvalidConfig = errors.New("unrollgen: invalid config")

// Generate renders the unrolled kernels and returns gofmt-formatted source.
func Generate(cfg Config) ([]byte, error) {
	if cfg.Package == "" {
		return nil, fmt.Errorf("%w: empty package name", errInvalidConfig)
	}
	if cfg.Channels <= 0 || cfg.Capacity <= 0 {
		return nil, fmt.Errorf("%w: geometry %dx%d", errInvalidConfig, cfg.Channels, cfg.Capacity)
	}
	if cfg.Command == "" {
		cfg.Command = "unrollgen"
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, cfg); err != nil {
		return nil, fmt.Errorf("unrollgen: execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("unrollgen: format output: %w", err)
	}
	return src, nil
}

var fileTemplate = template.Must(template.New("unrolled").Funcs(template.FuncMap{
	"seq": func(n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}
		return s
	},
	"mul": func(a, b int) int { return a * b },
	"add": func(a, b int) int { return a + b },
}).Parse(`// Code generated by {{.Command}}; DO NOT EDIT.

package {{.Package}}
{{$ch := .Channels}}{{$cap := .Capacity}}{{$n := mul $ch $cap}}
// demuxUnrolledInner fills one channel per iteration with the offset loop
// expanded into literal strides.
func demuxUnrolledInner(src []byte, dst [][]byte) {
	src = src[:{{$n}}:{{$n}}]
	dst = dst[:{{$ch}}:{{$ch}}]
	for c := 0; c < {{$ch}}; c++ {
		d := dst[c][:{{$cap}}:{{$cap}}]
		s := src[c:]
		_ = s[{{mul $ch (add $cap -1)}}]
{{- range $p := seq $cap}}
		d[{{$p}}] = s[{{mul $p $ch}}]
{{- end}}
	}
}

// demuxUnrolledFull copies every byte with a literal source index.
func demuxUnrolledFull(src []byte, dst [][]byte) {
	src = src[:{{$n}}:{{$n}}]
	dst = dst[:{{$ch}}:{{$ch}}]
	var d []byte
{{- range $c := seq $ch}}

	d = dst[{{$c}}][:{{$cap}}:{{$cap}}]
{{- range $p := seq $cap}}
	d[{{$p}}] = src[{{add (mul $p $ch) $c}}]
{{- end}}
{{- end}}
}

// demuxUnrolledPerChannel dispatches to one unrolled procedure per channel.
func demuxUnrolledPerChannel(src []byte, dst [][]byte) {
	dst = dst[:{{$ch}}:{{$ch}}]
{{- range $c := seq $ch}}
	demuxChannel{{$c}}(src, dst[{{$c}}])
{{- end}}
}
{{- range $c := seq $ch}}

func demuxChannel{{$c}}(src, d []byte) {
	src = src[:{{$n}}:{{$n}}]
	d = d[:{{$cap}}:{{$cap}}]
{{- range $p := seq $cap}}
	d[{{$p}}] = src[{{add (mul $p $ch) $c}}]
{{- end}}
}
{{- end}}
`))
