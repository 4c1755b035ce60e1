package unrollgen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"
)

// TestCommittedKernelsUpToDate fails when demux/unrolled_gen.go no longer
// matches the generator. Run go generate ./demux to refresh it.
func TestCommittedKernelsUpToDate(t *testing.T) {
	want, err := Generate(Config{Package: "demux", Command: "e1gen", Channels: 32, Capacity: 64})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got, err := os.ReadFile("../../demux/unrolled_gen.go")
	if err != nil {
		t.Fatalf("read committed kernels: %v", err)
	}
	if bytes.Equal(got, want) {
		return
	}

	gl := strings.Split(string(got), "\n")
	wl := strings.Split(string(want), "\n")
	for i := range min(len(gl), len(wl)) {
		if gl[i] != wl[i] {
			t.Fatalf("unrolled_gen.go is stale at line %d:\n got: %q\nwant: %q", i+1, gl[i], wl[i])
		}
	}
	t.Fatalf("unrolled_gen.go is stale: %d lines, generator produces %d", len(gl), len(wl))
}

func TestGenerateE1(t *testing.T) {
	src, err := Generate(Config{Package: "demux", Command: "e1gen", Channels: 32, Capacity: 64})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.HasPrefix(string(src), "// Code generated by e1gen; DO NOT EDIT.") {
		t.Fatalf("missing generated header: %q", string(src[:40]))
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "unrolled_gen.go", src, 0)
	if err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}
	if file.Name.Name != "demux" {
		t.Fatalf("package = %s, want demux", file.Name.Name)
	}

	funcs := map[string]*ast.FuncDecl{}
	for _, d := range file.Decls {
		if fn, ok := d.(*ast.FuncDecl); ok {
			funcs[fn.Name.Name] = fn
		}
	}
	// Three kernels plus one procedure per channel.
	if len(funcs) != 3+32 {
		t.Fatalf("generated %d functions, want 35", len(funcs))
	}
	for _, name := range []string{"demuxUnrolledInner", "demuxUnrolledFull", "demuxUnrolledPerChannel", "demuxChannel0", "demuxChannel31"} {
		if funcs[name] == nil {
			t.Fatalf("missing function %s", name)
		}
	}

	if n := countIndexAssigns(funcs["demuxUnrolledInner"]); n != 64 {
		t.Fatalf("demuxUnrolledInner has %d byte assignments, want 64", n)
	}
	if n := countIndexAssigns(funcs["demuxUnrolledFull"]); n != 2048 {
		t.Fatalf("demuxUnrolledFull has %d byte assignments, want 2048", n)
	}
	if n := countIndexAssigns(funcs["demuxChannel31"]); n != 64 {
		t.Fatalf("demuxChannel31 has %d byte assignments, want 64", n)
	}
	if !strings.Contains(string(src), "d[63] = src[2047]") {
		t.Fatal("last assignment of channel 31 not found")
	}
}

func TestGenerateSmallGeometry(t *testing.T) {
	src, err := Generate(Config{Package: "p", Channels: 2, Capacity: 3})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	text := string(src)
	for _, want := range []string{
		"// Code generated by unrollgen; DO NOT EDIT.",
		"src = src[:6:6]",
		"d[2] = src[5]",
		"demuxChannel1(src, dst[1])",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output lacks %q:\n%s", want, text)
		}
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	for _, cfg := range []Config{
		{Channels: 32, Capacity: 64},
		{Package: "demux", Channels: 0, Capacity: 64},
		{Package: "demux", Channels: 32, Capacity: -1},
	} {
		if _, err := Generate(cfg); err == nil {
			t.Fatalf("Generate(%+v) succeeded", cfg)
		}
	}
}

// countIndexAssigns counts statements of the form x[i] = y[j].
func countIndexAssigns(fn *ast.FuncDecl) int {
	n := 0
	ast.Inspect(fn, func(node ast.Node) bool {
		as, ok := node.(*ast.AssignStmt)
		if !ok || as.Tok != token.ASSIGN || len(as.Lhs) != 1 || len(as.Rhs) != 1 {
			return true
		}
		_, lhs := as.Lhs[0].(*ast.IndexExpr)
		_, rhs := as.Rhs[0].(*ast.IndexExpr)
		if lhs && rhs {
			n++
		}
		return true
	})
	return n
}
