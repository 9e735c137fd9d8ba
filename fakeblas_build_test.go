package blastramp_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"text/template"
)

// fakeLibSpec describes one synthetic BLAS/LAPACK library: which probe
// routines it exports, under which mangling suffix, and which integer
// width it is built for.
type fakeLibSpec struct {
	suffix string
	ilp64  bool
	blas   bool
	lapack bool
}

func (spec fakeLibSpec) label() string {
	width := "lp64"
	if spec.ilp64 {
		width = "ilp64"
	}
	suffix := spec.suffix
	if suffix == "" {
		suffix = "none"
	}
	return fmt.Sprintf("%s-suffix-%s", width, suffix)
}

// buildFakeBLAS renders the C template for spec and compiles it into a
// shared object with the host C compiler.
func buildFakeBLAS(t *testing.T, outDir string, spec fakeLibSpec) string {
	t.Helper()
	requireCommand(t, "cc")

	tmpl, err := template.ParseFiles(filepath.Join("testdata", "fakeblas", "fakeblas.c.tmpl"))
	if err != nil {
		t.Fatalf("parse fakeblas template: %v", err)
	}

	intType := "int32_t"
	if spec.ilp64 {
		intType = "int64_t"
	}

	srcPath := filepath.Join(t.TempDir(), "fakeblas.c")
	src, err := os.Create(srcPath)
	if err != nil {
		t.Fatalf("create %s: %v", srcPath, err)
	}
	err = tmpl.Execute(src, map[string]any{
		"IntType": intType,
		"Suffix":  spec.suffix,
		"BLAS":    spec.blas,
		"LAPACK":  spec.lapack,
	})
	if closeErr := src.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		t.Fatalf("render fakeblas source: %v", err)
	}

	outputPath := filepath.Join(outDir, fmt.Sprintf("fakeblas_%s.so", spec.label()))
	cmd := exec.Command("cc", "-shared", "-fPIC", "-O2", "-g0", "-o", outputPath, srcPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build fake blas %s: %v\n%s", spec.label(), err, output)
	}
	return outputPath
}

func requireCommand(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not found in PATH", name)
	}
}
