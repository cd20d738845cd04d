// Package testutil type-checks Go source laid over a real package. It backs
// the tests asserting that an operation on the wrong occupancy state does
// not compile.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TypeCheck loads the package in dir with files overlaid (file name relative
// to dir -> content) and returns its type errors. A file name that exists in
// dir replaces it, a new one is added to the package. The error is non-nil
// only when the package could not be loaded at all.
func TypeCheck(dir string, files map[string][]byte) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	overlay := make(map[string][]byte, len(files))
	for name, src := range files {
		overlay[filepath.Join(abs, name)] = src
	}

	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
		Dir:     abs,
		Env:     append(os.Environ(), "GOWORK=off"),
		Overlay: overlay,
		Tests:   false,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no package in %s", abs)
	}

	var errs []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.ListError {
				return nil, fmt.Errorf("listing %s: %s", pkg.PkgPath, e.Msg)
			}
			errs = append(errs, e.Msg)
		}
	}
	return errs, nil
}

// ExpectCompiles fails t if src, added to the package in dir as name, does
// not type-check. Skipped in short mode: loading runs the go command.
func ExpectCompiles(t testing.TB, dir, name, src string) {
	t.Helper()
	errs := load(t, dir, name, src)
	if len(errs) > 0 {
		t.Fatalf("expected %s to type-check, got:\n  %s", name, strings.Join(errs, "\n  "))
	}
}

// ExpectTypeError fails t unless src, added to the package in dir as name,
// produces a type error containing want.
func ExpectTypeError(t testing.TB, dir, name, src, want string) {
	t.Helper()
	errs := load(t, dir, name, src)
	for _, e := range errs {
		if strings.Contains(e, want) {
			return
		}
	}
	t.Fatalf("expected a type error containing %q in %s, got %d errors:\n  %s",
		want, name, len(errs), strings.Join(errs, "\n  "))
}

func load(t testing.TB, dir, name, src string) []string {
	t.Helper()
	if testing.Short() {
		t.Skip("type-checking runs the go command")
	}
	errs, err := TypeCheck(dir, map[string][]byte{name: []byte(src)})
	if err != nil {
		t.Fatalf("TypeCheck(%s): %v", dir, err)
	}
	return errs
}
