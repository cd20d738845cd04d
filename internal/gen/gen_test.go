package gen

import (
	"bytes"
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ihciah/certain-map/internal/model"
	"github.com/ihciah/certain-map/testutil"
)

const demoDir = "../demo"

func sampleFile() *model.File {
	return model.NewFile("sample",
		model.NewMapConfig("Meta", model.Prefilled).
			WithEmpty("MetaEmpty").
			WithFull("MetaFull").
			WithFork().
			AddSlot("name", "string").
			AddSlot("timeout", "time.Duration"),
		model.NewMapConfig("Record", model.Unfilled).
			WithFork().
			AddSlot("name", "string").
			AddSlot("age", "uint8", model.EnsureClone),
	).WithImport("time")
}

// declared returns the top-level names and the methods per receiver base
// type of a Go source file.
func declared(t *testing.T, src []byte) (map[string]bool, map[string][]string) {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
	names := make(map[string]bool)
	methods := make(map[string][]string)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				names[d.Name.Name] = true
				continue
			}
			recv := d.Recv.List[0].Type
			if star, ok := recv.(*ast.StarExpr); ok {
				recv = star.X
			}
			if idx, ok := recv.(*ast.IndexListExpr); ok {
				recv = idx.X
			}
			if idx, ok := recv.(*ast.IndexExpr); ok {
				recv = idx.X
			}
			base := recv.(*ast.Ident).Name
			methods[base] = append(methods[base], d.Name.Name)
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					names[ts.Name.Name] = true
				}
			}
		}
	}
	return names, methods
}

func TestGenerate_Declarations(t *testing.T) {
	f := sampleFile()
	out, err := New().Generate(f, "testdata/sample.yaml")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	names, methods := declared(t, out.Content)

	var want []string
	for _, m := range f.Maps {
		want = append(want, m.Identifiers()...)
	}
	for _, id := range want {
		if !names[id] {
			t.Errorf("expected top-level %s to be generated", id)
		}
	}
	if len(names) != len(want) {
		t.Errorf("expected %d top-level names, got %d", len(want), len(names))
	}

	for _, m := range f.Maps {
		recv := m.Name
		if m.StyleOrDefault() == model.Prefilled {
			recv = m.Name + "Handler"
		}
		got := methods[recv]
		for _, name := range m.Methods() {
			if !slices.Contains(got, name) {
				t.Errorf("expected method %s.%s, got %v", recv, name, got)
			}
		}
	}
	for _, name := range []string{"Handler", "Clear"} {
		if !slices.Contains(methods["Meta"], name) {
			t.Errorf("expected store method Meta.%s", name)
		}
	}
	for _, name := range []string{"Attach", "AttachChecked"} {
		if !slices.Contains(methods["MetaState"], name) {
			t.Errorf("expected token method MetaState.%s", name)
		}
	}
}

func TestGenerate_Header(t *testing.T) {
	f := sampleFile()
	out, err := New().Generate(f, "testdata/sample.yaml")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	digest, _ := model.Digest(f)
	if out.Digest != digest {
		t.Errorf("expected digest %s, got %s", digest, out.Digest)
	}
	header := "// Code generated by certainmap-gen from sample.yaml. DO NOT EDIT.\n// digest: " + digest + "\n"
	if !bytes.HasPrefix(out.Content, []byte(header)) {
		t.Errorf("unexpected header:\n%s", out.Content[:min(len(out.Content), 200)])
	}
	if out.Filename != DefaultOutput {
		t.Errorf("expected default output name, got %s", out.Filename)
	}
	if !bytes.Contains(out.Content, []byte(`"time"`)) {
		t.Error("expected declared import in output")
	}

	f.Output = "maps_gen.go"
	out, err = New().Generate(f, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Filename != "maps_gen.go" {
		t.Errorf("expected output from declaration, got %s", out.Filename)
	}
	if !bytes.HasPrefix(out.Content, []byte("// Code generated by certainmap-gen. DO NOT EDIT.\n")) {
		t.Errorf("expected header without source, got %q", bytes.SplitN(out.Content, []byte("\n"), 2)[0])
	}
}

func TestGenerate_CloneGate(t *testing.T) {
	out, err := New().Generate(sampleFile(), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	names, _ := declared(t, out.Content)
	if !names["MetaTimeoutValue"] {
		t.Error("expected fork to give prefilled slots owned reads")
	}
	if names["RecordNameValue"] {
		t.Error("expected no owned read for unfilled slot without clone")
	}
	if !names["RecordAgeValue"] {
		t.Error("expected owned read for slot with ensure clone")
	}
}

func TestGenerate_NoErrorsImportForUnfilled(t *testing.T) {
	f := model.NewFile("only", model.NewMapConfig("R", model.Unfilled).AddSlot("a", "int"))
	out, err := New().Generate(f, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if bytes.Contains(out.Content, []byte(`"errors"`)) {
		t.Errorf("expected no errors import for unfilled-only file:\n%s", out.Content)
	}
}

func TestGenerate_Invalid(t *testing.T) {
	f := sampleFile()
	f.Maps[0].AddSlot("name", "int")
	if _, err := New().Generate(f, ""); !errors.Is(err, model.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestGenerate_Unformatted(t *testing.T) {
	raw, err := New(WithoutFormat()).Generate(sampleFile(), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	formatted, err := New().Generate(sampleFile(), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	rawNames, _ := declared(t, raw.Content)
	fmtNames, _ := declared(t, formatted.Content)
	if len(rawNames) != len(fmtNames) {
		t.Errorf("expected formatting to keep declarations, got %d and %d", len(rawNames), len(fmtNames))
	}
}

func TestGenerate_CoreImport(t *testing.T) {
	out, err := New(WithCoreImport("example.com/fork/certainmap")).Generate(sampleFile(), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.Contains(out.Content, []byte(`certainmap "example.com/fork/certainmap"`)) {
		t.Error("expected overridden runtime import")
	}
}

func TestGenerate_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	if _, err := New(WithLogger(zap.New(core))).Generate(sampleFile(), ""); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n := logs.FilterMessage("expanding map").Len(); n != 2 {
		t.Errorf("expected 2 expanding map entries, got %d", n)
	}
	if n := logs.FilterMessage("generated").Len(); n != 1 {
		t.Errorf("expected 1 generated entry, got %d", n)
	}
}

func loadDemo(t *testing.T) *model.File {
	t.Helper()
	f, err := model.Load(demoDir + "/certainmap.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return f
}

func TestGenerate_DemoDigest(t *testing.T) {
	out, err := New().Generate(loadDemo(t), "certainmap.yaml")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	data, err := os.ReadFile(demoDir + "/certainmap_gen.go")
	if err != nil {
		t.Fatal(err)
	}
	committed := strings.SplitN(string(data), "\n", 3)[1]
	if committed != "// digest: "+out.Digest {
		t.Errorf("committed demo expansion is stale: header %q, declaration digest %s", committed, out.Digest)
	}
}

// The generated file replaces the committed one in the demo package, which
// also holds code using the generated API, and must type-check there.
func TestGenerate_TypeChecksInPlace(t *testing.T) {
	f := loadDemo(t)
	f.WithImport("time")
	f.Maps = append(f.Maps,
		model.NewMapConfig("Solo", model.Prefilled).AddSlot("timeout", "time.Duration"),
		model.NewMapConfig("Single", model.Unfilled).WithFork().AddSlot("items", "map[string][]byte", model.EnsureClone),
		model.NewMapConfig("Funcs", model.Unfilled).AddSlot("hook", "func(ctx string) error").AddSlot("done", "chan struct{}"),
	)
	out, err := New().Generate(f, "certainmap.yaml")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if testing.Short() {
		t.Skip("type-checking runs the go command")
	}
	errs, err := testutil.TypeCheck(demoDir, map[string][]byte{"certainmap_gen.go": out.Content})
	if err != nil {
		t.Fatalf("TypeCheck: %v", err)
	}
	if len(errs) > 0 {
		t.Fatalf("generated code does not type-check:\n  %s", strings.Join(errs, "\n  "))
	}
}
