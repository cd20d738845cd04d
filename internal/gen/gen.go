// Package gen expands certain-map declarations into Go source.
//
// For every map it emits the storage and handler types plus one group of
// generic functions per slot. Partial operations (read, take, strict set)
// are free functions whose parameter type pins the slot's witness, which is
// how Go expresses "only callable when slot X is occupied". Total operations
// (remove, replace, maybe-read) are methods on every instantiation.
package gen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"github.com/ihciah/certain-map/internal/model"
)

// DefaultCoreImport is the import path of the runtime package.
const DefaultCoreImport = "github.com/ihciah/certain-map"

// DefaultOutput is the output file name used when the declaration sets none.
const DefaultOutput = "certainmap_gen.go"

// Generator renders declarations. The zero value is not usable; call New.
type Generator struct {
	logger     *zap.Logger
	coreImport string
	format     bool
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the output file name, relative to the declaration.
	Filename string

	// Digest identifies the declaration the file was expanded from.
	Digest string

	// Content is the full Go source code.
	Content []byte
}

var fileTmpl = template.Must(template.New("file").Parse(fileTemplate))

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		logger:     zap.NewNop(),
		coreImport: DefaultCoreImport,
		format:     true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate validates f and renders it. source names the declaration file in
// the generated header; it may be empty.
func (g *Generator) Generate(f *model.File, source string) (*GeneratedFile, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	digest, err := model.Digest(f)
	if err != nil {
		return nil, fmt.Errorf("digest: %w", err)
	}

	if source != "" {
		source = filepath.Base(source)
	}
	view, err := g.buildFile(f, source, digest)
	if err != nil {
		return nil, err
	}
	for _, m := range view.Maps {
		g.logger.Debug("expanding map",
			zap.String("map", m.Name),
			zap.Bool("prefilled", m.Prefilled),
			zap.Int("slots", len(m.Slots)),
			zap.Bool("fork", m.Fork),
		)
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	out := f.Output
	if out == "" {
		out = DefaultOutput
	}
	content := buf.Bytes()
	if g.format {
		content, err = imports.Process(out, content, &imports.Options{
			Comments:   true,
			TabIndent:  true,
			TabWidth:   8,
			FormatOnly: true,
		})
		if err != nil {
			return nil, fmt.Errorf("formatting %s: %w", out, err)
		}
	}

	g.logger.Info("generated",
		zap.String("package", f.Package),
		zap.String("file", out),
		zap.String("digest", digest),
		zap.Int("maps", len(f.Maps)),
		zap.Int("bytes", len(content)),
	)
	return &GeneratedFile{Filename: out, Digest: digest, Content: content}, nil
}
