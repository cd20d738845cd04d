// Command certainmap-gen expands a certain-map declaration into Go source.
//
// Usage:
//
//	certainmap-gen -config certainmap.yaml [-out file.go] [-check] [-dot Map] [-v]
//
// It is meant to run from a //go:generate directive next to the declaration.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ihciah/certain-map/internal/gen"
	"github.com/ihciah/certain-map/internal/model"
	"github.com/ihciah/certain-map/internal/visual"
)

// errStale is returned by -check when the file on disk is out of date.
var errStale = errors.New("generated file is stale")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	config  string
	out     string
	check   bool
	dot     string
	verbose bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("certainmap-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.StringVar(&opts.config, "config", "certainmap.yaml", "declaration file (.yaml, .yml or .json)")
	fs.StringVar(&opts.out, "out", "", "output file, relative to the declaration (default: its output field or "+gen.DefaultOutput+")")
	fs.BoolVar(&opts.check, "check", false, "exit non-zero if the output file is not up to date instead of writing it")
	fs.StringVar(&opts.dot, "dot", "", "print the Graphviz typestate graph of the named map and exit")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, opts.verbose)
	defer logger.Sync() //nolint:errcheck

	if err := execute(opts, stdout, logger); err != nil {
		logger.Error("certainmap-gen failed", zap.String("config", opts.config), zap.Error(err))
		return 1
	}
	return 0
}

func execute(opts options, stdout io.Writer, logger *zap.Logger) error {
	f, err := model.Load(opts.config)
	if err != nil {
		return err
	}

	if opts.dot != "" {
		return writeDOT(f, opts.dot, stdout)
	}

	g := gen.New(gen.WithLogger(logger))
	out, err := g.Generate(f, opts.config)
	if err != nil {
		return err
	}

	path := opts.out
	if path == "" {
		path = out.Filename
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(opts.config), path)
	}

	if opts.check {
		current, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("check %s: %w", path, err)
		}
		if !bytes.Equal(current, out.Content) {
			return fmt.Errorf("%s: %w, run go generate", path, errStale)
		}
		logger.Info("up to date", zap.String("file", path), zap.String("digest", out.Digest))
		return nil
	}

	if err := os.WriteFile(path, out.Content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Debug("wrote", zap.String("file", path))
	return nil
}

func writeDOT(f *model.File, name string, w io.Writer) error {
	m, ok := f.Find(name)
	if !ok {
		return fmt.Errorf("no map named %q", name)
	}
	graph, err := model.BuildGraph(m)
	if err != nil {
		return err
	}
	v := &visual.DefaultVisualizer{}
	_, err = io.WriteString(w, v.ExportDOT(graph))
	return err
}

// newLogger builds a console logger on w. Levels are coloured only when w is
// a terminal.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
