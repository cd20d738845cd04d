package gen

import "go.uber.org/zap"

// Option applies configuration to a Generator via functional options pattern.
type Option func(*Generator)

// WithLogger configures the Generator with a logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithCoreImport overrides the import path of the certainmap runtime package.
func WithCoreImport(path string) Option {
	return func(g *Generator) {
		g.coreImport = path
	}
}

// WithoutFormat skips gofmt-style formatting of the output. Used when
// debugging a template that renders invalid Go.
func WithoutFormat() Option {
	return func(g *Generator) {
		g.format = false
	}
}
