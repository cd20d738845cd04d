// Package demo holds the maps the examples and tests run against. The
// declarations live in certainmap.yaml; certainmap_gen.go is their expansion.
package demo

//go:generate go run github.com/ihciah/certain-map/cmd/certainmap-gen -config certainmap.yaml -out certainmap_gen.go
