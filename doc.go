// Package certainmap is the runtime half of certain-map: a heterogeneous
// property store whose occupancy is tracked by the Go type checker.
//
// A map type is declared once (see cmd/certainmap-gen) and expanded into a
// storage struct, a handler type with one type parameter per slot, and a set
// of generic functions. Each type parameter is either Vacant or Occupied, so
//
//	h := store.Handler()              // MetaHandler[Vacant, Vacant, Vacant]
//	h = SetMetaName(h, "ihciah")      // does not compile: result type differs
//	h2 := SetMetaName(h, "ihciah")    // MetaHandler[Occupied, Vacant, Vacant]
//	name := MetaName(h2)              // ok, MetaName(h) would not compile
//
// Reads and takes are only expressible on handlers whose witness marks the
// slot occupied. Removal is total. There is no runtime existence check on
// these paths.
//
// This package holds the pieces shared by all generated code: the witness
// tags, the storage Cell, the handler ownership Guard and the small generic
// contracts used by pipeline code.
//
// The package uses only the Go standard library.
package certainmap
