// Package model defines the declaration of a certain-map: the map name, its
// generation style and its ordered, closed set of typed slots.
//
// Declarations are plain data. They are loaded from YAML or JSON, validated
// here, and handed to internal/gen for expansion. The validation rules mirror
// what the generated Go code needs to compile: identifiers must be legal and
// unique, slot types must parse as Go type expressions, and no two maps in one
// file may generate the same top-level name.
package model
