// Package document provides the generic value model shared by both
// converters.
//
// A decoded XML document is represented as a tree of three value shapes:
// string scalars, ordered Object mappings, and List sequences. Object keys
// are qualified Names so that two tags declared under different XML
// namespaces never collide.
//
// Object exposes two access paths with different semantics. Item access
// (Get, GetName) always returns the stored value as-is. Field access
// (Field, FieldName) additionally unwraps a nested single-entry
// {"value": X} mapping to X, which makes chained lookups over decoded
// attribute/value pairs read naturally.
package document
