// Package xmlwriter provides low-level primitives for emitting XML
// documents without a schema.
//
// The standard library's xml.Encoder is deliberately not used here: it
// offers no control over CDATA sections or the empty-element form, and the
// output contract of the reverse converter is byte-exact. Encoder writes
// start tags, end tags, empty elements, and CDATA sections directly to an
// in-memory buffer in exactly the order the caller asks for them.
package xmlwriter
