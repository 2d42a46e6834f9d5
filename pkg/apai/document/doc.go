// Package document defines the tagged-variant representation of an APAI
// specification: a tree of scalar, sequence, and mapping nodes.
//
// The variant is closed. Code that walks a document switches on Kind
// instead of type-asserting raw interface{} values, and the composition
// engine defines its merge over exactly these three cases.
//
// Build a document programmatically:
//
//	doc := document.NewMapping()
//	doc.Set("openapia", document.NewScalar("0.1.0"))
//
// Or convert from a decoded YAML/JSON tree:
//
//	doc, err := document.FromInterface(raw)
//
// Documents are immutable once handed to the composer; merge results
// share unmodified subtrees with their inputs.
package document
