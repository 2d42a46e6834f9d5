// Package loader decodes specification files into documents and encodes
// composed documents back out.
//
// The decode strategy is chosen by file extension: .yaml/.yml use YAML,
// .json uses JSON, anything else is an unsupported_format error. Both
// decoders produce the same tagged-variant document tree, so nothing
// downstream depends on the origin syntax.
package loader
