// Package wire provides a stable, versioned encoding of tokens.
//
// Each token is encoded as a tagged record: the "kind" field holds the
// token type's stable name and the remaining fields carry the payload
// for that kind. Records carry the encoding version in "v"; decoders
// reject versions they do not know.
//
// JSON streams hold one record per line, YAML streams one record per
// document. The text form is a one line rendering meant for people and
// line oriented tools; it is not decodable.
package wire
