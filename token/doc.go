// Package token provides tokenization of CSS source text.
//
// [Tokenizer] scans a source buffer one token at a time with [Tokenizer.Next],
// following the CSS Syntax Level 3 tokenization rules. Malformed strings and
// urls become [TBadString] and [TBadURL] tokens rather than errors; the only
// failure is invalid UTF-8 at construction.
//
// [Tokenize] is a function for tokenizing bytes.
package token
