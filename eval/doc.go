// Package eval filters tokens with boolean expressions.
//
// Expressions are written in the expr language
// (https://expr-lang.org) and see one token at a time through the
// fields of [Env]:
//
//	kind == "dimension" && unit == "px" && number > 100
//	kind == "ident" && value startsWith "--"
//	kind in ["bad-string", "bad-url"]
package eval
