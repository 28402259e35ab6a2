// Package libdiff computes token level differences between two CSS
// sources.
//
// Tokens compare equal when their kind and payload are equal; their
// positions are ignored.
package libdiff
