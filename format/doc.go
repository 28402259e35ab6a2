// Package format names the output formats for token streams.
//
// # Related Packages
//
//   - github.com/signadot/csstok/wire - encode and decode tokens in a format
package format
