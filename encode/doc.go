// Package encode renders CSS source with its tokens colored by kind.
package encode
