// Package dyld loads shared libraries and resolves their exported symbols.
// It is the only package that talks to the platform dynamic loader; the
// detection core consumes it purely through name-to-address lookup.
package dyld

import "errors"

var (
	// ErrClosed reports use of a library after Close.
	ErrClosed = errors.New("dyld: library is closed")
	// ErrNotFound reports a symbol with no exact match in the library's
	// dynamic symbol table.
	ErrNotFound = errors.New("dyld: symbol not found")
)
