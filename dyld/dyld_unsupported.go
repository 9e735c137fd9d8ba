//go:build !linux && !darwin

package dyld

import "errors"

var errUnsupported = errors.New("dyld: shared library loading is only supported on linux and darwin")

type Library struct{}

func Open(string) (*Library, error) {
	return nil, errUnsupported
}

func OpenImage([]byte) (*Library, error) {
	return nil, errUnsupported
}

func (library *Library) Path() string { return "" }

func (library *Library) Symbol(string) (uintptr, error) {
	return 0, errUnsupported
}

func (library *Library) Lookup(string) (uintptr, bool) { return 0, false }

func (library *Library) Close() error { return nil }
