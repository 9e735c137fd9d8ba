//go:build linux || darwin

package dyld

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
)

// Library is an open handle to a loaded shared library.
type Library struct {
	mu     sync.RWMutex
	handle uintptr
	path   string
	fd     int
	closed bool
}

// Open loads the shared library at path. Symbols are bound eagerly and
// kept out of the global namespace so that probing one candidate cannot
// contaminate another.
func Open(path string) (*Library, error) {
	if path == "" {
		return nil, errors.New("dyld: empty library path")
	}
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, fmt.Errorf("dyld: dlopen(%s): %w", path, err)
	}
	return &Library{handle: handle, path: path, fd: -1}, nil
}

// Path returns the path the library was opened from.
func (library *Library) Path() string {
	return library.path
}

// Symbol resolves an exported symbol by exact name.
func (library *Library) Symbol(name string) (uintptr, error) {
	if name == "" {
		return 0, errors.New("dyld: empty symbol name")
	}

	library.mu.RLock()
	defer library.mu.RUnlock()
	if library.closed {
		return 0, ErrClosed
	}

	addr, err := purego.Dlsym(library.handle, name)
	if err != nil {
		// Keep the dlerror text; callers still match on the sentinel.
		return 0, fmt.Errorf("dyld: dlsym(%s): %w", name, errors.Join(ErrNotFound, err))
	}
	if addr == 0 {
		return 0, fmt.Errorf("dyld: dlsym(%s): %w", name, ErrNotFound)
	}
	return addr, nil
}

// Lookup is the resolver form of Symbol: a miss is reported as a boolean,
// not an error.
func (library *Library) Lookup(name string) (uintptr, bool) {
	addr, err := library.Symbol(name)
	return addr, err == nil
}

// Close unloads the library. Addresses previously resolved from it become
// invalid.
func (library *Library) Close() error {
	library.mu.Lock()
	defer library.mu.Unlock()

	if library.closed {
		return nil
	}
	library.closed = true

	var err error
	if library.handle != 0 {
		err = purego.Dlclose(library.handle)
		library.handle = 0
	}
	if library.fd >= 0 {
		closeImageFD(library.fd)
		library.fd = -1
	}
	if err != nil {
		return fmt.Errorf("dyld: dlclose(%s): %w", library.path, err)
	}
	return nil
}
