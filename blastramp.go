// Package blastramp discovers the ABI contract of a dynamically loaded
// BLAS/LAPACK library: the FORTRAN symbol mangling suffix its exports
// carry, whether its interface integers are 32-bit (LP64) or 64-bit
// (ILP64), and optionally whether single-precision functions use the
// legacy f2c return convention. The contract is inferred from two or three
// probe routines and then trusted for every routine the library exports,
// so a forwarding layer can dispatch hundreds of computational calls with
// the correct convention.
package blastramp

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/blastramp/blastramp/dyld"
	"github.com/blastramp/blastramp/probe"
	"github.com/blastramp/blastramp/symtab"
)

// ErrUnknownABI reports a library whose interface width could not be
// classified; such a library must not be used for computational
// forwarding.
var ErrUnknownABI = errors.New("blastramp: library interface width is unknown")

// Detection is the immutable result of probing one library. Once
// returned it may be read freely from any number of goroutines.
type Detection struct {
	Suffix     string
	Width      probe.Width
	Convention probe.Convention
}

// Library is a loaded BLAS/LAPACK candidate together with its cached
// detection result.
type Library struct {
	lib    *dyld.Library
	prober probe.Prober
	log    *slog.Logger

	detectOnce sync.Once
	detection  Detection
	detectErr  error
}

// Option configures a Library at open time.
type Option func(*Library)

// WithLogger routes debug traces of the probe sequence to l.
func WithLogger(l *slog.Logger) Option {
	return func(library *Library) {
		library.log = l
		library.prober.Logger = l
	}
}

// Open loads the shared library at path.
func Open(path string, opts ...Option) (*Library, error) {
	lib, err := dyld.Open(path)
	if err != nil {
		return nil, err
	}
	return newLibrary(lib, opts), nil
}

// OpenImage loads a shared library from an in-memory image. Only
// supported on linux.
func OpenImage(data []byte, opts ...Option) (*Library, error) {
	lib, err := dyld.OpenImage(data)
	if err != nil {
		return nil, err
	}
	return newLibrary(lib, opts), nil
}

func newLibrary(lib *dyld.Library, opts []Option) *Library {
	library := &Library{lib: lib}
	for _, opt := range opts {
		opt(library)
	}
	return library
}

// Path returns the path the library was loaded from.
func (library *Library) Path() string {
	return library.lib.Path()
}

// Lookup resolves an exported symbol by exact name.
func (library *Library) Lookup(name string) (uintptr, bool) {
	return library.lib.Lookup(name)
}

// Detect runs the detection sequence: suffix first, then interface width
// using that suffix, then the optional calling-convention probe. The
// result is computed once per library and cached; subsequent calls return
// the same immutable values. An error is returned only when no probe
// symbol resolves under any suffix; an unclassifiable width is reported
// as probe.WidthUnknown in the result, not as an error.
func (library *Library) Detect() (Detection, error) {
	library.detectOnce.Do(func() {
		suffix, err := probe.DetectSuffix(library.lib)
		if err != nil {
			library.detectErr = fmt.Errorf("blastramp: detect suffix for %s: %w", library.lib.Path(), err)
			return
		}
		library.debug("suffix detected", "suffix", suffix)

		width := library.prober.DetectWidth(library.lib, suffix)
		library.debug("interface width detected", "width", width.String())

		convention := library.prober.DetectF2C(library.lib, suffix)

		library.detection = Detection{
			Suffix:     suffix,
			Width:      width,
			Convention: convention,
		}
	})
	return library.detection, library.detectErr
}

// Bind detects the library's ABI and populates a fresh symbol table:
// every registry routine the library exports is resolved with the
// detected suffix and stored into the slot matching the detected width.
func (library *Library) Bind() (*symtab.Table, error) {
	detection, err := library.Detect()
	if err != nil {
		return nil, err
	}
	if detection.Width == probe.WidthUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnknownABI, library.lib.Path())
	}

	table := symtab.New()
	bound, err := table.Populate(library.lib, detection.Suffix, detection.Width)
	if err != nil {
		return nil, fmt.Errorf("blastramp: populate symbol table for %s: %w", library.lib.Path(), err)
	}
	library.debug("symbol table populated", "routines", bound, "width", detection.Width.String())
	return table, nil
}

// Close unloads the library. Detection results remain valid as values but
// any resolved addresses become invalid.
func (library *Library) Close() error {
	return library.lib.Close()
}

func (library *Library) debug(msg string, args ...any) {
	if library.log != nil {
		library.log.Debug(msg, args...)
	}
}
