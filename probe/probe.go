// Package probe determines, by behavioral observation alone, the symbol
// mangling suffix and the integer-width ABI of a dynamically loaded
// BLAS/LAPACK library. No headers or metadata are consulted: a handful of
// well-known probe routines are resolved and invoked with inputs engineered
// so that their observable results diverge between the LP64 (32-bit integer)
// and ILP64 (64-bit integer) hypotheses.
//
// The detected contract is extrapolated to every routine the library
// exports, so classification is strict: any observation that does not match
// one of the two expected bit patterns is reported as unknown rather than
// coerced to the nearer hypothesis.
package probe

import (
	"errors"
	"sync/atomic"
)

// ErrNoProbeSymbol reports that neither probe routine could be resolved
// under any known suffix; the library is presumably not a BLAS/LAPACK
// implementation.
var ErrNoProbeSymbol = errors.New("probe: no usable probe symbol")

// Width is the integer width a library expects for its interface
// arguments (vector lengths, strides, info codes).
type Width int

const (
	WidthUnknown Width = iota
	LP64               // 32-bit interface integers
	ILP64              // 64-bit interface integers
)

func (w Width) String() string {
	switch w {
	case LP64:
		return "lp64"
	case ILP64:
		return "ilp64"
	}
	return "unknown"
}

// Convention is the return-value convention used by single-precision
// functions. Almost every modern library uses ConventionPlain; LegacyF2C
// covers toolchains that promote float returns to double, f2c style.
type Convention int

const (
	ConventionUnknown Convention = iota
	ConventionPlain
	ConventionF2C
)

func (c Convention) String() string {
	switch c {
	case ConventionPlain:
		return "plain"
	case ConventionF2C:
		return "f2c"
	}
	return "unknown"
}

// Resolver resolves an exact symbol name against one loaded library.
// There is no wildcard or prefix matching; a miss drives fallback to the
// next candidate name or an unknown classification, never an error.
type Resolver interface {
	Lookup(name string) (uintptr, bool)
}

// lsameForward is the process-wide slot the exported lsame trampoline
// forwards through. Builds that cannot isolate symbol namespaces from the
// probe target (see the deepbindless build tag) temporarily point it at a
// safe stand-in around the BLAS width probe.
var lsameForward atomic.Uintptr

// LsameForward returns the current lsame forwarding address.
func LsameForward() uintptr {
	return lsameForward.Load()
}

// SetLsameForward installs addr as the lsame forwarding address. The
// forwarding layer calls this once per library binding; the probe swaps
// the slot transiently under the deepbindless build tag.
func SetLsameForward(addr uintptr) {
	lsameForward.Store(addr)
}
