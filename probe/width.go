package probe

import "log/slog"

// Prober runs the interface-width and calling-convention probes against a
// loaded library. The zero value uses the platform foreign-call binder and
// no logging. A Prober is stateless; the results it returns are plain
// values the caller may publish to any number of readers.
type Prober struct {
	// Binder overrides the foreign-call boundary. Nil means the
	// platform binder.
	Binder Binder
	// Logger receives debug traces of probe observations. Nil disables.
	Logger *slog.Logger
}

func (p *Prober) binder() Binder {
	if p.Binder != nil {
		return p.Binder
	}
	return defaultBinder
}

func (p *Prober) debug(msg string, args ...any) {
	if p.Logger != nil {
		p.Logger.Debug(msg, args...)
	}
}

// DetectWidth classifies the library's interface integer width under the
// given mangling suffix. The BLAS test runs when isamax resolves; the
// LAPACK test is the fallback when it does not. The two tests are
// independent and agree on any library that implements both routines
// consistently. WidthUnknown is a terminal result, not an error: it means
// the library must not be trusted for computational forwarding.
func (p *Prober) DetectWidth(r Resolver, suffix string) Width {
	if addr, ok := r.Lookup("isamax_" + suffix); ok {
		return p.blasWidth(addr)
	}
	if addr, ok := r.Lookup("dpotrf_" + suffix); ok {
		return p.lapackWidth(addr)
	}
	return WidthUnknown
}

// blasWidth invokes isamax with a length slot whose low 32 bits read as 3
// and whose full 64-bit value is hugely negative. A 32-bit library sees
// the valid length and reports the maximum of {1, 2, 1} at index 2; a
// 64-bit library sees a negative length and reports 0.
func (p *Prober) blasWidth(addr uintptr) Width {
	isamax := p.binder().Isamax(addr)

	lenBits := uint64(0xFFFFFFFF00000003)
	n := int64(lenBits)
	x := [3]float32{1.0, 2.0, 1.0}
	incx := int64(1)

	var idx int64
	func() {
		// Reference implementations of isamax may call back into
		// lsame; keep the stand-in installed for exactly this call.
		restore := installFakeLsame()
		defer restore()
		idx = isamax(&n, &x[0], &incx)
	}()

	p.debug("isamax probe", "index", idx)
	switch idx {
	case 0:
		return ILP64
	case 2:
		return LP64
	}
	return WidthUnknown
}

// lapackWidth invokes dpotrf with an invalid leading dimension so that it
// stores -4, the offending parameter index, into info. Whether the store
// fills all 64 bits of the slot or only the low word reveals the
// library's integer width.
func (p *Prober) lapackWidth(addr uintptr) Width {
	dpotrf := p.binder().Dpotrf(addr)

	uplo := byte('U')
	n := int64(2)
	var a [4]float64
	lda := int64(0)
	var info int64

	dpotrf(&uplo, &n, &a[0], &lda, &info)

	p.debug("dpotrf probe", "info", uint64(info))
	switch uint64(info) {
	case 0xFFFFFFFFFFFFFFFC:
		// A full 64-bit -4.
		return ILP64
	case 0x00000000FFFFFFFC:
		// A 32-bit -4 stored into the low half of the slot.
		return LP64
	}
	return WidthUnknown
}
