//go:build f2c

package probe

// DetectF2C classifies the return-value convention of single-precision
// functions by computing sdot({0.5}, {0.5}) and reading the result bits
// under both conventions. Whichever interpretation yields exactly 0.25
// decides; matching neither, or a missing sdot, is ConventionUnknown.
//
// Compiled in only under the f2c build tag; hosts that never meet
// f2c-translated libraries build without it.
func (p *Prober) DetectF2C(r Resolver, suffix string) Convention {
	addr, ok := r.Lookup("sdot_" + suffix)
	if !ok {
		return ConventionUnknown
	}
	b := p.binder()

	x := [1]float32{0.5}
	y := [1]float32{0.5}
	n := int64(1)
	incx := int64(1)
	incy := int64(1)

	plain := b.Sdot(addr)(&n, &x[0], &incx, &y[0], &incy)
	wide := b.SdotWide(addr)(&n, &x[0], &incx, &y[0], &incy)

	p.debug("sdot probe", "plain", plain, "wide", wide)
	if plain == 0.25 {
		return ConventionPlain
	}
	if wide == 0.25 {
		return ConventionF2C
	}
	return ConventionUnknown
}
