//go:build !f2c

package probe

// DetectF2C is compiled out without the f2c build tag and always reports
// ConventionUnknown.
func (p *Prober) DetectF2C(Resolver, string) Convention {
	return ConventionUnknown
}
