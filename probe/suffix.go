package probe

// probeStems are routine names known to exist in virtually every
// BLAS/LAPACK implementation: one BLAS symbol and one LAPACK symbol, both
// already carrying the standard FORTRAN trailing underscore.
var probeStems = []string{
	"isamax_",
	"dpotrf_",
}

// suffixes are the candidate mangling suffixes, in priority order. The
// plain LP64-style decorations come first so that a library exporting both
// conventions is classified by its primary, non-ILP64 symbol set.
var suffixes = []string{
	"", "_", "__",
	"64_", "_64__", "__64___",
}

// Suffixes returns the candidate suffix set in detection priority order.
func Suffixes() []string {
	out := make([]string, len(suffixes))
	copy(out, suffixes)
	return out
}

// DetectSuffix discovers the mangling suffix the library uses by probing
// each known stem under each candidate suffix. The first name that
// resolves, in iteration order, decides the suffix. ErrNoProbeSymbol is
// returned when no combination resolves.
func DetectSuffix(r Resolver) (string, error) {
	for _, stem := range probeStems {
		for _, suffix := range suffixes {
			if _, ok := r.Lookup(stem + suffix); ok {
				return suffix, nil
			}
		}
	}
	return "", ErrNoProbeSymbol
}
