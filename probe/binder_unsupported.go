//go:build !linux && !darwin

package probe

// unsupportedBinder stands in on platforms without a foreign-call path.
// Its routines return values outside every expected bit pattern so the
// probes classify the library as unknown rather than guessing.
type unsupportedBinder struct{}

func (unsupportedBinder) Isamax(uintptr) IsamaxFunc {
	return func(*int64, *float32, *int64) int64 { return -1 }
}

func (unsupportedBinder) Dpotrf(uintptr) DpotrfFunc {
	return func(*byte, *int64, *float64, *int64, *int64) {}
}

func (unsupportedBinder) Sdot(uintptr) SdotFunc {
	return func(*int64, *float32, *int64, *float32, *int64) float32 { return 0 }
}

func (unsupportedBinder) SdotWide(uintptr) SdotWideFunc {
	return func(*int64, *float32, *int64, *float32, *int64) float64 { return 0 }
}

var defaultBinder Binder = unsupportedBinder{}
