//go:build linux || darwin

package probe

import "github.com/ebitengine/purego"

// puregoBinder binds probe addresses through purego.RegisterFunc. This is
// the only production path from a uintptr to a callable routine.
type puregoBinder struct{}

func (puregoBinder) Isamax(addr uintptr) IsamaxFunc {
	var fn IsamaxFunc
	purego.RegisterFunc(&fn, addr)
	return fn
}

func (puregoBinder) Dpotrf(addr uintptr) DpotrfFunc {
	var fn DpotrfFunc
	purego.RegisterFunc(&fn, addr)
	return fn
}

func (puregoBinder) Sdot(addr uintptr) SdotFunc {
	var fn SdotFunc
	purego.RegisterFunc(&fn, addr)
	return fn
}

func (puregoBinder) SdotWide(addr uintptr) SdotWideFunc {
	var fn SdotWideFunc
	purego.RegisterFunc(&fn, addr)
	return fn
}

var defaultBinder Binder = puregoBinder{}
