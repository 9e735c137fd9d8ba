//go:build !deepbindless || (!linux && !darwin)

package probe

// Hosts that can isolate symbol namespaces from the probe target do not
// need the lsame stand-in; the guard is a no-op.
func installFakeLsame() (restore func()) {
	return func() {}
}
