//go:build darwin

package dyld

import "errors"

// OpenImage is not available on darwin; dyld offers no fd-backed load
// path equivalent to /proc/self/fd.
func OpenImage([]byte) (*Library, error) {
	return nil, errors.New("dyld: in-memory library loading is only supported on linux")
}

func closeImageFD(int) {}
