//go:build deepbindless && (linux || darwin)

package probe

import (
	"sync"

	"github.com/ebitengine/purego"
)

// Without namespace isolation (RTLD_DEEPBIND or equivalent), a reference
// isamax inside the probe target can resolve lsame against the host's own
// export, which still forwards to whatever library was bound previously.
// Around the single probed call we therefore point the forwarding slot at
// a local stand-in.
//
// The slot is process-wide, so probes of distinct libraries serialize
// their swaps against each other.

var lsameSwapMu sync.Mutex

var fakeLsameAddr = sync.OnceValue(func() uintptr {
	return purego.NewCallback(func(ca *byte, cb *byte) uintptr {
		if ca == nil || cb == nil {
			return 0
		}
		if upper(*ca) == upper(*cb) {
			return 1
		}
		return 0
	})
})

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// installFakeLsame swaps the lsame forwarding slot to the stand-in and
// returns the function that restores the previous address. The restore
// runs on every exit path from the probed call and also releases the
// cross-library serialization lock.
func installFakeLsame() (restore func()) {
	lsameSwapMu.Lock()
	prev := LsameForward()
	SetLsameForward(fakeLsameAddr())
	return func() {
		SetLsameForward(prev)
		lsameSwapMu.Unlock()
	}
}
