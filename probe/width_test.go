package probe_test

import (
	"testing"
	"unsafe"

	"github.com/blastramp/blastramp/probe"
)

// fakeBinder substitutes Go closures for the foreign-call boundary. The
// closures receive the very pointers the prober crafts, so they can
// emulate how a 32-bit or 64-bit library would read and write the same
// memory.
type fakeBinder struct {
	isamax   probe.IsamaxFunc
	dpotrf   probe.DpotrfFunc
	sdot     probe.SdotFunc
	sdotWide probe.SdotWideFunc
}

func (b fakeBinder) Isamax(uintptr) probe.IsamaxFunc     { return b.isamax }
func (b fakeBinder) Dpotrf(uintptr) probe.DpotrfFunc     { return b.dpotrf }
func (b fakeBinder) Sdot(uintptr) probe.SdotFunc         { return b.sdot }
func (b fakeBinder) SdotWide(uintptr) probe.SdotWideFunc { return b.sdotWide }

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func scanMax(x *float32, n int) int64 {
	xs := unsafe.Slice(x, n)
	best := 1
	for i := 2; i <= n; i++ {
		if abs32(xs[i-1]) > abs32(xs[best-1]) {
			best = i
		}
	}
	return int64(best)
}

// lp64Isamax reads only the low word of the length slot, the way a
// 32-bit library does on a little-endian machine.
func lp64Isamax(n *int64, x *float32, incx *int64) int64 {
	length := int32(uint32(uint64(*n)))
	if length < 1 {
		return 0
	}
	return scanMax(x, int(length))
}

func ilp64Isamax(n *int64, x *float32, incx *int64) int64 {
	if *n < 1 {
		return 0
	}
	return scanMax(x, int(*n))
}

// storeInt32 writes only the low word of a 64-bit slot, the way a 32-bit
// library stores its info code on a little-endian machine.
func storeInt32(slot *int64, v int32) {
	*(*int32)(unsafe.Pointer(slot)) = v
}

func lp64Dpotrf(uplo *byte, n *int64, a *float64, lda *int64, info *int64) {
	n32 := int32(uint32(uint64(*n)))
	lda32 := int32(uint32(uint64(*lda)))
	m := n32
	if m < 1 {
		m = 1
	}
	if lda32 < m {
		storeInt32(info, -4)
		return
	}
	storeInt32(info, 0)
}

func ilp64Dpotrf(uplo *byte, n *int64, a *float64, lda *int64, info *int64) {
	m := *n
	if m < 1 {
		m = 1
	}
	if *lda < m {
		*info = -4
		return
	}
	*info = 0
}

func lp64Binder() fakeBinder {
	return fakeBinder{isamax: lp64Isamax, dpotrf: lp64Dpotrf}
}

func ilp64Binder() fakeBinder {
	return fakeBinder{isamax: ilp64Isamax, dpotrf: ilp64Dpotrf}
}

func TestDetectWidthBLAS(t *testing.T) {
	r := fakeResolver{"isamax_": 1}

	cases := []struct {
		name   string
		binder probe.Binder
		want   probe.Width
	}{
		{"lp64", lp64Binder(), probe.LP64},
		{"ilp64", ilp64Binder(), probe.ILP64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &probe.Prober{Binder: tc.binder}
			if got := p.DetectWidth(r, ""); got != tc.want {
				t.Fatalf("DetectWidth = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBLASProbeLengthBitPattern(t *testing.T) {
	// The probe must hand isamax a length slot reading 3 through a
	// 32-bit view and a large negative number through a 64-bit view.
	var got uint64
	p := &probe.Prober{Binder: fakeBinder{
		isamax: func(n *int64, x *float32, incx *int64) int64 {
			got = uint64(*n)
			return 2
		},
	}}
	if width := p.DetectWidth(fakeResolver{"isamax_": 1}, ""); width != probe.LP64 {
		t.Fatalf("DetectWidth = %v, want LP64", width)
	}
	if got != 0xFFFFFFFF00000003 {
		t.Fatalf("isamax length bits = %#x, want 0xFFFFFFFF00000003", got)
	}
	if low := int32(uint32(got)); low != 3 {
		t.Fatalf("32-bit view of length = %d, want 3", low)
	}
	if wide := int64(got); wide >= 0 {
		t.Fatalf("64-bit view of length = %d, want negative", wide)
	}
}

func TestDetectWidthBLASAmbiguous(t *testing.T) {
	// Any index other than 0 or 2 is a hard unknown, never coerced.
	for _, idx := range []int64{-1, 1, 3, 7} {
		idx := idx
		p := &probe.Prober{Binder: fakeBinder{
			isamax: func(*int64, *float32, *int64) int64 { return idx },
		}}
		if got := p.DetectWidth(fakeResolver{"isamax_": 1}, ""); got != probe.WidthUnknown {
			t.Fatalf("DetectWidth with isamax=%d = %v, want WidthUnknown", idx, got)
		}
	}
}

func TestDetectWidthLAPACKFallback(t *testing.T) {
	// No isamax under this suffix: the dpotrf test decides.
	r := fakeResolver{"dpotrf_": 1}

	cases := []struct {
		name   string
		binder probe.Binder
		want   probe.Width
	}{
		{"lp64", lp64Binder(), probe.LP64},
		{"ilp64", ilp64Binder(), probe.ILP64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &probe.Prober{Binder: tc.binder}
			if got := p.DetectWidth(r, ""); got != tc.want {
				t.Fatalf("DetectWidth = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDetectWidthLAPACKAmbiguous(t *testing.T) {
	p := &probe.Prober{Binder: fakeBinder{
		dpotrf: func(uplo *byte, n *int64, a *float64, lda *int64, info *int64) {
			*info = -7
		},
	}}
	if got := p.DetectWidth(fakeResolver{"dpotrf_": 1}, ""); got != probe.WidthUnknown {
		t.Fatalf("DetectWidth with info=-7 = %v, want WidthUnknown", got)
	}
}

func TestDetectWidthNoProbeSymbol(t *testing.T) {
	p := &probe.Prober{Binder: lp64Binder()}
	if got := p.DetectWidth(fakeResolver{}, ""); got != probe.WidthUnknown {
		t.Fatalf("DetectWidth on empty library = %v, want WidthUnknown", got)
	}
}

func TestDetectWidthRespectsSuffix(t *testing.T) {
	r := fakeResolver{"isamax_64_": 1, "dpotrf_64_": 2}
	p := &probe.Prober{Binder: ilp64Binder()}
	if got := p.DetectWidth(r, "64_"); got != probe.ILP64 {
		t.Fatalf("DetectWidth(suffix 64_) = %v, want ILP64", got)
	}
	if got := p.DetectWidth(r, ""); got != probe.WidthUnknown {
		t.Fatalf("DetectWidth(suffix \"\") = %v, want WidthUnknown", got)
	}
}

// TestSubTestAgreement drives both sub-tests against the same emulated
// library and requires them to classify it identically.
func TestSubTestAgreement(t *testing.T) {
	libraries := []struct {
		name   string
		binder probe.Binder
		want   probe.Width
	}{
		{"lp64", lp64Binder(), probe.LP64},
		{"ilp64", ilp64Binder(), probe.ILP64},
	}
	for _, lib := range libraries {
		t.Run(lib.name, func(t *testing.T) {
			p := &probe.Prober{Binder: lib.binder}

			viaBLAS := p.DetectWidth(fakeResolver{"isamax_": 1}, "")
			viaLAPACK := p.DetectWidth(fakeResolver{"dpotrf_": 1}, "")

			if viaBLAS != viaLAPACK {
				t.Fatalf("sub-tests disagree: blas=%v lapack=%v", viaBLAS, viaLAPACK)
			}
			if viaBLAS != lib.want {
				t.Fatalf("classified %v, want %v", viaBLAS, lib.want)
			}
		})
	}
}
