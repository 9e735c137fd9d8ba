package probe

// The probe routines are invoked through raw addresses with signatures
// assumed correct by convention, not verified. Every such cast in the
// module goes through a Binder so the unchecked contract is auditable in
// one place.
//
// All pointer arguments follow the FORTRAN calling convention: scalars are
// passed by reference, and the integer width the callee actually reads
// from them is exactly the property under test. The int64 storage here is
// deliberate; a 32-bit library reads only the low word of each slot.

// IsamaxFunc is the BLAS "index of max absolute value" routine. It
// returns the 1-based index of the element of x with the largest
// magnitude, or 0 for a non-positive length.
type IsamaxFunc func(n *int64, x *float32, incx *int64) int64

// DpotrfFunc is the LAPACK Cholesky factorization routine. Invalid
// arguments make it store a negative parameter index into info instead of
// computing anything.
type DpotrfFunc func(uplo *byte, n *int64, a *float64, lda *int64, info *int64)

// SdotFunc is the BLAS single-precision dot product read with the plain
// float return convention.
type SdotFunc func(n *int64, x *float32, incx *int64, y *float32, incy *int64) float32

// SdotWideFunc reads the same routine with an f2c-style double-promoted
// return convention.
type SdotWideFunc func(n *int64, x *float32, incx *int64, y *float32, incy *int64) float64

// Binder turns raw symbol addresses into callable probe routines. The
// platform binder does this with real foreign-function bindings; tests
// substitute Go closures that emulate library behavior in process.
type Binder interface {
	Isamax(addr uintptr) IsamaxFunc
	Dpotrf(addr uintptr) DpotrfFunc
	Sdot(addr uintptr) SdotFunc
	SdotWide(addr uintptr) SdotWideFunc
}
