package ball

import (
	"math"
	"math/big"
)

// Precision limits, in bits.
const (
	// DefaultPrec is the precision of Balls that have not been given an
	// explicit one: the significand width of a float64.
	DefaultPrec = 53

	// MinPrec and MaxPrec bound the valid precision range. MaxPrec is
	// memory-limited in practice.
	MinPrec = 1
	MaxPrec = math.MaxUint32
)

// A Ball represents a real number as a floating-point ball: a midpoint m
// and a radius r such that the represented value lies in [m-r, m+r],
// together with a working precision in bits.
//
// The zero value for a Ball represents 0 ± 0 at DefaultPrec.
type Ball struct {
	mid  big.Float
	rad  mag
	prec uint32 // 0 means DefaultPrec
}

// newFloat returns a big.Float of the given precision, rounding to
// nearest.
func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

// Prec returns the working precision of x in bits.
func (x *Ball) Prec() uint {
	if x.prec == 0 {
		return DefaultPrec
	}
	return uint(x.prec)
}

// SetPrec sets the working precision of z to prec bits. The midpoint is
// not re-rounded: precision only governs subsequent operations that
// produce z. SetPrec fails with ErrInvalidPrecision if prec is outside
// [MinPrec, MaxPrec], in which case z is unchanged.
func (z *Ball) SetPrec(prec int) error {
	if prec < MinPrec || int64(prec) > int64(MaxPrec) {
		return ErrInvalidPrecision.New("precision %d out of range [%d, %d]", prec, MinPrec, int64(MaxPrec))
	}
	z.prec = uint32(prec)
	return nil
}

// Set sets z to a deep copy of x and returns z. z and x have independent
// storage afterwards.
func (z *Ball) Set(x *Ball) *Ball {
	if z != x {
		z.mid.Copy(&x.mid)
		z.rad.set(&x.rad)
		z.prec = x.prec
	}
	return z
}

// SetInt64 sets z to the exact value x, with a zero radius, and resets
// z's precision to DefaultPrec.
func (z *Ball) SetInt64(x int64) *Ball {
	z.mid.SetPrec(64).SetInt64(x)
	z.rad.setZero()
	z.prec = DefaultPrec
	return z
}

// SetUint64 sets z to the exact value x, with a zero radius, and resets
// z's precision to DefaultPrec.
func (z *Ball) SetUint64(x uint64) *Ball {
	z.mid.SetPrec(64).SetUint64(x)
	z.rad.setZero()
	z.prec = DefaultPrec
	return z
}

// SetFloat64 sets z to the exact value x, with a zero radius, and resets
// z's precision to DefaultPrec. It panics with big.ErrNaN if x is a NaN.
func (z *Ball) SetFloat64(x float64) *Ball {
	z.mid.SetPrec(64).SetFloat64(x)
	z.rad.setZero()
	z.prec = DefaultPrec
	return z
}

// Neg sets z to x with its midpoint negated and returns z. The radius is
// unchanged: the interval is symmetric around the midpoint.
func (z *Ball) Neg(x *Ball) *Ball {
	z.Set(x)
	z.mid.Neg(&z.mid)
	return z
}

// Swap exchanges the full state of x and y: midpoint and radius storage
// and precision. Swapping a Ball with itself is a no-op.
func (x *Ball) Swap(y *Ball) {
	if x == y {
		return
	}
	x.mid, y.mid = y.mid, x.mid
	x.rad, y.rad = y.rad, x.rad
	x.prec, y.prec = y.prec, x.prec
}

// AddError widens the radius of z by e. An infinite e yields an infinite
// radius, representing a completely unknown value. AddError fails with
// ErrInvalidArgument if e is negative or NaN, in which case z is
// unchanged.
func (z *Ball) AddError(e float64) error {
	if math.IsNaN(e) || e < 0 {
		return ErrInvalidArgument.New("error value must be non-negative and not NaN, got %v", e)
	}
	z.rad.addFloat64(e)
	return nil
}

// setIndeterminate sets z to the ball enclosing every real number,
// 0 ± Inf, at the given precision.
func (z *Ball) setIndeterminate(prec uint) *Ball {
	z.mid.SetPrec(prec).SetInt64(0)
	z.rad.setInf()
	z.prec = uint32(prec)
	return z
}

// Sign returns:
//
//	-1 if the midpoint of x is < 0
//	 0 if the midpoint of x is ±0
//	+1 if the midpoint of x is > 0
func (x *Ball) Sign() int {
	return x.mid.Sign()
}

// Signbit reports whether the midpoint of x is negative or negative zero.
func (x *Ball) Signbit() bool {
	return x.mid.Signbit()
}

// IsFinite reports whether the midpoint of x is neither +Inf nor -Inf.
func (x *Ball) IsFinite() bool {
	return !x.mid.IsInf()
}

// Mid returns a reference to the midpoint storage of x. The reference
// stays valid until the next operation on x; writing through it writes
// into x. It exists for code that needs to drive the underlying primitive
// directly, such as the math subpackage.
func (x *Ball) Mid() *big.Float {
	return &x.mid
}

// Rad returns a reference to the radius storage of x. The value is never
// negative and its rounding mode is ToPositiveInf, so that arithmetic
// performed through the reference keeps the radius an upper bound. The
// same caveats as for Mid apply.
func (x *Ball) Rad() *big.Float {
	return x.rad.ref()
}

// Midpoint returns an owned copy of the midpoint of x.
func (x *Ball) Midpoint() *big.Float {
	return new(big.Float).Copy(&x.mid)
}

// Radius returns an owned copy of the radius of x.
func (x *Ball) Radius() *big.Float {
	return x.rad.float()
}

// MidFloat64 returns the midpoint of x as the nearest float64 rounded
// toward negative infinity, so that an interval rebuilt from MidFloat64
// and RadFloat64 still encloses x.
func (x *Ball) MidFloat64() float64 {
	f, acc := x.mid.Float64()
	if acc == big.Above {
		f = math.Nextafter(f, math.Inf(-1))
	}
	return f
}

// RadFloat64 returns the radius of x as a float64 rounded up.
func (x *Ball) RadFloat64() float64 {
	return x.rad.float64()
}
