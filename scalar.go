package ball

import "math/big"

// Scalar is the closed set of machine numeric types Balls interoperate
// with. Scalars always enter an operation exactly; construction from a
// Scalar is never rounded. Types outside this set do not interoperate:
// there is no implicit widening or truncation.
type Scalar interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// New returns a Ball with midpoint set to the exact value of v, a zero
// radius, and the default precision.
func New[T Scalar](v T) *Ball {
	z := new(Ball)
	z.setScalar(v)
	return z
}

// NewPrec is like New, but rounds the midpoint to nearest at prec bits
// and makes prec the Ball's precision. If the rounding is inexact, the
// radius is widened by one unit in the last place so that the exact value
// of v stays enclosed. NewPrec fails with ErrInvalidPrecision if prec is
// outside [MinPrec, MaxPrec].
func NewPrec[T Scalar](v T, prec int) (*Ball, error) {
	z := New(v)
	if err := z.SetPrec(prec); err != nil {
		return nil, err
	}
	z.mid.SetPrec(uint(prec))
	if z.mid.Acc() != big.Exact {
		z.rad.addUlp(&z.mid, uint(prec))
	}
	return z, nil
}

// setScalar sets z to the exact value of v, dispatching over the three
// scalar kinds: signed integer, unsigned integer, floating point.
func (z *Ball) setScalar(v any) {
	switch v := v.(type) {
	case int:
		z.SetInt64(int64(v))
	case int8:
		z.SetInt64(int64(v))
	case int16:
		z.SetInt64(int64(v))
	case int32:
		z.SetInt64(int64(v))
	case int64:
		z.SetInt64(v)
	case uint:
		z.SetUint64(uint64(v))
	case uint8:
		z.SetUint64(uint64(v))
	case uint16:
		z.SetUint64(uint64(v))
	case uint32:
		z.SetUint64(uint64(v))
	case uint64:
		z.SetUint64(v)
	case float32:
		z.SetFloat64(float64(v))
	case float64:
		z.SetFloat64(v)
	default:
		panic("unreachable")
	}
}

// scalarFloat returns the exact value of v as a big.Float.
func scalarFloat(v any) *big.Float {
	f := new(big.Float).SetPrec(64)
	switch v := v.(type) {
	case int:
		f.SetInt64(int64(v))
	case int8:
		f.SetInt64(int64(v))
	case int16:
		f.SetInt64(int64(v))
	case int32:
		f.SetInt64(int64(v))
	case int64:
		f.SetInt64(v)
	case uint:
		f.SetUint64(uint64(v))
	case uint8:
		f.SetUint64(uint64(v))
	case uint16:
		f.SetUint64(uint64(v))
	case uint32:
		f.SetUint64(uint64(v))
	case uint64:
		f.SetUint64(v)
	case float32:
		f.SetFloat64(float64(v))
	case float64:
		f.SetFloat64(v)
	default:
		panic("unreachable")
	}
	return f
}
