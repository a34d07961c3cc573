package ball

import "math/big"

// Exponent range applied to parsed values. Exponents are as returned by
// big.Float.MantExp: x = m × 2**exp with 0.5 ≤ |m| < 1.
var (
	expMin = big.MinExp
	expMax = big.MaxExp
)

// SetExpRange bounds the binary exponent range of parsed values,
// mirroring the configurable exponent bounds of IEEE-style formats.
// Values whose magnitude falls below the range fail with ErrUnderflow;
// values above it round to infinity. The range applies process-wide, to
// parsing only, and must not be changed concurrently with it.
func SetExpRange(min, max int) error {
	if min >= max || min < big.MinExp || max > big.MaxExp {
		return ErrInvalidArgument.New("invalid exponent range [%d, %d]", min, max)
	}
	expMin, expMax = min, max
	return nil
}

// ExpRange returns the exponent range applied to parsed values.
func ExpRange() (min, max int) {
	return expMin, expMax
}

// Parse returns the Ball denoted by the decimal literal s at the given
// precision. See SetString for the accepted syntax and the enclosure
// guarantee; see SetPrec for the valid precision range.
func Parse(s string, prec int) (*Ball, error) {
	z := new(Ball)
	if err := z.SetPrec(prec); err != nil {
		return nil, err
	}
	if _, err := z.SetString(s); err != nil {
		return nil, err
	}
	return z, nil
}

// SetString sets z to the value of the floating-point literal s with the
// midpoint rounded to nearest at z's precision and a radius that
// rigorously encloses the exact value s denotes: if rounding was inexact,
// the radius is the distance from the midpoint to the adjacent
// representable value in the direction of the exact value. The entire
// string must be consumed; a prefix match fails with ErrInvalidArgument.
// s may denote an infinity ("inf", "-Inf", ...), in which case the radius
// is zero; error bounds on an infinite value are meaningless.
//
// A finite value whose magnitude rounds beyond the configured exponent
// range becomes an infinity of the same sign; one that rounds below it
// fails with ErrUnderflow, as does a value or error bound too small for
// the range.
//
// On failure z is unchanged and the returned *Ball is nil.
func (z *Ball) SetString(s string) (*Ball, error) {
	prec := z.Prec()
	m := newFloat(prec)
	if _, ok := m.SetString(s); !ok {
		return nil, ErrInvalidArgument.New("malformed floating-point literal %q", s)
	}
	acc := m.Acc()
	var r mag
	switch {
	case m.IsInf():
		// keep the zero radius
	case m.Sign() == 0:
		if acc != big.Exact {
			// A nonzero value rounded to zero magnitude.
			return nil, ErrUnderflow.New("%q underflows the exponent range", s)
		}
	default:
		if e := m.MantExp(nil); e < expMin {
			return nil, ErrUnderflow.New("%q underflows the exponent range", s)
		} else if e > expMax {
			m.SetInf(m.Signbit())
			break
		}
		if acc != big.Exact {
			step := ulpStep(m, prec, acc == big.Below)
			if step.MantExp(nil) < expMin {
				return nil, ErrUnderflow.New("error bound for %q underflows the exponent range", s)
			}
			r.setFloat(step)
		}
	}
	z.mid.Copy(m)
	z.rad.set(&r)
	z.prec = uint32(prec)
	return z, nil
}

// ulpStep returns the distance from x to the adjacent representable value
// at the given precision: above x if up is true, below it otherwise. x
// must be finite and nonzero. The distance is one unit in the last place,
// halved when the step toward zero crosses a power of two.
func ulpStep(x *big.Float, prec uint, up bool) *big.Float {
	e := x.MantExp(nil) - int(prec)
	towardZero := up == (x.Sign() < 0)
	if towardZero && x.MinPrec() == 1 {
		e--
	}
	s := new(big.Float).SetInt64(1)
	return s.SetMantExp(s, e)
}
