package ball

import (
	"math"
	"math/big"
)

// magPrec is the mantissa precision of a radius, in bits. Radii are
// deliberately coarse upper bounds: all radius arithmetic rounds away
// from zero so that an enclosure can never shrink by accident.
const magPrec = 30

// A mag is a non-negative magnitude: the radius half of a Ball. The zero
// value is a mag of value 0.
type mag struct {
	f big.Float
}

// ref returns m's backing big.Float with its precision and round-up mode
// in force.
func (m *mag) ref() *big.Float {
	return m.f.SetMode(big.ToPositiveInf).SetPrec(magPrec)
}

func (m *mag) isZero() bool { return m.f.Sign() == 0 }

func (m *mag) isInf() bool { return m.f.IsInf() }

func (m *mag) setZero() *mag {
	m.ref().SetInt64(0)
	return m
}

func (m *mag) setInf() *mag {
	m.ref().SetInf(false)
	return m
}

func (m *mag) set(x *mag) *mag {
	if m != x {
		m.f.Copy(&x.f)
	}
	return m
}

// setFloat sets m to an upper bound of |x|.
func (m *mag) setFloat(x *big.Float) *mag {
	m.ref().Abs(x)
	return m
}

// add widens m by x.
func (m *mag) add(x *mag) *mag {
	m.ref().Add(&m.f, &x.f)
	return m
}

// addFloat widens m by an upper bound of |x|.
func (m *mag) addFloat(x *big.Float) *mag {
	var t big.Float
	m.ref().Add(&m.f, t.Abs(x))
	return m
}

// addFloat64 widens m by x. x must be non-negative and not NaN.
func (m *mag) addFloat64(x float64) *mag {
	if math.IsInf(x, 0) {
		return m.setInf()
	}
	var t big.Float
	m.ref().Add(&m.f, t.SetFloat64(x))
	return m
}

// add2Exp widens m by 2**e.
func (m *mag) add2Exp(e int) *mag {
	t := new(big.Float).SetInt64(1)
	t.SetMantExp(t, e)
	m.ref().Add(&m.f, t)
	return m
}

// addUlp widens m by one unit in the last place of x at the given
// precision: 2**(exp(x)-prec). x values of zero or infinity contribute
// nothing.
func (m *mag) addUlp(x *big.Float, prec uint) *mag {
	if x.Sign() == 0 || x.IsInf() {
		return m
	}
	return m.add2Exp(x.MantExp(nil) - int(prec))
}

// setProd sets m to an upper bound of |s|·x. s must be finite or x
// nonzero.
func (m *mag) setProd(s *big.Float, x *mag) *mag {
	var t big.Float
	t.SetMode(big.ToPositiveInf).SetPrec(magPrec).Abs(s)
	m.ref().Mul(&t, &x.f)
	return m
}

// mulProp sets m to |mx|·ry + |my|·rx + rx·ry: the radius of the product
// of the balls mx ± rx and my ± ry, beyond the rounding of its midpoint.
// Neither radius may be infinite.
func (m *mag) mulProp(mx, my *big.Float, rx, ry *mag) *mag {
	var t mag
	m.setZero()
	if !ry.isZero() {
		m.add(t.setProd(mx, ry))
	}
	if !rx.isZero() {
		m.add(t.setProd(my, rx))
	}
	if !rx.isZero() && !ry.isZero() {
		t.ref().Mul(&rx.f, &ry.f)
		m.add(&t)
	}
	return m
}

// float64 returns m as a float64 rounded up.
func (m *mag) float64() float64 {
	f, acc := m.f.Float64()
	if acc == big.Below {
		f = math.Nextafter(f, math.Inf(1))
	}
	return f
}

// float returns an owned copy of m's value. m is not mutated: unlike ref,
// reading through float is safe on a Ball that is never written.
func (m *mag) float() *big.Float {
	return new(big.Float).Copy(&m.f)
}
