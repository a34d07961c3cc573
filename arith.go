package ball

import "math/big"

// workPrec returns the working precision for a binary operation between x
// and y: the larger of the two operand precisions.
func workPrec(x, y *Ball) uint {
	p, q := x.Prec(), y.Prec()
	if p < q {
		return q
	}
	return p
}

// Add sets z to the rounded sum x+y and returns z. The operation is
// carried out at the larger of the two operand precisions, which becomes
// z's precision. The radius of z covers the radii of both operands plus
// the rounding of the midpoint: z encloses every sum of values enclosed
// by x and y.
func (z *Ball) Add(x, y *Ball) *Ball {
	return z.addSub(x, y, false)
}

// Sub sets z to the rounded difference x-y and returns z. Precision and
// enclosure behave as for Add.
func (z *Ball) Sub(x, y *Ball) *Ball {
	return z.addSub(x, y, true)
}

func (z *Ball) addSub(x, y *Ball, sub bool) *Ball {
	prec := workPrec(x, y)
	xm, ym := &x.mid, &y.mid
	// Opposed infinite midpoints have no sum; the result is the
	// indeterminate ball.
	if xm.IsInf() && ym.IsInf() && (xm.Signbit() != ym.Signbit()) != sub {
		return z.setIndeterminate(prec)
	}
	m := newFloat(prec)
	if sub {
		m.Sub(xm, ym)
	} else {
		m.Add(xm, ym)
	}
	var r mag
	if x.rad.isInf() || y.rad.isInf() {
		r.setInf()
	} else {
		r.set(&x.rad)
		r.add(&y.rad)
		if m.Acc() != big.Exact {
			r.addUlp(m, prec)
		}
	}
	z.mid.Copy(m)
	z.rad.set(&r)
	z.prec = uint32(prec)
	return z
}

// Mul sets z to the rounded product x×y and returns z. Precision and
// enclosure behave as for Add: the radius covers |mx|·ry + |my|·rx +
// rx·ry plus the rounding of the midpoint.
func (z *Ball) Mul(x, y *Ball) *Ball {
	prec := workPrec(x, y)
	xm, ym := &x.mid, &y.mid
	// Zero times an infinite midpoint has no product.
	if (xm.IsInf() && ym.Sign() == 0) || (ym.IsInf() && xm.Sign() == 0) {
		return z.setIndeterminate(prec)
	}
	m := newFloat(prec).Mul(xm, ym)
	var r mag
	switch {
	case x.rad.isInf() || y.rad.isInf():
		r.setInf()
	case x.rad.isZero() && y.rad.isZero():
		// Exact operands: only the midpoint rounding contributes.
		if m.Acc() != big.Exact {
			r.addUlp(m, prec)
		}
	default:
		r.mulProp(xm, ym, &x.rad, &y.rad)
		if m.Acc() != big.Exact {
			r.addUlp(m, prec)
		}
	}
	z.mid.Copy(m)
	z.rad.set(&r)
	z.prec = uint32(prec)
	return z
}

// Operation selectors for the fused scalar forms.
const (
	opAdd = iota
	opSub
	opRSub
	opMul
)

// AddScalar sets z to the rounded sum x+v, carried out at x's precision,
// and returns z. The scalar enters the operation exactly: only the final
// midpoint is rounded. z takes x's precision.
func AddScalar[T Scalar](z, x *Ball, v T) *Ball {
	return z.scalarOp(x, scalarFloat(v), opAdd)
}

// SubScalar sets z to the rounded difference x-v, carried out at x's
// precision, and returns z.
func SubScalar[T Scalar](z, x *Ball, v T) *Ball {
	return z.scalarOp(x, scalarFloat(v), opSub)
}

// ScalarSub sets z to the rounded difference v-x, carried out at x's
// precision, and returns z. It is the negation of SubScalar: v - x =
// -(x - v).
func ScalarSub[T Scalar](z *Ball, v T, x *Ball) *Ball {
	return z.scalarOp(x, scalarFloat(v), opRSub)
}

// MulScalar sets z to the rounded product x×v, carried out at x's
// precision, and returns z.
func MulScalar[T Scalar](z, x *Ball, v T) *Ball {
	return z.scalarOp(x, scalarFloat(v), opMul)
}

// scalarOp performs the fused "ball op exact scalar" operations. s must
// be exact (it contributes no radius of its own).
func (z *Ball) scalarOp(x *Ball, s *big.Float, op int) *Ball {
	prec := x.Prec()
	xm := &x.mid
	switch op {
	case opAdd, opSub, opRSub:
		if xm.IsInf() && s.IsInf() && (xm.Signbit() != s.Signbit()) != (op != opAdd) {
			return z.setIndeterminate(prec)
		}
	case opMul:
		if (xm.IsInf() && s.Sign() == 0) || (s.IsInf() && xm.Sign() == 0) {
			return z.setIndeterminate(prec)
		}
	}
	m := newFloat(prec)
	switch op {
	case opAdd:
		m.Add(xm, s)
	case opSub:
		m.Sub(xm, s)
	case opRSub:
		m.Sub(s, xm)
	case opMul:
		m.Mul(xm, s)
	}
	var r mag
	switch {
	case x.rad.isInf():
		r.setInf()
	case op == opMul:
		if !x.rad.isZero() {
			r.setProd(s, &x.rad)
		}
		if m.Acc() != big.Exact {
			r.addUlp(m, prec)
		}
	default:
		r.set(&x.rad)
		if m.Acc() != big.Exact {
			r.addUlp(m, prec)
		}
	}
	z.mid.Copy(m)
	z.rad.set(&r)
	z.prec = uint32(prec)
	return z
}
