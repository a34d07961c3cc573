package math

import (
	"math/big"

	"github.com/ballarith/ball"
)

// maxArgExp bounds the midpoint magnitude accepted for argument
// reduction. Above 2**30, reducing mod 2π costs more precision than any
// use of the result and Cos falls back to the trivial enclosure.
const maxArgExp = 30

// Cos sets z to the cosine of the ball x, carried out at x's precision,
// and returns z. z takes x's precision. The radius of z covers the input
// radius (cosine is 1-Lipschitz), the series truncation and the final
// rounding, so z encloses the cosine of every value enclosed by x.
//
// An infinite midpoint yields the indeterminate ball 0 ± Inf. Inputs with
// an infinite radius, a radius of 4 or more, or a midpoint magnitude
// above 2**30 yield the trivial enclosure 0 ± 1.
func Cos(z, x *ball.Ball) *ball.Ball {
	prec := x.Prec()
	mid, rad := x.Mid(), x.Rad()
	if mid.IsInf() {
		z.Set(x)
		z.Mid().SetInt64(0)
		z.Rad().SetInf(false)
		return z
	}
	if rad.IsInf() || rad.Cmp(four) >= 0 || (mid.Sign() != 0 && mid.MantExp(nil) > maxArgExp) {
		// cos ranges over [-1, 1] no matter the argument.
		z.Set(x)
		z.Mid().SetInt64(0)
		z.Rad().SetInt64(1)
		return z
	}

	pp := prec + guardBits
	r := reduce(float(pp).Set(mid), pp)
	c := cosSeries(r, pp)

	z.Set(x)
	zm := z.Mid()
	zm.SetPrec(prec).Set(c)
	zr := z.Rad()
	// The input radius transfers with Lipschitz constant 1; add the final
	// rounding (|cos| ≤ 1, so at most 2**-prec) and the series truncation
	// and reduction slack.
	ulp := new(big.Float).SetInt64(1)
	zr.Add(zr, ulp.SetMantExp(ulp, -int(prec)))
	zr.Add(zr, ulp.SetMantExp(ulp.SetInt64(1), -int(prec)-8))
	return z
}

// reduce brings v into [-π, π] by subtracting the nearest multiple of 2π.
// |v| must be below 2**(maxArgExp+1).
func reduce(v *big.Float, prec uint) *big.Float {
	if v.Sign() == 0 || v.MantExp(nil) <= 1 {
		return v // |v| ≤ 2 < π
	}
	// Enough working precision to absorb the quotient magnitude.
	wp := prec + maxArgExp + guardBits
	pi2 := float(wp).Add(piFloat(wp), piFloat(wp))
	q := float(wp).Quo(v, pi2)
	if q.Signbit() {
		q.Sub(q, half)
	} else {
		q.Add(q, half)
	}
	n, _ := q.Int(nil)
	if n.Sign() == 0 {
		return v
	}
	t := float(wp).SetInt(n)
	return float(wp).Sub(v, t.Mul(t, pi2))
}

// cosSeries evaluates cos r by its Taylor series at prec bits. |r| must
// not exceed π. The alternating tail is bounded by the first term
// dropped, below 2**-prec.
func cosSeries(r *big.Float, prec uint) *big.Float {
	var (
		rr   = float(prec).Mul(r, r)
		term = float(prec).SetInt64(1)
		sum  = float(prec).SetInt64(1)
		t    = float(prec)
		k    = int64(0)
		neg  = true
	)
	for {
		k += 2
		term.Mul(term, rr)
		term.Quo(term, t.SetInt64(k*(k-1)))
		if term.Sign() == 0 || term.MantExp(nil) < -int(prec) {
			break
		}
		if neg {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		neg = !neg
	}
	return sum
}
