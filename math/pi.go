package math

import (
	"math/big"

	"github.com/ballarith/ball"
)

var _pi = pi(2 * ball.DefaultPrec)

// Pi sets z to π at z's precision, with a one-ulp radius, and returns z.
// The cached value is not safe for concurrent use should it need to be
// re-computed.
func Pi(z *ball.Ball) *ball.Ball {
	prec := z.Prec()
	p := piFloat(prec)
	z.Mid().Copy(p)
	rad := z.Rad()
	rad.SetInt64(0)
	ulp := new(big.Float).SetInt64(1)
	rad.Add(rad, ulp.SetMantExp(ulp, p.MantExp(nil)-int(prec)))
	return z
}

// piFloat returns π rounded to nearest at prec bits, growing the cached
// value as needed.
func piFloat(prec uint) *big.Float {
	if _pi.Prec() < prec+guardBits {
		_pi = pi(prec + 2*guardBits)
	}
	return float(prec).Set(_pi)
}

// pi computes π to prec bits with the Gauss-Legendre algorithm.
func pi(prec uint) *big.Float {
	pp := prec + guardBits
	var (
		a = float(pp).SetInt64(1)
		b = float(pp).Quo(one, float(pp).Sqrt(two))
		t = float(pp).SetFloat64(0.25)
		p = float(pp).SetInt64(1)
		u = float(pp)
		d = float(pp)
	)
	for {
		u.Set(a)                 // a_n
		a.Mul(d.Add(a, b), half) // a_n+1
		b.Sqrt(b.Mul(u, b))      // b_n+1
		// t = t - p×(a_n - a_n+1)²
		d.Sub(u, a)
		d.Mul(d, d)
		t.Sub(t, d.Mul(d, p))
		d.Sub(a, b)
		if d.Sign() == 0 || d.MantExp(nil) < -int(pp) {
			break
		}
		p.Add(p, p)
	}
	// π = (a+b)² / 4t
	u.Add(a, b)
	u.Mul(u, u)
	d.Add(t, t)
	return float(prec).Quo(u, d.Add(d, d))
}
