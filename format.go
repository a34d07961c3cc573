package ball

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// String returns a human-readable representation of x in the form
// "(midpoint +/- radius)". Each part is rendered in base 10 from the
// minimal digit string that round-trips at the precision the value holds,
// with a radix point after the first significant digit and a trailing
// e<exponent> when the decimal exponent is nonzero. Zero is rendered as
// "0" with no exponent, infinities as "inf" or "-inf".
//
// Since every operation rounds the midpoint to the ball's stored
// precision, the digit count follows the stored precision.
func (x *Ball) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	writeFloat(&sb, x.renderMid())
	sb.WriteString(" +/- ")
	writeFloat(&sb, &x.rad.f)
	sb.WriteByte(')')
	return sb.String()
}

// renderMid returns the midpoint at x's stored precision when that
// preserves the value exactly, so the rendered digit count follows the
// stored precision. Midpoints set exactly from wide scalars can need more
// bits than the stored precision; those keep their storage precision.
// x is not mutated.
func (x *Ball) renderMid() *big.Float {
	prec := x.Prec()
	if x.mid.Prec() == prec || x.mid.MinPrec() > prec {
		return &x.mid
	}
	return new(big.Float).SetPrec(prec).Set(&x.mid)
}

// Append appends the string form of x to buf and returns the extended
// buffer.
func (x *Ball) Append(buf []byte) []byte {
	return append(buf, x.String()...)
}

// Format implements fmt.Formatter. It accepts the 'v' and 's' verbs.
func (x *Ball) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		_, _ = s.Write([]byte(x.String()))
	default:
		fmt.Fprintf(s, "%%!%c(*ball.Ball=%s)", verb, x.String())
	}
}

// writeFloat renders f as a decimal digit string with the radix point
// after the first significant digit and the decimal exponent appended.
func writeFloat(sb *strings.Builder, f *big.Float) {
	if f.IsInf() {
		if f.Signbit() {
			sb.WriteString("-inf")
			return
		}
		sb.WriteString("inf")
		return
	}
	if f.Sign() == 0 {
		sb.WriteByte('0')
		return
	}
	// A negative digit count selects the minimal digits that round-trip
	// at f's precision. The 'e' form is d.ddd with a decimal exponent,
	// which is already the layout wanted; only the exponent needs
	// normalizing.
	t := f.Text('e', -1)
	mant, expStr, _ := strings.Cut(t, "e")
	exp, _ := strconv.Atoi(expStr)
	sb.WriteString(mant)
	if exp != 0 {
		sb.WriteByte('e')
		sb.WriteString(strconv.Itoa(exp))
	}
}
