package ball

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMagZeroValue(t *testing.T) {
	var m mag
	require.True(t, m.isZero())
	require.False(t, m.isInf())
	require.Equal(t, 0.0, m.float64())
}

func TestMagRoundsUp(t *testing.T) {
	// Every step rounds away from zero, so the accumulated bound can only
	// overshoot the exact sum.
	var m mag
	for i := 0; i < 10; i++ {
		m.addFloat64(0.1)
	}
	require.Greater(t, m.float64(), 1.0)
}

func TestMagAdd2Exp(t *testing.T) {
	var m mag
	m.add2Exp(-5)
	require.Equal(t, 0.03125, m.float64())
	m.add2Exp(-5)
	require.Equal(t, 0.0625, m.float64())
}

func TestMagAddUlp(t *testing.T) {
	var m mag
	x := new(big.Float).SetFloat64(1.5) // exponent 1
	m.addUlp(x, 53)
	require.Equal(t, math.Ldexp(1, -52), m.float64())

	// Zero and infinity contribute nothing.
	before := m.float64()
	m.addUlp(new(big.Float), 53)
	m.addUlp(new(big.Float).SetInf(false), 53)
	require.Equal(t, before, m.float64())
}

func TestMagSetProdUpperBound(t *testing.T) {
	// The scalar is truncated to the radius precision rounding up, so the
	// product stays an upper bound of |s|·x.
	var m, x mag
	x.addFloat64(1)
	s := new(big.Float).SetFloat64(1.0 / 3.0)
	m.setProd(s, &x)
	f, _ := s.Float64()
	require.GreaterOrEqual(t, m.float64(), f)

	m.setProd(new(big.Float).SetFloat64(-2), &x)
	require.Equal(t, 2.0, m.float64())
}

func TestMagInf(t *testing.T) {
	var m mag
	m.addFloat64(math.Inf(1))
	require.True(t, m.isInf())
	require.True(t, math.IsInf(m.float64(), 1))

	// Adding to an infinite magnitude keeps it infinite.
	m.addFloat64(1)
	require.True(t, m.isInf())
}
