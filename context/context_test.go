package context_test

import (
	"testing"

	"github.com/ballarith/ball"
	"github.com/ballarith/ball/context"
	"github.com/stretchr/testify/require"
)

func TestContextChain(t *testing.T) {
	c := context.New(100)
	sum := c.Add(new(ball.Ball), c.NewString("0.1"), c.NewString("0.2"))
	require.NoError(t, c.Err())
	require.Equal(t, uint(100), sum.Prec())
	require.InDelta(t, 0.3, sum.MidFloat64(), 1e-15)
	require.NotEqual(t, 0.0, sum.RadFloat64())
}

func TestContextDefaultPrec(t *testing.T) {
	c := context.New(0)
	require.NoError(t, c.Err())
	require.Equal(t, uint(ball.DefaultPrec), c.Prec())
	z := c.NewFloat64(1.5)
	require.NoError(t, c.Err())
	require.Equal(t, uint(ball.DefaultPrec), z.Prec())
}

func TestContextBadPrec(t *testing.T) {
	c := context.New(-1)
	err := c.Err()
	require.Error(t, err)
	require.True(t, ball.ErrInvalidPrecision.Has(err))
	// The error was cleared; the context is usable again.
	require.NoError(t, c.Err())
	c.SetPrec(64)
	require.NoError(t, c.Err())
	require.Equal(t, uint(64), c.Prec())
}

func TestContextCapturesErrors(t *testing.T) {
	c := context.New(53)
	x := c.NewString("bogus")
	// Further operations are no-ops until the error is checked.
	z := c.Add(new(ball.Ball), x, c.NewInt64(1))
	require.Equal(t, 0.0, z.MidFloat64())

	err := c.Err()
	require.Error(t, err)
	require.True(t, ball.ErrInvalidArgument.Has(err))
	require.NoError(t, c.Err())

	// A failed factory returns a zero ball rather than nil.
	require.NotNil(t, x)
	require.Equal(t, 0.0, x.MidFloat64())
}

func TestContextOps(t *testing.T) {
	c := context.New(64)
	x := c.NewInt64(6)
	y := c.NewFloat64(1.5)

	require.Equal(t, 4.5, c.Sub(new(ball.Ball), x, y).MidFloat64())
	require.Equal(t, 9.0, c.Mul(new(ball.Ball), x, y).MidFloat64())
	require.Equal(t, -6.0, c.Neg(new(ball.Ball), x).MidFloat64())
	require.NoError(t, c.Err())

	z := c.AddError(c.NewInt64(1), 0.5)
	require.Equal(t, 0.5, z.RadFloat64())
	require.NoError(t, c.Err())

	c.AddError(z, -1)
	require.Error(t, c.Err())
	require.Equal(t, 0.5, z.RadFloat64())
}

func TestContextStampsPrecision(t *testing.T) {
	c := context.New(20)
	x := ball.New(1) // DefaultPrec
	y := ball.New(2)
	z := c.Add(new(ball.Ball), x, y)
	require.NoError(t, c.Err())
	require.Equal(t, uint(20), z.Prec())
	require.Equal(t, 3.0, z.MidFloat64())
}
