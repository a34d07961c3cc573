package ball

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	for _, test := range []struct {
		b    *Ball
		want string
	}{
		{New(0), "(0 +/- 0)"},
		{New(20), "(2e1 +/- 0)"},
		{New(1.5), "(1.5 +/- 0)"},
		{New(0.25), "(2.5e-1 +/- 0)"},
		{New(-0.25), "(-2.5e-1 +/- 0)"},
		{New(12345), "(1.2345e4 +/- 0)"},
		{New(-12345), "(-1.2345e4 +/- 0)"},
	} {
		require.Equal(t, test.want, test.b.String())
	}
}

func TestStringStoredPrecision(t *testing.T) {
	// Scalar-constructed midpoints are stored at 64 bits; the rendering
	// still follows the stored precision when the value fits it.
	require.Equal(t, "(2e-1 +/- 0)", New(0.2).String())

	// The scalar and parsed forms of the same value render alike.
	p, err := Parse("0.2", 53)
	require.NoError(t, err)
	ps := p.String()
	require.Equal(t, "(2e-1", ps[:strings.Index(ps, " ")])

	// A value needing more bits than the stored precision keeps them:
	// rendering never loses exactness.
	b := New(int64(1)<<60 + 1)
	require.Equal(t, "(1.152921504606846977e18 +/- 0)", b.String())
}

func TestStringDoesNotMutate(t *testing.T) {
	var b Ball
	_ = b.String()
	_ = b.Radius()
	require.Equal(t, uint(0), b.rad.f.Prec())
	require.Equal(t, big.ToNearestEven, b.rad.f.Mode())
	require.Equal(t, uint(0), b.mid.Prec())
}

func TestStringInf(t *testing.T) {
	b, err := Parse("inf", 53)
	require.NoError(t, err)
	require.Equal(t, "(inf +/- 0)", b.String())

	b, err = Parse("-inf", 53)
	require.NoError(t, err)
	require.Equal(t, "(-inf +/- 0)", b.String())

	require.NoError(t, b.AddError(math.Inf(1)))
	require.Equal(t, "(-inf +/- inf)", b.String())
}

func TestStringRadius(t *testing.T) {
	b := New(1.5)
	require.NoError(t, b.AddError(0.25))
	require.Equal(t, "(1.5 +/- 2.5e-1)", b.String())
}

func TestFormat(t *testing.T) {
	b := New(1.5)
	require.Equal(t, "(1.5 +/- 0)", fmt.Sprintf("%v", b))
	require.Equal(t, "(1.5 +/- 0)", fmt.Sprintf("%s", b))
	require.Equal(t, "%!d(*ball.Ball=(1.5 +/- 0))", fmt.Sprintf("%d", b))
}

func TestAppend(t *testing.T) {
	b := New(20)
	require.Equal(t, "x=(2e1 +/- 0)", string(b.Append([]byte("x="))))
}
