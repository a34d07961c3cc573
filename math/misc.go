// Package math provides transcendental functions on balls.
//
// Functions follow the conventions of the ball package: the result is the
// receiver-like first argument z, carried out at the input ball's
// precision, and the returned ball rigorously encloses the image of the
// input interval.
package math

import "math/big"

// guardBits is the extra working precision carried by internal
// evaluations before the final rounding.
const guardBits = 32

// constants
var (
	one  = new(big.Float).SetInt64(1)
	two  = new(big.Float).SetInt64(2)
	four = new(big.Float).SetInt64(4)
	half = new(big.Float).SetFloat64(0.5)
)

// float returns a big.Float of the given precision, rounding to nearest.
func float(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}
