// Copyright 2025 The ballarith authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ball implements arbitrary-precision ball arithmetic: real numbers
represented as a midpoint together with an error radius. A Ball with
midpoint m and radius r stands for some real number in the interval
[m-r, m+r], and every operation produces a Ball whose interval is
guaranteed to contain the exact mathematical result. This guarantee holds
under rounding: whenever a midpoint must be rounded, the rounding error is
folded into the radius.

The midpoint is a binary floating-point value of arbitrary precision
(big.Float); the radius is a low-precision non-negative magnitude whose
arithmetic only ever rounds up. Each Ball carries its own working
precision, in bits, which governs the midpoint rounding of the operations
that produce it. Binary operations between Balls work at the larger of the
two operand precisions.

The zero value for a Ball is ready to use and represents 0 ± 0 at the
default precision of 53 bits (the significand width of a float64).

Setters, numeric operations and predicates follow the math/big method
form:

	func (z *Ball) SetV(v V) *Ball                // z = v
	func (z *Ball) Unary(x *Ball) *Ball           // z = unary x
	func (z *Ball) Binary(x, y *Ball) *Ball       // z = x binary y
	func (x *Ball) Pred() P                       // p = pred(x)

For unary and binary operations the result is the receiver, usually named
z; if it is one of the operands it may safely be overwritten. Incoming
operands are named x, y and v, never z.

Balls interoperate with the closed set of machine numeric types described
by the Scalar constraint. A scalar operand enters an operation exactly:
it is never rounded beforehand, only the final midpoint is. Construction
from a scalar is always exact and yields a zero radius.

Balls are plain values: copies made with Set have independent storage and
mutating one Ball never affects another. No synchronization is provided; a
Ball must not be mutated concurrently.

Fallible operations (parsing, precision changes, error injection) return
errors belonging to one of the package's error classes, tested with the
class' Has method:

	if _, err := b.SetString(s); ball.ErrInvalidArgument.Has(err) {
		// malformed literal
	}

There is no NaN midpoint. Operations whose midpoint would be undefined
(Inf-Inf, 0×Inf) return the fully indeterminate ball 0 ± Inf instead, and
setting a midpoint from a NaN float panics with big.ErrNaN, as math/big
does.
*/
package ball
