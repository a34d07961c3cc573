// Copyright 2025 The ballarith authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides a precision-carrying wrapper around ball
// operations with deferred error handling.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *ball.Ball
//
// create a new ball.Ball set to the value of x at c's precision.
//
// Operators that set a receiver z to a function of other ball arguments
// like
//
//	func (c *Context) Binary(z, x, y *ball.Ball) *ball.Ball
//
// set z to the result of the operation and stamp z with c's precision.
//
// A Context captures errors: when an operation fails, the Context records
// the first error and every further operation through it becomes a no-op
// returning its receiver, until (*Context).Err is called to check for
// errors. This permits chaining operations and checking for failure once:
//
//	c := context.New(100)
//	sum := c.Add(new(ball.Ball), c.NewString("0.1"), c.NewString("0.2"))
//	if err := c.Err(); err != nil {
//		// handle it
//	}
package context

import "github.com/ballarith/ball"

// A Context is a wrapper around Balls that facilitates management of
// working precision and error handling.
type Context struct {
	prec uint32
	err  error
}

// New creates a new context with the given precision. If prec is 0, it is
// set to ball.DefaultPrec; an out-of-range prec is captured as the
// context's first error.
func New(prec int) *Context {
	return new(Context).SetPrec(prec)
}

// Prec returns the working precision of c in bits.
func (c *Context) Prec() uint {
	if c.prec == 0 {
		return ball.DefaultPrec
	}
	return uint(c.prec)
}

// SetPrec sets c's precision to prec and returns c. If prec is 0, it is
// set to ball.DefaultPrec. An invalid prec is captured as an error.
func (c *Context) SetPrec(prec int) *Context {
	if c.err != nil {
		return c
	}
	if prec == 0 {
		c.prec = ball.DefaultPrec
		return c
	}
	if err := new(ball.Ball).SetPrec(prec); err != nil {
		c.err = err
		return c
	}
	c.prec = uint32(prec)
	return c
}

// Err returns the first error encountered by an operation made through c
// and clears it, re-enabling further operations.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

// stamp sets z's stored precision to c's. The midpoint is not re-rounded;
// the precision governs subsequent operations only.
func (c *Context) stamp(z *ball.Ball) *ball.Ball {
	_ = z.SetPrec(int(c.Prec()))
	return z
}

// NewString returns a new Ball set to the value of the literal s at c's
// precision. On a parse failure the error is captured and a zero Ball is
// returned.
func (c *Context) NewString(s string) *ball.Ball {
	z := new(ball.Ball)
	if c.err != nil {
		return z
	}
	c.stamp(z)
	if _, err := z.SetString(s); err != nil {
		c.err = err
		return new(ball.Ball)
	}
	return z
}

// NewFloat64 returns a new Ball set to the value of x rounded to c's
// precision, with a radius covering the rounding.
func (c *Context) NewFloat64(x float64) *ball.Ball {
	if c.err != nil {
		return new(ball.Ball)
	}
	z, err := ball.NewPrec(x, int(c.Prec()))
	if err != nil {
		c.err = err
		return new(ball.Ball)
	}
	return z
}

// NewInt64 returns a new Ball set to the value of x rounded to c's
// precision, with a radius covering the rounding.
func (c *Context) NewInt64(x int64) *ball.Ball {
	if c.err != nil {
		return new(ball.Ball)
	}
	z, err := ball.NewPrec(x, int(c.Prec()))
	if err != nil {
		c.err = err
		return new(ball.Ball)
	}
	return z
}

// Add sets z to the rounded sum x+y, stamped with c's precision, and
// returns z.
func (c *Context) Add(z, x, y *ball.Ball) *ball.Ball {
	if c.err != nil {
		return z
	}
	return c.stamp(z.Add(x, y))
}

// Sub sets z to the rounded difference x-y, stamped with c's precision,
// and returns z.
func (c *Context) Sub(z, x, y *ball.Ball) *ball.Ball {
	if c.err != nil {
		return z
	}
	return c.stamp(z.Sub(x, y))
}

// Mul sets z to the rounded product x×y, stamped with c's precision, and
// returns z.
func (c *Context) Mul(z, x, y *ball.Ball) *ball.Ball {
	if c.err != nil {
		return z
	}
	return c.stamp(z.Mul(x, y))
}

// Neg sets z to x with its midpoint negated and returns z.
func (c *Context) Neg(z, x *ball.Ball) *ball.Ball {
	if c.err != nil {
		return z
	}
	return c.stamp(z.Neg(x))
}

// AddError widens the radius of z by e and returns z. An invalid e is
// captured as an error and leaves z unchanged.
func (c *Context) AddError(z *ball.Ball, e float64) *ball.Ball {
	if c.err != nil {
		return z
	}
	if err := z.AddError(e); err != nil {
		c.err = err
	}
	return z
}
