package ball

import "github.com/zeebo/errs"

// Error classes returned by operations in this package. All errors are
// raised synchronously by the call that detects them; none are transient.
var (
	// ErrInvalidPrecision marks precision arguments that are not positive
	// or fall outside [MinPrec, MaxPrec].
	ErrInvalidPrecision = errs.Class("invalid precision")

	// ErrInvalidArgument marks malformed decimal literals and invalid
	// error-injection values.
	ErrInvalidArgument = errs.Class("invalid argument")

	// ErrUnderflow marks conversions whose result, or whose error bound,
	// falls below the configured exponent range.
	ErrUnderflow = errs.Class("underflow")
)
