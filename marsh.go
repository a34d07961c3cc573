// This file implements encoding/decoding of Balls.

package ball

import "strings"

// MarshalText implements encoding.TextMarshaler. The text form is the
// String rendering, "(midpoint +/- radius)".
func (x *Ball) MarshalText() ([]byte, error) {
	return x.Append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the form
// produced by MarshalText as well as a plain floating-point literal,
// parsed at z's precision. The restored ball encloses the marshaled one:
// the radius may widen by a rounding step, never narrow. On failure z is
// unchanged.
func (z *Ball) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		_, err := z.SetString(s)
		return err
	}
	ms, rs, ok := strings.Cut(s[1:len(s)-1], " +/- ")
	if !ok {
		return ErrInvalidArgument.New("malformed ball text %q", s)
	}
	// Parse both halves into scratch values; z is only written once both
	// succeed. The radius parses as a ball of its own working precision,
	// then folds its value and its parse error into z's radius.
	var m Ball
	if err := m.SetPrec(int(z.Prec())); err != nil {
		return err
	}
	if _, err := m.SetString(strings.TrimSpace(ms)); err != nil {
		return err
	}
	var r Ball
	if err := r.SetPrec(magPrec); err != nil {
		return err
	}
	if _, err := r.SetString(strings.TrimSpace(rs)); err != nil {
		return err
	}
	if r.Sign() < 0 {
		return ErrInvalidArgument.New("negative radius in %q", s)
	}
	z.Set(&m)
	z.rad.addFloat(&r.mid)
	z.rad.add(&r.rad)
	return nil
}
