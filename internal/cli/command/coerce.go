package command

import (
	"errors"
	"strconv"
)

var (
	trueTokens  = map[string]struct{}{"true": {}, "yes": {}, "1": {}, "t": {}, "y": {}}
	falseTokens = map[string]struct{}{"false": {}, "no": {}, "0": {}, "f": {}, "n": {}}
)

var errNotBool = errors.New("not a boolean")

// Value is one coerced argument.
type Value struct {
	Param Param
	Raw   string

	str string
	i   int64
	f   float64
	b   bool
}

// Any returns the typed value: string, int64, float64 or bool.
func (v Value) Any() any {
	switch v.Param.Kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		return v.str
	}
}

// coerce converts raw to p's kind. A failure is returned as a value, never a
// panic, so Bind can stop at the first bad token.
func coerce(p Param, raw string) (Value, error) {
	v := Value{Param: p, Raw: raw}
	switch p.Kind {
	case KindString:
		v.str = raw
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, &ArgumentTypeError{Param: p, Given: raw, Err: err}
		}
		v.i = n
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, &ArgumentTypeError{Param: p, Given: raw, Err: err}
		}
		v.f = f
	case KindBool:
		b, err := parseBool(raw)
		if err != nil {
			return Value{}, &ArgumentTypeError{Param: p, Given: raw, Err: err}
		}
		v.b = b
	default:
		return Value{}, &ArgumentTypeError{Param: p, Given: raw, Err: errors.New("unknown kind")}
	}
	return v, nil
}

// parseBool matches the literal sets case-sensitively first, then falls back
// to strconv.ParseBool, which also takes "TRUE", "True", "F" and friends.
// Anything else is rejected rather than guessed.
func parseBool(raw string) (bool, error) {
	if _, ok := trueTokens[raw]; ok {
		return true, nil
	}
	if _, ok := falseTokens[raw]; ok {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errNotBool
	}
	return b, nil
}
