package argh

import (
	"errors"
	"strconv"
	"time"
)

// Codec converts between a command line token and a typed value. Decode
// errors must be *ConversionError so the parser can classify and report
// them; Render must format values with enough fidelity for help text
// display.
type Codec[T any] struct {
	Decode func(token string) (T, error)
	Render func(value T) string

	// Flag marks presence-only codecs. Decode ignores its token and the
	// parser never consumes a lookahead value for the parameter.
	Flag bool
}

// Built-in codecs

// BoolCodec is the presence-only flag codec. Decode always yields true;
// there is no --flag=false form.
func BoolCodec() Codec[bool] {
	return Codec[bool]{
		Decode: func(string) (bool, error) { return true, nil },
		Render: strconv.FormatBool,
		Flag:   true,
	}
}

// IntCodec decodes signed integers. Base prefixes are honored (0x, 0o, 0b).
func IntCodec() Codec[int] {
	return Codec[int]{
		Decode: func(token string) (int, error) {
			n, err := strconv.ParseInt(token, 0, strconv.IntSize)
			if err != nil {
				return 0, conversionError(err)
			}
			return int(n), nil
		},
		Render: strconv.Itoa,
	}
}

// Int64Codec decodes 64-bit signed integers.
func Int64Codec() Codec[int64] {
	return Codec[int64]{
		Decode: func(token string) (int64, error) {
			n, err := strconv.ParseInt(token, 0, 64)
			if err != nil {
				return 0, conversionError(err)
			}
			return n, nil
		},
		Render: func(v int64) string { return strconv.FormatInt(v, 10) },
	}
}

// UintCodec decodes unsigned integers.
func UintCodec() Codec[uint] {
	return Codec[uint]{
		Decode: func(token string) (uint, error) {
			n, err := strconv.ParseUint(token, 0, strconv.IntSize)
			if err != nil {
				return 0, conversionError(err)
			}
			return uint(n), nil
		},
		Render: func(v uint) string { return strconv.FormatUint(uint64(v), 10) },
	}
}

// FloatCodec decodes 64-bit floating point values.
func FloatCodec() Codec[float64] {
	return Codec[float64]{
		Decode: func(token string) (float64, error) {
			f, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return 0, conversionError(err)
			}
			return f, nil
		},
		Render: func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
	}
}

// StringCodec decodes strings. It never fails; the token is the value.
func StringCodec() Codec[string] {
	return Codec[string]{
		Decode: func(token string) (string, error) { return token, nil },
		Render: func(v string) string { return v },
	}
}

// DurationCodec decodes time.Duration values in Go's duration syntax
// (for example "1h30m" or "250ms").
func DurationCodec() Codec[time.Duration] {
	return Codec[time.Duration]{
		Decode: func(token string) (time.Duration, error) {
			d, err := time.ParseDuration(token)
			if err != nil {
				return 0, &ConversionError{Kind: ErrorTypeInvalidArgument, Details: err.Error()}
			}
			return d, nil
		},
		Render: time.Duration.String,
	}
}

// conversionError classifies a strconv failure, preserving the primitive's
// diagnostic text verbatim.
func conversionError(err error) *ConversionError {
	kind := ErrorTypeInvalidArgument
	if errors.Is(err, strconv.ErrRange) {
		kind = ErrorTypeOutOfRange
	}
	return &ConversionError{Kind: kind, Details: err.Error()}
}

// codecFor resolves the built-in codec for T. The built-in set is the one
// the engine ships with; callers extend it per parameter via ArgWith.
func codecFor[T any]() (Codec[T], bool) {
	var zero T
	var c any
	switch any(zero).(type) {
	case bool:
		c = BoolCodec()
	case int:
		c = IntCodec()
	case int64:
		c = Int64Codec()
	case uint:
		c = UintCodec()
	case float64:
		c = FloatCodec()
	case string:
		c = StringCodec()
	case time.Duration:
		c = DurationCodec()
	default:
		return Codec[T]{}, false
	}
	cc, ok := c.(Codec[T])
	return cc, ok
}
