// Package codecerr defines the error kinds shared by every codec in this
// module.  Errors returned by the codecs wrap exactly one of the sentinels
// below, so callers can classify them with errors.Is.
package codecerr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports an unknown codec name or an invalid bound
	// parameter.
	ErrConfiguration = errors.New("configuration error")

	// ErrDecode reports a corrupted or mismatched artifact.
	ErrDecode = errors.New("decode error")

	// ErrEncode reports an input that cannot be represented by the codec.
	ErrEncode = errors.New("encode error")
)

// Configf returns an error wrapping ErrConfiguration.
func Configf(format string, args ...interface{}) error {
	return wrap(ErrConfiguration, format, args...)
}

// Decodef returns an error wrapping ErrDecode.
func Decodef(format string, args ...interface{}) error {
	return wrap(ErrDecode, format, args...)
}

// Encodef returns an error wrapping ErrEncode.
func Encodef(format string, args ...interface{}) error {
	return wrap(ErrEncode, format, args...)
}

// IsDecode reports whether err is a decode error.
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

func wrap(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
