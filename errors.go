package bzbcodec

import "github.com/chronos-tachyon/bzbcodec/codecerr"

// Error kinds, re-exported from package codecerr.
var (
	ErrConfiguration = codecerr.ErrConfiguration
	ErrDecode        = codecerr.ErrDecode
	ErrEncode        = codecerr.ErrEncode
)
