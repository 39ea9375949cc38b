package webmio

import (
	"errors"
)

var (
	ErrParse          = errors.New("webmio: parse error")
	ErrUnexpectedEOF  = errors.New("webmio: unexpected EOF")
	ErrVint           = errors.New("webmio: malformed or truncated vint")
	ErrBlockTruncated = errors.New("webmio: block shorter than vint + timecode + flags")
	ErrElementType    = errors.New("webmio: element content type mismatch")
)
