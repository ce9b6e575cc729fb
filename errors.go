// SPDX-License-Identifier: MIT
// Source: github.com/arnau/lizard

package lizard

import (
	"errors"
	"fmt"
)

// Package errors. Decoder failures wrap exactly one of ErrTruncated, ErrInvalidOffset
// or ErrSizeMismatch inside a *DecodeError.
var (
	ErrHeaderMismatch = errors.New("wrong mozlz4 magic header")
	ErrTruncated      = errors.New("unexpected end of compressed input")
	ErrInvalidOffset  = errors.New("invalid match offset")
	ErrSizeMismatch   = errors.New("decoded size does not match declared size")
	ErrSizeLimit      = errors.New("declared size exceeds limit")
	ErrNilReader      = errors.New("reader is nil")
)

// DecodeError reports where in the compressed block decoding stopped.
type DecodeError struct {
	Kind   error  // ErrTruncated, ErrInvalidOffset or ErrSizeMismatch.
	Pos    int    // Offset into the compressed block.
	Detail string // What was being decoded.
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %s at input offset %d", e.Kind, e.Detail, e.Pos)
}

func (e *DecodeError) Unwrap() error {
	return e.Kind
}

func decodeError(kind error, pos int, format string, args ...any) error {
	return &DecodeError{Kind: kind, Pos: pos, Detail: fmt.Sprintf(format, args...)}
}
