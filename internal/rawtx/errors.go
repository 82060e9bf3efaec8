package rawtx

import "errors"

var (
	// ErrMalformedEncoding is returned when a raw transaction is truncated or
	// declares a length that does not fit the remaining bytes.
	ErrMalformedEncoding = errors.New("malformed transaction encoding")
	// ErrInputIndex is returned by mutations addressing a missing input.
	ErrInputIndex = errors.New("input index out of range")
)
