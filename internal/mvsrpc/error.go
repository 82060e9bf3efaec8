package mvsrpc

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
)

// Error is an error answered by the daemon.
type Error struct {
	Method  string
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: daemon error %d (%s): %s", e.Method, int(e.Code), e.Code, e.Message)
}

// CodeOf returns the daemon code carried by err, or false when err did not
// come from the daemon.
func CodeOf(err error) (Code, bool) {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr.Code, true
	}
	return 0, false
}

// IsCode reports whether err is a daemon error with code.
func IsCode(err error, code Code) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}

func wrapError(method string, err error) error {
	var jsonErr *btcjson.RPCError
	if errors.As(err, &jsonErr) {
		return &Error{Method: method, Code: Code(jsonErr.Code), Message: jsonErr.Message}
	}
	return fmt.Errorf("%s: %w", method, err)
}
