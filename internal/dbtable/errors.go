package dbtable

import "errors"

var (
	// ErrCorruptTable is returned when a table file contradicts its own header.
	ErrCorruptTable = errors.New("corrupt table")
	// ErrNotFound is returned by Lookup when no entry carries the key.
	ErrNotFound = errors.New("key not found")
	// ErrUnknownTable is returned for a table name that is not registered.
	ErrUnknownTable = errors.New("unknown table")
)
