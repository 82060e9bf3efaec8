package model

import (
	"fmt"
	"strconv"
	"strings"
)

// EditKind selects the field an Edit rewrites.
type EditKind string

const (
	// EditScript replaces an unlocking script with assembled script text.
	EditScript EditKind = "script"
	// EditScriptHex replaces an unlocking script with raw hex bytes.
	EditScriptHex EditKind = "script-hex"
	// EditSequence replaces an input sequence.
	EditSequence EditKind = "sequence"
	// EditPrevOut points an input at "txhash:index".
	EditPrevOut EditKind = "prevout"
	// EditLockTime sets the transaction locktime.
	EditLockTime EditKind = "locktime"
	// EditClearLockTime drops the locktime field.
	EditClearLockTime EditKind = "no-locktime"
)

func (k EditKind) perInput() bool {
	switch k {
	case EditScript, EditScriptHex, EditSequence, EditPrevOut:
		return true
	default:
		return false
	}
}

func (k EditKind) valid() bool {
	return k.perInput() || k == EditLockTime || k == EditClearLockTime
}

// Edit is the textual form of a transaction mutation, as accepted on the
// command line and by the HTTP API.
type Edit struct {
	Kind  EditKind `json:"kind"`
	Input int      `json:"input,omitempty"`
	Value string   `json:"value,omitempty"`
}

// Validate checks that the edit names a known kind and carries the fields
// the kind needs.
func (e Edit) Validate() error {
	if !e.Kind.valid() {
		return fmt.Errorf("unknown edit kind %q", e.Kind)
	}
	if e.Input < 0 {
		return fmt.Errorf("edit %s: negative input %d", e.Kind, e.Input)
	}
	if e.Kind != EditClearLockTime && e.Kind != EditScript && e.Kind != EditScriptHex && e.Value == "" {
		return fmt.Errorf("edit %s: value is required", e.Kind)
	}
	return nil
}

// String formats the edit the way ParseEdit reads it.
func (e Edit) String() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Kind.perInput() {
		fmt.Fprintf(&b, "[%d]", e.Input)
	}
	if e.Kind != EditClearLockTime {
		b.WriteString("=")
		b.WriteString(e.Value)
	}
	return b.String()
}

// ParseEdit reads "kind[input]=value", for example "sequence[0]=10",
// "prevout[1]=<txhash>:0", "locktime=500" or "no-locktime". The input index
// defaults to 0.
func ParseEdit(s string) (Edit, error) {
	head, value, hasValue := strings.Cut(s, "=")
	head = strings.TrimSpace(head)

	var e Edit
	open := strings.IndexByte(head, '[')
	if open >= 0 {
		if !strings.HasSuffix(head, "]") {
			return Edit{}, fmt.Errorf("edit %q: unterminated input index", s)
		}
		n, err := strconv.Atoi(head[open+1 : len(head)-1])
		if err != nil {
			return Edit{}, fmt.Errorf("edit %q: input index: %w", s, err)
		}
		e.Input = n
		head = head[:open]
	}
	e.Kind = EditKind(strings.ToLower(head))
	if hasValue {
		e.Value = strings.TrimSpace(value)
	}
	if e.Kind == EditClearLockTime && hasValue {
		return Edit{}, fmt.Errorf("edit %q: %s takes no value", s, e.Kind)
	}
	if open >= 0 && !e.Kind.perInput() {
		return Edit{}, fmt.Errorf("edit %q: %s takes no input index", s, e.Kind)
	}
	if err := e.Validate(); err != nil {
		return Edit{}, err
	}
	return e, nil
}
