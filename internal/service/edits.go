package service

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/mvsprobe/internal/model"
	"github.com/goodnatureofminers/mvsprobe/internal/rawtx"
	"github.com/goodnatureofminers/mvsprobe/internal/script"
)

// ErrInvalidEdit is returned for an edit that cannot become a mutation.
var ErrInvalidEdit = errors.New("invalid edit")

// Mutations turns textual edits into codec mutations.
func Mutations(edits []model.Edit) ([]rawtx.Mutation, error) {
	ms := make([]rawtx.Mutation, 0, len(edits))
	for _, e := range edits {
		m, err := mutation(e)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrInvalidEdit, e, err)
		}
		ms = append(ms, m)
	}
	return ms, nil
}

func mutation(e model.Edit) (rawtx.Mutation, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	switch e.Kind {
	case model.EditScript:
		b, err := script.Compile(e.Value)
		if err != nil {
			return nil, err
		}
		return rawtx.SetScript(e.Input, b), nil
	case model.EditScriptHex:
		b, err := hex.DecodeString(e.Value)
		if err != nil {
			return nil, err
		}
		return rawtx.SetScript(e.Input, b), nil
	case model.EditSequence:
		seq, err := ParseSequenceValue(e.Value)
		if err != nil {
			return nil, err
		}
		return rawtx.SetSequence(e.Input, seq), nil
	case model.EditPrevOut:
		hash, index, err := rawtx.ParseOutPoint(e.Value)
		if err != nil {
			return nil, err
		}
		return rawtx.SetPrevOut(e.Input, hash, index), nil
	case model.EditLockTime:
		lt, err := strconv.ParseUint(e.Value, 0, 32)
		if err != nil {
			return nil, err
		}
		return rawtx.SetLockTime(uint32(lt)), nil
	case model.EditClearLockTime:
		return rawtx.ClearLockTime(), nil
	default:
		return nil, fmt.Errorf("unknown edit kind %q", e.Kind)
	}
}

// ParseSequenceValue reads a sequence as a number ("10", "0xffffffff"),
// "disabled", "final", "blocks:N" or "time:<duration>".
func ParseSequenceValue(s string) (uint32, error) {
	switch strings.ToLower(s) {
	case "disabled":
		return rawtx.SequenceLockTimeDisabled, nil
	case "final":
		return rawtx.SequenceFinal, nil
	}
	kind, arg, ok := strings.Cut(s, ":")
	if !ok {
		v, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return 0, fmt.Errorf("sequence %q: %w", s, err)
		}
		return uint32(v), nil
	}
	switch strings.ToLower(kind) {
	case "blocks":
		n, err := strconv.ParseUint(arg, 10, 16)
		if err != nil {
			return 0, fmt.Errorf("sequence %q: %w", s, err)
		}
		return rawtx.HeightSequence(uint16(n)), nil
	case "time":
		d, err := time.ParseDuration(arg)
		if err != nil {
			return 0, fmt.Errorf("sequence %q: %w", s, err)
		}
		return rawtx.TimeSequence(d)
	default:
		return 0, fmt.Errorf("sequence %q: unknown form %q", s, kind)
	}
}
