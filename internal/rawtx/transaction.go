// Package rawtx parses, mutates and re-serializes raw MVS transactions.
//
// The codec understands the version, the input list and the optional trailing
// locktime. Everything between the inputs and the locktime (output count,
// outputs and their attachments) is carried verbatim, so a decoded
// transaction re-encodes byte for byte as long as its VarInt prefixes were
// canonical. Nothing here validates scripts, sequences or locktimes: crafting
// transactions the daemon must reject is the point.
package rawtx

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// NoPrevOutIndex marks an input that does not reference a real prior output.
const NoPrevOutIndex = wire.MaxPrevOutIndex

// minInputSize is hash + index + empty script prefix + sequence.
const minInputSize = chainhash.HashSize + 4 + 1 + 4

// Layout selects whether the encoding ends with a 4-byte locktime.
type Layout uint8

const (
	// WithLockTime treats the last 4 bytes as the transaction locktime.
	WithLockTime Layout = iota
	// WithoutLockTime carries everything after the inputs as trailing bytes.
	WithoutLockTime
)

func (l Layout) String() string {
	switch l {
	case WithLockTime:
		return "locktime"
	case WithoutLockTime:
		return "no-locktime"
	default:
		return "unknown"
	}
}

// ParseLayout reads the String form of a layout. The empty string selects
// WithLockTime.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "", "locktime":
		return WithLockTime, nil
	case "no-locktime":
		return WithoutLockTime, nil
	default:
		return 0, fmt.Errorf("unknown layout %q", s)
	}
}

// Input is one consumed previous output.
type Input struct {
	// PrevHash holds the referenced transaction hash in wire order. Its
	// String method yields the reversed display order used by the daemon.
	PrevHash  chainhash.Hash
	PrevIndex uint32
	Script    []byte
	Sequence  uint32
}

// Transaction is a decoded raw transaction.
type Transaction struct {
	Version uint32
	Inputs  []Input
	// Trailing is the encoded output list, never interpreted by the codec.
	Trailing []byte
	// LockTime is nil when the layout has no locktime field.
	LockTime *uint32
}

// HasLockTime reports whether the transaction carries a locktime field.
func (tx *Transaction) HasLockTime() bool {
	return tx.LockTime != nil
}

// Clone returns a deep copy that shares no memory with tx.
func (tx *Transaction) Clone() *Transaction {
	out := &Transaction{
		Version:  tx.Version,
		Inputs:   make([]Input, len(tx.Inputs)),
		Trailing: append([]byte(nil), tx.Trailing...),
	}
	for i, in := range tx.Inputs {
		in.Script = append([]byte(nil), in.Script...)
		out.Inputs[i] = in
	}
	if tx.LockTime != nil {
		lt := *tx.LockTime
		out.LockTime = &lt
	}
	return out
}

// SerializeSize returns the encoded length in bytes.
func (tx *Transaction) SerializeSize() int {
	n := 4 + VarIntSize(uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		n += minInputSize - 1 + VarIntSize(uint64(len(in.Script))) + len(in.Script)
	}
	n += len(tx.Trailing)
	if tx.LockTime != nil {
		n += 4
	}
	return n
}

// TxHash returns the double SHA-256 of the encoding.
func (tx *Transaction) TxHash() chainhash.Hash {
	return chainhash.DoubleHashH(tx.Bytes())
}

// ScriptOffset returns the byte offset of input i's unlocking script within
// the encoding, or -1 when i is out of range.
func (tx *Transaction) ScriptOffset(i int) int {
	if i < 0 || i >= len(tx.Inputs) {
		return -1
	}
	off := 4 + VarIntSize(uint64(len(tx.Inputs)))
	for j := 0; j < i; j++ {
		s := tx.Inputs[j].Script
		off += minInputSize - 1 + VarIntSize(uint64(len(s))) + len(s)
	}
	return off + chainhash.HashSize + 4 + VarIntSize(uint64(len(tx.Inputs[i].Script)))
}

// SequenceOffset returns the byte offset of input i's sequence, or -1.
func (tx *Transaction) SequenceOffset(i int) int {
	off := tx.ScriptOffset(i)
	if off < 0 {
		return -1
	}
	return off + len(tx.Inputs[i].Script)
}

// TrailingOffset returns the byte offset where the trailing bytes start.
func (tx *Transaction) TrailingOffset() int {
	n := tx.SerializeSize() - len(tx.Trailing)
	if tx.LockTime != nil {
		n -= 4
	}
	return n
}

func (tx *Transaction) String() string {
	return hex.EncodeToString(tx.Bytes())
}
