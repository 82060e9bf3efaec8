package rawtx

import (
	"encoding/hex"
	"fmt"
)

// Decode parses a hex encoded raw transaction.
func Decode(s string, layout Layout) (*Transaction, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return Parse(b, layout)
}

// Parse decodes a raw transaction. The returned value copies every field it
// keeps, so b may be reused afterwards.
func Parse(b []byte, layout Layout) (*Transaction, error) {
	r := &reader{buf: b}
	tx, err := parseHead(r)
	if err != nil {
		return nil, err
	}

	switch layout {
	case WithLockTime:
		if r.remaining() < 4 {
			return nil, fmt.Errorf("%w: locktime needs 4 bytes at offset %d, %d left",
				ErrMalformedEncoding, r.off, r.remaining())
		}
		end := len(b) - 4
		tx.Trailing = append([]byte{}, b[r.off:end]...)
		r.off = end
		lt, err := r.uint32("locktime")
		if err != nil {
			return nil, err
		}
		tx.LockTime = &lt
	case WithoutLockTime:
		tx.Trailing = append([]byte{}, b[r.off:]...)
	default:
		return nil, fmt.Errorf("unknown layout %d", layout)
	}
	return tx, nil
}

// ParsePrefix decodes one complete transaction from the start of b, walking
// the outputs to find where it ends, and returns the number of bytes used.
// It is meant for containers that store transactions back to back.
func ParsePrefix(b []byte) (*Transaction, int, error) {
	r := &reader{buf: b}
	tx, err := parseHead(r)
	if err != nil {
		return nil, 0, err
	}
	start := r.off
	if _, err = readOutputs(r); err != nil {
		return nil, 0, err
	}
	tx.Trailing = append([]byte{}, b[start:r.off]...)
	lt, err := r.uint32("locktime")
	if err != nil {
		return nil, 0, err
	}
	tx.LockTime = &lt
	return tx, r.off, nil
}

func parseHead(r *reader) (*Transaction, error) {
	version, err := r.uint32("version")
	if err != nil {
		return nil, err
	}
	count, err := r.varInt("input count")
	if err != nil {
		return nil, err
	}
	if count > uint64(r.remaining()/minInputSize) {
		return nil, fmt.Errorf("%w: %d inputs declared, %d bytes left",
			ErrMalformedEncoding, count, r.remaining())
	}

	tx := &Transaction{
		Version: version,
		Inputs:  make([]Input, 0, count),
	}
	for i := uint64(0); i < count; i++ {
		in, err := parseInput(r, i)
		if err != nil {
			return nil, err
		}
		tx.Inputs = append(tx.Inputs, in)
	}
	return tx, nil
}

func parseInput(r *reader, i uint64) (Input, error) {
	var in Input
	hash, err := r.next(len(in.PrevHash), fmt.Sprintf("input %d previous hash", i))
	if err != nil {
		return Input{}, err
	}
	copy(in.PrevHash[:], hash)

	if in.PrevIndex, err = r.uint32(fmt.Sprintf("input %d previous index", i)); err != nil {
		return Input{}, err
	}
	if in.Script, err = r.varBytes(fmt.Sprintf("input %d script", i)); err != nil {
		return Input{}, err
	}
	if in.Sequence, err = r.uint32(fmt.Sprintf("input %d sequence", i)); err != nil {
		return Input{}, err
	}
	return in, nil
}
