package rawtx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Mutation edits a decoded transaction.
type Mutation func(tx *Transaction) error

// Apply runs ms in order. tx is left untouched when any mutation fails.
func (tx *Transaction) Apply(ms ...Mutation) error {
	work := tx.Clone()
	for _, m := range ms {
		if err := m(work); err != nil {
			return err
		}
	}
	*tx = *work
	return nil
}

func input(tx *Transaction, i int) (*Input, error) {
	if i < 0 || i >= len(tx.Inputs) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInputIndex, i, len(tx.Inputs))
	}
	return &tx.Inputs[i], nil
}

// SetScript replaces the unlocking script of input i.
func SetScript(i int, script []byte) Mutation {
	script = append([]byte(nil), script...)
	return func(tx *Transaction) error {
		in, err := input(tx, i)
		if err != nil {
			return err
		}
		in.Script = append([]byte(nil), script...)
		return nil
	}
}

// SetSequence replaces the sequence of input i.
func SetSequence(i int, seq uint32) Mutation {
	return func(tx *Transaction) error {
		in, err := input(tx, i)
		if err != nil {
			return err
		}
		in.Sequence = seq
		return nil
	}
}

// SetPrevOut points input i at another previous output. hash is in wire
// order; use ParseOutPoint to convert from the daemon's display form.
func SetPrevOut(i int, hash chainhash.Hash, index uint32) Mutation {
	return func(tx *Transaction) error {
		in, err := input(tx, i)
		if err != nil {
			return err
		}
		in.PrevHash = hash
		in.PrevIndex = index
		return nil
	}
}

// SetLockTime sets the locktime, adding the field when it was absent.
func SetLockTime(lt uint32) Mutation {
	return func(tx *Transaction) error {
		tx.LockTime = &lt
		return nil
	}
}

// ClearLockTime drops the locktime field from the encoding.
func ClearLockTime() Mutation {
	return func(tx *Transaction) error {
		tx.LockTime = nil
		return nil
	}
}

// ParseOutPoint parses "txhash:index" with txhash in display order, as the
// daemon prints it, and returns the hash in wire order.
func ParseOutPoint(s string) (chainhash.Hash, uint32, error) {
	hashStr, indexStr, ok := strings.Cut(s, ":")
	if !ok {
		return chainhash.Hash{}, 0, fmt.Errorf("outpoint %q: want txhash:index", s)
	}
	// NewHashFromStr reverses the display order into wire order.
	hash, err := chainhash.NewHashFromStr(hashStr)
	if err != nil {
		return chainhash.Hash{}, 0, fmt.Errorf("outpoint %q: %w", s, err)
	}
	index, err := strconv.ParseUint(indexStr, 10, 32)
	if err != nil {
		return chainhash.Hash{}, 0, fmt.Errorf("outpoint %q index: %w", s, err)
	}
	return *hash, uint32(index), nil
}
