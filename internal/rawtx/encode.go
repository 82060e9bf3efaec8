package rawtx

import (
	"encoding/binary"
	"encoding/hex"
	"io"
)

// Encode returns the hex encoding of tx.
func Encode(tx *Transaction) string {
	return hex.EncodeToString(tx.Bytes())
}

// Bytes serializes tx. VarInt prefixes are always written in canonical form.
func (tx *Transaction) Bytes() []byte {
	out := make([]byte, 0, tx.SerializeSize())
	out = binary.LittleEndian.AppendUint32(out, tx.Version)
	out = AppendVarInt(out, uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		out = append(out, in.PrevHash[:]...)
		out = binary.LittleEndian.AppendUint32(out, in.PrevIndex)
		out = AppendVarInt(out, uint64(len(in.Script)))
		out = append(out, in.Script...)
		out = binary.LittleEndian.AppendUint32(out, in.Sequence)
	}
	out = append(out, tx.Trailing...)
	if tx.LockTime != nil {
		out = binary.LittleEndian.AppendUint32(out, *tx.LockTime)
	}
	return out
}

// Serialize writes the encoding of tx to w.
func (tx *Transaction) Serialize(w io.Writer) error {
	_, err := w.Write(tx.Bytes())
	return err
}
