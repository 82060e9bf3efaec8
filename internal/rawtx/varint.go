package rawtx

import (
	"bytes"

	"github.com/btcsuite/btcd/wire"
)

// ReadVarInt decodes a VarInt at the start of b and returns the value and the
// number of bytes consumed. All four prefix forms are accepted, including
// non-minimal ones.
func ReadVarInt(b []byte) (uint64, int, error) {
	r := reader{buf: b}
	v, err := r.varInt("varint")
	if err != nil {
		return 0, 0, err
	}
	return v, r.off, nil
}

// AppendVarInt appends the canonical (shortest) VarInt encoding of v to dst.
func AppendVarInt(dst []byte, v uint64) []byte {
	buf := bytes.NewBuffer(dst)
	// bytes.Buffer writes do not fail.
	_ = wire.WriteVarInt(buf, 0, v)
	return buf.Bytes()
}

// VarIntSize returns the length of the canonical encoding of v.
func VarIntSize(v uint64) int {
	return wire.VarIntSerializeSize(v)
}
