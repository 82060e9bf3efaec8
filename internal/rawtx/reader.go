package rawtx

import (
	"encoding/binary"
	"fmt"
)

// reader is a bounds-checked cursor over a raw transaction buffer.
type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) next(n int, field string) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, fmt.Errorf("%w: %s needs %d bytes at offset %d, %d left",
			ErrMalformedEncoding, field, n, r.off, r.remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) uint8(field string) (uint8, error) {
	b, err := r.next(1, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) uint32(field string) (uint32, error) {
	b, err := r.next(4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) uint64(field string) (uint64, error) {
	b, err := r.next(8, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) varInt(field string) (uint64, error) {
	prefix, err := r.uint8(field)
	if err != nil {
		return 0, err
	}
	switch prefix {
	case 0xfd:
		b, err := r.next(2, field)
		if err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16(b)), nil
	case 0xfe:
		v, err := r.uint32(field)
		return uint64(v), err
	case 0xff:
		return r.uint64(field)
	default:
		return uint64(prefix), nil
	}
}

// varBytes reads a VarInt length followed by that many bytes. The result is
// a non-nil copy, so decoded values never alias the caller's buffer.
func (r *reader) varBytes(field string) ([]byte, error) {
	n, err := r.varInt(field + " length")
	if err != nil {
		return nil, err
	}
	if n > uint64(r.remaining()) {
		return nil, fmt.Errorf("%w: %s declares %d bytes at offset %d, %d left",
			ErrMalformedEncoding, field, n, r.off, r.remaining())
	}
	b, err := r.next(int(n), field)
	if err != nil {
		return nil, err
	}
	return append([]byte{}, b...), nil
}

func (r *reader) varString(field string) (string, error) {
	b, err := r.varBytes(field)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
