package dbtable

import (
	"encoding/binary"
	"fmt"

	"github.com/goodnatureofminers/mvsprobe/internal/rawtx"
)

// lengthSlot is the width a length prefix occupies in account values,
// whatever its encoded form.
const lengthSlot = 9

// cursor walks a value buffer. slack accumulates bytes that a value owns
// beyond what was read.
type cursor struct {
	buf   []byte
	off   int
	slack int
}

func (c *cursor) take(n int, field string) ([]byte, error) {
	if n < 0 || n > len(c.buf)-c.off {
		return nil, fmt.Errorf("%w: %s needs %d bytes at %d", ErrCorruptTable, field, n, c.off)
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) u8(field string) (uint8, error) {
	b, err := c.take(1, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) u32(field string) (uint32, error) {
	b, err := c.take(4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) u64(field string) (uint64, error) {
	b, err := c.take(8, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *cursor) hash(field string) (string, error) {
	b, err := c.take(32, field)
	if err != nil {
		return "", err
	}
	return FormatKey(b), nil
}

func (c *cursor) length(field string) (int, error) {
	v, n, err := rawtx.ReadVarInt(c.buf[c.off:])
	if err != nil {
		return 0, fmt.Errorf("%w: %s length at %d", ErrCorruptTable, field, c.off)
	}
	c.off += n
	if v > uint64(len(c.buf)-c.off) {
		return 0, fmt.Errorf("%w: %s declares %d bytes at %d", ErrCorruptTable, field, v, c.off)
	}
	return int(v), nil
}

// str reads a VarInt prefixed string of at most limit bytes.
func (c *cursor) str(field string, limit int) (string, error) {
	n, err := c.length(field)
	if err != nil {
		return "", err
	}
	if n > limit {
		return "", fmt.Errorf("%w: %s of %d bytes exceeds %d", ErrCorruptTable, field, n, limit)
	}
	b, err := c.take(n, field)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// slotStr is str for account values, whose prefixes always fill lengthSlot.
func (c *cursor) slotStr(field string, limit int) (string, error) {
	start := c.off
	n, err := c.length(field)
	if err != nil {
		return "", err
	}
	c.slack += lengthSlot - (c.off - start)
	if n > limit {
		return "", fmt.Errorf("%w: %s of %d bytes exceeds %d", ErrCorruptTable, field, n, limit)
	}
	b, err := c.take(n, field)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// shortStr reads a string behind a one-byte length.
func (c *cursor) shortStr(field string, limit int) (string, error) {
	n, err := c.u8(field)
	if err != nil {
		return "", err
	}
	if int(n) > limit {
		return "", fmt.Errorf("%w: %s of %d bytes exceeds %d", ErrCorruptTable, field, n, limit)
	}
	b, err := c.take(int(n), field)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// size is the number of bytes the value occupies in the table.
func (c *cursor) size() int {
	return c.off + c.slack
}
