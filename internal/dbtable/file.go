package dbtable

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goodnatureofminers/mvsprobe/pkg/safe"
)

const (
	initialWindow = 4 << 10
	maxValueSize  = 16 << 20
	nullIndex     = 0xFFFFFFFF
)

// Entry is one key of a table. Value is set for slab tables and Rows for
// record tables.
type Entry struct {
	Bucket uint64
	Key    []byte
	Value  []byte
	// Decoded is the typed slab value.
	Decoded any
	Rows    [][]byte
}

// File is an open table.
type File struct {
	table   Table
	data    *os.File
	size    int64
	rows    *os.File
	rowCap  uint32
	buckets uint64
	payload uint64
	begin   int64
}

// Open opens table t inside dir.
func Open(dir string, t Table) (*File, error) {
	data, err := os.Open(filepath.Join(dir, t.File))
	if err != nil {
		return nil, err
	}
	f := &File{table: t, data: data}
	if err := f.init(dir); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open %s: %w", t.File, err)
	}
	return f, nil
}

func (f *File) init(dir string) error {
	st, err := f.data.Stat()
	if err != nil {
		return err
	}
	f.size = st.Size()

	head, err := f.readAt(0, 4)
	if err != nil {
		return err
	}
	f.buckets = uint64(binary.LittleEndian.Uint32(head))
	width := int64(f.table.offsetSize())
	payloadAt := 4 + int64(f.buckets)*width + int64(f.table.extraSize())
	b, err := f.readAt(payloadAt, int(width))
	if err != nil {
		return err
	}
	f.payload = readUint(b)
	f.begin = payloadAt
	if f.table.Layout == RecordLayout {
		f.begin += width
		return f.openRows(dir)
	}
	return nil
}

func (f *File) openRows(dir string) error {
	rows, err := os.Open(filepath.Join(dir, f.table.RowFile))
	if err != nil {
		return err
	}
	f.rows = rows
	var capBuf [4]byte
	if _, err := rows.ReadAt(capBuf[:], 0); err != nil {
		return fmt.Errorf("%w: row file header: %v", ErrCorruptTable, err)
	}
	f.rowCap = binary.LittleEndian.Uint32(capBuf[:])
	return nil
}

// Close releases the table files.
func (f *File) Close() error {
	var errs []error
	if f.rows != nil {
		errs = append(errs, f.rows.Close())
	}
	errs = append(errs, f.data.Close())
	return errors.Join(errs...)
}

// Table returns the table descriptor.
func (f *File) Table() Table {
	return f.table
}

// Buckets returns the bucket count from the header.
func (f *File) Buckets() uint64 {
	return f.buckets
}

func (f *File) readAt(off int64, n int) ([]byte, error) {
	if off < 0 || off+int64(n) > f.size {
		return nil, fmt.Errorf("%w: read of %d bytes at %d past end %d", ErrCorruptTable, n, off, f.size)
	}
	b := make([]byte, n)
	if _, err := f.data.ReadAt(b, off); err != nil {
		return nil, err
	}
	return b, nil
}

func readUint(b []byte) uint64 {
	if len(b) == 4 {
		return uint64(binary.LittleEndian.Uint32(b))
	}
	return binary.LittleEndian.Uint64(b)
}

func isNull(b []byte) bool {
	for _, c := range b {
		if c != 0xFF {
			return false
		}
	}
	return true
}

// head returns the first chain link of bucket i.
func (f *File) head(i uint64) (uint64, bool, error) {
	n := f.table.offsetSize()
	b, err := f.readAt(4+int64(i)*int64(n), n)
	if err != nil {
		return 0, false, err
	}
	if isNull(b) {
		return 0, false, nil
	}
	return readUint(b), true, nil
}

// Lookup returns the entry stored under key, in storage order.
func (f *File) Lookup(key []byte) (Entry, error) {
	if len(key) != f.table.KeySize() {
		return Entry{}, fmt.Errorf("%s key must be %d bytes, got %d", f.table.Name, f.table.KeySize(), len(key))
	}
	if f.buckets == 0 {
		return Entry{}, ErrNotFound
	}
	bucket := hashKey(key) % f.buckets
	var found *Entry
	err := f.walk(bucket, func(e Entry) (bool, error) {
		if bytes.Equal(e.Key, key) {
			found = &e
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return Entry{}, err
	}
	if found == nil {
		return Entry{}, ErrNotFound
	}
	return *found, nil
}

// Scan calls fn for every entry, bucket by bucket.
func (f *File) Scan(ctx context.Context, fn func(Entry) error) error {
	for i := uint64(0); i < f.buckets; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := f.walk(i, func(e Entry) (bool, error) {
			return true, fn(e)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// walk visits the chain of bucket i until visit returns false.
func (f *File) walk(i uint64, visit func(Entry) (bool, error)) error {
	link, ok, err := f.head(i)
	if err != nil || !ok {
		return err
	}
	seen := make(map[uint64]struct{})
	for {
		if _, loop := seen[link]; loop {
			return fmt.Errorf("%w: bucket %d chain loops at %d", ErrCorruptTable, i, link)
		}
		seen[link] = struct{}{}
		if link >= f.payload {
			return fmt.Errorf("%w: bucket %d links to %d past payload %d", ErrCorruptTable, i, link, f.payload)
		}
		var (
			e    Entry
			next []byte
		)
		if f.table.Layout == RecordLayout {
			e, next, err = f.record(link)
		} else {
			e, next, err = f.slab(link)
		}
		if err != nil {
			return err
		}
		e.Bucket = i
		more, err := visit(e)
		if err != nil || !more || isNull(next) {
			return err
		}
		link = readUint(next)
	}
}

func (f *File) slab(off uint64) (Entry, []byte, error) {
	at := f.begin + int64(off)
	b, err := f.readAt(at, slabKeySize+slabNextSize)
	if err != nil {
		return Entry{}, nil, err
	}
	e := Entry{Key: b[:slabKeySize]}
	e.Value, e.Decoded, err = f.value(at + slabKeySize + slabNextSize)
	if err != nil {
		return Entry{}, nil, fmt.Errorf("slab at %d: %w", off, err)
	}
	return e, b[slabKeySize:], nil
}

// value measures the slab value starting at at by parsing it, widening the
// read window until the parser has enough bytes.
func (f *File) value(at int64) ([]byte, any, error) {
	rest, err := safe.Int(f.size - at)
	if err != nil || rest <= 0 {
		return nil, nil, fmt.Errorf("%w: value at %d past end", ErrCorruptTable, at)
	}
	window := min(initialWindow, rest)
	for {
		buf, err := f.readAt(at, window)
		if err != nil {
			return nil, nil, err
		}
		decoded, n, perr := f.table.parse(buf)
		if perr != nil {
			if window == rest || window >= maxValueSize {
				return nil, nil, perr
			}
			window = min(window*4, rest, maxValueSize)
			continue
		}
		if n > rest {
			return nil, nil, fmt.Errorf("%w: value of %d bytes at %d past end", ErrCorruptTable, n, at)
		}
		if n <= len(buf) {
			return buf[:n], decoded, nil
		}
		full, err := f.readAt(at, n)
		if err != nil {
			return nil, nil, err
		}
		return full, decoded, nil
	}
}

func (f *File) record(index uint64) (Entry, []byte, error) {
	b, err := f.readAt(f.begin+int64(index)*recordSize, recordSize)
	if err != nil {
		return Entry{}, nil, err
	}
	e := Entry{Key: b[:recordKeySize]}
	next := b[recordKeySize : recordKeySize+4]
	row := binary.LittleEndian.Uint32(b[recordKeySize+4:])
	e.Rows, err = f.rowChain(row)
	if err != nil {
		return Entry{}, nil, fmt.Errorf("record %d: %w", index, err)
	}
	return e, next, nil
}

// rowChain follows linked rows from index. A row linking to itself ends the
// chain.
func (f *File) rowChain(index uint32) ([][]byte, error) {
	var out [][]byte
	size := int64(f.table.RowSize)
	for steps := uint32(0); index != nullIndex; steps++ {
		if index >= f.rowCap || steps > f.rowCap {
			return nil, fmt.Errorf("%w: row %d of %d", ErrCorruptTable, index, f.rowCap)
		}
		b := make([]byte, size)
		if _, err := f.rows.ReadAt(b, 4+size*int64(index)); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: row %d truncated", ErrCorruptTable, index)
			}
			return nil, err
		}
		out = append(out, b[4:])
		next := binary.LittleEndian.Uint32(b)
		if next == index {
			break
		}
		index = next
	}
	return out, nil
}
