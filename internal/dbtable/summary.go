package dbtable

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"hash"
	"io/fs"
	"slices"

	"github.com/goodnatureofminers/mvsprobe/pkg/workerpool"
)

// Summary fingerprints the content of one table independently of where the
// daemon happened to place entries inside the file.
type Summary struct {
	Table   string
	Missing bool
	Entries int
	Rows    int
	Digest  string
}

// Summarize fingerprints tables of the data directory dir concurrently. Two
// nodes that applied the same blocks produce equal summaries.
func Summarize(ctx context.Context, dir string, tables []Table, workers int) ([]Summary, error) {
	return workerpool.Map(ctx, workers, tables, func(ctx context.Context, t Table) (Summary, error) {
		return summarize(ctx, dir, t)
	})
}

func summarize(ctx context.Context, dir string, t Table) (Summary, error) {
	s := Summary{Table: t.Name}
	f, err := Open(dir, t)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.Missing = true
			return s, nil
		}
		return s, err
	}
	defer f.Close()

	h := sha256.New()
	var (
		bucket  uint64
		pending []Entry
	)
	flush := func() {
		if t.Layout == RecordLayout {
			slices.SortStableFunc(pending, func(a, b Entry) int {
				return bytes.Compare(a.Key, b.Key)
			})
		}
		for _, e := range pending {
			writeEntry(h, e)
		}
		pending = pending[:0]
	}
	err = f.Scan(ctx, func(e Entry) error {
		if e.Bucket != bucket {
			flush()
			bucket = e.Bucket
		}
		pending = append(pending, e)
		s.Entries++
		s.Rows += len(e.Rows)
		return nil
	})
	if err != nil {
		return s, err
	}
	flush()
	s.Digest = hex.EncodeToString(h.Sum(nil))
	return s, nil
}

func writeEntry(h hash.Hash, e Entry) {
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], e.Bucket)
	h.Write(n[:])
	h.Write(e.Key)
	binary.LittleEndian.PutUint64(n[:], uint64(len(e.Value)))
	h.Write(n[:])
	h.Write(e.Value)
	binary.LittleEndian.PutUint64(n[:], uint64(len(e.Rows)))
	h.Write(n[:])
	for _, row := range e.Rows {
		h.Write(row)
	}
}
