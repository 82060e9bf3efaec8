package dbtable

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type bytesBuilder []byte

func (b bytesBuilder) u8(v uint8) bytesBuilder   { return append(b, v) }
func (b bytesBuilder) u32(v uint32) bytesBuilder { return binary.LittleEndian.AppendUint32(b, v) }
func (b bytesBuilder) u64(v uint64) bytesBuilder { return binary.LittleEndian.AppendUint64(b, v) }
func (b bytesBuilder) raw(v []byte) bytesBuilder { return append(b, v...) }
func (b bytesBuilder) str(s string) bytesBuilder { return append(append(b, byte(len(s))), s...) }
func (b bytesBuilder) fill(n int, c byte) bytesBuilder {
	for i := 0; i < n; i++ {
		b = append(b, c)
	}
	return b
}

type slabEntry struct {
	key   []byte
	value []byte
}

// writeSlabTable lays entries out in bucket order, chaining collisions in
// the given order.
func writeSlabTable(t *testing.T, dir string, table Table, buckets uint32, entries []slabEntry) {
	t.Helper()
	chains := make([][]slabEntry, buckets)
	for _, e := range entries {
		b := hashKey(e.key) % uint64(buckets)
		chains[b] = append(chains[b], e)
	}
	heads := bytesBuilder{}.u32(buckets)
	body := make(bytesBuilder, 8)
	for _, chain := range chains {
		if len(chain) == 0 {
			heads = heads.fill(8, 0xFF)
			continue
		}
		heads = heads.u64(uint64(len(body)))
		for i, e := range chain {
			next := len(body) + slabKeySize + slabNextSize + len(e.value)
			body = body.raw(e.key)
			if i == len(chain)-1 {
				body = body.fill(8, 0xFF)
			} else {
				body = body.u64(uint64(next))
			}
			body = body.raw(e.value)
		}
	}
	binary.LittleEndian.PutUint64(body[:8], uint64(len(body)))
	out := heads.fill(4, 0).raw(body)
	require.NoError(t, os.WriteFile(filepath.Join(dir, table.File), out, 0o600))
}

type recordEntry struct {
	key  []byte
	rows [][]byte
}

// writeRecordTable stores each entry's rows consecutively. When selfLink is
// set the last row of a chain points at itself instead of the null index.
func writeRecordTable(t *testing.T, dir string, table Table, buckets uint32, entries []recordEntry, selfLink bool) {
	t.Helper()
	chains := make([][]recordEntry, buckets)
	for _, e := range entries {
		b := hashKey(e.key) % uint64(buckets)
		chains[b] = append(chains[b], e)
	}
	heads := bytesBuilder{}.u32(buckets)
	var records, rows bytesBuilder
	var count, rowCount uint32
	for _, chain := range chains {
		if len(chain) == 0 {
			heads = heads.u32(nullIndex)
			continue
		}
		heads = heads.u32(count)
		for i, e := range chain {
			records = records.raw(e.key)
			if i == len(chain)-1 {
				records = records.u32(nullIndex)
			} else {
				records = records.u32(count + 1)
			}
			records = records.u32(rowCount)
			count++
			for j, row := range e.rows {
				switch {
				case j < len(e.rows)-1:
					rows = rows.u32(rowCount + 1)
				case selfLink:
					rows = rows.u32(rowCount)
				default:
					rows = rows.u32(nullIndex)
				}
				rows = rows.raw(row).fill(table.RowSize-4-len(row), 0)
				rowCount++
			}
		}
	}
	out := heads.u32(count).raw(records)
	require.NoError(t, os.WriteFile(filepath.Join(dir, table.File), out, 0o600))
	rowFile := bytesBuilder{}.u32(rowCount).raw(rows)
	require.NoError(t, os.WriteFile(filepath.Join(dir, table.RowFile), rowFile, 0o600))
}

func key(n int, seed byte) []byte {
	k := make([]byte, n)
	for i := range k {
		k[i] = seed + byte(i)
	}
	return k
}

func assetValue(symbol string) []byte {
	return bytesBuilder{}.
		u32(1).fill(32, 0xAB).u32(2).u64(1200).
		str(symbol).u64(21000000).
		u8(8).u8(0).u8(0).u8(0).
		str("issuer").str("MLasJFxZQnA49XEvhTHmRKi2qstkj9ppjo").str("test asset")
}

func certValue() []byte {
	return bytesBuilder{}.str("ALICE.CERT").str("alice").str("MLasJFxZQnA49XEvhTHmRKi2qstkj9ppjo").u32(1).u8(0)
}

func didValue(symbol string) []byte {
	return bytesBuilder{}.u32(1).fill(32, 0x01).u32(0).u64(99).u32(1).str(symbol).str("MAddr")
}

// txValue is a confirmed transaction spending nothing into one plain output.
func txValue(height uint32) []byte {
	return bytesBuilder{}.u32(height).u32(3).
		u32(1).u8(1).fill(32, 0).u32(0xFFFFFFFF).u8(0).u32(0xFFFFFFFF).
		u8(1).u64(1000).u8(0).u32(1).u32(0).
		u32(0)
}

// accountValue reserves nine bytes for each of its two length prefixes.
func accountValue(name string, multisig bool) []byte {
	b := bytesBuilder{}.str(name).u8(0).fill(32, 0x55).u32(7).u8(0)
	typ := uint8(0)
	if multisig {
		typ = AccountTypeMultisig
	}
	b = b.u8(typ).u8(1)
	slots := 2
	if multisig {
		b = b.u32(1).u32(0).u32(1).u8(2).u8(2).str("pub").u8(1).str("cosigner").str("desc").str("3Addr")
		slots += 4
	}
	return b.fill(slots*(lengthSlot-1), 0)
}
