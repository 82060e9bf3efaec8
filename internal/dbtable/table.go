// Package dbtable reads the daemon's on-disk hash tables.
//
// Two layouts exist. Slab tables keep variable-size values inline:
//
//	bucket count u32 | bucket offsets u64... | 4 bytes | payload size u64 | slabs
//	slab: key [32] | next u64 | value
//
// Record tables keep fixed-size records whose value indexes a row file:
//
//	bucket count u32 | bucket indexes u32... | record count u32 | records
//	record: key [20] | next u32 | row u32
//	rows:   row capacity u32 | (next u32 | value)...
//
// An offset or index of all ones terminates a chain. Everything is read only.
package dbtable

import (
	"fmt"
	"strings"
)

// Layout is the on-disk shape of a table.
type Layout uint8

const (
	SlabLayout Layout = iota
	RecordLayout
)

func (l Layout) String() string {
	if l == RecordLayout {
		return "record"
	}
	return "slab"
}

const (
	slabKeySize   = 32
	slabNextSize  = 8
	recordKeySize = 20
	recordSize    = recordKeySize + 4 + 4
)

// Table describes one table file of a data directory.
type Table struct {
	Name   string
	Layout Layout
	// File is the table file name inside the data directory.
	File string
	// RowFile and RowSize are set for record tables.
	RowFile string
	RowSize int

	parse parseFunc
}

// KeySize returns the key width in bytes.
func (t Table) KeySize() int {
	if t.Layout == RecordLayout {
		return recordKeySize
	}
	return slabKeySize
}

func (t Table) offsetSize() int {
	if t.Layout == RecordLayout {
		return 4
	}
	return 8
}

// extraSize is the gap between the bucket array and the payload size.
func (t Table) extraSize() int {
	if t.Layout == RecordLayout {
		return 0
	}
	return 4
}

// Decode parses a slab value into its typed record.
func (t Table) Decode(value []byte) (any, error) {
	if t.parse == nil {
		return nil, fmt.Errorf("table %s has no typed values", t.Name)
	}
	v, _, err := t.parse(value)
	return v, err
}

var (
	AccountTable        = Table{Name: "account", Layout: SlabLayout, File: "account_table", parse: parseAccount}
	AssetTable          = Table{Name: "asset", Layout: SlabLayout, File: "asset_table", parse: parseAsset}
	CertTable           = Table{Name: "cert", Layout: SlabLayout, File: "cert_table", parse: parseCert}
	DIDTable            = Table{Name: "did", Layout: SlabLayout, File: "did_table", parse: parseDID}
	TransactionTable    = Table{Name: "transaction", Layout: SlabLayout, File: "transaction_table", parse: parseTxRecord}
	AddressDIDTable     = Table{Name: "address_did", Layout: RecordLayout, File: "address_did_table", RowFile: "address_did_row", RowSize: 219}
	AccountAddressTable = Table{Name: "account_address", Layout: RecordLayout, File: "account_address_table", RowFile: "account_address_rows", RowSize: 365}
	AddressAssetTable   = Table{Name: "address_asset", Layout: RecordLayout, File: "address_asset_table", RowFile: "address_asset_row", RowSize: 359}
	HistoryTable        = Table{Name: "history", Layout: RecordLayout, File: "history_table", RowFile: "history_rows", RowSize: 85}
)

// Tables lists every known table.
func Tables() []Table {
	return []Table{
		AccountTable, AssetTable, CertTable, DIDTable, TransactionTable,
		AddressDIDTable, AccountAddressTable, AddressAssetTable, HistoryTable,
	}
}

// ByName finds a table by name, accepting its file name too.
func ByName(name string) (Table, error) {
	name = strings.ToLower(name)
	for _, t := range Tables() {
		if t.Name == name || t.File == name {
			return t, nil
		}
	}
	return Table{}, fmt.Errorf("%w: %q", ErrUnknownTable, name)
}
