package dbtable

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/mvsprobe/internal/rawtx"
)

// Account is a wallet account record.
type Account struct {
	Name         string
	Mnemonic     []byte
	PasswordHash string
	HDIndex      uint32
	Priority     uint8
	Type         uint8
	Status       uint8
	Multisig     []Multisig
}

// AccountTypeMultisig marks accounts followed by their multisig descriptors.
const AccountTypeMultisig = 1

// Multisig describes one multisig wallet of an account.
type Multisig struct {
	HDIndex   uint32
	Index     uint32
	M         uint8
	N         uint8
	PubKey    string
	Cosigners []string
	Desc      string
	Address   string
}

// Asset is an issued asset record.
type Asset struct {
	Version     uint32
	TxHash      string
	TxIndex     uint32
	Height      uint64
	Symbol      string
	MaxSupply   uint64
	Decimals    uint8
	Threshold   uint8
	Issuer      string
	Address     string
	Description string
}

// Cert is an asset certificate record.
type Cert struct {
	Symbol  string
	Owner   string
	Address string
	Type    uint32
	Status  uint8
}

// DID is a digital identity record.
type DID struct {
	Version uint32
	TxHash  string
	TxIndex uint32
	Height  uint64
	Status  uint32
	Symbol  string
	Address string
}

// TxRecord is a confirmed transaction with its block position.
type TxRecord struct {
	Height uint32
	Index  uint32
	Tx     *rawtx.Transaction
}

// parseFunc decodes a slab value and reports how many bytes it occupies.
type parseFunc func(b []byte) (any, int, error)

func parseAccount(b []byte) (any, int, error) {
	c := &cursor{buf: b}
	var a Account
	var err error
	if a.Name, err = c.slotStr("name", 64); err != nil {
		return nil, 0, err
	}
	if a.Name == "" {
		return nil, 0, fmt.Errorf("%w: empty account name", ErrCorruptTable)
	}
	mnemonic, err := c.slotStr("mnemonic", 1<<12)
	if err != nil {
		return nil, 0, err
	}
	if len(mnemonic)%16 != 1 && len(mnemonic) != 0 {
		return nil, 0, fmt.Errorf("%w: mnemonic of %d bytes", ErrCorruptTable, len(mnemonic))
	}
	a.Mnemonic = []byte(mnemonic)
	if a.PasswordHash, err = c.hash("password hash"); err != nil {
		return nil, 0, err
	}
	if a.HDIndex, err = c.u32("hd index"); err != nil {
		return nil, 0, err
	}
	flags, err := c.take(3, "flags")
	if err != nil {
		return nil, 0, err
	}
	a.Priority, a.Type, a.Status = flags[0], flags[1], flags[2]
	if a.Type == AccountTypeMultisig {
		if a.Multisig, err = parseMultisigs(c); err != nil {
			return nil, 0, err
		}
	}
	return &a, c.size(), nil
}

func parseMultisigs(c *cursor) ([]Multisig, error) {
	count, err := c.u32("multisig count")
	if err != nil {
		return nil, err
	}
	// each descriptor needs at least 15 bytes
	if uint64(count)*15 > uint64(len(c.buf)-c.off) {
		return nil, fmt.Errorf("%w: %d multisig descriptors", ErrCorruptTable, count)
	}
	out := make([]Multisig, count)
	for i := range out {
		m := &out[i]
		if m.HDIndex, err = c.u32("multisig hd index"); err != nil {
			return nil, err
		}
		if m.Index, err = c.u32("multisig index"); err != nil {
			return nil, err
		}
		if m.M, err = c.u8("multisig m"); err != nil {
			return nil, err
		}
		if m.N, err = c.u8("multisig n"); err != nil {
			return nil, err
		}
		if m.PubKey, err = c.slotStr("multisig pubkey", 1<<10); err != nil {
			return nil, err
		}
		n, err := c.u8("cosigner count")
		if err != nil {
			return nil, err
		}
		m.Cosigners = make([]string, n)
		for j := range m.Cosigners {
			if m.Cosigners[j], err = c.slotStr("cosigner", 1<<10); err != nil {
				return nil, err
			}
		}
		if m.Desc, err = c.slotStr("multisig description", 1<<10); err != nil {
			return nil, err
		}
		if m.Address, err = c.slotStr("multisig address", 64); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func parseAsset(b []byte) (any, int, error) {
	c := &cursor{buf: b}
	var a Asset
	var err error
	if a.Version, err = c.u32("version"); err != nil {
		return nil, 0, err
	}
	if a.TxHash, err = c.hash("tx hash"); err != nil {
		return nil, 0, err
	}
	if a.TxIndex, err = c.u32("tx index"); err != nil {
		return nil, 0, err
	}
	if a.Height, err = c.u64("height"); err != nil {
		return nil, 0, err
	}
	if a.Symbol, err = c.str("symbol", 64); err != nil {
		return nil, 0, err
	}
	if a.MaxSupply, err = c.u64("max supply"); err != nil {
		return nil, 0, err
	}
	flags, err := c.take(4, "flags")
	if err != nil {
		return nil, 0, err
	}
	if flags[2] != 0 || flags[3] != 0 {
		return nil, 0, fmt.Errorf("%w: asset reserved bytes %x", ErrCorruptTable, flags[2:])
	}
	a.Decimals, a.Threshold = flags[0], flags[1]
	if a.Issuer, err = c.str("issuer", 64); err != nil {
		return nil, 0, err
	}
	if a.Address, err = c.str("address", 64); err != nil {
		return nil, 0, err
	}
	if a.Description, err = c.str("description", 100); err != nil {
		return nil, 0, err
	}
	return &a, c.size(), nil
}

func parseCert(b []byte) (any, int, error) {
	c := &cursor{buf: b}
	var cert Cert
	var err error
	if cert.Symbol, err = c.str("symbol", 64); err != nil {
		return nil, 0, err
	}
	if cert.Owner, err = c.str("owner", 64); err != nil {
		return nil, 0, err
	}
	if cert.Address, err = c.str("address", 64); err != nil {
		return nil, 0, err
	}
	if cert.Type, err = c.u32("cert type"); err != nil {
		return nil, 0, err
	}
	if cert.Status, err = c.u8("status"); err != nil {
		return nil, 0, err
	}
	return &cert, c.size(), nil
}

func parseDID(b []byte) (any, int, error) {
	c := &cursor{buf: b}
	var d DID
	var err error
	if d.Version, err = c.u32("version"); err != nil {
		return nil, 0, err
	}
	if d.TxHash, err = c.hash("tx hash"); err != nil {
		return nil, 0, err
	}
	if d.TxIndex, err = c.u32("tx index"); err != nil {
		return nil, 0, err
	}
	if d.Height, err = c.u64("height"); err != nil {
		return nil, 0, err
	}
	if d.Status, err = c.u32("status"); err != nil {
		return nil, 0, err
	}
	if d.Symbol, err = c.shortStr("symbol", 64); err != nil {
		return nil, 0, err
	}
	if d.Address, err = c.shortStr("address", 64); err != nil {
		return nil, 0, err
	}
	return &d, c.size(), nil
}

func parseTxRecord(b []byte) (any, int, error) {
	c := &cursor{buf: b}
	var r TxRecord
	var err error
	if r.Height, err = c.u32("height"); err != nil {
		return nil, 0, err
	}
	if r.Index, err = c.u32("index"); err != nil {
		return nil, 0, err
	}
	tx, n, err := rawtx.ParsePrefix(b[c.off:])
	if err != nil {
		if errors.Is(err, rawtx.ErrMalformedEncoding) {
			return nil, 0, fmt.Errorf("%w: %v", ErrCorruptTable, err)
		}
		return nil, 0, err
	}
	r.Tx = tx
	return &r, c.off + n, nil
}
