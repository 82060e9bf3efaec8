package script

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// MainNetParams carries the MVS address version bytes. Only the fields read
// by address encoding are populated.
var MainNetParams = chaincfg.Params{
	Name:             "mvs-mainnet",
	PubKeyHashAddrID: 0x32,
	ScriptHashAddrID: 0x05,
	PrivateKeyID:     0x80,
}

// ParamsForNetwork maps a network name to its parameters.
func ParamsForNetwork(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "", "main", "mainnet", "mvs":
		return &MainNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// ScriptHashAddress returns the P2SH address paying to redeem.
func ScriptHashAddress(redeem []byte, params *chaincfg.Params) (string, error) {
	addr, err := btcutil.NewAddressScriptHash(redeem, params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// PubKeyHashAddress encodes a 20-byte public key hash.
func PubKeyHashAddress(hash []byte, params *chaincfg.Params) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(hash, params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// OutputAddresses returns the class of a locking script and the addresses it
// pays to. Non-standard scripts yield no addresses and no error.
func OutputAddresses(pkScript []byte, params *chaincfg.Params) (string, []string, error) {
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, params)
	if err != nil {
		return "", nil, err
	}
	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return class.String(), result, nil
}

// PayToAddress builds the locking script for an encoded address.
func PayToAddress(address string, params *chaincfg.Params) ([]byte, error) {
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %w", address, err)
	}
	return txscript.PayToAddrScript(addr)
}
