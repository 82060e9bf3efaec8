package mvsrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SignResult is the answer of signrawtx. Hash and Hex are set when the
// daemon could sign every input; Endorsements holds per-input signatures
// keyed by input index and then by public key otherwise.
type SignResult struct {
	Hash         string
	Hex          string
	Endorsements map[int]map[string]string
}

// UnmarshalJSON accepts both answer shapes.
func (r *SignResult) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	for k, v := range fields {
		switch k {
		case "hash":
			if err := json.Unmarshal(v, &r.Hash); err != nil {
				return fmt.Errorf("hash: %w", err)
			}
		case "hex":
			if err := json.Unmarshal(v, &r.Hex); err != nil {
				return fmt.Errorf("hex: %w", err)
			}
		default:
			index, err := strconv.Atoi(k)
			if err != nil {
				continue
			}
			var sigs map[string]string
			if err := json.Unmarshal(v, &sigs); err != nil {
				return fmt.Errorf("input %d: %w", index, err)
			}
			if r.Endorsements == nil {
				r.Endorsements = make(map[int]map[string]string)
			}
			r.Endorsements[index] = sigs
		}
	}
	return nil
}

// Endorsement returns the signature of pubKey over input index.
func (r *SignResult) Endorsement(index int, pubKey string) (string, bool) {
	sig, ok := r.Endorsements[index][pubKey]
	return sig, ok
}

// ImportedAddress is the answer of importaddress.
type ImportedAddress struct {
	Address string `json:"address"`
	Script  string `json:"script"`
}

// Text holds a scalar the daemon prints either as a string or as a number.
type Text string

// UnmarshalJSON strips quotes from strings and keeps numbers verbatim.
func (t *Text) UnmarshalJSON(b []byte) error {
	if bytes.HasPrefix(b, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(b)
	return nil
}

// BlockHeader is the answer of getblockheader.
type BlockHeader struct {
	Hash              string `json:"hash"`
	PreviousBlockHash string `json:"previous_block_hash"`
	MerkleTreeHash    string `json:"merkle_tree_hash"`
	Number            uint64 `json:"number"`
	TimeStamp         uint64 `json:"time_stamp"`
	Version           uint32 `json:"version"`
	TransactionCount  uint64 `json:"transaction_count"`
	Bits              Text   `json:"bits"`
	Nonce             Text   `json:"nonce"`
	MixHash           Text   `json:"mixhash"`
}

// rawTxResult accepts a bare hex string or an object carrying it.
type rawTxResult string

func (r *rawTxResult) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = rawTxResult(s)
		return nil
	}
	var obj struct {
		Hex string `json:"hex"`
		Raw string `json:"raw"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	if obj.Hex == "" {
		obj.Hex = obj.Raw
	}
	if obj.Hex == "" {
		return fmt.Errorf("no raw transaction in %s", b)
	}
	*r = rawTxResult(obj.Hex)
	return nil
}
