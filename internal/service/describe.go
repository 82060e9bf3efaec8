package service

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/goodnatureofminers/mvsprobe/internal/rawtx"
	"github.com/goodnatureofminers/mvsprobe/internal/script"
)

// TxView is a readable rendering of a decoded transaction.
type TxView struct {
	Hash     string       `json:"hash"`
	Size     int          `json:"size"`
	Version  uint32       `json:"version"`
	Inputs   []InputView  `json:"inputs"`
	Outputs  []OutputView `json:"outputs,omitempty"`
	Trailing string       `json:"trailing"`
	LockTime *uint32      `json:"locktime,omitempty"`
	// OutputsError is set when the trailing bytes are not a readable output
	// list, which is expected for deliberately broken transactions.
	OutputsError string `json:"outputs_error,omitempty"`
}

type InputView struct {
	PrevHash  string `json:"prev_hash"`
	PrevIndex uint32 `json:"prev_index"`
	Script    string `json:"script"`
	ScriptAsm string `json:"script_asm"`
	Sequence  uint32 `json:"sequence"`
	Lock      string `json:"lock"`
}

type OutputView struct {
	Value      uint64         `json:"value"`
	ETP        float64        `json:"etp"`
	Script     string         `json:"script"`
	ScriptAsm  string         `json:"script_asm"`
	Class      string         `json:"class"`
	Addresses  []string       `json:"addresses"`
	Attachment AttachmentView `json:"attachment"`
}

type AttachmentView struct {
	Version  uint32 `json:"version"`
	Type     string `json:"type"`
	ToDID    string `json:"to_did,omitempty"`
	FromDID  string `json:"from_did,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
	Address  string `json:"address,omitempty"`
	Quantity uint64 `json:"quantity,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Describe renders tx with addresses encoded for params.
func Describe(tx *rawtx.Transaction, params *chaincfg.Params) TxView {
	v := TxView{
		Hash:     tx.TxHash().String(),
		Size:     tx.SerializeSize(),
		Version:  tx.Version,
		Inputs:   make([]InputView, len(tx.Inputs)),
		Trailing: hex.EncodeToString(tx.Trailing),
		LockTime: tx.LockTime,
	}
	for i, in := range tx.Inputs {
		v.Inputs[i] = InputView{
			PrevHash:  in.PrevHash.String(),
			PrevIndex: in.PrevIndex,
			Script:    hex.EncodeToString(in.Script),
			ScriptAsm: script.Disasm(in.Script),
			Sequence:  in.Sequence,
			Lock:      rawtx.ParseSequence(in.Sequence).String(),
		}
	}

	outs, n, err := rawtx.DecodeOutputs(tx.Trailing)
	switch {
	case err != nil:
		v.OutputsError = err.Error()
		return v
	case n != len(tx.Trailing):
		v.OutputsError = "trailing bytes after outputs"
	}
	v.Outputs = make([]OutputView, len(outs))
	for i, out := range outs {
		class, addrs, err := script.OutputAddresses(out.Script, params)
		if err != nil {
			class, addrs = "nonstandard", []string{}
		}
		v.Outputs[i] = OutputView{
			Value:     out.Value,
			ETP:       btcutil.Amount(out.Value).ToBTC(),
			Script:    hex.EncodeToString(out.Script),
			ScriptAsm: script.Disasm(out.Script),
			Class:     class,
			Addresses: addrs,
			Attachment: AttachmentView{
				Version:  out.Attachment.Version,
				Type:     out.Attachment.Type.String(),
				ToDID:    out.Attachment.ToDID,
				FromDID:  out.Attachment.FromDID,
				Symbol:   out.Attachment.Symbol,
				Address:  out.Attachment.Address,
				Quantity: out.Attachment.Quantity,
				Message:  out.Attachment.Message,
			},
		}
	}
	return v
}
