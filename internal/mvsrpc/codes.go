package mvsrpc

import "fmt"

// Code is a daemon error code.
type Code int

const (
	CodeSuccess             Code = 0
	CodeUnknown             Code = 500
	CodeFatal               Code = 1001
	CodeConnection          Code = 1011
	CodeInvalidCommand      Code = 1020
	CodeCommandParams       Code = 1021
	CodeBlockSyncRequired   Code = 1025
	CodeArgumentLimit       Code = 2001
	CodeArgumentSize        Code = 2002
	CodeArgumentLegality    Code = 2003
	CodeArgumentMismatch    Code = 2004
	CodeAccountExisted      Code = 3001
	CodeAccountAuthority    Code = 3002
	CodeAccountNotFound     Code = 3003
	CodeBalanceLack         Code = 3302
	CodeAddressNotFound     Code = 4005
	CodeAddressInvalid      Code = 4010
	CodeToAddressInvalid    Code = 4012
	CodeFromAddressInvalid  Code = 4015
	CodeAssetLack           Code = 5001
	CodeAssetNotFound       Code = 5003
	CodeETPLack             Code = 5051
	CodeBlockHeight         Code = 5103
	CodeBlockHeaderGet      Code = 5105
	CodeMultisigScript      Code = 5204
	CodeSignatureAmount     Code = 5220
	CodeTxIO                Code = 5301
	CodeTxSource            Code = 5302
	CodeTxSign              Code = 5303
	// CodeTxValidate is also what the daemon answers for inputs whose
	// relative lock has not expired yet.
	CodeTxValidate          Code = 5304
	CodeTxBroadcast         Code = 5305
	CodeTxNotFound          Code = 5306
	CodeTxAttachmentValue   Code = 5307
	CodeTxFetch             Code = 5308
	CodeTxSend              Code = 5309
	CodeTxEncode            Code = 5310
	CodeTxDecode            Code = 5311
	CodeTxTimestamp         Code = 5312
	CodeTxLockTime          Code = 5313
	CodeUTXOFetch           Code = 5401
	CodeRedeemScriptEmpty   Code = 5501
	CodeRedeemScriptData    Code = 5502
	CodeRedeemScriptPattern Code = 5503
	CodeDIDSymbolNotFound   Code = 7006
)

var codeNames = map[Code]string{
	CodeSuccess:             "success",
	CodeUnknown:             "unknown error",
	CodeFatal:               "fatal",
	CodeConnection:          "connection",
	CodeInvalidCommand:      "invalid command",
	CodeCommandParams:       "command params",
	CodeBlockSyncRequired:   "block sync required",
	CodeArgumentLimit:       "argument exceeds limit",
	CodeArgumentSize:        "argument size invalid",
	CodeArgumentLegality:    "argument legality",
	CodeArgumentMismatch:    "argument mismatch",
	CodeAccountExisted:      "account existed",
	CodeAccountAuthority:    "account authority",
	CodeAccountNotFound:     "account not found",
	CodeBalanceLack:         "balance lack",
	CodeAddressNotFound:     "address not found",
	CodeAddressInvalid:      "address invalid",
	CodeToAddressInvalid:    "to address invalid",
	CodeFromAddressInvalid:  "from address invalid",
	CodeAssetLack:           "asset lack",
	CodeAssetNotFound:       "asset not found",
	CodeETPLack:             "etp lack",
	CodeBlockHeight:         "block height",
	CodeBlockHeaderGet:      "block header get",
	CodeMultisigScript:      "multisig script",
	CodeSignatureAmount:     "signature amount",
	CodeTxIO:                "tx io",
	CodeTxSource:            "tx source",
	CodeTxSign:              "tx sign",
	CodeTxValidate:          "tx validate",
	CodeTxBroadcast:         "tx broadcast",
	CodeTxNotFound:          "tx not found",
	CodeTxAttachmentValue:   "tx attachment value",
	CodeTxFetch:             "tx fetch",
	CodeTxSend:              "tx send",
	CodeTxEncode:            "tx encode",
	CodeTxDecode:            "tx decode",
	CodeTxTimestamp:         "tx timestamp",
	CodeTxLockTime:          "tx locktime",
	CodeUTXOFetch:           "utxo fetch",
	CodeRedeemScriptEmpty:   "redeem script empty",
	CodeRedeemScriptData:    "redeem script data",
	CodeRedeemScriptPattern: "redeem script pattern",
	CodeDIDSymbolNotFound:   "did symbol not found",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code %d", int(c))
}
