// Package script assembles and disassembles MVS scripts and derives the
// addresses they pay to.
package script

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/txscript"
)

var (
	// ErrInvalidOpcode is returned for a token that is neither an opcode,
	// a hex literal nor a decimal number.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrInvalidScript is returned when a push or the whole script is too long.
	ErrInvalidScript = errors.New("invalid script")
)

// MaxPushSize is the largest literal a single-byte length prefix can carry.
const MaxPushSize = 0xff

// Compile assembles whitespace separated tokens into script bytes.
//
// Tokens are resolved in order: an OP_ prefixed mnemonic, an even-length hex
// literal pushed behind a raw one-byte length, a decimal number pushed as a
// minimal script number, and finally a mnemonic without its OP_ prefix.
func Compile(text string) ([]byte, error) {
	b := txscript.NewScriptBuilder()
	for i, tok := range strings.Fields(text) {
		if err := addToken(b, tok); err != nil {
			return nil, fmt.Errorf("token %d %q: %w", i, tok, err)
		}
	}
	out, err := b.Script()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	return out, nil
}

// CompileHex is Compile with a hex encoded result.
func CompileHex(text string) (string, error) {
	b, err := Compile(text)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func addToken(b *txscript.ScriptBuilder, tok string) error {
	if strings.HasPrefix(strings.ToUpper(tok), "OP_") {
		op, ok := Opcode(tok)
		if !ok {
			return ErrInvalidOpcode
		}
		b.AddOp(op)
		return nil
	}
	if data, ok := hexLiteral(tok); ok {
		if len(data) > MaxPushSize {
			return fmt.Errorf("%w: push of %d bytes", ErrInvalidScript, len(data))
		}
		b.AddOps(append([]byte{byte(len(data))}, data...))
		return nil
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		b.AddInt64(n)
		return nil
	}
	if op, ok := Opcode(tok); ok {
		b.AddOp(op)
		return nil
	}
	return ErrInvalidOpcode
}

func hexLiteral(tok string) ([]byte, bool) {
	if len(tok) == 0 || len(tok)%2 != 0 {
		return nil, false
	}
	data, err := hex.DecodeString(tok)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Disasm renders script as mnemonics with pushed data in hex. Scripts that
// end mid-push render the parsed prefix followed by "[error]".
func Disasm(script []byte) string {
	var parts []string
	tok := txscript.MakeScriptTokenizer(0, script)
	for tok.Next() {
		if data := tok.Data(); data != nil {
			parts = append(parts, hex.EncodeToString(data))
			continue
		}
		parts = append(parts, OpcodeName(tok.Opcode()))
	}
	if tok.Err() != nil {
		parts = append(parts, "[error]")
	}
	return strings.Join(parts, " ")
}
