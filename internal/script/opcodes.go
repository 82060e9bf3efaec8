package script

import (
	"strings"

	"github.com/btcsuite/btcd/txscript"
)

// MVS renumbers the relative lock opcodes: 0xb2 is CHECKATTENUATIONVERIFY and
// CHECKSEQUENCEVERIFY moves to the former NOP4 slot.
const (
	OpCheckLockTimeVerify    = txscript.OP_CHECKLOCKTIMEVERIFY
	OpCheckAttenuationVerify = 0xb2
	OpCheckSequenceVerify    = 0xb3
)

var mvsOverrides = map[string]byte{
	"OP_CHECKATTENUATIONVERIFY": OpCheckAttenuationVerify,
	"OP_CHECKSEQUENCEVERIFY":    OpCheckSequenceVerify,
	"OP_NOP3":                   OpCheckAttenuationVerify,
	"OP_NOP4":                   OpCheckSequenceVerify,
}

var (
	opcodeByName = buildOpcodeByName()
	nameByOpcode = buildNameByOpcode(opcodeByName)
)

func buildOpcodeByName() map[string]byte {
	m := make(map[string]byte, len(txscript.OpcodeByName)+len(mvsOverrides))
	for name, op := range txscript.OpcodeByName {
		m[name] = op
	}
	for name, op := range mvsOverrides {
		m[name] = op
	}
	return m
}

func buildNameByOpcode(byName map[string]byte) [256]string {
	var names [256]string
	for name, op := range byName {
		switch name {
		case "OP_FALSE", "OP_TRUE", "OP_NOP2", "OP_NOP3", "OP_NOP4":
			continue
		}
		names[op] = name
	}
	names[OpCheckLockTimeVerify] = "OP_CHECKLOCKTIMEVERIFY"
	names[OpCheckAttenuationVerify] = "OP_CHECKATTENUATIONVERIFY"
	names[OpCheckSequenceVerify] = "OP_CHECKSEQUENCEVERIFY"
	return names
}

// Opcode resolves a mnemonic, with or without the OP_ prefix.
func Opcode(name string) (byte, bool) {
	name = strings.ToUpper(name)
	if !strings.HasPrefix(name, "OP_") {
		name = "OP_" + name
	}
	op, ok := opcodeByName[name]
	return op, ok
}

// OpcodeName returns the mnemonic of op.
func OpcodeName(op byte) string {
	return nameByOpcode[op]
}
