package script

import (
	"bytes"
	"fmt"
	"text/template"
)

// Unlocking templates for the two spending branches of a
// "2-of-2 multisig or one key after a relative lock" redeem script.
const (
	// MultisigUnlock spends the OP_IF branch with both signatures.
	MultisigUnlock = "OP_0 {{.Alice}} {{.Bob}} OP_1 OP_PUSHDATA1 {{.Redeem}}"
	// SequenceLockUnlock spends the OP_ELSE branch once the lock expired.
	SequenceLockUnlock = "{{.Alice}} OP_0 OP_PUSHDATA1 {{.Redeem}}"
)

// RenderTemplate substitutes named placeholders in text. A placeholder
// without a value is an error.
func RenderTemplate(text string, values map[string]string) (string, error) {
	tmpl, err := template.New("script").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, values); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// CompileTemplate renders text and assembles the result.
func CompileTemplate(text string, values map[string]string) ([]byte, error) {
	rendered, err := RenderTemplate(text, values)
	if err != nil {
		return nil, err
	}
	return Compile(rendered)
}
