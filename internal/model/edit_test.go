package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEdit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Edit
	}{
		{name: "sequence", in: "sequence[1]=10", want: Edit{Kind: EditSequence, Input: 1, Value: "10"}},
		{name: "default input", in: "sequence=4294967295", want: Edit{Kind: EditSequence, Value: "4294967295"}},
		{name: "script keeps spaces", in: "script[0]=OP_0 aa OP_1", want: Edit{Kind: EditScript, Value: "OP_0 aa OP_1"}},
		{name: "empty script", in: "script[0]=", want: Edit{Kind: EditScript}},
		{name: "prevout", in: "PREVOUT[2]=ab:1", want: Edit{Kind: EditPrevOut, Input: 2, Value: "ab:1"}},
		{name: "locktime", in: "locktime=500", want: Edit{Kind: EditLockTime, Value: "500"}},
		{name: "clear locktime", in: "no-locktime", want: Edit{Kind: EditClearLockTime}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEdit(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := ParseEdit(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestParseEditErrors(t *testing.T) {
	for _, in := range []string{
		"fee=1",
		"sequence[x]=1",
		"sequence[1=1",
		"sequence[-1]=1",
		"sequence[0]=",
		"locktime[0]=5",
		"no-locktime=1",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseEdit(in)
			assert.Error(t, err)
		})
	}
}
