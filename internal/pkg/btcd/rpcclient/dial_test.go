package rpcclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostPath(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "versioned endpoint", url: "http://127.0.0.1:8820/rpc/v3", want: "127.0.0.1:8820/rpc/v3"},
		{name: "trailing slash", url: "http://node:8820/rpc/v3/", want: "node:8820/rpc/v3"},
		{name: "bare host", url: "http://node:8820", want: "node:8820"},
		{name: "tls", url: "https://node:8820", wantErr: true},
		{name: "no host", url: "http:///rpc", wantErr: true},
		{name: "unparsable", url: "http://%zz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hostPath(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDial(t *testing.T) {
	client, err := Dial("http://127.0.0.1:8820/rpc/v3", "user", "pass")
	require.NoError(t, err)
	client.Shutdown()
	client.WaitForShutdown()

	_, err = Dial("ws://127.0.0.1:8820", "", "")
	require.Error(t, err)
}
