package mvsrpc

import (
	"encoding/json"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Requester sends one JSON-RPC request. *rpcclient.Client satisfies it.
	Requester interface {
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
