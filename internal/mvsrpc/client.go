// Package mvsrpc is a JSON-RPC client for the wallet/full-node daemon.
package mvsrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/mvsprobe/internal/clock"
)

// Options are the named arguments of a command. They travel as a trailing
// JSON object after the positional arguments.
type Options map[string]any

// TxType selects what createrawtx builds.
type TxType uint16

const (
	TxTransferETP   TxType = 0
	TxDepositETP    TxType = 1
	TxTransferAsset TxType = 3
)

// UTXO pins an input of createrawtx to a previous output and sets its
// sequence.
type UTXO struct {
	TxHash   string
	Index    uint32
	Sequence uint32
}

func (u UTXO) String() string {
	return fmt.Sprintf("%s:%d:%d", u.TxHash, u.Index, u.Sequence)
}

// Receiver is a createrawtx destination. Amount is in ETP bits, or in asset
// units when a symbol is given.
type Receiver struct {
	Address string
	Amount  uint64
}

func (r Receiver) String() string {
	return r.Address + ":" + strconv.FormatUint(r.Amount, 10)
}

// CreateRawTxRequest describes an unsigned transaction for createrawtx.
type CreateRawTxRequest struct {
	Type      TxType
	Senders   []string
	Receivers []Receiver
	Symbol    string
	// Deposit is the lock period in days for TxDepositETP.
	Deposit  uint16
	MyChange string
	Message  string
	Fee      btcutil.Amount
	UTXOs    []UTXO
}

func (r CreateRawTxRequest) options() Options {
	receivers := make([]string, len(r.Receivers))
	for i, rc := range r.Receivers {
		receivers[i] = rc.String()
	}
	opts := Options{
		"type":      r.Type,
		"senders":   r.Senders,
		"receivers": receivers,
	}
	if r.Symbol != "" {
		opts["symbol"] = r.Symbol
	}
	if r.Deposit != 0 {
		opts["deposit"] = r.Deposit
	}
	if r.MyChange != "" {
		opts["mychange"] = r.MyChange
	}
	if r.Message != "" {
		opts["message"] = r.Message
	}
	if r.Fee != 0 {
		opts["fee"] = int64(r.Fee)
	}
	if len(r.UTXOs) > 0 {
		utxos := make([]string, len(r.UTXOs))
		for i, u := range r.UTXOs {
			utxos[i] = u.String()
		}
		opts["utxos"] = utxos
	}
	return opts
}

// Client issues daemon commands and records a metric per call.
type Client struct {
	requester  Requester
	rpcMetrics RPCMetrics
}

// NewClient constructs an instrumented client.
func NewClient(requester Requester, rpcMetrics RPCMetrics) (*Client, error) {
	if requester == nil {
		return nil, errors.New("requester is required")
	}
	if rpcMetrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	return &Client{requester: requester, rpcMetrics: rpcMetrics}, nil
}

func (c *Client) call(method string, result any, opts Options, args ...any) (err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(method, err, started)
	}()

	params, err := encodeParams(args, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	raw, err := c.requester.RawRequest(method, params)
	if err != nil {
		return wrapError(method, err)
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("%s: decode result: %w", method, err)
	}
	return nil
}

func encodeParams(args []any, opts Options) ([]json.RawMessage, error) {
	params := make([]json.RawMessage, 0, len(args)+1)
	for _, a := range args {
		b, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		params = append(params, b)
	}
	if len(opts) > 0 {
		b, err := json.Marshal(opts)
		if err != nil {
			return nil, err
		}
		params = append(params, b)
	}
	return params, nil
}

// CreateRawTx asks the daemon to build an unsigned transaction and returns
// it hex encoded.
func (c *Client) CreateRawTx(req CreateRawTxRequest) (string, error) {
	var raw string
	if err := c.call("createrawtx", &raw, req.options()); err != nil {
		return "", err
	}
	return raw, nil
}

// SignRawTx signs every input of rawTx the account can sign.
func (c *Client) SignRawTx(account, auth, rawTx string) (*SignResult, error) {
	var res SignResult
	if err := c.call("signrawtx", &res, nil, account, auth, rawTx); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendRawTx validates and broadcasts rawTx and returns its hash. A zero fee
// leaves the daemon default.
func (c *Client) SendRawTx(rawTx string, fee btcutil.Amount) (string, error) {
	var opts Options
	if fee != 0 {
		opts = Options{"fee": int64(fee)}
	}
	var hash string
	if err := c.call("sendrawtx", &hash, opts, rawTx); err != nil {
		return "", err
	}
	return hash, nil
}

// GetTx returns the hex encoding of a known transaction.
func (c *Client) GetTx(hash string) (string, error) {
	var raw rawTxResult
	if err := c.call("gettx", &raw, Options{"json": false}, hash); err != nil {
		return "", err
	}
	return string(raw), nil
}

// GetHeight returns the height of the best block.
func (c *Client) GetHeight() (uint64, error) {
	var height uint64
	if err := c.call("getheight", &height, nil); err != nil {
		return 0, err
	}
	return height, nil
}

// GetBlockHeader returns the header at height.
func (c *Client) GetBlockHeader(height uint64) (*BlockHeader, error) {
	var header BlockHeader
	if err := c.call("getblockheader", &header, Options{"height": height}); err != nil {
		return nil, err
	}
	return &header, nil
}

// ImportAddress imports a redeem script or P2SH address into account.
func (c *Client) ImportAddress(account, auth, script, description string) (*ImportedAddress, error) {
	var opts Options
	if description != "" {
		opts = Options{"description": description}
	}
	var res ImportedAddress
	if err := c.call("importaddress", &res, opts, account, auth, script); err != nil {
		return nil, err
	}
	return &res, nil
}

// WaitForHeight polls until the best block reaches height and returns the
// height seen. Daemon errors while polling are returned immediately.
func (c *Client) WaitForHeight(ctx context.Context, height uint64, poll time.Duration) (uint64, error) {
	var current uint64
	err := clock.Poll(ctx, poll, func() (bool, error) {
		var err error
		current, err = c.GetHeight()
		return current >= height, err
	})
	return current, err
}

// ParseReceiver parses "address:amount".
func ParseReceiver(s string) (Receiver, error) {
	addr, amount, ok := strings.Cut(s, ":")
	if !ok || addr == "" {
		return Receiver{}, fmt.Errorf("receiver %q: want address:amount", s)
	}
	n, err := strconv.ParseUint(amount, 10, 64)
	if err != nil {
		return Receiver{}, fmt.Errorf("receiver %q: %w", s, err)
	}
	return Receiver{Address: addr, Amount: n}, nil
}
