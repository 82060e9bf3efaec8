package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/mvsprobe/internal/metrics"
	"github.com/goodnatureofminers/mvsprobe/internal/model"
	"github.com/goodnatureofminers/mvsprobe/internal/mvsrpc"
	"github.com/goodnatureofminers/mvsprobe/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/mvsprobe/internal/rawtx"
	"github.com/goodnatureofminers/mvsprobe/internal/repository/clickhouse"
	"github.com/goodnatureofminers/mvsprobe/internal/script"
	"github.com/goodnatureofminers/mvsprobe/internal/service"
	"github.com/goodnatureofminers/mvsprobe/pkg/safe"
)

func (a *app) network() model.Network {
	return model.Network(a.opts.Network)
}

func (a *app) params() (*chaincfg.Params, error) {
	return script.ParamsForNetwork(a.opts.Network)
}

// rpc dials the daemon. The returned func releases the connection.
func (a *app) rpc() (*mvsrpc.Client, func(), error) {
	conn, err := rpcclient.Dial(a.opts.RPCURL, a.opts.RPCUser, a.opts.RPCPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("init rpc client: %w", err)
	}
	release := func() {
		conn.Shutdown()
		conn.WaitForShutdown()
	}
	client, err := mvsrpc.NewClient(conn, metrics.NewRPCClient(a.network()))
	if err != nil {
		release()
		return nil, nil, err
	}
	return client, release, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type txOptions struct {
	Hex    string `long:"hex" description:"raw transaction hex, read from stdin when empty"`
	Layout string `long:"layout" description:"locktime or no-locktime" default:"locktime"`
}

func (o txOptions) read() (*rawtx.Transaction, error) {
	raw := o.Hex
	if raw == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		raw = string(b)
	}
	layout, err := rawtx.ParseLayout(o.Layout)
	if err != nil {
		return nil, err
	}
	return rawtx.Decode(strings.TrimSpace(raw), layout)
}

func parseEdits(ss []string) ([]model.Edit, error) {
	edits := make([]model.Edit, 0, len(ss))
	for _, s := range ss {
		e, err := model.ParseEdit(s)
		if err != nil {
			return nil, err
		}
		edits = append(edits, e)
	}
	return edits, nil
}

type decodeCommand struct {
	app *app
	txOptions
}

func (c *decodeCommand) Execute(_ []string) error {
	tx, err := c.read()
	if err != nil {
		return err
	}
	params, err := c.app.params()
	if err != nil {
		return err
	}
	return printJSON(service.Describe(tx, params))
}

type mutateCommand struct {
	app *app
	txOptions
	Edits    []string `short:"e" long:"edit" description:"edit as kind[input]=value, repeatable"`
	Describe bool     `long:"describe" description:"print the decoded result instead of hex"`
}

func (c *mutateCommand) Execute(_ []string) error {
	tx, err := c.read()
	if err != nil {
		return err
	}
	edits, err := parseEdits(c.Edits)
	if err != nil {
		return err
	}
	ms, err := service.Mutations(edits)
	if err != nil {
		return err
	}
	if err := tx.Apply(ms...); err != nil {
		return err
	}
	if !c.Describe {
		_, err := fmt.Println(rawtx.Encode(tx))
		return err
	}
	params, err := c.app.params()
	if err != nil {
		return err
	}
	return printJSON(service.Describe(tx, params))
}

type scriptCommand struct {
	app     *app
	Values  map[string]string `long:"value" description:"template placeholder as Name:hex, repeatable"`
	Address bool              `long:"address" description:"also print the pay to script hash address"`
}

func (c *scriptCommand) Execute(args []string) error {
	text := strings.Join(args, " ")
	var (
		b   []byte
		err error
	)
	if len(c.Values) > 0 {
		b, err = script.CompileTemplate(text, c.Values)
	} else {
		b, err = script.Compile(text)
	}
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(b))
	if c.Address {
		params, err := c.app.params()
		if err != nil {
			return err
		}
		addr, err := script.ScriptHashAddress(b, params)
		if err != nil {
			return err
		}
		fmt.Println(addr)
	}
	return nil
}

type disasmCommand struct {
	app *app
}

func (c *disasmCommand) Execute(args []string) error {
	for _, arg := range args {
		b, err := hex.DecodeString(arg)
		if err != nil {
			return fmt.Errorf("script hex: %w", err)
		}
		fmt.Println(script.Disasm(b))
	}
	return nil
}

type createCommand struct {
	app       *app
	Type      uint16   `long:"type" description:"0 transfer etp, 1 deposit etp, 3 transfer asset" default:"0"`
	Senders   []string `long:"sender" description:"sending address, repeatable"`
	Receivers []string `long:"receiver" description:"receiver as address:amount, repeatable" required:"true"`
	Symbol    string   `long:"symbol" description:"asset symbol"`
	Deposit   uint16   `long:"deposit" description:"deposit period in days"`
	MyChange  string   `long:"mychange" description:"change address"`
	Message   string   `long:"message" description:"attached message"`
	Fee       int64    `long:"fee" description:"fee in ETP bits" default:"10000"`
	UTXOs     []string `long:"utxo" description:"input as txhash:index:sequence, repeatable"`
	Account   string   `long:"account" description:"sign with this account"`
	Auth      string   `long:"auth" description:"account password"`
}

func (c *createCommand) request() (mvsrpc.CreateRawTxRequest, error) {
	req := mvsrpc.CreateRawTxRequest{
		Type:     mvsrpc.TxType(c.Type),
		Senders:  c.Senders,
		Symbol:   c.Symbol,
		Deposit:  c.Deposit,
		MyChange: c.MyChange,
		Message:  c.Message,
		Fee:      btcutil.Amount(c.Fee),
	}
	for _, s := range c.Receivers {
		r, err := mvsrpc.ParseReceiver(s)
		if err != nil {
			return req, err
		}
		req.Receivers = append(req.Receivers, r)
	}
	for _, s := range c.UTXOs {
		u, err := parseUTXO(s)
		if err != nil {
			return req, err
		}
		req.UTXOs = append(req.UTXOs, u)
	}
	return req, nil
}

func parseUTXO(s string) (mvsrpc.UTXO, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return mvsrpc.UTXO{}, fmt.Errorf("utxo %q: want txhash:index:sequence", s)
	}
	n, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return mvsrpc.UTXO{}, fmt.Errorf("utxo %q index: %w", s, err)
	}
	index, err := safe.Uint32(n)
	if err != nil {
		return mvsrpc.UTXO{}, fmt.Errorf("utxo %q index: %w", s, err)
	}
	seq, err := service.ParseSequenceValue(parts[2])
	if err != nil {
		return mvsrpc.UTXO{}, fmt.Errorf("utxo %q sequence: %w", s, err)
	}
	return mvsrpc.UTXO{TxHash: parts[0], Index: index, Sequence: seq}, nil
}

func (c *createCommand) Execute(_ []string) error {
	req, err := c.request()
	if err != nil {
		return err
	}
	client, release, err := c.app.rpc()
	if err != nil {
		return err
	}
	defer release()

	raw, err := client.CreateRawTx(req)
	if err != nil {
		return err
	}
	if c.Account != "" {
		signed, err := client.SignRawTx(c.Account, c.Auth, raw)
		if err != nil {
			return err
		}
		raw = signed.Hex
	}
	fmt.Println(raw)
	return nil
}

type probeCommand struct {
	app *app
	txOptions
	SourceTxs     []string `long:"source-tx" description:"fetch the source transaction by hash, repeatable"`
	Edits         []string `short:"e" long:"edit" description:"edit as kind[input]=value, repeatable"`
	Submit        bool     `long:"submit" description:"send the mutated transaction"`
	Fee           int64    `long:"fee" description:"max fee in ETP bits for sendrawtx" default:"10000"`
	Expect        string   `long:"expect" description:"daemon code the submission must end with, 0 for acceptance"`
	Workers       int      `long:"workers" description:"concurrent probes" default:"4"`
	ClickhouseDSN string   `long:"clickhouse-dsn" env:"RAWTX_CLICKHOUSE_DSN" description:"record submissions in ClickHouse"`
}

func (c *probeCommand) requests() ([]service.ProbeRequest, error) {
	edits, err := parseEdits(c.Edits)
	if err != nil {
		return nil, err
	}
	layout, err := rawtx.ParseLayout(c.Layout)
	if err != nil {
		return nil, err
	}
	base := service.ProbeRequest{
		RawTx:  c.Hex,
		Layout: layout,
		Edits:  edits,
		Submit: c.Submit,
		Fee:    btcutil.Amount(c.Fee),
	}
	if c.Expect != "" {
		n, err := strconv.ParseInt(c.Expect, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("expect: %w", err)
		}
		code := mvsrpc.Code(n)
		base.Expect = &code
	}
	if len(c.SourceTxs) == 0 {
		if base.RawTx == "" {
			return nil, service.ErrNoSource
		}
		return []service.ProbeRequest{base}, nil
	}
	reqs := make([]service.ProbeRequest, len(c.SourceTxs))
	for i, hash := range c.SourceTxs {
		reqs[i] = base
		reqs[i].RawTx = ""
		reqs[i].SourceTxHash = hash
	}
	return reqs, nil
}

func (c *probeCommand) Execute(_ []string) error {
	reqs, err := c.requests()
	if err != nil {
		return err
	}
	client, release, err := c.app.rpc()
	if err != nil {
		return err
	}
	defer release()

	var repo service.SubmissionRepository
	if c.ClickhouseDSN != "" {
		r, err := clickhouse.NewRepository(c.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := r.Close(); err != nil {
				c.app.logger.Error("failed to close repository", zap.Error(err))
			}
		}()
		repo = r
	}

	network := c.app.network()
	svc, err := service.NewProbeService(client, repo, metrics.NewProbe(network), network, c.app.logger.Named("probe"))
	if err != nil {
		return err
	}
	svc.Start(c.app.ctx)
	defer svc.Stop()

	results, runErr := svc.RunAll(c.app.ctx, c.Workers, reqs)
	subs := make([]model.Submission, 0, len(results))
	for _, res := range results {
		if res != nil {
			subs = append(subs, res.Submission)
		}
	}
	if err := printJSON(subs); err != nil {
		return err
	}
	return runErr
}

type waitCommand struct {
	app    *app
	Height uint64        `long:"height" description:"block height to wait for" required:"true"`
	Poll   time.Duration `long:"poll" description:"poll interval" default:"2s"`
}

func (c *waitCommand) Execute(_ []string) error {
	client, release, err := c.app.rpc()
	if err != nil {
		return err
	}
	defer release()

	height, err := client.WaitForHeight(c.app.ctx, c.Height, c.Poll)
	if err != nil {
		return err
	}
	header, err := client.GetBlockHeader(height)
	if err != nil {
		return err
	}
	return printJSON(header)
}
