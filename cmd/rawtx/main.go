// Command rawtx decodes, rewrites and submits raw daemon transactions.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type globalOptions struct {
	Network     string `long:"network" env:"RAWTX_NETWORK" description:"network name" default:"mainnet"`
	RPCURL      string `long:"rpc-url" env:"RAWTX_RPC_URL" description:"daemon RPC URL" default:"http://127.0.0.1:8820/rpc/v3"`
	RPCUser     string `long:"rpc-user" env:"RAWTX_RPC_USER" description:"daemon RPC username"`
	RPCPassword string `long:"rpc-password" env:"RAWTX_RPC_PASSWORD" description:"daemon RPC password"`
}

type options struct {
	globalOptions

	Decode decodeCommand `command:"decode" description:"describe a raw transaction"`
	Mutate mutateCommand `command:"mutate" description:"apply edits to a raw transaction"`
	Script scriptCommand `command:"script" description:"assemble script text"`
	Disasm disasmCommand `command:"disasm" description:"disassemble script hex"`
	Create createCommand `command:"create" description:"build and optionally sign a transaction on the daemon"`
	Probe  probeCommand  `command:"probe" description:"mutate transactions and submit them to the daemon"`
	Wait   waitCommand   `command:"wait" description:"wait until the daemon reaches a block height"`
}

// app is shared by every command.
type app struct {
	ctx    context.Context
	logger *zap.Logger
	opts   *globalOptions
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	var opts options
	a := &app{ctx: ctx, logger: logger, opts: &opts.globalOptions}
	opts.Decode.app = a
	opts.Mutate.app = a
	opts.Script.app = a
	opts.Disasm.app = a
	opts.Create.app = a
	opts.Probe.app = a
	opts.Wait.app = a

	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("rawtx failed", zap.Error(err))
	}
}
