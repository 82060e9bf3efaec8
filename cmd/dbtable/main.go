// Command dbtable reads the hash tables of a stopped daemon's data
// directory.
package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/mvsprobe/internal/dbtable"
)

type options struct {
	DataDir string `long:"data-dir" env:"DBTABLE_DATA_DIR" description:"daemon data directory" required:"true"`

	Lookup  lookupCommand  `command:"lookup" description:"print the entry stored under a key"`
	Scan    scanCommand    `command:"scan" description:"print every entry of a table"`
	Summary summaryCommand `command:"summary" description:"fingerprint tables to compare nodes"`
}

type app struct {
	ctx    context.Context
	logger *zap.Logger
	opts   *options
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
	a := &app{ctx: ctx, logger: logger, opts: &opts}
	opts.Lookup.app = a
	opts.Scan.app = a
	opts.Summary.app = a

	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("dbtable failed", zap.Error(err))
	}
}

type entryView struct {
	Bucket  uint64   `json:"bucket"`
	Key     string   `json:"key"`
	Value   string   `json:"value,omitempty"`
	Decoded any      `json:"decoded,omitempty"`
	Rows    []string `json:"rows,omitempty"`
}

func newEntryView(e dbtable.Entry) entryView {
	v := entryView{
		Bucket:  e.Bucket,
		Key:     dbtable.FormatKey(e.Key),
		Decoded: e.Decoded,
	}
	if len(e.Value) > 0 {
		v.Value = hex.EncodeToString(e.Value)
	}
	for _, row := range e.Rows {
		v.Rows = append(v.Rows, hex.EncodeToString(row))
	}
	return v
}

func (a *app) open(name string) (*dbtable.File, error) {
	t, err := dbtable.ByName(name)
	if err != nil {
		return nil, err
	}
	return dbtable.Open(a.opts.DataDir, t)
}

func (a *app) close(f *dbtable.File) {
	if err := f.Close(); err != nil {
		a.logger.Error("failed to close table", zap.String("table", f.Table().Name), zap.Error(err))
	}
}

func newEncoder() *json.Encoder {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc
}
