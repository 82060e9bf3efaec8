package main

import (
	"errors"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/mvsprobe/internal/dbtable"
)

var errStop = errors.New("stop")

type lookupCommand struct {
	app   *app
	Table string `long:"table" description:"table name" required:"true"`
	Key   string `long:"key" description:"key hex in display order" required:"true"`
}

func (c *lookupCommand) Execute(_ []string) error {
	key, err := dbtable.ParseKey(c.Key)
	if err != nil {
		return err
	}
	f, err := c.app.open(c.Table)
	if err != nil {
		return err
	}
	defer c.app.close(f)

	e, err := f.Lookup(key)
	if err != nil {
		return err
	}
	return newEncoder().Encode(newEntryView(e))
}

type scanCommand struct {
	app   *app
	Table string `long:"table" description:"table name" required:"true"`
	Limit int    `long:"limit" description:"stop after this many entries, 0 for all"`
}

func (c *scanCommand) Execute(_ []string) error {
	f, err := c.app.open(c.Table)
	if err != nil {
		return err
	}
	defer c.app.close(f)

	c.app.logger.Info("scanning table",
		zap.String("table", f.Table().Name),
		zap.Uint64("buckets", f.Buckets()),
	)
	enc := newEncoder()
	n := 0
	err = f.Scan(c.app.ctx, func(e dbtable.Entry) error {
		if err := enc.Encode(newEntryView(e)); err != nil {
			return err
		}
		n++
		if c.Limit > 0 && n >= c.Limit {
			return errStop
		}
		return nil
	})
	if errors.Is(err, errStop) {
		return nil
	}
	return err
}

type summaryCommand struct {
	app     *app
	Tables  []string `long:"table" description:"table name, repeatable, all tables when empty"`
	Workers int      `long:"workers" description:"tables read concurrently" default:"4"`
}

func (c *summaryCommand) Execute(_ []string) error {
	tables := dbtable.Tables()
	if len(c.Tables) > 0 {
		tables = tables[:0:0]
		for _, name := range c.Tables {
			t, err := dbtable.ByName(name)
			if err != nil {
				return err
			}
			tables = append(tables, t)
		}
	}
	summaries, err := dbtable.Summarize(c.app.ctx, c.app.opts.DataDir, tables, c.Workers)
	if err != nil {
		return err
	}
	return newEncoder().Encode(summaries)
}
