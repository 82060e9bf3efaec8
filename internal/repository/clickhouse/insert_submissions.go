package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/mvsprobe/internal/model"
)

const insertSubmissionsQuery = `
INSERT INTO probe_submissions (
	network,
	source_tx_hash,
	tx_hash,
	raw_tx,
	edits,
	status,
	code,
	message,
	created_at
) VALUES`

// InsertSubmissions stores submission rows in ClickHouse.
func (r *Repository) InsertSubmissions(ctx context.Context, subs []model.Submission) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_submissions", firstNetwork(subs), err, start)
	}()

	if len(subs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertSubmissionsQuery)
	if err != nil {
		return fmt.Errorf("prepare submissions batch: %w", err)
	}

	for _, sub := range subs {
		edits := sub.Edits
		if edits == nil {
			edits = []string{}
		}
		if err = batch.Append(
			string(sub.Network),
			sub.SourceTxHash,
			sub.TxHash,
			sub.RawTx,
			edits,
			string(sub.Status),
			sub.Code,
			sub.Message,
			sub.CreatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append submission: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert submissions: %w", err)
	}
	return nil
}

func firstNetwork(subs []model.Submission) model.Network {
	if len(subs) == 0 {
		return ""
	}
	return subs[0].Network
}
