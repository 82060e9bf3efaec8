package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/mvsprobe/internal/model"
)

const selectSubmissionColumns = `
SELECT
	network,
	source_tx_hash,
	tx_hash,
	raw_tx,
	edits,
	status,
	code,
	message,
	created_at
FROM probe_submissions`

const submissionsBySourceQuery = selectSubmissionColumns + `
WHERE network = ? AND source_tx_hash = ?
ORDER BY created_at`

const recentSubmissionsQuery = selectSubmissionColumns + `
WHERE network = ?
ORDER BY created_at DESC
LIMIT ?`

// SubmissionsBySource returns every probe derived from one source
// transaction, oldest first.
func (r *Repository) SubmissionsBySource(ctx context.Context, network model.Network, sourceTxHash string) (subs []model.Submission, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("submissions_by_source", network, err, start)
	}()

	return r.querySubmissions(ctx, submissionsBySourceQuery, string(network), sourceTxHash)
}

// RecentSubmissions returns the latest probes, newest first.
func (r *Repository) RecentSubmissions(ctx context.Context, network model.Network, limit uint64) (subs []model.Submission, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("recent_submissions", network, err, start)
	}()

	return r.querySubmissions(ctx, recentSubmissionsQuery, string(network), limit)
}

func (r *Repository) querySubmissions(ctx context.Context, query string, args ...any) (subs []model.Submission, err error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			sub     model.Submission
			network string
			status  string
		)
		if err = rows.Scan(
			&network,
			&sub.SourceTxHash,
			&sub.TxHash,
			&sub.RawTx,
			&sub.Edits,
			&status,
			&sub.Code,
			&sub.Message,
			&sub.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		sub.Network = model.Network(network)
		sub.Status = model.SubmissionStatus(status)
		subs = append(subs, sub)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return subs, nil
}
