package transport

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/goodnatureofminers/mvsprobe/internal/model"
	"github.com/goodnatureofminers/mvsprobe/internal/mvsrpc"
)

type submissionView struct {
	Network      string    `json:"network"`
	SourceTxHash string    `json:"source_tx_hash,omitempty"`
	TxHash       string    `json:"tx_hash"`
	RawTx        string    `json:"raw_tx"`
	Edits        []string  `json:"edits"`
	Status       string    `json:"status"`
	Code         int32     `json:"code"`
	CodeName     string    `json:"code_name,omitempty"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func newSubmissionView(sub model.Submission) submissionView {
	v := submissionView{
		Network:      string(sub.Network),
		SourceTxHash: sub.SourceTxHash,
		TxHash:       sub.TxHash,
		RawTx:        sub.RawTx,
		Edits:        sub.Edits,
		Status:       string(sub.Status),
		Code:         sub.Code,
		Message:      sub.Message,
		CreatedAt:    sub.CreatedAt,
	}
	if v.Edits == nil {
		v.Edits = []string{}
	}
	if sub.Code != 0 {
		v.CodeName = mvsrpc.Code(sub.Code).String()
	}
	return v
}

// listSubmissions answers ?source=<hash> with every probe of that source
// and otherwise the most recent probes, bounded by ?limit=.
func (h *Handler) listSubmissions(r *http.Request) (any, error) {
	if h.submissions == nil {
		return nil, &apiError{status: http.StatusServiceUnavailable, err: fmt.Errorf("submissions: %w", errUnavailable)}
	}

	q := r.URL.Query()
	var (
		subs []model.Submission
		err  error
	)
	if source := q.Get("source"); source != "" {
		subs, err = h.submissions.SubmissionsBySource(r.Context(), h.network, source)
	} else {
		limit := uint64(defaultRecentLimit)
		if s := q.Get("limit"); s != "" {
			limit, err = strconv.ParseUint(s, 10, 64)
			if err != nil || limit == 0 || limit > maxRecentLimit {
				return nil, badRequest(fmt.Errorf("limit must be between 1 and %d", maxRecentLimit))
			}
		}
		subs, err = h.submissions.RecentSubmissions(r.Context(), h.network, limit)
	}
	if err != nil {
		return nil, err
	}

	views := make([]submissionView, len(subs))
	for i, sub := range subs {
		views[i] = newSubmissionView(sub)
	}
	return map[string]any{"submissions": views}, nil
}
