// Package service runs mutation probes against the daemon.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/mvsprobe/internal/model"
	"github.com/goodnatureofminers/mvsprobe/internal/mvsrpc"
	"github.com/goodnatureofminers/mvsprobe/internal/rawtx"
	"github.com/goodnatureofminers/mvsprobe/pkg/batcher"
	"github.com/goodnatureofminers/mvsprobe/pkg/workerpool"
)

const (
	stageFetch  = "fetch"
	stageDecode = "decode"
	stageMutate = "mutate"
	stageSubmit = "submit"

	submissionBatcherCapacity      = 100
	submissionBatcherFlushInterval = 2 * time.Second
	submissionBatcherRPS           = 10
)

var (
	// ErrUnexpectedOutcome is returned when a submitted probe did not end
	// with the expected daemon code.
	ErrUnexpectedOutcome = errors.New("unexpected probe outcome")
	// ErrNoSource is returned for a request with neither hash nor raw tx.
	ErrNoSource = errors.New("probe needs a source tx hash or raw tx")
)

// ProbeRequest describes one mutation probe. The source transaction is
// fetched by SourceTxHash when set, otherwise RawTx is used.
type ProbeRequest struct {
	SourceTxHash string
	RawTx        string
	Layout       rawtx.Layout
	Edits        []model.Edit
	Submit       bool
	Fee          btcutil.Amount
	// Expect is the daemon code a submitted probe must end with; zero
	// expects acceptance. Nil disables the check.
	Expect *mvsrpc.Code
}

// ProbeResult holds both versions of the transaction and the recorded
// outcome.
type ProbeResult struct {
	Original   *rawtx.Transaction
	Mutated    *rawtx.Transaction
	Submission model.Submission
}

// ProbeService fetches, mutates, re-encodes and optionally submits raw
// transactions, recording every outcome.
type ProbeService struct {
	rpc      RPCClient
	metrics  ProbeMetrics
	logger   *zap.Logger
	network  model.Network
	recorder *batcher.Batcher[model.Submission]
	now      func() time.Time
}

// NewProbeService builds the service. repo may be nil, in which case
// outcomes are only logged.
func NewProbeService(
	rpc RPCClient,
	repo SubmissionRepository,
	metrics ProbeMetrics,
	network model.Network,
	logger *zap.Logger,
) (*ProbeService, error) {
	if rpc == nil {
		return nil, errors.New("rpc client is required")
	}
	if metrics == nil {
		return nil, errors.New("probe metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &ProbeService{
		rpc:     rpc,
		metrics: metrics,
		logger:  logger,
		network: network,
		now:     time.Now,
	}
	if repo != nil {
		s.recorder = batcher.New[model.Submission](
			logger.Named("submissionBatcher"),
			repo.InsertSubmissions,
			submissionBatcherCapacity,
			submissionBatcherFlushInterval,
			submissionBatcherRPS,
		)
	}
	return s, nil
}

// Start begins background recording of submissions.
func (s *ProbeService) Start(ctx context.Context) {
	if s.recorder != nil {
		s.recorder.Start(ctx)
	}
}

// Stop flushes pending submissions.
func (s *ProbeService) Stop() {
	if s.recorder != nil {
		s.recorder.Stop()
	}
}

// Run executes one probe. A daemon rejection is a valid outcome and is
// reported through the returned submission, not as an error, unless it
// contradicts req.Expect.
func (s *ProbeService) Run(ctx context.Context, req ProbeRequest) (*ProbeResult, error) {
	logger := s.logger.With(
		zap.String("network", string(s.network)),
		zap.String("source_tx", req.SourceTxHash),
		zap.Int("edits", len(req.Edits)),
	)

	raw, err := s.source(ctx, req)
	if err != nil {
		return nil, err
	}

	original, err := s.decode(raw, req.Layout)
	if err != nil {
		return nil, err
	}

	mutated, err := s.mutate(original, req.Edits)
	if err != nil {
		return nil, err
	}

	sub := model.Submission{
		Network:      s.network,
		SourceTxHash: req.SourceTxHash,
		TxHash:       mutated.TxHash().String(),
		RawTx:        rawtx.Encode(mutated),
		Edits:        editStrings(req.Edits),
		Status:       model.SubmissionBuilt,
		CreatedAt:    s.now().UTC(),
	}

	var submitErr error
	if req.Submit {
		submitErr = s.submit(&sub, req.Fee)
	}

	s.metrics.ObserveOutcome(sub)
	s.record(ctx, sub)
	logger.Info("probe finished",
		zap.String("tx_hash", sub.TxHash),
		zap.String("status", string(sub.Status)),
		zap.Int32("code", sub.Code))

	res := &ProbeResult{Original: original, Mutated: mutated, Submission: sub}
	if submitErr != nil {
		return res, submitErr
	}
	if req.Submit && req.Expect != nil && mvsrpc.Code(sub.Code) != *req.Expect {
		return res, fmt.Errorf("%w: want code %d (%s), got %d (%s)",
			ErrUnexpectedOutcome, int(*req.Expect), *req.Expect, sub.Code, mvsrpc.Code(sub.Code))
	}
	return res, nil
}

// RunAll executes probes concurrently and returns results in request order.
// The first failing probe cancels the rest; results of the probes that
// finished are still returned with that error, and skipped ones are nil.
func (s *ProbeService) RunAll(ctx context.Context, workers int, reqs []ProbeRequest) ([]*ProbeResult, error) {
	return workerpool.Map(ctx, workers, reqs, s.Run)
}

func (s *ProbeService) source(ctx context.Context, req ProbeRequest) (raw string, err error) {
	if req.SourceTxHash == "" {
		if req.RawTx == "" {
			return "", ErrNoSource
		}
		return req.RawTx, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	started := time.Now()
	defer func() {
		s.metrics.ObserveStage(stageFetch, err, started)
	}()

	raw, err = s.rpc.GetTx(req.SourceTxHash)
	if err != nil {
		return "", fmt.Errorf("get tx %s: %w", req.SourceTxHash, err)
	}
	return raw, nil
}

func (s *ProbeService) decode(raw string, layout rawtx.Layout) (tx *rawtx.Transaction, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveStage(stageDecode, err, started)
	}()

	tx, err = rawtx.Decode(raw, layout)
	if err != nil {
		return nil, fmt.Errorf("decode source tx: %w", err)
	}
	return tx, nil
}

func (s *ProbeService) mutate(original *rawtx.Transaction, edits []model.Edit) (tx *rawtx.Transaction, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveStage(stageMutate, err, started)
	}()

	ms, err := Mutations(edits)
	if err != nil {
		return nil, err
	}
	tx = original.Clone()
	if err = tx.Apply(ms...); err != nil {
		return nil, fmt.Errorf("apply edits: %w", err)
	}
	return tx, nil
}

// submit sends the mutated transaction and fills in the outcome. Only
// failures without a daemon answer are returned.
func (s *ProbeService) submit(sub *model.Submission, fee btcutil.Amount) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveStage(stageSubmit, err, started)
	}()

	hash, sendErr := s.rpc.SendRawTx(sub.RawTx, fee)
	var rpcErr *mvsrpc.Error
	switch {
	case sendErr == nil:
		sub.Status = model.SubmissionAccepted
		if hash != "" {
			sub.TxHash = hash
		}
	case errors.As(sendErr, &rpcErr):
		sub.Status = model.SubmissionRejected
		sub.Code = int32(rpcErr.Code)
		sub.Message = rpcErr.Message
	default:
		sub.Status = model.SubmissionFailed
		sub.Message = sendErr.Error()
		return fmt.Errorf("send raw tx: %w", sendErr)
	}
	return nil
}

func (s *ProbeService) record(ctx context.Context, sub model.Submission) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Add(ctx, sub); err != nil {
		s.logger.Warn("submission not recorded", zap.String("tx_hash", sub.TxHash), zap.Error(err))
	}
}

func editStrings(edits []model.Edit) []string {
	out := make([]string, len(edits))
	for i, e := range edits {
		out[i] = e.String()
	}
	return out
}
