package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/mvsprobe/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCClient interface {
		GetTx(hash string) (string, error)
		SendRawTx(rawTx string, fee btcutil.Amount) (string, error)
	}
	SubmissionRepository interface {
		InsertSubmissions(ctx context.Context, subs []model.Submission) error
	}
	ProbeMetrics interface {
		ObserveStage(stage string, err error, started time.Time)
		ObserveOutcome(sub model.Submission)
	}
)
