package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/mvsprobe/internal/model"
	"github.com/goodnatureofminers/mvsprobe/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ProbeRunner interface {
		Run(ctx context.Context, req service.ProbeRequest) (*service.ProbeResult, error)
	}
	SubmissionReader interface {
		SubmissionsBySource(ctx context.Context, network model.Network, sourceTxHash string) ([]model.Submission, error)
		RecentSubmissions(ctx context.Context, network model.Network, limit uint64) ([]model.Submission, error)
	}
	HTTPMetrics interface {
		Observe(route string, code int, started time.Time)
	}
)
