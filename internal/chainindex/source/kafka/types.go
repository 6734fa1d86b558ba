package kafka

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ingester interface {
		AppendBlock(ctx context.Context, tip model.Tip, txs []model.Transaction) error
		WriteArtifacts(ctx context.Context, txs []model.Transaction) error
		Rollback(ctx context.Context, target model.Tip) error
	}
	Metrics interface {
		ObserveMessage(kind string, err error, started time.Time)
		ObserveArtifactRetry()
	}
)
