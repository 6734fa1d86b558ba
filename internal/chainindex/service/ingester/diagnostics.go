package ingester

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/pkg/safe"
)

// GetDiagnostics summarizes the store. A count the store has no aggregate for is -1.
func (s *Service) GetDiagnostics(ctx context.Context) (d model.Diagnostics, err error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveCommand("diagnostics", err, start)
	}()

	if d.NumTransactions, err = countOrMissing(ctx, s.store.CountTransactions); err != nil {
		return model.Diagnostics{}, fmt.Errorf("count transactions: %w", err)
	}
	if d.NumScripts, err = countOrMissing(ctx, s.store.CountScripts); err != nil {
		return model.Diagnostics{}, fmt.Errorf("count scripts: %w", err)
	}
	if d.NumAddresses, err = countOrMissing(ctx, s.store.CountDistinctCredentials); err != nil {
		return model.Diagnostics{}, fmt.Errorf("count credentials: %w", err)
	}
	if d.SomeTransactions, err = s.store.SampleTxIDs(ctx, diagnosticsSampleSize); err != nil {
		return model.Diagnostics{}, fmt.Errorf("sample transactions: %w", err)
	}
	return d, nil
}

func countOrMissing(ctx context.Context, count func(context.Context) (uint64, bool, error)) (int64, error) {
	n, ok, err := count(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return -1, nil
	}
	return safe.Int64(n)
}
