package ingester

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/codec"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/pkg/batcher"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/pkg/workerpool"
)

// reachable holds the rows referenced from the live set and from the refs a
// rollback could restore.
type reachable struct {
	mu      sync.Mutex
	live    map[model.TxOutRef]struct{}
	datums  map[model.DatumHash]struct{}
	scripts map[model.ScriptHash]struct{}
}

// CollectGarbage deletes datum, script and address rows that no unspent
// output refers to. Outputs spent inside the rollback window count as
// unspent. Transaction rows are kept.
func (s *Service) CollectGarbage(ctx context.Context) (report model.GCReport, err error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveCommand("collect_garbage", err, start)
	}()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tip, live := s.Unspent()
	restorable := s.Restorable()
	marks, err := s.mark(ctx, append(live, restorable...))
	if err != nil {
		return model.GCReport{}, fmt.Errorf("mark reachable rows: %w", err)
	}

	if report, err = s.sweep(ctx, marks); err != nil {
		return report, fmt.Errorf("sweep unreachable rows: %w", err)
	}

	s.metrics.ObserveGC(report)
	s.logger.Info("garbage collected",
		zap.Stringer("tip", tip),
		zap.Int("live", len(live)),
		zap.Int("restorable", len(restorable)),
		zap.Int("address_rows", report.AddressRows),
		zap.Int("datums", report.Datums),
		zap.Int("scripts", report.Scripts),
	)
	return report, nil
}

func (s *Service) mark(ctx context.Context, live []model.TxOutRef) (*reachable, error) {
	marks := &reachable{
		live:    make(map[model.TxOutRef]struct{}, len(live)),
		datums:  make(map[model.DatumHash]struct{}),
		scripts: make(map[model.ScriptHash]struct{}),
	}

	owners := make(map[model.TxID][]uint32)
	for _, ref := range live {
		marks.live[ref] = struct{}{}
		owners[ref.TxID] = append(owners[ref.TxID], ref.Index)
	}
	txids := make([]model.TxID, 0, len(owners))
	for txid := range owners {
		txids = append(txids, txid)
	}

	err := workerpool.Process(ctx, gcLoadWorkers, txids, func(ctx context.Context, txid model.TxID) error {
		row, found, err := s.store.Transaction(ctx, txid)
		if err != nil {
			return fmt.Errorf("load transaction %s: %w", txid, err)
		}
		if !found {
			s.logger.Warn("live output without stored transaction", zap.String("txid", string(txid)))
			return nil
		}
		tx, err := codec.DecodeTransaction(row.Payload)
		if err != nil {
			return err
		}
		marks.add(tx, owners[txid])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return marks, nil
}

func (r *reachable) add(tx model.Transaction, outputs []uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for hash := range tx.Datums {
		r.datums[hash] = struct{}{}
	}
	for _, group := range []map[model.ScriptHash]model.Script{tx.Validators, tx.MintingPolicies, tx.StakeValidators} {
		for hash := range group {
			r.scripts[hash] = struct{}{}
		}
	}
	for hash := range tx.Redeemers {
		r.scripts[hash] = struct{}{}
	}
	for _, i := range outputs {
		if int(i) >= len(tx.Outputs) {
			continue
		}
		out := tx.Outputs[i]
		if out.Address.Credential.Kind != model.ScriptCredential {
			continue
		}
		r.scripts[model.ScriptHash(out.Address.Credential.Hash)] = struct{}{}
		if out.DatumHash != nil {
			r.datums[*out.DatumHash] = struct{}{}
		}
	}
}

func (s *Service) sweep(ctx context.Context, marks *reachable) (model.GCReport, error) {
	var report model.GCReport

	addressRows, err := s.store.AddressRows(ctx)
	if err != nil {
		return report, err
	}
	var deadAddresses []model.AddressRow
	for _, row := range addressRows {
		if _, ok := marks.live[row.Ref]; !ok {
			deadAddresses = append(deadAddresses, row)
		}
	}

	datumHashes, err := s.store.DatumHashes(ctx)
	if err != nil {
		return report, err
	}
	var deadDatums []model.DatumHash
	for _, hash := range datumHashes {
		if _, ok := marks.datums[hash]; !ok {
			deadDatums = append(deadDatums, hash)
		}
	}

	scriptHashes, err := s.store.ScriptHashes(ctx)
	if err != nil {
		return report, err
	}
	var deadScripts []model.ScriptHash
	for _, hash := range scriptHashes {
		if _, ok := marks.scripts[hash]; !ok {
			deadScripts = append(deadScripts, hash)
		}
	}

	var errs []error
	report.AddressRows, err = deleteBatched(ctx, s.logger.Named("gcAddresses"), deadAddresses, s.store.DeleteAddressRows)
	errs = append(errs, err)
	report.Datums, err = deleteBatched(ctx, s.logger.Named("gcDatums"), deadDatums, s.store.DeleteDatums)
	errs = append(errs, err)
	report.Scripts, err = deleteBatched(ctx, s.logger.Named("gcScripts"), deadScripts, s.store.DeleteScripts)
	errs = append(errs, err)

	return report, errors.Join(errs...)
}

// deleteBatched feeds items through a rate limited batcher and returns how many were deleted.
func deleteBatched[T any](ctx context.Context, logger *zap.Logger, items []T, del func(context.Context, []T) error) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	b := batcher.New(logger, del, gcDeleteBatchSize, gcDeleteFlushInterval, gcDeleteRPS)
	b.Start(ctx)

	var addErr error
	for _, item := range items {
		if addErr = b.Add(ctx, item); addErr != nil {
			break
		}
	}
	stopErr := b.Stop()
	return b.Flushed(), errors.Join(addErr, stopErr)
}
