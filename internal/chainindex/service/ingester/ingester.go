// Package ingester applies control commands to the UTXO index and the store.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/utxo"
)

// Service is the only owner of the UTXO index. Commands are serialized by
// writeMu; readers take stateMu and never wait on store writes.
type Service struct {
	logger  *zap.Logger
	store   Store
	metrics Metrics

	writeMu sync.Mutex

	stateMu sync.RWMutex
	index   *utxo.Index
}

// NewService builds a Service tracking at most window blocks of rollback history.
func NewService(store Store, metrics Metrics, window int, logger *zap.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("ingester store is required")
	}
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}
	if window <= 0 {
		window = utxo.DefaultRollbackWindow
	}

	return &Service{
		logger:  logger,
		store:   store,
		metrics: metrics,
		index:   utxo.NewIndex(window),
	}, nil
}

// AppendBlock advances the index by one block and persists its artifacts.
func (s *Service) AppendBlock(ctx context.Context, tip model.Tip, txs []model.Transaction) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveCommand("append_block", err, start)
	}()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	a, err := buildArtifacts(txs)
	if err != nil {
		return fmt.Errorf("build artifacts for block %s: %w", tip, err)
	}

	delta := utxo.FromBlock(tip, txs)

	s.stateMu.Lock()
	pos, insertErr := s.index.Insert(delta)
	current, utxos := s.index.Tip(), s.index.Len()
	s.stateMu.Unlock()

	if insertErr != nil {
		s.logger.Error("insert block failed",
			zap.Stringer("tip", tip),
			zap.Stringer("current", current),
			zap.Error(insertErr),
		)
		return fmt.Errorf("%w: %w", ErrInsertionFailed, insertErr)
	}

	s.metrics.ObserveBlock(len(txs))
	s.metrics.SetState(current, utxos)
	s.logger.Debug("block inserted",
		zap.Stringer("tip", tip),
		zap.Int("txs", len(txs)),
		zap.Int("produced", len(delta.Produced)),
		zap.Int("consumed", len(delta.Consumed)),
		zap.Int("depth", pos.Depth),
		zap.Int("folded", pos.Folded),
	)

	if err = s.persist(ctx, a); err != nil {
		s.logger.Error("persist block artifacts failed", zap.Stringer("tip", tip), zap.Error(err))
		return fmt.Errorf("%w: block %s: %w", ErrStoreWriteFailed, tip, err)
	}
	return nil
}

// WriteArtifacts persists the artifacts of txs without touching the index.
// Writes are idempotent, so it is safe to repeat after ErrStoreWriteFailed.
func (s *Service) WriteArtifacts(ctx context.Context, txs []model.Transaction) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveCommand("write_artifacts", err, start)
	}()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	a, err := buildArtifacts(txs)
	if err != nil {
		return fmt.Errorf("build artifacts: %w", err)
	}
	if err = s.persist(ctx, a); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreWriteFailed, err)
	}
	return nil
}

// Rollback rewinds the index to target. The store is left as is.
func (s *Service) Rollback(_ context.Context, target model.Tip) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveCommand("rollback", err, start)
	}()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.stateMu.Lock()
	previous := s.index.Tip()
	current, rollbackErr := s.index.Rollback(target)
	utxos := s.index.Len()
	s.stateMu.Unlock()

	if rollbackErr != nil {
		s.logger.Error("rollback failed",
			zap.Stringer("target", target),
			zap.Stringer("current", previous),
			zap.Error(rollbackErr),
		)
		return fmt.Errorf("%w: %w", ErrRollbackFailed, rollbackErr)
	}

	s.metrics.SetState(current, utxos)
	s.logger.Debug("rolled back", zap.Stringer("from", previous), zap.Stringer("to", current))
	return nil
}

// Tip returns the tip of the index.
func (s *Service) Tip() model.Tip {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.index.Tip()
}

// IsUnspent reports whether ref is in the live set, together with the tip it was checked at.
func (s *Service) IsUnspent(ref model.TxOutRef) (model.Tip, bool) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.index.Tip(), s.index.Contains(ref)
}

// FilterUnspent keeps the refs that are in the live set, in order.
func (s *Service) FilterUnspent(refs []model.TxOutRef) (model.Tip, []model.TxOutRef) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	out := make([]model.TxOutRef, 0, len(refs))
	for _, ref := range refs {
		if s.index.Contains(ref) {
			out = append(out, ref)
		}
	}
	return s.index.Tip(), out
}

// Unspent returns the sorted live set and the tip it belongs to.
func (s *Service) Unspent() (model.Tip, []model.TxOutRef) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.index.Tip(), s.index.Unspent()
}

// Restorable returns the sorted refs a rollback inside the window could make live again.
func (s *Service) Restorable() []model.TxOutRef {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.index.Restorable()
}
