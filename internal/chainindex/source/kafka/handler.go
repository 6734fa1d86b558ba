package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/service/ingester"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/wire"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/clock"
)

type partitionKey struct {
	topic     string
	partition int32
}

// Handler applies block events to the ingester. It implements sarama.ConsumerGroupHandler.
type Handler struct {
	logger   *zap.Logger
	ingester Ingester
	metrics  Metrics
	backoff  clock.Backoff

	mu       sync.Mutex
	replayed map[partitionKey]struct{}
}

// NewHandler builds a Handler. Failed artifact writes are retried with backoff.
func NewHandler(ing Ingester, metrics Metrics, backoff clock.Backoff, logger *zap.Logger) *Handler {
	if backoff.Initial <= 0 {
		backoff = defaultBackoff
	}
	return &Handler{
		logger:   logger.Named("kafka_handler"),
		ingester: ing,
		metrics:  metrics,
		backoff:  backoff,
		replayed: make(map[partitionKey]struct{}),
	}
}

// Setup rewinds every partition this process has not consumed yet to the
// oldest offset. The UTXO index lives in memory, so after a restart it has to
// be rebuilt from the first block; committed offsets only resume a partition
// across rebalances of the same process.
func (h *Handler) Setup(session sarama.ConsumerGroupSession) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic, partitions := range session.Claims() {
		for _, partition := range partitions {
			key := partitionKey{topic: topic, partition: partition}
			if _, ok := h.replayed[key]; ok {
				continue
			}
			h.replayed[key] = struct{}{}
			session.ResetOffset(topic, partition, sarama.OffsetOldest, "")
			h.logger.Info("replaying partition from the oldest offset",
				zap.String("topic", topic),
				zap.Int32("partition", partition),
			)
		}
	}
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim handles messages in partition order. A message is marked once
// its event is applied or rejected for good; shutdown during a retry leaves it unmarked.
func (h *Handler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.handle(ctx, msg); err != nil {
				return nil
			}
			session.MarkMessage(msg, "")
		case <-ctx.Done():
			return nil
		}
	}
}

// handle returns an error only when ctx ended before the event was settled.
func (h *Handler) handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	start := time.Now()

	ev, err := decodeEvent(msg.Value)
	if err != nil {
		h.metrics.ObserveMessage("invalid", err, start)
		h.logger.Error("skip malformed event",
			zap.String("topic", msg.Topic),
			zap.Int32("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return nil
	}

	switch ev.Type {
	case EventRollback:
		err = h.ingester.Rollback(ctx, ev.Tip.Model())
	default:
		err = h.appendBlock(ctx, ev)
	}
	h.metrics.ObserveMessage(ev.Type, err, start)

	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return err
	case errors.Is(err, ingester.ErrInsertionFailed), errors.Is(err, ingester.ErrRollbackFailed):
		h.logger.Error("event rejected",
			zap.String("type", ev.Type),
			zap.Stringer("tip", ev.Tip.Model()),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return nil
	default:
		h.logger.Error("event failed", zap.String("type", ev.Type), zap.Int64("offset", msg.Offset), zap.Error(err))
		return nil
	}
}

func (h *Handler) appendBlock(ctx context.Context, ev Event) error {
	tip, txs, err := wire.Block{Tip: ev.Tip, Transactions: ev.Transactions}.Model()
	if err != nil {
		return err
	}

	err = h.ingester.AppendBlock(ctx, tip, txs)
	if !errors.Is(err, ingester.ErrStoreWriteFailed) {
		return err
	}

	h.logger.Warn("retrying artifact write", zap.Stringer("tip", tip), zap.Error(err))
	return clock.Retry(ctx, h.backoff, func(ctx context.Context) error {
		return h.ingester.WriteArtifacts(ctx, txs)
	}, func(attempt int, err error, wait time.Duration) {
		h.metrics.ObserveArtifactRetry()
		h.logger.Warn("artifact write failed",
			zap.Stringer("tip", tip),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	})
}
