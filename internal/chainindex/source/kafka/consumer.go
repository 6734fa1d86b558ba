// Package kafka feeds the ingester from a topic of block events.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/clock"
)

var defaultBackoff = clock.Backoff{Initial: 500 * time.Millisecond, Max: 30 * time.Second}

// Config selects the brokers, topic and consumer group.
type Config struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Consumer runs a consumer group session loop over one topic.
type Consumer struct {
	logger  *zap.Logger
	group   sarama.ConsumerGroup
	topic   string
	handler sarama.ConsumerGroupHandler
}

// NewConsumer connects a consumer group. Partitions are consumed from the oldest offset.
func NewConsumer(cfg Config, handler sarama.ConsumerGroupHandler, logger *zap.Logger) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are not set")
	}
	if cfg.Topic == "" || cfg.GroupID == "" {
		return nil, errors.New("kafka topic and group id are required")
	}

	config := sarama.NewConfig()
	config.Consumer.Return.Errors = true
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRange()}
	config.Net.DialTimeout = 10 * time.Second
	config.Net.ReadTimeout = 10 * time.Second
	config.Net.WriteTimeout = 10 * time.Second
	config.Metadata.Retry.Max = 3
	config.Metadata.Retry.Backoff = 2 * time.Second

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, config)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}
	return newConsumer(group, cfg.Topic, handler, logger), nil
}

func newConsumer(group sarama.ConsumerGroup, topic string, handler sarama.ConsumerGroupHandler, logger *zap.Logger) *Consumer {
	return &Consumer{
		logger:  logger.Named("kafka_consumer"),
		group:   group,
		topic:   topic,
		handler: handler,
	}
}

// Run consumes until ctx is done. Consume returns on every rebalance, so it is called in a loop.
func (c *Consumer) Run(ctx context.Context) error {
	go func() {
		for err := range c.group.Errors() {
			c.logger.Error("consumer group error", zap.Error(err))
		}
	}()

	c.logger.Info("consuming block events", zap.String("topic", c.topic))
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, c.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return fmt.Errorf("consume %s: %w", c.topic, err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}
