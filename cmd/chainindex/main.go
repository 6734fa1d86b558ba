// Package main runs the chain index: HTTP queries and commands, plus an optional Kafka block feed.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/service/ingester"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/service/query"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/source/kafka"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/transport/httpapi"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/utxo"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/metrics"
)

var config struct {
	Addr            string        `long:"addr" env:"CHAININDEX_ADDR" description:"http listen addr" default:":8080"`
	Network         string        `long:"network" env:"CHAININDEX_NETWORK" description:"network label" default:"mainnet"`
	Store           string        `long:"store" env:"CHAININDEX_STORE" description:"store backend" choice:"clickhouse" choice:"badger" default:"clickhouse"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"CHAININDEX_CLICKHOUSE_DSN" description:"clickhouse dsn"`
	BadgerDir       string        `long:"badger-dir" env:"CHAININDEX_BADGER_DIR" description:"badger data dir"`
	RollbackWindow  int           `long:"rollback-window" env:"CHAININDEX_ROLLBACK_WINDOW" description:"number of blocks that can be rolled back" default:"2160"`
	TxCacheSize     int           `long:"tx-cache-size" env:"CHAININDEX_TX_CACHE_SIZE" description:"transactions kept in the query cache" default:"4096"`
	AddressRefLimit int           `long:"address-ref-limit" env:"CHAININDEX_ADDRESS_REF_LIMIT" description:"max address rows read per query" default:"1000"`
	KafkaBrokers    []string      `long:"kafka-broker" env:"CHAININDEX_KAFKA_BROKERS" env-delim:"," description:"kafka brokers; the block feed is off when empty"`
	KafkaTopic      string        `long:"kafka-topic" env:"CHAININDEX_KAFKA_TOPIC" description:"block event topic" default:"chainindex.blocks"`
	KafkaGroup      string        `long:"kafka-group" env:"CHAININDEX_KAFKA_GROUP" description:"consumer group id" default:"chainindex"`
	RetryInitial    time.Duration `long:"retry-initial" env:"CHAININDEX_RETRY_INITIAL" description:"first artifact write retry delay" default:"500ms"`
	RetryMax        time.Duration `long:"retry-max" env:"CHAININDEX_RETRY_MAX" description:"max artifact write retry delay" default:"30s"`
}

func main() {
	if _, err := flags.Parse(&config); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		panic("failed to parse flags: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	network := model.Network(config.Network)
	st, err := openStore(config.Store, network, logger)
	if err != nil {
		logger.Fatal("Open store", zap.String("store", config.Store), zap.Error(err))
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("Failed to close store", zap.Error(err))
		}
	}()

	window := config.RollbackWindow
	if window <= 0 {
		window = utxo.DefaultRollbackWindow
	}
	ingest, err := ingester.NewService(st, metrics.NewIngester(network), window, logger)
	if err != nil {
		logger.Fatal("Create ingester", zap.Error(err))
	}
	queries, err := query.NewService(st, ingest, metrics.NewQuery(network), query.Options{
		TxCacheSize:     config.TxCacheSize,
		AddressRefLimit: config.AddressRefLimit,
	}, logger)
	if err != nil {
		logger.Fatal("Create query service", zap.Error(err))
	}

	if len(config.KafkaBrokers) > 0 {
		handler := kafka.NewHandler(ingest, metrics.NewBlockSource("kafka", network), clock.Backoff{
			Initial: config.RetryInitial,
			Max:     config.RetryMax,
		}, logger)
		consumer, err := kafka.NewConsumer(kafka.Config{
			Brokers: config.KafkaBrokers,
			Topic:   config.KafkaTopic,
			GroupID: config.KafkaGroup,
		}, handler, logger)
		if err != nil {
			logger.Fatal("Create kafka consumer", zap.Error(err))
		}
		go func() {
			if err := consumer.Run(ctx); err != nil {
				logger.Error("Kafka consumer stopped", zap.Error(err))
				stop()
			}
		}()
		defer func() {
			if err := consumer.Close(); err != nil {
				logger.Error("Failed to close kafka consumer", zap.Error(err))
			}
		}()
	}

	mux := http.NewServeMux()
	mux.Handle("/v1/", httpapi.NewHandler(queries, ingest, logger).Router())
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr), zap.String("store", config.Store))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
