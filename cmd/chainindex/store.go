package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/repository/badger"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/service/ingester"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/service/query"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/metrics"
)

type store interface {
	ingester.Store
	query.Store
	Close() error
}

func openStore(backend string, network model.Network, logger *zap.Logger) (store, error) {
	repoMetrics := metrics.NewStoreRepository(backend, network)
	switch backend {
	case "clickhouse":
		return clickhouse.NewRepository(config.ClickhouseDSN, repoMetrics)
	case "badger":
		return badger.NewRepository(badger.Options{Dir: config.BadgerDir}, logger, repoMetrics)
	default:
		return nil, fmt.Errorf("unknown store %q", backend)
	}
}
