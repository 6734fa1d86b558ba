package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		InsertDatums(ctx context.Context, rows []model.DatumRow) error
		InsertScripts(ctx context.Context, rows []model.ScriptRow) error
		InsertTransactions(ctx context.Context, rows []model.TxRow) error
		InsertAddresses(ctx context.Context, rows []model.AddressRow) error
		Transaction(ctx context.Context, txid model.TxID) (model.TxRow, bool, error)
		CountTransactions(ctx context.Context) (uint64, bool, error)
		CountScripts(ctx context.Context) (uint64, bool, error)
		CountDistinctCredentials(ctx context.Context) (uint64, bool, error)
		SampleTxIDs(ctx context.Context, limit int) ([]model.TxID, error)
		DatumHashes(ctx context.Context) ([]model.DatumHash, error)
		ScriptHashes(ctx context.Context) ([]model.ScriptHash, error)
		AddressRows(ctx context.Context) ([]model.AddressRow, error)
		DeleteDatums(ctx context.Context, hashes []model.DatumHash) error
		DeleteScripts(ctx context.Context, hashes []model.ScriptHash) error
		DeleteAddressRows(ctx context.Context, rows []model.AddressRow) error
	}
	Metrics interface {
		ObserveCommand(command string, err error, started time.Time)
		ObserveBlock(txs int)
		SetState(tip model.Tip, utxos int)
		ObserveGC(report model.GCReport)
	}
)
