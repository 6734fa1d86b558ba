package query

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		Datum(ctx context.Context, hash model.DatumHash) (model.DatumRow, bool, error)
		Script(ctx context.Context, hash model.ScriptHash, kind model.ScriptKind) (model.ScriptRow, bool, error)
		Transaction(ctx context.Context, txid model.TxID) (model.TxRow, bool, error)
		AddressRefs(ctx context.Context, credential string, after model.TxOutRef, limit int) ([]model.TxOutRef, error)
	}
	// ChainState is the read side of the ingester's UTXO index.
	ChainState interface {
		Tip() model.Tip
		IsUnspent(ref model.TxOutRef) (model.Tip, bool)
		FilterUnspent(refs []model.TxOutRef) (model.Tip, []model.TxOutRef)
	}
	Metrics interface {
		Observe(query string, found bool, err error, started time.Time)
	}
)
