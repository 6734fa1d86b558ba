package httpapi

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Querier interface {
		DatumFromHash(ctx context.Context, hash model.DatumHash) (model.Datum, bool, error)
		ValidatorFromHash(ctx context.Context, hash model.ScriptHash) (model.Script, bool, error)
		MintingPolicyFromHash(ctx context.Context, hash model.ScriptHash) (model.Script, bool, error)
		StakeValidatorFromHash(ctx context.Context, hash model.ScriptHash) (model.Script, bool, error)
		RedeemerFromHash(ctx context.Context, hash model.ScriptHash) (model.Redeemer, bool, error)
		TxFromTxID(ctx context.Context, txid model.TxID) (model.Transaction, bool, error)
		TxOutFromRef(ctx context.Context, ref model.TxOutRef) (model.ChainIndexTxOut, bool, error)
		UtxoSetMembership(ref model.TxOutRef) model.UtxoMembership
		UtxoSetAtAddress(ctx context.Context, credential model.Credential) (model.UtxoAtAddress, error)
		GetTip() model.Tip
	}
	Controller interface {
		AppendBlock(ctx context.Context, tip model.Tip, txs []model.Transaction) error
		Rollback(ctx context.Context, target model.Tip) error
		CollectGarbage(ctx context.Context) (model.GCReport, error)
		GetDiagnostics(ctx context.Context) (model.Diagnostics, error)
	}
)
