package ingester

import (
	"context"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/codec"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/pkg/workerpool"
)

// artifacts are the rows a set of transactions contributes to each table.
type artifacts struct {
	datums       []model.DatumRow
	scripts      []model.ScriptRow
	transactions []model.TxRow
	addresses    []model.AddressRow
}

func buildArtifacts(txs []model.Transaction) (artifacts, error) {
	datums := make(map[model.DatumHash][]byte)
	scripts := make(map[scriptKey]model.ScriptRow)

	var out artifacts
	for _, tx := range txs {
		payload, err := codec.EncodeTransaction(tx)
		if err != nil {
			return artifacts{}, err
		}
		out.transactions = append(out.transactions, model.TxRow{TxID: tx.TxID, Payload: payload})

		for hash, d := range tx.Datums {
			if datums[hash], err = codec.EncodeBytes(d); err != nil {
				return artifacts{}, fmt.Errorf("datum %s: %w", hash, err)
			}
		}
		for _, group := range []struct {
			kind    model.ScriptKind
			scripts map[model.ScriptHash]model.Script
		}{
			{model.ValidatorScript, tx.Validators},
			{model.MintingPolicyScript, tx.MintingPolicies},
			{model.StakeValidatorScript, tx.StakeValidators},
		} {
			for hash, s := range group.scripts {
				if err = addScript(scripts, hash, group.kind, s); err != nil {
					return artifacts{}, err
				}
			}
		}
		for hash, r := range tx.Redeemers {
			if err = addScript(scripts, hash, model.RedeemerScript, r); err != nil {
				return artifacts{}, err
			}
		}

		for i, o := range tx.Outputs {
			out.addresses = append(out.addresses, model.AddressRow{
				Credential: o.Address.Credential.Key(),
				Ref:        model.TxOutRef{TxID: tx.TxID, Index: uint32(i)},
			})
		}
	}

	for hash, payload := range datums {
		out.datums = append(out.datums, model.DatumRow{Hash: hash, Payload: payload})
	}
	for _, row := range scripts {
		out.scripts = append(out.scripts, row)
	}
	sort.Slice(out.datums, func(i, j int) bool { return out.datums[i].Hash < out.datums[j].Hash })
	sort.Slice(out.scripts, func(i, j int) bool {
		a, b := out.scripts[i], out.scripts[j]
		if a.Hash != b.Hash {
			return a.Hash < b.Hash
		}
		return a.Kind < b.Kind
	})
	return out, nil
}

// scriptKey identifies a script row. One script may serve several roles under one hash.
type scriptKey struct {
	hash model.ScriptHash
	kind model.ScriptKind
}

func addScript(into map[scriptKey]model.ScriptRow, hash model.ScriptHash, kind model.ScriptKind, b []byte) error {
	payload, err := codec.EncodeBytes(b)
	if err != nil {
		return fmt.Errorf("%s %s: %w", kind, hash, err)
	}
	into[scriptKey{hash: hash, kind: kind}] = model.ScriptRow{Hash: hash, Kind: kind, Payload: payload}
	return nil
}

type tableWrite struct {
	table string
	write func(context.Context) error
}

// persist writes one batch per table, the tables concurrently.
func (s *Service) persist(ctx context.Context, a artifacts) error {
	writes := []tableWrite{
		{table: "datums", write: func(ctx context.Context) error { return s.store.InsertDatums(ctx, a.datums) }},
		{table: "scripts", write: func(ctx context.Context) error { return s.store.InsertScripts(ctx, a.scripts) }},
		{table: "transactions", write: func(ctx context.Context) error { return s.store.InsertTransactions(ctx, a.transactions) }},
		{table: "addresses", write: func(ctx context.Context) error { return s.store.InsertAddresses(ctx, a.addresses) }},
	}

	return workerpool.ProcessAll(ctx, tableWriteWorkers, writes, func(ctx context.Context, w tableWrite) error {
		if err := w.write(ctx); err != nil {
			return fmt.Errorf("%s: %w", w.table, err)
		}
		return nil
	})
}
