package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

const datumQuery = `
SELECT payload
FROM chainindex_datums FINAL
WHERE hash = ?
LIMIT 1`

// Datum returns the datum row stored under hash.
func (r *Repository) Datum(ctx context.Context, hash model.DatumHash) (model.DatumRow, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("datum", err, start)
	}()

	rows, err := r.conn.Query(ctx, datumQuery, string(hash))
	if err != nil {
		return model.DatumRow{}, false, fmt.Errorf("query datum: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.DatumRow{}, false, fmt.Errorf("iterate datum: %w", err)
		}
		return model.DatumRow{}, false, nil
	}

	var payload string
	if err = rows.Scan(&payload); err != nil {
		return model.DatumRow{}, false, fmt.Errorf("scan datum: %w", err)
	}
	return model.DatumRow{Hash: hash, Payload: []byte(payload)}, true, nil
}

const scriptQuery = `
SELECT payload
FROM chainindex_scripts FINAL
WHERE hash = ? AND kind = ?
LIMIT 1`

// Script returns the script row stored under hash with the given kind.
func (r *Repository) Script(ctx context.Context, hash model.ScriptHash, kind model.ScriptKind) (model.ScriptRow, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("script", err, start)
	}()

	rows, err := r.conn.Query(ctx, scriptQuery, string(hash), string(kind))
	if err != nil {
		return model.ScriptRow{}, false, fmt.Errorf("query script: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.ScriptRow{}, false, fmt.Errorf("iterate script: %w", err)
		}
		return model.ScriptRow{}, false, nil
	}

	var payload string
	if err = rows.Scan(&payload); err != nil {
		return model.ScriptRow{}, false, fmt.Errorf("scan script: %w", err)
	}
	return model.ScriptRow{Hash: hash, Kind: kind, Payload: []byte(payload)}, true, nil
}

const transactionQuery = `
SELECT payload
FROM chainindex_transactions FINAL
WHERE txid = ?
LIMIT 1`

// Transaction returns the transaction row stored under txid.
func (r *Repository) Transaction(ctx context.Context, txid model.TxID) (model.TxRow, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction", err, start)
	}()

	rows, err := r.conn.Query(ctx, transactionQuery, string(txid))
	if err != nil {
		return model.TxRow{}, false, fmt.Errorf("query transaction: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.TxRow{}, false, fmt.Errorf("iterate transaction: %w", err)
		}
		return model.TxRow{}, false, nil
	}

	var payload string
	if err = rows.Scan(&payload); err != nil {
		return model.TxRow{}, false, fmt.Errorf("scan transaction: %w", err)
	}
	return model.TxRow{TxID: txid, Payload: []byte(payload)}, true, nil
}

const addressRefsQuery = `
SELECT txid, output_index
FROM chainindex_addresses FINAL
WHERE credential = ? AND (txid, output_index) > (?, ?)
ORDER BY txid, output_index
LIMIT ?`

// AddressRefs lists at most limit output references owned by credential that sort after the
// given ref. The zero ref starts from the first row.
func (r *Repository) AddressRefs(ctx context.Context, credential string, after model.TxOutRef, limit int) ([]model.TxOutRef, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address_refs", err, start)
	}()

	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.conn.Query(ctx, addressRefsQuery, credential, string(after.TxID), after.Index, limit)
	if err != nil {
		return nil, fmt.Errorf("query address refs: %w", err)
	}
	defer closeRows(rows, &err)

	refs := make([]model.TxOutRef, 0)
	for rows.Next() {
		var (
			txid  string
			index uint32
		)
		if err = rows.Scan(&txid, &index); err != nil {
			return nil, fmt.Errorf("scan address ref: %w", err)
		}
		refs = append(refs, model.TxOutRef{TxID: model.TxID(txid), Index: index})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address refs: %w", err)
	}
	return refs, nil
}
