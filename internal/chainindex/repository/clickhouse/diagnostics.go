package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

const (
	countTransactionsQuery = `
SELECT count() AS n
FROM chainindex_transactions FINAL
HAVING n > 0`
	countScriptsQuery = `
SELECT count() AS n
FROM chainindex_scripts FINAL
HAVING n > 0`
	countDistinctCredentialsQuery = `
SELECT uniqExact(credential) AS n
FROM chainindex_addresses
HAVING n > 0`
)

// CountTransactions counts stored transactions. ok is false when the table is empty.
func (r *Repository) CountTransactions(ctx context.Context) (uint64, bool, error) {
	return r.count(ctx, "count_transactions", countTransactionsQuery)
}

// CountScripts counts stored scripts of every kind.
func (r *Repository) CountScripts(ctx context.Context) (uint64, bool, error) {
	return r.count(ctx, "count_scripts", countScriptsQuery)
}

// CountDistinctCredentials counts credentials with at least one associated output.
func (r *Repository) CountDistinctCredentials(ctx context.Context) (uint64, bool, error) {
	return r.count(ctx, "count_distinct_credentials", countDistinctCredentialsQuery)
}

func (r *Repository) count(ctx context.Context, operation, query string) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe(operation, err, start)
	}()

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return 0, false, fmt.Errorf("query %s: %w", operation, err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, false, fmt.Errorf("iterate %s: %w", operation, err)
		}
		return 0, false, nil
	}

	var n uint64
	if err = rows.Scan(&n); err != nil {
		return 0, false, fmt.Errorf("scan %s: %w", operation, err)
	}
	return n, true, nil
}

const sampleTxIDsQuery = `
SELECT txid
FROM chainindex_transactions FINAL
ORDER BY txid
LIMIT ?`

// SampleTxIDs returns up to limit stored transaction ids.
func (r *Repository) SampleTxIDs(ctx context.Context, limit int) ([]model.TxID, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("sample_txids", err, start)
	}()

	rows, err := r.conn.Query(ctx, sampleTxIDsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("query sample txids: %w", err)
	}
	defer closeRows(rows, &err)

	ids := make([]model.TxID, 0, limit)
	for rows.Next() {
		var txid string
		if err = rows.Scan(&txid); err != nil {
			return nil, fmt.Errorf("scan sample txid: %w", err)
		}
		ids = append(ids, model.TxID(txid))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sample txids: %w", err)
	}
	return ids, nil
}
