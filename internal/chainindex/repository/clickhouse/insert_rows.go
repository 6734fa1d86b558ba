package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

const insertDatumsQuery = `
INSERT INTO chainindex_datums (
	hash,
	payload
) VALUES`

// InsertDatums stores datum rows in one batch.
func (r *Repository) InsertDatums(ctx context.Context, rows []model.DatumRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_datums", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}
	err = r.sendBatch(ctx, insertDatumsQuery, "datums", len(rows), func(b Batch, i int) error {
		return b.Append(string(rows[i].Hash), string(rows[i].Payload))
	})
	return err
}

const insertScriptsQuery = `
INSERT INTO chainindex_scripts (
	hash,
	kind,
	payload
) VALUES`

// InsertScripts stores script rows of any kind in one batch.
func (r *Repository) InsertScripts(ctx context.Context, rows []model.ScriptRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_scripts", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}
	err = r.sendBatch(ctx, insertScriptsQuery, "scripts", len(rows), func(b Batch, i int) error {
		return b.Append(string(rows[i].Hash), string(rows[i].Kind), string(rows[i].Payload))
	})
	return err
}

const insertTransactionsQuery = `
INSERT INTO chainindex_transactions (
	txid,
	payload
) VALUES`

// InsertTransactions stores transaction rows in one batch.
func (r *Repository) InsertTransactions(ctx context.Context, rows []model.TxRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}
	err = r.sendBatch(ctx, insertTransactionsQuery, "transactions", len(rows), func(b Batch, i int) error {
		return b.Append(string(rows[i].TxID), string(rows[i].Payload))
	})
	return err
}

const insertAddressesQuery = `
INSERT INTO chainindex_addresses (
	credential,
	txid,
	output_index
) VALUES`

// InsertAddresses stores credential to output associations in one batch.
func (r *Repository) InsertAddresses(ctx context.Context, rows []model.AddressRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_addresses", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}
	err = r.sendBatch(ctx, insertAddressesQuery, "addresses", len(rows), func(b Batch, i int) error {
		return b.Append(rows[i].Credential, string(rows[i].Ref.TxID), rows[i].Ref.Index)
	})
	return err
}
