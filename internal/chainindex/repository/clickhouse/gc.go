package clickhouse

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

const (
	datumHashesQuery = `
SELECT DISTINCT hash
FROM chainindex_datums`
	scriptHashesQuery = `
SELECT DISTINCT hash
FROM chainindex_scripts`
	addressRowsQuery = `
SELECT DISTINCT credential, txid, output_index
FROM chainindex_addresses`

	deleteDatumsQuery = `
DELETE FROM chainindex_datums
WHERE hash IN ?`
	deleteScriptsQuery = `
DELETE FROM chainindex_scripts
WHERE hash IN ?`
	deleteAddressRowsQuery = `
DELETE FROM chainindex_addresses
WHERE concat(credential, '#', txid, '#', toString(output_index)) IN ?`
)

// DatumHashes lists every stored datum hash.
func (r *Repository) DatumHashes(ctx context.Context) ([]model.DatumHash, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("datum_hashes", err, start)
	}()

	var hashes []string
	hashes, err = r.listStrings(ctx, datumHashesQuery, "datum hashes")
	if err != nil {
		return nil, err
	}
	out := make([]model.DatumHash, len(hashes))
	for i, h := range hashes {
		out[i] = model.DatumHash(h)
	}
	return out, nil
}

// ScriptHashes lists every stored script hash.
func (r *Repository) ScriptHashes(ctx context.Context) ([]model.ScriptHash, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("script_hashes", err, start)
	}()

	var hashes []string
	hashes, err = r.listStrings(ctx, scriptHashesQuery, "script hashes")
	if err != nil {
		return nil, err
	}
	out := make([]model.ScriptHash, len(hashes))
	for i, h := range hashes {
		out[i] = model.ScriptHash(h)
	}
	return out, nil
}

func (r *Repository) listStrings(ctx context.Context, query, what string) (_ []string, err error) {
	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", what, err)
	}
	defer closeRows(rows, &err)

	var out []string
	for rows.Next() {
		var s string
		if err = rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan %s: %w", what, err)
		}
		out = append(out, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", what, err)
	}
	return out, nil
}

// AddressRows lists every credential to output association.
func (r *Repository) AddressRows(ctx context.Context) ([]model.AddressRow, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address_rows", err, start)
	}()

	rows, err := r.conn.Query(ctx, addressRowsQuery)
	if err != nil {
		return nil, fmt.Errorf("query address rows: %w", err)
	}
	defer closeRows(rows, &err)

	var out []model.AddressRow
	for rows.Next() {
		var (
			credential, txid string
			index            uint32
		)
		if err = rows.Scan(&credential, &txid, &index); err != nil {
			return nil, fmt.Errorf("scan address row: %w", err)
		}
		out = append(out, model.AddressRow{
			Credential: credential,
			Ref:        model.TxOutRef{TxID: model.TxID(txid), Index: index},
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address rows: %w", err)
	}
	return out, nil
}

// DeleteDatums removes the datum rows with the given hashes.
func (r *Repository) DeleteDatums(ctx context.Context, hashes []model.DatumHash) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_datums", err, start)
	}()

	if len(hashes) == 0 {
		return nil
	}
	keys := make([]string, len(hashes))
	for i, h := range hashes {
		keys[i] = string(h)
	}
	if err = r.conn.Exec(ctx, deleteDatumsQuery, keys); err != nil {
		return fmt.Errorf("delete datums: %w", err)
	}
	return nil
}

// DeleteScripts removes the script rows of every kind with the given hashes.
func (r *Repository) DeleteScripts(ctx context.Context, hashes []model.ScriptHash) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_scripts", err, start)
	}()

	if len(hashes) == 0 {
		return nil
	}
	keys := make([]string, len(hashes))
	for i, h := range hashes {
		keys[i] = string(h)
	}
	if err = r.conn.Exec(ctx, deleteScriptsQuery, keys); err != nil {
		return fmt.Errorf("delete scripts: %w", err)
	}
	return nil
}

// DeleteAddressRows removes the given credential to output associations.
func (r *Repository) DeleteAddressRows(ctx context.Context, rows []model.AddressRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_address_rows", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}
	keys := make([]string, len(rows))
	for i, row := range rows {
		keys[i] = addressRowKey(row)
	}
	if err = r.conn.Exec(ctx, deleteAddressRowsQuery, keys); err != nil {
		return fmt.Errorf("delete address rows: %w", err)
	}
	return nil
}

func addressRowKey(row model.AddressRow) string {
	return row.Credential + "#" + string(row.Ref.TxID) + "#" + strconv.FormatUint(uint64(row.Ref.Index), 10)
}
