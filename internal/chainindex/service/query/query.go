// Package query answers read-only lookups against the store and the UTXO index.
// Absence is reported as found=false with a nil error.
package query

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/codec"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

const (
	defaultTxCacheSize     = 4096
	defaultAddressRefLimit = 1000
)

// Options tunes the query service.
type Options struct {
	TxCacheSize     int
	AddressRefLimit int
}

// Service is the query handler.
type Service struct {
	logger       *zap.Logger
	store        Store
	chain        ChainState
	metrics      Metrics
	txCache      *lru.Cache[model.TxID, model.Transaction]
	addressLimit int
}

// NewService builds a query Service.
func NewService(store Store, chain ChainState, metrics Metrics, opts Options, logger *zap.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("query store is required")
	}
	if chain == nil {
		return nil, errors.New("query chain state is required")
	}
	if metrics == nil {
		return nil, errors.New("query metrics is required")
	}
	if opts.TxCacheSize <= 0 {
		opts.TxCacheSize = defaultTxCacheSize
	}
	if opts.AddressRefLimit <= 0 {
		opts.AddressRefLimit = defaultAddressRefLimit
	}

	cache, err := lru.New[model.TxID, model.Transaction](opts.TxCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create tx cache: %w", err)
	}

	return &Service{
		logger:       logger,
		store:        store,
		chain:        chain,
		metrics:      metrics,
		txCache:      cache,
		addressLimit: opts.AddressRefLimit,
	}, nil
}

// DatumFromHash returns the datum stored under hash.
func (s *Service) DatumFromHash(ctx context.Context, hash model.DatumHash) (datum model.Datum, found bool, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("datum", found, err, start)
	}()

	row, found, err := s.store.Datum(ctx, hash)
	if err != nil || !found {
		return nil, false, err
	}
	b, err := codec.DecodeBytes(row.Payload)
	if err != nil {
		return nil, false, fmt.Errorf("datum %s: %w", hash, err)
	}
	return model.Datum(b), true, nil
}

// ValidatorFromHash returns the validator script stored under hash.
func (s *Service) ValidatorFromHash(ctx context.Context, hash model.ScriptHash) (model.Script, bool, error) {
	return s.script(ctx, "validator", model.ValidatorScript, hash)
}

// MintingPolicyFromHash returns the minting policy stored under hash.
func (s *Service) MintingPolicyFromHash(ctx context.Context, hash model.ScriptHash) (model.Script, bool, error) {
	return s.script(ctx, "minting_policy", model.MintingPolicyScript, hash)
}

// StakeValidatorFromHash returns the stake validator stored under hash.
func (s *Service) StakeValidatorFromHash(ctx context.Context, hash model.ScriptHash) (model.Script, bool, error) {
	return s.script(ctx, "stake_validator", model.StakeValidatorScript, hash)
}

// RedeemerFromHash returns the redeemer stored under hash.
func (s *Service) RedeemerFromHash(ctx context.Context, hash model.ScriptHash) (model.Redeemer, bool, error) {
	b, found, err := s.script(ctx, "redeemer", model.RedeemerScript, hash)
	return model.Redeemer(b), found, err
}

func (s *Service) script(ctx context.Context, query string, kind model.ScriptKind, hash model.ScriptHash) (script model.Script, found bool, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe(query, found, err, start)
	}()

	row, found, err := s.store.Script(ctx, hash, kind)
	if err != nil || !found {
		return nil, false, err
	}
	b, err := codec.DecodeBytes(row.Payload)
	if err != nil {
		return nil, false, fmt.Errorf("%s %s: %w", kind, hash, err)
	}
	return model.Script(b), true, nil
}

// TxFromTxID returns the transaction with id txid.
func (s *Service) TxFromTxID(ctx context.Context, txid model.TxID) (tx model.Transaction, found bool, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("transaction", found, err, start)
	}()

	if tx, found = s.txCache.Get(txid); found {
		return tx, true, nil
	}

	row, found, err := s.store.Transaction(ctx, txid)
	if err != nil || !found {
		return model.Transaction{}, false, err
	}
	if tx, err = codec.DecodeTransaction(row.Payload); err != nil {
		return model.Transaction{}, false, fmt.Errorf("transaction %s: %w", txid, err)
	}
	s.txCache.Add(txid, tx)
	return tx, true, nil
}

// TxOutFromRef resolves the output ref points to. Missing transactions,
// out of range indexes and script outputs without a datum hash are absent.
func (s *Service) TxOutFromRef(ctx context.Context, ref model.TxOutRef) (model.ChainIndexTxOut, bool, error) {
	tx, found, err := s.TxFromTxID(ctx, ref.TxID)
	if err != nil {
		return model.ChainIndexTxOut{}, false, err
	}
	if !found {
		s.logger.Warn("TxOutFromRef: transaction not found", zap.Stringer("ref", ref))
		return model.ChainIndexTxOut{}, false, nil
	}
	if int(ref.Index) >= len(tx.Outputs) {
		s.logger.Warn("TxOutFromRef: output index out of range",
			zap.Stringer("ref", ref),
			zap.Int("outputs", len(tx.Outputs)),
		)
		return model.ChainIndexTxOut{}, false, nil
	}

	out := tx.Outputs[ref.Index]
	if out.Address.Credential.Kind == model.PubKeyCredential {
		return model.ChainIndexTxOut{
			Kind:    model.PublicKeyOutput,
			Address: out.Address,
			Value:   out.Value,
		}, true, nil
	}

	if out.DatumHash == nil {
		s.logger.Warn("NoDatumScriptAddr", zap.Stringer("ref", ref))
		return model.ChainIndexTxOut{}, false, nil
	}

	validatorHash := model.ScriptHash(out.Address.Credential.Hash)
	validator, _, err := s.ValidatorFromHash(ctx, validatorHash)
	if err != nil {
		return model.ChainIndexTxOut{}, false, err
	}
	datum, _, err := s.DatumFromHash(ctx, *out.DatumHash)
	if err != nil {
		return model.ChainIndexTxOut{}, false, err
	}

	return model.ChainIndexTxOut{
		Kind:      model.ScriptOutput,
		Address:   out.Address,
		Value:     out.Value,
		Validator: model.ValidatorField{Hash: validatorHash, Script: validator},
		Datum:     model.DatumField{Hash: *out.DatumHash, Datum: datum},
	}, true, nil
}

// UtxoSetMembership reports whether ref is unspent at the current tip.
func (s *Service) UtxoSetMembership(ref model.TxOutRef) model.UtxoMembership {
	tip, unspent := s.chain.IsUnspent(ref)
	return model.UtxoMembership{Tip: tip, Unspent: unspent}
}

// UtxoSetAtAddress lists the unspent outputs owned by credential, at most
// AddressRefLimit of them. Stored refs are paged until enough live ones are
// found or the rows run out. Truncated is set when the cap stopped the walk.
func (s *Service) UtxoSetAtAddress(ctx context.Context, credential model.Credential) (res model.UtxoAtAddress, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("utxos_at_address", len(res.Refs) > 0, err, start)
	}()

	var (
		tip   model.Tip
		live  []model.TxOutRef
		after model.TxOutRef
	)
	for {
		refs, err := s.store.AddressRefs(ctx, credential.Key(), after, s.addressLimit)
		if err != nil {
			return model.UtxoAtAddress{}, fmt.Errorf("address refs: %w", err)
		}

		var page []model.TxOutRef
		tip, page = s.chain.FilterUnspent(refs)
		live = append(live, page...)

		if len(refs) < s.addressLimit {
			break
		}
		if len(live) >= s.addressLimit {
			res.Truncated = true
			break
		}
		after = refs[len(refs)-1]
	}

	sort.Slice(live, func(i, j int) bool { return live[i].Less(live[j]) })
	if len(live) > s.addressLimit {
		live = live[:s.addressLimit]
	}
	res.Tip, res.Refs = tip, live
	return res, nil
}

// GetTip returns the tip of the UTXO index.
func (s *Service) GetTip() model.Tip {
	return s.chain.Tip()
}
