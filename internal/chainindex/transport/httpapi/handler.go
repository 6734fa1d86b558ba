// Package httpapi serves queries and control commands over HTTP.
package httpapi

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/service/ingester"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/wire"
)

const maxBodyBytes = 64 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errBadRequest = errors.New("bad request")

// Handler routes HTTP requests to the query and ingestion handlers.
type Handler struct {
	logger  *zap.Logger
	query   Querier
	control Controller
}

// NewHandler builds a Handler.
func NewHandler(query Querier, control Controller, logger *zap.Logger) *Handler {
	return &Handler{logger: logger, query: query, control: control}
}

// Router registers every route on a new mux.Router.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logRequests)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/datums/{hash}", h.getDatum).Methods(http.MethodGet)
	v1.HandleFunc("/validators/{hash}", h.getScript(h.query.ValidatorFromHash)).Methods(http.MethodGet)
	v1.HandleFunc("/minting-policies/{hash}", h.getScript(h.query.MintingPolicyFromHash)).Methods(http.MethodGet)
	v1.HandleFunc("/stake-validators/{hash}", h.getScript(h.query.StakeValidatorFromHash)).Methods(http.MethodGet)
	v1.HandleFunc("/redeemers/{hash}", h.getRedeemer).Methods(http.MethodGet)
	v1.HandleFunc("/txs/{txid}", h.getTx).Methods(http.MethodGet)
	v1.HandleFunc("/txouts/{txid}/{index}", h.getTxOut).Methods(http.MethodGet)
	v1.HandleFunc("/utxos/{txid}/{index}", h.getMembership).Methods(http.MethodGet)
	v1.HandleFunc("/addresses/{credential}/utxos", h.getUtxosAtAddress).Methods(http.MethodGet)
	v1.HandleFunc("/tip", h.getTip).Methods(http.MethodGet)
	v1.HandleFunc("/diagnostics", h.getDiagnostics).Methods(http.MethodGet)
	v1.HandleFunc("/blocks", h.appendBlock).Methods(http.MethodPost)
	v1.HandleFunc("/rollback", h.rollback).Methods(http.MethodPost)
	v1.HandleFunc("/gc", h.collectGarbage).Methods(http.MethodPost)
	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func (h *Handler) getDatum(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]
	datum, found, err := h.query.DatumFromHash(r.Context(), model.DatumHash(hash))
	h.respondPayload(w, hash, datum, found, err)
}

func (h *Handler) getScript(lookup func(context.Context, model.ScriptHash) (model.Script, bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hash := mux.Vars(r)["hash"]
		script, found, err := lookup(r.Context(), model.ScriptHash(hash))
		h.respondPayload(w, hash, script, found, err)
	}
}

func (h *Handler) getRedeemer(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]
	redeemer, found, err := h.query.RedeemerFromHash(r.Context(), model.ScriptHash(hash))
	h.respondPayload(w, hash, redeemer, found, err)
}

func (h *Handler) respondPayload(w http.ResponseWriter, hash string, payload []byte, found bool, err error) {
	if !h.lookupOK(w, found, err) {
		return
	}
	h.writeJSON(w, http.StatusOK, wire.Payload{Hash: hash, Payload: hex.EncodeToString(payload)})
}

func (h *Handler) getTx(w http.ResponseWriter, r *http.Request) {
	tx, found, err := h.query.TxFromTxID(r.Context(), model.TxID(mux.Vars(r)["txid"]))
	if !h.lookupOK(w, found, err) {
		return
	}
	h.writeJSON(w, http.StatusOK, wire.FromTransaction(tx))
}

func (h *Handler) getTxOut(w http.ResponseWriter, r *http.Request) {
	ref, err := refFromVars(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out, found, err := h.query.TxOutFromRef(r.Context(), ref)
	if !h.lookupOK(w, found, err) {
		return
	}
	h.writeJSON(w, http.StatusOK, wire.FromChainIndexTxOut(out))
}

func (h *Handler) getMembership(w http.ResponseWriter, r *http.Request) {
	ref, err := refFromVars(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, wire.FromUtxoMembership(h.query.UtxoSetMembership(ref)))
}

func (h *Handler) getUtxosAtAddress(w http.ResponseWriter, r *http.Request) {
	cred, err := wire.ParseCredential(mux.Vars(r)["credential"])
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	res, err := h.query.UtxoSetAtAddress(r.Context(), cred)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, wire.FromUtxoAtAddress(res))
}

func (h *Handler) getTip(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, wire.FromTip(h.query.GetTip()))
}

func (h *Handler) getDiagnostics(w http.ResponseWriter, r *http.Request) {
	d, err := h.control.GetDiagnostics(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, wire.FromDiagnostics(d))
}

func (h *Handler) appendBlock(w http.ResponseWriter, r *http.Request) {
	var body wire.Block
	if err := decodeBody(w, r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	tip, txs, err := body.Model()
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	if err = h.control.AppendBlock(r.Context(), tip, txs); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, wire.FromTip(h.query.GetTip()))
}

func (h *Handler) rollback(w http.ResponseWriter, r *http.Request) {
	var body wire.Rollback
	if err := decodeBody(w, r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.control.Rollback(r.Context(), body.Tip.Model()); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, wire.FromTip(h.query.GetTip()))
}

func (h *Handler) collectGarbage(w http.ResponseWriter, r *http.Request) {
	report, err := h.control.CollectGarbage(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, wire.FromGCReport(report))
}

func refFromVars(r *http.Request) (model.TxOutRef, error) {
	vars := mux.Vars(r)
	index, err := strconv.ParseUint(vars["index"], 10, 32)
	if err != nil {
		return model.TxOutRef{}, fmt.Errorf("%w: output index %q", errBadRequest, vars["index"])
	}
	return model.TxOutRef{TxID: model.TxID(vars["txid"]), Index: uint32(index)}, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", errBadRequest, err)
	}
	if err = json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: decode body: %w", errBadRequest, err)
	}
	return nil
}

// lookupOK writes the error or not found response and reports whether the caller should continue.
func (h *Handler) lookupOK(w http.ResponseWriter, found bool, err error) bool {
	if err != nil {
		h.writeError(w, err)
		return false
	}
	if !found {
		h.writeJSON(w, http.StatusNotFound, wire.Error{Error: "not found"})
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.writeJSON(w, code, wire.Error{Error: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ingester.ErrInsertionFailed), errors.Is(err, ingester.ErrRollbackFailed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}
