package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/custody-bridge/pkg/app/errors"
	apphttp "github.com/chainsafe/custody-bridge/pkg/app/http"
	"github.com/chainsafe/custody-bridge/pkg/auth"
	"github.com/chainsafe/custody-bridge/pkg/bridge"
	"github.com/chainsafe/custody-bridge/pkg/ledger"
)

const maxBodySize = 1 << 20

// HTTP serves the ledger Service as a JSON API
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes mounts the ledger API on r.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/transfers", apphttp.HandleError(h.initiate))
		r.Get("/transfers", apphttp.HandleError(h.listTransfers))
		r.Get("/transfers/{id}", apphttp.HandleError(h.getTransfer))
		r.Post("/transfers/{id}/complete", apphttp.HandleError(h.complete))
		r.Post("/transfers/{id}/cancel", apphttp.HandleError(h.cancel))

		r.Get("/chains/{chainID}", apphttp.HandleError(h.isChainSupported))
		r.Post("/chains/{chainID}", apphttp.HandleError(h.addChain))
		r.Delete("/chains/{chainID}", apphttp.HandleError(h.removeChain))

		r.Post("/relayers/{address}", apphttp.HandleError(h.addRelayer))
		r.Delete("/relayers/{address}", apphttp.HandleError(h.removeRelayer))

		r.Put("/fee", apphttp.HandleError(h.updateFee))
		r.Post("/pause", apphttp.HandleError(h.pause))
		r.Post("/unpause", apphttp.HandleError(h.unpause))
		r.Put("/admin", apphttp.HandleError(h.transferAdmin))
		r.Post("/receive", apphttp.HandleError(h.receive))

		r.Get("/balances/{depositor}/{asset}", apphttp.HandleError(h.lockedBalance))
		r.Get("/custody/{asset}", apphttp.HandleError(h.custodyBalance))
		r.Get("/config", apphttp.HandleError(h.config))
		r.Get("/events", apphttp.HandleError(h.events))
	})
}

// InitiateRequest is the body of POST /transfers. Amounts are base-unit decimal
// strings. DepositTx is the hash of the chain transaction that sent Value to
// custody; live custody requires it for native deposits.
type InitiateRequest struct {
	Recipient        string `json:"recipient"`
	Asset            string `json:"asset"`
	Amount           string `json:"amount"`
	DestinationChain uint64 `json:"destination_chain"`
	Value            string `json:"value,omitempty"`
	DepositTx        string `json:"deposit_tx,omitempty"`
}

// TransferResponse is the JSON form of a transfer record
type TransferResponse struct {
	ID               string    `json:"id"`
	Depositor        string    `json:"depositor"`
	Recipient        string    `json:"recipient"`
	Asset            string    `json:"asset"`
	GrossAmount      string    `json:"gross_amount"`
	Fee              string    `json:"fee"`
	NetAmount        string    `json:"net_amount"`
	FeeRate          uint64    `json:"fee_rate"`
	SourceChain      uint64    `json:"source_chain"`
	DestinationChain uint64    `json:"destination_chain"`
	Sequence         uint64    `json:"sequence"`
	Status           string    `json:"status"`
	DepositTx        string    `json:"deposit_tx,omitempty"`
	SettlementTx     string    `json:"settlement_tx,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// EventResponse is the JSON form of an audit event
type EventResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Actor      string    `json:"actor"`
	Subject    string    `json:"subject,omitempty"`
	TransferID string    `json:"transfer_id,omitempty"`
	Asset      string    `json:"asset,omitempty"`
	ChainID    uint64    `json:"chain_id,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	FeeRate    uint64    `json:"fee_rate,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ConfigResponse is the JSON form of the configuration snapshot
type ConfigResponse struct {
	ChainID       uint64   `json:"chain_id"`
	Administrator string   `json:"administrator"`
	Relayers      []string `json:"relayers"`
	Chains        []uint64 `json:"supported_chains"`
	FeeRate       uint64   `json:"fee_rate"`
	Paused        bool     `json:"paused"`
	Sequence      uint64   `json:"sequence"`
	RefundPolicy  string   `json:"refund_policy"`
}

// BalanceResponse carries a single amount
type BalanceResponse struct {
	Asset   string `json:"asset"`
	Holder  string `json:"holder,omitempty"`
	Balance string `json:"balance"`
}

type feeRequest struct {
	FeeRate *uint64 `json:"fee_rate"`
}

type adminRequest struct {
	Administrator string `json:"administrator"`
}

type receiveRequest struct {
	Value string `json:"value"`
}

func (h *HTTP) initiate(w http.ResponseWriter, r *http.Request) error {
	caller, err := requireCaller(r)
	if err != nil {
		return err
	}
	var body InitiateRequest
	if err := decodeBody(r, &body); err != nil {
		return err
	}

	req := ledger.InitiateRequest{DestinationChain: body.DestinationChain}
	if req.Recipient, err = parseAddressField("recipient", body.Recipient); err != nil {
		return err
	}
	if body.Asset != "" {
		if req.Asset, err = parseAddressField("asset", body.Asset); err != nil {
			return err
		}
	}
	if req.Amount, err = parseAmount("amount", body.Amount); err != nil {
		return err
	}
	if body.Value != "" {
		if req.Value, err = parseAmount("value", body.Value); err != nil {
			return err
		}
	}
	if body.DepositTx != "" {
		if req.DepositTx, err = parseHashField("deposit_tx", body.DepositTx); err != nil {
			return err
		}
	}

	t, err := h.service.InitiateBridge(r.Context(), caller, req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, toTransferResponse(t))
	return nil
}

func (h *HTTP) complete(w http.ResponseWriter, r *http.Request) error {
	return h.transition(w, r, h.service.CompleteBridge)
}

func (h *HTTP) cancel(w http.ResponseWriter, r *http.Request) error {
	return h.transition(w, r, h.service.CancelBridge)
}

func (h *HTTP) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, caller common.Address, id bridge.TransferID) error,
) error {
	caller, err := requireCaller(r)
	if err != nil {
		return err
	}
	id, err := transferIDParam(r)
	if err != nil {
		return err
	}
	if err := fn(r.Context(), caller, id); err != nil {
		return err
	}
	t, err := h.service.GetTransaction(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, toTransferResponse(t))
	return nil
}

func (h *HTTP) getTransfer(w http.ResponseWriter, r *http.Request) error {
	id, err := transferIDParam(r)
	if err != nil {
		return err
	}
	t, err := h.service.GetTransaction(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, toTransferResponse(t))
	return nil
}

func (h *HTTP) listTransfers(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	var filter ledger.TransferFilter

	if s := q.Get("depositor"); s != "" {
		addr, err := parseAddressField("depositor", s)
		if err != nil {
			return err
		}
		filter.Depositor = &addr
	}
	if s := q.Get("status"); s != "" {
		status := bridge.Status(s)
		if !status.Valid() {
			return apperrors.BadRequestError(nil, "invalid status")
		}
		filter.Status = status
	}
	limit, err := limitParam(r)
	if err != nil {
		return err
	}
	filter.Limit = limit

	list, err := h.service.ListTransactions(r.Context(), filter)
	if err != nil {
		return err
	}
	resp := make([]TransferResponse, 0, len(list))
	for _, t := range list {
		resp = append(resp, toTransferResponse(t))
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) isChainSupported(w http.ResponseWriter, r *http.Request) error {
	chainID, err := chainIDParam(r)
	if err != nil {
		return err
	}
	ok, err := h.service.IsChainSupported(r.Context(), chainID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"chain_id": chainID, "supported": ok})
	return nil
}

func (h *HTTP) addChain(w http.ResponseWriter, r *http.Request) error {
	return h.chainChange(w, r, h.service.AddSupportedChain)
}

func (h *HTTP) removeChain(w http.ResponseWriter, r *http.Request) error {
	return h.chainChange(w, r, h.service.RemoveSupportedChain)
}

func (h *HTTP) chainChange(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, caller common.Address, chainID uint64) error,
) error {
	caller, err := requireCaller(r)
	if err != nil {
		return err
	}
	chainID, err := chainIDParam(r)
	if err != nil {
		return err
	}
	if err := fn(r.Context(), caller, chainID); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) addRelayer(w http.ResponseWriter, r *http.Request) error {
	return h.relayerChange(w, r, h.service.AddRelayer)
}

func (h *HTTP) removeRelayer(w http.ResponseWriter, r *http.Request) error {
	return h.relayerChange(w, r, h.service.RemoveRelayer)
}

func (h *HTTP) relayerChange(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, caller, id common.Address) error,
) error {
	caller, err := requireCaller(r)
	if err != nil {
		return err
	}
	relayer, err := parseAddressField("address", chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	if err := fn(r.Context(), caller, relayer); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) updateFee(w http.ResponseWriter, r *http.Request) error {
	caller, err := requireCaller(r)
	if err != nil {
		return err
	}
	var body feeRequest
	if err := decodeBody(r, &body); err != nil {
		return err
	}
	if body.FeeRate == nil {
		return apperrors.BadRequestError(nil, "fee_rate required")
	}
	if err := h.service.UpdateBridgeFee(r.Context(), caller, *body.FeeRate); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) pause(w http.ResponseWriter, r *http.Request) error {
	caller, err := requireCaller(r)
	if err != nil {
		return err
	}
	if err := h.service.Pause(r.Context(), caller); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) unpause(w http.ResponseWriter, r *http.Request) error {
	caller, err := requireCaller(r)
	if err != nil {
		return err
	}
	if err := h.service.Unpause(r.Context(), caller); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) transferAdmin(w http.ResponseWriter, r *http.Request) error {
	caller, err := requireCaller(r)
	if err != nil {
		return err
	}
	var body adminRequest
	if err := decodeBody(r, &body); err != nil {
		return err
	}
	newAdmin, err := parseAddressField("administrator", body.Administrator)
	if err != nil {
		return err
	}
	if err := h.service.TransferAdministration(r.Context(), caller, newAdmin); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) receive(w http.ResponseWriter, r *http.Request) error {
	caller, err := requireCaller(r)
	if err != nil {
		return err
	}
	var body receiveRequest
	if err := decodeBody(r, &body); err != nil {
		return err
	}
	value, err := parseAmount("value", body.Value)
	if err != nil {
		return err
	}
	if err := h.service.Receive(r.Context(), caller, value); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) lockedBalance(w http.ResponseWriter, r *http.Request) error {
	depositor, err := parseAddressField("depositor", chi.URLParam(r, "depositor"))
	if err != nil {
		return err
	}
	asset, err := parseAddressField("asset", chi.URLParam(r, "asset"))
	if err != nil {
		return err
	}
	v, err := h.service.GetLockedBalance(r.Context(), depositor, asset)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, BalanceResponse{
		Asset:   asset.Hex(),
		Holder:  depositor.Hex(),
		Balance: formatAmount(v),
	})
	return nil
}

func (h *HTTP) custodyBalance(w http.ResponseWriter, r *http.Request) error {
	asset, err := parseAddressField("asset", chi.URLParam(r, "asset"))
	if err != nil {
		return err
	}
	v, err := h.service.GetContractBalance(r.Context(), asset)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, BalanceResponse{Asset: asset.Hex(), Balance: formatAmount(v)})
	return nil
}

func (h *HTTP) config(w http.ResponseWriter, r *http.Request) error {
	snap, err := h.service.Config(r.Context())
	if err != nil {
		return err
	}
	relayers := make([]string, 0, len(snap.Relayers))
	for _, a := range snap.Relayers {
		relayers = append(relayers, a.Hex())
	}
	chains := snap.Chains
	if chains == nil {
		chains = []uint64{}
	}
	apphttp.WriteJSON(w, http.StatusOK, ConfigResponse{
		ChainID:       snap.ChainID,
		Administrator: snap.Administrator.Hex(),
		Relayers:      relayers,
		Chains:        chains,
		FeeRate:       snap.FeeRate,
		Paused:        snap.Paused,
		Sequence:      snap.Sequence,
		RefundPolicy:  string(snap.RefundPolicy),
	})
	return nil
}

func (h *HTTP) events(w http.ResponseWriter, r *http.Request) error {
	limit, err := limitParam(r)
	if err != nil {
		return err
	}
	events, err := h.service.Events(r.Context(), limit)
	if err != nil {
		return err
	}
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, toEventResponse(e))
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// requireCaller returns the authenticated caller placed in the context by auth.Authenticator.
func requireCaller(r *http.Request) (common.Address, error) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		return common.Address{}, apperrors.UnAuthorizedError(nil, "signature and message required")
	}
	return caller, nil
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}

func transferIDParam(r *http.Request) (bridge.TransferID, error) {
	id, ok := bridge.ParseTransferID(chi.URLParam(r, "id"))
	if !ok {
		return id, apperrors.BadRequestError(nil, "invalid transfer id")
	}
	return id, nil
}

func chainIDParam(r *http.Request) (uint64, error) {
	chainID, err := strconv.ParseUint(chi.URLParam(r, "chainID"), 10, 64)
	if err != nil {
		return 0, apperrors.BadRequestError(err, "invalid chain id")
	}
	return chainID, nil
}

func limitParam(r *http.Request) (int, error) {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(s)
	if err != nil || limit < 0 {
		return 0, apperrors.BadRequestError(err, "invalid limit")
	}
	return limit, nil
}

func parseAddressField(field, s string) (common.Address, error) {
	addr, err := auth.ParseAddress(s)
	if err != nil {
		return addr, apperrors.BadRequestError(err, "invalid "+field)
	}
	return addr, nil
}

func parseHashField(field, s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, apperrors.BadRequestError(err, "invalid "+field)
	}
	return common.BytesToHash(b), nil
}

var errFractional = errors.New("amount must be an integer number of base units")

// parseAmount reads a non-negative base-unit integer. Zero is accepted here;
// the ledger decides whether zero is meaningful.
func parseAmount(field, s string) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid "+field)
	}
	if !d.IsInteger() {
		return nil, apperrors.BadRequestError(errFractional, "invalid "+field)
	}
	if d.Sign() < 0 {
		return nil, apperrors.BadRequestError(nil, "invalid "+field)
	}
	return d.BigInt(), nil
}

func formatAmount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func toTransferResponse(t *bridge.Transfer) TransferResponse {
	return TransferResponse{
		ID:               t.ID.Hex(),
		Depositor:        t.Depositor.Hex(),
		Recipient:        t.Recipient.Hex(),
		Asset:            t.Asset.Hex(),
		GrossAmount:      formatAmount(t.GrossAmount),
		Fee:              formatAmount(t.Fee),
		NetAmount:        formatAmount(t.NetAmount),
		FeeRate:          t.FeeRate,
		SourceChain:      t.SourceChain,
		DestinationChain: t.DestinationChain,
		Sequence:         t.Sequence,
		Status:           string(t.Status),
		DepositTx:        optionalHash(t.DepositTx),
		SettlementTx:     optionalHash(t.SettlementTx),
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func optionalHash(h common.Hash) string {
	if h == (common.Hash{}) {
		return ""
	}
	return h.Hex()
}

func toEventResponse(e bridge.Event) EventResponse {
	resp := EventResponse{
		ID:        e.ID.String(),
		Type:      string(e.Type),
		Actor:     e.Actor.Hex(),
		ChainID:   e.ChainID,
		FeeRate:   e.FeeRate,
		CreatedAt: e.CreatedAt,
	}
	if e.Subject != (common.Address{}) {
		resp.Subject = e.Subject.Hex()
	}
	if e.TransferID != (bridge.TransferID{}) {
		resp.TransferID = e.TransferID.Hex()
	}
	if e.Asset != (common.Address{}) || e.Type == bridge.EventBridgeInitiated || e.Type == bridge.EventBridgeCancelled {
		resp.Asset = e.Asset.Hex()
	}
	if e.Amount != nil {
		resp.Amount = e.Amount.String()
	}
	return resp
}
