package service

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/custody-bridge/pkg/app/http"
	"github.com/chainsafe/custody-bridge/pkg/auth"
	"github.com/chainsafe/custody-bridge/pkg/custody"
	custodymem "github.com/chainsafe/custody-bridge/pkg/custody/memory"
	"github.com/chainsafe/custody-bridge/pkg/ledger"
	"github.com/chainsafe/custody-bridge/pkg/store/memory"
)

var (
	vaultAcct = common.HexToAddress("0x00000000000000000000000000000000000b71d6")
	tokenAddr = common.HexToAddress("0x70C3E00000000000000000000000000000000006")
	recipient = common.HexToAddress("0x8E00000000000000000000000000000000000005")
)

type actor struct {
	key  *ecdsa.PrivateKey
	addr common.Address
}

func newActor(t *testing.T) actor {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return actor{key: key, addr: crypto.PubkeyToAddress(key.PublicKey)}
}

type apiFixture struct {
	handler   http.Handler
	chain     *custodymem.Chain
	admin     actor
	relayer   actor
	depositor actor
	stranger  actor
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{
		admin:     newActor(t),
		relayer:   newActor(t),
		depositor: newActor(t),
		stranger:  newActor(t),
	}

	f.chain = custodymem.NewChain(vaultAcct)
	f.chain.DeployToken(tokenAddr)
	adapter := custody.NewAdapter(vaultAcct, f.chain, f.chain, zap.NewNop())

	l := ledger.New(1, memory.NewStore(), adapter, zap.NewNop())
	_, err := l.Deploy(context.Background(), ledger.DeployParams{
		Deployer: f.admin.addr,
		FeeRate:  100,
		Chains:   []uint64{137},
	})
	require.NoError(t, err)
	require.NoError(t, l.AddRelayer(context.Background(), f.admin.addr, f.relayer.addr))

	r := chi.NewRouter()
	r.Use(auth.NewAuthenticator(auth.NewJWTValidator("", ""), zap.NewNop()).Middleware)
	RegisterRoutes(r, NewLog(NewService(l), zap.NewNop()), zap.NewNop())
	f.handler = r
	return f
}

func (f *apiFixture) do(t *testing.T, as *actor, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if as != nil {
		msg := auth.RequestMessage(method, path, buf.Bytes(), time.Now().Add(time.Minute))
		sig, err := auth.SignEIP191(msg, as.key)
		require.NoError(t, err)
		req.Header.Set(auth.HeaderSignature, sig)
		req.Header.Set(auth.HeaderMessage, msg)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) fund(amount int64) {
	f.chain.Mint(tokenAddr, f.depositor.addr, big.NewInt(amount))
	f.chain.Approve(tokenAddr, f.depositor.addr, vaultAcct, big.NewInt(amount))
}

func (f *apiFixture) initiate(t *testing.T, amount string, chain uint64) *httptest.ResponseRecorder {
	t.Helper()
	return f.do(t, &f.depositor, http.MethodPost, "/api/v1/transfers", InitiateRequest{
		Recipient:        recipient.Hex(),
		Asset:            tokenAddr.Hex(),
		Amount:           amount,
		DestinationChain: chain,
	})
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apphttp.ErrorResponse {
	t.Helper()
	var got apphttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got), rec.Body.String())
	return got
}

func decodeTransfer(t *testing.T, rec *httptest.ResponseRecorder) TransferResponse {
	t.Helper()
	var got TransferResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got), rec.Body.String())
	return got
}

func TestHTTP_InitiateWithoutCaller_ReturnsUnauthorized(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, nil, http.MethodPost, "/api/v1/transfers", InitiateRequest{})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	got := decodeError(t, rec)
	assert.Equal(t, "signature and message required", got.Error)
	assert.Equal(t, http.StatusUnauthorized, got.Code)
}

func TestHTTP_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, &f.depositor, http.MethodPost, "/api/v1/transfers", "{invalid")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON", decodeError(t, rec).Error)
}

func TestHTTP_InitiateValidation(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		name   string
		body   InitiateRequest
		status int
		kind   string
	}{
		{
			name:   "fractional amount",
			body:   InitiateRequest{Recipient: recipient.Hex(), Asset: tokenAddr.Hex(), Amount: "1.5", DestinationChain: 137},
			status: http.StatusBadRequest,
			kind:   "BadRequest",
		},
		{
			name:   "bad recipient",
			body:   InitiateRequest{Recipient: "0x1234", Asset: tokenAddr.Hex(), Amount: "10", DestinationChain: 137},
			status: http.StatusBadRequest,
			kind:   "BadRequest",
		},
		{
			name:   "zero recipient",
			body:   InitiateRequest{Recipient: common.Address{}.Hex(), Asset: tokenAddr.Hex(), Amount: "10", DestinationChain: 137},
			status: http.StatusBadRequest,
			kind:   "InvalidRecipient",
		},
		{
			name:   "zero amount",
			body:   InitiateRequest{Recipient: recipient.Hex(), Asset: tokenAddr.Hex(), Amount: "0", DestinationChain: 137},
			status: http.StatusBadRequest,
			kind:   "InvalidAmount",
		},
		{
			name:   "unsupported chain",
			body:   InitiateRequest{Recipient: recipient.Hex(), Asset: tokenAddr.Hex(), Amount: "10", DestinationChain: 56},
			status: http.StatusBadRequest,
			kind:   "ChainNotSupported",
		},
		{
			name:   "no allowance",
			body:   InitiateRequest{Recipient: recipient.Hex(), Asset: tokenAddr.Hex(), Amount: "10", DestinationChain: 137},
			status: http.StatusBadGateway,
			kind:   "TokenTransferFailed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, &f.depositor, http.MethodPost, "/api/v1/transfers", tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.kind, decodeError(t, rec).Kind)
		})
	}
}

func TestHTTP_TransferLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	f.fund(1000)

	rec := f.initiate(t, "1000", 137)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeTransfer(t, rec)
	assert.Equal(t, "1000", created.GrossAmount)
	assert.Equal(t, "10", created.Fee)
	assert.Equal(t, "990", created.NetAmount)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, f.depositor.addr.Hex(), created.Depositor)

	rec = f.do(t, nil, http.MethodGet, "/api/v1/balances/"+f.depositor.addr.Hex()+"/"+tokenAddr.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bal BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bal))
	assert.Equal(t, "1000", bal.Balance)

	path := "/api/v1/transfers/" + created.ID

	// only relayers complete
	rec = f.do(t, &f.depositor, http.MethodPost, path+"/complete", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, rec).Kind)

	rec = f.do(t, &f.relayer, http.MethodPost, path+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "completed", decodeTransfer(t, rec).Status)

	rec = f.do(t, &f.depositor, http.MethodPost, path+"/cancel", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "TransactionNotPending", decodeError(t, rec).Kind)

	rec = f.do(t, nil, http.MethodGet, "/api/v1/transfers?depositor="+f.depositor.addr.Hex()+"&status=completed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []TransferResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestHTTP_CancelRefundsDepositor(t *testing.T) {
	f := newAPIFixture(t)
	f.fund(500)

	rec := f.initiate(t, "500", 137)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeTransfer(t, rec).ID

	rec = f.do(t, &f.stranger, http.MethodPost, "/api/v1/transfers/"+id+"/cancel", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, &f.depositor, http.MethodPost, "/api/v1/transfers/"+id+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "cancelled", decodeTransfer(t, rec).Status)
	assert.Equal(t, int64(500), f.chain.TokenBalance(tokenAddr, f.depositor.addr).Int64())

	rec = f.do(t, nil, http.MethodGet, "/api/v1/custody/"+tokenAddr.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bal BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bal))
	assert.Equal(t, "0", bal.Balance)
}

func TestHTTP_TransferLookup(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, nil, http.MethodGet, "/api/v1/transfers/0x1234", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid transfer id", decodeError(t, rec).Error)

	rec = f.do(t, nil, http.MethodGet, "/api/v1/transfers/"+common.Hash{0x01}.Hex(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TransferNotFound", decodeError(t, rec).Kind)

	rec = f.do(t, &f.relayer, http.MethodPost, "/api/v1/transfers/"+common.Hash{0x01}.Hex()+"/complete", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "TransactionNotPending", decodeError(t, rec).Kind)
}

func TestHTTP_PauseBlocksInitiate(t *testing.T) {
	f := newAPIFixture(t)
	f.fund(100)

	rec := f.do(t, &f.stranger, http.MethodPost, "/api/v1/pause", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, &f.admin, http.MethodPost, "/api/v1/pause", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.initiate(t, "100", 137)
	require.Equal(t, http.StatusLocked, rec.Code)
	assert.Equal(t, "ContractPaused", decodeError(t, rec).Kind)

	rec = f.do(t, &f.admin, http.MethodPost, "/api/v1/unpause", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.initiate(t, "100", 137)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestHTTP_AdminOperations(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, &f.admin, http.MethodPost, "/api/v1/chains/56", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, &f.admin, http.MethodPost, "/api/v1/chains/56", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ChainAlreadySupported", decodeError(t, rec).Kind)

	rec = f.do(t, nil, http.MethodGet, "/api/v1/chains/56", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"chain_id":56,"supported":true}`, rec.Body.String())

	rec = f.do(t, &f.admin, http.MethodGet, "/api/v1/chains/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, &f.admin, http.MethodDelete, "/api/v1/relayers/"+f.stranger.addr.Hex(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotRelayer", decodeError(t, rec).Kind)

	rec = f.do(t, &f.admin, http.MethodPost, "/api/v1/relayers/"+f.relayer.addr.Hex(), nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "AlreadyRelayer", decodeError(t, rec).Kind)

	rec = f.do(t, &f.admin, http.MethodPut, "/api/v1/fee", map[string]any{"fee_rate": 1001})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "FeeTooHigh", decodeError(t, rec).Kind)

	rec = f.do(t, &f.admin, http.MethodPut, "/api/v1/fee", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "fee_rate required", decodeError(t, rec).Error)

	rec = f.do(t, &f.admin, http.MethodPut, "/api/v1/fee", map[string]any{"fee_rate": 250})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, &f.admin, http.MethodPut, "/api/v1/admin", adminRequest{Administrator: f.stranger.addr.Hex()})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, nil, http.MethodGet, "/api/v1/config", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cfg ConfigResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, uint64(1), cfg.ChainID)
	assert.Equal(t, f.stranger.addr.Hex(), cfg.Administrator)
	assert.Equal(t, uint64(250), cfg.FeeRate)
	assert.Equal(t, []uint64{56, 137}, cfg.Chains)
	assert.ElementsMatch(t, []string{f.admin.addr.Hex(), f.relayer.addr.Hex()}, cfg.Relayers)
	assert.Equal(t, "exact", cfg.RefundPolicy)
	assert.False(t, cfg.Paused)

	// the previous administrator lost its rights
	rec = f.do(t, &f.admin, http.MethodPost, "/api/v1/pause", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, nil, http.MethodGet, "/api/v1/events?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var events []EventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 2)
	assert.Equal(t, "AdministrationTransferred", events[0].Type)
	assert.Equal(t, "FeeUpdated", events[1].Type)
	assert.Equal(t, uint64(250), events[1].FeeRate)
}

func TestHTTP_Receive(t *testing.T) {
	f := newAPIFixture(t)
	f.chain.Fund(f.stranger.addr, big.NewInt(50))

	rec := f.do(t, &f.stranger, http.MethodPost, "/api/v1/receive", receiveRequest{Value: "50"})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = f.do(t, nil, http.MethodGet, "/api/v1/custody/"+common.Address{}.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bal BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bal))
	assert.Equal(t, "50", bal.Balance)
}
