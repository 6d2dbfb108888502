package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/custody-bridge/pkg/config"
	"github.com/chainsafe/custody-bridge/pkg/ledger"
	"github.com/chainsafe/custody-bridge/pkg/ledger/service"
)

const testConfig = `
ledger:
  chain_id: 1
  deployer: "0xAD00000000000000000000000000000000000001"
  fee_rate: 25
  supported_chains: [137]
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg, err := config.Parse([]byte(testConfig))
	require.NoError(t, err)
	return NewServer(cfg)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouter_HealthReadyMetrics(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	s := newTestServer(t)

	store, closeStore, err := s.openStore(ctx, logger)
	require.NoError(t, err)
	defer closeStore()
	adapter, closeCustody, err := s.openCustody(logger)
	require.NoError(t, err)
	defer closeCustody()

	l := ledger.New(s.cfg.Ledger.ChainID, store, adapter, logger)
	router := s.setupRouter(l, service.NewService(l), logger)

	assert.Equal(t, http.StatusOK, get(t, router, "/health").Code)

	rec := get(t, router, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "not deployed yet")

	require.NoError(t, s.deploy(ctx, l, logger))
	rec = get(t, router, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())

	rec = get(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bridge_fee_rate_basis_points 25")

	rec = get(t, router, "/api/v1/config")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fee_rate":25`)
}

func TestDeploy_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	s := newTestServer(t)

	store, _, err := s.openStore(ctx, logger)
	require.NoError(t, err)
	adapter, _, err := s.openCustody(logger)
	require.NoError(t, err)
	l := ledger.New(s.cfg.Ledger.ChainID, store, adapter, logger)

	require.NoError(t, s.deploy(ctx, l, logger))
	require.NoError(t, l.UpdateBridgeFee(ctx, common.HexToAddress(s.cfg.Ledger.Deployer), 50))
	require.NoError(t, s.deploy(ctx, l, logger))

	snap, err := l.Config(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), snap.FeeRate)
	assert.Equal(t, []uint64{137}, snap.Chains)
}

func TestSetupPublisher_WithoutRedis(t *testing.T) {
	s := newTestServer(t)
	pub, closePub := s.setupPublisher(zap.NewNop())
	defer closePub()
	require.NotNil(t, pub)
	assert.NoError(t, pub.Publish(context.Background(), nil))
}
