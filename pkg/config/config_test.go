package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
ledger:
  chain_id: 1
  deployer: "0x1111111111111111111111111111111111111111"
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, StoreDriverMemory, cfg.Database.Driver)
	assert.Equal(t, CustodyModeSimulated, cfg.Custody.Mode)
	assert.Equal(t, "exact", cfg.Ledger.RefundPolicy)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Monitoring.Enabled)
}

func TestParse_FileValuesOverrideDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML + `
  fee_rate: 50
  supported_chains: [137, 10]
  refund_policy: legacy
server:
  port: 9000
  read_timeout: 5s
`))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, uint64(50), cfg.Ledger.FeeRate)
	assert.Equal(t, []uint64{137, 10}, cfg.Ledger.SupportedChains)
	assert.Equal(t, "legacy", cfg.Ledger.RefundPolicy)
}

func TestParse_SecretsFromEnvironment(t *testing.T) {
	t.Setenv("LEDGER_DATABASE_PASSWORD", "s3cret")
	t.Setenv("LEDGER_JWT_SECRET", "jwt-key")

	cfg, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "jwt-key", cfg.Auth.JWTSecret)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing deployer", "ledger:\n  chain_id: 1\n"},
		{"bad deployer", "ledger:\n  chain_id: 1\n  deployer: nope\n"},
		{"fee above cap", minimalYAML + "  fee_rate: 1001\n"},
		{"unknown refund policy", minimalYAML + "  refund_policy: generous\n"},
		{"postgres without user", minimalYAML + "database:\n  driver: postgres\n"},
		{"ethereum custody without rpc", minimalYAML + "custody:\n  mode: ethereum\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cfg.Ledger.ChainID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	require.Error(t, err)

	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, logger)
}
