package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "LEDGER"

// Custody modes
const (
	CustodyModeSimulated = "simulated"
	CustodyModeEthereum  = "ethereum"
)

// Store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Ledger     LedgerConfig     `yaml:"ledger"`
	Custody    CustodyConfig    `yaml:"custody"`
	Ethereum   EthereumConfig   `yaml:"ethereum"`
	Auth       AuthConfig       `yaml:"auth"`
	Redis      RedisConfig      `yaml:"redis"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver       string `yaml:"driver" default:"memory" validate:"oneof=memory postgres"`
	Host         string `yaml:"host" default:"localhost"`
	Port         int    `yaml:"port" default:"5432"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database" default:"bridge_ledger"`
	SSLMode      string `yaml:"ssl_mode" default:"disable"`
	MaxOpenConns int    `yaml:"max_open_conns" default:"10"`
}

// LedgerConfig contains the deployment parameters of the transaction ledger
type LedgerConfig struct {
	// ChainID is this ledger's own (source) chain id.
	ChainID uint64 `yaml:"chain_id" validate:"required"`
	// Deployer becomes the initial administrator and relayer on first start.
	Deployer string `yaml:"deployer" validate:"required,eth_addr"`
	// FeeRate in basis points, applied at first start only.
	FeeRate         uint64   `yaml:"fee_rate" default:"0" validate:"max=1000"`
	SupportedChains []uint64 `yaml:"supported_chains"`
	RefundPolicy    string   `yaml:"refund_policy" default:"exact" validate:"oneof=exact legacy"`
}

// CustodyConfig selects the asset custody backend
type CustodyConfig struct {
	Mode string `yaml:"mode" default:"simulated" validate:"oneof=simulated ethereum"`
	// Address of the custody account in simulated mode.
	Address string `yaml:"address" default:"0x00000000000000000000000000000000000b71d6" validate:"eth_addr"`
}

// EthereumConfig contains Ethereum client settings for the EVM custody backend
type EthereumConfig struct {
	RPCURL            string        `yaml:"rpc_url"`
	ChainID           int64         `yaml:"chain_id"`
	CustodyPrivateKey string        `yaml:"custody_private_key"`
	GasLimit          uint64        `yaml:"gas_limit" default:"300000"`
	MaxGasPrice       string        `yaml:"max_gas_price"`
	ReceiptTimeout    time.Duration `yaml:"receipt_timeout" default:"2m"`
}

// AuthConfig contains caller authentication settings
type AuthConfig struct {
	// JWTSecret enables HS256 bearer tokens for relayer daemons when set.
	JWTSecret string `yaml:"jwt_secret"`
	JWTIssuer string `yaml:"jwt_issuer"`
}

// RedisConfig contains the optional Redis event publisher settings
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host" default:"localhost"`
	Port    int    `yaml:"port" default:"6379"`
	Channel string `yaml:"channel" default:"bridge:events"`
	MaxIdle int    `yaml:"max_idle" default:"5"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML document, applies defaults and environment overrides
// and validates the result.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to set defaults: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := applySecrets(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// secrets are read from the environment only, e.g. LEDGER_DATABASE_PASSWORD.
type secrets struct {
	DatabasePassword  string `envconfig:"DATABASE_PASSWORD"`
	CustodyPrivateKey string `envconfig:"CUSTODY_PRIVATE_KEY"`
	JWTSecret         string `envconfig:"JWT_SECRET"`
}

func applySecrets(cfg *Config) error {
	var s secrets
	if err := envconfig.Process(envPrefix, &s); err != nil {
		return err
	}
	if s.DatabasePassword != "" {
		cfg.Database.Password = s.DatabasePassword
	}
	if s.CustodyPrivateKey != "" {
		cfg.Ethereum.CustodyPrivateKey = s.CustodyPrivateKey
	}
	if s.JWTSecret != "" {
		cfg.Auth.JWTSecret = s.JWTSecret
	}
	return nil
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	if cfg.Database.Driver == StoreDriverPostgres && cfg.Database.User == "" {
		return errors.New("database.user is required for the postgres driver")
	}
	if cfg.Custody.Mode == CustodyModeEthereum {
		if cfg.Ethereum.RPCURL == "" {
			return errors.New("ethereum.rpc_url is required for ethereum custody")
		}
		if cfg.Ethereum.CustodyPrivateKey == "" {
			return errors.New("ethereum.custody_private_key is required for ethereum custody")
		}
	}
	return nil
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
