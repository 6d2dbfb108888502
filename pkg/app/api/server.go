// Package api implements app.Runner for the ledger API server process.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/custody-bridge/pkg/app/http"
	"github.com/chainsafe/custody-bridge/pkg/auth"
	"github.com/chainsafe/custody-bridge/pkg/config"
	"github.com/chainsafe/custody-bridge/pkg/custody"
	custodymem "github.com/chainsafe/custody-bridge/pkg/custody/memory"
	"github.com/chainsafe/custody-bridge/pkg/ethereum"
	"github.com/chainsafe/custody-bridge/pkg/events"
	redispub "github.com/chainsafe/custody-bridge/pkg/events/redis"
	"github.com/chainsafe/custody-bridge/pkg/ledger"
	"github.com/chainsafe/custody-bridge/pkg/ledger/service"
	"github.com/chainsafe/custody-bridge/pkg/pgutil"
	"github.com/chainsafe/custody-bridge/pkg/store/memory"
	"github.com/chainsafe/custody-bridge/pkg/store/pg"
)

// Server holds cfg to init the ledger api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("ledger server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting bridge ledger",
		zap.Uint64("chain_id", cfg.Ledger.ChainID),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	store, closeStore, err := s.openStore(ctx, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	adapter, closeCustody, err := s.openCustody(logger)
	if err != nil {
		return err
	}
	defer closeCustody()

	publisher, closePublisher := s.setupPublisher(logger)
	defer closePublisher()

	refundPolicy, err := ledger.ParseRefundPolicy(cfg.Ledger.RefundPolicy)
	if err != nil {
		return err
	}

	l := ledger.New(cfg.Ledger.ChainID, store, adapter, logger,
		ledger.WithPublisher(publisher),
		ledger.WithRefundPolicy(refundPolicy),
	)
	if err := s.deploy(ctx, l, logger); err != nil {
		return err
	}

	svc := service.NewLog(service.NewService(l), logger)
	router := s.setupRouter(l, svc, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) openStore(ctx context.Context, logger *zap.Logger) (ledger.Store, func(), error) {
	if s.cfg.Database.Driver != config.StoreDriverPostgres {
		logger.Warn("Using in-memory ledger store; state is lost on restart")
		return memory.NewStore(), func() {}, nil
	}

	db, err := pgutil.ConnectDB(ctx, &s.cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect db: %w", err)
	}
	logger.Info("Connected to database",
		zap.String("host", s.cfg.Database.Host),
		zap.String("database", s.cfg.Database.Database),
	)
	return pg.NewStore(db), func() { _ = db.Close() }, nil
}

func (s *Server) openCustody(logger *zap.Logger) (*custody.Adapter, func(), error) {
	if s.cfg.Custody.Mode != config.CustodyModeEthereum {
		account := common.HexToAddress(s.cfg.Custody.Address)
		chain := custodymem.NewChain(account)
		chain.MintAttached(true)
		logger.Warn("Using simulated custody", zap.String("custody_address", account.Hex()))
		return custody.NewAdapter(account, chain, chain, logger), func() {}, nil
	}

	client, err := ethereum.NewClient(&s.cfg.Ethereum, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("create ethereum client: %w", err)
	}
	return custody.NewAdapter(client.Address(), client, client, logger), client.Close, nil
}

func (s *Server) setupPublisher(logger *zap.Logger) (ledger.Publisher, func()) {
	publishers := events.Multi{events.NewLogPublisher(logger)}
	if s.cfg.Monitoring.Enabled {
		publishers = append(publishers, events.NewMetricsPublisher())
	}
	if !s.cfg.Redis.Enabled {
		return publishers, func() {}
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Redis.Host, s.cfg.Redis.Port)
	pool := redispub.NewPool(addr, s.cfg.Redis.MaxIdle)
	publishers = append(publishers, redispub.NewPublisher(pool, s.cfg.Redis.Channel, logger))
	logger.Info("Publishing ledger events to redis",
		zap.String("address", addr),
		zap.String("channel", s.cfg.Redis.Channel),
	)
	return publishers, func() { _ = pool.Close() }
}

// deploy seeds the state on first start and syncs the gauges from it.
func (s *Server) deploy(ctx context.Context, l *ledger.Ledger, logger *zap.Logger) error {
	deployer := common.HexToAddress(s.cfg.Ledger.Deployer)
	deployed, err := l.Deploy(ctx, ledger.DeployParams{
		Deployer: deployer,
		FeeRate:  s.cfg.Ledger.FeeRate,
		Chains:   s.cfg.Ledger.SupportedChains,
	})
	if err != nil {
		return fmt.Errorf("deploy ledger: %w", err)
	}

	snap, err := l.Config(ctx)
	if err != nil {
		return fmt.Errorf("load ledger config: %w", err)
	}
	if deployed {
		logger.Info("Ledger deployed", zap.String("administrator", deployer.Hex()))
	} else {
		logger.Info("Ledger state loaded",
			zap.String("administrator", snap.Administrator.Hex()),
			zap.Uint64("sequence", snap.Sequence),
			zap.Bool("paused", snap.Paused),
		)
	}
	if s.cfg.Monitoring.Enabled {
		events.SyncState(snap)
	}
	return nil
}

func (s *Server) setupRouter(l *ledger.Ledger, svc service.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if s.cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "OK")
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if _, err := l.Config(r.Context()); err != nil {
			logger.Warn("Readiness check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, "NOT_READY")
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "READY")
	})
	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	authenticator := auth.NewAuthenticator(auth.NewJWTValidator(s.cfg.Auth.JWTSecret, s.cfg.Auth.JWTIssuer), logger)
	r.Group(func(r chi.Router) {
		r.Use(authenticator.Middleware)
		service.RegisterRoutes(r, svc, logger)
	})

	return r
}
