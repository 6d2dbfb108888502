package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/custody-bridge/internal/metrics"
	"github.com/chainsafe/custody-bridge/pkg/bridge"
	"github.com/chainsafe/custody-bridge/pkg/ledger"
)

const serviceName = "LedgerService"

// logService wraps Service with automatic logging of all mutating calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the ledger Service.
// Mutations are logged on entry and exit with their duration; reads are
// logged only when they fail.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) started(method string, fields ...zap.Field) time.Time {
	ls.logger.Info(method+" started", append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
	}, fields...)...)
	return time.Now()
}

func (ls *logService) finished(method string, start time.Time, err error, fields ...zap.Field) {
	duration := time.Since(start)
	metrics.OperationDuration.WithLabelValues(method).Observe(duration.Seconds())

	base := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", duration),
	}
	if err != nil {
		ls.logger.Error(method+" failed", append(append(base, fields...), zap.Error(err))...)
		return
	}
	ls.logger.Info(method+" completed", append(base, fields...)...)
}

func (ls *logService) readFailed(method string, err error) {
	if err != nil {
		ls.logger.Warn(method+" failed",
			zap.String("service", serviceName),
			zap.String("method", method),
			zap.Error(err),
		)
	}
}

func (ls *logService) InitiateBridge(
	ctx context.Context,
	caller common.Address,
	req ledger.InitiateRequest,
) (t *bridge.Transfer, err error) {
	start := ls.started("InitiateBridge",
		zap.Stringer("caller", caller),
		zap.Stringer("recipient", req.Recipient),
		zap.Stringer("asset", req.Asset),
		zap.Stringer("amount", amount(req.Amount)),
		zap.Uint64("destination_chain", req.DestinationChain),
	)
	defer func() {
		if err != nil {
			ls.finished("InitiateBridge", start, err, zap.Stringer("caller", caller))
			return
		}
		ls.finished("InitiateBridge", start, nil,
			zap.Stringer("transfer_id", t.ID),
			zap.Stringer("fee", t.Fee),
			zap.Stringer("net_amount", t.NetAmount),
			zap.Uint64("sequence", t.Sequence),
		)
	}()

	return ls.svc.InitiateBridge(ctx, caller, req)
}

func (ls *logService) CompleteBridge(ctx context.Context, caller common.Address, id bridge.TransferID) (err error) {
	start := ls.started("CompleteBridge", zap.Stringer("caller", caller), zap.Stringer("transfer_id", id))
	defer func() { ls.finished("CompleteBridge", start, err, zap.Stringer("transfer_id", id)) }()

	return ls.svc.CompleteBridge(ctx, caller, id)
}

func (ls *logService) CancelBridge(ctx context.Context, caller common.Address, id bridge.TransferID) (err error) {
	start := ls.started("CancelBridge", zap.Stringer("caller", caller), zap.Stringer("transfer_id", id))
	defer func() { ls.finished("CancelBridge", start, err, zap.Stringer("transfer_id", id)) }()

	return ls.svc.CancelBridge(ctx, caller, id)
}

func (ls *logService) Receive(ctx context.Context, from common.Address, value *big.Int) (err error) {
	start := ls.started("Receive", zap.Stringer("from", from), zap.Stringer("value", amount(value)))
	defer func() { ls.finished("Receive", start, err) }()

	return ls.svc.Receive(ctx, from, value)
}

func (ls *logService) AddRelayer(ctx context.Context, caller, id common.Address) (err error) {
	start := ls.started("AddRelayer", zap.Stringer("caller", caller), zap.Stringer("relayer", id))
	defer func() { ls.finished("AddRelayer", start, err, zap.Stringer("relayer", id)) }()

	return ls.svc.AddRelayer(ctx, caller, id)
}

func (ls *logService) RemoveRelayer(ctx context.Context, caller, id common.Address) (err error) {
	start := ls.started("RemoveRelayer", zap.Stringer("caller", caller), zap.Stringer("relayer", id))
	defer func() { ls.finished("RemoveRelayer", start, err, zap.Stringer("relayer", id)) }()

	return ls.svc.RemoveRelayer(ctx, caller, id)
}

func (ls *logService) TransferAdministration(ctx context.Context, caller, newAdmin common.Address) (err error) {
	start := ls.started("TransferAdministration", zap.Stringer("caller", caller), zap.Stringer("new_admin", newAdmin))
	defer func() { ls.finished("TransferAdministration", start, err, zap.Stringer("new_admin", newAdmin)) }()

	return ls.svc.TransferAdministration(ctx, caller, newAdmin)
}

func (ls *logService) Pause(ctx context.Context, caller common.Address) (err error) {
	start := ls.started("Pause", zap.Stringer("caller", caller))
	defer func() { ls.finished("Pause", start, err) }()

	return ls.svc.Pause(ctx, caller)
}

func (ls *logService) Unpause(ctx context.Context, caller common.Address) (err error) {
	start := ls.started("Unpause", zap.Stringer("caller", caller))
	defer func() { ls.finished("Unpause", start, err) }()

	return ls.svc.Unpause(ctx, caller)
}

func (ls *logService) AddSupportedChain(ctx context.Context, caller common.Address, chainID uint64) (err error) {
	start := ls.started("AddSupportedChain", zap.Stringer("caller", caller), zap.Uint64("chain_id", chainID))
	defer func() { ls.finished("AddSupportedChain", start, err, zap.Uint64("chain_id", chainID)) }()

	return ls.svc.AddSupportedChain(ctx, caller, chainID)
}

func (ls *logService) RemoveSupportedChain(ctx context.Context, caller common.Address, chainID uint64) (err error) {
	start := ls.started("RemoveSupportedChain", zap.Stringer("caller", caller), zap.Uint64("chain_id", chainID))
	defer func() { ls.finished("RemoveSupportedChain", start, err, zap.Uint64("chain_id", chainID)) }()

	return ls.svc.RemoveSupportedChain(ctx, caller, chainID)
}

func (ls *logService) UpdateBridgeFee(ctx context.Context, caller common.Address, rate uint64) (err error) {
	start := ls.started("UpdateBridgeFee", zap.Stringer("caller", caller), zap.Uint64("fee_rate", rate))
	defer func() { ls.finished("UpdateBridgeFee", start, err, zap.Uint64("fee_rate", rate)) }()

	return ls.svc.UpdateBridgeFee(ctx, caller, rate)
}

func (ls *logService) GetTransaction(ctx context.Context, id bridge.TransferID) (*bridge.Transfer, error) {
	t, err := ls.svc.GetTransaction(ctx, id)
	ls.readFailed("GetTransaction", err)
	return t, err
}

func (ls *logService) ListTransactions(ctx context.Context, filter ledger.TransferFilter) ([]*bridge.Transfer, error) {
	list, err := ls.svc.ListTransactions(ctx, filter)
	ls.readFailed("ListTransactions", err)
	return list, err
}

func (ls *logService) IsChainSupported(ctx context.Context, chainID uint64) (bool, error) {
	ok, err := ls.svc.IsChainSupported(ctx, chainID)
	ls.readFailed("IsChainSupported", err)
	return ok, err
}

func (ls *logService) GetLockedBalance(ctx context.Context, depositor, asset common.Address) (*big.Int, error) {
	v, err := ls.svc.GetLockedBalance(ctx, depositor, asset)
	ls.readFailed("GetLockedBalance", err)
	return v, err
}

func (ls *logService) GetContractBalance(ctx context.Context, asset common.Address) (*big.Int, error) {
	v, err := ls.svc.GetContractBalance(ctx, asset)
	ls.readFailed("GetContractBalance", err)
	return v, err
}

func (ls *logService) Config(ctx context.Context) (*ledger.Snapshot, error) {
	snap, err := ls.svc.Config(ctx)
	ls.readFailed("Config", err)
	return snap, err
}

func (ls *logService) Events(ctx context.Context, limit int) ([]bridge.Event, error) {
	events, err := ls.svc.Events(ctx, limit)
	ls.readFailed("Events", err)
	return events, err
}

// amount keeps nil values loggable
func amount(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
