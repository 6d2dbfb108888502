// Package service exposes the transaction ledger to transports: it maps
// ledger errors onto service errors and serves the HTTP API.
package service

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/custody-bridge/internal/metrics"
	apperrors "github.com/chainsafe/custody-bridge/pkg/app/errors"
	"github.com/chainsafe/custody-bridge/pkg/bridge"
	"github.com/chainsafe/custody-bridge/pkg/ledger"
)

// Ledger is the subset of *ledger.Ledger the service drives.
//
//go:generate mockery --name Ledger --output mocks --outpkg mocks --filename mock_ledger.go --with-expecter
type Ledger interface {
	Initiate(ctx context.Context, caller common.Address, req ledger.InitiateRequest) (bridge.TransferID, error)
	Complete(ctx context.Context, caller common.Address, id bridge.TransferID) error
	Cancel(ctx context.Context, caller common.Address, id bridge.TransferID) error
	ReceiveNative(ctx context.Context, from common.Address, value *big.Int) error

	AddRelayer(ctx context.Context, caller, id common.Address) error
	RemoveRelayer(ctx context.Context, caller, id common.Address) error
	TransferAdministration(ctx context.Context, caller, newAdmin common.Address) error
	Pause(ctx context.Context, caller common.Address) error
	Unpause(ctx context.Context, caller common.Address) error
	AddSupportedChain(ctx context.Context, caller common.Address, chainID uint64) error
	RemoveSupportedChain(ctx context.Context, caller common.Address, chainID uint64) error
	UpdateBridgeFee(ctx context.Context, caller common.Address, rate uint64) error

	GetTransaction(ctx context.Context, id bridge.TransferID) (*bridge.Transfer, error)
	IsChainSupported(ctx context.Context, chainID uint64) (bool, error)
	GetLockedBalance(ctx context.Context, depositor, asset common.Address) (*big.Int, error)
	GetContractBalance(ctx context.Context, asset common.Address) (*big.Int, error)
	Config(ctx context.Context) (*ledger.Snapshot, error)
	ListTransactions(ctx context.Context, filter ledger.TransferFilter) ([]*bridge.Transfer, error)
	Events(ctx context.Context, limit int) ([]bridge.Event, error)
}

// Service defines the bridge ledger business operations offered over the API.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	InitiateBridge(ctx context.Context, caller common.Address, req ledger.InitiateRequest) (*bridge.Transfer, error)
	CompleteBridge(ctx context.Context, caller common.Address, id bridge.TransferID) error
	CancelBridge(ctx context.Context, caller common.Address, id bridge.TransferID) error
	Receive(ctx context.Context, from common.Address, value *big.Int) error

	AddRelayer(ctx context.Context, caller, id common.Address) error
	RemoveRelayer(ctx context.Context, caller, id common.Address) error
	TransferAdministration(ctx context.Context, caller, newAdmin common.Address) error
	Pause(ctx context.Context, caller common.Address) error
	Unpause(ctx context.Context, caller common.Address) error
	AddSupportedChain(ctx context.Context, caller common.Address, chainID uint64) error
	RemoveSupportedChain(ctx context.Context, caller common.Address, chainID uint64) error
	UpdateBridgeFee(ctx context.Context, caller common.Address, rate uint64) error

	GetTransaction(ctx context.Context, id bridge.TransferID) (*bridge.Transfer, error)
	ListTransactions(ctx context.Context, filter ledger.TransferFilter) ([]*bridge.Transfer, error)
	IsChainSupported(ctx context.Context, chainID uint64) (bool, error)
	GetLockedBalance(ctx context.Context, depositor, asset common.Address) (*big.Int, error)
	GetContractBalance(ctx context.Context, asset common.Address) (*big.Int, error)
	Config(ctx context.Context) (*ledger.Snapshot, error)
	Events(ctx context.Context, limit int) ([]bridge.Event, error)
}

type ledgerService struct {
	ledger Ledger
}

// NewService creates the ledger service
func NewService(l Ledger) Service {
	return &ledgerService{ledger: l}
}

func (s *ledgerService) InitiateBridge(
	ctx context.Context,
	caller common.Address,
	req ledger.InitiateRequest,
) (*bridge.Transfer, error) {
	id, err := s.ledger.Initiate(ctx, caller, req)
	if err != nil {
		return nil, mapError(err)
	}
	t, err := s.ledger.GetTransaction(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (s *ledgerService) CompleteBridge(ctx context.Context, caller common.Address, id bridge.TransferID) error {
	return mapError(s.ledger.Complete(ctx, caller, id))
}

func (s *ledgerService) CancelBridge(ctx context.Context, caller common.Address, id bridge.TransferID) error {
	return mapError(s.ledger.Cancel(ctx, caller, id))
}

func (s *ledgerService) Receive(ctx context.Context, from common.Address, value *big.Int) error {
	return mapError(s.ledger.ReceiveNative(ctx, from, value))
}

func (s *ledgerService) AddRelayer(ctx context.Context, caller, id common.Address) error {
	return mapError(s.ledger.AddRelayer(ctx, caller, id))
}

func (s *ledgerService) RemoveRelayer(ctx context.Context, caller, id common.Address) error {
	return mapError(s.ledger.RemoveRelayer(ctx, caller, id))
}

func (s *ledgerService) TransferAdministration(ctx context.Context, caller, newAdmin common.Address) error {
	return mapError(s.ledger.TransferAdministration(ctx, caller, newAdmin))
}

func (s *ledgerService) Pause(ctx context.Context, caller common.Address) error {
	return mapError(s.ledger.Pause(ctx, caller))
}

func (s *ledgerService) Unpause(ctx context.Context, caller common.Address) error {
	return mapError(s.ledger.Unpause(ctx, caller))
}

func (s *ledgerService) AddSupportedChain(ctx context.Context, caller common.Address, chainID uint64) error {
	return mapError(s.ledger.AddSupportedChain(ctx, caller, chainID))
}

func (s *ledgerService) RemoveSupportedChain(ctx context.Context, caller common.Address, chainID uint64) error {
	return mapError(s.ledger.RemoveSupportedChain(ctx, caller, chainID))
}

func (s *ledgerService) UpdateBridgeFee(ctx context.Context, caller common.Address, rate uint64) error {
	return mapError(s.ledger.UpdateBridgeFee(ctx, caller, rate))
}

func (s *ledgerService) GetTransaction(ctx context.Context, id bridge.TransferID) (*bridge.Transfer, error) {
	t, err := s.ledger.GetTransaction(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, filter ledger.TransferFilter) ([]*bridge.Transfer, error) {
	list, err := s.ledger.ListTransactions(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}
	return list, nil
}

func (s *ledgerService) IsChainSupported(ctx context.Context, chainID uint64) (bool, error) {
	ok, err := s.ledger.IsChainSupported(ctx, chainID)
	return ok, mapError(err)
}

func (s *ledgerService) GetLockedBalance(ctx context.Context, depositor, asset common.Address) (*big.Int, error) {
	v, err := s.ledger.GetLockedBalance(ctx, depositor, asset)
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

func (s *ledgerService) GetContractBalance(ctx context.Context, asset common.Address) (*big.Int, error) {
	v, err := s.ledger.GetContractBalance(ctx, asset)
	if err != nil {
		return nil, apperrors.New(apperrors.CategoryDependencyFailure, "CustodyUnavailable", err, "custody balance unavailable")
	}
	return v, nil
}

func (s *ledgerService) Config(ctx context.Context) (*ledger.Snapshot, error) {
	snap, err := s.ledger.Config(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return snap, nil
}

func (s *ledgerService) Events(ctx context.Context, limit int) ([]bridge.Event, error) {
	events, err := s.ledger.Events(ctx, limit)
	if err != nil {
		return nil, mapError(err)
	}
	return events, nil
}

var categories = []struct {
	err error
	cat apperrors.Category
}{
	{ledger.ErrUnauthorized, apperrors.CategoryForbidden},
	{ledger.ErrContractPaused, apperrors.CategoryLocked},
	{ledger.ErrInvalidRecipient, apperrors.CategoryDataError},
	{ledger.ErrInvalidAmount, apperrors.CategoryDataError},
	{ledger.ErrChainNotSupported, apperrors.CategoryDataError},
	{ledger.ErrFeeTooHigh, apperrors.CategoryDataError},
	{ledger.ErrChainAlreadySupported, apperrors.CategoryDataConflict},
	{ledger.ErrAlreadyRelayer, apperrors.CategoryDataConflict},
	{ledger.ErrTransactionNotPending, apperrors.CategoryDataConflict},
	{ledger.ErrInsufficientBalance, apperrors.CategoryDataConflict},
	{ledger.ErrDepositProofReused, apperrors.CategoryDataConflict},
	{ledger.ErrNotRelayer, apperrors.CategoryResourceNotFound},
	{ledger.ErrTransferNotFound, apperrors.CategoryResourceNotFound},
	{ledger.ErrTokenTransferFailed, apperrors.CategoryDependencyFailure},
}

// mapError converts a ledger error into a ServiceError carrying its kind.
// The client sees the kind's message, never the wrapped detail.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	kind := ledger.KindOf(err)
	metrics.ErrorsTotal.WithLabelValues(kind).Inc()

	for _, c := range categories {
		if errors.Is(err, c.err) {
			return apperrors.New(c.cat, kind, err, c.err.Error())
		}
	}
	return apperrors.New(apperrors.CategoryGeneralError, kind, err, "Internal Server Error")
}
