// Package bridge defines the records shared by the ledger, its stores and its transports.
package bridge

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// NativeAsset is the sentinel asset address for the chain's native currency.
var NativeAsset = common.Address{}

// TransferID uniquely identifies a transfer record.
type TransferID = common.Hash

// Status represents the lifecycle state of a transfer.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	// StatusFailed is reserved for persisted-value compatibility. No operation sets it.
	StatusFailed Status = "failed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled, StatusFailed:
		return true
	}
	return false
}

// Transfer is a bridge transfer intent recorded at initiation. DepositTx is
// the chain transaction that carried a native deposit when custody demands
// one; SettlementTx is the custody payout submitted for a cancelled transfer.
type Transfer struct {
	ID               TransferID
	Depositor        common.Address
	Recipient        common.Address
	Asset            common.Address
	GrossAmount      *big.Int
	Fee              *big.Int
	NetAmount        *big.Int
	FeeRate          uint64
	SourceChain      uint64
	DestinationChain uint64
	Sequence         uint64
	Status           Status
	DepositTx        common.Hash
	SettlementTx     common.Hash
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsNative reports whether the transfer moves the native currency.
func (t *Transfer) IsNative() bool {
	return t.Asset == NativeAsset
}

// Clone returns a deep copy of t.
func (t *Transfer) Clone() *Transfer {
	if t == nil {
		return nil
	}
	c := *t
	c.GrossAmount = cloneInt(t.GrossAmount)
	c.Fee = cloneInt(t.Fee)
	c.NetAmount = cloneInt(t.NetAmount)
	return &c
}

// DeriveTransferID computes the identifier of a new transfer from its packed fields:
// keccak256(depositor ‖ recipient ‖ asset ‖ gross ‖ source ‖ destination ‖ unixTime ‖ sequence).
// Addresses contribute 20 bytes, integers a 32-byte big-endian word.
func DeriveTransferID(
	depositor, recipient, asset common.Address,
	gross *big.Int,
	sourceChain, destinationChain uint64,
	createdAt time.Time,
	sequence uint64,
) TransferID {
	return crypto.Keccak256Hash(
		depositor.Bytes(),
		recipient.Bytes(),
		asset.Bytes(),
		common.BigToHash(gross).Bytes(),
		word(sourceChain),
		word(destinationChain),
		word(uint64(createdAt.Unix())),
		word(sequence),
	)
}

// ParseTransferID decodes a 0x-prefixed 32-byte hex identifier.
func ParseTransferID(s string) (TransferID, bool) {
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return TransferID{}, false
	}
	return common.BytesToHash(b), true
}

func word(v uint64) []byte {
	return common.BigToHash(new(big.Int).SetUint64(v)).Bytes()
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
