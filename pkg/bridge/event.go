package bridge

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// EventType names an audit event emitted by the ledger.
type EventType string

const (
	EventRelayerAdded              EventType = "RelayerAdded"
	EventRelayerRemoved            EventType = "RelayerRemoved"
	EventAdministrationTransferred EventType = "AdministrationTransferred"
	EventPaused                    EventType = "Paused"
	EventUnpaused                  EventType = "Unpaused"
	EventChainAdded                EventType = "ChainAdded"
	EventChainRemoved              EventType = "ChainRemoved"
	EventFeeUpdated                EventType = "FeeUpdated"
	EventBridgeInitiated           EventType = "BridgeInitiated"
	EventBridgeCompleted           EventType = "BridgeCompleted"
	EventBridgeCancelled           EventType = "BridgeCancelled"
)

// Event is an append-only audit record. Fields that do not apply to the
// event type are left zero.
type Event struct {
	ID   uuid.UUID
	Type EventType
	// Actor is the caller that triggered the event.
	Actor common.Address
	// Subject is the relayer, new administrator or transfer recipient.
	Subject    common.Address
	TransferID TransferID
	Asset      common.Address
	ChainID    uint64
	// Amount is the net amount for BridgeInitiated and the refund for BridgeCancelled.
	Amount    *big.Int
	FeeRate   uint64
	CreatedAt time.Time
}

// NewEvent returns an event of the given type with a fresh identifier.
func NewEvent(typ EventType, actor common.Address) Event {
	return Event{ID: uuid.New(), Type: typ, Actor: actor}
}
