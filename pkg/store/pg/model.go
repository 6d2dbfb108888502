package pg

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
)

const stateRowID = 1

// LedgerStateDao is the single row holding the scalar ledger configuration.
type LedgerStateDao struct {
	bun.BaseModel `bun:"table:ledger_state,alias:ls"`
	ID            int       `bun:"id,pk"`
	Administrator string    `bun:"administrator,notnull,type:varchar(42)"`
	FeeRate       int64     `bun:"fee_rate,notnull"`
	Paused        bool      `bun:"paused,notnull"`
	Sequence      int64     `bun:"sequence,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// SupportedChainDao maps to the 'supported_chains' table.
type SupportedChainDao struct {
	bun.BaseModel `bun:"table:supported_chains,alias:sc"`
	ChainID       int64 `bun:"chain_id,pk"`
}

// RelayerDao maps to the 'relayers' table.
type RelayerDao struct {
	bun.BaseModel `bun:"table:relayers,alias:r"`
	Address       string `bun:"address,pk,type:varchar(42)"`
}

// TransferDao maps to the 'transfers' table. Amounts are uint256 values
// stored as numeric(78,0).
type TransferDao struct {
	bun.BaseModel    `bun:"table:transfers,alias:t"`
	ID               string          `bun:"id,pk,type:varchar(66)"`
	Depositor        string          `bun:"depositor,notnull,type:varchar(42)"`
	Recipient        string          `bun:"recipient,notnull,type:varchar(42)"`
	Asset            string          `bun:"asset,notnull,type:varchar(42)"`
	GrossAmount      decimal.Decimal `bun:"gross_amount,notnull,type:numeric(78,0)"`
	Fee              decimal.Decimal `bun:"fee,notnull,type:numeric(78,0)"`
	NetAmount        decimal.Decimal `bun:"net_amount,notnull,type:numeric(78,0)"`
	FeeRate          int64           `bun:"fee_rate,notnull"`
	SourceChain      int64           `bun:"source_chain,notnull"`
	DestinationChain int64           `bun:"destination_chain,notnull"`
	Sequence         int64           `bun:"sequence,notnull,unique"`
	Status           string          `bun:"status,notnull,type:varchar(16)"`
	DepositTx        string          `bun:"deposit_tx,type:varchar(66)"`
	SettlementTx     string          `bun:"settlement_tx,type:varchar(66)"`
	CreatedAt        time.Time       `bun:"created_at,notnull"`
	UpdatedAt        time.Time       `bun:"updated_at,notnull"`
}

// LockedBalanceDao maps to the 'locked_balances' table.
type LockedBalanceDao struct {
	bun.BaseModel `bun:"table:locked_balances,alias:lb"`
	Depositor     string          `bun:"depositor,pk,type:varchar(42)"`
	Asset         string          `bun:"asset,pk,type:varchar(42)"`
	Amount        decimal.Decimal `bun:"amount,notnull,type:numeric(78,0)"`
}

// DepositProofDao maps to the 'deposit_proofs' table: chain transactions
// already credited to a transfer.
type DepositProofDao struct {
	bun.BaseModel `bun:"table:deposit_proofs,alias:dp"`
	TxHash        string    `bun:"tx_hash,pk,type:varchar(66)"`
	TransferID    string    `bun:"transfer_id,notnull,type:varchar(66)"`
	ConsumedAt    time.Time `bun:"consumed_at,notnull,default:current_timestamp"`
}

// EventDao maps to the append-only 'ledger_events' table. Position orders
// events within a commit.
type EventDao struct {
	bun.BaseModel `bun:"table:ledger_events,alias:le"`
	Position      int64               `bun:"position,pk,autoincrement"`
	ID            uuid.UUID           `bun:"id,notnull,unique,type:uuid"`
	Type          string              `bun:"type,notnull,type:varchar(64)"`
	Actor         string              `bun:"actor,notnull,type:varchar(42)"`
	Subject       string              `bun:"subject,type:varchar(42)"`
	TransferID    string              `bun:"transfer_id,type:varchar(66)"`
	Asset         string              `bun:"asset,type:varchar(42)"`
	ChainID       int64               `bun:"chain_id"`
	Amount        decimal.NullDecimal `bun:"amount,type:numeric(78,0)"`
	FeeRate       int64               `bun:"fee_rate"`
	CreatedAt     time.Time           `bun:"created_at,notnull"`
}

func toDecimal(v *big.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, 0)
}

func toBigInt(d decimal.Decimal) *big.Int {
	return d.BigInt()
}

// hashString leaves unset hashes empty.
func hashString(h common.Hash) string {
	if h == (common.Hash{}) {
		return ""
	}
	return h.Hex()
}

func toTransferDao(t *bridge.Transfer) *TransferDao {
	return &TransferDao{
		ID:               t.ID.Hex(),
		Depositor:        t.Depositor.Hex(),
		Recipient:        t.Recipient.Hex(),
		Asset:            t.Asset.Hex(),
		GrossAmount:      toDecimal(t.GrossAmount),
		Fee:              toDecimal(t.Fee),
		NetAmount:        toDecimal(t.NetAmount),
		FeeRate:          int64(t.FeeRate),
		SourceChain:      int64(t.SourceChain),
		DestinationChain: int64(t.DestinationChain),
		Sequence:         int64(t.Sequence),
		Status:           string(t.Status),
		DepositTx:        hashString(t.DepositTx),
		SettlementTx:     hashString(t.SettlementTx),
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func toTransfer(dao *TransferDao) *bridge.Transfer {
	return &bridge.Transfer{
		ID:               common.HexToHash(dao.ID),
		Depositor:        common.HexToAddress(dao.Depositor),
		Recipient:        common.HexToAddress(dao.Recipient),
		Asset:            common.HexToAddress(dao.Asset),
		GrossAmount:      toBigInt(dao.GrossAmount),
		Fee:              toBigInt(dao.Fee),
		NetAmount:        toBigInt(dao.NetAmount),
		FeeRate:          uint64(dao.FeeRate),
		SourceChain:      uint64(dao.SourceChain),
		DestinationChain: uint64(dao.DestinationChain),
		Sequence:         uint64(dao.Sequence),
		Status:           bridge.Status(dao.Status),
		DepositTx:        common.HexToHash(dao.DepositTx),
		SettlementTx:     common.HexToHash(dao.SettlementTx),
		CreatedAt:        dao.CreatedAt.UTC(),
		UpdatedAt:        dao.UpdatedAt.UTC(),
	}
}

func toEventDao(e bridge.Event) *EventDao {
	dao := &EventDao{
		ID:        e.ID,
		Type:      string(e.Type),
		Actor:     e.Actor.Hex(),
		ChainID:   int64(e.ChainID),
		FeeRate:   int64(e.FeeRate),
		CreatedAt: e.CreatedAt,
	}
	if e.Subject != (common.Address{}) {
		dao.Subject = e.Subject.Hex()
	}
	if e.TransferID != (bridge.TransferID{}) {
		dao.TransferID = e.TransferID.Hex()
		dao.Asset = e.Asset.Hex()
	}
	if e.Amount != nil {
		dao.Amount = decimal.NewNullDecimal(toDecimal(e.Amount))
	}
	return dao
}

func toEvent(dao *EventDao) bridge.Event {
	e := bridge.Event{
		ID:        dao.ID,
		Type:      bridge.EventType(dao.Type),
		Actor:     common.HexToAddress(dao.Actor),
		ChainID:   uint64(dao.ChainID),
		FeeRate:   uint64(dao.FeeRate),
		CreatedAt: dao.CreatedAt.UTC(),
	}
	if dao.Subject != "" {
		e.Subject = common.HexToAddress(dao.Subject)
	}
	if dao.TransferID != "" {
		e.TransferID = common.HexToHash(dao.TransferID)
		e.Asset = common.HexToAddress(dao.Asset)
	}
	if dao.Amount.Valid {
		e.Amount = toBigInt(dao.Amount.Decimal)
	}
	return e
}
