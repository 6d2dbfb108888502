package ledger

import "errors"

// Ledger error kinds. Each aborts the call with every effect rolled back.
var (
	ErrUnauthorized          = errors.New("caller is not authorized")
	ErrContractPaused        = errors.New("bridge is paused")
	ErrInvalidRecipient      = errors.New("invalid recipient")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrChainNotSupported     = errors.New("chain not supported")
	ErrChainAlreadySupported = errors.New("chain already supported")
	ErrTransactionNotPending = errors.New("transaction not pending")
	ErrAlreadyRelayer        = errors.New("already a relayer")
	ErrNotRelayer            = errors.New("not a relayer")
	ErrFeeTooHigh            = errors.New("fee rate too high")
	ErrTokenTransferFailed   = errors.New("token transfer failed")
	ErrInsufficientBalance   = errors.New("insufficient locked balance")
	ErrDepositProofReused    = errors.New("deposit transaction already used")

	ErrTransferNotFound    = errors.New("transfer not found")
	ErrIdentifierCollision = errors.New("transfer identifier collision")
	ErrNotDeployed         = errors.New("ledger not deployed")
)

// KindInternal is reported for errors outside the ledger taxonomy.
const KindInternal = "Internal"

var kinds = []struct {
	err  error
	kind string
}{
	{ErrUnauthorized, "Unauthorized"},
	{ErrContractPaused, "ContractPaused"},
	{ErrInvalidRecipient, "InvalidRecipient"},
	{ErrInvalidAmount, "InvalidAmount"},
	{ErrChainNotSupported, "ChainNotSupported"},
	{ErrChainAlreadySupported, "ChainAlreadySupported"},
	{ErrTransactionNotPending, "TransactionNotPending"},
	{ErrAlreadyRelayer, "AlreadyRelayer"},
	{ErrNotRelayer, "NotRelayer"},
	{ErrFeeTooHigh, "FeeTooHigh"},
	{ErrTokenTransferFailed, "TokenTransferFailed"},
	{ErrInsufficientBalance, "InsufficientBalance"},
	{ErrDepositProofReused, "DepositProofReused"},
	{ErrTransferNotFound, "TransferNotFound"},
	{ErrIdentifierCollision, "IdentifierCollision"},
	{ErrNotDeployed, "NotDeployed"},
}

// KindOf returns the stable name of the ledger error wrapped by err,
// or KindInternal when err carries none. A nil error has no kind.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
