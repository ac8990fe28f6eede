package txpool

import (
	"errors"
	"fmt"

	"github.com/fuellabs/fuel-txpool-go/core/types"
)

// Sentinel errors for the context-free rejection variants. Callers compare
// against these with errors.Is, never by string.
var (
	// ErrNoMetadata is returned when a transaction lacks its precomputed
	// id/summary.
	ErrNoMetadata = errors.New("txpool: transaction has no metadata")

	// ErrNotSupportedTransactionType is returned for Mint transactions,
	// which the pool never admits.
	ErrNotSupportedTransactionType = errors.New("txpool: transaction type not supported")

	// ErrGasPriceTooLow is returned when gas_price < config.MinGasPrice.
	ErrGasPriceTooLow = errors.New("txpool: gas price too low")

	// ErrTxKnown is returned when the transaction id is already present.
	ErrTxKnown = errors.New("txpool: transaction already known")

	// ErrLimitHit is returned when admitting the transaction would push
	// the pool over its tx-count cap, after accounting for evicted
	// victims.
	ErrLimitHit = errors.New("txpool: transaction pool limit hit")

	// ErrMaxDepth is returned when the transaction's dependency depth
	// would exceed the configured cap.
	ErrMaxDepth = errors.New("txpool: max dependency depth exceeded")
)

// InputUtxoIdNotExistingError is returned when a coin input's UtxoId is
// unknown both in-pool and on-chain, or when an in-pool reference resolves
// to a non-coin-shaped output.
type InputUtxoIdNotExistingError struct{ UtxoId types.UtxoId }

func (e *InputUtxoIdNotExistingError) Error() string {
	return fmt.Sprintf("txpool: input utxo %s does not exist", e.UtxoId)
}

// InputUtxoIdSpentError is returned when a coin input references a
// chain-confirmed coin already marked spent.
type InputUtxoIdSpentError struct{ UtxoId types.UtxoId }

func (e *InputUtxoIdSpentError) Error() string {
	return fmt.Sprintf("txpool: input utxo %s already spent", e.UtxoId)
}

// InputContractNotExistingError is returned when a contract input is
// neither originated in-pool nor deployed on-chain.
type InputContractNotExistingError struct{ ContractId types.ContractId }

func (e *InputContractNotExistingError) Error() string {
	return fmt.Sprintf("txpool: input contract %s does not exist", e.ContractId)
}

// InputMessageUnknownError is returned when a message input references an
// unknown MessageId.
type InputMessageUnknownError struct{ MessageId types.MessageId }

func (e *InputMessageUnknownError) Error() string {
	return fmt.Sprintf("txpool: input message %s unknown", e.MessageId)
}

// InputMessageIdSpentError is returned when a message input references a
// message already marked spent on-chain.
type InputMessageIdSpentError struct{ MessageId types.MessageId }

func (e *InputMessageIdSpentError) Error() string {
	return fmt.Sprintf("txpool: input message %s already spent", e.MessageId)
}

// CollisionError is returned when a newcomer loses a coin-input collision
// against an in-pool incumbent: its gas price does not strictly exceed the
// incumbent's.
type CollisionError struct {
	IncumbentTxId types.TxId
	UtxoId        types.UtxoId
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("txpool: collision on utxo %s with incumbent %s", e.UtxoId, e.IncumbentTxId)
}

// CollisionContractIdError is returned when two transactions originate the
// same contract id and the newcomer is not strictly higher priced.
type CollisionContractIdError struct{ ContractId types.ContractId }

func (e *CollisionContractIdError) Error() string {
	return fmt.Sprintf("txpool: collision on contract origination %s", e.ContractId)
}

// CollisionMessageIdError is returned when a newcomer loses a message
// -input collision against an in-pool incumbent.
type CollisionMessageIdError struct {
	IncumbentTxId types.TxId
	MessageId     types.MessageId
}

func (e *CollisionMessageIdError) Error() string {
	return fmt.Sprintf("txpool: collision on message %s with incumbent %s", e.MessageId, e.IncumbentTxId)
}

// ContractPricedLowerError is returned when a Script transaction consumes
// an in-pool-originated contract at a gas price exceeding the originator's
// (the originator's price is the ceiling; matching it is fine).
type ContractPricedLowerError struct{ ContractId types.ContractId }

func (e *ContractPricedLowerError) Error() string {
	return fmt.Sprintf("txpool: contract %s priced lower than originator", e.ContractId)
}
