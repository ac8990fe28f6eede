package txpool

import (
	"github.com/holiman/uint256"

	"github.com/fuellabs/fuel-txpool-go/core/types"
)

// Coin is a read-only snapshot of a chain-confirmed coin, as returned by
// ChainView.Coin.
type Coin struct {
	Status  CoinStatus
	Amount  *uint256.Int
	AssetId [32]byte
	Owner   [32]byte
}

// CoinStatus is the on-chain spend state of a coin.
type CoinStatus uint8

const (
	CoinUnspent CoinStatus = iota
	CoinSpent
)

// Message is a read-only snapshot of a chain-confirmed bridge message, as
// returned by ChainView.Message.
type Message struct {
	Amount         *uint256.Int
	Sender         [32]byte
	Recipient      [32]byte
	Nonce          uint64
	Data           []byte
	FuelBlockSpend *[32]byte // non-nil once the message has been spent in a block
}

// ChainView is the read-only external collaborator the validator consults
// for resources not produced in-pool: confirmed coins, deployed contracts
// and bridge messages. Implementations must not block indefinitely; the
// pool holds its write lock for the full duration of any call made through
// a ChainView during Insert (spec §5).
type ChainView interface {
	// Coin looks up a chain-confirmed coin by its UtxoId. The second
	// return value is false when the coin is unknown to the chain.
	Coin(id types.UtxoId) (*Coin, bool)

	// ContractExists reports whether a contract id is deployed on-chain.
	ContractExists(id types.ContractId) bool

	// Message looks up a bridge message by its MessageId. The second
	// return value is false when the message is unknown to the chain.
	Message(id types.MessageId) (*Message, bool)
}
