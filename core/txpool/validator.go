package txpool

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/holiman/uint256"

	"github.com/fuellabs/fuel-txpool-go/core/types"
)

// InsertRequest is the normalized result of validating a candidate
// transaction: its in-pool parents, the external resources it would bind
// (for collision lookup), and the contract ids it would newly originate.
type InsertRequest struct {
	Tx *types.Tx

	Parents mapset.Set[types.TxId]

	// CoinInputs maps every coin UtxoId the tx consumes to the in-pool
	// parent producing it, when that parent is in-pool; external coins
	// (resolved against chain state) are present with a zero TxId.
	CoinInputs map[types.UtxoId]types.TxId

	// MessageInputs is the set of message ids the tx consumes.
	MessageInputs map[types.MessageId]struct{}

	// NewContracts is the set of contract ids this tx's outputs would
	// originate (ContractCreated outputs).
	NewContracts map[types.ContractId]struct{}
}

// Validator runs the stateless and chain-state checks from spec §4.1 over
// a single candidate transaction, producing a normalized InsertRequest
// the coordinator can run collision/eviction policy against.
type Validator struct{}

// Validate checks tx against the in-pool index and chain state, in the
// order spec §4.1 mandates (first failure wins), and returns a populated
// InsertRequest on success.
func (v *Validator) Validate(tx *types.Tx, minGasPrice *uint256.Int, idx *depIndex, chain ChainView) (*InsertRequest, error) {
	if tx.Metadata == nil {
		return nil, ErrNoMetadata
	}
	if tx.Kind == types.KindMint {
		return nil, ErrNotSupportedTransactionType
	}
	if tx.GasPrice == nil || tx.GasPrice.Cmp(minGasPrice) < 0 {
		return nil, ErrGasPriceTooLow
	}
	if _, known := idx.get(tx.Id()); known {
		return nil, ErrTxKnown
	}

	req := &InsertRequest{
		Tx:            tx,
		Parents:       mapset.NewThreadUnsafeSet[types.TxId](),
		CoinInputs:    make(map[types.UtxoId]types.TxId),
		MessageInputs: make(map[types.MessageId]struct{}),
		NewContracts:  make(map[types.ContractId]struct{}),
	}

	seenUtxo := make(map[types.UtxoId]struct{})
	for _, in := range tx.Inputs {
		switch {
		case in.IsCoin():
			if _, dup := seenUtxo[in.UtxoId]; dup {
				return nil, &InputUtxoIdNotExistingError{UtxoId: in.UtxoId}
			}
			seenUtxo[in.UtxoId] = struct{}{}

			if producer, ok := idx.outputsIndex[in.UtxoId]; ok {
				producerEntry, _ := idx.get(producer)
				if !producingOutputIsCoinShaped(producerEntry, in.UtxoId) {
					return nil, &InputUtxoIdNotExistingError{UtxoId: in.UtxoId}
				}
				req.Parents.Add(producer)
				req.CoinInputs[in.UtxoId] = producer
				continue
			}

			coin, ok := chain.Coin(in.UtxoId)
			if !ok {
				return nil, &InputUtxoIdNotExistingError{UtxoId: in.UtxoId}
			}
			if coin.Status == CoinSpent {
				return nil, &InputUtxoIdSpentError{UtxoId: in.UtxoId}
			}
			req.CoinInputs[in.UtxoId] = types.TxId{}

		case in.IsContract():
			if originator, ok := idx.contracts[in.ContractId]; ok {
				req.Parents.Add(originator)
				continue
			}
			if !chain.ContractExists(in.ContractId) {
				return nil, &InputContractNotExistingError{ContractId: in.ContractId}
			}

		case in.IsMessage():
			msg, ok := chain.Message(in.MessageId)
			if !ok {
				return nil, &InputMessageUnknownError{MessageId: in.MessageId}
			}
			if msg.FuelBlockSpend != nil {
				return nil, &InputMessageIdSpentError{MessageId: in.MessageId}
			}
			req.MessageInputs[in.MessageId] = struct{}{}
		}
	}

	for _, out := range tx.Outputs {
		if out.Kind != types.OutputContractCreated {
			continue
		}
		if _, dup := req.NewContracts[out.ContractId]; dup {
			return nil, &CollisionContractIdError{ContractId: out.ContractId}
		}
		req.NewContracts[out.ContractId] = struct{}{}
	}

	return req, nil
}

// producingOutputIsCoinShaped reports whether the output referenced by
// utxoId within producer's output list is coin-shaped (Coin, Change or
// Variable), as opposed to a Contract re-assertion output.
func producingOutputIsCoinShaped(producer *PoolEntry, utxoId types.UtxoId) bool {
	idx := int(utxoId.OutputIndex)
	if producer == nil || idx < 0 || idx >= len(producer.Tx.Outputs) {
		return false
	}
	return producer.Tx.Outputs[idx].IsCoinShaped()
}
