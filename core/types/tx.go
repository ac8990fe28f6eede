package types

import "github.com/holiman/uint256"

// TxKind is the top-level shape of a transaction.
type TxKind uint8

const (
	KindScript TxKind = iota
	KindCreate
	KindMint
)

func (k TxKind) String() string {
	switch k {
	case KindScript:
		return "Script"
	case KindCreate:
		return "Create"
	case KindMint:
		return "Mint"
	default:
		return "Unknown"
	}
}

// InputKind discriminates the shape of a single transaction input.
type InputKind uint8

const (
	InputCoinSigned InputKind = iota
	InputCoinPredicate
	InputContract
	InputMessagePredicate
	InputMessageSigned
)

// Input is one entry of a transaction's ordered input list. Exactly one of
// UtxoId, ContractId, MessageId is meaningful, selected by Kind.
type Input struct {
	Kind       InputKind
	UtxoId     UtxoId
	ContractId ContractId
	MessageId  MessageId
}

func (in Input) IsCoin() bool {
	return in.Kind == InputCoinSigned || in.Kind == InputCoinPredicate
}

func (in Input) IsContract() bool { return in.Kind == InputContract }

func (in Input) IsMessage() bool {
	return in.Kind == InputMessagePredicate || in.Kind == InputMessageSigned
}

// OutputKind discriminates the shape of a single transaction output.
type OutputKind uint8

const (
	OutputCoin OutputKind = iota
	OutputChange
	OutputVariable
	OutputContractCreated
	OutputContract
)

// Output is one entry of a transaction's ordered output list. A Coin,
// Change or Variable output produces a new coin-shaped UtxoId (computed
// from the owning tx's id and the output's index, see Tx.OutputUtxoId).
// A ContractCreated output declares a new ContractId. A Contract output
// re-asserts an existing contract without originating it.
type Output struct {
	Kind       OutputKind
	ContractId ContractId // meaningful for OutputContractCreated and OutputContract
}

func (o Output) IsCoinShaped() bool {
	return o.Kind == OutputCoin || o.Kind == OutputChange || o.Kind == OutputVariable
}

// Metadata is the precomputed summary the builder attaches to a
// transaction before it reaches the pool; it carries the content-addressed
// id and nothing else. Its absence is a hard rejection
// (NoMetadata) since the pool never recomputes it.
type Metadata struct {
	Id TxId
}

// Tx is an immutable, content-addressed transaction as presented to the
// pool. Mutating any field after construction violates the content
// -addressing invariant the pool relies on (spec invariant 8) and is the
// caller's responsibility to avoid.
type Tx struct {
	Metadata *Metadata
	Kind     TxKind
	GasPrice *uint256.Int
	Inputs   []Input
	Outputs  []Output
}

// Id returns the transaction's content-addressed id. Callers must check
// Metadata != nil first; the pool does this during validation.
func (tx *Tx) Id() TxId { return tx.Metadata.Id }

// OutputUtxoId computes the UtxoId produced by the output at the given
// index, valid only when that output IsCoinShaped.
func (tx *Tx) OutputUtxoId(index int) UtxoId {
	return UtxoId{TxId: tx.Id(), OutputIndex: uint16(index)}
}
