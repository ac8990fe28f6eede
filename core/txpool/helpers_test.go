package txpool

import (
	"github.com/holiman/uint256"

	"github.com/fuellabs/fuel-txpool-go/core/types"
)

// fakeChainView is an in-memory ChainView used across the test suite,
// grounded on the bchd-style utxoView idiom of a map keyed by resource id.
type fakeChainView struct {
	coins     map[types.UtxoId]*Coin
	contracts map[types.ContractId]bool
	messages  map[types.MessageId]*Message
}

func newFakeChainView() *fakeChainView {
	return &fakeChainView{
		coins:     make(map[types.UtxoId]*Coin),
		contracts: make(map[types.ContractId]bool),
		messages:  make(map[types.MessageId]*Message),
	}
}

func (v *fakeChainView) Coin(id types.UtxoId) (*Coin, bool) {
	c, ok := v.coins[id]
	return c, ok
}

func (v *fakeChainView) ContractExists(id types.ContractId) bool {
	return v.contracts[id]
}

func (v *fakeChainView) Message(id types.MessageId) (*Message, bool) {
	m, ok := v.messages[id]
	return m, ok
}

func (v *fakeChainView) seedCoin(id types.UtxoId) {
	v.coins[id] = &Coin{Status: CoinUnspent, Amount: uint256.NewInt(1)}
}

func (v *fakeChainView) seedSpentCoin(id types.UtxoId) {
	v.coins[id] = &Coin{Status: CoinSpent, Amount: uint256.NewInt(1)}
}

func (v *fakeChainView) seedContract(id types.ContractId) {
	v.contracts[id] = true
}

func (v *fakeChainView) seedMessage(id types.MessageId) {
	v.messages[id] = &Message{Amount: uint256.NewInt(1)}
}

func (v *fakeChainView) seedSpentMessage(id types.MessageId) {
	spendBlock := [32]byte{0xFF}
	v.messages[id] = &Message{Amount: uint256.NewInt(1), FuelBlockSpend: &spendBlock}
}

// txId builds a deterministic TxId from a single distinguishing byte, so
// tests read as "tx 1", "tx 2", etc.
func txId(b byte) types.TxId {
	var id types.TxId
	id[len(id)-1] = b
	return id
}

func contractId(b byte) types.ContractId {
	var id types.ContractId
	id[len(id)-1] = b
	return id
}

func messageId(b byte) types.MessageId {
	var id types.MessageId
	id[len(id)-1] = b
	return id
}

func utxoId(b byte, index uint16) types.UtxoId {
	return types.UtxoId{TxId: txId(b), OutputIndex: index}
}

// txBuilder assembles a types.Tx for tests without touching the builder
// /crypto layer the pool treats as out of scope: metadata.Id is set
// directly from the id passed to build.
type txBuilder struct {
	id       byte
	kind     types.TxKind
	gasPrice int64
	inputs   []types.Input
	outputs  []types.Output
}

func newTx(id byte, gasPrice int64) *txBuilder {
	return &txBuilder{id: id, kind: types.KindScript, gasPrice: gasPrice}
}

func (b *txBuilder) create() *txBuilder {
	b.kind = types.KindCreate
	return b
}

func (b *txBuilder) mint() *txBuilder {
	b.kind = types.KindMint
	return b
}

func (b *txBuilder) spendCoin(u types.UtxoId) *txBuilder {
	b.inputs = append(b.inputs, types.Input{Kind: types.InputCoinSigned, UtxoId: u})
	return b
}

func (b *txBuilder) useContract(c types.ContractId) *txBuilder {
	b.inputs = append(b.inputs, types.Input{Kind: types.InputContract, ContractId: c})
	return b
}

func (b *txBuilder) consumeMessage(m types.MessageId) *txBuilder {
	b.inputs = append(b.inputs, types.Input{Kind: types.InputMessageSigned, MessageId: m})
	return b
}

func (b *txBuilder) coinOutput() *txBuilder {
	b.outputs = append(b.outputs, types.Output{Kind: types.OutputCoin})
	return b
}

func (b *txBuilder) originates(c types.ContractId) *txBuilder {
	b.outputs = append(b.outputs, types.Output{Kind: types.OutputContractCreated, ContractId: c})
	return b
}

// reassertsContract appends a Contract output, the re-assertion a Script
// consuming a contract input attaches alongside it (mirrors
// Output::contract(...) in the original test suite). It never originates
// or binds anything in the dependency index.
func (b *txBuilder) reassertsContract(c types.ContractId) *txBuilder {
	b.outputs = append(b.outputs, types.Output{Kind: types.OutputContract, ContractId: c})
	return b
}

func (b *txBuilder) build() *types.Tx {
	return &types.Tx{
		Metadata: &types.Metadata{Id: txId(b.id)},
		Kind:     b.kind,
		GasPrice: uint256.NewInt(uint64(b.gasPrice)),
		Inputs:   b.inputs,
		Outputs:  b.outputs,
	}
}

// noMetadataTx returns a transaction with no metadata, for the NoMetadata
// rejection path.
func noMetadataTx() *types.Tx {
	return &types.Tx{Kind: types.KindScript, GasPrice: uint256.NewInt(1)}
}
