package types

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// idLen is the width of every content-addressed identifier in the pool:
// transaction ids, contract ids and message ids are all 32-byte digests
// produced upstream by the transaction builder.
const idLen = 32

// TxId is the 32-byte content-addressed identifier of a transaction.
type TxId [idLen]byte

func (id TxId) String() string { return hex.EncodeToString(id[:]) }

// Less implements the byte-lexicographic tie-break order used by
// SortedIncludable.
func (id TxId) Less(other TxId) bool { return bytes.Compare(id[:], other[:]) < 0 }

// ContractId identifies a deployed (or in-pool-originated) contract.
type ContractId [idLen]byte

func (id ContractId) String() string { return hex.EncodeToString(id[:]) }

// MessageId identifies an external deposit message, consumed at most once.
type MessageId [idLen]byte

func (id MessageId) String() string { return hex.EncodeToString(id[:]) }

// UtxoId references a single output of a transaction: the producing
// transaction's id and the index of the output within it.
type UtxoId struct {
	TxId        TxId
	OutputIndex uint16
}

func (u UtxoId) String() string { return fmt.Sprintf("%s:%d", u.TxId, u.OutputIndex) }
