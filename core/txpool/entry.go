package txpool

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/holiman/uint256"

	"github.com/fuellabs/fuel-txpool-go/core/types"
)

// PoolEntry augments a pooled Tx with the bookkeeping the dependency index
// and insertion coordinator need: its ordering price, its depth in the
// in-pool dependency DAG, and the ids of its direct parents/dependents.
type PoolEntry struct {
	Tx *types.Tx

	// EffectivePrice is the value used for ordering; equal to Tx.GasPrice
	// unless a different monotone priority function is substituted
	// (spec §9).
	EffectivePrice *uint256.Int

	// Depth is 1 + the max depth of every in-pool producer of one of this
	// entry's inputs. A root entry (no in-pool parents) has depth 1.
	Depth int

	// Parents is the set of in-pool entries that produce a resource this
	// entry consumes.
	Parents mapset.Set[types.TxId]

	// Dependents is the set of in-pool entries that consume a resource
	// this entry produces. The inverse of Parents.
	Dependents mapset.Set[types.TxId]
}

func (e *PoolEntry) Id() types.TxId { return e.Tx.Id() }

func newPoolEntry(tx *types.Tx) *PoolEntry {
	return &PoolEntry{
		Tx:             tx,
		EffectivePrice: tx.GasPrice,
		Parents:        mapset.NewThreadUnsafeSet[types.TxId](),
		Dependents:     mapset.NewThreadUnsafeSet[types.TxId](),
	}
}
