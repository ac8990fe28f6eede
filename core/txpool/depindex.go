package txpool

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/fuellabs/fuel-txpool-go/core/types"
)

// depIndex is the in-pool dependency DAG: the single owning table of
// entries (byId) plus four resource-to-owner maps kept in lockstep with
// it. All graph traversal goes through byId; parents/dependents only ever
// store ids (never pointers), so the structure can't form ownership
// cycles even though the logical DAG is bidirectional.
//
// Every exported method assumes the caller already holds the pool's write
// lock (for mutators) or read lock (for lookups); depIndex has no locking
// of its own.
type depIndex struct {
	byId map[types.TxId]*PoolEntry

	coins        map[types.UtxoId]types.TxId     // utxo -> consuming tx
	contracts    map[types.ContractId]types.TxId // contract -> originating tx
	messages     map[types.MessageId]types.TxId  // message -> consuming tx
	outputsIndex map[types.UtxoId]types.TxId     // utxo -> producing tx
}

func newDepIndex() *depIndex {
	return &depIndex{
		byId:         make(map[types.TxId]*PoolEntry),
		coins:        make(map[types.UtxoId]types.TxId),
		contracts:    make(map[types.ContractId]types.TxId),
		messages:     make(map[types.MessageId]types.TxId),
		outputsIndex: make(map[types.UtxoId]types.TxId),
	}
}

func (d *depIndex) len() int { return len(d.byId) }

func (d *depIndex) get(id types.TxId) (*PoolEntry, bool) {
	e, ok := d.byId[id]
	return e, ok
}

// collisions bundles every resource a newcomer would collide on, keyed by
// the resource id so the coordinator can report exactly which one lost.
type collisions struct {
	coins     map[types.UtxoId]types.TxId
	contracts map[types.ContractId]types.TxId
	messages  map[types.MessageId]types.TxId
}

// collectCollisions scans an InsertRequest's declared resources against
// the live indexes and returns every pre-existing owner found. It performs
// no mutation and no pricing decision; that's the coordinator's job.
func (d *depIndex) collectCollisions(req *InsertRequest) *collisions {
	c := &collisions{
		coins:     make(map[types.UtxoId]types.TxId),
		contracts: make(map[types.ContractId]types.TxId),
		messages:  make(map[types.MessageId]types.TxId),
	}
	for utxoId := range req.CoinInputs {
		if incumbent, ok := d.coins[utxoId]; ok {
			c.coins[utxoId] = incumbent
		}
	}
	for contractId := range req.NewContracts {
		if incumbent, ok := d.contracts[contractId]; ok {
			c.contracts[contractId] = incumbent
		}
	}
	for messageId := range req.MessageInputs {
		if incumbent, ok := d.messages[messageId]; ok {
			c.messages[messageId] = incumbent
		}
	}
	return c
}

// findDependent performs an unordered traversal from root over the
// Dependents relation, accumulating every reachable entry including root
// itself into acc. Calling it again with ids already present in acc is a
// no-op for those ids, making repeated calls over a growing victim set
// idempotent.
func (d *depIndex) findDependent(root types.TxId, acc map[types.TxId]*PoolEntry) {
	if _, seen := acc[root]; seen {
		return
	}
	entry, ok := d.byId[root]
	if !ok {
		return
	}
	acc[root] = entry
	for _, child := range entry.Dependents.ToSlice() {
		d.findDependent(child, acc)
	}
}

// insertEntry splices a freshly constructed entry into the index, binding
// every resource it consumes or produces and linking it to its in-pool
// parents. The caller must have already verified every binding below is
// currently free (the coordinator does this via collectCollisions before
// ever reaching insertEntry).
func (d *depIndex) insertEntry(entry *PoolEntry, parents mapset.Set[types.TxId]) {
	id := entry.Id()
	d.byId[id] = entry

	for _, in := range entry.Tx.Inputs {
		switch {
		case in.IsCoin():
			d.coins[in.UtxoId] = id
		case in.IsMessage():
			d.messages[in.MessageId] = id
		}
	}
	for idx, out := range entry.Tx.Outputs {
		if out.IsCoinShaped() {
			d.outputsIndex[entry.Tx.OutputUtxoId(idx)] = id
		}
		if out.Kind == types.OutputContractCreated {
			d.contracts[out.ContractId] = id
		}
	}

	maxParentDepth := 0
	for _, p := range parents.ToSlice() {
		parent := d.byId[p]
		parent.Dependents.Add(id)
		entry.Parents.Add(p)
		if parent.Depth > maxParentDepth {
			maxParentDepth = parent.Depth
		}
	}
	entry.Depth = 1 + maxParentDepth
}

// removeEntry unsplices an entry from the index: every binding it owns is
// freed and it is unlinked from its parents' Dependents sets. It does not
// recurse into the removed entry's own Dependents — the coordinator is
// responsible for cascading removeEntry across a whole victim set, in
// dependents-first order.
func (d *depIndex) removeEntry(id types.TxId) *PoolEntry {
	entry, ok := d.byId[id]
	if !ok {
		return nil
	}
	delete(d.byId, id)

	for _, in := range entry.Tx.Inputs {
		switch {
		case in.IsCoin():
			if d.coins[in.UtxoId] == id {
				delete(d.coins, in.UtxoId)
			}
		case in.IsMessage():
			if d.messages[in.MessageId] == id {
				delete(d.messages, in.MessageId)
			}
		}
	}
	for idx, out := range entry.Tx.Outputs {
		if out.IsCoinShaped() {
			utxoId := entry.Tx.OutputUtxoId(idx)
			if d.outputsIndex[utxoId] == id {
				delete(d.outputsIndex, utxoId)
			}
		}
		if out.Kind == types.OutputContractCreated {
			if d.contracts[out.ContractId] == id {
				delete(d.contracts, out.ContractId)
			}
		}
	}

	for _, p := range entry.Parents.ToSlice() {
		if parent, ok := d.byId[p]; ok {
			parent.Dependents.Remove(id)
		}
	}

	return entry
}
