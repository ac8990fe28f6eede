// Package txpool implements the core of a transaction pool (mempool) for
// a UTXO-based blockchain node: validation against chain state, the
// in-pool dependency/conflict index, fee-priority displacement and
// eviction, and a priority-ordered read path for block production.
package txpool

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/fuellabs/fuel-txpool-go/core/types"
	"github.com/fuellabs/fuel-txpool-go/log"
)

// InsertOutcome is the result of a successful Insert: the id that was
// admitted and every entry it displaced, ordered parents-first.
type InsertOutcome struct {
	Inserted types.TxId
	Removed  []*PoolEntry
}

// Pool is the transaction pool: a single shared, mutable dependency DAG
// guarded by one reader-writer lock at the boundary. Insert acquires the
// write side for its entire duration, including any chain-state reads it
// performs through ChainView; FindOne, FindDependent and
// SortedIncludable acquire the read side.
type Pool struct {
	mu sync.RWMutex

	config    Config
	validator Validator
	idx       *depIndex
}

// New constructs an empty Pool with the given configuration.
func New(config Config) *Pool {
	return &Pool{
		config: config.sanitize(),
		idx:    newDepIndex(),
	}
}

// Insert validates tx against chain and the current pool state, resolves
// any collisions under the fee-priority displacement policy, evicts the
// displaced sub-DAG, and splices tx into the dependency DAG. On any
// rejection the pool is left byte-identical to its pre-call state.
func (p *Pool) Insert(tx *types.Tx, chain ChainView) (*InsertOutcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	req, err := p.validator.Validate(tx, p.config.MinGasPrice, p.idx, chain)
	if err != nil {
		log.Trace("Rejected transaction", "err", err)
		return nil, err
	}

	coll := p.idx.collectCollisions(req)

	victims := make(map[types.TxId]*PoolEntry)

	// Coin and contract-origination collisions: strict price beats,
	// with the contract-input-against-originator sub-case compared
	// separately against the originator's price.
	for utxoId, incumbentId := range coll.coins {
		incumbent, _ := p.idx.get(incumbentId)
		if tx.GasPrice.Cmp(incumbent.Tx.GasPrice) <= 0 {
			return nil, &CollisionError{IncumbentTxId: incumbentId, UtxoId: utxoId}
		}
		p.idx.findDependent(incumbentId, victims)
	}
	for contractId, incumbentId := range coll.contracts {
		incumbent, _ := p.idx.get(incumbentId)
		if tx.GasPrice.Cmp(incumbent.Tx.GasPrice) <= 0 {
			return nil, &CollisionContractIdError{ContractId: contractId}
		}
		p.idx.findDependent(incumbentId, victims)
	}

	// Contract-input-against-originator pricing: a Script consuming an
	// in-pool-originated contract must not exceed the originator's price
	// (equal is fine), even though this isn't a contract-origination
	// collision (the newcomer isn't declaring a ContractCreated output of
	// its own).
	if tx.Kind == types.KindScript {
		for _, in := range tx.Inputs {
			if !in.IsContract() {
				continue
			}
			originatorId, ok := p.idx.contracts[in.ContractId]
			if !ok {
				continue
			}
			originator, _ := p.idx.get(originatorId)
			if tx.GasPrice.Cmp(originator.Tx.GasPrice) > 0 {
				return nil, &ContractPricedLowerError{ContractId: in.ContractId}
			}
		}
	}

	// Message collisions: same strict-beats policy, incumbent scheduled
	// for eviction on success.
	for messageId, incumbentId := range coll.messages {
		incumbent, _ := p.idx.get(incumbentId)
		if tx.GasPrice.Cmp(incumbent.Tx.GasPrice) <= 0 {
			return nil, &CollisionMessageIdError{IncumbentTxId: incumbentId, MessageId: messageId}
		}
		p.idx.findDependent(incumbentId, victims)
	}

	// Re-verify the newcomer strictly outprices every transitive victim,
	// not just the direct collision incumbents: a direct incumbent's own
	// dependents may (in principle, were the invariant ever violated
	// upstream) carry a higher price than their parent.
	for _, victim := range victims {
		if tx.GasPrice.Cmp(victim.Tx.GasPrice) <= 0 {
			return nil, victimPriceError(victim, coll)
		}
	}

	depth := 1
	for _, parentId := range req.Parents.ToSlice() {
		if parent, ok := p.idx.get(parentId); ok && parent.Depth+1 > depth {
			depth = parent.Depth + 1
		}
	}
	if depth > p.config.MaxDepth {
		return nil, ErrMaxDepth
	}
	if p.idx.len()-len(victims)+1 > p.config.MaxTxs {
		return nil, ErrLimitHit
	}

	removed := p.orderVictimsParentsFirst(victims)
	for i := len(removed) - 1; i >= 0; i-- {
		p.idx.removeEntry(removed[i].Id())
	}

	entry := newPoolEntry(tx)
	p.idx.insertEntry(entry, req.Parents)

	if len(removed) > 0 {
		log.Debug("Evicted transactions on insert", "inserted", tx.Id(), "evicted", len(removed))
	}
	log.Debug("Inserted transaction", "id", tx.Id(), "gas_price", tx.GasPrice, "depth", entry.Depth)

	return &InsertOutcome{Inserted: tx.Id(), Removed: removed}, nil
}

// victimPriceError reports the most specific error available for a victim
// that out-prices the newcomer: if the victim itself was a direct
// collision incumbent, report that collision; otherwise fall back to a
// generic coin collision naming the victim.
func victimPriceError(victim *PoolEntry, coll *collisions) error {
	for utxoId, id := range coll.coins {
		if id == victim.Id() {
			return &CollisionError{IncumbentTxId: id, UtxoId: utxoId}
		}
	}
	for messageId, id := range coll.messages {
		if id == victim.Id() {
			return &CollisionMessageIdError{IncumbentTxId: id, MessageId: messageId}
		}
	}
	for contractId, id := range coll.contracts {
		if id == victim.Id() {
			return &CollisionContractIdError{ContractId: contractId}
		}
	}
	return &CollisionError{IncumbentTxId: victim.Id()}
}

// orderVictimsParentsFirst returns the victim set as a slice ordered so
// that a parent always precedes its dependents, matching the order
// InsertOutcome.Removed must report.
func (p *Pool) orderVictimsParentsFirst(victims map[types.TxId]*PoolEntry) []*PoolEntry {
	ordered := make([]*PoolEntry, 0, len(victims))
	placed := mapset.NewThreadUnsafeSet[types.TxId]()

	for len(ordered) < len(victims) {
		progressed := false
		for id, entry := range victims {
			if placed.Contains(id) {
				continue
			}
			ready := true
			for _, parentId := range entry.Parents.ToSlice() {
				if _, inSet := victims[parentId]; inSet && !placed.Contains(parentId) {
					ready = false
					break
				}
			}
			if ready {
				ordered = append(ordered, entry)
				placed.Add(id)
				progressed = true
			}
		}
		if !progressed {
			// Unreachable under the acyclicity invariant (spec
			// invariant 8); guards against an infinite loop if it is
			// ever violated upstream.
			for id, entry := range victims {
				if !placed.Contains(id) {
					ordered = append(ordered, entry)
					placed.Add(id)
				}
			}
			break
		}
	}
	return ordered
}

// FindOne returns the pool entry for txID, or false if it isn't present.
func (p *Pool) FindOne(txID types.TxId) (*PoolEntry, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.idx.get(txID)
}

// FindDependent returns the transitive closure of txID's dependents,
// including txID itself if present.
func (p *Pool) FindDependent(txID types.TxId) []*PoolEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()

	acc := make(map[types.TxId]*PoolEntry)
	p.idx.findDependent(txID, acc)

	out := make([]*PoolEntry, 0, len(acc))
	for _, e := range acc {
		out = append(out, e)
	}
	return out
}
