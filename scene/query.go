package scene

import (
	"sort"

	"weft/core"
)

// QueryableStore extends AnyStore with the operations the query builder
// needs to intersect component sets efficiently
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}

// QueryBuilder provides a fluent interface for finding entities that carry
// all of a set of components. The intersection starts from the smallest
// store to minimize membership checks.
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder.
// Use With() to add component filters, then Execute() to get the results.
//
// Example:
//
//	entities := graph.Query().
//	    With(graph.Fills).
//	    With(graph.Rects).
//	    Execute()
func (g *Graph) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter.
// Panics if called after Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute runs the query and returns all entities present in every store.
// Repeated calls return the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	if len(qb.stores) == 1 {
		qb.results = qb.stores[0].All()
		return qb.results
	}

	// Smallest store first minimizes the number of Has() checks
	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Len() < qb.stores[j].Len()
	})

	candidates := qb.stores[0].All()

	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0] // Reuse underlying array
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered

		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
