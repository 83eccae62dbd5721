// Package resolver builds the provider dependency graph, validates it
// (missing dependencies, then duplicates, then cycles), and produces a
// deterministic topological registration order.
package resolver

import (
	"sort"

	"github.com/arrowgen/arrowgen/internal/model"
)

// Graph is the ephemeral dependency graph built from the union of every
// module's providers. It exists only during resolution; nothing here
// survives past a successful Resolve.
type Graph struct {
	providers []model.Provider
	byID      map[model.ID]model.Provider
	edges     map[model.ID][]model.ID
}

// Build constructs the graph from the full set of providers gathered
// across every module and runs the missing-then-duplicate validation.
// It does not perform the topological sort — call Resolve for that,
// which additionally detects cycles.
func Build(providers []model.Provider) (*Graph, error) {
	g := &Graph{
		providers: providers,
		byID:      make(map[model.ID]model.Provider, len(providers)),
		edges:     make(map[model.ID][]model.ID, len(providers)),
	}

	for _, p := range providers {
		id := p.ID()
		g.byID[id] = p // last writer wins; full list still used for duplicate detection
		g.edges[id] = p.DependencyEdges()
	}

	if err := g.validateMissing(); err != nil {
		return nil, err
	}
	if err := g.validateDuplicates(); err != nil {
		return nil, err
	}

	return g, nil
}

// validateMissing reports any edge referencing an id not produced by any
// provider in the set. This check runs before duplicate detection: a
// shape error takes priority over a uniqueness error.
func (g *Graph) validateMissing() error {
	referenced := make(map[model.ID]bool)
	for _, edges := range g.edges {
		for _, e := range edges {
			referenced[e] = true
		}
	}

	var missing []model.ID
	for ref := range referenced {
		if _, ok := g.byID[ref]; !ok {
			missing = append(missing, ref)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingDependenciesError{Missing: sortedIDs(missing)}
}

// validateDuplicates scans the provider list in declaration order and
// reports any id that appears more than once.
func (g *Graph) validateDuplicates() error {
	seen := make(map[model.ID]int, len(g.providers))
	var duplicates []model.ID
	for _, p := range g.providers {
		id := p.ID()
		seen[id]++
		if seen[id] == 2 {
			duplicates = append(duplicates, id)
		}
	}
	if len(duplicates) == 0 {
		return nil
	}
	return &DuplicateDependenciesError{Duplicates: duplicates}
}

// Resolve performs a deterministic, depth-first, post-order topological
// sort over every provider id, failing with a CircularDependencyError
// the first time the DFS finds a node already on its own visiting stack.
func (g *Graph) Resolve() ([]model.ID, error) {
	keys := make([]model.ID, 0, len(g.byID))
	for id := range g.byID {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	visited := make(map[model.ID]bool, len(keys))
	onStack := make(map[model.ID]bool, len(keys))
	var order []model.ID

	var visit func(id model.ID) error
	visit = func(id model.ID) error {
		if onStack[id] {
			return &CircularDependencyError{Node: id, Edges: g.edges[id]}
		}
		if visited[id] {
			return nil
		}

		onStack[id] = true
		for _, dep := range g.edges[id] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		delete(onStack, id)
		visited[id] = true
		order = append(order, id)
		return nil
	}

	for _, id := range keys {
		if err := visit(id); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Provider returns the provider registered for id and whether one
// exists.
func (g *Graph) Provider(id model.ID) (model.Provider, bool) {
	p, ok := g.byID[id]
	return p, ok
}

// Providers returns the full provider list in declaration order, for
// callers that need to report diagnostics by original input position.
func (g *Graph) Providers() []model.Provider {
	return g.providers
}
