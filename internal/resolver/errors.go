package resolver

import (
	"sort"
	"strings"

	"github.com/arrowgen/arrowgen/internal/model"
)

// MissingDependenciesError reports dependency ids referenced by some
// provider's parameters but not produced by any provider in the set.
type MissingDependenciesError struct {
	Missing []model.ID
}

func (e *MissingDependenciesError) Error() string {
	return "Missing dependencies: " + joinIDs(e.Missing)
}

// DuplicateDependenciesError reports dependency ids produced by more
// than one provider.
type DuplicateDependenciesError struct {
	Duplicates []model.ID
}

func (e *DuplicateDependenciesError) Error() string {
	return "Duplicate dependencies found: " + joinIDs(e.Duplicates)
}

// CircularDependencyError reports a provider id the topological sort
// found already on its own visiting stack, together with its outgoing
// edges at the point of discovery.
type CircularDependencyError struct {
	Node  model.ID
	Edges []model.ID
}

func (e *CircularDependencyError) Error() string {
	return "Circular dependency detected at '" + string(e.Node) +
		"' with one of its dependencies: " + joinIDsArrow(e.Edges)
}

func joinIDs(ids []model.ID) string {
	ss := make([]string, len(ids))
	for i, id := range ids {
		ss[i] = string(id)
	}
	return strings.Join(ss, ", ")
}

func joinIDsArrow(ids []model.ID) string {
	ss := make([]string, len(ids))
	for i, id := range ids {
		ss[i] = string(id)
	}
	return strings.Join(ss, " -> ")
}

// sortedIDs returns a sorted copy, used wherever reporting needs a
// deterministic iteration order.
func sortedIDs(ids []model.ID) []model.ID {
	out := make([]model.ID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
