package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"jsconfig-gen/internal/policies"
	"jsconfig-gen/internal/types"
)

// orderedSet keeps the first occurrence of every value.
type orderedSet struct {
	seen   map[string]struct{}
	values []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]struct{}{}}
}

func (s *orderedSet) Add(value string) bool {
	if _, ok := s.seen[value]; ok {
		return false
	}
	s.seen[value] = struct{}{}
	s.values = append(s.values, value)
	return true
}

func (s *orderedSet) Has(value string) bool {
	_, ok := s.seen[value]
	return ok
}

func (s *orderedSet) Values() []string {
	return s.values
}

// ExtractNamespacedDependencies walks the tree depth first and returns every
// dependency name matched by the policy, at any depth, in first-seen order.
func ExtractNamespacedDependencies(ctx context.Context, tree types.DependencyTree, policy policies.NamespacePolicy) []types.NamespacedDependency {
	assert.NotEmpty(ctx, policy.Prefix, "namespace prefix must be set")
	found := newOrderedSet()
	collectNamespaced(tree, policy, found)
	log.Ctx(ctx).Debug().
		Str("namespace", policy.Prefix).
		Int("count", len(found.Values())).
		Msg("namespaced dependencies extracted")
	return found.Values()
}

func collectNamespaced(tree types.DependencyTree, policy policies.NamespacePolicy, found *orderedSet) {
	for _, entry := range tree.Dependencies {
		if policy.Matches(entry.Name) {
			found.Add(entry.Name)
		}
		collectNamespaced(entry.Node, policy, found)
	}
}

// ExtractFromOutput parses raw listing output and extracts the namespaced
// dependencies from it.
func ExtractFromOutput(ctx context.Context, raw string, policy policies.NamespacePolicy) ([]types.NamespacedDependency, error) {
	tree, err := ParseDependencyTree(raw)
	if err != nil {
		return nil, err
	}
	return ExtractNamespacedDependencies(ctx, tree, policy), nil
}

// NamespacedSubtree prunes the tree down to the branches that lead to at
// least one namespaced dependency.
func NamespacedSubtree(tree types.DependencyTree, policy policies.NamespacePolicy) types.DependencyTree {
	var pruned types.DependencyTree
	for _, entry := range tree.Dependencies {
		child := NamespacedSubtree(entry.Node, policy)
		if !policy.Matches(entry.Name) && child.IsEmpty() {
			continue
		}
		pruned.Dependencies = append(pruned.Dependencies, types.DependencyEntry{Name: entry.Name, Node: child})
	}
	return pruned
}
