package types

// DependencyTree is one node of the resolved dependency graph printed by
// the package manager. Dependencies keep the key order of the listing.
type DependencyTree struct {
	Dependencies []DependencyEntry
}

type DependencyEntry struct {
	Name string
	Node DependencyTree
}

// NamespacedDependency is a package name carrying the organizational scope.
type NamespacedDependency = string

func (t DependencyTree) IsEmpty() bool {
	return len(t.Dependencies) == 0
}
