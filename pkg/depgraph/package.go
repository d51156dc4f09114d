// Package depgraph builds and inspects the dependency graph of the
// workspace packages.
package depgraph

import "sort"

// Package represents a workspace package in the dependency graph.
type Package struct {
	// Name is the fully scoped package identifier.
	Name string
	// Version is the version declared by the workspace manifest.
	Version string
	// Private marks packages that are never published.
	Private bool
	// Dependencies maps scoped dependency identifiers to graph edges.
	Dependencies map[string]Dependency
	// LatestVersion is the latest published version, empty when the package
	// has never been published.
	LatestVersion string
}

// Dependency is an edge of the dependency graph.
type Dependency struct {
	// Package is the workspace package the edge points to.
	Package *Package
	// Declared is the version string the manifest pins.
	Declared string
}

// Mismatch describes a dependency pinned to something other than the latest
// published version.
type Mismatch struct {
	Declared string
	Latest   string
}

// SortedNames returns the package names of the graph in lexical order.
func SortedNames(graph map[string]*Package) []string {
	names := make([]string, 0, len(graph))
	for name := range graph {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
