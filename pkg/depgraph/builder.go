//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=builder.go -destination=mock_builder.gen.go -package=depgraph
package depgraph

import (
	"fmt"

	"github.com/solentra/depfresh/pkg/manifest"
)

// GraphBuilder defines the interface for building dependency graphs.
type GraphBuilder interface {
	// BuildGraph builds the workspace dependency graph from manifests. Only
	// dependencies on other workspace packages under the given scope become
	// edges; everything else is ignored.
	BuildGraph(manifests []*manifest.Manifest, scope string) (map[string]*Package, error)
}

type graphBuilder struct{}

// NewGraphBuilder creates a new GraphBuilder.
func NewGraphBuilder() GraphBuilder {
	return &graphBuilder{}
}

// BuildGraph implements the GraphBuilder interface.
func (g *graphBuilder) BuildGraph(manifests []*manifest.Manifest, scope string) (map[string]*Package, error) {
	// First pass: create all Package nodes (no dependencies yet)
	packages := make(map[string]*Package, len(manifests))
	for _, m := range manifests {
		if m == nil {
			continue
		}
		if _, exists := packages[m.Name]; exists {
			return nil, fmt.Errorf("duplicate package %s in workspace", m.Name)
		}
		packages[m.Name] = &Package{
			Name:         m.Name,
			Version:      m.Version,
			Private:      m.Private,
			Dependencies: make(map[string]Dependency),
		}
	}

	// Second pass: wire edges between workspace packages
	for _, m := range manifests {
		if m == nil {
			continue
		}
		for depName, declared := range m.Dependencies {
			if !manifest.HasScope(scope, depName) {
				continue
			}
			depPkg, ok := packages[depName]
			if !ok {
				// Scoped but not part of the workspace: treat as external.
				continue
			}
			packages[m.Name].Dependencies[depName] = Dependency{
				Package:  depPkg,
				Declared: declared,
			}
		}
	}
	return packages, nil
}
