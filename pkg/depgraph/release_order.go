package depgraph

import (
	"fmt"
	"sort"
	"strings"
)

// ReleaseOrder returns the package names in an order safe for publishing:
// every package appears after the workspace packages it depends on. Ties
// break lexically so the order is deterministic. A dependency cycle yields
// an error naming the packages that could not be ordered.
func ReleaseOrder(graph map[string]*Package) ([]string, error) {
	// Kahn's algorithm over the workspace edges.
	indegree := make(map[string]int, len(graph))
	dependents := make(map[string][]string, len(graph))
	for name := range graph {
		indegree[name] = 0
	}
	for name, pkg := range graph {
		if pkg == nil {
			continue
		}
		for depName, dep := range pkg.Dependencies {
			if dep.Package == nil {
				continue
			}
			indegree[name]++
			dependents[depName] = append(dependents[depName], name)
		}
	}

	ready := make([]string, 0, len(graph))
	for name, degree := range indegree {
		if degree == 0 {
			ready = append(ready, name)
		}
	}

	order := make([]string, 0, len(graph))
	for len(ready) > 0 {
		sort.Strings(ready)
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)
		for _, dependent := range dependents[name] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}

	if len(order) != len(graph) {
		var blocked []string
		for name, degree := range indegree {
			if degree > 0 {
				blocked = append(blocked, name)
			}
		}
		sort.Strings(blocked)
		return nil, fmt.Errorf("dependency cycle involving: %s", strings.Join(blocked, ", "))
	}
	return order, nil
}
