//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=pin_checker.go -destination=mock_pin_checker.gen.go -package=depgraph
package depgraph

// PinChecker finds workspace manifests whose declared pins differ from the
// latest published version of the dependency.
type PinChecker interface {
	// Check inspects the dependency graph and returns a map of package name
	// to dependency name to Mismatch. Only mismatches are included in the
	// result.
	Check(graph map[string]*Package) map[string]map[string]Mismatch
}

// pinChecker is the default implementation of PinChecker.
type pinChecker struct{}

// NewPinChecker creates a new PinChecker.
func NewPinChecker() PinChecker {
	return &pinChecker{}
}

// Check implements the PinChecker interface. Versions are compared as plain
// strings: any difference from the latest published version counts, range
// operators included.
func (c *pinChecker) Check(graph map[string]*Package) map[string]map[string]Mismatch {
	result := make(map[string]map[string]Mismatch)
	for pkgName, pkg := range graph {
		if pkg == nil {
			continue
		}
		for depName, dep := range pkg.Dependencies {
			if dep.Package == nil {
				continue
			}
			// Skip if the dependency was never published
			if dep.Package.LatestVersion == "" {
				continue
			}
			if dep.Declared != dep.Package.LatestVersion {
				if result[pkgName] == nil {
					result[pkgName] = make(map[string]Mismatch)
				}
				result[pkgName][depName] = Mismatch{
					Declared: dep.Declared,
					Latest:   dep.Package.LatestVersion,
				}
			}
		}
	}
	return result
}
