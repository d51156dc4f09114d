// Package freshness decides whether the published scoped dependencies of a
// package are behind their latest published versions.
package freshness

import "fmt"

const (
	// TokenOutdated is the verdict printed when at least one scoped
	// dependency is behind its latest published version.
	TokenOutdated = "has_outdated_deps"
	// TokenFresh is the verdict printed when every scoped dependency matches
	// its latest published version.
	TokenFresh = "no_outdated_deps"
)

// Mismatch describes one scoped dependency whose declared version differs
// from its latest published version.
type Mismatch struct {
	// Name is the fully scoped dependency identifier.
	Name string
	// Declared is the version string the checked package declares.
	Declared string
	// Current is the latest published version of the dependency, empty when
	// the lookup failed.
	Current string
}

// String renders the mismatch as a diagnostic line.
func (m Mismatch) String() string {
	return fmt.Sprintf("%s outdated: %s → %s", m.Name, m.Declared, m.Current)
}

// Result is the outcome of one freshness check.
type Result struct {
	// Package is the fully scoped identifier of the checked package.
	Package string
	// Mismatches lists the outdated dependencies sorted by name.
	Mismatches []Mismatch
}

// Outdated reports whether at least one dependency is behind.
func (r Result) Outdated() bool {
	return len(r.Mismatches) > 0
}

// Token returns the machine-readable verdict.
func (r Result) Token() string {
	if r.Outdated() {
		return TokenOutdated
	}
	return TokenFresh
}
