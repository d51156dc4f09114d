// Package manifest models npm package manifests (package.json) and the
// scope conventions used for workspace packages.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DependencyMap maps dependency identifiers to declared version strings.
type DependencyMap map[string]string

// UnmarshalJSON decodes a dependencies object. Entries whose value is not a
// JSON string are skipped rather than failing the whole document.
func (m *DependencyMap) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(DependencyMap, len(raw))
	for name, value := range raw {
		if s, ok := value.(string); ok {
			out[name] = s
		}
	}
	*m = out
	return nil
}

// Manifest represents the subset of package.json fields the tool reads.
type Manifest struct {
	Name            string        `json:"name"`
	Version         string        `json:"version"`
	Private         bool          `json:"private,omitempty"`
	Dependencies    DependencyMap `json:"dependencies,omitempty"`
	DevDependencies DependencyMap `json:"devDependencies,omitempty"`
}

// Parse decodes a package.json document.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse package manifest: %w", err)
	}
	if m.Name == "" {
		return nil, errors.New("package manifest has no name")
	}
	return &m, nil
}

// NormalizeScope returns the scope in its canonical "@name" form, without a
// trailing slash.
func NormalizeScope(scope string) string {
	scope = strings.TrimSuffix(strings.TrimSpace(scope), "/")
	if scope == "" {
		return ""
	}
	if !strings.HasPrefix(scope, "@") {
		scope = "@" + scope
	}
	return scope
}

// Qualify prefixes name with scope. Identifiers that already carry a scope
// are returned unchanged.
func Qualify(scope, name string) string {
	if strings.HasPrefix(name, "@") {
		return name
	}
	return scope + "/" + name
}

// HasScope reports whether the identifier belongs to the given scope.
func HasScope(scope, identifier string) bool {
	return strings.HasPrefix(identifier, scope+"/")
}

// FilterScope returns the entries of deps whose identifiers belong to scope.
func FilterScope(deps DependencyMap, scope string) DependencyMap {
	out := make(DependencyMap)
	for name, version := range deps {
		if HasScope(scope, name) {
			out[name] = version
		}
	}
	return out
}

// SortedNames returns the dependency identifiers in lexical order.
func SortedNames(deps DependencyMap) []string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
