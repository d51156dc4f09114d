// Package report summarizes the release state of the workspace packages.
package report

import (
	"sort"

	"github.com/Masterminds/semver/v3"

	"github.com/solentra/depfresh/pkg/depgraph"
)

// PublishState classifies a package's workspace version against the registry.
type PublishState int

const (
	// StateUpToDate means the workspace version equals the published latest.
	StateUpToDate PublishState = iota
	// StateReleasePending means the workspace version is ahead of the
	// published latest.
	StateReleasePending
	// StateBehindRegistry means the registry holds a newer version than the
	// workspace manifest declares.
	StateBehindRegistry
	// StateUnpublished means the registry does not know the package.
	StateUnpublished
	// StatePrivate marks packages that are never published.
	StatePrivate
	// StateDiffers means workspace and published versions differ but at
	// least one of them does not parse as a semantic version.
	StateDiffers
)

func (s PublishState) String() string {
	switch s {
	case StateUpToDate:
		return "up to date"
	case StateReleasePending:
		return "release pending"
	case StateBehindRegistry:
		return "behind registry"
	case StateUnpublished:
		return "unpublished"
	case StatePrivate:
		return "private"
	case StateDiffers:
		return "differs"
	default:
		return "unknown"
	}
}

// StalePin is one outdated dependency pin of a workspace manifest.
type StalePin struct {
	Name     string
	Declared string
	Latest   string
}

// PackageStatus is the per-package line of the report.
type PackageStatus struct {
	Name      string
	Workspace string // version in the workspace manifest
	Published string // latest published version, empty when unpublished
	State     PublishState
	// StalePins lists dependency pins that differ from the latest published
	// version of the dependency.
	StalePins []StalePin
}

// Report is the release-state summary of a workspace. This is a pure data
// model; rendering lives in Render.
type Report struct {
	Scope    string
	Packages []PackageStatus
}

// Build assembles the report from the dependency graph and the pin check
// result, ordered by package name.
func Build(scope string, graph map[string]*depgraph.Package, mismatches map[string]map[string]depgraph.Mismatch) *Report {
	r := &Report{Scope: scope}
	for _, name := range depgraph.SortedNames(graph) {
		pkg := graph[name]
		if pkg == nil {
			continue
		}
		status := PackageStatus{
			Name:      name,
			Workspace: pkg.Version,
			Published: pkg.LatestVersion,
			State:     classify(pkg),
		}
		pins := mismatches[name]
		depNames := make([]string, 0, len(pins))
		for depName := range pins {
			depNames = append(depNames, depName)
		}
		sort.Strings(depNames)
		for _, depName := range depNames {
			status.StalePins = append(status.StalePins, StalePin{
				Name:     depName,
				Declared: pins[depName].Declared,
				Latest:   pins[depName].Latest,
			})
		}
		r.Packages = append(r.Packages, status)
	}
	return r
}

// TotalStalePins counts the stale pins across all packages.
func (r *Report) TotalStalePins() int {
	total := 0
	for _, pkg := range r.Packages {
		total += len(pkg.StalePins)
	}
	return total
}

// classify compares workspace and published versions. The semantic-version
// interpretation here is informational; the freshness verdict stays a plain
// string comparison.
func classify(pkg *depgraph.Package) PublishState {
	switch {
	case pkg.Private:
		return StatePrivate
	case pkg.LatestVersion == "":
		return StateUnpublished
	case pkg.Version == pkg.LatestVersion:
		return StateUpToDate
	}
	workspace, errWorkspace := semver.NewVersion(pkg.Version)
	published, errPublished := semver.NewVersion(pkg.LatestVersion)
	if errWorkspace != nil || errPublished != nil {
		return StateDiffers
	}
	switch {
	case workspace.Equal(published):
		return StateUpToDate
	case workspace.GreaterThan(published):
		return StateReleasePending
	default:
		return StateBehindRegistry
	}
}
