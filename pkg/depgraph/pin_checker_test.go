package depgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPinChecker_Check_HappyPath(t *testing.T) {
	// @acme/api depends on @acme/core (outdated) and @acme/utils (up-to-date)
	core := &Package{Name: "@acme/core", LatestVersion: "1.2.0"}
	utils := &Package{Name: "@acme/utils", LatestVersion: "0.9.0"}
	api := &Package{
		Name: "@acme/api",
		Dependencies: map[string]Dependency{
			"@acme/core":  {Package: core, Declared: "1.0.0"},
			"@acme/utils": {Package: utils, Declared: "0.9.0"},
		},
	}
	graph := map[string]*Package{
		"@acme/api":   api,
		"@acme/core":  core,
		"@acme/utils": utils,
	}

	mismatches := NewPinChecker().Check(graph)
	require.Len(t, mismatches, 1)
	deps, ok := mismatches["@acme/api"]
	require.True(t, ok)
	require.Len(t, deps, 1)
	mismatch, ok := deps["@acme/core"]
	require.True(t, ok)
	require.Equal(t, "1.0.0", mismatch.Declared)
	require.Equal(t, "1.2.0", mismatch.Latest)
}

func TestPinChecker_Check_RangePinCountsAsMismatch(t *testing.T) {
	// The comparison is a plain string comparison, so "^1.2.0" differs from
	// "1.2.0" even though the range contains it.
	core := &Package{Name: "@acme/core", LatestVersion: "1.2.0"}
	api := &Package{
		Name: "@acme/api",
		Dependencies: map[string]Dependency{
			"@acme/core": {Package: core, Declared: "^1.2.0"},
		},
	}
	graph := map[string]*Package{"@acme/api": api, "@acme/core": core}

	mismatches := NewPinChecker().Check(graph)
	require.Len(t, mismatches, 1)
	require.Equal(t, "^1.2.0", mismatches["@acme/api"]["@acme/core"].Declared)
}

func TestPinChecker_Check_UnpublishedDependencySkipped(t *testing.T) {
	core := &Package{Name: "@acme/core", LatestVersion: ""}
	api := &Package{
		Name: "@acme/api",
		Dependencies: map[string]Dependency{
			"@acme/core": {Package: core, Declared: "1.0.0"},
		},
	}
	graph := map[string]*Package{"@acme/api": api, "@acme/core": core}

	mismatches := NewPinChecker().Check(graph)
	require.Empty(t, mismatches)
}
