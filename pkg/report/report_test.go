package report

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/solentra/depfresh/pkg/depgraph"
)

func testGraph() map[string]*depgraph.Package {
	return map[string]*depgraph.Package{
		"@acme/core": {Name: "@acme/core", Version: "1.2.0", LatestVersion: "1.2.0"},
		"@acme/api": {
			Name:          "@acme/api",
			Version:       "2.1.0",
			LatestVersion: "2.0.0",
		},
		"@acme/web":            {Name: "@acme/web", Version: "3.0.0", LatestVersion: "3.1.0"},
		"@acme/new":            {Name: "@acme/new", Version: "0.1.0"},
		"@acme/internal-tools": {Name: "@acme/internal-tools", Version: "0.2.0", Private: true},
		"@acme/odd":            {Name: "@acme/odd", Version: "not-a-version", LatestVersion: "1.0.0"},
	}
}

func TestBuild_Classification(t *testing.T) {
	r := Build("@acme", testGraph(), nil)
	require.Len(t, r.Packages, 6)

	states := make(map[string]PublishState, len(r.Packages))
	for _, pkg := range r.Packages {
		states[pkg.Name] = pkg.State
	}
	require.Equal(t, StateUpToDate, states["@acme/core"])
	require.Equal(t, StateReleasePending, states["@acme/api"])
	require.Equal(t, StateBehindRegistry, states["@acme/web"])
	require.Equal(t, StateUnpublished, states["@acme/new"])
	require.Equal(t, StatePrivate, states["@acme/internal-tools"])
	require.Equal(t, StateDiffers, states["@acme/odd"])
}

func TestBuild_OrderedByName(t *testing.T) {
	r := Build("@acme", testGraph(), nil)
	var names []string
	for _, pkg := range r.Packages {
		names = append(names, pkg.Name)
	}
	require.Equal(t, []string{
		"@acme/api", "@acme/core", "@acme/internal-tools",
		"@acme/new", "@acme/odd", "@acme/web",
	}, names)
}

func TestBuild_StalePins(t *testing.T) {
	mismatches := map[string]map[string]depgraph.Mismatch{
		"@acme/api": {
			"@acme/utils": {Declared: "0.8.0", Latest: "0.9.0"},
			"@acme/core":  {Declared: "1.1.0", Latest: "1.2.0"},
		},
	}
	r := Build("@acme", testGraph(), mismatches)

	var api PackageStatus
	for _, pkg := range r.Packages {
		if pkg.Name == "@acme/api" {
			api = pkg
		}
	}
	require.Len(t, api.StalePins, 2)
	require.Equal(t, "@acme/core", api.StalePins[0].Name)
	require.Equal(t, "@acme/utils", api.StalePins[1].Name)
	require.Equal(t, 2, r.TotalStalePins())
}

func TestRender(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	mismatches := map[string]map[string]depgraph.Mismatch{
		"@acme/api": {"@acme/core": {Declared: "1.1.0", Latest: "1.2.0"}},
	}
	r := Build("@acme", testGraph(), mismatches)

	var buf bytes.Buffer
	r.Render(&buf)
	out := buf.String()

	require.Contains(t, out, "@acme/api")
	require.Contains(t, out, "release pending")
	require.Contains(t, out, "up to date")
	require.Contains(t, out, "@acme/core 1.1.0 → 1.2.0")
	require.Contains(t, out, "6 packages")
	require.Contains(t, out, "1 stale pins")
}

func TestClassify_VersionPrefixTreatedAsEqual(t *testing.T) {
	pkg := &depgraph.Package{Name: "@acme/core", Version: "v1.2.0", LatestVersion: "1.2.0"}
	require.Equal(t, StateUpToDate, classify(pkg))
}
