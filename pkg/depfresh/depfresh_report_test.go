//go:build unit
// +build unit

package depfresh

import (
	"context"
	"testing"

	"github.com/solentra/depfresh/pkg/config"
	"github.com/solentra/depfresh/pkg/depgraph"
	"github.com/solentra/depfresh/pkg/manifest"
	"github.com/solentra/depfresh/pkg/report"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDepFresh_Report_Success(t *testing.T) {
	cfg := config.Default()
	cfg.Scope = "@acme"

	tc := newTestDepFresh(t, cfg)
	defer tc.MockController.Finish()

	manifests := []*manifest.Manifest{
		{Name: "@acme/core", Version: "1.2.0"},
		{Name: "@acme/api", Version: "2.0.0", Dependencies: manifest.DependencyMap{"@acme/core": "1.1.0"}},
	}
	tc.MockSource.EXPECT().Load(gomock.Any()).Return(manifests, nil)

	graph := map[string]*depgraph.Package{
		"@acme/core": {Name: "@acme/core", Version: "1.2.0", LatestVersion: "1.2.0"},
		"@acme/api":  {Name: "@acme/api", Version: "2.0.0", LatestVersion: "2.0.0"},
	}
	tc.MockGraphBuilder.EXPECT().BuildGraph(manifests, "@acme").Return(graph, nil)
	tc.MockVersionDetector.EXPECT().DetectLatestVersions(gomock.Any(), graph).Return(nil)

	mismatches := map[string]map[string]depgraph.Mismatch{
		"@acme/api": {
			"@acme/core": {Declared: "1.1.0", Latest: "1.2.0"},
		},
	}
	tc.MockPinChecker.EXPECT().Check(graph).Return(mismatches)

	rep, err := tc.DepFresh.Report(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "@acme", rep.Scope)
	assert.Len(t, rep.Packages, 2)
	assert.Equal(t, 1, rep.TotalStalePins())
	assert.Equal(t, report.StateUpToDate, rep.Packages[1].State)
}

func TestDepFresh_Report_LoadError(t *testing.T) {
	cfg := config.Default()

	tc := newTestDepFresh(t, cfg)
	defer tc.MockController.Finish()

	tc.MockSource.EXPECT().Load(gomock.Any()).Return(nil, assert.AnError)

	_, err := tc.DepFresh.Report(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load workspace manifests")
}

func TestDepFresh_Report_BuildGraphError(t *testing.T) {
	cfg := config.Default()

	tc := newTestDepFresh(t, cfg)
	defer tc.MockController.Finish()

	tc.MockSource.EXPECT().Load(gomock.Any()).Return([]*manifest.Manifest{}, nil)
	tc.MockGraphBuilder.EXPECT().
		BuildGraph(gomock.Any(), cfg.Scope).
		Return(nil, assert.AnError)

	_, err := tc.DepFresh.Report(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build dependency graph")
}

func TestDepFresh_Report_DetectError(t *testing.T) {
	cfg := config.Default()

	tc := newTestDepFresh(t, cfg)
	defer tc.MockController.Finish()

	graph := map[string]*depgraph.Package{}
	tc.MockSource.EXPECT().Load(gomock.Any()).Return([]*manifest.Manifest{}, nil)
	tc.MockGraphBuilder.EXPECT().BuildGraph(gomock.Any(), cfg.Scope).Return(graph, nil)
	tc.MockVersionDetector.EXPECT().
		DetectLatestVersions(gomock.Any(), graph).
		Return(assert.AnError)

	_, err := tc.DepFresh.Report(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to detect published versions")
}
