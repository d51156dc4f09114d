//go:build unit
// +build unit

package depgraph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/solentra/depfresh/pkg/adapters/registry"
)

func TestDetectLatestVersions_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := registry.NewMockClient(ctrl)
	graph := map[string]*Package{
		"@acme/core": {Name: "@acme/core", Dependencies: map[string]Dependency{}},
		"@acme/new":  {Name: "@acme/new", Dependencies: map[string]Dependency{}},
	}

	mockRegistry.EXPECT().GetLatestVersion(gomock.Any(), "@acme/core").Return("1.3.0", nil)
	// Never published: the lookup fails and the version stays empty.
	mockRegistry.EXPECT().GetLatestVersion(gomock.Any(), "@acme/new").Return("", registry.ErrNotFound)

	detector := NewVersionDetector(mockRegistry)
	err := detector.DetectLatestVersions(context.Background(), graph)
	require.NoError(t, err)
	require.Equal(t, "1.3.0", graph["@acme/core"].LatestVersion)
	require.Equal(t, "", graph["@acme/new"].LatestVersion)
}

func TestDetectLatestVersions_PrivatePackageSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := registry.NewMockClient(ctrl)
	graph := map[string]*Package{
		"@acme/internal-tools": {Name: "@acme/internal-tools", Private: true},
	}

	detector := NewVersionDetector(mockRegistry)
	err := detector.DetectLatestVersions(context.Background(), graph)
	require.NoError(t, err)
	require.Equal(t, "", graph["@acme/internal-tools"].LatestVersion)
}

func TestDetectLatestVersions_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockRegistry := registry.NewMockClient(ctrl)
	graph := map[string]*Package{
		"@acme/core": {Name: "@acme/core"},
	}
	mockRegistry.EXPECT().GetLatestVersion(gomock.Any(), "@acme/core").Return("", context.Canceled)

	detector := NewVersionDetector(mockRegistry)
	err := detector.DetectLatestVersions(ctx, graph)
	require.ErrorIs(t, err, context.Canceled)
}
