//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=version_detector.go -destination=mock_version_detector.gen.go -package=depgraph
package depgraph

import (
	"context"

	"go.uber.org/zap"

	"github.com/solentra/depfresh/pkg/adapters/registry"
	"github.com/solentra/depfresh/pkg/logging"
)

// VersionDetector fills in the latest published version of workspace packages.
type VersionDetector interface {
	// DetectLatestVersions sets LatestVersion on every public package in the
	// graph. Packages the registry does not know keep an empty LatestVersion.
	DetectLatestVersions(ctx context.Context, graph map[string]*Package) error
}

// versionDetector is the registry-backed implementation of VersionDetector.
type versionDetector struct {
	registry registry.Client
}

// NewVersionDetector creates a VersionDetector reading from the given registry.
func NewVersionDetector(registry registry.Client) VersionDetector {
	return &versionDetector{registry: registry}
}

// DetectLatestVersions implements the VersionDetector interface.
func (d *versionDetector) DetectLatestVersions(ctx context.Context, graph map[string]*Package) error {
	for _, name := range SortedNames(graph) {
		pkg := graph[name]
		if pkg == nil {
			continue
		}
		// Private packages are never published.
		if pkg.Private {
			continue
		}
		version, err := d.registry.GetLatestVersion(ctx, name)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logging.C(ctx).Debug("no published version found",
				zap.String("package", name),
				zap.Error(err))
			pkg.LatestVersion = ""
			continue
		}
		pkg.LatestVersion = version
	}
	return nil
}
