package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/solentra/depfresh/pkg/manifest"
)

// localSource reads manifests from a monorepo checkout on disk.
type localSource struct {
	root        string
	packagesDir string
}

// Ensure localSource implements Source.
var _ Source = (*localSource)(nil)

// NewLocalSource creates a Source reading <root>/<packagesDir>/*/package.json.
func NewLocalSource(root, packagesDir string) Source {
	return &localSource{root: root, packagesDir: packagesDir}
}

// Load reads and parses the manifest of every package directory. Directories
// without a package.json are skipped; a malformed manifest aborts the load.
func (s *localSource) Load(_ context.Context) ([]*manifest.Manifest, error) {
	dir := filepath.Join(s.root, s.packagesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read packages directory %s: %w", dir, err)
	}
	manifests := make([]*manifest.Manifest, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name(), "package.json")
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		m, err := manifest.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}
