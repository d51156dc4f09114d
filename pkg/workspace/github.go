package workspace

import (
	"context"
	"fmt"

	"github.com/solentra/depfresh/pkg/adapters/github"
	"github.com/solentra/depfresh/pkg/manifest"
)

// githubSource reads manifests from a GitHub repository at a fixed ref.
type githubSource struct {
	client      github.Client
	owner       string
	repo        string
	ref         string
	packagesDir string
}

// Ensure githubSource implements Source.
var _ Source = (*githubSource)(nil)

// NewGitHubSource creates a Source listing packagesDir in the given
// repository and fetching each package's package.json at ref. The repository
// is given as "owner/name" or as a GitHub URL.
func NewGitHubSource(client github.Client, repository, ref, packagesDir string) (Source, error) {
	owner, repo := parseOwnerAndRepo(repository)
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRepository, repository)
	}
	return &githubSource{
		client:      client,
		owner:       owner,
		repo:        repo,
		ref:         ref,
		packagesDir: packagesDir,
	}, nil
}

// Load lists the packages directory and fetches each package's manifest.
func (s *githubSource) Load(ctx context.Context) ([]*manifest.Manifest, error) {
	entries, err := s.client.ListDirectory(ctx, github.ListDirectoryParams{
		Owner: s.owner,
		Repo:  s.repo,
		Path:  s.packagesDir,
		Ref:   s.ref,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list packages directory %s: %w", s.packagesDir, err)
	}
	manifests := make([]*manifest.Manifest, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != "dir" {
			continue
		}
		path := entry.Path + "/package.json"
		data, err := s.client.GetFileContent(ctx, github.GetFileContentParams{
			Owner: s.owner,
			Repo:  s.repo,
			Path:  path,
			Ref:   s.ref,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
		}
		m, err := manifest.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}
