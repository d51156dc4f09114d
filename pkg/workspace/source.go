//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=source.go -destination=mock.gen.go -package=workspace

// Package workspace loads the package manifests of a monorepo, either from a
// checkout on disk or from its GitHub repository.
package workspace

import (
	"context"
	"errors"
	"strings"

	"github.com/solentra/depfresh/pkg/manifest"
)

// ErrInvalidRepository is returned when a repository reference cannot be
// parsed into an owner and a name.
var ErrInvalidRepository = errors.New("invalid repository reference")

// Source defines the interface for loading the manifests of all workspace
// packages.
type Source interface {
	Load(ctx context.Context) ([]*manifest.Manifest, error)
}

// parseOwnerAndRepo extracts owner and name from "owner/name" or from a
// GitHub URL such as "https://github.com/owner/name.git".
func parseOwnerAndRepo(repository string) (owner, repo string) {
	s := strings.TrimSuffix(strings.TrimSpace(repository), "/")
	if idx := strings.Index(s, "github.com/"); idx >= 0 {
		s = s[idx+len("github.com/"):]
	}
	s = strings.TrimSuffix(s, ".git")
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", ""
	}
	// An SSH remote like "git@github.com:owner/name" is not a supported form.
	if strings.ContainsAny(parts[0], ":@") {
		return "", ""
	}
	return parts[0], parts[1]
}
