//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=checker.go -destination=mock.gen.go -package=freshness
package freshness

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/solentra/depfresh/pkg/adapters/registry"
	"github.com/solentra/depfresh/pkg/logging"
	"github.com/solentra/depfresh/pkg/manifest"
)

// DefaultConcurrency bounds the parallel version lookups of one check.
const DefaultConcurrency = 4

// Checker defines the interface for checking whether a package's published
// scoped dependencies are behind their latest published versions.
type Checker interface {
	// Check fetches the dependencies declared by the latest published
	// version of the named package and compares every scoped one against its
	// latest published version. The name may be unscoped; it is qualified
	// with the checker's scope. Registry failures degrade: an unknown
	// package checks as having no dependencies, an unresolvable dependency
	// counts as outdated with an empty current version. The returned error
	// is reserved for context cancellation.
	Check(ctx context.Context, name string) (Result, error)
	// CheckDeclared compares an explicit dependency map against the registry
	// without looking up the package's own manifest.
	CheckDeclared(ctx context.Context, pkg string, deps map[string]string) (Result, error)
}

// checker is the registry-backed implementation of Checker.
type checker struct {
	registry    registry.Client
	scope       string
	concurrency int
}

// New creates a Checker for packages under the given scope.
func New(registryClient registry.Client, scope string, concurrency int) Checker {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &checker{
		registry:    registryClient,
		scope:       manifest.NormalizeScope(scope),
		concurrency: concurrency,
	}
}

// Check implements the Checker interface.
func (c *checker) Check(ctx context.Context, name string) (Result, error) {
	identifier := manifest.Qualify(c.scope, name)
	deps, err := c.registry.GetLatestDependencies(ctx, identifier)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		// Degrade: an unknown or unreachable package checks as having no
		// dependencies.
		logging.C(ctx).Debug("could not fetch published dependencies",
			zap.String("package", identifier),
			zap.Error(err))
		deps = map[string]string{}
	}
	return c.CheckDeclared(ctx, identifier, deps)
}

// CheckDeclared implements the Checker interface.
func (c *checker) CheckDeclared(ctx context.Context, pkg string, deps map[string]string) (Result, error) {
	scoped := manifest.FilterScope(deps, c.scope)
	names := manifest.SortedNames(scoped)

	type lookup struct {
		name    string
		current string
	}

	jobs := make(chan string)
	results := make(chan lookup, len(names))

	workers := c.concurrency
	if workers > len(names) {
		workers = len(names)
	}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				results <- lookup{name: name, current: c.currentVersion(ctx, name)}
			}
		}()
	}

	for _, name := range names {
		jobs <- name
	}
	close(jobs)
	wg.Wait()
	close(results)

	current := make(map[string]string, len(names))
	for r := range results {
		current[r.name] = r.current
	}
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	// Fold in name order: any exact string difference is a mismatch.
	result := Result{Package: pkg}
	for _, name := range names {
		if scoped[name] != current[name] {
			result.Mismatches = append(result.Mismatches, Mismatch{
				Name:     name,
				Declared: scoped[name],
				Current:  current[name],
			})
		}
	}
	return result, nil
}

// currentVersion resolves the latest published version of one dependency,
// degrading to an empty string when the lookup fails.
func (c *checker) currentVersion(ctx context.Context, name string) string {
	version, err := c.registry.GetLatestVersion(ctx, name)
	if err != nil {
		logging.C(ctx).Debug("could not resolve latest version",
			zap.String("package", name),
			zap.Error(err))
		return ""
	}
	return version
}
