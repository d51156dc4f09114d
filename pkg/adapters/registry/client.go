//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=client.go -destination=mock.gen.go -package=registry
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/solentra/depfresh/pkg/manifest"
)

// DefaultURL is the public npm registry endpoint.
const DefaultURL = "https://registry.npmjs.org"

// DefaultTimeout bounds a single registry lookup.
const DefaultTimeout = 10 * time.Second

// ErrNotFound is returned when the registry has no package under the
// requested identifier.
var ErrNotFound = errors.New("package not found in registry")

// Client defines the interface for reading package metadata from an npm
// registry. Each call performs a single lookup; callers decide how failures
// propagate.
type Client interface {
	// GetLatestVersion returns the version the "latest" dist-tag points to.
	GetLatestVersion(ctx context.Context, name string) (string, error)
	// GetLatestDependencies returns the dependencies object declared by the
	// version the "latest" dist-tag points to.
	GetLatestDependencies(ctx context.Context, name string) (map[string]string, error)
}

// client implements Client over the npm registry HTTP API.
type client struct {
	baseURL string
	http    *http.Client
}

// New creates a registry client for the given endpoint. An empty token makes
// an unauthenticated client; timeout bounds each individual lookup.
func New(baseURL string, timeout time.Duration, token string) Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := &http.Client{Timeout: timeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		// oauth2.NewClient does not carry the timeout over.
		httpClient.Timeout = timeout
	}
	return &client{baseURL: baseURL, http: httpClient}
}

// GetLatestVersion returns the version the "latest" dist-tag points to.
func (c *client) GetLatestVersion(ctx context.Context, name string) (string, error) {
	doc, err := c.fetchPackument(ctx, name)
	if err != nil {
		return "", err
	}
	if doc.DistTags.Latest == "" {
		return "", fmt.Errorf("no latest version found for %s", name)
	}
	return doc.DistTags.Latest, nil
}

// GetLatestDependencies returns the dependencies object declared by the
// version the "latest" dist-tag points to.
func (c *client) GetLatestDependencies(ctx context.Context, name string) (map[string]string, error) {
	doc, err := c.fetchPackument(ctx, name)
	if err != nil {
		return nil, err
	}
	latest := doc.DistTags.Latest
	if latest == "" {
		return nil, fmt.Errorf("no latest version found for %s", name)
	}
	version, ok := doc.Versions[latest]
	if !ok {
		return nil, fmt.Errorf("version %s not found for %s", latest, name)
	}
	if version.Dependencies == nil {
		return map[string]string{}, nil
	}
	return version.Dependencies, nil
}

// fetchPackument performs one GET against the registry metadata endpoint.
// Scoped identifiers are path-escaped ("@acme/core" -> "@acme%2Fcore").
func (c *client) fetchPackument(ctx context.Context, name string) (*packument, error) {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query registry for %s: %w", name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	default:
		return nil, fmt.Errorf("registry returned status %d for %s", resp.StatusCode, name)
	}

	var doc packument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode registry response for %s: %w", name, err)
	}
	return &doc, nil
}

// packument is the subset of the registry metadata document the client reads.
type packument struct {
	Name     string                    `json:"name"`
	DistTags distTags                  `json:"dist-tags"`
	Versions map[string]versionDetails `json:"versions"`
}

type distTags struct {
	Latest string `json:"latest"`
}

type versionDetails struct {
	Dependencies manifest.DependencyMap `json:"dependencies"`
}
