//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=client.go -destination=mock.gen.go -package=github
package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v55/github"
	"golang.org/x/oauth2"
)

// GetFileContentParams contains parameters for GetFileContent.
type GetFileContentParams struct {
	Owner string
	Repo  string
	Path  string
	Ref   string
}

// ListDirectoryParams contains parameters for ListDirectory.
type ListDirectoryParams struct {
	Owner string
	Repo  string
	Path  string
	Ref   string
}

// Entry describes one entry of a repository directory listing.
type Entry struct {
	Name string
	Path string
	Type string // "file" or "dir"
}

// Client defines the interface for reading repository content from GitHub.
type Client interface {
	GetFileContent(ctx context.Context, params GetFileContentParams) ([]byte, error)
	ListDirectory(ctx context.Context, params ListDirectoryParams) ([]Entry, error)
}

// client implements Client using go-github.
type client struct {
	gh *github.Client
}

// New creates a new GitHub client with the given token.
func New(token string) Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	gh := github.NewClient(oauth2.NewClient(context.Background(), ts))
	return &client{gh: gh}
}

// GetFileContent retrieves the content of a file from a GitHub repository.
func (c *client) GetFileContent(ctx context.Context, params GetFileContentParams) ([]byte, error) {
	fileContent, _, _, err := c.gh.Repositories.GetContents(
		ctx, params.Owner, params.Repo, params.Path,
		&github.RepositoryContentGetOptions{Ref: params.Ref},
	)
	if err != nil {
		return nil, err
	}
	if fileContent == nil {
		return nil, fmt.Errorf("path %s in %s/%s is not a file", params.Path, params.Owner, params.Repo)
	}
	content, err := fileContent.GetContent()
	if err != nil {
		return nil, err
	}
	return []byte(content), nil
}

// ListDirectory lists the entries of a directory in a GitHub repository.
func (c *client) ListDirectory(ctx context.Context, params ListDirectoryParams) ([]Entry, error) {
	_, dirContent, _, err := c.gh.Repositories.GetContents(
		ctx, params.Owner, params.Repo, params.Path,
		&github.RepositoryContentGetOptions{Ref: params.Ref},
	)
	if err != nil {
		return nil, err
	}
	if dirContent == nil {
		return nil, fmt.Errorf("path %s in %s/%s is not a directory", params.Path, params.Owner, params.Repo)
	}
	entries := make([]Entry, 0, len(dirContent))
	for _, item := range dirContent {
		if item == nil {
			continue
		}
		entries = append(entries, Entry{
			Name: item.GetName(),
			Path: item.GetPath(),
			Type: item.GetType(),
		})
	}
	return entries, nil
}
