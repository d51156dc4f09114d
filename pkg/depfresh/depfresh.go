// Package depfresh wires the registry client, workspace sources and graph
// passes into the operations exposed by the command line.
package depfresh

import (
	"context"
	"fmt"

	"github.com/solentra/depfresh/pkg/adapters/github"
	"github.com/solentra/depfresh/pkg/adapters/registry"
	"github.com/solentra/depfresh/pkg/config"
	"github.com/solentra/depfresh/pkg/depgraph"
	"github.com/solentra/depfresh/pkg/freshness"
	"github.com/solentra/depfresh/pkg/logging"
	"github.com/solentra/depfresh/pkg/report"
	"github.com/solentra/depfresh/pkg/workspace"
	"go.uber.org/zap"
)

// DepFresh represents the main depfresh application that orchestrates
// workspace loading, registry lookups and freshness checks.
type DepFresh struct {
	config          *config.Config
	githubToken     string
	source          workspace.Source
	checker         freshness.Checker
	graphBuilder    depgraph.GraphBuilder
	versionDetector depgraph.VersionDetector
	pinChecker      depgraph.PinChecker
}

// New creates a new DepFresh instance from the given configuration and
// access tokens. The GitHub token is only used when the workspace is read
// from a GitHub repository; the workspace source is built on first use, so
// single-package checks run under any workspace configuration.
func New(cfg *config.Config, registryToken, githubToken string) *DepFresh {
	registryClient := registry.New(cfg.Registry.URL, cfg.Registry.Timeout, registryToken)

	return &DepFresh{
		config:          cfg,
		githubToken:     githubToken,
		checker:         freshness.New(registryClient, cfg.Scope, cfg.Registry.Concurrency),
		graphBuilder:    depgraph.NewGraphBuilder(),
		versionDetector: depgraph.NewVersionDetector(registryClient),
		pinChecker:      depgraph.NewPinChecker(),
	}
}

// workspaceSource returns the configured workspace source, building it on
// first use. Only the workspace-wide operations need one.
func (d *DepFresh) workspaceSource() (workspace.Source, error) {
	if d.source != nil {
		return d.source, nil
	}

	source, err := newSource(d.config, d.githubToken)
	if err != nil {
		return nil, err
	}
	d.source = source
	return source, nil
}

// newSource builds the workspace source selected by the configuration.
func newSource(cfg *config.Config, githubToken string) (workspace.Source, error) {
	switch cfg.Workspace.Source {
	case config.SourceGitHub:
		client := github.New(githubToken)
		return workspace.NewGitHubSource(client, cfg.Workspace.Repository, cfg.Workspace.Ref, cfg.Workspace.PackagesDir)
	case config.SourceLocal, "":
		return workspace.NewLocalSource(cfg.Workspace.Root, cfg.Workspace.PackagesDir), nil
	default:
		return nil, fmt.Errorf("unknown workspace source %q", cfg.Workspace.Source)
	}
}

// Check reports the dependency freshness of a single published package.
func (d *DepFresh) Check(ctx context.Context, name string) (freshness.Result, error) {
	return d.checker.Check(ctx, name)
}

// Report builds the release-state report for the configured workspace.
func (d *DepFresh) Report(ctx context.Context) (*report.Report, error) {
	graph, err := d.buildGraph(ctx)
	if err != nil {
		return nil, err
	}

	if err := d.versionDetector.DetectLatestVersions(ctx, graph); err != nil {
		return nil, fmt.Errorf("failed to detect published versions: %w", err)
	}

	mismatches := d.pinChecker.Check(graph)
	return report.Build(d.config.Scope, graph, mismatches), nil
}

// ReleaseOrder returns the workspace packages in dependency-first publish
// order. It works from the declared manifests alone and never touches the
// registry.
func (d *DepFresh) ReleaseOrder(ctx context.Context) ([]string, error) {
	graph, err := d.buildGraph(ctx)
	if err != nil {
		return nil, err
	}

	return depgraph.ReleaseOrder(graph)
}

// buildGraph loads the workspace manifests and assembles the dependency graph.
func (d *DepFresh) buildGraph(ctx context.Context) (map[string]*depgraph.Package, error) {
	source, err := d.workspaceSource()
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace source: %w", err)
	}

	manifests, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace manifests: %w", err)
	}
	logging.C(ctx).Info("Loaded workspace manifests", zap.Int("count", len(manifests)))

	graph, err := d.graphBuilder.BuildGraph(manifests, d.config.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency graph: %w", err)
	}

	return graph, nil
}
