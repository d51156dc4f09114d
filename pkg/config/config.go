// Package config loads the tool configuration from YAML, the environment
// and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/solentra/depfresh/pkg/manifest"
)

// DefaultScope is the npm scope of the workspace packages.
const DefaultScope = "@solentra"

// DefaultPath is where Load looks when no path is given on the command line.
const DefaultPath = "configs/depfresh.yaml"

// Workspace source kinds.
const (
	SourceLocal  = "local"
	SourceGitHub = "github"
)

// Registry configures access to the npm registry.
type Registry struct {
	URL         string        `mapstructure:"url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Concurrency int           `mapstructure:"concurrency"`
}

// Workspace configures where the workspace manifests are read from.
type Workspace struct {
	Source      string `mapstructure:"source"` // "local" or "github"
	Root        string `mapstructure:"root"`
	PackagesDir string `mapstructure:"packages_dir"`
	Repository  string `mapstructure:"repository"` // "owner/name", github source only
	Ref         string `mapstructure:"ref"`
}

// Config is the root configuration.
type Config struct {
	Scope     string    `mapstructure:"scope"`
	Registry  Registry  `mapstructure:"registry"`
	Workspace Workspace `mapstructure:"workspace"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Scope: DefaultScope,
		Registry: Registry{
			URL:         "https://registry.npmjs.org",
			Timeout:     10 * time.Second,
			Concurrency: 4,
		},
		Workspace: Workspace{
			Source:      SourceLocal,
			Root:        ".",
			PackagesDir: "packages",
			Ref:         "main",
		},
	}
}

// Load reads the YAML file at configPath. Missing keys fall back to the
// defaults, and DEPFRESH_* environment variables override both.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.Scope = manifest.NormalizeScope(config.Scope)
	return &config, nil
}

// LoadDefault builds the configuration from the built-in defaults and the
// DEPFRESH_* environment variables alone, for running without a config file.
func LoadDefault() (*Config, error) {
	v := newViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.Scope = manifest.NormalizeScope(config.Scope)
	return &config, nil
}

// Validate checks the parts of the configuration every command relies on.
func (c *Config) Validate() error {
	if manifest.NormalizeScope(c.Scope) == "" {
		return errors.New("scope must not be empty")
	}
	if c.Registry.URL == "" {
		return errors.New("registry.url must not be empty")
	}
	return nil
}

// ValidateWorkspace checks the parts only workspace-wide commands rely on.
func (c *Config) ValidateWorkspace() error {
	switch c.Workspace.Source {
	case SourceLocal, SourceGitHub:
	default:
		return fmt.Errorf("unknown workspace source %q", c.Workspace.Source)
	}
	if c.Workspace.Source == SourceGitHub && c.Workspace.Repository == "" {
		return errors.New("workspace.repository must be set for the github source")
	}
	return nil
}

// newViper builds a viper instance carrying the defaults and env bindings.
func newViper() *viper.Viper {
	def := Default()
	v := viper.New()
	v.SetDefault("scope", def.Scope)
	v.SetDefault("registry.url", def.Registry.URL)
	v.SetDefault("registry.timeout", def.Registry.Timeout)
	v.SetDefault("registry.concurrency", def.Registry.Concurrency)
	v.SetDefault("workspace.source", def.Workspace.Source)
	v.SetDefault("workspace.root", def.Workspace.Root)
	v.SetDefault("workspace.packages_dir", def.Workspace.PackagesDir)
	v.SetDefault("workspace.repository", def.Workspace.Repository)
	v.SetDefault("workspace.ref", def.Workspace.Ref)
	v.SetEnvPrefix("DEPFRESH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}
