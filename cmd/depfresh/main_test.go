//go:build unit
// +build unit

package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newRegistry serves static packument documents keyed by escaped request
// path, answering 404 for everything else.
func newRegistry(t *testing.T, documents map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, ok := documents[r.URL.EscapedPath()]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(doc))
	}))
	t.Cleanup(server.Close)
	return server
}

func writeConfig(t *testing.T, registryURL string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "depfresh.yaml")
	content := fmt.Sprintf("scope: \"@acme\"\nregistry:\n  url: %s\n", registryURL)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

// runCheck executes "check <name>" against the given registry and returns
// the captured stdout and stderr.
func runCheck(t *testing.T, server *httptest.Server, name string) (string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"check", name, "--config", writeConfig(t, server.URL)})

	require.NoError(t, cmd.Execute())
	return stdout.String(), stderr.String()
}

func TestCheckCommand_OutdatedDependency(t *testing.T) {
	server := newRegistry(t, map[string]string{
		"/@acme%2Fapi": `{
			"name": "@acme/api",
			"dist-tags": {"latest": "2.0.0"},
			"versions": {"2.0.0": {"dependencies": {
				"@acme/core": "1.0.0",
				"lodash": "^4.17.21"
			}}}
		}`,
		"/@acme%2Fcore": `{
			"name": "@acme/core",
			"dist-tags": {"latest": "1.2.0"},
			"versions": {"1.2.0": {"dependencies": {}}}
		}`,
	})

	stdout, stderr := runCheck(t, server, "api")

	// Stdout carries the verdict token alone; every diagnostic goes to
	// stderr.
	require.Equal(t, "has_outdated_deps\n", stdout)
	require.Equal(t, "@acme/core outdated: 1.0.0 → 1.2.0\n", stderr)
}

func TestCheckCommand_FreshPackage(t *testing.T) {
	server := newRegistry(t, map[string]string{
		"/@acme%2Fapi": `{
			"name": "@acme/api",
			"dist-tags": {"latest": "2.0.0"},
			"versions": {"2.0.0": {"dependencies": {"@acme/core": "1.2.0"}}}
		}`,
		"/@acme%2Fcore": `{
			"name": "@acme/core",
			"dist-tags": {"latest": "1.2.0"},
			"versions": {"1.2.0": {"dependencies": {}}}
		}`,
	})

	stdout, stderr := runCheck(t, server, "api")

	require.Equal(t, "no_outdated_deps\n", stdout)
	require.Empty(t, stderr)
}

func TestCheckCommand_UnknownPackageReportsFresh(t *testing.T) {
	server := newRegistry(t, map[string]string{})

	stdout, stderr := runCheck(t, server, "ghost")

	require.Equal(t, "no_outdated_deps\n", stdout)
	require.Empty(t, stderr)
}
