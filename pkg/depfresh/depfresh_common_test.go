//go:build unit
// +build unit

package depfresh

import (
	"testing"

	"github.com/solentra/depfresh/pkg/config"
	"github.com/solentra/depfresh/pkg/depgraph"
	"github.com/solentra/depfresh/pkg/freshness"
	"github.com/solentra/depfresh/pkg/workspace"
	"go.uber.org/mock/gomock"
)

// TestDepFresh contains all the mocks and the depfresh instance for testing
type TestDepFresh struct {
	DepFresh            *DepFresh
	MockController      *gomock.Controller
	MockSource          *workspace.MockSource
	MockChecker         *freshness.MockChecker
	MockGraphBuilder    *depgraph.MockGraphBuilder
	MockVersionDetector *depgraph.MockVersionDetector
	MockPinChecker      *depgraph.MockPinChecker
}

// newTestDepFresh creates a TestDepFresh instance with all mocked dependencies
func newTestDepFresh(t *testing.T, cfg *config.Config) *TestDepFresh {
	ctrl := gomock.NewController(t)

	mockSource := workspace.NewMockSource(ctrl)
	mockChecker := freshness.NewMockChecker(ctrl)
	mockGraphBuilder := depgraph.NewMockGraphBuilder(ctrl)
	mockVersionDetector := depgraph.NewMockVersionDetector(ctrl)
	mockPinChecker := depgraph.NewMockPinChecker(ctrl)

	// Create DepFresh directly, avoiding New() so no real clients are built
	d := &DepFresh{
		config:          cfg,
		source:          mockSource,
		checker:         mockChecker,
		graphBuilder:    mockGraphBuilder,
		versionDetector: mockVersionDetector,
		pinChecker:      mockPinChecker,
	}

	return &TestDepFresh{
		DepFresh:            d,
		MockController:      ctrl,
		MockSource:          mockSource,
		MockChecker:         mockChecker,
		MockGraphBuilder:    mockGraphBuilder,
		MockVersionDetector: mockVersionDetector,
		MockPinChecker:      mockPinChecker,
	}
}
