package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ColorFn formats a string with a terminal color applied.
type ColorFn func(format string, a ...interface{}) string

// TerminalColors groups the colors used by the rendered report.
type TerminalColors struct {
	Green  ColorFn
	Yellow ColorFn
	Red    ColorFn
	Dim    ColorFn
}

// Colors is the default report palette.
var Colors = TerminalColors{
	Green:  color.New(color.FgGreen).SprintfFunc(),
	Yellow: color.New(color.FgYellow).SprintfFunc(),
	Red:    color.New(color.FgRed, color.Bold).SprintfFunc(),
	Dim:    color.New(color.Faint).SprintfFunc(),
}

// Render writes the report as a table.
func (r *Report) Render(w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	// Keep header and footer text as written instead of upper-casing it.
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault
	tw.SetTitle("release state %s", r.Scope)
	tw.AppendHeader(table.Row{"package", "workspace", "published", "state", "stale pins"})
	for _, pkg := range r.Packages {
		tw.AppendRow(table.Row{
			pkg.Name,
			pkg.Workspace,
			orDash(pkg.Published),
			colorState(pkg.State),
			renderPins(pkg.StalePins),
		})
	}
	tw.AppendFooter(table.Row{
		fmt.Sprintf("%d packages", len(r.Packages)),
		"", "", "",
		fmt.Sprintf("%d stale pins", r.TotalStalePins()),
	})
	tw.Render()
}

func colorState(s PublishState) string {
	switch s {
	case StateUpToDate:
		return Colors.Green("%s", s)
	case StateReleasePending:
		return Colors.Yellow("%s", s)
	case StateBehindRegistry, StateDiffers:
		return Colors.Red("%s", s)
	case StatePrivate, StateUnpublished:
		return Colors.Dim("%s", s)
	default:
		return s.String()
	}
}

func renderPins(pins []StalePin) string {
	if len(pins) == 0 {
		return "-"
	}
	lines := make([]string, 0, len(pins))
	for _, pin := range pins {
		lines = append(lines, fmt.Sprintf("%s %s → %s", pin.Name, pin.Declared, pin.Latest))
	}
	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
