package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/unenum/internal/io"
	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals
var (
	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	summaryTitleStyle = lipgloss.NewStyle().Bold(true)

	summaryLabelStyle = lipgloss.NewStyle().Width(12) //nolint:mnd
)

// renderSummary renders the end-of-run summary block for a [io.Report].
func renderSummary(report *io.Report) string {
	title := "Consolidation summary"
	if report.DryRun {
		title += " (dry run)"
	}

	return summaryStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		summaryTitleStyle.Render(title),
		summaryRow("Groups", strconv.Itoa(report.GroupsProcessed)),
		summaryRow("Removed", strconv.Itoa(len(report.Removed))),
		summaryRow("Renamed", strconv.Itoa(len(report.Renamed))),
		summaryRow("Kept", strconv.Itoa(len(report.Kept))),
		summaryRow("Reclaimed", humanize.IBytes(report.BytesReclaimed())),
	))
}

func summaryRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, summaryLabelStyle.Render(label), value)
}
