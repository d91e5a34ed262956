package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/graphgauge/graphgauge/pkg/version"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return danger.Render("ERROR: ") + m.err.Error() + "\n"
	}
	if m.loading {
		return fmt.Sprintf("\n  %s %s\n\n", m.spinner.View(), subtle.Render("ANALYZING SNAPSHOT..."))
	}
	if !m.ready {
		return ""
	}
	return m.viewHUD() + "\n" + m.viewport.View() + "\n" + m.viewFooter()
}

func (m Model) viewHUD() string {
	segTitle := highlight.Render(fmt.Sprintf("GRAPHGAUGE %s", version.Current))
	segNodes := hudLabelStyle.Render("NODES:") + hudValueStyle.Render(fmt.Sprintf("%d", m.summary.NodeCount))
	segEdges := hudLabelStyle.Render("EDGES:") + hudValueStyle.Render(fmt.Sprintf("%d", m.summary.EdgeCount))

	segments := []string{segTitle, segNodes, segEdges}
	if m.dirty {
		segments = append(segments, warning.Render(fmt.Sprintf("[DIRTY: %d skipped]", m.summary.Ingest.Malformed)))
	}

	return hudStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, joinWithGap(segments)...))
}

func (m Model) viewFooter() string {
	return footerStyle.Render(fmt.Sprintf("  %3.0f%%  ↑/↓ scroll · q quit", m.viewport.ScrollPercent()*100))
}

func joinWithGap(segments []string) []string {
	out := make([]string, 0, len(segments)*2-1)
	for i, seg := range segments {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, seg)
	}
	return out
}
