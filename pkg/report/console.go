// Package report renders a run Summary for human and machine
// consumers: styled console output, CSV/JSON exports, and a
// self-contained HTML dashboard.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/graphgauge/graphgauge/pkg/analysis"
	"github.com/graphgauge/graphgauge/pkg/engine"
)

// CentralityPreviewCount is how many leading centrality entries the
// console report shows.
const CentralityPreviewCount = 10

const barWidth = 30

var (
	colorNeonGreen  = lipgloss.Color("#00FF99")
	colorNeonPurple = lipgloss.Color("#874BFD")
	colorTextSub    = lipgloss.Color("#64748B")
	colorWarning    = lipgloss.Color("#F59E0B")

	titleStyle = lipgloss.NewStyle().Foreground(colorNeonPurple).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(colorTextSub)
	valueStyle = lipgloss.NewStyle().Foreground(colorNeonGreen).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	barStyle   = lipgloss.NewStyle().Foreground(colorNeonPurple)
)

// Render returns the console report: headline counts, both histograms,
// and the first CentralityPreviewCount closeness scores printed with
// 20-digit fixed precision.
func Render(s *engine.Summary, topRows int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("BASIC NETWORK ANALYSIS"))
	b.WriteString("\n")
	writeStat(&b, "Nodes", strconv.Itoa(s.NodeCount))
	writeStat(&b, "Edges", strconv.Itoa(s.EdgeCount))
	if s.Ingest.Malformed > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  %d malformed lines skipped", s.Ingest.Malformed)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("OUT-DEGREE DISTRIBUTION"))
	b.WriteString("\n")
	writeHistogram(&b, s.Degree, topRows)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("SECOND-DEGREE DISTRIBUTION"))
	b.WriteString("\n")
	writeHistogram(&b, s.SecondDegree, topRows)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("CLOSENESS CENTRALITY"))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  (first %d of %d)", previewLen(s), len(s.Centrality))))
	b.WriteString("\n")
	for i := 0; i < previewLen(s); i++ {
		b.WriteString(fmt.Sprintf("  Node %-4d %s\n", i, FormatScore(s.Centrality[i])))
	}

	return b.String()
}

// FormatScore renders a closeness score with high fixed-point
// precision, matching the 20-digit output of the reference tool.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 20, 64)
}

func previewLen(s *engine.Summary) int {
	if len(s.Centrality) < CentralityPreviewCount {
		return len(s.Centrality)
	}
	return CentralityPreviewCount
}

func writeStat(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value)))
}

// writeHistogram prints buckets in ascending order with a scaled bar,
// capped at topRows rows.
func writeHistogram(b *strings.Builder, h analysis.Histogram, topRows int) {
	if len(h) == 0 {
		b.WriteString(labelStyle.Render("  (empty graph)"))
		b.WriteString("\n")
		return
	}

	buckets := sortedBuckets(h)
	maxCount := 0
	for _, count := range h {
		if count > maxCount {
			maxCount = count
		}
	}

	rows := len(buckets)
	if topRows > 0 && rows > topRows {
		rows = topRows
	}
	for _, bucket := range buckets[:rows] {
		count := h[bucket]
		bar := strings.Repeat("█", scaled(count, maxCount))
		b.WriteString(fmt.Sprintf("  %6d │ %-8d %s\n", bucket, count, barStyle.Render(bar)))
	}
	if rows < len(buckets) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  … %d more buckets", len(buckets)-rows)))
		b.WriteString("\n")
	}
}

func scaled(count, maxCount int) int {
	if maxCount == 0 {
		return 0
	}
	w := count * barWidth / maxCount
	if w == 0 && count > 0 {
		w = 1
	}
	return w
}

func sortedBuckets(h analysis.Histogram) []int {
	buckets := make([]int, 0, len(h))
	for bucket := range h {
		buckets = append(buckets, bucket)
	}
	sort.Ints(buckets)
	return buckets
}
