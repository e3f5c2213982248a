package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentic-research/faceplate/internal/bundle"
	"github.com/agentic-research/faceplate/internal/svgopt"
	"github.com/agentic-research/faceplate/internal/validate"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)
)

func renderValidation(project string, res validate.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(project) + "\n")
	if res.Valid {
		b.WriteString(okStyle.Render("✓ ready to export") + "\n")
	}
	for _, e := range res.Errors {
		b.WriteString(errorStyle.Render("✗ "+e.String()) + "\n")
	}
	for _, w := range res.Warnings {
		b.WriteString(warnStyle.Render("! "+w.String()) + "\n")
	}
	if !res.Valid {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d error(s), %d warning(s)", len(res.Errors), len(res.Warnings))) + "\n")
	}
	return b.String()
}

func renderMetrics(m bundle.Metrics) string {
	lines := []string{
		fmt.Sprintf("windows   %d", m.Windows),
		fmt.Sprintf("files     %d", m.FileCount),
		fmt.Sprintf("bytes     %d", m.TotalBytes),
	}
	if m.ArchiveBytes > 0 {
		lines = append(lines, fmt.Sprintf("archive   %d", m.ArchiveBytes))
	}
	if m.Optimized {
		lines = append(lines, fmt.Sprintf("svg       %d -> %d (%.1f%% saved)",
			m.OriginalSVGBytes, m.OptimizedSVGBytes, m.SavingsPercent))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func renderExport(res bundle.Result) string {
	var b strings.Builder
	if !res.OK {
		b.WriteString(errorStyle.Render(res.Message) + "\n")
		return b.String()
	}
	b.WriteString(okStyle.Render(res.Message) + "\n")
	for _, w := range res.Warnings {
		b.WriteString(warnStyle.Render("! "+w) + "\n")
	}
	if res.Metrics != nil {
		b.WriteString(renderMetrics(*res.Metrics) + "\n")
	}
	return b.String()
}

type optimized struct {
	file   string
	result svgopt.Result
	err    error
}

func renderOptimize(rows []optimized, total svgopt.BatchResult) string {
	var b strings.Builder
	for _, r := range rows {
		if r.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("%s: %v", r.file, r.err)) + "\n")
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", r.file, dimStyle.Render(fmt.Sprintf("%d -> %d bytes (%.1f%%)",
			r.result.OriginalBytes, r.result.OptimizedBytes, r.result.SavingsPercent)))
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("total %d -> %d bytes (%.1f%% saved)",
		total.TotalOriginalBytes, total.TotalOptimizedBytes, total.SavingsPercent)) + "\n")
	return b.String()
}
