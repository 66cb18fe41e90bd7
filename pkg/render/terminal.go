// Package render formats score results, history series, and trend reports
// for terminal and JSON output.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vitalscope/vitalscope/pkg/history"
	"github.com/vitalscope/vitalscope/pkg/scoring"
)

// TerminalRenderer renders results as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func scoreColor(score int) string {
	if noColor() {
		return ""
	}
	switch {
	case score >= 75:
		return colorGreen
	case score >= 40:
		return colorYellow
	default:
		return colorRed
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

// RenderScore prints a score result with its per-factor breakdown.
func (r *TerminalRenderer) RenderScore(w io.Writer, result *scoring.ScoreResult) error {
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Vitalscope: %s scored %s/100 on %s",
			result.UserID,
			colored(fmt.Sprintf("%d", result.Score), scoreColor(result.Score)),
			result.Date)))

	if len(result.Breakdown) > 0 {
		fmt.Fprintln(w, "Breakdown:")
		for _, fr := range result.Breakdown {
			fmt.Fprintf(w, "  (%2d/%2d) %s\n", fr.Points, fr.Max, bold(fr.Name))
			fmt.Fprintf(w, "          %s\n", dim(fr.Feedback))
		}
		fmt.Fprintln(w)
		return nil
	}

	for _, line := range wrapText(result.Feedback, 76) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
	return nil
}

// RenderHistory prints a metric series as a date/value table.
func (r *TerminalRenderer) RenderHistory(w io.Writer, metric string, points []history.Point) error {
	if len(points) == 0 {
		fmt.Fprintf(w, "No %s records in this window.\n", metric)
		return nil
	}
	fmt.Fprintf(w, "%s\n", bold(metric))
	for _, p := range points {
		fmt.Fprintf(w, "  %s  %8.1f\n", p.Date, p.Value)
	}
	return nil
}

// RenderTrends prints the trend narrative.
func (r *TerminalRenderer) RenderTrends(w io.Writer, report *history.TrendReport) error {
	if report == nil {
		fmt.Fprintln(w, "Not enough data for insights yet; log at least three days of metrics.")
		return nil
	}
	for _, line := range strings.Split(strings.TrimRight(report.Narrative(), "\n"), "\n") {
		if strings.Contains(line, "needs attention") {
			fmt.Fprintln(w, colored(line, colorYellow))
		} else {
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
