package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/megapick/internal/frequency"
	"github.com/verte-zerg/megapick/internal/history"
	"github.com/verte-zerg/megapick/internal/model"
)

// RenderOptions controls report output.
type RenderOptions struct {
	// ForceColor enables ANSI bars even when w is not a terminal.
	ForceColor bool
}

// RenderBatch prints generated combinations followed by their analysis.
func RenderBatch(w io.Writer, strategy model.Strategy, combos []model.Combination, analysis model.Analysis, opts RenderOptions) error {
	useColor := shouldUseColor(w, opts.ForceColor)
	lines := []string{
		fmt.Sprintf("Strategy: %s", strategy),
		fmt.Sprintf("Combinations: %d", len(combos)),
		"",
		"Generated Combinations",
	}
	for i, c := range combos {
		lines = append(lines, fmt.Sprintf("%3d. %s", i+1, c))
	}
	lines = append(lines,
		"",
		"Analysis",
		fmt.Sprintf("Total: %d", analysis.Total),
		fmt.Sprintf("Unique: %d", analysis.Unique),
		"",
	)
	lines = append(lines, frequencyLines(analysis, useColor)...)
	return writeLines(w, lines)
}

func frequencyLines(analysis model.Analysis, useColor bool) []string {
	ranked := analysis.Ranked()
	if len(ranked) == 0 {
		return []string{"No numbers generated."}
	}
	maxCount := ranked[0].Count
	rows := make([][]string, 0, len(ranked))
	for _, nc := range ranked {
		share := 0.0
		if analysis.Total > 0 {
			share = float64(nc.Count) / float64(analysis.Total) * 100
		}
		rows = append(rows, []string{
			fmt.Sprintf("%02d", nc.Number),
			strconv.Itoa(nc.Count),
			fmt.Sprintf("%.1f%%", share),
			bar(nc.Count, maxCount, useColor),
		})
	}
	out := []string{"Number Frequency"}
	out = append(out, formatTable([]string{"Number", "Times", "Share", ""}, rows, map[int]bool{1: true, 2: true})...)
	return out
}

// RenderFrequencyTable prints the historical ranking and derived lists.
func RenderFrequencyTable(w io.Writer, table *frequency.Table, opts RenderOptions) error {
	useColor := shouldUseColor(w, opts.ForceColor)
	ranked := table.Ranked()
	lines := []string{
		fmt.Sprintf("Historical Frequency (%d draws, %d distinct numbers)", table.Draws(), table.Distinct()),
		fmt.Sprintf("Most frequent:  %s", joinNumbers(table.MostFrequent())),
		fmt.Sprintf("Least frequent: %s", joinNumbers(table.LeastFrequent())),
		"",
	}
	maxCount := 0
	if len(ranked) > 0 {
		maxCount = ranked[0].Count
	}
	rows := make([][]string, 0, len(ranked))
	for i, nc := range ranked {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%02d", nc.Number),
			strconv.Itoa(nc.Count),
			bar(nc.Count, maxCount, useColor),
		})
	}
	lines = append(lines, formatTable([]string{"Rank", "Number", "Draws", ""}, rows, map[int]bool{0: true, 2: true})...)
	return writeLines(w, lines)
}

// RenderDraws prints the historical draws in use.
func RenderDraws(w io.Writer, entries []history.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No draws found.")
		return err
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Label, joinNumbers(e.Draw)})
	}
	return writeLines(w, formatTable([]string{"Draw", "Numbers"}, rows, nil))
}

func joinNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(parts, " ")
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
