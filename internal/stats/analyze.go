// Package stats contains batch analysis and text reporting.
package stats

import (
	"sort"

	"github.com/verte-zerg/megapick/internal/model"
)

// Analyze counts combinations, distinct combinations, and per-number
// appearances. Numbers that never appear are omitted.
func Analyze(combos []model.Combination) model.Analysis {
	analysis := model.Analysis{Frequency: map[int]int{}}
	if len(combos) == 0 {
		return analysis
	}
	unique := make(map[model.Combination]struct{}, len(combos))
	for _, c := range combos {
		unique[canonical(c)] = struct{}{}
		for _, n := range c {
			analysis.Frequency[n]++
		}
	}
	analysis.Total = len(combos)
	analysis.Unique = len(unique)
	return analysis
}

// canonical sorts a copy so equal sets compare equal.
func canonical(c model.Combination) model.Combination {
	sort.Ints(c[:])
	return c
}
