// Package frequency tallies historical draws into ranked number lists.
package frequency

import (
	"errors"
	"fmt"
	"sort"

	"github.com/verte-zerg/megapick/internal/model"
)

// ErrInvalidDraw reports malformed historical draw data.
var ErrInvalidDraw = errors.New("invalid draw")

// DrawError describes the first malformed draw found during Build.
type DrawError struct {
	Index  int
	Draw   model.Draw
	Reason string
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("%s at index %d %v: %s", ErrInvalidDraw, e.Index, []int(e.Draw), e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidDraw.
func (e *DrawError) Unwrap() error {
	return ErrInvalidDraw
}

// Table holds occurrence counts and the derived most/least frequent lists.
// It is not modified after Build.
type Table struct {
	counts map[int]int
	ranked []model.NumberCount
	most   []int
	least  []int
	draws  int
}

// Build validates draws and derives the frequency table.
//
// Numbers are ranked by count descending. Ties keep first-seen order, so the
// result depends only on the input sequence.
func Build(draws []model.Draw) (*Table, error) {
	if len(draws) == 0 {
		return nil, fmt.Errorf("%w: no draws supplied", ErrInvalidDraw)
	}
	for i, d := range draws {
		if err := Validate(d); err != nil {
			return nil, &DrawError{Index: i, Draw: append(model.Draw(nil), d...), Reason: err.Error()}
		}
	}

	counts := make(map[int]int, model.MaxNumber)
	order := make([]int, 0, model.MaxNumber)
	for _, d := range draws {
		for _, n := range d {
			if _, seen := counts[n]; !seen {
				order = append(order, n)
			}
			counts[n]++
		}
	}

	ranked := make([]model.NumberCount, len(order))
	for i, n := range order {
		ranked[i] = model.NumberCount{Number: n, Count: counts[n]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	most := make([]int, 0, model.ComboSize)
	for i := 0; i < model.ComboSize; i++ {
		most = append(most, ranked[i].Number)
	}
	// Least common first: the ranking's tail read backwards.
	least := make([]int, 0, model.ComboSize)
	for i := len(ranked) - 1; i >= len(ranked)-model.ComboSize; i-- {
		least = append(least, ranked[i].Number)
	}

	return &Table{
		counts: counts,
		ranked: ranked,
		most:   most,
		least:  least,
		draws:  len(draws),
	}, nil
}

// Validate checks a single draw: size, range, and uniqueness.
func Validate(d model.Draw) error {
	if len(d) != model.ComboSize {
		return fmt.Errorf("each draw must have exactly %d numbers, got %d", model.ComboSize, len(d))
	}
	seen := make(map[int]struct{}, len(d))
	for _, n := range d {
		if n < model.MinNumber || n > model.MaxNumber {
			return fmt.Errorf("number %d outside %d-%d", n, model.MinNumber, model.MaxNumber)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("duplicate number %d", n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// MostFrequent returns the six most common numbers, most common first.
func (t *Table) MostFrequent() []int {
	return append([]int(nil), t.most...)
}

// LeastFrequent returns the six least common numbers, least common first.
func (t *Table) LeastFrequent() []int {
	return append([]int(nil), t.least...)
}

// Ranked returns every number seen with its count, most common first.
func (t *Table) Ranked() []model.NumberCount {
	return append([]model.NumberCount(nil), t.ranked...)
}

// Count returns how many draws contained n.
func (t *Table) Count(n int) int {
	return t.counts[n]
}

// Draws returns the number of draws tallied.
func (t *Table) Draws() int {
	return t.draws
}

// Distinct returns how many different numbers appeared.
func (t *Table) Distinct() int {
	return len(t.ranked)
}
