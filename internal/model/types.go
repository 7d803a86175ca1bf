// Package model defines shared data structures.
package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Number range and combination size for Mega-Sena picks.
const (
	MinNumber = 1
	MaxNumber = 60
	ComboSize = 6
)

// ErrInvalidArgument reports an unknown strategy or a non-positive count.
var ErrInvalidArgument = errors.New("invalid argument")

// Draw is one historical result. It may be malformed until validated.
type Draw []int

// Combination is a generated pick, sorted ascending.
type Combination [ComboSize]int

// String formats the combination as zero-padded numbers.
func (c Combination) String() string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(parts, " ")
}

// Strategy selects which numbers are eligible for sampling.
type Strategy int

// Supported strategies.
const (
	MostFrequent Strategy = iota
	LeastFrequent
	Mixed
	Random
)

// Strategies lists every strategy in display order.
var Strategies = []Strategy{MostFrequent, LeastFrequent, Mixed, Random}

// String returns the canonical strategy name.
func (s Strategy) String() string {
	switch s {
	case MostFrequent:
		return "most_frequent"
	case LeastFrequent:
		return "least_frequent"
	case Mixed:
		return "mixed"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Label returns a human-readable strategy name.
func (s Strategy) Label() string {
	switch s {
	case MostFrequent:
		return "Most frequent numbers"
	case LeastFrequent:
		return "Least frequent numbers"
	case Mixed:
		return "Mixed (3 most + 3 least)"
	case Random:
		return "Random"
	default:
		return s.String()
	}
}

// Valid reports whether s is one of the supported strategies.
func (s Strategy) Valid() bool {
	return s >= MostFrequent && s <= Random
}

// ParseStrategy maps a strategy name to its value.
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, s := range Strategies {
		if s.String() == normalized {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strategy %q (choose from %s)", ErrInvalidArgument, name, StrategyNames())
}

// StrategyNames returns the comma-separated list of strategy names.
func StrategyNames() string {
	names := make([]string, len(Strategies))
	for i, s := range Strategies {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}

// NumberCount pairs a number with how many times it appeared.
type NumberCount struct {
	Number int
	Count  int
}

// Analysis summarizes a batch of combinations.
type Analysis struct {
	Total     int
	Unique    int
	Frequency map[int]int
}

// Config defines resolved generation settings.
type Config struct {
	Strategy  Strategy
	Count     int
	Seed      int64
	HasSeed   bool
	DrawsPath string
	Color     bool
}

// Ranked returns numbers by appearance count descending, then number ascending.
func (a Analysis) Ranked() []NumberCount {
	out := make([]NumberCount, 0, len(a.Frequency))
	for n, c := range a.Frequency {
		out = append(out, NumberCount{Number: n, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Number < out[j].Number
		}
		return out[i].Count > out[j].Count
	})
	return out
}
