// Package history provides historical Mega-Sena draws.
package history

import (
	"strconv"

	"github.com/verte-zerg/megapick/internal/model"
)

// Entry is a historical draw with a display label.
type Entry struct {
	Label string
	Draw  model.Draw
}

// Year-end (31 December) results, newest first.
var defaultDraws = [...]struct {
	year    int
	numbers [model.ComboSize]int
}{
	{2024, [model.ComboSize]int{1, 17, 19, 29, 50, 57}},
	{2023, [model.ComboSize]int{21, 24, 33, 41, 45, 56}},
	{2022, [model.ComboSize]int{4, 5, 10, 34, 58, 59}},
	{2021, [model.ComboSize]int{12, 15, 23, 32, 33, 46}},
	{2020, [model.ComboSize]int{17, 20, 22, 35, 41, 42}},
	{2019, [model.ComboSize]int{3, 35, 38, 40, 57, 58}},
	{2018, [model.ComboSize]int{5, 10, 12, 18, 25, 33}},
	{2017, [model.ComboSize]int{3, 6, 10, 17, 34, 37}},
	{2016, [model.ComboSize]int{5, 11, 22, 24, 51, 53}},
	{2015, [model.ComboSize]int{2, 18, 31, 42, 51, 56}},
	{2014, [model.ComboSize]int{1, 5, 11, 16, 20, 56}},
	{2013, [model.ComboSize]int{20, 30, 36, 38, 47, 53}},
	{2012, [model.ComboSize]int{14, 32, 33, 36, 41, 52}},
	{2011, [model.ComboSize]int{3, 4, 29, 36, 45, 55}},
	{2010, [model.ComboSize]int{2, 10, 34, 37, 43, 50}},
	{2009, [model.ComboSize]int{10, 27, 40, 46, 49, 58}},
}

// Default returns a fresh copy of the built-in draw table.
func Default() []model.Draw {
	return Draws(DefaultEntries())
}

// DefaultEntries returns the built-in draw table labeled by year.
func DefaultEntries() []Entry {
	entries := make([]Entry, len(defaultDraws))
	for i, d := range defaultDraws {
		draw := make(model.Draw, len(d.numbers))
		copy(draw, d.numbers[:])
		entries[i] = Entry{Label: strconv.Itoa(d.year), Draw: draw}
	}
	return entries
}

// Draws strips labels from entries.
func Draws(entries []Entry) []model.Draw {
	draws := make([]model.Draw, len(entries))
	for i, e := range entries {
		draws[i] = e.Draw
	}
	return draws
}
