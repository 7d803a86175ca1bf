package frequency

import (
	"errors"
	"testing"

	"github.com/verte-zerg/megapick/internal/history"
	"github.com/verte-zerg/megapick/internal/model"
)

func TestBuildTwoDrawExample(t *testing.T) {
	table, err := Build([]model.Draw{
		{1, 2, 3, 4, 5, 6},
		{1, 2, 3, 4, 5, 7},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for n := 1; n <= 5; n++ {
		if got := table.Count(n); got != 2 {
			t.Fatalf("expected count 2 for %d, got %d", n, got)
		}
	}
	if table.Count(6) != 1 || table.Count(7) != 1 {
		t.Fatalf("expected count 1 for 6 and 7")
	}
	if table.Count(8) != 0 {
		t.Fatalf("expected count 0 for unseen number")
	}
	assertInts(t, "most", table.MostFrequent(), []int{1, 2, 3, 4, 5, 6})
	assertInts(t, "least", table.LeastFrequent(), []int{7, 6, 5, 4, 3, 2})
	if table.Draws() != 2 || table.Distinct() != 7 {
		t.Fatalf("unexpected draws/distinct: %d/%d", table.Draws(), table.Distinct())
	}
}

func TestBuildDefaultTable(t *testing.T) {
	table, err := Build(history.Default())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	assertInts(t, "most", table.MostFrequent(), []int{10, 33, 5, 17, 41, 56})
	assertInts(t, "least", table.LeastFrequent(), []int{49, 27, 43, 55, 52, 14})

	if table.Distinct() <= 2*model.ComboSize {
		t.Fatalf("expected more than 12 distinct numbers, got %d", table.Distinct())
	}
	mostSet := map[int]struct{}{}
	for _, n := range table.MostFrequent() {
		mostSet[n] = struct{}{}
	}
	for _, n := range table.LeastFrequent() {
		if _, ok := mostSet[n]; ok {
			t.Fatalf("number %d in both lists", n)
		}
	}
}

func TestBuildListsHaveSixDistinct(t *testing.T) {
	inputs := [][]model.Draw{
		{{1, 2, 3, 4, 5, 6}},
		{{1, 2, 3, 4, 5, 6}, {1, 2, 3, 4, 5, 7}},
		history.Default(),
	}
	for i, draws := range inputs {
		table, err := Build(draws)
		if err != nil {
			t.Fatalf("case %d: build: %v", i, err)
		}
		for name, list := range map[string][]int{"most": table.MostFrequent(), "least": table.LeastFrequent()} {
			if len(list) != model.ComboSize {
				t.Fatalf("case %d: %s has %d numbers", i, name, len(list))
			}
			seen := map[int]struct{}{}
			for _, n := range list {
				if _, dup := seen[n]; dup {
					t.Fatalf("case %d: %s has duplicate %d", i, name, n)
				}
				seen[n] = struct{}{}
			}
		}
	}
}

func TestBuildRankedOrder(t *testing.T) {
	table, err := Build([]model.Draw{
		{9, 8, 7, 6, 5, 4},
		{1, 2, 3, 4, 5, 6},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	ranked := table.Ranked()
	want := []int{6, 5, 4, 9, 8, 7, 1, 2, 3}
	if len(ranked) != len(want) {
		t.Fatalf("expected %d ranked numbers, got %d", len(want), len(ranked))
	}
	for i, n := range want {
		if ranked[i].Number != n {
			t.Fatalf("position %d: expected %d, got %d (%v)", i, n, ranked[i].Number, ranked)
		}
	}
}

func TestBuildInvalidDraws(t *testing.T) {
	cases := []struct {
		name  string
		draws []model.Draw
	}{
		{name: "empty set", draws: nil},
		{name: "too few", draws: []model.Draw{{1, 2, 3, 4, 5}}},
		{name: "too many", draws: []model.Draw{{1, 2, 3, 4, 5, 6, 7}}},
		{name: "zero", draws: []model.Draw{{0, 2, 3, 4, 5, 6}}},
		{name: "above max", draws: []model.Draw{{1, 2, 3, 4, 5, 61}}},
		{name: "duplicate", draws: []model.Draw{{1, 2, 3, 4, 5, 5}}},
		{name: "second draw bad", draws: []model.Draw{{1, 2, 3, 4, 5, 6}, {1, 1, 2, 3, 4, 5}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := Build(tc.draws)
			if err == nil {
				t.Fatalf("expected error")
			}
			if table != nil {
				t.Fatalf("expected no table on error")
			}
			if !errors.Is(err, ErrInvalidDraw) {
				t.Fatalf("expected ErrInvalidDraw, got %v", err)
			}
		})
	}
}

func TestBuildReportsDrawIndex(t *testing.T) {
	_, err := Build([]model.Draw{{1, 2, 3, 4, 5, 6}, {1, 2, 3, 4, 5, 99}})
	var drawErr *DrawError
	if !errors.As(err, &drawErr) {
		t.Fatalf("expected *DrawError, got %v", err)
	}
	if drawErr.Index != 1 {
		t.Fatalf("expected index 1, got %d", drawErr.Index)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	table, err := Build(history.Default())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	most := table.MostFrequent()
	most[0] = -1
	if table.MostFrequent()[0] != 10 {
		t.Fatalf("most frequent list was mutated")
	}
	least := table.LeastFrequent()
	least[0] = -1
	if table.LeastFrequent()[0] != 49 {
		t.Fatalf("least frequent list was mutated")
	}
}

func assertInts(t *testing.T, name string, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: expected %v, got %v", name, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: expected %v, got %v", name, want, got)
		}
	}
}
