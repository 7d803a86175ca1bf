// Package generator builds lottery number combinations.
package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/verte-zerg/megapick/internal/frequency"
	"github.com/verte-zerg/megapick/internal/history"
	"github.com/verte-zerg/megapick/internal/model"
	statsPkg "github.com/verte-zerg/megapick/internal/stats"
)

// ErrInvalidArgument is returned for an unknown strategy or a count below 1.
var ErrInvalidArgument = model.ErrInvalidArgument

// Generator produces combinations from a fixed frequency table.
type Generator struct {
	rnd   *rand.Rand
	table *frequency.Table
	most  []int
	least []int
	all   []int
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes generation reproducible for the given seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses the provided source.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) {
		if rnd != nil {
			g.rnd = rnd
		}
	}
}

// New builds a Generator from historical draws. A nil slice selects the
// built-in table. The default source is seeded with the current time.
func New(draws []model.Draw, opts ...Option) (*Generator, error) {
	if draws == nil {
		draws = history.Default()
	}
	table, err := frequency.Build(draws)
	if err != nil {
		return nil, err
	}
	all := make([]int, 0, model.MaxNumber-model.MinNumber+1)
	for n := model.MinNumber; n <= model.MaxNumber; n++ {
		all = append(all, n)
	}
	g := &Generator{
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		table: table,
		most:  table.MostFrequent(),
		least: table.LeastFrequent(),
		all:   all,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate returns count sorted combinations built with strategy.
func (g *Generator) Generate(strategy model.Strategy, count int) ([]model.Combination, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: number of combinations must be at least 1, got %d", ErrInvalidArgument, count)
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: unknown strategy %s (choose from %s)", ErrInvalidArgument, strategy, model.StrategyNames())
	}
	result := make([]model.Combination, 0, count)
	for i := 0; i < count; i++ {
		var picks []int
		switch strategy {
		case model.MostFrequent:
			picks = sample(g.rnd, g.most, model.ComboSize)
		case model.LeastFrequent:
			picks = sample(g.rnd, g.least, model.ComboSize)
		case model.Mixed:
			picks = g.mixed()
		case model.Random:
			picks = sample(g.rnd, g.all, model.ComboSize)
		}
		result = append(result, toCombination(picks))
	}
	return result, nil
}

// Analyze summarizes a batch of combinations.
func (g *Generator) Analyze(combos []model.Combination) model.Analysis {
	return statsPkg.Analyze(combos)
}

// MostFrequent returns the most frequent historical numbers.
func (g *Generator) MostFrequent() []int {
	return append([]int(nil), g.most...)
}

// LeastFrequent returns the least frequent historical numbers.
func (g *Generator) LeastFrequent() []int {
	return append([]int(nil), g.least...)
}

// Table returns the frequency table the generator was built from.
func (g *Generator) Table() *frequency.Table {
	return g.table
}

// mixed takes half from the most frequent list and half from the least
// frequent list. Numbers already picked are excluded from the second half
// because the two lists overlap when history holds few distinct numbers.
func (g *Generator) mixed() []int {
	half := model.ComboSize / 2
	picks := sample(g.rnd, g.most, half)
	taken := make(map[int]struct{}, len(picks))
	for _, n := range picks {
		taken[n] = struct{}{}
	}
	rest := make([]int, 0, len(g.least))
	for _, n := range g.least {
		if _, ok := taken[n]; !ok {
			rest = append(rest, n)
		}
	}
	picks = append(picks, sample(g.rnd, rest, model.ComboSize-half)...)
	g.rnd.Shuffle(len(picks), func(i, j int) {
		picks[i], picks[j] = picks[j], picks[i]
	})
	return picks
}

// sample draws k values from pool without replacement using a partial
// Fisher-Yates shuffle over a copy.
func sample(rnd *rand.Rand, pool []int, k int) []int {
	buf := append([]int(nil), pool...)
	if k > len(buf) {
		k = len(buf)
	}
	for i := 0; i < k; i++ {
		j := i + rnd.Intn(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:k]
}

func toCombination(picks []int) model.Combination {
	sort.Ints(picks)
	var c model.Combination
	copy(c[:], picks)
	return c
}
