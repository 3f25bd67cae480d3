package reconcile

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type gear struct {
	ID int
}

type gearStore struct{}

func (gearStore) Retrieve(ctx context.Context, id int) (gear, error) { return gear{ID: id}, nil }
func (gearStore) Save(ctx context.Context, g gear) error             { return nil }

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "scalar", StrategyScalar.String())
	assert.Equal(t, "debug", StrategyDebug.String())
	assert.Equal(t, "sorted_set", StrategySortedSet.String())
}

func TestIDSet_ApplyIsIdempotent(t *testing.T) {
	f := IDSet("parts", partsLens, Conversion[int]{Successes: []int{5, 1}})
	w := widget{Parts: []int{1, 1, 8}}

	f.Apply(&w)
	assert.Equal(t, []int{1, 5}, w.Parts)
	f.Apply(&w)
	assert.Equal(t, []int{1, 5}, w.Parts)
	assert.True(t, f.Compare(w).Matched)
}

func TestCross_Repair(t *testing.T) {
	ctx := context.Background()
	// Widgets 1 and 2 list gear 10 in their parts; widget 3 does not.
	widgets := newMemStore(
		widget{ID: 1, Parts: []int{10}},
		widget{ID: 2, Parts: []int{4, 10}},
		widget{ID: 3, Parts: []int{4}},
	)
	cache := map[int]widget{}
	for id, w := range widgets.rows {
		cache[id] = w
	}

	holders := func(g gear) []int {
		var ids []int
		for id, w := range cache {
			if slices.Contains(w.Parts, g.ID) {
				ids = append(ids, id)
			}
		}
		return ids
	}

	field := Cross("holders", CrossConfig[gear, widget]{
		Kind:    "widget",
		ID:      func(g gear) int { return g.ID },
		Holders: holders,
		Store:   widgets,
		Lens:    partsLens,
		Refresh: func(w widget) { cache[w.ID] = w },
	}, Conversion[int]{Successes: []int{3, 1}})

	entity := gear{ID: 10}
	d := field.Compare(entity)
	assert.False(t, d.Matched)
	assert.Equal(t, []int{1, 2}, d.Actual)
	assert.Equal(t, []int{1, 3}, d.Expected)

	checker := &Checker[gear]{
		Kind:   "gear",
		Store:  gearStore{},
		ID:     func(g gear) int { return g.ID },
		Logger: zap.NewNop(),
		Fix:    true,
	}
	out, err := checker.Check(ctx, &entity, []Field[gear]{field})
	require.NoError(t, err)
	assert.Equal(t, []string{"holders"}, out.Fixed)

	assert.Equal(t, []int{10}, widgets.rows[1].Parts)
	assert.Equal(t, []int{4}, widgets.rows[2].Parts)
	assert.Equal(t, []int{4, 10}, widgets.rows[3].Parts)
	assert.Len(t, widgets.saves, 2, "widget 1 already held the gear")
}

func TestCross_SkipsAlreadyApplied(t *testing.T) {
	ctx := context.Background()
	// The store was already updated by an earlier partial run, the cache was not.
	widgets := newMemStore(widget{ID: 1, Parts: []int{10}})

	field := Cross("holders", CrossConfig[gear, widget]{
		Kind:    "widget",
		ID:      func(g gear) int { return g.ID },
		Holders: func(gear) []int { return nil },
		Store:   widgets,
		Lens:    partsLens,
	}, Conversion[int]{Successes: []int{1}})

	err := field.Repair(ctx, gear{ID: 10}, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, widgets.saves)
}

func TestCross_RefreshesWhenAlreadyApplied(t *testing.T) {
	ctx := context.Background()
	widgets := newMemStore(widget{ID: 1, Parts: []int{10}})
	cache := map[int]widget{1: {ID: 1}}

	field := Cross("holders", CrossConfig[gear, widget]{
		Kind: "widget",
		ID:   func(g gear) int { return g.ID },
		Holders: func(g gear) []int {
			if slices.Contains(cache[1].Parts, g.ID) {
				return []int{1}
			}
			return nil
		},
		Store:   widgets,
		Lens:    partsLens,
		Refresh: func(w widget) { cache[w.ID] = w },
	}, Conversion[int]{Successes: []int{1}})

	checker := &Checker[gear]{
		Kind:   "gear",
		Store:  gearStore{},
		ID:     func(g gear) int { return g.ID },
		Logger: zap.NewNop(),
		Fix:    true,
	}
	entity := gear{ID: 10}
	out, err := checker.Check(ctx, &entity, []Field[gear]{field})
	require.NoError(t, err)

	assert.Empty(t, widgets.saves)
	assert.Equal(t, []int{10}, cache[1].Parts)
	assert.Equal(t, []string{"holders"}, out.Fixed)
	assert.Empty(t, out.Unfixed)
}

func TestGuarded(t *testing.T) {
	t.Run("Resolved", func(t *testing.T) {
		conv := Conversion[int]{Successes: []int{5}, Failures: []string{}}
		f := Guarded(Scalar("level", levelLens, 5), conv)

		w := widget{Level: 2}
		assert.False(t, f.Compare(w).Matched)
		f.Apply(&w)
		assert.Equal(t, 5, w.Level)
	})

	t.Run("Partial", func(t *testing.T) {
		conv := Conversion[int]{Successes: []int{}, Failures: []string{"/spells/new/"}}
		f := Guarded(Scalar("level", levelLens, 0), conv)

		w := widget{Level: 3}
		d := f.Compare(w)
		assert.True(t, d.Matched)
		assert.Equal(t, []string{"/spells/new/"}, d.Unresolved)
		assert.Equal(t, "level", f.Name())

		f.Apply(&w)
		assert.Equal(t, 3, w.Level, "an unresolved value is never written")
	})
}
