package reconcile

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedDiff(t *testing.T) {
	tests := []struct {
		name  string
		a, b  []int
		wantA []int
		wantB []int
	}{
		{"Identical", []int{1, 2, 3}, []int{1, 2, 3}, []int{}, []int{}},
		{"BothEmpty", nil, nil, []int{}, []int{}},
		{"RightEmpty", []int{1, 4}, nil, []int{1, 4}, []int{}},
		{"LeftEmpty", nil, []int{2, 5}, []int{}, []int{2, 5}},
		{"Interleaved", []int{1, 3, 5, 7}, []int{2, 3, 6, 7, 9}, []int{1, 5}, []int{2, 6, 9}},
		{"Disjoint", []int{1, 2}, []int{3, 4}, []int{1, 2}, []int{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onlyA, onlyB := SortedDiff(tt.a, tt.b)
			assert.Equal(t, tt.wantA, onlyA)
			assert.Equal(t, tt.wantB, onlyB)
		})
	}
}

func TestSortedDiff_Partition(t *testing.T) {
	a := []string{"Blind", "Burning", "Frozen", "Poisoned"}
	b := []string{"Asleep", "Burning", "Poisoned", "Stunned"}

	onlyA, onlyB := SortedDiff(a, b)

	shared := []string{}
	for _, v := range a {
		if !slices.Contains(onlyA, v) {
			shared = append(shared, v)
		}
	}
	for _, v := range onlyA {
		assert.NotContains(t, onlyB, v)
		assert.NotContains(t, shared, v)
	}

	rebuiltA := append(slices.Clone(onlyA), shared...)
	slices.Sort(rebuiltA)
	assert.Equal(t, a, rebuiltA)

	rebuiltB := append(slices.Clone(onlyB), shared...)
	slices.Sort(rebuiltB)
	assert.Equal(t, b, rebuiltB)
}
