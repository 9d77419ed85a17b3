package sort

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertion(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{5}, []int{5}},
		{"sorted", []int{1, 2, 3}, []int{1, 2, 3}},
		{"reversed", []int{3, 2, 1}, []int{1, 2, 3}},
		{"duplicates", []int{2, 1, 2, 1}, []int{1, 1, 2, 2}},
		{"negative", []int{0, -3, 7, -1}, []int{-3, -1, 0, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := slices.Clone(tt.in)
			Insertion(a)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestInsertionStrings(t *testing.T) {
	a := []string{"pear", "apple", "orange"}
	Insertion(a)
	assert.Equal(t, []string{"apple", "orange", "pear"}, a)
}

func TestInsertionRange(t *testing.T) {
	a := []int{9, 8, 5, 3, 1}
	InsertionRange(a, 2, 5)
	assert.Equal(t, []int{9, 8, 1, 3, 5}, a)
}

func TestInsertionRangeClampsBounds(t *testing.T) {
	a := []int{3, 1, 2}
	InsertionRange(a, -5, 100)
	assert.Equal(t, []int{1, 2, 3}, a)
}

func TestInsertionRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1)) //nolint:gosec // G404: Test data only
	a := make([]int, 500)
	for i := range a {
		a[i] = r.Intn(1000)
	}

	Insertion(a)
	assert.True(t, IsSorted(a))
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted([]int{}))
	assert.True(t, IsSorted([]int{1}))
	assert.True(t, IsSorted([]int{1, 1, 2}))
	assert.False(t, IsSorted([]int{2, 1}))
}

func BenchmarkInsertion(b *testing.B) {
	r := rand.New(rand.NewSource(1)) //nolint:gosec // G404: Benchmark data only
	a := make([]int, 1000)
	for i := range a {
		a[i] = r.Intn(1000)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Insertion(slices.Clone(a))
	}
}
