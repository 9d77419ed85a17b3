// Package dataset generates the integer arrays the lapbench driver feeds to
// the algorithms it measures.
package dataset

import (
	"math/rand"
	"slices"

	"github.com/MeKo-Tech/lapbench/internal/sort"
)

// Random returns n integers drawn uniformly from [0, bound).
func Random(r *rand.Rand, n, bound int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = r.Intn(bound)
	}
	return a
}

// PartiallyOrdered returns a copy of a with its second half sorted.
func PartiallyOrdered(a []int) []int {
	b := slices.Clone(a)
	sort.InsertionRange(b, len(b)/2, len(b))
	return b
}

// Ordered returns a sorted copy of a.
func Ordered(a []int) []int {
	b := slices.Clone(a)
	slices.Sort(b)
	return b
}

// ReverseOrdered returns a copy of a sorted in descending order.
func ReverseOrdered(a []int) []int {
	b := Ordered(a)
	slices.Reverse(b)
	return b
}
