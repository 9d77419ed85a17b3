// Package sort implements the sorting algorithms exercised by the lapbench
// driver.
package sort

import "cmp"

// Insertion sorts a in place in ascending order.
func Insertion[T cmp.Ordered](a []T) {
	InsertionRange(a, 0, len(a))
}

// InsertionRange sorts a[lo:hi] in place in ascending order, leaving the
// rest of the slice untouched. Out-of-range bounds are clamped.
func InsertionRange[T cmp.Ordered](a []T, lo, hi int) {
	lo = max(lo, 0)
	hi = min(hi, len(a))
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

// IsSorted reports whether a is in ascending order.
func IsSorted[T cmp.Ordered](a []T) bool {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return false
		}
	}
	return true
}
