package sorting

import "slices"

// MergeSort returns a new slice holding the elements of xs sorted according to c.
//
// The slice is split at len(xs)/2 (the left half is the smaller one for odd lengths),
// both halves are sorted recursively and then combined with Merge.
// The sort is deterministic and stable: elements comparing equal keep their input order.
// It runs in O(n log n) time and allocates O(n) per level of recursion.
// xs is not modified.
func MergeSort[E any](xs []E, c Comparator[E]) []E {
	if len(xs) <= 1 {
		return slices.Clone(xs)
	}
	return mergeSort(xs, c)
}

// mergeSort only reads from xs; the halves are views and every merge allocates a new slice
func mergeSort[E any](xs []E, c Comparator[E]) []E {
	if len(xs) <= 1 {
		return xs
	}
	mid := len(xs) / 2
	left := mergeSort(xs[:mid], c)
	right := mergeSort(xs[mid:], c)
	return Merge(left, right, c)
}
