package sorting

import "cmp"

// MergeOrdered merges two ascending slices of cmp.Ordered values.
// It is Merge with the Standard comparator.
func MergeOrdered[T cmp.Ordered](xs, ys []T) []T {
	return Merge(xs, ys, Standard[T])
}

// MergeSortOrdered sorts cmp.Ordered values in ascending order with MergeSort.
func MergeSortOrdered[T cmp.Ordered](xs []T) []T {
	return MergeSort(xs, Standard[T])
}

// QuickSortOrdered sorts cmp.Ordered values in ascending order with QuickSort.
func QuickSortOrdered[T cmp.Ordered](xs []T) []T {
	return QuickSort(xs, Standard[T])
}

// NewOrdered creates a Sorter for cmp.Ordered values using the Standard comparator.
func NewOrdered[T cmp.Ordered](config *Config) (*Sorter[T], error) {
	return New(Standard[T], config)
}
