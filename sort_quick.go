package sorting

import (
	"slices"

	"github.com/golang/glog"
)

// QuickSort returns a new slice holding the elements of xs sorted according to c,
// using the default configuration: a pivot drawn from the process-wide random source
// and MergeSort for the less-than and greater-than buckets.
// Elements equal to the pivot keep their input order; other ties are ordered
// stably by MergeSort. xs is not modified.
func QuickSort[E any](xs []E, c Comparator[E]) []E {
	d := DefaultConfig()
	return quickSort(xs, c, d.Pivot, d.Recursion)
}

// quickSort partitions xs around a pivot chosen by pivot and concatenates the sorted
// less-than bucket, the equal-to bucket and the sorted greater-than bucket.
// It panics with a *PivotError if pivot returns an index outside [0, len(xs)).
func quickSort[E any](xs []E, c Comparator[E], pivot PivotFunc, rec Recursion) []E {
	if len(xs) <= 1 {
		return slices.Clone(xs)
	}

	p := pivot(len(xs))
	if p < 0 || p >= len(xs) {
		panic(&PivotError{Index: p, Len: len(xs)})
	}
	less, equal, greater := partition(xs, p, c)
	if glog.V(3) {
		glog.Infof("quicksort: pivot %d of %d, buckets lt=%d eq=%d gt=%d", p, len(xs), len(less), len(equal), len(greater))
	}

	switch rec {
	case QuickRecursion:
		less = quickSort(less, c, pivot, rec)
		greater = quickSort(greater, c, pivot, rec)
	default:
		less = MergeSort(less, c)
		greater = MergeSort(greater, c)
	}

	out := make([]E, 0, len(xs))
	out = append(out, less...)
	out = append(out, equal...)
	out = append(out, greater...)
	return out
}

// partition scans xs once and copies each element into the bucket matching its
// comparison with xs[p]. The pivot itself always lands in equal exactly once, so both
// other buckets are strictly shorter than xs even for a comparator that is not reflexive.
func partition[E any](xs []E, p int, c Comparator[E]) (less, equal, greater []E) {
	pv := xs[p]
	for i, x := range xs {
		if i == p {
			equal = append(equal, x)
			continue
		}
		switch r := c(x, pv); {
		case r < 0:
			less = append(less, x)
		case r > 0:
			greater = append(greater, x)
		default:
			equal = append(equal, x)
		}
	}
	return less, equal, greater
}
