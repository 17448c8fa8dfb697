// Package sorting implements comparator-driven merge sort and quicksort.
//
// Every entry point takes a three-way Comparator and returns a newly allocated slice;
// inputs are never modified. The *Ordered variants default to ascending natural order.
package sorting

// Merge combines xs and ys, each already sorted according to c, into a new sorted slice
// holding every element of both in O(len(xs)+len(ys)) time.
// When an element of xs and an element of ys compare equal, the xs element comes first,
// so merging two runs of a stable sort keeps it stable. Equal elements are never dropped.
func Merge[E any](xs, ys []E, c Comparator[E]) []E {
	out := make([]E, 0, len(xs)+len(ys))
	i, j := 0, 0
	for i < len(xs) && j < len(ys) {
		if c(xs[i], ys[j]) <= 0 {
			out = append(out, xs[i])
			i++
		} else {
			out = append(out, ys[j])
			j++
		}
	}
	// at most one of these has anything left
	out = append(out, xs[i:]...)
	out = append(out, ys[j:]...)
	return out
}

// MergeAll merges any number of runs, each sorted according to c, into one new sorted slice.
// Runs are merged pairwise in rounds, so the cost is O(n log k) for k runs.
// Ties are resolved in favour of the run that appears earlier in runs.
func MergeAll[E any](runs [][]E, c Comparator[E]) []E {
	if len(runs) == 0 {
		return []E{}
	}
	round := runs
	for len(round) > 1 {
		next := make([][]E, 0, (len(round)+1)/2)
		for i := 0; i < len(round); i += 2 {
			if i+1 == len(round) {
				next = append(next, round[i])
				break
			}
			next = append(next, Merge(round[i], round[i+1], c))
		}
		round = next
	}
	// a single run was never merged, so copy it
	return append(make([]E, 0, len(round[0])), round[0]...)
}
