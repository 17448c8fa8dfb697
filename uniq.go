package sorting

// Uniq returns a new slice with consecutive duplicates of xs removed, where two elements
// are duplicates when c reports them equal. The first element of each run is kept.
// On a slice sorted by c this removes every duplicate.
func Uniq[E any](xs []E, c Comparator[E]) []E {
	out := make([]E, 0, len(xs))
	for i, x := range xs {
		if i > 0 && c(out[len(out)-1], x) == 0 {
			continue
		}
		out = append(out, x)
	}
	return out
}

// IsSorted reports whether no adjacent pair of xs is out of order according to c.
func IsSorted[E any](xs []E, c Comparator[E]) bool {
	for i := 1; i < len(xs); i++ {
		if c(xs[i-1], xs[i]) > 0 {
			return false
		}
	}
	return true
}
