package diff

import "cmp"

// Ordered performs a diff operation on two ascending sequences of cmp.Ordered types.
// It is Generic with cmp.Compare as the comparison function.
func Ordered[T cmp.Ordered](a, b []T, resultFunc ResultFunc[T]) (r Result, err error) {
	return Generic(a, b, cmp.Compare[T], resultFunc)
}

// Strings performs a diff operation on two ascending string sequences.
func Strings(a, b []string, resultFunc StringResultFunc) (r Result, err error) {
	return Ordered(a, b, ResultFunc[string](resultFunc))
}

// Equal reports whether two ascending sequences hold the same items with the same
// multiplicities.
func Equal[T cmp.Ordered](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	r, _ := Ordered(a, b, nil)
	return r.Same()
}
