package sorting

// Comparator is a function type for comparing two items of type E.
// It returns -1 if a should be ordered before b, 0 if they are equal,
// and 1 if a should be ordered after b.
// The algorithms in this package treat any negative result as "less" and any positive
// result as "greater", so functions with cmp.Compare semantics are accepted as well.
// A Comparator must be a consistent total order (antisymmetric and transitive);
// this is not validated and an inconsistent Comparator produces unspecified output.
type Comparator[E any] func(a, b E) int

// PivotFunc returns an index in [0, n) used to choose the quicksort pivot.
// It is only called with n >= 2.
type PivotFunc func(n int) int

// Integer is satisfied by every Go integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
