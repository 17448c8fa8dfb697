package diff

import "fmt"

// Delta represents the type of difference found when comparing two sorted sequences.
// It indicates whether an item is unique to the first sequence (OLD) or second sequence (NEW).
type Delta int

const (
	// NEW indicates an item that exists only in the second sequence (B).
	NEW Delta = iota // +

	// OLD indicates an item that exists only in the first sequence (A).
	OLD // -
)

func (d Delta) String() string {
	switch d {
	case NEW:
		return ">"
	case OLD:
		return "<"
	default:
		return "?"
	}
}

// CompareFunc orders two items, returning a negative number, zero or a positive number.
// Both sequences passed to Generic must be sorted by the same CompareFunc.
type CompareFunc[T any] func(a, b T) int

// ResultFunc is called once for each item that appears in only one of the two sequences.
// If it returns an error, the diff stops and returns that error.
type ResultFunc[T any] func(Delta, T) error

// StringResultFunc is the ResultFunc for string sequences.
type StringResultFunc func(Delta, string) error

// Result contains statistical information about the differences between two sorted sequences.
type Result struct {
	// ExtraA is the count of items that exist only in sequence A (OLD items)
	ExtraA uint64

	// ExtraB is the count of items that exist only in sequence B (NEW items)
	ExtraB uint64

	// TotalA is the total count of items processed from sequence A
	TotalA uint64

	// TotalB is the total count of items processed from sequence B
	TotalB uint64

	// Common is the count of items that exist in both sequences
	Common uint64
}

// Same reports whether no item was found in only one of the sequences.
func (r *Result) Same() bool {
	return r.ExtraA == 0 && r.ExtraB == 0
}

func (r *Result) String() string {
	out := fmt.Sprintf("A: %d/%d\tB: %d/%d\tC: %d", r.ExtraA, r.TotalA, r.ExtraB, r.TotalB, r.Common)
	return out
}
