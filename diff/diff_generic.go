// Package diff compares two sorted sequences and reports the items that exist in
// only one of them. Two sequences sorted by the same total order hold the same
// multiset of items exactly when the diff finds no differences.
package diff

import (
	"errors"
	"fmt"
)

// differ holds the state for a diff between two sorted sequences of type T
type differ[T any] struct {
	a, b       []T
	resultFunc ResultFunc[T]
	compare    CompareFunc[T]
}

// Generic performs a diff operation on two sorted sequences of any type T.
// It walks both sequences once using compareFunc and calls resultFunc for each
// item that exists in only one of them.
//
// Parameters:
//   - a, b: Sequences to compare (MUST be sorted by compareFunc)
//   - compareFunc: Function that returns <0, 0, or >0 for ordering comparison
//   - resultFunc: Callback function called for each difference found, nil to only count
//
// Returns statistical information about the comparison and the first error returned by
// resultFunc. Sortedness of the inputs is not validated. Items that compareFunc reports
// as equal are counted as common, so compareFunc should distinguish every value that
// should be treated as distinct.
func Generic[T any](a, b []T, compareFunc CompareFunc[T], resultFunc ResultFunc[T]) (r Result, err error) {
	if compareFunc == nil {
		return Result{}, errors.New("compare function must not be nil")
	}
	if resultFunc == nil {
		resultFunc = func(Delta, T) error { return nil }
	}

	d := differ[T]{
		a:          a,
		b:          b,
		resultFunc: resultFunc,
		compare:    compareFunc,
	}
	return d.diff()
}

func (d *differ[T]) diff() (r Result, err error) {
	i, j := 0, 0
	for i < len(d.a) && j < len(d.b) {
		c := d.compare(d.a[i], d.b[j])
		if c > 0 {
			r.TotalB++
			r.ExtraB++
			if err = d.resultFunc(NEW, d.b[j]); err != nil {
				return
			}
			j++
		} else if c < 0 {
			r.TotalA++
			r.ExtraA++
			if err = d.resultFunc(OLD, d.a[i]); err != nil {
				return
			}
			i++
		} else {
			// common
			r.Common++
			r.TotalA++
			r.TotalB++
			i++
			j++
		}
	}
	// if only A has data left
	for ; i < len(d.a); i++ {
		r.TotalA++
		r.ExtraA++
		if err = d.resultFunc(OLD, d.a[i]); err != nil {
			return
		}
	}
	// if only B has data left
	for ; j < len(d.b); j++ {
		r.TotalB++
		r.ExtraB++
		if err = d.resultFunc(NEW, d.b[j]); err != nil {
			return
		}
	}
	return
}

// Collect returns a ResultFunc that records every difference, and a function
// returning the differences recorded so far in the order they were found.
func Collect[T any]() (ResultFunc[T], func() []Item[T]) {
	var items []Item[T]
	f := func(d Delta, v T) error {
		items = append(items, Item[T]{D: d, V: v})
		return nil
	}
	return f, func() []Item[T] { return items }
}

// Item holds a single diff result.
type Item[T any] struct {
	// D indicates whether the value is NEW (only in B) or OLD (only in A)
	D Delta
	// V is the value that differs between the sequences
	V T
}

func (it Item[T]) String() string {
	return fmt.Sprintf("%s %v", it.D, it.V)
}

// PrintDiff is a utility function that can be used as a ResultFunc to print
// differences to stdout. It formats each difference with the Delta symbol
// (< for OLD, > for NEW) followed by the item value.
func PrintDiff[T any](d Delta, s T) error {
	_, err := fmt.Printf("%s %v\n", d, s)
	return err
}
