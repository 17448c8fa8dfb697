package sorting

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
)

// Algorithm names one of the sorting algorithms a Sorter can run.
type Algorithm int

const (
	// MergeSortAlgorithm selects MergeSort.
	MergeSortAlgorithm Algorithm = iota
	// QuickSortAlgorithm selects quicksort with the Sorter's Recursion and Pivot.
	QuickSortAlgorithm
)

func (a Algorithm) String() string {
	switch a {
	case MergeSortAlgorithm:
		return "merge"
	case QuickSortAlgorithm:
		return "quick"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm parses the name produced by Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "merge", "mergesort":
		return MergeSortAlgorithm, nil
	case "quick", "quicksort":
		return QuickSortAlgorithm, nil
	}
	return 0, NewConfigError("algorithm", s, "must be merge or quick")
}

// Sorter runs the sorting algorithms of this package with a fixed Comparator and Config,
// turning comparator failures into errors instead of panics.
//
// A Sorter holds no per-call state and may be shared between goroutines as long as its
// PivotFunc is safe for concurrent use (RandomPivot is, SeededPivot is not).
type Sorter[E any] struct {
	config      Config
	compareFunc Comparator[E]
}

// New creates a Sorter ordering items with c.
// A nil config uses DefaultConfig; unset fields of a non-nil config take their defaults.
// It returns a *ConfigError if c is nil or config holds an unknown value.
func New[E any](c Comparator[E], config *Config) (*Sorter[E], error) {
	if c == nil {
		return nil, NewConfigError("Comparator", nil, "must not be nil")
	}
	config = mergeConfig(config)
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Sorter[E]{config: *config, compareFunc: c}, nil
}

// Config returns a copy of the configuration the Sorter runs with.
func (s *Sorter[E]) Config() Config {
	return s.config
}

// Comparator returns the comparator the Sorter orders items with.
func (s *Sorter[E]) Comparator() Comparator[E] {
	return s.compareFunc
}

// Sort sorts xs with the selected algorithm.
func (s *Sorter[E]) Sort(algo Algorithm, xs []E) ([]E, error) {
	switch algo {
	case MergeSortAlgorithm:
		return s.MergeSort(xs)
	case QuickSortAlgorithm:
		return s.QuickSort(xs)
	}
	return nil, NewConfigError("algorithm", algo, "unknown algorithm")
}

// MergeSort returns a sorted copy of xs, see the package level MergeSort.
func (s *Sorter[E]) MergeSort(xs []E) ([]E, error) {
	return s.run("MergeSort", len(xs), func(c Comparator[E]) []E {
		return MergeSort(xs, c)
	})
}

// QuickSort returns a sorted copy of xs using the Sorter's Pivot and Recursion.
// A pivot index outside the bucket being partitioned is returned as a *PivotError.
func (s *Sorter[E]) QuickSort(xs []E) ([]E, error) {
	return s.run("QuickSort", len(xs), func(c Comparator[E]) []E {
		return quickSort(xs, c, s.config.Pivot, s.config.Recursion)
	})
}

// Merge merges two slices already sorted by the Sorter's comparator, see the package level Merge.
func (s *Sorter[E]) Merge(xs, ys []E) ([]E, error) {
	return s.run("Merge", len(xs)+len(ys), func(c Comparator[E]) []E {
		return Merge(xs, ys, c)
	})
}

// MergeAll merges runs already sorted by the Sorter's comparator, see the package level MergeAll.
func (s *Sorter[E]) MergeAll(runs [][]E) ([]E, error) {
	n := 0
	for _, r := range runs {
		n += len(r)
	}
	return s.run("MergeAll", n, func(c Comparator[E]) []E {
		return MergeAll(runs, c)
	})
}

// run calls f with a comparator that counts calls and, in strict mode, checks results.
// Panics raised while f runs are recovered and returned as errors.
func (s *Sorter[E]) run(context string, n int, f func(Comparator[E]) []E) (out []E, err error) {
	comparisons := 0
	counted := func(a, b E) int {
		comparisons++
		return s.compare(a, b)
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			if pe, ok := r.(*PivotError); ok {
				err = pe
			} else {
				err = NewComparisonError(r, context)
			}
			glog.V(1).Infof("%s: failed after %d comparisons: %v", context, comparisons, err)
		}
	}()

	out = f(counted)
	if glog.V(2) {
		glog.Infof("%s: %d items, %d comparisons", context, n, comparisons)
	}
	return out, nil
}

// compare applies the comparator, panicking on an out of range result in strict mode
func (s *Sorter[E]) compare(a, b E) int {
	r := s.compareFunc(a, b)
	if s.config.Strict && (r < -1 || r > 1) {
		panic(fmt.Errorf("%w: got %d", ErrComparatorRange, r))
	}
	return r
}
