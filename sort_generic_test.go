package sorting_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yilinli22/sorting"
)

func TestNewValidation(t *testing.T) {
	_, err := sorting.New[int](nil, nil)
	var cfgErr *sorting.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Comparator", cfgErr.Field)

	_, err = sorting.New(sorting.Standard[int], &sorting.Config{Recursion: sorting.Recursion(9)})
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Recursion", cfgErr.Field)
	assert.Contains(t, err.Error(), "Recursion(9)")
}

func TestConfigDefaults(t *testing.T) {
	s, err := sorting.NewOrdered[int](nil)
	require.NoError(t, err)
	c := s.Config()
	assert.Equal(t, sorting.HybridRecursion, c.Recursion)
	assert.NotNil(t, c.Pivot)
	assert.False(t, c.Strict)

	// unset fields are filled in without touching the caller's config
	mine := &sorting.Config{Recursion: sorting.QuickRecursion}
	s, err = sorting.NewOrdered[int](mine)
	require.NoError(t, err)
	assert.NotNil(t, s.Config().Pivot)
	assert.Equal(t, sorting.QuickRecursion, s.Config().Recursion)
	assert.Nil(t, mine.Pivot)
}

func TestSorterSort(t *testing.T) {
	s, err := sorting.NewOrdered[int](&sorting.Config{Pivot: sorting.SeededPivot(3)})
	require.NoError(t, err)
	in := []int{5, 2, 8, 1}
	for _, algo := range []sorting.Algorithm{sorting.MergeSortAlgorithm, sorting.QuickSortAlgorithm} {
		got, err := s.Sort(algo, in)
		require.NoError(t, err, algo.String())
		assert.Equal(t, []int{1, 2, 5, 8}, got, algo.String())
	}
	assert.Equal(t, []int{5, 2, 8, 1}, in)

	_, err = s.Sort(sorting.Algorithm(5), in)
	var cfgErr *sorting.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestSorterMerge(t *testing.T) {
	s, err := sorting.New(sorting.Reverse[int], nil)
	require.NoError(t, err)

	got, err := s.Merge([]int{9, 4}, []int{7, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{9, 7, 4, 1}, got)

	got, err = s.MergeAll([][]int{{9, 4}, {7, 1}, {8}})
	require.NoError(t, err)
	assert.Equal(t, []int{9, 8, 7, 4, 1}, got)
}

func TestSorterComparatorPanic(t *testing.T) {
	boom := errors.New("boom")
	panicky := func(a, b int) int {
		if a == 3 || b == 3 {
			panic(boom)
		}
		return sorting.Standard(a, b)
	}
	s, err := sorting.New(panicky, &sorting.Config{Pivot: sorting.SeededPivot(1)})
	require.NoError(t, err)

	in := []int{4, 3, 2, 1}
	for _, algo := range []sorting.Algorithm{sorting.MergeSortAlgorithm, sorting.QuickSortAlgorithm} {
		out, err := s.Sort(algo, in)
		assert.Nil(t, out)
		var cmpErr *sorting.ComparisonError
		require.ErrorAs(t, err, &cmpErr)
		assert.ErrorIs(t, err, boom)
		assert.NotEmpty(t, cmpErr.Context)
	}
	assert.Equal(t, []int{4, 3, 2, 1}, in, "input modified after a failed sort")
}

func TestSorterStrict(t *testing.T) {
	// cmp.Compare style results outside {-1, 0, 1}
	wide := func(a, b int) int { return a - b }

	lax, err := sorting.New(wide, nil)
	require.NoError(t, err)
	got, err := lax.MergeSort([]int{30, 10, 20})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, got)

	strict, err := sorting.New(wide, &sorting.Config{Strict: true})
	require.NoError(t, err)
	_, err = strict.MergeSort([]int{30, 10, 20})
	assert.ErrorIs(t, err, sorting.ErrComparatorRange)

	// results within range pass
	strictStd, err := sorting.NewOrdered[int](&sorting.Config{Strict: true})
	require.NoError(t, err)
	got, err = strictStd.QuickSort([]int{30, 10, 20})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestSorterPivotOutOfRange(t *testing.T) {
	s, err := sorting.NewOrdered[int](&sorting.Config{Pivot: func(n int) int { return n }})
	require.NoError(t, err)
	out, err := s.QuickSort([]int{3, 1, 2})
	assert.Nil(t, out)
	var pe *sorting.PivotError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Index)
	assert.Equal(t, 3, pe.Len)

	// no pivot is needed for trivial inputs
	out, err = s.QuickSort([]int{1})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, out)
}

func TestPackageLevelPanicsPropagate(t *testing.T) {
	assert.Panics(t, func() {
		sorting.MergeSort([]int{2, 1}, func(a, b int) int { panic("bad") })
	})
}

func TestParseNames(t *testing.T) {
	for _, algo := range []sorting.Algorithm{sorting.MergeSortAlgorithm, sorting.QuickSortAlgorithm} {
		got, err := sorting.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, got)
	}
	_, err := sorting.ParseAlgorithm("bogo")
	assert.Error(t, err)

	for _, rec := range []sorting.Recursion{sorting.HybridRecursion, sorting.QuickRecursion} {
		got, err := sorting.ParseRecursion(rec.String())
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	}
	_, err = sorting.ParseRecursion("sideways")
	assert.Error(t, err)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "comparison panic in MergeSort: x", sorting.NewComparisonError("x", "MergeSort").Error())
	assert.Equal(t, "comparison panic: x", sorting.NewComparisonError("x", "").Error())
	assert.Nil(t, errors.Unwrap(sorting.NewComparisonError("x", "")))
	assert.Equal(t, "pivot index 4 out of range [0, 2)", (&sorting.PivotError{Index: 4, Len: 2}).Error())
	assert.Equal(t, "config error in field order (value: up): unknown comparator",
		sorting.NewConfigError("order", "up", "unknown comparator").Error())
}
