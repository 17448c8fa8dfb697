package sorting

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Recursion selects how quicksort sorts its less-than and greater-than buckets.
type Recursion int

const (
	// HybridRecursion sorts the buckets with MergeSort. The pivot only affects how
	// balanced the single partition is; the recursive parts stay O(n log n).
	HybridRecursion Recursion = iota
	// QuickRecursion sorts the buckets by recursing into quicksort itself.
	// Expected O(n log n), O(n^2) time and O(n) depth in the worst case.
	QuickRecursion
)

func (r Recursion) String() string {
	switch r {
	case HybridRecursion:
		return "hybrid"
	case QuickRecursion:
		return "quick"
	default:
		return fmt.Sprintf("Recursion(%d)", int(r))
	}
}

// ParseRecursion parses the name produced by Recursion.String.
func ParseRecursion(s string) (Recursion, error) {
	switch strings.ToLower(s) {
	case "hybrid", "":
		return HybridRecursion, nil
	case "quick", "pure":
		return QuickRecursion, nil
	}
	return 0, NewConfigError("Recursion", s, "must be hybrid or quick")
}

// Config holds configuration settings for a Sorter
type Config struct {
	Recursion Recursion // how quicksort sorts its buckets
	Pivot     PivotFunc // pivot index source, nil for the process-wide random source
	Strict    bool      // report comparator results outside {-1, 0, 1} as errors
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		Recursion: HybridRecursion,
		Pivot:     RandomPivot,
		Strict:    false,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults.
// The provided config is not modified.
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	merged := *c
	if merged.Pivot == nil {
		merged.Pivot = d.Pivot
	}
	// Recursion and Strict use their zero values as defaults
	return &merged
}

// validate reports the first invalid field of c
func (c *Config) validate() error {
	switch c.Recursion {
	case HybridRecursion, QuickRecursion:
	default:
		return NewConfigError("Recursion", c.Recursion, "unknown recursion mode")
	}
	return nil
}

// RandomPivot draws a pivot index from the process-wide math/rand/v2 source.
// It is safe for concurrent use.
func RandomPivot(n int) int {
	return rand.IntN(n)
}

// SeededPivot returns a PivotFunc with its own PCG source seeded with seed, so that
// quicksort runs are reproducible. The returned function is not safe for concurrent use.
func SeededPivot(seed uint64) PivotFunc {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return r.IntN
}
