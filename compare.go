package sorting

import (
	"cmp"
	"strings"
)

// Standard orders values from lowest to highest.
func Standard[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Reverse orders values from highest to lowest.
func Reverse[T cmp.Ordered](a, b T) int {
	return cmp.Compare(b, a)
}

// LastDigit orders integers by their last decimal digit only.
// Negative values project onto 0..9 the same way as positive ones, so -3 has last digit 7.
func LastDigit[T Integer](a, b T) int {
	return By(lastDigit[T], Standard[T])(a, b)
}

func lastDigit[T Integer](v T) T {
	d := v % 10
	if d < 0 {
		d += 10
	}
	return d
}

// By returns a Comparator that orders items by the key extracted from them,
// using c to compare keys.
func By[E, K any](key func(E) K, c Comparator[K]) Comparator[E] {
	return func(a, b E) int {
		return c(key(a), key(b))
	}
}

// Invert returns a Comparator producing the opposite order of c.
func Invert[E any](c Comparator[E]) Comparator[E] {
	return func(a, b E) int {
		return c(b, a)
	}
}

// ComparatorByName resolves one of the named integer orderings:
// "standard" (or "asc"), "reverse" (or "desc") and "lastdigit".
func ComparatorByName[T Integer](name string) (Comparator[T], error) {
	switch strings.ToLower(name) {
	case "standard", "asc", "":
		return Standard[T], nil
	case "reverse", "desc":
		return Reverse[T], nil
	case "lastdigit", "last-digit":
		return LastDigit[T], nil
	}
	return nil, NewConfigError("order", name, "unknown comparator")
}
