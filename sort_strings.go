package sorting

// Strings returns the strings of xs in lexicographic order, sorted with MergeSort.
func Strings(xs []string) []string {
	return MergeSort(xs, Standard[string])
}

// UniqStrings returns the distinct strings of xs in lexicographic order.
func UniqStrings(xs []string) []string {
	return Uniq(Strings(xs), Standard[string])
}
