package ranksort

import "cmp"

// Sort returns a sorted copy of input, in non-decreasing order.
// The input slice is not modified.
//
// Example:
//
//	sorted := ranksort.Sort([]int{5, 7, 3, 1, -5, 9})
//	// sorted is [-5, 1, 3, 5, 7, 9]
func Sort[T cmp.Ordered](input []T) []T {
	return SortN(len(input), input)
}

// SortN returns a sorted copy of the first n elements of input, in
// non-decreasing order. The backing slice may be longer than n; the
// extra elements are ignored. Passing n > len(input) is a caller error
// and panics via the usual bounds check. The input slice is not modified.
func SortN[T cmp.Ordered](n int, input []T) []T {
	output := make([]T, n)
	for i, r := range RanksN(n, input) {
		output[r] = input[i]
	}

	return output
}

// Ranks returns the destination index of each element of input in the
// sorted order produced by Sort: sorted[Ranks(input)[i]] == input[i].
// The result is always a permutation of 0..len(input)-1, including when
// input contains duplicate values.
func Ranks[T cmp.Ordered](input []T) []int {
	return RanksN(len(input), input)
}

// RanksN is Ranks restricted to the first n elements of input.
func RanksN[T cmp.Ordered](n int, input []T) []int {
	ranks := make([]int, n)

	for i := range n {
		rank := 0

		// Lower pass: non-strict comparison against earlier indices.
		for j := range i {
			if input[i] >= input[j] {
				rank++
			}
		}

		// Upper pass: strict comparison against later indices. The
		// non-strict/strict split covers each pair exactly once and
		// gives equal values distinct ranks ordered by original index,
		// so ranks is always a permutation of 0..n-1.
		for k := i + 1; k < n; k++ {
			if input[i] > input[k] {
				rank++
			}
		}

		ranks[i] = rank
	}

	return ranks
}
