package ranksort

import "github.com/jasondark/compile-time-sort/sortable"

// SortSortable returns a sorted copy of input, in non-decreasing order,
// for element types implementing the sortable.Sortable interface.
// The input slice is not modified.
//
// Example:
//
//	sorted := ranksort.SortSortable([]sortable.Int{5, 3, 7})
//	// sorted is [3, 5, 7]
func SortSortable[T sortable.Sortable[T]](input []T) []T {
	return SortSortableN(len(input), input)
}

// SortSortableN is SortSortable restricted to the first n elements of
// input. The backing slice may be longer than n.
func SortSortableN[T sortable.Sortable[T]](n int, input []T) []T {
	output := make([]T, n)
	for i, r := range RanksSortableN(n, input) {
		output[r] = input[i]
	}

	return output
}

// RanksSortable returns the destination index of each element of input in
// the sorted order produced by SortSortable. The result is always a
// permutation of 0..len(input)-1.
func RanksSortable[T sortable.Sortable[T]](input []T) []int {
	return RanksSortableN(len(input), input)
}

// RanksSortableN is RanksSortable restricted to the first n elements of
// input. Both of the comparisons the ranking rule needs derive from
// LessThan: a >= b is !a.LessThan(b), and a > b is b.LessThan(a). The
// two must stay distinct or duplicate values would collide on a rank.
func RanksSortableN[T sortable.Sortable[T]](n int, input []T) []int {
	ranks := make([]int, n)

	for i := range n {
		rank := 0

		for j := range i {
			if !input[i].LessThan(input[j]) {
				rank++
			}
		}

		for k := i + 1; k < n; k++ {
			if input[k].LessThan(input[i]) {
				rank++
			}
		}

		ranks[i] = rank
	}

	return ranks
}
