// Package ranksort sorts small fixed-size sequences by rank ordering:
// every element's destination index is computed by counting pairwise
// comparisons, and the elements are then scattered directly into a fresh
// output slice.
//
// # Overview
//
// For each index i the routine counts how many elements the value at i
// should come after. Comparisons against earlier indices use
// greater-or-equal while comparisons against later indices use
// strictly-greater, so every unordered pair of indices is compared exactly
// once and equal values receive distinct ranks ordered by original index.
// The resulting rank array is therefore always a permutation of 0..n-1,
// even when the input contains duplicates, and can be used directly as a
// placement index with no tie-break pass.
//
// The cost is O(n²) comparisons with O(n) auxiliary storage. That trade
// is deliberate: the routine targets small sequences (a handful to a few
// dozen elements) where the fixed comparison pattern and branch-free
// placement matter more than asymptotics. For anything large or
// runtime-sized, use the standard library's sort/slices packages instead.
//
// # Usage
//
//	sorted := ranksort.Sort([]int{5, 7, 3, 1, -5, 9})
//	// sorted is [-5, 1, 3, 5, 7, 9]
//
// SortN sorts the first n elements of a longer backing slice:
//
//	sorted := ranksort.SortN(3, []int{9, 1, 4, 0, 0, 0})
//	// sorted is [1, 4, 9]
//
// The input is never mutated; every call returns a newly allocated slice.
// Element types are either primitives satisfying [cmp.Ordered] (Sort,
// SortN, Ranks, RanksN) or user types implementing
// [github.com/jasondark/compile-time-sort/sortable.Sortable]
// (SortSortable and friends).
//
// # Stability
//
// Equal elements keep their original relative order. This falls out of
// the ranking rule rather than any extra bookkeeping: of two equal
// values, the one at the lower original index wins only its non-strict
// comparisons and so receives the lower rank.
package ranksort
