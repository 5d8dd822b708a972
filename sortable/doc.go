// Package sortable defines the ordering interface used by the rank-order
// sorting routines in [github.com/jasondark/compile-time-sort/ranksort],
// together with wrapper types for common primitive types.
//
// # Overview
//
// The package defines the [Sortable] interface, a single LessThan method,
// and provides ready-to-use implementations for [Int], [Byte], and [String].
// Ordering is the only requirement: the ranking rule in ranksort derives
// both of the comparisons it needs (greater-or-equal and strictly-greater)
// from LessThan alone, so Sortable types never have to implement equality.
//
// # Usage
//
// Use the provided wrapper types when sorting primitives through the
// interface-based entry points:
//
//	values := []sortable.Int{5, 7, 3, 1, -5, 9}
//	sorted := ranksort.SortSortable(values)
//	// sorted is [-5, 1, 3, 5, 7, 9]; values is unchanged
//
// For primitive element types the constraint-based entry points
// (ranksort.Sort and friends) are usually more convenient; the wrappers
// exist so that primitives and custom types share one code path when that
// matters to the caller.
//
// # Creating Custom Sortable Types
//
// To sort values of your own type, implement the Sortable interface:
//
//	type Version struct {
//	    Major int
//	    Minor int
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
//
// LessThan must describe a consistent ordering (irreflexive and
// transitive). Values for which neither a.LessThan(b) nor b.LessThan(a)
// holds are treated as equal by the sort and keep their original relative
// order.
package sortable
