// Package sortable provides the ordering interface and primitive wrapper types used by the rank-order sort.
package sortable

// Sortable is a generic interface for types that can order themselves.
// LessThan must describe a consistent (irreflexive, transitive) ordering;
// it is the only operation the sorting routines require.
type Sortable[T any] interface {
	LessThan(other T) bool
}
