// Package sorter defines the role interface of in-place, comparison based sorting.
//
// A Sorter rearranges the elements of a Sequence in place into ascending order.
// Every strategy supplies the same contract, so callers can swap algorithms without touching the call site:
//
//	sorter.Sort(values, sortkit.Merge{})
//	sorter.Sort(values, sortkit.Insertion{Mode: sortkit.BinarySearchInsertion})
//
// A Sequence must not be read or written by anything else while a Sort call is in progress.
// Sorters provide no synchronisation of their own.
package sorter

import (
	"cmp"

	"go.llib.dev/sorters/pkg/errorkit"
)

//go:generate mockgen -destination=sortermock/sortermock.go -package=sortermock . Sorter

// Sequence is a finite, mutable and randomly indexable collection of totally ordered elements.
// Its length must stay fixed for the duration of a Sort call.
//
// Less must express the total order of the elements themselves:
// it has to be consistent and transitive, and exactly one of Less(i, j), Less(j, i) or equality holds.
type Sequence interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

// Rotator is an optional capability of a Sequence.
// RotateRight moves the element at index j to index i,
// and shifts every element in the inclusive [i, j) range one position to the right.
//
// Sequences that don't implement it are rotated with a chain of adjacent swaps.
type Rotator interface {
	RotateRight(i, j int)
}

// Sorter sorts a Sequence in place into ascending order.
// After Sort returns, the Sequence holds a permutation of its original elements
// where Less(j, i) is false for every i < j.
type Sorter interface {
	Sort(Sequence)
}

// Func is a function based Sorter.
type Func func(Sequence)

func (fn Func) Sort(seq Sequence) { fn(seq) }

// Sort sorts the slice in place with the given strategy.
func Sort[T cmp.Ordered](s []T, strategy Sorter) {
	strategy.Sort(Slice[T](s))
}

// SortSequence sorts the Sequence in place with the given strategy.
func SortSequence(seq Sequence, strategy Sorter) {
	strategy.Sort(seq)
}

// Slice is a Sequence over a slice of an ordered element type.
type Slice[T cmp.Ordered] []T

func (s Slice[T]) Len() int           { return len(s) }
func (s Slice[T]) Less(i, j int) bool { return cmp.Less(s[i], s[j]) }
func (s Slice[T]) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func (s Slice[T]) RotateRight(i, j int) {
	if j <= i {
		return
	}
	v := s[j]
	copy(s[i+1:j+1], s[i:j])
	s[i] = v
}

// RotateRight rotates the inclusive [i, j] range of the Sequence one step to the right.
// The element at j lands on i, and the rest of the range shifts up by one.
func RotateRight(seq Sequence, i, j int) {
	if j <= i {
		return
	}
	if r, ok := seq.(Rotator); ok {
		r.RotateRight(i, j)
		return
	}
	for k := j; i < k; k-- {
		seq.Swap(k-1, k)
	}
}

const ErrNotSorted errorkit.Error = "sequence is not sorted"

// IsSorted reports whether the Sequence is in ascending order.
func IsSorted(seq Sequence) bool {
	return Verify(seq) == nil
}

// Verify checks that the Sequence is in ascending order.
// When it isn't, the returned error is ErrNotSorted, pointing at the first inversion.
func Verify(seq Sequence) error {
	for i := 1; i < seq.Len(); i++ {
		if seq.Less(i, i-1) {
			return ErrNotSorted.F("element at index %d is less than its predecessor", i)
		}
	}
	return nil
}
