package sortkit

import (
	"fmt"
	"sort"

	"go.llib.dev/sorters/port/sorter"
)

// InsertionMode selects how Insertion finds the place of the next element in the sorted prefix.
type InsertionMode int

const (
	// LinearInsertion walks leftwards with adjacent swaps while the left neighbour is greater.
	LinearInsertion InsertionMode = iota
	// BinarySearchInsertion looks up the insertion index with a binary search,
	// then rotates the element into place.
	// It reduces comparisons to O(n log n), element movement stays O(n²).
	BinarySearchInsertion
)

func (m InsertionMode) String() string {
	switch m {
	case LinearInsertion:
		return "linear"
	case BinarySearchInsertion:
		return "binary-search"
	default:
		return fmt.Sprintf("InsertionMode(%d)", int(m))
	}
}

// Insertion grows a sorted prefix by one element per step.
// The zero value uses LinearInsertion.
type Insertion struct {
	Mode InsertionMode
}

func (s Insertion) Sort(seq sorter.Sequence) {
	// [sorted | unsorted]
	for unsorted := 1; unsorted < seq.Len(); unsorted++ {
		switch s.Mode {
		case BinarySearchInsertion:
			insertBinary(seq, unsorted)
		default:
			insertLinear(seq, unsorted)
		}
	}
}

func insertLinear(seq sorter.Sequence, unsorted int) {
	for i := unsorted; 0 < i && seq.Less(i, i-1); i-- {
		seq.Swap(i-1, i)
	}
}

func insertBinary(seq sorter.Sequence, unsorted int) {
	// first index in the prefix that is greater than the new element,
	// so the element lands after its equals
	i := sort.Search(unsorted, func(i int) bool {
		return seq.Less(unsorted, i)
	})
	sorter.RotateRight(seq, i, unsorted)
}
