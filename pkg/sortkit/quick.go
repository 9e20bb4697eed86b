package sortkit

import (
	"go.llib.dev/sorters/pkg/errorkit"
	"go.llib.dev/sorters/port/sorter"
)

const ErrPartitionInvariant errorkit.Error = "quick sort partition invariant violated"

// Quick is a recursive quicksort with the first element of each range as pivot.
//
// The pivot choice is fixed, so input that is already sorted, or sorted in reverse,
// makes every partition degenerate: O(n²) comparisons and O(n) recursion depth.
type Quick struct{}

func (Quick) Sort(seq sorter.Sequence) {
	// [ unsorted | pivot | unsorted ]
	quickSort(seq, 0, seq.Len())
}

// quickSort sorts the half-open [lo, hi) range.
func quickSort(seq sorter.Sequence, lo, hi int) {
	switch hi - lo {
	case 0, 1:
		return
	case 2:
		if seq.Less(lo+1, lo) {
			seq.Swap(lo, lo+1)
		}
		return
	}
	mid := partition(seq, lo, hi)
	quickSort(seq, lo, mid)
	quickSort(seq, mid+1, hi)
}

// partition splits [lo, hi) around the pivot at lo and returns the pivot's final index.
// Elements before the returned index are not greater than the pivot,
// elements after it are greater than the pivot.
func partition(seq sorter.Sequence, lo, hi int) int {
	var (
		p     = lo
		left  = lo + 1
		right = hi - 1
	)
	for left <= right {
		switch {
		case !seq.Less(p, left):
			left++
		case seq.Less(p, right):
			right--
		default:
			seq.Swap(left, right)
			left++
			right--
		}
	}
	mid := left - 1
	if mid != p {
		seq.Swap(p, mid)
	}
	if lo < mid && seq.Less(mid, mid-1) {
		panic(ErrPartitionInvariant.F("range [%d, %d) split at %d", lo, hi, mid))
	}
	return mid
}
