package sortkit

import "go.llib.dev/sorters/port/sorter"

// Merge is a top-down merge sort that merges in place by rotation instead of using a buffer.
// Comparisons stay O(n log n), element movement can reach O(n²).
type Merge struct{}

func (Merge) Sort(seq sorter.Sequence) {
	n := seq.Len()
	if n <= 1 {
		return
	}
	mergeSort(seq, 0, n-1)
}

// mergeSort sorts the inclusive [left, right] range.
func mergeSort(seq sorter.Sequence, left, right int) {
	if left < right {
		mid := left + (right-left)/2
		mergeSort(seq, left, mid)
		mergeSort(seq, mid+1, right)
		merge(seq, left, mid, right)
	}
}

// merge combines the sorted [start, mid] and [mid+1, end] ranges.
func merge(seq sorter.Sequence, start, mid, end int) {
	start2 := mid + 1
	if !seq.Less(start2, mid) {
		return
	}
	for start <= mid && start2 <= end {
		if !seq.Less(start2, start) {
			start++
			continue
		}
		sorter.RotateRight(seq, start, start2)
		start++
		mid++
		start2++
	}
}
