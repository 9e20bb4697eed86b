package sortkit

import "go.llib.dev/sorters/port/sorter"

// Selection moves the minimum of the unsorted suffix to the front of it, one position at a time.
// On ties the first occurrence of the minimum is selected.
// It makes at most n-1 swaps.
type Selection struct{}

func (Selection) Sort(seq sorter.Sequence) {
	n := seq.Len()
	for unsorted := 0; unsorted < n; unsorted++ {
		smallest := unsorted
		for i := unsorted + 1; i < n; i++ {
			if seq.Less(i, smallest) {
				smallest = i
			}
		}
		if smallest != unsorted {
			seq.Swap(unsorted, smallest)
		}
	}
}
