package sortkit

import "go.llib.dev/sorters/port/sorter"

// Bubble repeatedly walks the sequence and swaps neighbours that are out of order,
// until a full pass completes without a swap.
type Bubble struct{}

func (Bubble) Sort(seq sorter.Sequence) {
	for swapped := true; swapped; {
		swapped = false
		for i := 1; i < seq.Len(); i++ {
			if seq.Less(i, i-1) {
				seq.Swap(i, i-1)
				swapped = true
			}
		}
	}
}
