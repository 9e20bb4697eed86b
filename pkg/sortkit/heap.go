package sortkit

import "go.llib.dev/sorters/port/sorter"

// Heap turns the sequence into a binary max-heap in place,
// then repeatedly moves the root to the end of the shrinking heap.
//
// The heap layout: the parent of i is (i-1)/2, the children of i are 2i+1 and 2i+2.
type Heap struct{}

func (Heap) Sort(seq sorter.Sequence) {
	n := seq.Len()
	if n <= 1 {
		return
	}
	heapify(seq, n)
	for end := n - 1; 0 < end; {
		seq.Swap(0, end)
		end--
		siftDown(seq, 0, end)
	}
}

func heapify(seq sorter.Sequence, n int) {
	last := n - 1
	for start := parentOf(last); 0 <= start; start-- {
		siftDown(seq, start, last)
	}
}

// siftDown restores the heap property for the subtree at root,
// considering only the elements up to the inclusive end index.
func siftDown(seq sorter.Sequence, root, end int) {
	for leftChildOf(root) <= end {
		var (
			child = leftChildOf(root)
			swap  = root
		)
		if seq.Less(swap, child) {
			swap = child
		}
		if child+1 <= end && seq.Less(swap, child+1) {
			swap = child + 1
		}
		if swap == root {
			return
		}
		seq.Swap(root, swap)
		root = swap
	}
}

func parentOf(i int) int    { return (i - 1) / 2 }
func leftChildOf(i int) int { return 2*i + 1 }
