// Package sortkit implements textbook in-place sorting strategies behind the sorter.Sorter contract.
//
// Every strategy is a small value type that can be used directly or passed to sorter.Sort:
//
//	values := []int{5, 1, 4, 2, 3}
//	sorter.Sort(values, sortkit.Heap{})
//
// Stability per strategy:
//
//	Bubble     stable
//	Insertion  stable (both modes)
//	Selection  not stable
//	Quick      not stable
//	Heap       not stable
//	Merge      stable
//	Builtin    stable
//
// None of the strategies allocate a second sequence of the input's size, apart from Builtin,
// whose allocation behaviour belongs to the standard library.
package sortkit
