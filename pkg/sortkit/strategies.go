package sortkit

import "go.llib.dev/sorters/port/sorter"

// Strategy is a named sorting strategy.
type Strategy struct {
	Name   string
	Sorter sorter.Sorter
	// Stable tells whether the strategy keeps equal elements in their input order.
	Stable bool
}

// Strategies lists every strategy of the package in a fixed order.
func Strategies() []Strategy {
	return []Strategy{
		{Name: "bubble", Sorter: Bubble{}, Stable: true},
		{Name: "insertion", Sorter: Insertion{Mode: LinearInsertion}, Stable: true},
		{Name: "insertion-binary", Sorter: Insertion{Mode: BinarySearchInsertion}, Stable: true},
		{Name: "selection", Sorter: Selection{}},
		{Name: "quick", Sorter: Quick{}},
		{Name: "heap", Sorter: Heap{}},
		{Name: "merge", Sorter: Merge{}, Stable: true},
		{Name: "builtin", Sorter: Builtin{}, Stable: true},
	}
}

// Names returns the names of Strategies in order.
func Names() []string {
	var names []string
	for _, s := range Strategies() {
		names = append(names, s.Name)
	}
	return names
}

// Lookup finds a strategy by its name.
func Lookup(name string) (Strategy, bool) {
	for _, s := range Strategies() {
		if s.Name == name {
			return s, true
		}
	}
	return Strategy{}, false
}
