package sortkit

import (
	"sort"

	"go.llib.dev/sorters/port/sorter"
)

// Builtin delegates to the standard library's stable sort.
// It serves as the reference result the other strategies are checked against.
type Builtin struct{}

func (Builtin) Sort(seq sorter.Sequence) {
	sort.Stable(seq)
}
