package trace

import "sort"

// Kind identifies one atomic algorithm action. The set is closed: the five
// kinds below are the only actions an instrumented sort can record.
type Kind string

const (
	Compare Kind = "compare"
	Swap    Kind = "swap"
	Pivot   Kind = "pivot"
	Merge   Kind = "merge"
	Done    Kind = "done"
)

// Step is one recorded algorithm action. I and J are the indices involved;
// J is -1 for single-index actions (pivot, merge write-back) and both are
// -1 for the terminal done step. Snapshot is the full array state
// immediately after the action and must not be mutated.
type Step struct {
	Kind     Kind  `json:"kind"`
	I        int   `json:"i"`
	J        int   `json:"j"`
	Snapshot []int `json:"snapshot"`
}

// Trace is the complete recorded run of one algorithm over one input.
// It is immutable after Finalize and always ends with a done step whose
// snapshot is sorted.
type Trace struct {
	Algorithm   string `json:"algorithm"`
	Input       []int  `json:"input"`
	Steps       []Step `json:"steps"`
	Comparisons int    `json:"comparisons"`
	Swaps       int    `json:"swaps"`

	// Order maps final position to the original index of the element that
	// ended up there. Stable algorithms keep Order increasing across runs
	// of equal values.
	Order []int `json:"order"`
}

func (t *Trace) Len() int { return len(t.Steps) }

// Final returns the snapshot of the last step.
func (t *Trace) Final() []int {
	if len(t.Steps) == 0 {
		return nil
	}
	return t.Steps[len(t.Steps)-1].Snapshot
}

// Sorted reports whether the final snapshot is in non-decreasing order.
func (t *Trace) Sorted() bool {
	return sort.IntsAreSorted(t.Final())
}

func cloneInts(s []int) []int {
	c := make([]int, len(s))
	copy(c, s)
	return c
}
