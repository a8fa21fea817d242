package algorithms

import "github.com/avelis/sortlab/internal/trace"

// Selection scans for the minimum of the unsorted suffix each pass and
// swaps it into place. At most one swap per pass; not stable.
func Selection(r *trace.Recorder) {
	n := r.Len()
	for i := 0; i < n; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if r.Less(j, min) {
				min = j
			}
		}
		if min != i {
			r.Swap(i, min)
		}
	}
}
