package algorithms

import "github.com/avelis/sortlab/internal/trace"

// Bubble sorts by repeatedly swapping adjacent out-of-order pairs. A pass
// with no swaps ends the run early; the comparisons of that final no-swap
// pass still count. For input [3 1 2] this yields exactly 3 comparisons
// and 2 swaps.
func Bubble(r *trace.Recorder) {
	n := r.Len()
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if r.Less(j+1, j) {
				r.Swap(j, j+1)
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}
