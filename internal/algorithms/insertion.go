package algorithms

import "github.com/avelis/sortlab/internal/trace"

// Insertion grows a sorted prefix by sinking each element leftward through
// adjacent swaps. Equal elements never swap past each other, so the sort
// is stable. Each examination is one compare step, each shift one swap.
func Insertion(r *trace.Recorder) {
	n := r.Len()
	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			if !r.Less(j, j-1) {
				break
			}
			r.Swap(j-1, j)
		}
	}
}
