package algorithms

import "github.com/avelis/sortlab/internal/trace"

// Quick uses the Lomuto partition scheme with the last element of each
// range as pivot, left subrange before right. The policy is fixed so a
// trace is fully reproducible from its input alone; random seeds only ever
// influence input generation. Each partition emits one pivot step, one
// compare step per scanned element, and one swap step per actual exchange
// (self-swaps are skipped). Not stable.
func Quick(r *trace.Recorder) {
	var rec func(lo, hi int)
	rec = func(lo, hi int) {
		if lo >= hi {
			return
		}
		p := partition(r, lo, hi)
		rec(lo, p-1)
		rec(p+1, hi)
	}
	rec(0, r.Len()-1)
}

func partition(r *trace.Recorder, lo, hi int) int {
	r.MarkPivot(hi)
	i := lo
	for j := lo; j < hi; j++ {
		if r.Less(j, hi) {
			if i != j {
				r.Swap(i, j)
			}
			i++
		}
	}
	if i != hi {
		r.Swap(i, hi)
	}
	return i
}
