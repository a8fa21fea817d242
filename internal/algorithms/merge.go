package algorithms

import "github.com/avelis/sortlab/internal/trace"

// Merge sorts top-down: each merge pass stages both halves aside, then
// interleaves them back over the range. Compare steps report the staged
// head positions; every write-back is a merge step. The <= tie-break keeps
// the left element first, making the sort stable. Recursion depth is
// O(log n).
func Merge(r *trace.Recorder) {
	var rec func(lo, hi int)
	rec = func(lo, hi int) {
		if hi-lo <= 1 {
			return
		}
		mid := (lo + hi) / 2
		rec(lo, mid)
		rec(mid, hi)
		mergeRange(r, lo, mid, hi)
	}
	rec(0, r.Len())
}

func mergeRange(r *trace.Recorder, lo, mid, hi int) {
	left := r.Stage(lo, mid)
	right := r.Stage(mid, hi)

	i, j, k := 0, 0, lo
	for i < len(left.Values) && j < len(right.Values) {
		r.MarkCompare(lo+i, mid+j)
		if left.Values[i] <= right.Values[j] {
			r.WriteBack(k, left, i)
			i++
		} else {
			r.WriteBack(k, right, j)
			j++
		}
		k++
	}
	for i < len(left.Values) {
		r.WriteBack(k, left, i)
		i++
		k++
	}
	for j < len(right.Values) {
		r.WriteBack(k, right, j)
		j++
		k++
	}
}
