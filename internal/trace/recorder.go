package trace

// Recorder is the append-only builder the instrumented sorts write through.
// It owns the working copy of the sequence during generation; every recorded
// step carries a cloned snapshot so the trace stays valid as sorting
// continues. Recorders are single-use: Finalize seals the trace.
type Recorder struct {
	algorithm   string
	input       []int
	work        []int
	ids         []int
	steps       []Step
	comparisons int
	swaps       int
}

// NewRecorder copies input into a private working slice and starts an empty
// step log.
func NewRecorder(algorithm string, input []int) *Recorder {
	ids := make([]int, len(input))
	for i := range ids {
		ids[i] = i
	}
	return &Recorder{
		algorithm: algorithm,
		input:     cloneInts(input),
		work:      cloneInts(input),
		ids:       ids,
		steps:     make([]Step, 0, len(input)*len(input)),
	}
}

func (r *Recorder) Len() int     { return len(r.work) }
func (r *Recorder) At(i int) int { return r.work[i] }

// Less records a compare step and reports whether the element at i orders
// strictly before the element at j.
func (r *Recorder) Less(i, j int) bool {
	r.record(Compare, i, j)
	return r.work[i] < r.work[j]
}

// MarkCompare records a compare step whose outcome was computed by the
// caller. Merge passes use it because they compare elements staged in aside
// buffers rather than live positions.
func (r *Recorder) MarkCompare(i, j int) {
	r.record(Compare, i, j)
}

// Swap exchanges the elements at i and j and records a swap step.
func (r *Recorder) Swap(i, j int) {
	r.work[i], r.work[j] = r.work[j], r.work[i]
	r.ids[i], r.ids[j] = r.ids[j], r.ids[i]
	r.record(Swap, i, j)
}

// MarkPivot records the chosen pivot position for a partition pass.
func (r *Recorder) MarkPivot(i int) {
	r.record(Pivot, i, -1)
}

// Segment is a staged copy of a range of the working array. Merge passes
// stage both halves before writing back over the range they were read from.
type Segment struct {
	Values []int
	ids    []int
}

// Stage copies work[lo:hi] into a Segment.
func (r *Recorder) Stage(lo, hi int) Segment {
	return Segment{
		Values: cloneInts(r.work[lo:hi]),
		ids:    cloneInts(r.ids[lo:hi]),
	}
}

// WriteBack writes seg.Values[idx] into position k and records a merge step.
func (r *Recorder) WriteBack(k int, seg Segment, idx int) {
	r.work[k] = seg.Values[idx]
	r.ids[k] = seg.ids[idx]
	r.record(Merge, k, -1)
}

// Finalize appends the terminal done step and returns the sealed trace.
func (r *Recorder) Finalize() *Trace {
	r.record(Done, -1, -1)
	return &Trace{
		Algorithm:   r.algorithm,
		Input:       r.input,
		Steps:       r.steps,
		Comparisons: r.comparisons,
		Swaps:       r.swaps,
		Order:       cloneInts(r.ids),
	}
}

func (r *Recorder) record(kind Kind, i, j int) {
	switch kind {
	case Compare:
		r.comparisons++
	case Swap:
		r.swaps++
	}
	r.steps = append(r.steps, Step{Kind: kind, I: i, J: j, Snapshot: cloneInts(r.work)})
}
