package trace

import "testing"

func TestRecorderCounters(t *testing.T) {
	r := NewRecorder("test", []int{3, 1, 2})

	if r.Less(0, 1) {
		t.Error("3 < 1 should be false")
	}
	if !r.Less(1, 0) {
		t.Error("1 < 3 should be true")
	}
	r.Swap(0, 1)
	r.MarkCompare(1, 2)
	r.MarkPivot(2)

	tr := r.Finalize()

	if tr.Comparisons != 3 {
		t.Errorf("expected 3 comparisons, got %d", tr.Comparisons)
	}
	if tr.Swaps != 1 {
		t.Errorf("expected 1 swap, got %d", tr.Swaps)
	}

	compares, swaps := 0, 0
	for _, s := range tr.Steps {
		switch s.Kind {
		case Compare:
			compares++
		case Swap:
			swaps++
		}
	}
	if compares != tr.Comparisons || swaps != tr.Swaps {
		t.Errorf("counters disagree with step counts: %d/%d vs %d/%d",
			tr.Comparisons, tr.Swaps, compares, swaps)
	}
}

func TestRecorderFinalStepIsDone(t *testing.T) {
	r := NewRecorder("test", []int{2, 1})
	r.Swap(0, 1)
	tr := r.Finalize()

	last := tr.Steps[len(tr.Steps)-1]
	if last.Kind != Done {
		t.Errorf("expected final step done, got %s", last.Kind)
	}
	if last.I != -1 || last.J != -1 {
		t.Errorf("done step should carry no indices, got (%d,%d)", last.I, last.J)
	}
	if !tr.Sorted() {
		t.Error("final snapshot should be sorted")
	}
}

func TestRecorderSnapshotsAreIsolated(t *testing.T) {
	input := []int{5, 4}
	r := NewRecorder("test", input)
	r.Swap(0, 1)
	tr := r.Finalize()

	// Mutating the original input must not leak into the trace.
	input[0] = 99
	if tr.Input[0] != 5 {
		t.Error("trace input aliases caller slice")
	}

	first := tr.Steps[0].Snapshot
	if first[0] != 4 || first[1] != 5 {
		t.Errorf("unexpected snapshot after swap: %v", first)
	}

	// Each step keeps its own copy.
	first[0] = 99
	if tr.Steps[len(tr.Steps)-1].Snapshot[0] == 99 {
		t.Error("steps share snapshot backing arrays")
	}
}

func TestRecorderStageWriteBack(t *testing.T) {
	r := NewRecorder("test", []int{2, 1})
	left := r.Stage(0, 1)
	right := r.Stage(1, 2)

	r.MarkCompare(0, 1)
	r.WriteBack(0, right, 0)
	r.WriteBack(1, left, 0)
	tr := r.Finalize()

	final := tr.Final()
	if final[0] != 1 || final[1] != 2 {
		t.Errorf("expected [1 2], got %v", final)
	}
	if tr.Order[0] != 1 || tr.Order[1] != 0 {
		t.Errorf("expected order [1 0], got %v", tr.Order)
	}
}

func TestEmptyTrace(t *testing.T) {
	tr := NewRecorder("test", nil).Finalize()
	if tr.Len() != 1 {
		t.Fatalf("expected exactly one step, got %d", tr.Len())
	}
	if tr.Steps[0].Kind != Done {
		t.Errorf("expected done step, got %s", tr.Steps[0].Kind)
	}
	if tr.Comparisons != 0 || tr.Swaps != 0 {
		t.Error("empty trace should have zero counters")
	}
	if !tr.Sorted() {
		t.Error("empty snapshot counts as sorted")
	}
}
