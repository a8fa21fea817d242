package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/avelis/sortlab/internal/trace"
)

func TestGenerate(t *testing.T) {
	tr, err := Generate([]int{5, 3, 1, 4, 2}, "quick")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !tr.Sorted() {
		t.Errorf("final snapshot not sorted: %v", tr.Final())
	}
	if tr.Algorithm != "quick" {
		t.Errorf("expected algorithm quick, got %s", tr.Algorithm)
	}
}

func TestGenerateInvalidAlgorithm(t *testing.T) {
	_, err := Generate([]int{1, 2}, "bogo")
	if !errors.Is(err, trace.ErrInvalidAlgorithm) {
		t.Errorf("expected ErrInvalidAlgorithm, got %v", err)
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	input := []int{3, 1, 2}
	if _, err := Generate(input, "bubble"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !reflect.DeepEqual(input, []int{3, 1, 2}) {
		t.Errorf("input mutated: %v", input)
	}
}

func TestRandomSequence(t *testing.T) {
	seq, err := RandomSequence(100, 1, 10, 42)
	if err != nil {
		t.Fatalf("random sequence failed: %v", err)
	}
	if len(seq) != 100 {
		t.Fatalf("expected 100 elements, got %d", len(seq))
	}
	for _, v := range seq {
		if v < 1 || v > 10 {
			t.Fatalf("value %d outside [1, 10]", v)
		}
	}

	again, _ := RandomSequence(100, 1, 10, 42)
	if !reflect.DeepEqual(seq, again) {
		t.Error("same seed should yield the same sequence")
	}

	other, _ := RandomSequence(100, 1, 10, 43)
	if reflect.DeepEqual(seq, other) {
		t.Error("different seeds should yield different sequences")
	}
}

func TestRandomSequenceInvalid(t *testing.T) {
	tests := []struct {
		name      string
		n, lo, hi int
	}{
		{"negative size", -1, 0, 10},
		{"empty range", 5, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RandomSequence(tt.n, tt.lo, tt.hi, 1)
			if !errors.Is(err, trace.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSequenceOrders(t *testing.T) {
	sorted, err := Sequence(OrderSorted, 20, 0, 9, 7)
	if err != nil {
		t.Fatalf("sorted sequence failed: %v", err)
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] < sorted[i-1] {
			t.Fatalf("not sorted at %d: %v", i, sorted)
		}
	}

	reversed, err := Sequence(OrderReversed, 20, 0, 9, 7)
	if err != nil {
		t.Fatalf("reversed sequence failed: %v", err)
	}
	for i := 1; i < len(reversed); i++ {
		if reversed[i] > reversed[i-1] {
			t.Fatalf("not reversed at %d: %v", i, reversed)
		}
	}

	if _, err := Sequence("shuffled-ish", 5, 0, 9, 7); !errors.Is(err, trace.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for unknown order, got %v", err)
	}
}

func TestRunEndToEnd(t *testing.T) {
	cfg := Config{Algorithm: "merge", Size: 30, Min: 1, Max: 100, Seed: 5, Order: OrderRandom}
	seq, tr, err := Run(cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(seq) != 30 {
		t.Errorf("expected 30 elements, got %d", len(seq))
	}
	if !tr.Sorted() {
		t.Error("trace not sorted")
	}
	if !reflect.DeepEqual(tr.Input, seq) {
		t.Error("trace input should match generated sequence")
	}
}
