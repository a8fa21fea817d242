// Package engine is the front door for trace generation: it resolves the
// algorithm selector, runs the sort to completion synchronously, and hands
// back a fully materialized trace that playback can seek freely.
package engine

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/avelis/sortlab/internal/algorithms"
	"github.com/avelis/sortlab/internal/trace"
)

// Sequence orders for generated inputs.
const (
	OrderRandom       = "random"
	OrderSorted       = "sorted"
	OrderReversed     = "reversed"
	OrderNearlySorted = "nearly-sorted"
)

// Config describes one generation request.
type Config struct {
	Algorithm string
	Size      int
	Min       int
	Max       int
	Seed      int64
	Order     string
}

// Generate runs the named algorithm over a copy of seq and returns the
// sealed trace. Generation is pure: the same sequence and algorithm always
// yield an identical step sequence.
func Generate(seq []int, algorithm string) (*trace.Trace, error) {
	fn, err := algorithms.Get(algorithm)
	if err != nil {
		return nil, err
	}
	r := trace.NewRecorder(algorithm, seq)
	fn(r)
	return r.Finalize(), nil
}

// RandomSequence draws n values uniformly from [lo, hi] using the seed.
// The seed only ever affects input generation, never the sort itself.
func RandomSequence(n, lo, hi int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", trace.ErrInvalidInput, n)
	}
	if lo > hi {
		return nil, fmt.Errorf("%w: empty value range [%d, %d]", trace.ErrInvalidInput, lo, hi)
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}
	return out, nil
}

// Sequence builds an input of the requested order. Sorted and reversed
// inputs draw random values first so duplicates still occur; nearly-sorted
// perturbs a sorted input with a few seeded adjacent swaps.
func Sequence(order string, n, lo, hi int, seed int64) ([]int, error) {
	seq, err := RandomSequence(n, lo, hi, seed)
	if err != nil {
		return nil, err
	}
	switch order {
	case OrderRandom, "":
		return seq, nil
	case OrderSorted:
		sort.Ints(seq)
		return seq, nil
	case OrderReversed:
		sort.Sort(sort.Reverse(sort.IntSlice(seq)))
		return seq, nil
	case OrderNearlySorted:
		sort.Ints(seq)
		rng := rand.New(rand.NewSource(seed))
		for k := 0; k < n/8+1 && n > 1; k++ {
			i := rng.Intn(n - 1)
			seq[i], seq[i+1] = seq[i+1], seq[i]
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("%w: unknown order %q", trace.ErrInvalidInput, order)
	}
}

// Run builds the input described by cfg and generates its trace.
func Run(cfg Config) ([]int, *trace.Trace, error) {
	seq, err := Sequence(cfg.Order, cfg.Size, cfg.Min, cfg.Max, cfg.Seed)
	if err != nil {
		return nil, nil, err
	}
	tr, err := Generate(seq, cfg.Algorithm)
	if err != nil {
		return nil, nil, err
	}
	return seq, tr, nil
}
