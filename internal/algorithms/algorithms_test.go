package algorithms_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avelis/sortlab/internal/algorithms"
	"github.com/avelis/sortlab/internal/trace"
)

func run(name string, input []int) *trace.Trace {
	fn, err := algorithms.Get(name)
	Expect(err).NotTo(HaveOccurred())
	r := trace.NewRecorder(name, input)
	fn(r)
	return r.Finalize()
}

func randomInput(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(50)
	}
	return out
}

var _ = Describe("instrumented sorts", func() {
	inputs := map[string][]int{
		"random":     randomInput(40, 7),
		"sorted":     {1, 2, 3, 4, 5, 6, 7, 8},
		"reversed":   {9, 8, 7, 6, 5, 4, 3, 2, 1},
		"duplicates": {3, 1, 3, 2, 1, 3, 2, 2, 1, 3},
		"two":        {2, 1},
	}

	for _, name := range algorithms.Names() {
		name := name

		Describe(name, func() {
			for label, input := range inputs {
				label, input := label, input

				It("sorts a "+label+" input", func() {
					tr := run(name, input)
					Expect(tr.Sorted()).To(BeTrue(), "final snapshot %v", tr.Final())
					Expect(tr.Final()).To(HaveLen(len(input)))
				})
			}

			It("keeps counters consistent with the step log", func() {
				tr := run(name, inputs["random"])
				compares, swaps, done := 0, 0, 0
				for _, s := range tr.Steps {
					switch s.Kind {
					case trace.Compare:
						compares++
					case trace.Swap:
						swaps++
					case trace.Done:
						done++
					}
				}
				Expect(tr.Comparisons).To(Equal(compares))
				Expect(tr.Swaps).To(Equal(swaps))
				Expect(done).To(Equal(1))
				Expect(tr.Steps[len(tr.Steps)-1].Kind).To(Equal(trace.Done))
			})

			It("is deterministic for a fixed input", func() {
				a := run(name, inputs["random"])
				b := run(name, inputs["random"])
				Expect(a.Steps).To(Equal(b.Steps))
				Expect(a.Comparisons).To(Equal(b.Comparisons))
				Expect(a.Swaps).To(Equal(b.Swaps))
			})

			It("produces a done-only trace for empty and single inputs", func() {
				for _, input := range [][]int{{}, {42}} {
					tr := run(name, input)
					Expect(tr.Len()).To(Equal(1))
					Expect(tr.Steps[0].Kind).To(Equal(trace.Done))
					Expect(tr.Comparisons).To(BeZero())
					Expect(tr.Swaps).To(BeZero())
				}
			})

			if algorithms.Stable(name) {
				It("preserves the relative order of equal elements", func() {
					input := inputs["duplicates"]
					tr := run(name, input)
					final := tr.Final()
					for k := 1; k < len(final); k++ {
						if final[k] == final[k-1] {
							Expect(tr.Order[k]).To(BeNumerically(">", tr.Order[k-1]),
								"equal values %d at %d and %d arrived out of order", final[k], k-1, k)
						}
					}
				})
			}
		})
	}

	Describe("bubble pass-boundary policy", func() {
		It("emits the documented step sequence for [3 1 2]", func() {
			tr := run("bubble", []int{3, 1, 2})

			kinds := make([]trace.Kind, 0, tr.Len())
			for _, s := range tr.Steps {
				kinds = append(kinds, s.Kind)
			}
			Expect(kinds).To(Equal([]trace.Kind{
				trace.Compare, trace.Swap, // 3 vs 1, swap -> [1 3 2]
				trace.Compare, trace.Swap, // 3 vs 2, swap -> [1 2 3]
				trace.Compare, // 1 vs 2, no swap, pass counts
				trace.Done,
			}))
			Expect(tr.Comparisons).To(Equal(3))
			Expect(tr.Swaps).To(Equal(2))
			Expect(tr.Steps[1].Snapshot).To(Equal([]int{1, 3, 2}))
			Expect(tr.Steps[3].Snapshot).To(Equal([]int{1, 2, 3}))
		})
	})

	Describe("quick pivot policy", func() {
		It("marks the last element of each range as pivot", func() {
			tr := run("quick", []int{4, 2, 5, 1, 3})
			Expect(tr.Steps[0].Kind).To(Equal(trace.Pivot))
			Expect(tr.Steps[0].I).To(Equal(4))
		})
	})

	Describe("merge step kinds", func() {
		It("emits merge write-backs and no swap steps", func() {
			tr := run("merge", randomInput(16, 3))
			merges := 0
			for _, s := range tr.Steps {
				Expect(s.Kind).NotTo(Equal(trace.Swap))
				if s.Kind == trace.Merge {
					merges++
				}
			}
			Expect(merges).To(BeNumerically(">", 0))
			Expect(tr.Swaps).To(BeZero())
		})
	})

	Describe("registry", func() {
		It("rejects unsupported selectors", func() {
			_, err := algorithms.Get("bogo")
			Expect(err).To(MatchError(trace.ErrInvalidAlgorithm))
		})

		It("exposes the closed set in sorted order", func() {
			Expect(algorithms.Names()).To(Equal([]string{
				"bubble", "insertion", "merge", "quick", "selection",
			}))
		})
	})
})
