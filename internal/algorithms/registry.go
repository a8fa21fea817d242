package algorithms

import (
	"fmt"
	"sort"

	"github.com/avelis/sortlab/internal/trace"
)

// Func runs one sorting algorithm to completion, emitting steps through the
// recorder. Implementations mutate only the recorder's working sequence.
type Func func(r *trace.Recorder)

var registry = map[string]Func{
	"bubble":    Bubble,
	"selection": Selection,
	"insertion": Insertion,
	"merge":     Merge,
	"quick":     Quick,
}

// Info holds a short display description per algorithm.
var Info = map[string]string{
	"bubble":    "adjacent swaps, early exit",
	"selection": "minimum scan per pass",
	"insertion": "shift into sorted prefix",
	"merge":     "divide and merge, stable",
	"quick":     "lomuto partition, last-element pivot",
}

// Get resolves an algorithm selector from the closed supported set.
func Get(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: %v)", trace.ErrInvalidAlgorithm, name, Names())
	}
	return fn, nil
}

// Names returns the supported algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stable reports whether the named algorithm preserves the relative order
// of equal elements. Selection and quick make no such guarantee.
func Stable(name string) bool {
	switch name {
	case "bubble", "insertion", "merge":
		return true
	default:
		return false
	}
}
