package morph

import (
	"fmt"
	"sort"
)

// Op is a named engine operation, resolvable from pipeline configuration.
type Op func(*Morphology, ProgressObserver) bool

var ops = map[string]Op{
	"rosenfeld": (*Morphology).Rosenfeld,
	"erosion":   (*Morphology).Erosion,
	"dilation":  (*Morphology).Dilation,
	"pruning":   (*Morphology).Pruning,
}

// Lookup resolves an operation by name.
func Lookup(name string) (Op, error) {
	op, ok := ops[name]
	if !ok {
		return nil, fmt.Errorf("morph: unknown operation %q (have %v)", name, Names())
	}
	return op, nil
}

// Names lists the registered operation names, sorted.
func Names() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
