// Package simplify implements a peephole pass that cancels adjacent
// self-inverse two-qubit gates.
//
// The pass tracks, per (control, target) pair, the last cancellable gate
// that has not yet been written out. When the same gate kind appears
// again on the same pair with nothing touching those qubits in between,
// both occurrences vanish. The pass repeats until the circuit stops
// changing, so chains like four consecutive CNOTs collapse completely.
package simplify

import (
	"sort"

	"github.com/qcdraw/qcdraw/pkg/circuit"
)

// Gate kinds that are their own inverse on a fixed (control, target) pair.
var cancellable = map[string]bool{
	"CNOT":             true,
	"SWAP":             true,
	"ISwap":            true,
	"ControlledPauliZ": true,
}

type pair struct {
	control int
	target  int
}

// operands returns the (control, target) pair for a cancellable gate.
func operands(op circuit.Operation) (pair, bool) {
	switch g := op.(type) {
	case circuit.CNOT:
		return pair{g.Control, g.Target}, true
	case circuit.SWAP:
		return pair{g.Control, g.Target}, true
	case circuit.ISwap:
		return pair{g.Control, g.Target}, true
	case circuit.ControlledPauliZ:
		return pair{g.Control, g.Target}, true
	}
	return pair{}, false
}

// Run removes gate pairs that cancel to the identity and returns the
// simplified circuit. The input circuit is not modified.
func Run(c *circuit.Circuit) *circuit.Circuit {
	cur := c
	for {
		next := pass(cur)
		if next.Equal(cur) {
			return next
		}
		cur = next
	}
}

type pending struct {
	name string
	op   circuit.Operation
}

func pass(c *circuit.Circuit) *circuit.Circuit {
	out := circuit.New()
	held := map[pair]*pending{}

	flush := func(p pair) {
		if h := held[p]; h != nil {
			out.Add(h.op)
			held[p] = nil
		}
	}
	flushTouching := func(qubits []int) {
		for key := range held {
			for _, q := range qubits {
				if key.control == q || key.target == q {
					flush(key)
				}
			}
		}
	}

	for _, op := range c.Operations {
		if p, ok := operands(op); ok && cancellable[op.Name()] {
			if h := held[p]; h != nil && h.name == op.Name() {
				// Same gate on the same pair: both cancel.
				held[p] = nil
				continue
			}
			flushTouching([]int{p.control, p.target})
			held[p] = &pending{name: op.Name(), op: op}
			continue
		}
		// An explicit qubit set flushes overlapping held gates; operations
		// that touch no qubits or all of them leave held gates in place.
		flushTouching(op.Involved().Qubits(0))
		out.Add(op)
	}

	// Flush remaining held gates in pair order so the result is stable.
	keys := make([]pair, 0, len(held))
	for key, h := range held {
		if h != nil {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].control != keys[j].control {
			return keys[i].control < keys[j].control
		}
		return keys[i].target < keys[j].target
	})
	for _, key := range keys {
		flush(key)
	}
	return out
}
