package simplify

import (
	"testing"

	"github.com/qcdraw/qcdraw/pkg/circuit"
)

func TestRunCancelsAdjacentPairs(t *testing.T) {
	c := circuit.Of(
		circuit.Hadamard{Qubit: 0},
		circuit.CNOT{Control: 0, Target: 1},
		circuit.CNOT{Control: 0, Target: 1},
		circuit.PauliZ{Qubit: 0},
	)
	got := Run(c)
	want := circuit.Of(
		circuit.Hadamard{Qubit: 0},
		circuit.PauliZ{Qubit: 0},
	)
	if !got.Equal(want) {
		t.Errorf("Run = %#v, want %#v", got.Operations, want.Operations)
	}
	if c.Len() != 4 {
		t.Error("Run must not modify its input")
	}
}

func TestRunKeepsOrderedPairsDistinct(t *testing.T) {
	// CNOT(0,1) and CNOT(1,0) are different gates and must not cancel.
	c := circuit.Of(
		circuit.CNOT{Control: 0, Target: 1},
		circuit.CNOT{Control: 1, Target: 0},
	)
	if got := Run(c); got.Len() != 2 {
		t.Errorf("reversed pair cancelled: %#v", got.Operations)
	}
}

func TestRunDifferentKindsDoNotCancel(t *testing.T) {
	c := circuit.Of(
		circuit.CNOT{Control: 0, Target: 1},
		circuit.SWAP{Control: 0, Target: 1},
		circuit.CNOT{Control: 0, Target: 1},
	)
	if got := Run(c); got.Len() != 3 {
		t.Errorf("mixed kinds cancelled: %#v", got.Operations)
	}
}

func TestRunInterferingGateBlocksCancellation(t *testing.T) {
	c := circuit.Of(
		circuit.CNOT{Control: 0, Target: 1},
		circuit.Hadamard{Qubit: 1},
		circuit.CNOT{Control: 0, Target: 1},
	)
	got := Run(c)
	if got.Len() != 3 {
		t.Errorf("cancellation across an interfering gate: %#v", got.Operations)
	}
	// The held CNOT is flushed by the overlapping Hadamard, so order is
	// preserved here.
	if !got.Equal(c) {
		t.Errorf("Run = %#v, want unchanged", got.Operations)
	}
}

func TestRunUnrelatedGateDoesNotFlush(t *testing.T) {
	// A gate on a disjoint qubit leaves the held CNOT pending, so the
	// pair still cancels around it.
	c := circuit.Of(
		circuit.CNOT{Control: 0, Target: 1},
		circuit.Hadamard{Qubit: 2},
		circuit.CNOT{Control: 0, Target: 1},
	)
	got := Run(c)
	want := circuit.Of(circuit.Hadamard{Qubit: 2})
	if !got.Equal(want) {
		t.Errorf("Run = %#v, want %#v", got.Operations, want.Operations)
	}
}

func TestRunChainCollapses(t *testing.T) {
	ops := make([]circuit.Operation, 4)
	for i := range ops {
		ops[i] = circuit.SWAP{Control: 1, Target: 2}
	}
	got := Run(circuit.Of(ops...))
	if !got.IsEmpty() {
		t.Errorf("four SWAPs should collapse completely, got %#v", got.Operations)
	}
}

func TestRunHeldGateFlushedAtEnd(t *testing.T) {
	c := circuit.Of(
		circuit.CNOT{Control: 0, Target: 1},
		circuit.Hadamard{Qubit: 2},
	)
	got := Run(c)
	if got.Len() != 2 {
		t.Fatalf("Run dropped an operation: %#v", got.Operations)
	}
	if _, ok := got.Operations[1].(circuit.CNOT); !ok {
		t.Errorf("held CNOT should flush after the pass, got %#v", got.Operations)
	}
}

func TestRunAllQubitOperationDoesNotFlush(t *testing.T) {
	// Operations involving all qubits report no explicit set, so a held
	// gate survives across them and still cancels.
	c := circuit.Of(
		circuit.CNOT{Control: 0, Target: 1},
		circuit.PragmaSetStateVector{Statevector: []circuit.Complex{{Re: 1}}},
		circuit.CNOT{Control: 0, Target: 1},
	)
	got := Run(c)
	want := circuit.Of(circuit.PragmaSetStateVector{Statevector: []circuit.Complex{{Re: 1}}})
	if !got.Equal(want) {
		t.Errorf("Run = %#v, want %#v", got.Operations, want.Operations)
	}
}
