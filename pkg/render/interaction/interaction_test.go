package interaction

import (
	"strings"
	"testing"

	"github.com/qcdraw/qcdraw/pkg/circuit"
)

func TestToDOTTwoQubitGate(t *testing.T) {
	dot := ToDOT(circuit.Of(
		circuit.CNOT{Control: 0, Target: 1},
	), Options{})

	for _, want := range []string{
		"graph G {",
		"layout=circo;",
		`"q0";`,
		`"q1";`,
		`"q0" -- "q1";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing %q in:\n%s", want, dot)
		}
	}
}

func TestToDOTSingleQubitGatesAddNodesOnly(t *testing.T) {
	dot := ToDOT(circuit.Of(
		circuit.Hadamard{Qubit: 0},
		circuit.PauliX{Qubit: 3},
	), Options{})

	if !strings.Contains(dot, `"q3";`) {
		t.Errorf("isolated qubit missing:\n%s", dot)
	}
	if strings.Contains(dot, "--") {
		t.Errorf("no edges expected:\n%s", dot)
	}
}

func TestToDOTHybridCoupling(t *testing.T) {
	dot := ToDOT(circuit.Of(
		circuit.JaynesCummings{Qubit: 1, Mode: 0, Theta: circuit.Float(0.5)},
	), Options{})

	if !strings.Contains(dot, `"b0" [shape=doublecircle, fillcolor=lightgrey];`) {
		t.Errorf("mode node style missing:\n%s", dot)
	}
	if !strings.Contains(dot, `"b0" -- "q1";`) {
		t.Errorf("qubit-mode edge missing:\n%s", dot)
	}
}

func TestToDOTBeamSplitterCouplesModes(t *testing.T) {
	dot := ToDOT(circuit.Of(
		circuit.BeamSplitter{Mode0: 1, Mode1: 0, Theta: circuit.Float(1), Phi: circuit.Float(0)},
	), Options{})

	if !strings.Contains(dot, `"b0" -- "b1";`) {
		t.Errorf("mode-mode edge missing:\n%s", dot)
	}
}

func TestToDOTMultiQubitClique(t *testing.T) {
	dot := ToDOT(circuit.Of(
		circuit.Toffoli{Control0: 0, Control1: 1, Target: 2},
	), Options{})

	for _, want := range []string{`"q0" -- "q1";`, `"q0" -- "q2";`, `"q1" -- "q2";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing %q in:\n%s", want, dot)
		}
	}
}

func TestToDOTWeighted(t *testing.T) {
	c := circuit.Of(
		circuit.CNOT{Control: 0, Target: 1},
		circuit.CNOT{Control: 1, Target: 0},
		circuit.ControlledPauliZ{Control: 0, Target: 1},
	)

	plain := ToDOT(c, Options{})
	if strings.Contains(plain, "label=") {
		t.Errorf("unweighted graph should carry no labels:\n%s", plain)
	}

	weighted := ToDOT(c, Options{Weighted: true})
	if !strings.Contains(weighted, `"q0" -- "q1" [label="3"];`) {
		t.Errorf("weight label missing:\n%s", weighted)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	c := circuit.Of(
		circuit.CNOT{Control: 3, Target: 0},
		circuit.SWAP{Control: 2, Target: 1},
		circuit.QuantumRabi{Qubit: 0, Mode: 1, Theta: circuit.Float(1)},
	)
	first := ToDOT(c, Options{})
	for i := 0; i < 20; i++ {
		if got := ToDOT(c, Options{}); got != first {
			t.Fatal("DOT output varies between runs")
		}
	}
}
