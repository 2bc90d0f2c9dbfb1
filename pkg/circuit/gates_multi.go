package circuit

// Multi-qubit gates acting on an explicit, arbitrary qubit list.
// The layout engine renders them as one multi-input box spanning the
// contiguous [min,max] range of the listed qubits.

// MultiQubitMS is the multi-qubit Molmer-Sorensen gate.
type MultiQubitMS struct {
	Qubits []int
	Theta  Value
}

func (MultiQubitMS) Name() string            { return "MultiQubitMS" }
func (g MultiQubitMS) Involved() Involvement { return Involve(g.Qubits...) }

// MultiQubitZZ is the multi-qubit ZZ interaction gate.
type MultiQubitZZ struct {
	Qubits []int
	Theta  Value
}

func (MultiQubitZZ) Name() string            { return "MultiQubitZZ" }
func (g MultiQubitZZ) Involved() Involvement { return Involve(g.Qubits...) }
