package circuit

// Two-qubit and three-qubit gate operations. Control/target gates draw a
// vertical link between the control dot and the target glyph; boxed gates
// span the whole [min,max] qubit range with a single multi-input box.

// CNOT is the controlled NOT gate.
type CNOT struct{ Control, Target int }

func (CNOT) Name() string            { return "CNOT" }
func (g CNOT) Involved() Involvement { return Involve(g.Control, g.Target) }

// ControlledPauliY is the controlled Pauli Y gate.
type ControlledPauliY struct{ Control, Target int }

func (ControlledPauliY) Name() string            { return "ControlledPauliY" }
func (g ControlledPauliY) Involved() Involvement { return Involve(g.Control, g.Target) }

// ControlledPauliZ is the controlled Pauli Z gate.
type ControlledPauliZ struct{ Control, Target int }

func (ControlledPauliZ) Name() string            { return "ControlledPauliZ" }
func (g ControlledPauliZ) Involved() Involvement { return Involve(g.Control, g.Target) }

// ControlledPhaseShift is the controlled phase shift gate.
type ControlledPhaseShift struct {
	Control, Target int
	Theta           Value
}

func (ControlledPhaseShift) Name() string            { return "ControlledPhaseShift" }
func (g ControlledPhaseShift) Involved() Involvement { return Involve(g.Control, g.Target) }

// ControlledRotateX is the controlled X rotation.
type ControlledRotateX struct {
	Control, Target int
	Theta           Value
}

func (ControlledRotateX) Name() string            { return "ControlledRotateX" }
func (g ControlledRotateX) Involved() Involvement { return Involve(g.Control, g.Target) }

// ControlledRotateXY is the controlled XY-plane rotation.
type ControlledRotateXY struct {
	Control, Target int
	Theta           Value
	Phi             Value
}

func (ControlledRotateXY) Name() string            { return "ControlledRotateXY" }
func (g ControlledRotateXY) Involved() Involvement { return Involve(g.Control, g.Target) }

// EchoCrossResonance is the echoed cross-resonance gate.
type EchoCrossResonance struct{ Control, Target int }

func (EchoCrossResonance) Name() string            { return "EchoCrossResonance" }
func (g EchoCrossResonance) Involved() Involvement { return Involve(g.Control, g.Target) }

// SWAP exchanges two qubits.
type SWAP struct{ Control, Target int }

func (SWAP) Name() string            { return "SWAP" }
func (g SWAP) Involved() Involvement { return Involve(g.Control, g.Target) }

// ISwap is the imaginary swap gate.
type ISwap struct{ Control, Target int }

func (ISwap) Name() string            { return "ISwap" }
func (g ISwap) Involved() Involvement { return Involve(g.Control, g.Target) }

// FSwap is the fermionic swap gate.
type FSwap struct{ Control, Target int }

func (FSwap) Name() string            { return "FSwap" }
func (g FSwap) Involved() Involvement { return Involve(g.Control, g.Target) }

// SqrtISwap is the square root of the ISwap gate.
type SqrtISwap struct{ Control, Target int }

func (SqrtISwap) Name() string            { return "SqrtISwap" }
func (g SqrtISwap) Involved() Involvement { return Involve(g.Control, g.Target) }

// InvSqrtISwap is the inverse square root of the ISwap gate.
type InvSqrtISwap struct{ Control, Target int }

func (InvSqrtISwap) Name() string            { return "InvSqrtISwap" }
func (g InvSqrtISwap) Involved() Involvement { return Involve(g.Control, g.Target) }

// XY is the XY interaction gate.
type XY struct {
	Control, Target int
	Theta           Value
}

func (XY) Name() string            { return "XY" }
func (g XY) Involved() Involvement { return Involve(g.Control, g.Target) }

// MolmerSorensenXX is the fixed-angle Molmer-Sorensen gate.
type MolmerSorensenXX struct{ Control, Target int }

func (MolmerSorensenXX) Name() string            { return "MolmerSorensenXX" }
func (g MolmerSorensenXX) Involved() Involvement { return Involve(g.Control, g.Target) }

// VariableMSXX is the variable-angle Molmer-Sorensen gate.
type VariableMSXX struct {
	Control, Target int
	Theta           Value
}

func (VariableMSXX) Name() string            { return "VariableMSXX" }
func (g VariableMSXX) Involved() Involvement { return Involve(g.Control, g.Target) }

// GivensRotation is the Givens rotation gate.
type GivensRotation struct {
	Control, Target int
	Theta           Value
	Phi             Value
}

func (GivensRotation) Name() string            { return "GivensRotation" }
func (g GivensRotation) Involved() Involvement { return Involve(g.Control, g.Target) }

// GivensRotationLittleEndian is the Givens rotation with little-endian
// qubit ordering.
type GivensRotationLittleEndian struct {
	Control, Target int
	Theta           Value
	Phi             Value
}

func (GivensRotationLittleEndian) Name() string { return "GivensRotationLittleEndian" }
func (g GivensRotationLittleEndian) Involved() Involvement {
	return Involve(g.Control, g.Target)
}

// Qsim is the Qsim two-qubit interaction gate.
type Qsim struct {
	Control, Target int
	X, Y, Z         Value
}

func (Qsim) Name() string            { return "Qsim" }
func (g Qsim) Involved() Involvement { return Involve(g.Control, g.Target) }

// Fsim is the fermionic simulation gate.
type Fsim struct {
	Control, Target int
	T, U, Delta     Value
}

func (Fsim) Name() string            { return "Fsim" }
func (g Fsim) Involved() Involvement { return Involve(g.Control, g.Target) }

// SpinInteraction is the generalized spin interaction gate.
type SpinInteraction struct {
	Control, Target int
	X, Y, Z         Value
}

func (SpinInteraction) Name() string            { return "SpinInteraction" }
func (g SpinInteraction) Involved() Involvement { return Involve(g.Control, g.Target) }

// Bogoliubov is the Bogoliubov-de Gennes interaction gate.
type Bogoliubov struct {
	Control, Target int
	DeltaReal       Value
	DeltaImag       Value
}

func (Bogoliubov) Name() string            { return "Bogoliubov" }
func (g Bogoliubov) Involved() Involvement { return Involve(g.Control, g.Target) }

// PMInteraction is the transversal (plus-minus) interaction gate.
type PMInteraction struct {
	Control, Target int
	T               Value
}

func (PMInteraction) Name() string            { return "PMInteraction" }
func (g PMInteraction) Involved() Involvement { return Involve(g.Control, g.Target) }

// ComplexPMInteraction is the complex-valued transversal interaction gate.
type ComplexPMInteraction struct {
	Control, Target int
	TReal           Value
	TImag           Value
}

func (ComplexPMInteraction) Name() string            { return "ComplexPMInteraction" }
func (g ComplexPMInteraction) Involved() Involvement { return Involve(g.Control, g.Target) }

// PhaseShiftedControlledZ is the controlled Z gate with single-qubit
// phase corrections.
type PhaseShiftedControlledZ struct {
	Control, Target int
	Phi             Value
}

func (PhaseShiftedControlledZ) Name() string { return "PhaseShiftedControlledZ" }
func (g PhaseShiftedControlledZ) Involved() Involvement {
	return Involve(g.Control, g.Target)
}

// PhaseShiftedControlledPhase is the controlled phase gate with
// single-qubit phase corrections.
type PhaseShiftedControlledPhase struct {
	Control, Target int
	Theta           Value
	Phi             Value
}

func (PhaseShiftedControlledPhase) Name() string { return "PhaseShiftedControlledPhase" }
func (g PhaseShiftedControlledPhase) Involved() Involvement {
	return Involve(g.Control, g.Target)
}

// Toffoli is the doubly-controlled NOT gate.
type Toffoli struct{ Control0, Control1, Target int }

func (Toffoli) Name() string { return "Toffoli" }
func (g Toffoli) Involved() Involvement {
	return Involve(g.Control0, g.Control1, g.Target)
}

// ControlledControlledPauliZ is the doubly-controlled Pauli Z gate.
type ControlledControlledPauliZ struct{ Control0, Control1, Target int }

func (ControlledControlledPauliZ) Name() string { return "ControlledControlledPauliZ" }
func (g ControlledControlledPauliZ) Involved() Involvement {
	return Involve(g.Control0, g.Control1, g.Target)
}

// ControlledControlledPhaseShift is the doubly-controlled phase shift gate.
type ControlledControlledPhaseShift struct {
	Control0, Control1, Target int
	Theta                      Value
}

func (ControlledControlledPhaseShift) Name() string { return "ControlledControlledPhaseShift" }
func (g ControlledControlledPhaseShift) Involved() Involvement {
	return Involve(g.Control0, g.Control1, g.Target)
}
