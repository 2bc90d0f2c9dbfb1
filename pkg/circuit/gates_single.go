package circuit

// Single-qubit gate operations. Each acts on exactly one qubit track and
// occupies one column.

// Hadamard is the Hadamard gate.
type Hadamard struct{ Qubit int }

func (Hadamard) Name() string            { return "Hadamard" }
func (g Hadamard) Involved() Involvement { return Involve(g.Qubit) }

// PauliX is the Pauli X gate.
type PauliX struct{ Qubit int }

func (PauliX) Name() string            { return "PauliX" }
func (g PauliX) Involved() Involvement { return Involve(g.Qubit) }

// PauliY is the Pauli Y gate.
type PauliY struct{ Qubit int }

func (PauliY) Name() string            { return "PauliY" }
func (g PauliY) Involved() Involvement { return Involve(g.Qubit) }

// PauliZ is the Pauli Z gate.
type PauliZ struct{ Qubit int }

func (PauliZ) Name() string            { return "PauliZ" }
func (g PauliZ) Involved() Involvement { return Involve(g.Qubit) }

// SqrtPauliX is the square root of the Pauli X gate.
type SqrtPauliX struct{ Qubit int }

func (SqrtPauliX) Name() string            { return "SqrtPauliX" }
func (g SqrtPauliX) Involved() Involvement { return Involve(g.Qubit) }

// InvSqrtPauliX is the inverse square root of the Pauli X gate.
type InvSqrtPauliX struct{ Qubit int }

func (InvSqrtPauliX) Name() string            { return "InvSqrtPauliX" }
func (g InvSqrtPauliX) Involved() Involvement { return Involve(g.Qubit) }

// SGate is the S phase gate.
type SGate struct{ Qubit int }

func (SGate) Name() string            { return "SGate" }
func (g SGate) Involved() Involvement { return Involve(g.Qubit) }

// TGate is the T phase gate.
type TGate struct{ Qubit int }

func (TGate) Name() string            { return "TGate" }
func (g TGate) Involved() Involvement { return Involve(g.Qubit) }

// Identity is the identity gate. It still occupies a column, which is why
// extraction pragmas use it as the default body for otherwise idle qubits.
type Identity struct{ Qubit int }

func (Identity) Name() string            { return "Identity" }
func (g Identity) Involved() Involvement { return Involve(g.Qubit) }

// SingleQubitGate is the generic unitary with explicit matrix coefficients.
type SingleQubitGate struct {
	Qubit       int
	AlphaR      Value
	AlphaI      Value
	BetaR       Value
	BetaI       Value
	GlobalPhase Value
}

func (SingleQubitGate) Name() string            { return "SingleQubitGate" }
func (g SingleQubitGate) Involved() Involvement { return Involve(g.Qubit) }

// RotateX rotates around the X axis by Theta.
type RotateX struct {
	Qubit int
	Theta Value
}

func (RotateX) Name() string            { return "RotateX" }
func (g RotateX) Involved() Involvement { return Involve(g.Qubit) }

// RotateY rotates around the Y axis by Theta.
type RotateY struct {
	Qubit int
	Theta Value
}

func (RotateY) Name() string            { return "RotateY" }
func (g RotateY) Involved() Involvement { return Involve(g.Qubit) }

// RotateZ rotates around the Z axis by Theta.
type RotateZ struct {
	Qubit int
	Theta Value
}

func (RotateZ) Name() string            { return "RotateZ" }
func (g RotateZ) Involved() Involvement { return Involve(g.Qubit) }

// RotateXY rotates in the XY plane.
type RotateXY struct {
	Qubit int
	Theta Value
	Phi   Value
}

func (RotateXY) Name() string            { return "RotateXY" }
func (g RotateXY) Involved() Involvement { return Involve(g.Qubit) }

// RotateAroundSphericalAxis rotates around an arbitrary axis given in
// spherical coordinates.
type RotateAroundSphericalAxis struct {
	Qubit          int
	Theta          Value
	SphericalTheta Value
	SphericalPhi   Value
}

func (RotateAroundSphericalAxis) Name() string { return "RotateAroundSphericalAxis" }
func (g RotateAroundSphericalAxis) Involved() Involvement {
	return Involve(g.Qubit)
}

// PhaseShiftState0 applies a phase to the |0> component.
type PhaseShiftState0 struct {
	Qubit int
	Theta Value
}

func (PhaseShiftState0) Name() string            { return "PhaseShiftState0" }
func (g PhaseShiftState0) Involved() Involvement { return Involve(g.Qubit) }

// PhaseShiftState1 applies a phase to the |1> component.
type PhaseShiftState1 struct {
	Qubit int
	Theta Value
}

func (PhaseShiftState1) Name() string            { return "PhaseShiftState1" }
func (g PhaseShiftState1) Involved() Involvement { return Involve(g.Qubit) }

// GPi is the IonQ GPi gate.
type GPi struct {
	Qubit int
	Theta Value
}

func (GPi) Name() string            { return "GPi" }
func (g GPi) Involved() Involvement { return Involve(g.Qubit) }

// GPi2 is the IonQ GPi2 gate.
type GPi2 struct {
	Qubit int
	Theta Value
}

func (GPi2) Name() string            { return "GPi2" }
func (g GPi2) Involved() Involvement { return Involve(g.Qubit) }
