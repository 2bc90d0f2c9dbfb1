package circuit

// Bosonic operations act on resonator modes instead of qubits. Pure mode
// operations involve no qubits; qubit-resonator couplings involve the
// single qubit they touch.

// Squeezing squeezes a bosonic mode.
type Squeezing struct {
	Mode      int
	Squeezing Value
	Phase     Value
}

func (Squeezing) Name() string          { return "Squeezing" }
func (Squeezing) Involved() Involvement { return InvolveNone() }

// PhaseShift rotates a bosonic mode in phase space.
type PhaseShift struct {
	Mode  int
	Phase Value
}

func (PhaseShift) Name() string          { return "PhaseShift" }
func (PhaseShift) Involved() Involvement { return InvolveNone() }

// PhaseDisplacement displaces a bosonic mode by amplitude and phase.
type PhaseDisplacement struct {
	Mode         int
	Displacement Value
	Phase        Value
}

func (PhaseDisplacement) Name() string          { return "PhaseDisplacement" }
func (PhaseDisplacement) Involved() Involvement { return InvolveNone() }

// BeamSplitter couples two bosonic modes.
type BeamSplitter struct {
	Mode0 int
	Mode1 int
	Theta Value
	Phi   Value
}

func (BeamSplitter) Name() string          { return "BeamSplitter" }
func (BeamSplitter) Involved() Involvement { return InvolveNone() }

// PhotonDetection measures the photon number of a mode into a readout
// register.
type PhotonDetection struct {
	Mode         int
	Readout      string
	ReadoutIndex int
}

func (PhotonDetection) Name() string          { return "PhotonDetection" }
func (PhotonDetection) Involved() Involvement { return InvolveNone() }

// QuantumRabi applies the quantum Rabi interaction between a qubit and a
// mode.
type QuantumRabi struct {
	Qubit int
	Mode  int
	Theta Value
}

func (QuantumRabi) Name() string            { return "QuantumRabi" }
func (g QuantumRabi) Involved() Involvement { return Involve(g.Qubit) }

// LongitudinalCoupling applies longitudinal qubit-resonator coupling.
type LongitudinalCoupling struct {
	Qubit int
	Mode  int
	Theta Value
}

func (LongitudinalCoupling) Name() string            { return "LongitudinalCoupling" }
func (g LongitudinalCoupling) Involved() Involvement { return Involve(g.Qubit) }

// JaynesCummings applies the Jaynes-Cummings interaction.
type JaynesCummings struct {
	Qubit int
	Mode  int
	Theta Value
}

func (JaynesCummings) Name() string            { return "JaynesCummings" }
func (g JaynesCummings) Involved() Involvement { return Involve(g.Qubit) }

// SingleExcitationStore moves a single excitation from a qubit into a mode.
type SingleExcitationStore struct {
	Qubit int
	Mode  int
}

func (SingleExcitationStore) Name() string            { return "SingleExcitationStore" }
func (g SingleExcitationStore) Involved() Involvement { return Involve(g.Qubit) }

// SingleExcitationLoad moves a single excitation from a mode into a qubit.
type SingleExcitationLoad struct {
	Qubit int
	Mode  int
}

func (SingleExcitationLoad) Name() string            { return "SingleExcitationLoad" }
func (g SingleExcitationLoad) Involved() Involvement { return Involve(g.Qubit) }

// CZQubitResonator applies a controlled-Z between a qubit and a mode.
type CZQubitResonator struct {
	Qubit int
	Mode  int
}

func (CZQubitResonator) Name() string            { return "CZQubitResonator" }
func (g CZQubitResonator) Involved() Involvement { return Involve(g.Qubit) }
