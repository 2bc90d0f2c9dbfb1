package circuit

// Pragma operations: annotation-class instructions that describe how a
// circuit is executed or measured rather than a unitary acting on it.
// All names carry the "Pragma" prefix so the rendering filter can drop
// them wholesale.

// Complex is a complex number split into parts, so that operations stay
// comparable and JSON-friendly.
type Complex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// PragmaSetNumberOfMeasurements declares how often the circuit is sampled.
type PragmaSetNumberOfMeasurements struct {
	Number  int
	Readout string
}

func (PragmaSetNumberOfMeasurements) Name() string          { return "PragmaSetNumberOfMeasurements" }
func (PragmaSetNumberOfMeasurements) Involved() Involvement { return InvolveNone() }

// PragmaSetStateVector replaces the full quantum state.
type PragmaSetStateVector struct {
	Statevector []Complex
}

func (PragmaSetStateVector) Name() string          { return "PragmaSetStateVector" }
func (PragmaSetStateVector) Involved() Involvement { return InvolveAll() }

// PragmaSetDensityMatrix replaces the full density matrix.
type PragmaSetDensityMatrix struct {
	Matrix [][]Complex
}

func (PragmaSetDensityMatrix) Name() string          { return "PragmaSetDensityMatrix" }
func (PragmaSetDensityMatrix) Involved() Involvement { return InvolveAll() }

// PragmaRepeatGate repeats the following gate a fixed number of times.
type PragmaRepeatGate struct {
	Repetitions int
}

func (PragmaRepeatGate) Name() string          { return "PragmaRepeatGate" }
func (PragmaRepeatGate) Involved() Involvement { return InvolveNone() }

// PragmaBoostNoise scales the noise model by a coefficient.
type PragmaBoostNoise struct {
	Coefficient Value
}

func (PragmaBoostNoise) Name() string          { return "PragmaBoostNoise" }
func (PragmaBoostNoise) Involved() Involvement { return InvolveNone() }

// PragmaGlobalPhase records an unobservable global phase.
type PragmaGlobalPhase struct {
	Phase Value
}

func (PragmaGlobalPhase) Name() string          { return "PragmaGlobalPhase" }
func (PragmaGlobalPhase) Involved() Involvement { return InvolveNone() }

// PragmaChangeDevice switches the target device mid-circuit.
type PragmaChangeDevice struct {
	WrappedName string
}

func (PragmaChangeDevice) Name() string          { return "PragmaChangeDevice" }
func (PragmaChangeDevice) Involved() Involvement { return InvolveNone() }

// InputSymbolic substitutes a named free parameter with a concrete value.
type InputSymbolic struct {
	Symbol string
	Input  float64
}

func (InputSymbolic) Name() string          { return "InputSymbolic" }
func (InputSymbolic) Involved() Involvement { return InvolveNone() }

// PragmaOverrotation adds statistical overrotation to matching gates.
type PragmaOverrotation struct {
	GateName  string
	Qubits    []int
	Amplitude float64
	Variance  float64
}

func (PragmaOverrotation) Name() string            { return "PragmaOverrotation" }
func (g PragmaOverrotation) Involved() Involvement { return Involve(g.Qubits...) }

// PragmaStopParallelBlock marks the end of a block executed in parallel.
type PragmaStopParallelBlock struct {
	Qubits        []int
	ExecutionTime Value
}

func (PragmaStopParallelBlock) Name() string            { return "PragmaStopParallelBlock" }
func (g PragmaStopParallelBlock) Involved() Involvement { return Involve(g.Qubits...) }

// PragmaStartDecompositionBlock marks the start of a decomposition block
// with an optional qubit reordering.
type PragmaStartDecompositionBlock struct {
	Qubits     []int
	Reordering map[int]int
}

func (PragmaStartDecompositionBlock) Name() string { return "PragmaStartDecompositionBlock" }
func (g PragmaStartDecompositionBlock) Involved() Involvement {
	return Involve(g.Qubits...)
}

// PragmaStopDecompositionBlock marks the end of a decomposition block.
type PragmaStopDecompositionBlock struct {
	Qubits []int
}

func (PragmaStopDecompositionBlock) Name() string { return "PragmaStopDecompositionBlock" }
func (g PragmaStopDecompositionBlock) Involved() Involvement {
	return Involve(g.Qubits...)
}

// PragmaSleep idles the listed qubits for a duration.
type PragmaSleep struct {
	Qubits    []int
	SleepTime Value
}

func (PragmaSleep) Name() string            { return "PragmaSleep" }
func (g PragmaSleep) Involved() Involvement { return Involve(g.Qubits...) }

// PragmaActiveReset actively resets a qubit to |0>.
type PragmaActiveReset struct {
	Qubit int
}

func (PragmaActiveReset) Name() string            { return "PragmaActiveReset" }
func (g PragmaActiveReset) Involved() Involvement { return Involve(g.Qubit) }

// PragmaDamping applies amplitude damping noise.
type PragmaDamping struct {
	Qubit    int
	GateTime Value
	Rate     Value
}

func (PragmaDamping) Name() string            { return "PragmaDamping" }
func (g PragmaDamping) Involved() Involvement { return Involve(g.Qubit) }

// PragmaDepolarising applies depolarising noise.
type PragmaDepolarising struct {
	Qubit    int
	GateTime Value
	Rate     Value
}

func (PragmaDepolarising) Name() string            { return "PragmaDepolarising" }
func (g PragmaDepolarising) Involved() Involvement { return Involve(g.Qubit) }

// PragmaDephasing applies dephasing noise.
type PragmaDephasing struct {
	Qubit    int
	GateTime Value
	Rate     Value
}

func (PragmaDephasing) Name() string            { return "PragmaDephasing" }
func (g PragmaDephasing) Involved() Involvement { return Involve(g.Qubit) }

// PragmaRandomNoise applies stochastically unravelled noise.
type PragmaRandomNoise struct {
	Qubit            int
	GateTime         Value
	DepolarisingRate Value
	DephasingRate    Value
}

func (PragmaRandomNoise) Name() string            { return "PragmaRandomNoise" }
func (g PragmaRandomNoise) Involved() Involvement { return Involve(g.Qubit) }

// PragmaGeneralNoise applies noise described by a full rate matrix.
type PragmaGeneralNoise struct {
	Qubit    int
	GateTime Value
	Rates    [][]float64
}

func (PragmaGeneralNoise) Name() string            { return "PragmaGeneralNoise" }
func (g PragmaGeneralNoise) Involved() Involvement { return Involve(g.Qubit) }

// PragmaConditional executes its sub-circuit only when a classical
// register bit is set.
type PragmaConditional struct {
	ConditionRegister string
	ConditionIndex    int
	Circuit           *Circuit
}

func (PragmaConditional) Name() string { return "PragmaConditional" }
func (g PragmaConditional) Involved() Involvement {
	if g.Circuit == nil {
		return InvolveNone()
	}
	return g.Circuit.Involved()
}

// PragmaLoop repeats its sub-circuit a number of times.
type PragmaLoop struct {
	Repetitions Value
	Circuit     *Circuit
}

func (PragmaLoop) Name() string { return "PragmaLoop" }
func (g PragmaLoop) Involved() Involvement {
	if g.Circuit == nil {
		return InvolveNone()
	}
	return g.Circuit.Involved()
}

// PragmaControlledCircuit executes its sub-circuit controlled on a qubit.
type PragmaControlledCircuit struct {
	ControllingQubit int
	Circuit          *Circuit
}

func (PragmaControlledCircuit) Name() string { return "PragmaControlledCircuit" }
func (g PragmaControlledCircuit) Involved() Involvement {
	if g.Circuit == nil {
		return Involve(g.ControllingQubit)
	}
	inner := g.Circuit.Involved()
	if inner.All() {
		return InvolveAll()
	}
	return Involve(append([]int{g.ControllingQubit}, inner.qubits...)...)
}

// PragmaGetStateVector extracts the state vector into a readout register.
// The optional measurement circuit is rendered as the bracket body; when
// absent the layout engine substitutes one Identity per known qubit.
type PragmaGetStateVector struct {
	Readout string
	Circuit *Circuit
}

func (PragmaGetStateVector) Name() string { return "PragmaGetStateVector" }
func (g PragmaGetStateVector) Involved() Involvement {
	if g.Circuit == nil {
		return InvolveAll()
	}
	return g.Circuit.Involved()
}

// PragmaGetDensityMatrix extracts the density matrix.
type PragmaGetDensityMatrix struct {
	Readout string
	Circuit *Circuit
}

func (PragmaGetDensityMatrix) Name() string { return "PragmaGetDensityMatrix" }
func (g PragmaGetDensityMatrix) Involved() Involvement {
	if g.Circuit == nil {
		return InvolveAll()
	}
	return g.Circuit.Involved()
}

// PragmaGetOccupationProbability extracts occupation probabilities.
type PragmaGetOccupationProbability struct {
	Readout string
	Circuit *Circuit
}

func (PragmaGetOccupationProbability) Name() string { return "PragmaGetOccupationProbability" }
func (g PragmaGetOccupationProbability) Involved() Involvement {
	if g.Circuit == nil {
		return InvolveAll()
	}
	return g.Circuit.Involved()
}

// PragmaGetPauliProduct measures the expectation value of a Pauli product.
// QubitPaulis maps qubit index to a Pauli code: 0=I, 1=X, 2=Y, 3=Z.
type PragmaGetPauliProduct struct {
	QubitPaulis map[int]int
	Readout     string
	Circuit     *Circuit
}

func (PragmaGetPauliProduct) Name() string { return "PragmaGetPauliProduct" }
func (g PragmaGetPauliProduct) Involved() Involvement {
	var qubits []int
	for q := range g.QubitPaulis {
		qubits = append(qubits, q)
	}
	if g.Circuit != nil {
		inner := g.Circuit.Involved()
		if inner.All() {
			return InvolveAll()
		}
		qubits = append(qubits, inner.qubits...)
	}
	return Involve(qubits...)
}

// PragmaRepeatedMeasurement measures all (or the mapped) qubits a number
// of times into a readout register.
type PragmaRepeatedMeasurement struct {
	Readout      string
	Number       int
	QubitMapping map[int]int
}

func (PragmaRepeatedMeasurement) Name() string { return "PragmaRepeatedMeasurement" }
func (g PragmaRepeatedMeasurement) Involved() Involvement {
	if g.QubitMapping == nil {
		return InvolveAll()
	}
	var qubits []int
	for q := range g.QubitMapping {
		qubits = append(qubits, q)
	}
	return Involve(qubits...)
}

// PragmaAnnotatedOp wraps another operation with a free-text annotation.
type PragmaAnnotatedOp struct {
	Operation  Operation
	Annotation string
}

func (PragmaAnnotatedOp) Name() string { return "PragmaAnnotatedOp" }
func (g PragmaAnnotatedOp) Involved() Involvement {
	if g.Operation == nil {
		return InvolveNone()
	}
	return g.Operation.Involved()
}
