package circuit

import (
	"encoding/json"

	qerrors "github.com/qcdraw/qcdraw/pkg/errors"
)

// The wire format wraps every operation in an envelope object carrying
// the operation name under the "op" key next to the operation's own
// fields:
//
//	{"op": "RotateX", "Qubit": 0, "Theta": 1.57}
//
// Circuits are {"operations": [...]}.

type circuitJSON struct {
	Operations []json.RawMessage `json:"operations"`
}

// MarshalJSON implements json.Marshaler.
func (c Circuit) MarshalJSON() ([]byte, error) {
	out := circuitJSON{Operations: make([]json.RawMessage, 0, len(c.Operations))}
	for _, op := range c.Operations {
		raw, err := marshalOp(op)
		if err != nil {
			return nil, err
		}
		out.Operations = append(out.Operations, raw)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Circuit) UnmarshalJSON(data []byte) error {
	var in circuitJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return qerrors.Wrap(qerrors.ErrCodeInvalidFormat, err, "decoding circuit")
	}
	c.Operations = make([]Operation, 0, len(in.Operations))
	for _, raw := range in.Operations {
		op, err := decodeOperation(raw)
		if err != nil {
			return err
		}
		c.Operations = append(c.Operations, op)
	}
	return nil
}

func marshalOp(op Operation) (json.RawMessage, error) {
	body, err := json.Marshal(op)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidFormat, err, "encoding %s", op.Name())
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidFormat, err, "encoding %s", op.Name())
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	name, err := json.Marshal(op.Name())
	if err != nil {
		return nil, err
	}
	fields["op"] = name
	return json.Marshal(fields)
}

func decodeOperation(raw json.RawMessage) (Operation, error) {
	var envelope struct {
		Op string `json:"op"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidFormat, err, "decoding operation envelope")
	}
	decode, ok := opRegistry[envelope.Op]
	if !ok {
		return nil, qerrors.New(qerrors.ErrCodeUnsupportedOperation, "unknown operation %q", envelope.Op)
	}
	op, err := decode(raw)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidFormat, err, "decoding %s", envelope.Op)
	}
	return op, nil
}

func decodeAs[T Operation](raw []byte) (Operation, error) {
	var op T
	if err := json.Unmarshal(raw, &op); err != nil {
		return nil, err
	}
	return op, nil
}

// MarshalJSON keeps the wrapped operation in envelope form so it can be
// decoded again.
func (g PragmaAnnotatedOp) MarshalJSON() ([]byte, error) {
	var inner json.RawMessage
	if g.Operation != nil {
		var err error
		inner, err = marshalOp(g.Operation)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(struct {
		Operation  json.RawMessage `json:"Operation,omitempty"`
		Annotation string          `json:"Annotation"`
	}{inner, g.Annotation})
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *PragmaAnnotatedOp) UnmarshalJSON(data []byte) error {
	var in struct {
		Operation  json.RawMessage `json:"Operation"`
		Annotation string          `json:"Annotation"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	g.Annotation = in.Annotation
	if len(in.Operation) > 0 {
		op, err := decodeOperation(in.Operation)
		if err != nil {
			return err
		}
		g.Operation = op
	}
	return nil
}

var opRegistry = map[string]func([]byte) (Operation, error){
	// Single qubit.
	"Hadamard":                  decodeAs[Hadamard],
	"PauliX":                    decodeAs[PauliX],
	"PauliY":                    decodeAs[PauliY],
	"PauliZ":                    decodeAs[PauliZ],
	"SqrtPauliX":                decodeAs[SqrtPauliX],
	"InvSqrtPauliX":             decodeAs[InvSqrtPauliX],
	"SGate":                     decodeAs[SGate],
	"TGate":                     decodeAs[TGate],
	"Identity":                  decodeAs[Identity],
	"SingleQubitGate":           decodeAs[SingleQubitGate],
	"RotateX":                   decodeAs[RotateX],
	"RotateY":                   decodeAs[RotateY],
	"RotateZ":                   decodeAs[RotateZ],
	"RotateXY":                  decodeAs[RotateXY],
	"RotateAroundSphericalAxis": decodeAs[RotateAroundSphericalAxis],
	"PhaseShiftState0":          decodeAs[PhaseShiftState0],
	"PhaseShiftState1":          decodeAs[PhaseShiftState1],
	"GPi":                       decodeAs[GPi],
	"GPi2":                      decodeAs[GPi2],

	// Two qubit.
	"CNOT":                        decodeAs[CNOT],
	"ControlledPauliY":            decodeAs[ControlledPauliY],
	"ControlledPauliZ":            decodeAs[ControlledPauliZ],
	"ControlledPhaseShift":        decodeAs[ControlledPhaseShift],
	"ControlledRotateX":           decodeAs[ControlledRotateX],
	"ControlledRotateXY":          decodeAs[ControlledRotateXY],
	"EchoCrossResonance":          decodeAs[EchoCrossResonance],
	"SWAP":                        decodeAs[SWAP],
	"ISwap":                       decodeAs[ISwap],
	"FSwap":                       decodeAs[FSwap],
	"SqrtISwap":                   decodeAs[SqrtISwap],
	"InvSqrtISwap":                decodeAs[InvSqrtISwap],
	"XY":                          decodeAs[XY],
	"MolmerSorensenXX":            decodeAs[MolmerSorensenXX],
	"VariableMSXX":                decodeAs[VariableMSXX],
	"GivensRotation":              decodeAs[GivensRotation],
	"GivensRotationLittleEndian":  decodeAs[GivensRotationLittleEndian],
	"Qsim":                        decodeAs[Qsim],
	"Fsim":                        decodeAs[Fsim],
	"SpinInteraction":             decodeAs[SpinInteraction],
	"Bogoliubov":                  decodeAs[Bogoliubov],
	"PMInteraction":               decodeAs[PMInteraction],
	"ComplexPMInteraction":        decodeAs[ComplexPMInteraction],
	"PhaseShiftedControlledZ":     decodeAs[PhaseShiftedControlledZ],
	"PhaseShiftedControlledPhase": decodeAs[PhaseShiftedControlledPhase],

	// Three and multi qubit.
	"Toffoli":                        decodeAs[Toffoli],
	"ControlledControlledPauliZ":     decodeAs[ControlledControlledPauliZ],
	"ControlledControlledPhaseShift": decodeAs[ControlledControlledPhaseShift],
	"MultiQubitMS":                   decodeAs[MultiQubitMS],
	"MultiQubitZZ":                   decodeAs[MultiQubitZZ],

	// Bosonic and hybrid.
	"Squeezing":             decodeAs[Squeezing],
	"PhaseShift":            decodeAs[PhaseShift],
	"PhaseDisplacement":     decodeAs[PhaseDisplacement],
	"BeamSplitter":          decodeAs[BeamSplitter],
	"PhotonDetection":       decodeAs[PhotonDetection],
	"QuantumRabi":           decodeAs[QuantumRabi],
	"LongitudinalCoupling":  decodeAs[LongitudinalCoupling],
	"JaynesCummings":        decodeAs[JaynesCummings],
	"SingleExcitationStore": decodeAs[SingleExcitationStore],
	"SingleExcitationLoad":  decodeAs[SingleExcitationLoad],
	"CZQubitResonator":      decodeAs[CZQubitResonator],

	// Classical.
	"MeasureQubit":      decodeAs[MeasureQubit],
	"DefinitionBit":     decodeAs[DefinitionBit],
	"DefinitionFloat":   decodeAs[DefinitionFloat],
	"DefinitionComplex": decodeAs[DefinitionComplex],
	"DefinitionUsize":   decodeAs[DefinitionUsize],
	"InputBit":          decodeAs[InputBit],

	// Pragmas.
	"PragmaSetNumberOfMeasurements":  decodeAs[PragmaSetNumberOfMeasurements],
	"PragmaSetStateVector":           decodeAs[PragmaSetStateVector],
	"PragmaSetDensityMatrix":         decodeAs[PragmaSetDensityMatrix],
	"PragmaRepeatGate":               decodeAs[PragmaRepeatGate],
	"PragmaBoostNoise":               decodeAs[PragmaBoostNoise],
	"PragmaGlobalPhase":              decodeAs[PragmaGlobalPhase],
	"PragmaChangeDevice":             decodeAs[PragmaChangeDevice],
	"InputSymbolic":                  decodeAs[InputSymbolic],
	"PragmaOverrotation":             decodeAs[PragmaOverrotation],
	"PragmaStopParallelBlock":        decodeAs[PragmaStopParallelBlock],
	"PragmaStartDecompositionBlock":  decodeAs[PragmaStartDecompositionBlock],
	"PragmaStopDecompositionBlock":   decodeAs[PragmaStopDecompositionBlock],
	"PragmaSleep":                    decodeAs[PragmaSleep],
	"PragmaActiveReset":              decodeAs[PragmaActiveReset],
	"PragmaDamping":                  decodeAs[PragmaDamping],
	"PragmaDepolarising":             decodeAs[PragmaDepolarising],
	"PragmaDephasing":                decodeAs[PragmaDephasing],
	"PragmaRandomNoise":              decodeAs[PragmaRandomNoise],
	"PragmaGeneralNoise":             decodeAs[PragmaGeneralNoise],
	"PragmaConditional":              decodeAs[PragmaConditional],
	"PragmaLoop":                     decodeAs[PragmaLoop],
	"PragmaControlledCircuit":        decodeAs[PragmaControlledCircuit],
	"PragmaGetStateVector":           decodeAs[PragmaGetStateVector],
	"PragmaGetDensityMatrix":         decodeAs[PragmaGetDensityMatrix],
	"PragmaGetOccupationProbability": decodeAs[PragmaGetOccupationProbability],
	"PragmaGetPauliProduct":          decodeAs[PragmaGetPauliProduct],
	"PragmaRepeatedMeasurement":      decodeAs[PragmaRepeatedMeasurement],
	"PragmaAnnotatedOp":              decodeAs[PragmaAnnotatedOp],
}
