package layout

import (
	"fmt"
	"strings"

	"github.com/qcdraw/qcdraw/pkg/circuit"
	qerrors "github.com/qcdraw/qcdraw/pkg/errors"
)

// diagram is the mutable placement state: one grid per domain.
type diagram struct {
	qubits    *grid
	bosons    *grid
	classical *grid
}

func newDiagram() *diagram {
	return &diagram{qubits: newGrid(), bosons: newGrid(), classical: newGrid()}
}

func order(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}

func spanInts(min, max int) []int {
	span := make([]int, 0, max-min+1)
	for i := min; i <= max; i++ {
		span = append(span, i)
	}
	return span
}

func minMaxOf(values []int) (int, int) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// place appends one operation to the diagram. Every operation first
// aligns and unblocks the qubit tracks it involves; the per-kind logic
// below then adds its cells.
func (d *diagram) place(op circuit.Operation) error {
	used := op.Involved().Qubits(len(d.qubits.tracks))
	d.qubits.ensure(used...)
	d.qubits.flatten(used...)
	for _, q := range used {
		d.qubits.drain(q)
	}

	switch g := op.(type) {
	// Plain single-qubit gates.
	case circuit.Hadamard:
		d.placeSingle(g.Qubit, "$ H $")
	case circuit.PauliX:
		d.placeSingle(g.Qubit, "$ X $")
	case circuit.PauliY:
		d.placeSingle(g.Qubit, "$ Y $")
	case circuit.PauliZ:
		d.placeSingle(g.Qubit, "$ Z $")
	case circuit.SqrtPauliX:
		d.placeSingle(g.Qubit, "$ sqrt(X) $")
	case circuit.InvSqrtPauliX:
		d.placeSingle(g.Qubit, "$ sqrt(X)^(dagger) $")
	case circuit.SGate:
		d.placeSingle(g.Qubit, "$ S $")
	case circuit.TGate:
		d.placeSingle(g.Qubit, "$ T $")
	case circuit.Identity:
		d.placeSingle(g.Qubit, "$ I $")
	case circuit.SingleQubitGate:
		d.placeSingle(g.Qubit, fmt.Sprintf(
			`gate($ U(%s+%si,%s+%si,%s) $, label: "SingleQubitGate")`,
			formatValue(g.AlphaR), formatValue(g.AlphaI),
			formatValue(g.BetaR), formatValue(g.BetaI),
			formatValue(g.GlobalPhase)))
	case circuit.RotateX:
		d.placeSingle(g.Qubit, fmt.Sprintf(`gate($ "Rx"(%s) $)`, formatValue(g.Theta)))
	case circuit.RotateY:
		d.placeSingle(g.Qubit, fmt.Sprintf(`gate($ "Ry"(%s) $)`, formatValue(g.Theta)))
	case circuit.RotateZ:
		d.placeSingle(g.Qubit, fmt.Sprintf(`gate($ "Rz"(%s) $)`, formatValue(g.Theta)))
	case circuit.RotateXY:
		d.placeSingle(g.Qubit, fmt.Sprintf(
			`gate($ "Rxy"(%s,%s) $)`, formatValue(g.Theta), formatValue(g.Phi)))
	case circuit.RotateAroundSphericalAxis:
		d.placeSingle(g.Qubit, fmt.Sprintf(
			`gate($ "Rsph"(%s,%s,%s) $, label: "RotateAroundSphericalAxis")`,
			formatValue(g.Theta), formatValue(g.SphericalTheta), formatValue(g.SphericalPhi)))
	case circuit.PhaseShiftState0:
		d.placeSingle(g.Qubit, fmt.Sprintf(
			`gate($ "p0"(%s) $, label: "PhaseShiftState0")`, formatValue(g.Theta)))
	case circuit.PhaseShiftState1:
		d.placeSingle(g.Qubit, fmt.Sprintf(
			`gate($ "p1"(%s) $, label: "PhaseShiftState1")`, formatValue(g.Theta)))
	case circuit.GPi:
		d.placeSingle(g.Qubit, fmt.Sprintf(`gate($ "GPi"(%s) $)`, formatValue(g.Theta)))
	case circuit.GPi2:
		d.placeSingle(g.Qubit, fmt.Sprintf(`gate($ "GPi2"(%s) $)`, formatValue(g.Theta)))

	// Controlled gates drawn as a dot plus target cell.
	case circuit.CNOT:
		d.placeCtrl(g.Control, g.Target, "targ()")
	case circuit.ControlledPauliY:
		d.placeCtrl(g.Control, g.Target, `gate($ "Y" $)`)
	case circuit.ControlledPauliZ:
		d.placeCtrl(g.Control, g.Target, `gate($ "Z" $)`)
	case circuit.ControlledPhaseShift:
		d.placeCtrl(g.Control, g.Target, fmt.Sprintf(
			`gate($ "PhaseShift"(%s) $)`, formatValue(g.Theta)))
	case circuit.ControlledRotateX:
		d.placeCtrl(g.Control, g.Target, fmt.Sprintf(
			`gate($ "Rx"(%s) $)`, formatValue(g.Theta)))
	case circuit.ControlledRotateXY:
		d.placeCtrl(g.Control, g.Target, fmt.Sprintf(
			`gate($ "Rxy"(%s,%s) $)`, formatValue(g.Theta), formatValue(g.Phi)))
	case circuit.EchoCrossResonance:
		d.placeCtrl(g.Control, g.Target, `gate($ "EchoCrossResonance" $)`)

	// Swap-style gates.
	case circuit.SWAP:
		d.placeSwap(g.Control, g.Target, "")
	case circuit.ISwap:
		d.placeSwap(g.Control, g.Target, `label: "ISwap"`)
	case circuit.FSwap:
		d.placeSwap(g.Control, g.Target, `label: "FSwap"`)
	case circuit.SqrtISwap:
		d.placeSwap(g.Control, g.Target, `label: $ sqrt("ISwap") $`)
	case circuit.InvSqrtISwap:
		d.placeSwap(g.Control, g.Target, `label: $ sqrt("ISwap")^(dagger) $`)

	// Two-qubit gates drawn as a spanning box.
	case circuit.XY:
		d.placePairBox(g.Control, g.Target,
			fmt.Sprintf(`"XY"(%s)`, formatValue(g.Theta)), "5em", "x", "x")
	case circuit.MolmerSorensenXX:
		d.placePairBox(g.Control, g.Target, `"MolmerSorensenXX"`, "9em", "ctrl", "targ")
	case circuit.VariableMSXX:
		d.placePairBox(g.Control, g.Target,
			fmt.Sprintf(`"VariableMSXX"(%s)`, formatValue(g.Theta)), "10em", "x", "x")
	case circuit.GivensRotation:
		d.placePairBox(g.Control, g.Target,
			fmt.Sprintf(`"GivensRotation"\ (%s,%s)`, formatValue(g.Theta), formatValue(g.Phi)),
			"11em", "ctrl", "targ")
	case circuit.GivensRotationLittleEndian:
		d.placePairBox(g.Control, g.Target,
			fmt.Sprintf(`"GivensRotationLE"\ (%s,%s)`, formatValue(g.Theta), formatValue(g.Phi)),
			"12em", "ctrl", "targ")
	case circuit.Qsim:
		d.placePairBox(g.Control, g.Target,
			fmt.Sprintf(`"Qsim"(%s,%s,%s)`, formatValue(g.X), formatValue(g.Y), formatValue(g.Z)),
			"11em", "x", "x")
	case circuit.Fsim:
		d.placePairBox(g.Control, g.Target,
			fmt.Sprintf(`"Fsim"(%s,%s,%s)`, formatValue(g.T), formatValue(g.U), formatValue(g.Delta)),
			"11em", "x", "x")
	case circuit.SpinInteraction:
		d.placePairBox(g.Control, g.Target,
			fmt.Sprintf(`"SpinInteraction"\ (%s,%s,%s)`, formatValue(g.X), formatValue(g.Y), formatValue(g.Z)),
			"12em", "x", "x")
	case circuit.Bogoliubov:
		d.placePairBox(g.Control, g.Target,
			fmt.Sprintf(`"Bogoliubov"\ (%s+%si)`, formatValue(g.DeltaReal), formatValue(g.DeltaImag)),
			"9em", "x", "x")
	case circuit.PMInteraction:
		d.placePairBox(g.Control, g.Target,
			fmt.Sprintf(`"PMInteraction"\ (%s)`, formatValue(g.T)), "9em", "x", "x")
	case circuit.ComplexPMInteraction:
		d.placePairBox(g.Control, g.Target,
			fmt.Sprintf(`"ComplexPMInteraction"\ (%s,%si)`, formatValue(g.TReal), formatValue(g.TImag)),
			"12em", "x", "x")
	case circuit.PhaseShiftedControlledZ:
		d.placePairBox(g.Control, g.Target,
			fmt.Sprintf(`"PhaseShiftedControlledZ"\ (%s)`, formatValue(g.Phi)),
			"15em", "ctrl", "targ")
	case circuit.PhaseShiftedControlledPhase:
		d.placePairBox(g.Control, g.Target,
			fmt.Sprintf(`"PhaseShiftedControlledPhase"\ (%s,%s)`, formatValue(g.Theta), formatValue(g.Phi)),
			"14em", "ctrl", "targ")

	// Three-qubit gates: two control dots plus a target cell.
	case circuit.Toffoli:
		d.placeDoubleCtrl(g.Control0, g.Control1, g.Target, "targ()")
	case circuit.ControlledControlledPauliZ:
		d.placeDoubleCtrl(g.Control0, g.Control1, g.Target, "gate($ Z $)")
	case circuit.ControlledControlledPhaseShift:
		d.placeDoubleCtrl(g.Control0, g.Control1, g.Target, `gate($ "PhaseShift" $)`)

	// Multi-qubit boxes over an explicit qubit list.
	case circuit.MultiQubitMS:
		return d.placeMultiBox(op, g.Qubits,
			fmt.Sprintf(`"MultiQubitMS"(%s)`, formatValue(g.Theta)), "11em", false)
	case circuit.MultiQubitZZ:
		return d.placeMultiBox(op, g.Qubits,
			fmt.Sprintf(`"MultiQubitZZ"(%s)`, formatValue(g.Theta)), "11em", false)
	case circuit.PragmaOverrotation:
		return d.placeMultiBox(op, g.Qubits, fmt.Sprintf(
			`"Overrotation"\ (%s,%s)\ "\"%s\""`,
			formatFloat(g.Amplitude), formatFloat(g.Variance), g.GateName), "10em", true)
	case circuit.PragmaStopParallelBlock:
		return d.placeMultiBox(op, g.Qubits,
			fmt.Sprintf(`"StopParallelBlock"\ (%s)`, formatValue(g.ExecutionTime)), "13em", true)
	case circuit.PragmaStartDecompositionBlock:
		return d.placeMultiBox(op, g.Qubits,
			fmt.Sprintf(`"StartDecompositionBlock"\ "%s"`, formatReordering(g.Reordering)), "14em", true)
	case circuit.PragmaStopDecompositionBlock:
		return d.placeMultiBox(op, g.Qubits, `"StopDecompositionBlock"`, "13em", true)
	case circuit.PragmaSleep:
		return d.placeMultiBox(op, g.Qubits,
			fmt.Sprintf(`"Sleep"(%s)`, formatValue(g.SleepTime)), "7em", true)

	// Whole-circuit markers on track 0.
	case circuit.PragmaSetNumberOfMeasurements:
		d.placeMarker(fmt.Sprintf("slice(label: $ \"Measurements\nn=%d\" $)", g.Number))
	case circuit.PragmaSetStateVector:
		amplitudes := make([]string, 0, len(g.Statevector))
		for _, a := range g.Statevector {
			amplitudes = append(amplitudes, formatComplex(a))
		}
		d.placeMarker(fmt.Sprintf(
			`slice(label: $ "SetStatevector"\ [%s] $, stroke: (paint: black, thickness: 1pt, dash: "solid"))`,
			strings.Join(amplitudes, ",")))
	case circuit.PragmaSetDensityMatrix:
		d.placeMarker(fmt.Sprintf(
			`slice(label: $ "SetDensityMatrix"\ "%s" $, stroke: (paint: black, thickness: 1pt, dash: "solid"))`,
			formatMatrix(g.Matrix)))
	case circuit.PragmaRepeatGate:
		d.placeMarker(fmt.Sprintf(
			"slice(label: $ \"RepeatNextGate\n%d times\" $, stroke: (paint: black, thickness: 1pt, dash: \"densely-dash-dotted\"))",
			g.Repetitions))
	case circuit.PragmaBoostNoise:
		d.placeMarker(fmt.Sprintf(`slice(label: $ "BoostNoise"\ n=%s $)`, formatValue(g.Coefficient)))
	case circuit.PragmaGlobalPhase:
		d.placeMarker(fmt.Sprintf(`slice(label: $ "GlobalPhase"\ p=%s $)`, formatValue(g.Phase)))
	case circuit.PragmaChangeDevice:
		d.placeMarker(fmt.Sprintf(`slice(label: $ "ChangeDevice"\ \"%s\" $)`, g.WrappedName))
	case circuit.InputSymbolic:
		d.placeMarker(fmt.Sprintf(
			`slice(label: $ "Replace Symbol:"\ %s=>%s $)`,
			g.Symbol, formatFloat(g.Input)))

	// Noise and reset boxes.
	case circuit.PragmaActiveReset:
		d.placeSingle(g.Qubit, `gate($ "Reset" $, fill: gray)`)
	case circuit.PragmaDamping:
		d.placeSingle(g.Qubit, fmt.Sprintf(
			`gate($ "Damping"(%s,%s) $, fill: gray)`, formatValue(g.GateTime), formatValue(g.Rate)))
	case circuit.PragmaDepolarising:
		d.placeSingle(g.Qubit, fmt.Sprintf(
			`gate($ "Depolarising"(%s,%s) $, fill: gray)`, formatValue(g.GateTime), formatValue(g.Rate)))
	case circuit.PragmaDephasing:
		d.placeSingle(g.Qubit, fmt.Sprintf(
			`gate($ "Dephasing"(%s,%s) $, fill: gray)`, formatValue(g.GateTime), formatValue(g.Rate)))
	case circuit.PragmaRandomNoise:
		d.placeSingle(g.Qubit, fmt.Sprintf(
			`gate($ "RandomNoise"(%s,%s,%s) $, fill: gray)`,
			formatValue(g.GateTime), formatValue(g.DepolarisingRate), formatValue(g.DephasingRate)))
	case circuit.PragmaGeneralNoise:
		d.placeSingle(g.Qubit, fmt.Sprintf(
			`gate($ "GeneralNoise"(%s,%s) $, fill: gray)`,
			formatValue(g.GateTime), formatRates(g.Rates)))

	// Grouping, measurement, bosonic and classical operations.
	case circuit.PragmaConditional:
		return d.placeConditional(g)
	case circuit.PragmaLoop:
		return d.placeLoop(g)
	case circuit.PragmaControlledCircuit:
		return d.placeControlledCircuit(g)
	case circuit.PragmaGetStateVector:
		return d.placeReadoutGroup(op, g.Circuit, fmt.Sprintf("GetStateVector: %s", g.Readout))
	case circuit.PragmaGetDensityMatrix:
		return d.placeReadoutGroup(op, g.Circuit, fmt.Sprintf("GetDensityMatrix: %s", g.Readout))
	case circuit.PragmaGetOccupationProbability:
		return d.placeReadoutGroup(op, g.Circuit, fmt.Sprintf("GetOccupationProbability: %s", g.Readout))
	case circuit.PragmaGetPauliProduct:
		return d.placePauliProduct(g)
	case circuit.PragmaRepeatedMeasurement:
		return d.placeRepeatedMeasurement(g)
	case circuit.PragmaAnnotatedOp:
		return d.placeAnnotated(g)
	case circuit.MeasureQubit:
		d.placeMeasure(g)

	case circuit.Squeezing:
		d.placeMode(g.Mode, fmt.Sprintf(
			`gate($ "Squeezing"(%s,%s) $)`, formatValue(g.Squeezing), formatValue(g.Phase)))
	case circuit.PhaseShift:
		d.placeMode(g.Mode, fmt.Sprintf(`gate($ "PhaseShift"(%s) $)`, formatValue(g.Phase)))
	case circuit.PhaseDisplacement:
		d.placeMode(g.Mode, fmt.Sprintf(
			`gate($ "PhaseDisplacement"(%s,%s) $)`, formatValue(g.Displacement), formatValue(g.Phase)))
	case circuit.PhotonDetection:
		d.placeMode(g.Mode, "meter()")
	case circuit.BeamSplitter:
		d.placeBeamSplitter(g)

	case circuit.QuantumRabi:
		d.placeHybrid(g.Qubit, g.Mode,
			fmt.Sprintf("mqgate($ %s * X $, extent: 1.4em, target: %%d)", formatValue(g.Theta)),
			fmt.Sprintf("gate($ %s*(b^(dagger)+b) $)", formatValue(g.Theta)))
	case circuit.LongitudinalCoupling:
		d.placeHybrid(g.Qubit, g.Mode,
			fmt.Sprintf("mqgate($ %s * Z $, extent: 1.4em, target: %%d)", formatValue(g.Theta)),
			fmt.Sprintf("gate($ %s*(b^(dagger)+b) $)", formatValue(g.Theta)))
	case circuit.JaynesCummings:
		d.placeHybrid(g.Qubit, g.Mode,
			fmt.Sprintf("mqgate($ %s * (sigma^-+sigma^+) $, extent: 1.4em, target: %%d)", formatValue(g.Theta)),
			fmt.Sprintf("gate($ %s*(b^(dagger)+b) $)", formatValue(g.Theta)))
	case circuit.SingleExcitationStore:
		d.placeHybrid(g.Qubit, g.Mode,
			`mqgate($ alpha"|0>" + beta"|1>" -> "|0>" $, target: %d)`,
			`gate($ "|0>" -> alpha"|0>" + beta"|1>" $)`)
	case circuit.SingleExcitationLoad:
		d.placeHybrid(g.Qubit, g.Mode,
			`mqgate($ "|0>" -> alpha"|0>" + beta"|1>" $, target: %d)`,
			`gate($ alpha"|0>" + beta"|1>" -> "|0>" $)`)
	case circuit.CZQubitResonator:
		d.placeCZResonator(g)

	case circuit.DefinitionBit:
		d.classical.appendTrack(g.Register)
	case circuit.InputBit:
		if idx, ok := d.classical.findLabel(g.Register); ok {
			d.classical.push(idx, content(fmt.Sprintf(
				`gate($ "InputBit:"\ %d=>#%t $)`, g.Index, g.Value)))
		}

	// Register declarations with no diagram footprint.
	case circuit.DefinitionFloat, circuit.DefinitionComplex, circuit.DefinitionUsize:
	default:
		return qerrors.New(qerrors.ErrCodeUnsupportedOperation,
			"operation not supported: %s", op.Name())
	}
	return nil
}

func (d *diagram) placeSingle(q int, text string) {
	d.qubits.ensure(q)
	d.qubits.push(q, content(text))
}

func (d *diagram) placeCtrl(control, target int, targetText string) {
	min, max := order(control, target)
	d.qubits.prepareCtrl(min, max)
	d.qubits.push(control, content(fmt.Sprintf("ctrl(%d)", target-control)))
	d.qubits.push(target, content(targetText))
}

func (d *diagram) placeDoubleCtrl(control0, control1, target int, targetText string) {
	qubits := []int{control0, target, control1}
	min, max := minMaxOf(qubits)
	d.qubits.ensure(qubits...)
	d.qubits.flatten(qubits...)
	d.qubits.prepareCtrl(min, max)
	d.qubits.flatten(qubits...)
	d.qubits.push(control0, content(fmt.Sprintf("ctrl(%d)", target-control0)))
	d.qubits.push(control1, content(fmt.Sprintf("ctrl(%d)", target-control1)))
	d.qubits.push(target, content(targetText))
}

func (d *diagram) placeSwap(control, target int, label string) {
	min, max := order(control, target)
	d.qubits.ensure(max)
	span := spanInts(min, max)
	d.qubits.flatten(span...)
	if label == "" {
		d.qubits.push(min, content(fmt.Sprintf("swap(%d)", max-min)))
	} else {
		d.qubits.push(min, content(fmt.Sprintf("swap(%d, %s)", max-min, label)))
	}
	d.qubits.push(max, content("targX()"))
}

// placeSpanBox puts a box cell on the lowest track of a span and filler
// on every other track the box covers.
func (d *diagram) placeSpanBox(min, max int, text string) {
	d.qubits.ensure(max)
	span := spanInts(min, max)
	d.qubits.flatten(span...)
	d.qubits.push(min, content(text))
	for q := min + 1; q <= max; q++ {
		d.qubits.pushFiller(q)
	}
}

func (d *diagram) placePairBox(control, target int, body, width, label0, label1 string) {
	min, max := order(control, target)
	text := fmt.Sprintf("mqgate($ %s $, n: %d, width: %s, inputs: ((qubit: %s), (qubit: %s)))",
		body, max-min+1, width, qubitInput(control-min, label0), qubitInput(target-min, label1))
	d.placeSpanBox(min, max, text)
}

func (d *diagram) placeMultiBox(op circuit.Operation, qubits []int, body, width string, gray bool) error {
	if len(qubits) == 0 {
		return qerrors.New(qerrors.ErrCodeEmptyQubits, "no qubits on %s", op.Name())
	}
	min, max := minMaxOf(qubits)
	inputs := make([]string, 0, len(qubits))
	for _, q := range qubits {
		inputs = append(inputs, fmt.Sprintf("(qubit: %s)", qubitInput(q-min, "x")))
	}
	fill := ""
	if gray {
		fill = ", fill: gray"
	}
	text := fmt.Sprintf("mqgate($ %s $, n: %d, width: %s%s, inputs: (%s))",
		body, max-min+1, width, fill, strings.Join(inputs, ","))
	d.placeSpanBox(min, max, text)
	return nil
}

// placeMarker attaches a whole-circuit annotation to track 0 after
// aligning every qubit track.
func (d *diagram) placeMarker(text string) {
	d.qubits.prepareSlice()
	all := spanInts(0, len(d.qubits.tracks)-1)
	d.qubits.flatten(all...)
	d.qubits.push(0, annotation(text))
}

// placeMode puts a cell on a bosonic track, draining any reservation at
// its current column first.
func (d *diagram) placeMode(mode int, text string) {
	d.bosons.ensure(mode)
	d.bosons.drain(mode)
	d.bosons.push(mode, content(text))
}

func (d *diagram) placeBeamSplitter(g circuit.BeamSplitter) {
	min, max := order(g.Mode0, g.Mode1)
	d.bosons.ensure(max)
	span := spanInts(min, max)
	for _, m := range span {
		d.bosons.drain(m)
	}
	d.bosons.flatten(span...)
	d.bosons.push(min, content(fmt.Sprintf(
		`mqgate($ "BeamSplitter"\ (%s,%s) $, n: %d, width: 9em, inputs: ((qubit: %s), (qubit: %s)))`,
		formatValue(g.Theta), formatValue(g.Phi), max-min+1,
		qubitInput(g.Mode0-min, "x"), qubitInput(g.Mode1-min, "x"))))
	for m := min + 1; m <= max; m++ {
		d.bosons.pushFiller(m)
	}
}

func formatReordering(reordering map[int]int) string {
	pairs := make([]string, 0, len(reordering))
	for _, k := range sortedKeys(reordering) {
		pairs = append(pairs, fmt.Sprintf("%d:%d", k, reordering[k]))
	}
	return strings.Join(pairs, "\n")
}

func formatRates(rates [][]float64) string {
	rows := make([]string, 0, len(rates))
	for _, row := range rates {
		entries := make([]string, 0, len(row))
		for _, r := range row {
			entries = append(entries, formatFloat(r))
		}
		rows = append(rows, "["+strings.Join(entries, ",")+"]")
	}
	return "[" + strings.Join(rows, ",") + "]"
}

func formatMatrix(matrix [][]circuit.Complex) string {
	rows := make([]string, 0, len(matrix))
	for _, row := range matrix {
		entries := make([]string, 0, len(row))
		for _, c := range row {
			entries = append(entries, formatComplex(c))
		}
		rows = append(rows, "["+strings.Join(entries, ",")+"]")
	}
	return "[" + strings.Join(rows, ",") + "]"
}
