package layout

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/qcdraw/qcdraw/pkg/circuit"
	qerrors "github.com/qcdraw/qcdraw/pkg/errors"
)

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (d *diagram) usedQubits(inv circuit.Involvement) []int {
	return inv.Qubits(len(d.qubits.tracks))
}

func groupText(n, width int, label string) string {
	return fmt.Sprintf("gategroup(%d, %d, label: %q,  stroke: (dash: \"dotted\"))", n, width, label)
}

// placeGroup draws a dotted bracket around the gates of body, placed on
// the qubit span [min, max]. The bracket width is the largest number of
// cells the body adds to any spanned track; it is only known after the
// recursive placement, so the bracket cell starts with a provisional
// width and is patched once the body is in.
func (d *diagram) placeGroup(min, max int, label string, body *circuit.Circuit) error {
	span := spanInts(min, max)
	d.qubits.ensure(max)
	d.qubits.flatten(span...)
	d.qubits.push(min, annotation(groupText(len(span), 1, label)))
	groupIdx := len(d.qubits.tracks[min]) - 1

	before := make([]int, len(d.qubits.tracks))
	for i := range d.qubits.tracks {
		before[i] = len(d.qubits.tracks[i])
	}
	for _, op := range body.Operations {
		if err := d.place(op); err != nil {
			return err
		}
	}
	width := 0
	for _, q := range span {
		if diff := len(d.qubits.tracks[q]) - before[q]; diff > width {
			width = diff
		}
	}
	d.qubits.tracks[min][groupIdx] = annotation(groupText(len(span), width, label))
	d.qubits.flatten(span...)
	return nil
}

func (d *diagram) placeConditional(g circuit.PragmaConditional) error {
	if g.Circuit.IsEmpty() {
		return nil
	}
	d.qubits.prepareSlice()
	used := d.usedQubits(g.Involved())
	min, max := 0, 0
	if len(used) > 0 {
		min, max = minMaxOf(used)
	}
	label := fmt.Sprintf("Conditional: %s[%d]", g.ConditionRegister, g.ConditionIndex)
	return d.placeGroup(min, max, label, g.Circuit)
}

func (d *diagram) placeLoop(g circuit.PragmaLoop) error {
	if g.Circuit.IsEmpty() {
		return nil
	}
	d.qubits.prepareSlice()
	used := d.usedQubits(g.Involved())
	min, max := 0, 0
	if len(used) > 0 {
		min, max = minMaxOf(used)
	}
	reps := formatValue(g.Repetitions)
	if f, ok := g.Repetitions.Float(); ok {
		reps = strconv.Itoa(int(math.Floor(f)))
	}
	return d.placeGroup(min, max, fmt.Sprintf("Loop: %s times", reps), g.Circuit)
}

func (d *diagram) placeControlledCircuit(g circuit.PragmaControlledCircuit) error {
	if g.Circuit.IsEmpty() {
		return nil
	}
	d.qubits.prepareSlice()
	used := d.usedQubits(g.Involved())
	if len(used) == 0 {
		return qerrors.New(qerrors.ErrCodeEmptyQubits, "no qubits on %s", g.Name())
	}
	min, max := minMaxOf(used)
	label := fmt.Sprintf("ControlledCircuit by qubit: %d", g.ControllingQubit)
	return d.placeGroup(min, max, label, g.Circuit)
}

// placeReadoutGroup handles the state-extraction pragmas. Without an
// explicit measurement circuit the bracket wraps one Identity per known
// qubit.
func (d *diagram) placeReadoutGroup(op circuit.Operation, body *circuit.Circuit, label string) error {
	d.qubits.prepareSlice()
	if body == nil {
		body = circuit.New()
		for q := 0; q < len(d.qubits.tracks); q++ {
			body.Add(circuit.Identity{Qubit: q})
		}
	}
	used := d.usedQubits(body.Involved())
	if len(used) == 0 {
		return qerrors.New(qerrors.ErrCodeEmptyQubits, "no qubits on %s", op.Name())
	}
	if body.IsEmpty() {
		return nil
	}
	min, max := minMaxOf(used)
	return d.placeGroup(min, max, label, body)
}

func (d *diagram) placePauliProduct(g circuit.PragmaGetPauliProduct) error {
	d.qubits.prepareSlice()
	body := circuit.New()
	if g.Circuit != nil {
		body.Operations = append(body.Operations, g.Circuit.Operations...)
	}
	for _, q := range sortedKeys(g.QubitPaulis) {
		switch g.QubitPaulis[q] {
		case 0:
			body.Add(circuit.Identity{Qubit: q})
		case 1:
			body.Add(circuit.PauliX{Qubit: q})
		case 2:
			body.Add(circuit.PauliY{Qubit: q})
		case 3:
			body.Add(circuit.PauliZ{Qubit: q})
		default:
			return qerrors.New(qerrors.ErrCodeQubitMapping,
				"invalid pauli code %d for qubit %d", g.QubitPaulis[q], q)
		}
	}
	used := d.usedQubits(body.Involved())
	if len(used) == 0 {
		return qerrors.New(qerrors.ErrCodeEmptyQubits, "no qubits on %s", g.Name())
	}
	if body.IsEmpty() {
		return nil
	}
	min, max := minMaxOf(used)
	return d.placeGroup(min, max, fmt.Sprintf("GetPauliProduct: %s", g.Readout), body)
}

// placeRepeatedMeasurement brackets one measurement per qubit into the
// "ro" register. The bracket has fixed width 1: the meters line up in a
// single column.
func (d *diagram) placeRepeatedMeasurement(g circuit.PragmaRepeatedMeasurement) error {
	d.qubits.prepareSlice()
	var used []int
	if g.QubitMapping == nil {
		used = spanInts(0, len(d.qubits.tracks)-1)
	} else {
		used = sortedKeys(g.QubitMapping)
	}
	if len(used) == 0 {
		return qerrors.New(qerrors.ErrCodeEmptyQubits, "no qubits on %s", g.Name())
	}
	min, max := minMaxOf(used)
	span := spanInts(min, max)
	d.qubits.ensure(max)
	d.qubits.flatten(span...)
	d.qubits.push(min, annotation(groupText(len(span), 1,
		fmt.Sprintf("Repeat %d times", g.Number))))
	for _, q := range used {
		if err := d.place(circuit.MeasureQubit{Qubit: q, Readout: "ro", ReadoutIndex: q}); err != nil {
			return err
		}
	}
	d.qubits.flatten(span...)
	return nil
}

func (d *diagram) placeAnnotated(g circuit.PragmaAnnotatedOp) error {
	d.qubits.prepareSlice()
	used := d.usedQubits(g.Involved())
	if len(used) == 0 {
		return qerrors.New(qerrors.ErrCodeEmptyQubits, "no qubits on %s", g.Name())
	}
	min, max := minMaxOf(used)
	span := spanInts(min, max)
	d.qubits.ensure(max)
	d.qubits.flatten(span...)
	d.qubits.push(min, annotation(groupText(len(span), 1, g.Annotation)))
	if err := d.place(g.Operation); err != nil {
		return err
	}
	d.qubits.flatten(span...)
	return nil
}

// placeMeasure wires a qubit meter into the classical register named by
// the readout, when one has been defined. The meter, its register cell
// and the vertical wire between them must share a column, so everything
// the wire crosses is synchronized to it and the column is reserved on
// every crossed track.
func (d *diagram) placeMeasure(g circuit.MeasureQubit) {
	d.qubits.ensure(g.Qubit)
	idx, ok := d.classical.findLabel(g.Readout)
	if !ok {
		d.qubits.push(g.Qubit, content("meter()"))
		return
	}
	flattenPair(d.qubits, d.classical, []int{g.Qubit}, []int{idx})
	for q := g.Qubit; q < len(d.qubits.tracks); q++ {
		d.qubits.drain(q)
		if d.qubits.effLen(q) > d.qubits.effLen(g.Qubit) {
			d.qubits.flatten(g.Qubit, q)
		}
	}
	for b := range d.bosons.tracks {
		d.bosons.drain(b)
		if d.bosons.effLen(b) > d.qubits.effLen(g.Qubit) {
			flattenPair(d.qubits, d.bosons, []int{g.Qubit}, []int{b})
		}
	}
	for c := 0; c <= idx; c++ {
		d.classical.drain(c)
		if d.classical.effLen(c) > d.classical.effLen(idx) {
			d.classical.flatten(idx, c)
		}
	}
	flattenPair(d.qubits, d.classical, []int{g.Qubit}, []int{idx})

	column := d.classical.effLen(idx)
	for q := g.Qubit + 1; q < len(d.qubits.tracks); q++ {
		d.qubits.lock(q, column)
	}
	for b := range d.bosons.tracks {
		d.bosons.lock(b, column)
	}
	for c := 0; c < idx; c++ {
		d.classical.lock(c, column)
	}
	d.qubits.push(g.Qubit, contentRef("meter(target:%d)", refClassical, idx, g.Qubit))
	d.classical.push(idx, content(fmt.Sprintf(
		"ctrl(0, label: (content: $ %d $, pos: bottom))", g.ReadoutIndex)))
}

// placeHybrid couples a qubit track to a bosonic track. The qubit cell
// points down at the mode's row, which is only known once the final track
// counts are, hence the deferred reference.
func (d *diagram) placeHybrid(q, mode int, qubitText, bosonText string) {
	d.bosons.ensure(mode)
	flattenPair(d.qubits, d.bosons, []int{q}, []int{mode})
	d.bosons.drain(mode)
	flattenPair(d.qubits, d.bosons, []int{q}, []int{mode})
	for qq := q + 1; qq < len(d.qubits.tracks); qq++ {
		d.qubits.lock(qq, d.qubits.effLen(q))
	}
	for m := 0; m < mode; m++ {
		d.bosons.lock(m, d.bosons.effLen(mode))
	}
	d.qubits.push(q, contentRef(qubitText, refBoson, mode, q))
	d.bosons.push(mode, content(bosonText))
}

func (d *diagram) placeCZResonator(g circuit.CZQubitResonator) {
	d.bosons.ensure(g.Mode)
	flattenPair(d.qubits, d.bosons, []int{g.Qubit}, []int{g.Mode})
	for q := g.Qubit + 1; q < len(d.qubits.tracks); q++ {
		if d.qubits.effLen(q) > d.qubits.effLen(g.Qubit) {
			d.qubits.flatten(g.Qubit, q)
		}
	}
	for b := 0; b < g.Mode && b < len(d.bosons.tracks); b++ {
		if d.bosons.effLen(b) > d.bosons.effLen(g.Mode) {
			d.bosons.flatten(g.Mode, b)
		}
	}
	for q := g.Qubit + 1; q < len(d.qubits.tracks); q++ {
		d.qubits.lock(q, d.qubits.effLen(g.Qubit))
	}
	for m := 0; m < g.Mode; m++ {
		d.bosons.lock(m, d.bosons.effLen(g.Mode))
	}
	d.qubits.push(g.Qubit, contentRef("ctrl(%d)", refBoson, g.Mode, g.Qubit))
	d.bosons.push(g.Mode, content("gate($ Z $)"))
}
