// Package circuit defines the operation model for quantum, bosonic and
// classical circuit elements.
//
// A Circuit is an ordered sequence of Operations. Operations are immutable
// value types owned by the caller; the layout engine only reads them.
// Each operation kind knows its name and which qubits it involves, which
// is all the generic machinery (pragma filtering, track allocation,
// cancellation) needs - everything else is per-kind data.
package circuit

import (
	"reflect"
	"slices"
	"strings"
)

// PragmaPrefix marks annotation-class operations. Operations whose name
// carries this prefix can be filtered out of a rendering wholesale.
const PragmaPrefix = "Pragma"

// Operation is one element of a circuit: a gate, a measurement, a register
// definition, or a pragma. Implementations are small immutable structs.
type Operation interface {
	// Name returns the operation's kind name (e.g. "CNOT", "PragmaLoop").
	Name() string
	// Involved reports which qubits the operation touches.
	Involved() Involvement
}

// IsPragma reports whether the operation is annotation-class.
func IsPragma(op Operation) bool {
	return strings.HasPrefix(op.Name(), PragmaPrefix)
}

// Circuit is an ordered operation sequence.
type Circuit struct {
	Operations []Operation
}

// New creates an empty circuit.
func New() *Circuit {
	return &Circuit{}
}

// Of creates a circuit from the given operations.
func Of(ops ...Operation) *Circuit {
	return &Circuit{Operations: ops}
}

// Add appends an operation and returns the circuit for chaining.
func (c *Circuit) Add(op Operation) *Circuit {
	c.Operations = append(c.Operations, op)
	return c
}

// Len returns the number of operations.
func (c *Circuit) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Operations)
}

// IsEmpty reports whether the circuit holds no operations.
func (c *Circuit) IsEmpty() bool { return c.Len() == 0 }

// Involved returns the union of the involvements of all operations.
// If any operation involves all qubits, the result involves all qubits.
func (c *Circuit) Involved() Involvement {
	var qubits []int
	for _, op := range c.Operations {
		inv := op.Involved()
		switch inv.kind {
		case involveAll:
			return InvolveAll()
		case involveSet:
			for _, q := range inv.qubits {
				if !slices.Contains(qubits, q) {
					qubits = append(qubits, q)
				}
			}
		}
	}
	if qubits == nil {
		return InvolveNone()
	}
	return Involve(qubits...)
}

// Equal reports whether two circuits hold the same operation sequence.
// Operations are compared structurally; this is what the cancellation
// pass uses to detect its fixed point.
func (c *Circuit) Equal(other *Circuit) bool {
	if c.Len() != other.Len() {
		return false
	}
	for i, op := range c.Operations {
		// Operations may hold slices or nested circuits, so plain
		// interface comparison would panic on some kinds.
		if !reflect.DeepEqual(op, other.Operations[i]) {
			return false
		}
	}
	return true
}

type involveKind int

const (
	involveNone involveKind = iota
	involveSet
	involveAll
)

// Involvement describes the qubit set an operation touches: a concrete
// set, no qubits at all, or every qubit currently known to the diagram.
type Involvement struct {
	kind   involveKind
	qubits []int
}

// InvolveNone reports an operation touching no qubits.
func InvolveNone() Involvement { return Involvement{kind: involveNone} }

// InvolveAll reports an operation touching every known qubit.
func InvolveAll() Involvement { return Involvement{kind: involveAll} }

// Involve reports an operation touching exactly the given qubits.
func Involve(qubits ...int) Involvement {
	return Involvement{kind: involveSet, qubits: qubits}
}

// All reports whether the involvement covers every known qubit.
func (v Involvement) All() bool { return v.kind == involveAll }

// None reports whether the involvement covers no qubits.
func (v Involvement) None() bool { return v.kind == involveNone }

// Qubits returns the involved qubits, deduplicated, in first-seen order.
// For an All involvement, known enumerates the qubits to expand to.
func (v Involvement) Qubits(known int) []int {
	switch v.kind {
	case involveAll:
		qs := make([]int, known)
		for i := range qs {
			qs[i] = i
		}
		return qs
	case involveSet:
		var qs []int
		for _, q := range v.qubits {
			if !slices.Contains(qs, q) {
				qs = append(qs, q)
			}
		}
		return qs
	default:
		return nil
	}
}
