// Package layout converts a circuit into a column-aligned grid of typst
// quill fragments, one track per qubit, bosonic mode or classical
// register.
//
// The central difficulty is that tracks grow independently: a gate on
// qubit 3 must not force padding on qubit 0 until something actually
// spans both. Placement therefore works on effective lengths (content
// cells only, annotations are zero-width), pads with filler cells right
// before a multi-track element, and reserves columns crossed by vertical
// wires so later gates on intermediate tracks cannot slide under them.
package layout

import "fmt"

type cellKind int

const (
	// cellContent occupies one diagram column.
	cellContent cellKind = iota
	// cellAnnotation is zero-width: slices, gate groups, sticks, wire
	// styles.
	cellAnnotation
)

type refKind int

const (
	refNone refKind = iota
	// refBoson resolves to (total qubit tracks + index) - origin.
	refBoson
	// refClassical resolves to (total qubit and boson tracks + index) - origin.
	refClassical
)

// cell is one placed element on a track. Cells that point at a track in
// another domain (a meter wired to a classical register, a qubit-boson
// coupling) carry a deferred reference: the absolute row distance is only
// known once the whole circuit has been placed, so the text keeps a
// single %d slot until resolve fills it in.
type cell struct {
	kind cellKind
	text string
	ref  refKind
	// refIndex is the track index inside the referenced domain,
	// refOrigin the row the cell sits on.
	refIndex  int
	refOrigin int
}

func content(text string) cell    { return cell{kind: cellContent, text: text} }
func annotation(text string) cell { return cell{kind: cellAnnotation, text: text} }

// filler is the quill "one column of plain wire" cell.
func filler() cell { return content("1") }

func contentRef(text string, ref refKind, index, origin int) cell {
	return cell{kind: cellContent, text: text, ref: ref, refIndex: index, refOrigin: origin}
}

// resolve returns the final typst fragment. Rows are numbered qubit
// tracks first, then bosonic, then classical, so a cross-domain target is
// the referenced domain's offset plus its track index, minus the row the
// cell lives on.
func (c cell) resolve(nQubits, nBosons int) string {
	switch c.ref {
	case refBoson:
		return fmt.Sprintf(c.text, nQubits+c.refIndex-c.refOrigin)
	case refClassical:
		return fmt.Sprintf(c.text, nQubits+nBosons+c.refIndex-c.refOrigin)
	default:
		return c.text
	}
}
