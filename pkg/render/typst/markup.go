// Package typst serializes a placed diagram to typst quill markup and
// compiles it to a PNG through the external typst binary.
package typst

import (
	"fmt"
	"strings"

	"github.com/qcdraw/qcdraw/pkg/errors"
	"github.com/qcdraw/qcdraw/pkg/layout"
)

// InitMode controls the left stick of quantum rows: the |0> ground state
// or the qubit's register name.
type InitMode int

const (
	InitState InitMode = iota
	InitQubit
)

// ParseInitMode parses "state" or "qubit".
func ParseInitMode(s string) (InitMode, error) {
	switch strings.ToLower(s) {
	case "state":
		return InitState, nil
	case "qubit":
		return InitQubit, nil
	default:
		return InitState, errors.New(errors.ErrCodeInvalidMode,
			"invalid initialization mode: %s, use `state` or `qubit`", s)
	}
}

func (m InitMode) String() string {
	if m == InitQubit {
		return "qubit"
	}
	return "state"
}

const header = `#set page(width: auto, height: auto, margin: 5pt)
#show math.equation: set text(font: "Fira Math")
#{
    import "@preview/quill:0.2.1": *
    quantum-circuit(
`

// Markup renders the placed diagram as a standalone typst document.
// Quantum and bosonic rows get a left stick and the first row of each
// block a block label; classical rows carry their own stick cells.
func Markup(res *layout.Result, mode InitMode) string {
	var b strings.Builder
	b.WriteString(header)
	writeQuantumRows(&b, res.QubitRows, mode, "Qubits")
	writeQuantumRows(&b, res.BosonRows, mode, "Bosons")
	for _, row := range res.ClassicalRows {
		fmt.Fprintf(&b, "       %s, 1, [\\ ],\n", strings.Join(row, ", "))
	}
	out := strings.TrimSuffix(b.String(), " [\\ ],\n")
	return out + ")\n}\n"
}

func writeQuantumRows(b *strings.Builder, rows [][]string, mode InitMode, blockLabel string) {
	for i, row := range rows {
		stick := "|0>"
		if mode == InitQubit {
			stick = fmt.Sprintf("q[%d]", i)
		}
		label := ""
		if i == 0 {
			label = fmt.Sprintf(", label: %q", blockLabel)
		}
		fmt.Fprintf(b, "       lstick($%s$%s), %s, 1, [\\ ],\n",
			stick, label, strings.Join(row, ", "))
	}
}
