package layout

import (
	"strings"

	"github.com/qcdraw/qcdraw/pkg/circuit"
	qerrors "github.com/qcdraw/qcdraw/pkg/errors"
)

type renderKind int

const (
	renderAll renderKind = iota
	renderNone
	renderPartial
)

// RenderPragmas selects which annotation-class operations appear in the
// diagram.
type RenderPragmas struct {
	kind  renderKind
	names map[string]struct{}
}

// RenderAll renders every pragma.
func RenderAll() RenderPragmas { return RenderPragmas{kind: renderAll} }

// RenderNone drops every pragma.
func RenderNone() RenderPragmas { return RenderPragmas{kind: renderNone} }

// RenderOnly renders only the named pragmas.
func RenderOnly(names ...string) RenderPragmas {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return RenderPragmas{kind: renderPartial, names: set}
}

// ParseRenderPragmas parses a render-pragmas flag: "all", "none", or a
// comma-separated list of pragma names. Entries without the pragma name
// prefix are ignored.
func ParseRenderPragmas(s string) RenderPragmas {
	switch strings.ToLower(s) {
	case "all":
		return RenderAll()
	case "none":
		return RenderNone()
	default:
		var names []string
		for _, name := range strings.Split(s, ",") {
			name = strings.TrimSpace(name)
			if strings.HasPrefix(name, circuit.PragmaPrefix) {
				names = append(names, name)
			}
		}
		return RenderOnly(names...)
	}
}

func (r RenderPragmas) renders(op circuit.Operation) bool {
	if !circuit.IsPragma(op) {
		return true
	}
	switch r.kind {
	case renderNone:
		return false
	case renderPartial:
		_, ok := r.names[op.Name()]
		return ok
	default:
		return true
	}
}

// Result is a fully placed diagram: per-domain rows of typst quill
// fragments, column aligned, with every cross-domain reference resolved
// to an absolute row distance.
type Result struct {
	QubitRows     [][]string
	BosonRows     [][]string
	ClassicalRows [][]string
}

// Arrange places the circuit's operations onto a multi-track diagram.
// Operations are placed in order; the first placement error aborts.
func Arrange(c *circuit.Circuit, pragmas RenderPragmas) (*Result, error) {
	d := newDiagram()
	for _, op := range c.Operations {
		if !pragmas.renders(op) {
			continue
		}
		if err := d.place(op); err != nil {
			return nil, err
		}
	}

	nQubits := len(d.qubits.tracks)
	nBosons := len(d.bosons.tracks)
	nClassical := len(d.classical.tracks)
	if nQubits == 0 && nBosons == 0 && nClassical == 0 {
		return nil, qerrors.New(qerrors.ErrCodeEmptyPage, "circuit produced no tracks")
	}

	// Final cross-domain alignment so every row ends on the same column.
	flattenPair(d.qubits, d.bosons, spanAll(nQubits), spanAll(nBosons))
	flattenPair(d.qubits, d.classical, spanAll(nQubits), spanAll(nClassical))
	flattenPair(d.bosons, d.classical, spanAll(nBosons), spanAll(nClassical))

	res := &Result{
		QubitRows:     resolveRows(d.qubits, nQubits, nBosons),
		BosonRows:     resolveRows(d.bosons, nQubits, nBosons),
		ClassicalRows: resolveRows(d.classical, nQubits, nBosons),
	}
	return res, nil
}

func spanAll(n int) []int {
	if n == 0 {
		return nil
	}
	return spanInts(0, n-1)
}

func resolveRows(g *grid, nQubits, nBosons int) [][]string {
	rows := make([][]string, len(g.tracks))
	for i, track := range g.tracks {
		row := make([]string, len(track))
		for j, c := range track {
			row[j] = c.resolve(nQubits, nBosons)
		}
		rows[i] = row
	}
	return rows
}
