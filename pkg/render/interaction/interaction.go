// Package interaction renders the qubit connectivity of a circuit as a
// graph diagram.
//
// Every multi-qubit operation contributes an edge between the qubits it
// couples; hybrid qubit-resonator operations contribute an edge between
// the qubit and the bosonic mode. The result shows at a glance which
// hardware connectivity a circuit requires, complementing the track
// diagram produced by the layout package.
//
// Convert a circuit to DOT format, then render:
//
//	dot := interaction.ToDOT(circ, interaction.Options{})
//	svg, err := interaction.RenderSVG(dot)
package interaction

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/goccy/go-graphviz"

	"github.com/qcdraw/qcdraw/pkg/circuit"
)

// Options configures interaction graph rendering.
type Options struct {
	// Weighted labels each edge with the number of operations coupling
	// the pair.
	Weighted bool
}

type edge struct {
	from, to string
}

// ToDOT converts a circuit's coupling structure to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
func ToDOT(c *circuit.Circuit, opts Options) string {
	nodes := map[string]bool{}
	weights := map[edge]int{}

	for _, op := range c.Operations {
		for _, e := range coupledPairs(op) {
			nodes[e.from] = true
			nodes[e.to] = true
			weights[e]++
		}
		for _, q := range op.Involved().Qubits(0) {
			nodes[qubitNode(q)] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("\n")

	names := make([]string, 0, len(nodes))
	for n := range nodes {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		attrs := ""
		if n[0] == 'b' {
			attrs = " [shape=doublecircle, fillcolor=lightgrey]"
		}
		fmt.Fprintf(&buf, "  %q%s;\n", n, attrs)
	}

	buf.WriteString("\n")
	edges := make([]edge, 0, len(weights))
	for e := range weights {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].to < edges[j].to
	})
	for _, e := range edges {
		if opts.Weighted && weights[e] > 1 {
			fmt.Fprintf(&buf, "  %q -- %q [label=\"%d\"];\n", e.from, e.to, weights[e])
		} else {
			fmt.Fprintf(&buf, "  %q -- %q;\n", e.from, e.to)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func qubitNode(q int) string { return fmt.Sprintf("q%d", q) }
func bosonNode(m int) string { return fmt.Sprintf("b%d", m) }

// coupledPairs returns the undirected couplings an operation induces.
// Multi-qubit gates couple every involved pair; hybrid operations couple
// the qubit with the bosonic mode.
func coupledPairs(op circuit.Operation) []edge {
	switch g := op.(type) {
	case circuit.QuantumRabi:
		return []edge{pairOf(qubitNode(g.Qubit), bosonNode(g.Mode))}
	case circuit.LongitudinalCoupling:
		return []edge{pairOf(qubitNode(g.Qubit), bosonNode(g.Mode))}
	case circuit.JaynesCummings:
		return []edge{pairOf(qubitNode(g.Qubit), bosonNode(g.Mode))}
	case circuit.SingleExcitationStore:
		return []edge{pairOf(qubitNode(g.Qubit), bosonNode(g.Mode))}
	case circuit.SingleExcitationLoad:
		return []edge{pairOf(qubitNode(g.Qubit), bosonNode(g.Mode))}
	case circuit.CZQubitResonator:
		return []edge{pairOf(qubitNode(g.Qubit), bosonNode(g.Mode))}
	case circuit.BeamSplitter:
		return []edge{pairOf(bosonNode(g.Mode0), bosonNode(g.Mode1))}
	}

	qubits := op.Involved().Qubits(0)
	if len(qubits) < 2 {
		return nil
	}
	var edges []edge
	for i := 0; i < len(qubits); i++ {
		for j := i + 1; j < len(qubits); j++ {
			edges = append(edges, pairOf(qubitNode(qubits[i]), qubitNode(qubits[j])))
		}
	}
	return edges
}

func pairOf(a, b string) edge {
	if b < a {
		a, b = b, a
	}
	return edge{from: a, to: b}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
