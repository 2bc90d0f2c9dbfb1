package layout

import "unicode/utf8"

type lockKey struct {
	track  int
	column int
}

// grid holds the tracks of one domain (qubits, bosonic modes or classical
// registers) plus the column reservations crossed by vertical wires.
type grid struct {
	tracks [][]cell
	labels []string
	locks  map[lockKey]struct{}
	// reserveFirst locks column 0 on every track created later. Set when
	// a whole-circuit marker was placed on an otherwise empty diagram, so
	// tracks appearing afterwards still start to the right of it.
	reserveFirst bool
}

func newGrid() *grid {
	return &grid{locks: make(map[lockKey]struct{})}
}

// ensure grows the grid until every listed track index exists. With no
// indices it still guarantees track 0, mirroring the rule that any placed
// operation materializes at least one track in its domain.
func (g *grid) ensure(indices ...int) {
	maxIdx := 0
	for _, i := range indices {
		if i > maxIdx {
			maxIdx = i
		}
	}
	for len(g.tracks) <= maxIdx {
		g.tracks = append(g.tracks, nil)
		g.labels = append(g.labels, "")
		if g.reserveFirst {
			g.lock(len(g.tracks)-1, 0)
		}
	}
}

// appendTrack adds a labelled register track with its stick and wire
// style cells. Returns the new track index.
func (g *grid) appendTrack(label string) int {
	g.tracks = append(g.tracks, []cell{
		annotation(`lstick($ "` + label + ` : " $)`),
		annotation("setwire(2)"),
	})
	g.labels = append(g.labels, label)
	return len(g.tracks) - 1
}

// findLabel returns the index of the track with the given register label.
func (g *grid) findLabel(label string) (int, bool) {
	for i, l := range g.labels {
		if l == label {
			return i, true
		}
	}
	return 0, false
}

func (g *grid) push(i int, c cell)  { g.tracks[i] = append(g.tracks[i], c) }
func (g *grid) pushFiller(i int)    { g.push(i, filler()) }
func (g *grid) lock(i, column int)  { g.locks[lockKey{i, column}] = struct{}{} }
func (g *grid) locked(i, column int) bool {
	_, ok := g.locks[lockKey{i, column}]
	return ok
}

// effLen is the number of columns the track occupies on the diagram.
func (g *grid) effLen(i int) int {
	n := 0
	for _, c := range g.tracks[i] {
		if c.kind == cellContent {
			n++
		}
	}
	return n
}

func (g *grid) maxEffLen() int {
	max := 0
	for i := range g.tracks {
		if l := g.effLen(i); l > max {
			max = l
		}
	}
	return max
}

// drain converts reservations at the track's current column into filler
// until the next free column is reached.
func (g *grid) drain(i int) {
	for g.locked(i, g.effLen(i)) {
		delete(g.locks, lockKey{i, g.effLen(i)})
		g.pushFiller(i)
	}
}

// flatten pads the listed tracks with filler until they all end on the
// same column. Idempotent.
func (g *grid) flatten(indices ...int) {
	max := 0
	for _, i := range indices {
		if l := g.effLen(i); l > max {
			max = l
		}
	}
	for _, i := range indices {
		for g.effLen(i) < max {
			g.pushFiller(i)
		}
	}
}

// flattenPair pads tracks across two grids to a common column, used
// before any element wiring two domains together.
func flattenPair(a, b *grid, aIdx, bIdx []int) {
	max := 0
	for _, i := range aIdx {
		if l := a.effLen(i); l > max {
			max = l
		}
	}
	for _, i := range bIdx {
		if l := b.effLen(i); l > max {
			max = l
		}
	}
	for _, i := range aIdx {
		for a.effLen(i) < max {
			a.pushFiller(i)
		}
	}
	for _, i := range bIdx {
		for b.effLen(i) < max {
			b.pushFiller(i)
		}
	}
}

// prepareCtrl readies the span [min, max] for a vertical control wire:
// endpoints are aligned, reservations on intermediate tracks are drained,
// and the wire's own column is reserved on every track it crosses.
func (g *grid) prepareCtrl(min, max int) {
	g.ensure(min, max)
	g.flatten(min, max)
	for q := min + 1; q < max; q++ {
		g.drain(q)
		if g.effLen(q) > g.effLen(min) {
			g.flatten(min, q)
		}
	}
	g.flatten(min, max)
	for q := min + 1; q < max; q++ {
		g.lock(q, g.effLen(min))
	}
}

// prepareSlice readies track 0 for a whole-circuit marker. Consecutive
// markers would overlap visually, so when track 0 already ends the
// diagram with a marker, filler proportional to the previous label's
// width is inserted first. On an empty diagram one filler column is
// created for the marker to attach to, and column 0 is reserved on all
// other tracks, present and future.
func (g *grid) prepareSlice() {
	g.ensure(0)
	last := -1
	for i, c := range g.tracks[0] {
		if c.kind == cellAnnotation {
			last = i
		}
	}
	if last >= 0 && g.effLen(0) == g.maxEffLen() {
		divider := len(g.tracks[0]) - last
		width := utf8.RuneCountInString(lastLine(g.tracks[0][last].text))
		for n := 0; n < width/(10*divider)+1; n++ {
			g.pushFiller(0)
		}
	}
	if len(g.tracks[0]) == 0 {
		g.pushFiller(0)
		for q := 1; q < len(g.tracks); q++ {
			g.lock(q, 0)
		}
		g.reserveFirst = true
	}
}

func lastLine(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '\n' {
			return s[i+1:]
		}
	}
	return s
}
