// Package core: debug rendering.
//
// String draws the quadrilateral family as classic "+---+" ASCII wall art,
// which is enough to eyeball a generator's output or a failing test. Cells
// on the solution path are starred, weave tunnels carry their axis mark and
// diagonal passages show as slashes. The remaining topologies fall back to
// a compact per-row wall-word listing.
package core

import (
	"fmt"
	"strings"
)

// String renders the maze for debugging.
func (m *Maze) String() string {
	if m.kind.Quadrilateral() {
		return m.quadArt()
	}

	return m.wallWords()
}

// quadArt draws one text row per wall row plus one per cell row. Openings
// appear as gaps in the outer boundary because they are plain cleared bits.
func (m *Maze) quadArt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %dx%d\n", m.kind, m.width, m.height)
	for x := 0; x < m.width; x++ {
		if m.rows[0][x].HasWall(North) {
			b.WriteString("+---")
		} else {
			b.WriteString("+   ")
		}
	}
	b.WriteString("+\n")
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c := m.rows[y][x]
			if x == 0 {
				if c.HasWall(West) {
					b.WriteByte('|')
				} else {
					b.WriteByte(' ')
				}
			}
			fmt.Fprintf(&b, " %c ", m.cellMark(c))
			if c.HasWall(East) {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
		for x := 0; x < m.width; x++ {
			if m.rows[y][x].HasWall(South) {
				b.WriteString("+---")
			} else {
				b.WriteString("+   ")
			}
		}
		b.WriteString("+\n")
	}

	return b.String()
}

// cellMark picks the interior glyph: solution star first, then the tunnel
// axis, then diagonal passages.
func (m *Maze) cellMark(c *Cell) byte {
	for _, s := range m.solution {
		if s == c {
			return '*'
		}
	}
	switch c.tunnel {
	case TunnelEW:
		return '-'
	case TunnelNS:
		return '|'
	}
	if m.kind == DiagSquare {
		rise := !c.hasBit(NorthEast) || !c.hasBit(SouthWest)
		fall := !c.hasBit(NorthWest) || !c.hasBit(SouthEast)
		switch {
		case rise && fall:
			return 'X'
		case rise:
			return '/'
		case fall:
			return '\\'
		}
	}

	return ' '
}

// wallWords lists every row (or ring) as hex wall words, three digits each
// so the polar bits fit.
func (m *Maze) wallWords() string {
	var b strings.Builder
	if m.kind == Polar {
		fmt.Fprintf(&b, "%s r=%d\n", m.kind, m.radius)
	} else {
		fmt.Fprintf(&b, "%s %dx%d\n", m.kind, m.width, m.height)
	}
	for i, row := range m.rows {
		fmt.Fprintf(&b, "%3d:", i)
		for _, c := range row {
			fmt.Fprintf(&b, " %03x", c.walls)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
