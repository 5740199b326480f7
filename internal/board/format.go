package board

import (
	"fmt"
	"strings"
)

// String renders the board as text, one row per line:
//
//	S  straight piece     D  diagonal piece
//	T  target             M  monolith
//	1-9  zone overlap     .  empty
//
// followed by a tray line with one character per slot.
func (b *Board) String() string {
	var grid [BoardSize][BoardSize]byte
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}
	for c, n := range b.DetonationZones() {
		if n > 9 {
			n = 9
		}
		grid[c.Y][c.X] = byte('0' + n)
	}
	put := func(c Cell, ch byte) {
		if InBounds(c) {
			grid[c.Y][c.X] = ch
		}
	}
	for _, o := range b.Targets {
		put(o.Cell(), 'T')
	}
	for _, o := range b.Monoliths {
		put(o.Cell(), 'M')
	}

	tray := []byte(strings.Repeat(".", TraySlots))
	for _, p := range b.Pieces {
		ch := byte('S')
		if p.Kind == KindDiagonal {
			ch = 'D'
		}
		if b.OnBoard(p) {
			put(CenterCellOf(p.Pos), ch)
			continue
		}
		tray[TraySlotAt(p.Center().X)] = ch
	}

	var sb strings.Builder
	for y := range grid {
		sb.Write(grid[y][:])
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "tray: %s\n", tray)
	return sb.String()
}
