package board

import "sort"

// Brightness maps a board cell to the number of detonation zones covering it.
// Cells with no coverage are absent.
type Brightness map[Cell]int

// DetonationZones rebuilds the brightness map from the current piece
// positions. Tray pieces contribute nothing and off-board cells are dropped.
func (b *Board) DetonationZones() Brightness {
	zones := make(Brightness)
	for _, p := range b.Pieces {
		if !b.OnBoard(p) {
			continue
		}
		origin := p.Cell()
		for _, d := range p.Kind.Directions() {
			c := origin.Offset(d)
			if InBounds(c) {
				zones[c]++
			}
		}
	}
	return zones
}

// Alpha maps the overlap count at c to an overlay opacity. Three or more
// overlapping zones give full opacity.
func (z Brightness) Alpha(c Cell) uint8 {
	n := z[c]
	if n <= 0 {
		return 0
	}
	if n >= maxBrightness {
		return 255
	}
	return uint8(n * 255 / maxBrightness)
}

// Max returns the highest overlap count on the board.
func (z Brightness) Max() int {
	best := 0
	for _, n := range z {
		if n > best {
			best = n
		}
	}
	return best
}

// Cells returns the covered cells in row-major order.
func (z Brightness) Cells() []Cell {
	out := make([]Cell, 0, len(z))
	for c := range z {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Zone returns the in-bounds cells a single piece currently fires into.
// It is empty for tray pieces.
func (b *Board) Zone(p *Piece) []Cell {
	if !b.OnBoard(p) {
		return nil
	}
	origin := p.Cell()
	out := make([]Cell, 0, 4)
	for _, d := range p.Kind.Directions() {
		if c := origin.Offset(d); InBounds(c) {
			out = append(out, c)
		}
	}
	return out
}
