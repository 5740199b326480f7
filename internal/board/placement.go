package board

// overlaps is the coarse AABB test used for every blocker: two cell-sized
// sprites collide when their centres are closer than one cell on both axes.
func overlaps(a, b Point) bool {
	return abs(a.X-b.X) < CellSize && abs(a.Y-b.Y) < CellSize
}

// IsValidPlacement reports whether a sprite dropped with its top-left at p
// may stay there. moving is the piece being placed and is ignored in the
// overlap checks; it may be nil.
func (b *Board) IsValidPlacement(p Point, moving *Piece) bool {
	center := spriteCenter(p)
	if !onBoardPixel(center) {
		return false
	}
	for _, o := range b.obstacles() {
		if overlaps(center, o.Center()) {
			return false
		}
	}
	for _, other := range b.Pieces {
		if other == moving {
			continue
		}
		if overlaps(center, other.Center()) {
			return false
		}
	}
	return true
}

// TraySlot returns the top-left position of tray slot i, vertically centred
// in the tray band.
func TraySlot(i int) Point {
	return Point{
		X: BoardX + i*CellSize,
		Y: TrayY + (TrayHeight-CellSize)/2,
	}
}

// TraySlotAt returns the index of the tray slot whose column contains the
// pixel x, clamped to the tray.
func TraySlotAt(x int) int {
	i := floorDiv(x-BoardX, CellSize)
	if i < 0 {
		return 0
	}
	if i >= TraySlots {
		return TraySlots - 1
	}
	return i
}

// IsValidTrayPlacement reports whether a sprite at p sits inside the tray
// without overlapping another parked piece.
func (b *Board) IsValidTrayPlacement(p Point, moving *Piece) bool {
	center := spriteCenter(p)
	if !InTray(center.Y) || center.X < BoardX || center.X >= BoardX+BoardPixels {
		return false
	}
	for _, other := range b.Pieces {
		if other == moving || b.OnBoard(other) {
			continue
		}
		if overlaps(center, other.Center()) {
			return false
		}
	}
	return true
}

// TrayDropSlot picks where a piece released over the tray at column x
// lands: the slot under the cursor if free, else the first free slot.
// ok is false when every slot is taken.
func (b *Board) TrayDropSlot(x int, moving *Piece) (Point, bool) {
	if p := TraySlot(TraySlotAt(x)); b.IsValidTrayPlacement(p, moving) {
		return p, true
	}
	for i := 0; i < TraySlots; i++ {
		if p := TraySlot(i); b.IsValidTrayPlacement(p, moving) {
			return p, true
		}
	}
	return Point{}, false
}
