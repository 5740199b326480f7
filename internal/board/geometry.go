package board

import "fmt"

// Point is a pixel position. For pieces and obstacles it is the top-left
// corner of a cell-sized sprite.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is a grid coordinate. (0,0) is the top-left board cell.
type Cell struct {
	X, Y int
}

// Offset returns c shifted by d.
func (c Cell) Offset(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("[%d,%d]", c.X, c.Y)
}

// floorDiv divides rounding toward negative infinity so positions left of or
// above the board map to negative cells instead of collapsing onto cell 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// spriteCenter converts a top-left sprite position to its centre.
func spriteCenter(p Point) Point {
	return Point{X: p.X + CellSize/2, Y: p.Y + CellSize/2}
}

// spriteOrigin converts a sprite centre back to its top-left position.
func spriteOrigin(center Point) Point {
	return Point{X: center.X - CellSize/2, Y: center.Y - CellSize/2}
}

// CellOf returns the cell containing the top-left corner of p.
func CellOf(p Point) Cell {
	return Cell{
		X: floorDiv(p.X-BoardX, CellSize),
		Y: floorDiv(p.Y-BoardY, CellSize),
	}
}

// CenterCellOf returns the cell containing the centre of a sprite at p.
func CenterCellOf(p Point) Cell {
	return CellOf(spriteCenter(p))
}

// CellOrigin returns the top-left pixel of c.
func CellOrigin(c Cell) Point {
	return Point{X: BoardX + c.X*CellSize, Y: BoardY + c.Y*CellSize}
}

// CellCenter returns the centre pixel of c.
func CellCenter(c Cell) Point {
	return spriteCenter(CellOrigin(c))
}

// InBounds reports whether c lies on the board.
func InBounds(c Cell) bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// SnapToGrid moves a sprite at p so it sits exactly on the cell its centre
// falls in. Snapping a snapped position returns it unchanged.
func SnapToGrid(p Point) Point {
	return CellOrigin(CenterCellOf(p))
}

// onBoardPixel reports whether the pixel q lies inside the board square.
func onBoardPixel(q Point) bool {
	return q.X >= BoardX && q.X < BoardX+BoardPixels &&
		q.Y >= BoardY && q.Y < BoardY+BoardPixels
}

// InTray reports whether the pixel row y is inside the tray band.
func InTray(y int) bool {
	return y >= TrayY && y < TrayY+TrayHeight
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
