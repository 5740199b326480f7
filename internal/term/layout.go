package term

import "github.com/Garsondee/artillery-chain/internal/board"

// Terminal layout. Each board cell is cellCols characters wide and cellRows
// rows tall; the tray sits one blank row below the board.
const (
	originCol = 2
	originRow = 2
	cellCols  = 4
	cellRows  = 2
	trayRows  = 2

	colPixels     = board.CellSize / cellCols
	rowPixels     = board.CellSize / cellRows
	trayRowPixels = board.TrayHeight / trayRows

	boardRows = board.BoardSize * cellRows
	gapRow    = originRow + boardRows
	trayRow   = gapRow + 1
	statusRow = trayRow + trayRows + 1

	minWidth  = originCol + board.BoardSize*cellCols + 2
	minHeight = statusRow + 1
)

// toPixel maps a terminal cell to the board pixel at its centre, so mouse
// input can drive the same session as the window front end.
func toPixel(col, row int) board.Point {
	x := board.BoardX + (col-originCol)*colPixels + colPixels/2
	var y int
	switch {
	case row >= trayRow:
		y = board.TrayY + (row-trayRow)*trayRowPixels + trayRowPixels/2
	case row == gapRow:
		y = board.TrayY - board.UIMargin/2
	default:
		y = board.BoardY + (row-originRow)*rowPixels + rowPixels/2
	}
	return board.Point{X: x, Y: y}
}

// toScreen maps a board pixel back to the terminal cell containing it.
func toScreen(p board.Point) (int, int) {
	col := originCol + floorDiv(p.X-board.BoardX, colPixels)
	var row int
	switch {
	case p.Y >= board.TrayY:
		row = trayRow + floorDiv(p.Y-board.TrayY, trayRowPixels)
	case p.Y >= board.BoardY+board.BoardPixels:
		row = gapRow
	default:
		row = originRow + floorDiv(p.Y-board.BoardY, rowPixels)
	}
	return col, row
}

// cellScreen returns the top-left terminal cell of a board cell.
func cellScreen(c board.Cell) (int, int) {
	return originCol + c.X*cellCols, originRow + c.Y*cellRows
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
