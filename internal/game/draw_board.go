package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/artillery-chain/internal/board"
)

var (
	previewValid   = color.RGBA{G: 200, A: 255}
	previewInvalid = color.RGBA{R: 220, A: 255}
)

func (g *Game) drawHeader(screen *ebiten.Image) {
	x := float32(board.UIMargin)
	y := float32(board.HeaderY)
	w := float32(board.WindowWidth - 2*board.UIMargin)
	h := float32(board.HeaderHeight)
	vector.FillRect(screen, x, y, w, h, colGray, false)
	vector.StrokeRect(screen, x, y, w, h, 2, colBlack, false)

	g.drawButton(screen, g.detonateBtn)
	g.drawButton(screen, g.undoBtn)

	score := fmt.Sprintf("Score: %d", g.score)
	_, th := g.text.measure(score)
	g.text.draw(screen, score, board.UIMargin+8, float64(board.HeaderY)+(board.HeaderHeight-th)/2, colBlack)
}

// drawBoard renders the board background, the detonation brightness overlay
// and the grid lines.
func (g *Game) drawBoard(screen *ebiten.Image) {
	bx, by := float32(board.BoardX), float32(board.BoardY)
	size := float32(board.BoardPixels)
	cs := float32(board.CellSize)
	vector.FillRect(screen, bx, by, size, size, colBlack, false)

	zones := g.session.Zones()
	for _, c := range zones.Cells() {
		a := zones.Alpha(c)
		// Premultiplied white at the overlap opacity.
		tint := color.RGBA{R: a, G: a, B: a, A: a}
		o := board.CellOrigin(c)
		vector.FillRect(screen, float32(o.X), float32(o.Y), cs, cs, tint, false)
	}

	for i := 0; i <= board.BoardSize; i++ {
		off := float32(i) * cs
		vector.StrokeLine(screen, bx+off, by, bx+off, by+size, 1, colWhite, false)
		vector.StrokeLine(screen, bx, by+off, bx+size, by+off, 1, colWhite, false)
	}

	b := g.session.Board()
	for _, t := range b.Targets {
		drawTarget(screen, t.Pos)
	}
	for _, m := range b.Monoliths {
		drawMonolith(screen, m.Pos)
	}
}

func (g *Game) drawTray(screen *ebiten.Image) {
	x, y := float32(board.BoardX), float32(board.TrayY)
	w, h := float32(board.BoardPixels), float32(board.TrayHeight)
	vector.FillRect(screen, x, y, w, h, colGray, false)
	vector.StrokeRect(screen, x, y, w, h, 2, colBlack, false)
}

// drawPieces draws resting pieces first and the dragged piece last so it
// floats above everything, with an outline on the cell it would snap to.
func (g *Game) drawPieces(screen *ebiten.Image) {
	dragged := g.session.Dragged()
	for _, p := range g.session.Board().Pieces {
		if p != dragged {
			drawPiece(screen, p)
		}
	}
	if dragged == nil {
		return
	}
	if c := board.CenterCellOf(dragged.Pos); board.InBounds(c) {
		o := board.CellOrigin(c)
		col := previewInvalid
		if g.session.Board().IsValidPlacement(o, dragged) {
			col = previewValid
		}
		cs := float32(board.CellSize)
		vector.StrokeRect(screen, float32(o.X)+2, float32(o.Y)+2, cs-4, cs-4, 3, col, false)
	}
	drawPiece(screen, dragged)
}

// drawFooter shows the most recent event and the Copy button.
func (g *Game) drawFooter(screen *ebiten.Image) {
	if e, ok := g.events.Latest(); ok {
		_, th := g.text.measure(e.Message)
		g.text.draw(screen, e.Message, board.UIMargin, float64(board.FooterY)+(board.FooterHeight-th)/2, colBlack)
	}
	g.drawButton(screen, g.copyBtn)
}
