package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/artillery-chain/internal/board"
)

// handleInput polls the mouse once per frame. Only the left button is used:
// press picks up a piece or clicks a button, holding drags, release drops.
// Escape or losing focus abandons a drag.
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || !ebiten.IsFocused() {
		g.cancelDrag()
	}
	mx, my := ebiten.CursorPosition()
	g.pointer(mx, my, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// pointer applies one frame of mouse state.
func (g *Game) pointer(mx, my int, down bool) {
	cur := board.Point{X: mx, Y: my}

	dragging := g.session.State() == board.StateDragging
	for _, b := range g.buttons() {
		b.hovered = !dragging && b.contains(mx, my)
	}

	switch {
	case down && !g.prevMouseLeft:
		g.press(cur)
	case !down && g.prevMouseLeft:
		if p := g.session.Dragged(); p != nil {
			g.dropped(p, g.session.Release(cur))
		}
	case down:
		g.session.Motion(cur)
	}
	g.prevMouseLeft = down
}

func (g *Game) press(cur board.Point) {
	switch {
	case g.detonateBtn.contains(cur.X, cur.Y):
		g.detonate()
	case g.undoBtn.contains(cur.X, cur.Y):
		g.undo()
	case g.copyBtn.contains(cur.X, cur.Y):
		g.copyBoard()
	default:
		g.session.Press(cur)
	}
}
