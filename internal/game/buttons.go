package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/artillery-chain/internal/board"
)

const (
	buttonWidth        = 150
	buttonHeight       = 40
	buttonShadowOffset = 2
)

var (
	detonateColor = color.RGBA{R: 200, A: 255}
	detonateHover = color.RGBA{R: 180, A: 255}
	undoColor     = color.RGBA{B: 200, A: 255}
	undoHover     = color.RGBA{B: 180, A: 255}
	copyColor     = color.RGBA{R: 60, G: 120, B: 60, A: 255}
	copyHover     = color.RGBA{R: 45, G: 100, B: 45, A: 255}
	buttonShadow  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

type rect struct {
	x int
	y int
	w int
	h int
}

func (r rect) contains(px, py int) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

// button is a clickable label with a drop shadow that darkens on hover.
type button struct {
	label   string
	r       rect
	base    color.RGBA
	hover   color.RGBA
	hovered bool
}

func (b *button) contains(px, py int) bool {
	return b.r.contains(px, py)
}

func (b *button) fill() color.RGBA {
	if b.hovered {
		return b.hover
	}
	return b.base
}

// newButtons lays out Detonate in the header centre, Undo at the header's
// right edge and Copy at the footer's right edge.
func newButtons() (detonate, undo, cp *button) {
	headerButtonY := board.HeaderY + (board.HeaderHeight-buttonHeight)/2
	detonate = &button{
		label: "Detonate",
		r:     rect{x: (board.WindowWidth - buttonWidth) / 2, y: headerButtonY, w: buttonWidth, h: buttonHeight},
		base:  detonateColor,
		hover: detonateHover,
	}
	undo = &button{
		label: "Undo",
		r:     rect{x: board.WindowWidth - board.UIMargin - buttonWidth, y: headerButtonY, w: buttonWidth, h: buttonHeight},
		base:  undoColor,
		hover: undoHover,
	}
	cp = &button{
		label: "Copy",
		r:     rect{x: board.WindowWidth - board.UIMargin - buttonWidth, y: board.FooterY, w: buttonWidth, h: board.FooterHeight},
		base:  copyColor,
		hover: copyHover,
	}
	return detonate, undo, cp
}

func (g *Game) buttons() []*button {
	return []*button{g.detonateBtn, g.undoBtn, g.copyBtn}
}

func (g *Game) drawButton(screen *ebiten.Image, b *button) {
	x, y := float32(b.r.x), float32(b.r.y)
	w, h := float32(b.r.w), float32(b.r.h)
	vector.FillRect(screen, x+buttonShadowOffset, y+buttonShadowOffset, w, h, buttonShadow, false)
	vector.FillRect(screen, x, y, w, h, b.fill(), false)
	g.text.drawCentered(screen, b.label, b.r, colWhite)
}
