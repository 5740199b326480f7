package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// textScale upscales the 7x13 bitmap face so labels read at window size.
const textScale = 2

// textRenderer draws labels with a scaled bitmap face.
type textRenderer struct {
	face text.Face
}

func newTextRenderer() *textRenderer {
	return &textRenderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

// measure returns the on-screen size of s after scaling.
func (t *textRenderer) measure(s string) (float64, float64) {
	w, h := text.Measure(s, t.face, 0)
	return w * textScale, h * textScale
}

// draw renders s with its top-left corner at (x, y).
func (t *textRenderer) draw(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, t.face, op)
}

// drawCentered renders s centred inside r.
func (t *textRenderer) drawCentered(screen *ebiten.Image, s string, r rect, clr color.Color) {
	w, h := t.measure(s)
	x := float64(r.x) + (float64(r.w)-w)/2
	y := float64(r.y) + (float64(r.h)-h)/2
	t.draw(screen, s, x, y, clr)
}
