package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/artillery-chain/internal/board"
)

const (
	pieceRadius   = board.CellSize / 3
	turretRadius  = board.CellSize / 6
	barrelRadius  = board.CellSize / 12
	barrelOffset  = board.CellSize / 5
	targetRadius  = board.CellSize / 3
	monolithSize  = board.CellSize * 2 / 3
	monolithWall  = board.CellSize / 8
	monolithCrack = 2
)

var (
	barrelColor    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	barrelInterior = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	barrelShadow   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

// shade shifts every channel of c by d, clamped to [0, 255].
func shade(c color.RGBA, d int) color.RGBA {
	ch := func(v uint8) uint8 {
		n := int(v) + d
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return uint8(n)
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

func pieceColor(k board.Kind) color.RGBA {
	if k == board.KindStraight {
		return colGreen
	}
	return colRed
}

// barrelDirections returns unit-length barrel directions so diagonal
// barrels sit the same distance from the turret as cardinal ones.
func barrelDirections(k board.Kind) [4][2]float32 {
	var out [4][2]float32
	for i, d := range k.Directions() {
		dx, dy := float64(d.X), float64(d.Y)
		l := math.Hypot(dx, dy)
		out[i] = [2]float32{float32(dx / l), float32(dy / l)}
	}
	return out
}

func drawPiece(screen *ebiten.Image, p *board.Piece) {
	c := p.Center()
	cx, cy := float32(c.X), float32(c.Y)
	base := pieceColor(p.Kind)
	hi := shade(base, 50)
	lo := shade(base, -50)

	vector.FillCircle(screen, cx+2, cy+2, pieceRadius, lo, true)
	vector.FillCircle(screen, cx, cy, pieceRadius, base, true)
	vector.FillCircle(screen, cx-2, cy-2, pieceRadius*3/4, hi, true)

	vector.FillCircle(screen, cx+1, cy+1, turretRadius, lo, true)
	vector.FillCircle(screen, cx, cy, turretRadius, base, true)
	vector.FillCircle(screen, cx-1, cy-1, turretRadius/2, hi, true)

	for _, d := range barrelDirections(p.Kind) {
		bx := cx + d[0]*barrelOffset
		by := cy + d[1]*barrelOffset
		vector.FillCircle(screen, bx+1, by+1, barrelRadius, barrelShadow, true)
		vector.FillCircle(screen, bx, by, barrelRadius, barrelColor, true)
		vector.FillCircle(screen, bx, by, barrelRadius/2, barrelInterior, true)
	}
}

func drawTarget(screen *ebiten.Image, pos board.Point) {
	cx := float32(pos.X + board.CellSize/2)
	cy := float32(pos.Y + board.CellSize/2)
	dark := color.RGBA{R: 180, A: 255}
	pale := color.RGBA{R: 220, G: 220, B: 220, A: 255}

	vector.FillCircle(screen, cx+2, cy+2, targetRadius, dark, true)
	vector.FillCircle(screen, cx, cy, targetRadius, colRed, true)
	vector.FillCircle(screen, cx+2, cy+2, targetRadius*2/3, pale, true)
	vector.FillCircle(screen, cx, cy, targetRadius*2/3, colWhite, true)
	vector.FillCircle(screen, cx+1, cy+1, targetRadius/3, dark, true)
	vector.FillCircle(screen, cx, cy, targetRadius/3, colRed, true)
	vector.FillCircle(screen, cx-2, cy-2, targetRadius/4, color.RGBA{R: 255, G: 100, B: 100, A: 255}, true)
}

// drawMonolith draws a ruined block with a jagged top and cracked face.
func drawMonolith(screen *ebiten.Image, pos board.Point) {
	x := float32(pos.X + (board.CellSize-monolithSize)/2)
	y := float32(pos.Y + (board.CellSize-monolithSize)/2)
	s := float32(monolithSize)
	wall := float32(monolithWall)
	wallCol := color.RGBA{R: 80, G: 80, B: 80, A: 255}
	wallShadow := color.RGBA{R: 50, G: 50, B: 50, A: 255}
	crackCol := color.RGBA{R: 60, G: 60, B: 60, A: 255}

	vector.FillRect(screen, x+3, y+3, s, s, color.RGBA{R: 70, G: 70, B: 70, A: 255}, false)
	vector.FillRect(screen, x, y, s, s, color.RGBA{R: 100, G: 100, B: 100, A: 255}, false)
	vector.FillRect(screen, x+2, y+2, s-4, 10, color.RGBA{R: 130, G: 130, B: 130, A: 255}, false)
	vector.FillRect(screen, x+wall, y+wall, s-2*wall, s-wall, wallCol, false)
	vector.FillRect(screen, x, y+wall, wall, s-wall, wallShadow, false)
	vector.FillRect(screen, x+s-wall, y+wall, wall, s-wall, wallShadow, false)

	var top vector.Path
	top.MoveTo(x, y)
	top.LineTo(x+s/4, y-5)
	top.LineTo(x+s/2, y-10)
	top.LineTo(x+3*s/4, y-5)
	top.LineTo(x+s, y)
	top.Close()
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(wallCol)
	vector.FillPath(screen, &top, &vector.FillOptions{}, op)

	for i := 1; i <= 2; i++ {
		cxl := x + float32(i)*s/3
		vector.StrokeLine(screen, cxl, y+wall, cxl, y+s-10, monolithCrack, crackCol, false)
		cyl := y + float32(i)*s/3
		vector.StrokeLine(screen, x+wall, cyl, x+s-wall, cyl, monolithCrack, crackCol, false)
	}
}
