// Package term is a terminal front end for the board, driven by tcell mouse
// events. It feeds the same board.Session as the window build.
package term

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/artillery-chain/internal/board"
)

var (
	styleDefault  = tcell.StyleDefault
	styleBoard    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleTray     = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorBlack)
	styleDetonate = tcell.StyleDefault.Background(tcell.NewRGBColor(200, 0, 0)).Foreground(tcell.ColorWhite)
	styleUndo     = tcell.StyleDefault.Background(tcell.NewRGBColor(0, 0, 200)).Foreground(tcell.ColorWhite)
	styleHover    = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
)

// termButton is a clickable label on the header row.
type termButton struct {
	label string
	x, y  int
	style tcell.Style
}

func (b termButton) contains(x, y int) bool {
	return y == b.y && x >= b.x && x < b.x+len(b.label)
}

// UI renders a session to a tcell screen and applies mouse input to it.
type UI struct {
	screen  tcell.Screen
	session *board.Session
	logger  *slog.Logger

	detonateBtn termButton
	undoBtn     termButton

	status   string
	hoverX   int
	hoverY   int
	prevDown bool
}

// New wraps an initialised screen. Mouse reporting is enabled here.
func New(screen tcell.Screen, s *board.Session, logger *slog.Logger) *UI {
	if logger == nil {
		logger = slog.Default()
	}
	screen.EnableMouse()
	return &UI{
		screen:      screen,
		session:     s,
		logger:      logger,
		detonateBtn: termButton{label: "[ Detonate ]", x: originCol + 12, y: 0, style: styleDetonate},
		undoBtn:     termButton{label: "[ Undo ]", x: originCol + 26, y: 0, style: styleUndo},
		hoverX:      -1,
		hoverY:      -1,
	}
}

// Run draws and handles events until the user quits or the screen closes.
func (u *UI) Run() error {
	w, h := u.screen.Size()
	if w < minWidth || h < minHeight {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, minWidth, minHeight)
	}
	for {
		u.Draw()
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if u.Handle(ev) {
			return nil
		}
	}
}

// Handle applies one event. It reports true when the user asked to quit.
// Escape during a drag puts the piece back instead of quitting.
func (u *UI) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape && u.session.State() == board.StateDragging {
			u.session.Cancel()
			u.note("drag cancelled")
			return false
		}
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true
		}
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventMouse:
		x, y := ev.Position()
		u.pointer(x, y, ev.Buttons()&tcell.Button1 != 0)
	}
	return false
}

func (u *UI) pointer(x, y int, down bool) {
	u.hoverX, u.hoverY = x, y
	cur := toPixel(x, y)
	switch {
	case down && !u.prevDown:
		switch {
		case u.detonateBtn.contains(x, y):
			shots := u.session.Detonate()
			u.note("detonate button clicked", "shots", len(shots))
		case u.undoBtn.contains(x, y):
			if u.session.Undo() {
				u.note("undo successful")
			} else {
				u.note("no moves to undo")
			}
		default:
			u.session.Press(cur)
		}
	case !down && u.prevDown:
		if p := u.session.Dragged(); p != nil {
			res := u.session.Release(cur)
			if res == board.DropReverted {
				u.note("invalid placement")
			} else if res.Recorded() {
				u.note(fmt.Sprintf("%s piece %s", p.Kind, res), "id", p.ID)
			}
		}
	case down:
		u.session.Motion(cur)
	}
	u.prevDown = down
}

func (u *UI) note(msg string, args ...any) {
	u.status = msg
	u.logger.Log(context.Background(), slog.LevelInfo, msg, args...)
}

// Status returns the last message shown on the status row.
func (u *UI) Status() string {
	return u.status
}

// Draw renders the full frame.
func (u *UI) Draw() {
	s := u.screen
	s.Clear()

	u.puts(originCol, 0, "Score: 0", styleDefault)
	for _, b := range []termButton{u.detonateBtn, u.undoBtn} {
		st := b.style
		if b.contains(u.hoverX, u.hoverY) && u.session.State() == board.StateIdle {
			st = styleHover
		}
		u.puts(b.x, b.y, b.label, st)
	}

	zones := u.session.Zones()
	for cy := 0; cy < board.BoardSize; cy++ {
		for cx := 0; cx < board.BoardSize; cx++ {
			c := board.Cell{X: cx, Y: cy}
			st := styleBoard
			if a := int32(zones.Alpha(c)); a > 0 {
				st = st.Background(tcell.NewRGBColor(a, a, a))
				if a > 128 {
					st = st.Foreground(tcell.ColorBlack)
				}
			}
			x0, y0 := cellScreen(c)
			for dy := 0; dy < cellRows; dy++ {
				for dx := 0; dx < cellCols; dx++ {
					ch := ' '
					if dx == cellCols-1 || dy == cellRows-1 {
						ch = '·'
					}
					s.SetContent(x0+dx, y0+dy, ch, nil, st)
				}
			}
		}
	}

	for dy := 0; dy < trayRows; dy++ {
		u.puts(originCol, trayRow+dy, fmt.Sprintf("%*s", board.BoardSize*cellCols, ""), styleTray)
	}

	b := u.session.Board()
	for _, o := range b.Targets {
		u.putCell(o.Cell(), "(o)", tcell.ColorRed)
	}
	for _, o := range b.Monoliths {
		u.putCell(o.Cell(), "[#]", tcell.ColorSilver)
	}
	dragged := u.session.Dragged()
	for _, p := range b.Pieces {
		if p == dragged {
			continue
		}
		if b.OnBoard(p) {
			u.putCell(board.CenterCellOf(p.Pos), glyph(p.Kind), pieceColor(p.Kind))
			continue
		}
		x := originCol + board.TraySlotAt(p.Center().X)*cellCols
		u.puts(x, trayRow, glyph(p.Kind), styleTray.Foreground(pieceColor(p.Kind)))
	}
	if dragged != nil {
		x, y := toScreen(dragged.Center())
		u.puts(x-1, y, glyph(dragged.Kind), styleDefault.Foreground(pieceColor(dragged.Kind)).Bold(true))
	}

	u.puts(originCol, statusRow, u.status, styleDefault)
	s.Show()
}

func (u *UI) puts(x, y int, str string, st tcell.Style) {
	for i, r := range []rune(str) {
		u.screen.SetContent(x+i, y, r, nil, st)
	}
}

// putCell writes a glyph in the top row of a board cell, keeping the cell's
// background.
func (u *UI) putCell(c board.Cell, g string, fg tcell.Color) {
	x0, y0 := cellScreen(c)
	for i, r := range []rune(g) {
		_, _, st, _ := u.screen.GetContent(x0+i, y0)
		u.screen.SetContent(x0+i, y0, r, nil, st.Foreground(fg).Bold(true))
	}
}

func glyph(k board.Kind) string {
	if k == board.KindDiagonal {
		return "(x)"
	}
	return "(+)"
}

func pieceColor(k board.Kind) tcell.Color {
	if k == board.KindDiagonal {
		return tcell.ColorRed
	}
	return tcell.ColorGreen
}
