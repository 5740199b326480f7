package game

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Garsondee/artillery-chain/internal/board"
)

// newTestGame builds a Game without audio, fonts or a window.
func newTestGame() *Game {
	g := &Game{
		session: board.NewSession(board.DefaultBoard()),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		events:  NewEventLog(),
		effects: NewEffects(1),
	}
	g.detonateBtn, g.undoBtn, g.copyBtn = newButtons()
	return g
}

func centre(r rect) (int, int) {
	return r.x + r.w/2, r.y + r.h/2
}

// click runs a press frame and a release frame at (x, y).
func click(g *Game, x, y int) {
	g.pointer(x, y, true)
	g.pointer(x, y, false)
}

func latest(t *testing.T, g *Game) string {
	t.Helper()
	e, ok := g.events.Latest()
	if !ok {
		t.Fatal("expected an event to be logged")
	}
	return e.Message
}

func TestPointer_DragCommitsMove(t *testing.T) {
	g := newTestGame()
	p := g.session.Board().Pieces[0]
	from := p.Center()
	to := board.CellCenter(board.Cell{X: 2, Y: 1})

	g.pointer(from.X, from.Y, true)
	if g.session.State() != board.StateDragging {
		t.Fatal("expected press on a piece to start dragging")
	}
	g.pointer(to.X, to.Y, true)
	g.pointer(to.X, to.Y, false)

	if p.Pos != board.CellOrigin(board.Cell{X: 2, Y: 1}) {
		t.Fatalf("expected piece on cell (2,1), got %v", p.Pos)
	}
	if g.session.History().Len() != 1 {
		t.Fatalf("expected one recorded move, got %d", g.session.History().Len())
	}
	if !strings.Contains(latest(t, g), "straight piece to") {
		t.Fatalf("unexpected event: %q", latest(t, g))
	}
}

func TestPointer_ReleaseInSameFrameAsMove(t *testing.T) {
	g := newTestGame()
	p := g.session.Board().Pieces[0]
	from := p.Center()
	to := board.CellCenter(board.Cell{X: 6, Y: 2})

	g.pointer(from.X, from.Y, true)
	g.pointer(to.X, to.Y, false)

	if p.Cell() != (board.Cell{X: 6, Y: 2}) {
		t.Fatalf("expected piece on cell (6,2), got %v", p.Cell())
	}
	if g.session.History().Len() != 1 {
		t.Fatalf("expected one recorded move, got %d", g.session.History().Len())
	}
}

func TestCancelDrag_RestoresPiece(t *testing.T) {
	g := newTestGame()
	p := g.session.Board().Pieces[0]
	start := p.Pos
	from := p.Center()
	to := board.CellCenter(board.Cell{X: 6, Y: 2})

	g.cancelDrag()
	if g.events.Len() != 0 {
		t.Fatal("cancel while idle should log nothing")
	}

	g.pointer(from.X, from.Y, true)
	g.pointer(to.X, to.Y, true)
	g.cancelDrag()
	if p.Pos != start || g.session.State() != board.StateIdle {
		t.Fatalf("expected piece back at %v and idle, got %v", start, p.Pos)
	}
	if got := latest(t, g); got != "drag cancelled" {
		t.Fatalf("unexpected event %q", got)
	}

	g.pointer(to.X, to.Y, true)
	g.pointer(to.X, to.Y, false)
	if p.Pos != start || g.session.History().Len() != 0 {
		t.Fatal("releasing after a cancel should not move the piece")
	}
}

func TestPointer_UndoButton(t *testing.T) {
	g := newTestGame()
	ux, uy := centre(g.undoBtn.r)

	click(g, ux, uy)
	if got := latest(t, g); got != "no moves to undo" {
		t.Fatalf("expected empty-history message, got %q", got)
	}

	p := g.session.Board().Pieces[0]
	start := p.Pos
	from := p.Center()
	to := board.CellCenter(board.Cell{X: 6, Y: 1})
	g.pointer(from.X, from.Y, true)
	g.pointer(to.X, to.Y, true)
	g.pointer(to.X, to.Y, false)

	click(g, ux, uy)
	if got := latest(t, g); got != "undo successful" {
		t.Fatalf("expected undo message, got %q", got)
	}
	if p.Pos != start {
		t.Fatalf("expected piece back at %v, got %v", start, p.Pos)
	}
}

func TestPointer_DetonateButtonFiresEffects(t *testing.T) {
	g := newTestGame()
	before := g.session.Board().String()
	dx, dy := centre(g.detonateBtn.r)
	click(g, dx, dy)
	if !g.effects.Active() {
		t.Fatal("expected detonation to start effects")
	}
	if got := latest(t, g); got != "detonate button clicked" {
		t.Fatalf("unexpected event %q", got)
	}
	if after := g.session.Board().String(); after != before {
		t.Fatalf("detonate must not change the board:\n%s\nvs\n%s", before, after)
	}
}

func TestPointer_HoverTracksCursor(t *testing.T) {
	g := newTestGame()
	dx, dy := centre(g.detonateBtn.r)
	g.pointer(dx, dy, false)
	if !g.detonateBtn.hovered || g.undoBtn.hovered {
		t.Fatal("expected only the detonate button to be hovered")
	}
	g.pointer(0, 0, false)
	if g.detonateBtn.hovered {
		t.Fatal("hover should clear when the cursor leaves")
	}
}

func TestPointer_InvalidDropReverts(t *testing.T) {
	g := newTestGame()
	p := g.session.Board().Pieces[0]
	start := p.Pos
	from := p.Center()
	to := board.CellCenter(board.Cell{X: 3, Y: 3}) // target

	g.pointer(from.X, from.Y, true)
	g.pointer(to.X, to.Y, true)
	g.pointer(to.X, to.Y, false)

	if p.Pos != start {
		t.Fatalf("expected revert to %v, got %v", start, p.Pos)
	}
	if got := latest(t, g); got != "invalid placement" {
		t.Fatalf("unexpected event %q", got)
	}
}

func TestButtons_LayoutInsideWindow(t *testing.T) {
	g := newTestGame()
	for _, b := range g.buttons() {
		if b.r.x < 0 || b.r.y < 0 || b.r.x+b.r.w > board.WindowWidth || b.r.y+b.r.h > board.WindowHeight {
			t.Fatalf("button %q outside window: %+v", b.label, b.r)
		}
	}
	if g.detonateBtn.r.y+g.detonateBtn.r.h > board.BoardY || g.undoBtn.r.y+g.undoBtn.r.h > board.BoardY {
		t.Fatal("header buttons overlap the board")
	}
	if g.copyBtn.r.y < board.TrayY+board.TrayHeight {
		t.Fatal("copy button overlaps the tray")
	}
}

func TestEventLog_RingWraps(t *testing.T) {
	l := NewEventLog()
	for i := 0; i < eventLogEntries+5; i++ {
		l.Add(i, slog.LevelInfo, "msg")
	}
	if l.Len() != eventLogEntries {
		t.Fatalf("expected %d entries, got %d", eventLogEntries, l.Len())
	}
	recent := l.Recent()
	if recent[0].Tick != 5 || recent[len(recent)-1].Tick != eventLogEntries+4 {
		t.Fatalf("expected ticks 5..%d, got %d..%d", eventLogEntries+4, recent[0].Tick, recent[len(recent)-1].Tick)
	}
	last, _ := l.Latest()
	if last.Tick != eventLogEntries+4 {
		t.Fatalf("latest tick %d", last.Tick)
	}
}

func TestEventLog_EmptyLatest(t *testing.T) {
	if _, ok := NewEventLog().Latest(); ok {
		t.Fatal("empty log should have no latest entry")
	}
}
