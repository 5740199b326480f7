package game

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/artillery-chain/internal/board"
)

// Palette shared by the board and UI.
var (
	colWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colBlack = color.RGBA{A: 255}
	colGray  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colRed   = color.RGBA{R: 255, A: 255}
	colGreen = color.RGBA{G: 255, A: 255}
)

// Game is the ebiten front end for one board session.
type Game struct {
	session *board.Session
	logger  *slog.Logger
	events  *EventLog
	effects *Effects
	sounds  *SoundBank
	text    *textRenderer

	detonateBtn *button
	undoBtn     *button
	copyBtn     *button

	score int
	tick  int

	prevMouseLeft bool // for edge-triggered press/release detection
}

// New builds a game on the default starting board. Audio failures are
// logged and leave the game silent.
func New(logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		session: board.NewSession(board.DefaultBoard()),
		logger:  logger,
		events:  NewEventLog(),
		effects: NewEffects(time.Now().UnixNano()),
		text:    newTextRenderer(),
	}
	g.detonateBtn, g.undoBtn, g.copyBtn = newButtons()

	sounds, err := NewSoundBank()
	if err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	g.sounds = sounds
	return g
}

func (g *Game) Update() error {
	g.tick++
	g.handleInput()
	g.effects.Update()
	return nil
}

// note records a user-facing message on screen and in the process log.
func (g *Game) note(level slog.Level, msg string, args ...any) {
	g.events.Add(g.tick, level, msg)
	g.logger.Log(context.Background(), level, msg, args...)
}

func (g *Game) detonate() {
	shots := g.session.Detonate()
	g.note(slog.LevelInfo, "detonate button clicked", "shots", len(shots))
	g.effects.Fire(shots)
	g.sounds.Play(SoundDetonate)
}

func (g *Game) undo() {
	last, _ := g.session.History().Last()
	if g.session.Undo() {
		g.note(slog.LevelInfo, "undo successful", "id", last.Piece.ID, "remaining", g.session.History().Len())
		g.sounds.Play(SoundUndo)
		return
	}
	g.note(slog.LevelInfo, "no moves to undo")
	g.sounds.Play(SoundInvalid)
}

// cancelDrag puts a dragged piece back where it was picked up.
func (g *Game) cancelDrag() {
	if g.session.State() != board.StateDragging {
		return
	}
	g.session.Cancel()
	g.note(slog.LevelDebug, "drag cancelled")
}

func (g *Game) copyBoard() {
	if err := copyBoard(g.session.Board()); err != nil {
		g.note(slog.LevelWarn, "copy failed", "err", err)
		return
	}
	g.note(slog.LevelInfo, "copied board to clipboard")
}

// dropped reacts to the outcome of releasing a dragged piece.
func (g *Game) dropped(p *board.Piece, res board.DropResult) {
	switch res {
	case board.DropCommitted:
		g.note(slog.LevelDebug, fmt.Sprintf("%s piece to %v", p.Kind, p.Cell()), "id", p.ID)
		g.sounds.Play(SoundPlace)
	case board.DropTray:
		g.note(slog.LevelDebug, fmt.Sprintf("%s piece to tray", p.Kind), "id", p.ID)
		g.sounds.Play(SoundPlace)
	case board.DropReverted:
		g.note(slog.LevelDebug, "invalid placement", "id", p.ID)
		g.sounds.Play(SoundInvalid)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colWhite)
	g.drawHeader(screen)
	g.drawBoard(screen)
	g.drawTray(screen)
	g.drawPieces(screen)
	g.effects.Draw(screen)
	g.drawFooter(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return board.WindowWidth, board.WindowHeight
}
