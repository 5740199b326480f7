package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drag performs a full press/motion/release gesture grabbing p by its centre.
func drag(s *Session, p *Piece, to Point) DropResult {
	s.Press(p.Center())
	s.Motion(to)
	return s.Release(to)
}

func TestSession_CommitAndUndo(t *testing.T) {
	s := NewSession(DefaultBoard())
	p := s.Board().Pieces[0]
	start := p.Pos

	res := drag(s, p, CellCenter(Cell{2, 1}))
	require.Equal(t, DropCommitted, res)
	assert.Equal(t, CellOrigin(Cell{2, 1}), p.Pos)
	assert.Equal(t, 1, s.History().Len())
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 1, s.Zones()[Cell{3, 1}])

	require.True(t, s.Undo())
	assert.Equal(t, start, p.Pos)
	assert.Zero(t, s.History().Len())
	assert.Zero(t, s.Zones()[Cell{3, 1}])
	assert.Equal(t, 1, s.Zones()[Cell{2, 1}])
}

func TestSession_UndoRestoresOnlyPrecedingMove(t *testing.T) {
	s := NewSession(DefaultBoard())
	p := s.Board().Pieces[0]

	require.Equal(t, DropCommitted, drag(s, p, CellCenter(Cell{2, 1})))
	require.Equal(t, DropCommitted, drag(s, p, CellCenter(Cell{6, 1})))

	require.True(t, s.Undo())
	assert.Equal(t, CellOrigin(Cell{2, 1}), p.Pos)
	assert.Equal(t, 1, s.History().Len())
}

func TestSession_UndoEmpty(t *testing.T) {
	b := DefaultBoard()
	s := NewSession(b)
	before := b.String()
	assert.False(t, s.Undo())
	assert.Equal(t, before, b.String())
}

func TestSession_SnapsOffCentreDrop(t *testing.T) {
	s := NewSession(DefaultBoard())
	p := s.Board().Pieces[0]
	// 30px right of and 25px below cell (6,2)'s centre, still inside it.
	to := CellCenter(Cell{6, 2}).Add(Point{X: 30, Y: 25})
	require.Equal(t, DropCommitted, drag(s, p, to))
	assert.Equal(t, CellOrigin(Cell{6, 2}), p.Pos)
}

func TestSession_GrabOffsetPreserved(t *testing.T) {
	s := NewSession(DefaultBoard())
	p := s.Board().Pieces[0]
	grab := p.Center().Add(Point{X: 20, Y: -10})
	require.True(t, s.Press(grab))

	// Cursor moves exactly three cells right; so does the piece.
	to := grab.Add(Point{X: 3 * CellSize})
	s.Motion(to)
	assert.Equal(t, CellOrigin(Cell{4, 1}), p.Pos)
	assert.Equal(t, DropCommitted, s.Release(to))
	assert.Equal(t, CellOrigin(Cell{4, 1}), p.Pos)
}

func TestSession_InvalidDropReverts(t *testing.T) {
	s := NewSession(DefaultBoard())
	p := s.Board().Pieces[0]
	start := p.Pos

	for _, c := range []Cell{{3, 3}, {5, 5}, {4, 4}, {-1, 2}} {
		res := drag(s, p, CellCenter(c))
		assert.Equal(t, DropReverted, res, "drop on %v", c)
		assert.Equal(t, start, p.Pos)
	}
	assert.Zero(t, s.History().Len())
}

func TestSession_ClickWithoutMoving(t *testing.T) {
	s := NewSession(DefaultBoard())
	p := s.Board().Pieces[0]
	start := p.Pos

	require.True(t, s.Press(p.Center()))
	assert.Equal(t, StateDragging, s.State())
	assert.Same(t, p, s.Dragged())
	assert.Equal(t, DropUnmoved, s.Release(p.Center()))
	assert.Equal(t, start, p.Pos)
	assert.Zero(t, s.History().Len())
	assert.Nil(t, s.Dragged())
}

func TestSession_DropOnOwnCell(t *testing.T) {
	s := NewSession(DefaultBoard())
	p := s.Board().Pieces[0]
	start := p.Pos

	s.Press(p.Center())
	s.Motion(p.Center().Add(Point{X: 15}))
	assert.Equal(t, DropUnmoved, s.Release(p.Center().Add(Point{X: 15})))
	assert.Equal(t, start, p.Pos)
	assert.Zero(t, s.History().Len())
}

func TestSession_PressOnEmptySpace(t *testing.T) {
	s := NewSession(DefaultBoard())
	assert.False(t, s.Press(CellCenter(Cell{7, 0})))
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, DropNone, s.Release(CellCenter(Cell{7, 0})))
}

func TestSession_DropIntoTray(t *testing.T) {
	s := NewSession(DefaultBoard())
	p := s.Board().Pieces[0]

	res := drag(s, p, Point{X: BoardX + 40, Y: TrayY + TrayHeight/2})
	require.Equal(t, DropTray, res)
	assert.Equal(t, TraySlot(0), p.Pos)
	assert.False(t, s.Board().OnBoard(p))
	assert.Zero(t, s.Zones()[Cell{2, 1}])

	require.True(t, s.Undo())
	assert.Equal(t, CellOrigin(Cell{1, 1}), p.Pos)
}

func TestSession_TrayPieceOntoBoard(t *testing.T) {
	s := NewSession(DefaultBoard())
	spare := s.Board().Pieces[2]
	require.False(t, s.Board().OnBoard(spare))

	require.Equal(t, DropCommitted, drag(s, spare, CellCenter(Cell{7, 7})))
	assert.Equal(t, 1, s.Zones()[Cell{6, 6}])
}

func TestSession_TrayFullReverts(t *testing.T) {
	opts := []Option{WithPiece(KindStraight, Cell{0, 0})}
	for i := 0; i < TraySlots; i++ {
		opts = append(opts, WithTrayPiece(KindDiagonal, i))
	}
	s := NewSession(NewBoard(opts...))
	p := s.Board().Pieces[0]
	start := p.Pos

	assert.Equal(t, DropReverted, drag(s, p, Point{X: BoardX + 40, Y: TrayY + 10}))
	assert.Equal(t, start, p.Pos)
}

func TestSession_ZonesFollowDrag(t *testing.T) {
	s := NewSession(NewBoard(WithPiece(KindStraight, Cell{1, 1})))
	p := s.Board().Pieces[0]
	s.Press(p.Center())
	s.Motion(CellCenter(Cell{5, 5}))
	assert.Equal(t, 1, s.Zones()[Cell{5, 4}])
	assert.Zero(t, s.Zones()[Cell{1, 0}])
	s.Cancel()
	assert.Equal(t, CellOrigin(Cell{1, 1}), p.Pos)
	assert.Equal(t, 1, s.Zones()[Cell{1, 0}])
}

func TestSession_ReleaseWithoutMotion(t *testing.T) {
	s := NewSession(DefaultBoard())
	p := s.Board().Pieces[0]
	start := p.Pos

	s.Press(p.Center())
	require.Equal(t, DropCommitted, s.Release(CellCenter(Cell{6, 2})))
	assert.Equal(t, CellOrigin(Cell{6, 2}), p.Pos)
	assert.Equal(t, 1, s.History().Len())
	assert.Equal(t, 1, s.Zones()[Cell{6, 1}])

	require.True(t, s.Undo())
	assert.Equal(t, start, p.Pos)
}

func TestSession_ReleaseWithoutMotionOnTargetReverts(t *testing.T) {
	s := NewSession(DefaultBoard())
	p := s.Board().Pieces[0]
	start := p.Pos

	s.Press(p.Center())
	assert.Equal(t, DropReverted, s.Release(CellCenter(Cell{3, 3})))
	assert.Equal(t, start, p.Pos)
	assert.Zero(t, s.History().Len())
}

func TestSession_CancelRestoresPiece(t *testing.T) {
	s := NewSession(DefaultBoard())
	p := s.Board().Pieces[0]
	start := p.Pos

	s.Press(p.Center())
	s.Motion(CellCenter(Cell{6, 6}))
	s.Cancel()
	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Dragged())
	assert.Equal(t, start, p.Pos)
	assert.Zero(t, s.History().Len())

	s.Cancel()
	assert.Equal(t, start, p.Pos)
}

func TestSession_UndoRefusedWhileDragging(t *testing.T) {
	s := NewSession(DefaultBoard())
	p := s.Board().Pieces[0]
	require.Equal(t, DropCommitted, drag(s, p, CellCenter(Cell{2, 1})))
	s.Press(p.Center())
	assert.False(t, s.Undo())
	assert.Equal(t, 1, s.History().Len())
}

func TestSession_DetonateDoesNotMutate(t *testing.T) {
	s := NewSession(DefaultBoard())
	before := s.Board().String()
	shots := s.Detonate()
	assert.Len(t, shots, 8)
	for _, sh := range shots {
		assert.True(t, InBounds(sh.Cell))
		assert.Equal(t, CellCenter(sh.Cell), sh.To)
		assert.True(t, s.Board().OnBoard(sh.Piece))
	}
	assert.Equal(t, before, s.Board().String())
	assert.Zero(t, s.History().Len())
}
