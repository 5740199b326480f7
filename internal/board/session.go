package board

// DragState is the pointer interaction state of a Session.
type DragState int

const (
	StateIdle DragState = iota
	StateDragging
)

func (s DragState) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// DropResult says what happened when a dragged piece was released.
type DropResult int

const (
	DropNone      DropResult = iota // nothing was being dragged
	DropUnmoved                     // released where it started
	DropCommitted                   // snapped onto a valid board cell
	DropTray                        // parked in a tray slot
	DropReverted                    // invalid drop, returned to its origin
)

func (r DropResult) String() string {
	switch r {
	case DropUnmoved:
		return "unmoved"
	case DropCommitted:
		return "committed"
	case DropTray:
		return "tray"
	case DropReverted:
		return "reverted"
	default:
		return "none"
	}
}

// Recorded reports whether the drop produced an undoable move.
func (r DropResult) Recorded() bool {
	return r == DropCommitted || r == DropTray
}

// Shot is one cosmetic projectile fired on detonation, from a piece's centre
// to the centre of a cell in its zone.
type Shot struct {
	Piece *Piece
	From  Point
	To    Point
	Cell  Cell
}

// Session drives one game: a board, its undo history and the drag state.
// The brightness map is rebuilt after every position change.
type Session struct {
	board   *Board
	history History
	zones   Brightness

	state    DragState
	dragged  *Piece
	dragFrom Point // piece position when the drag started
	offset   Point // cursor minus piece centre at grab time
}

// NewSession starts a session on b.
func NewSession(b *Board) *Session {
	s := &Session{board: b}
	s.refresh()
	return s
}

func (s *Session) refresh() {
	s.zones = s.board.DetonationZones()
}

// Board returns the session's board.
func (s *Session) Board() *Board { return s.board }

// History returns the undo history.
func (s *Session) History() *History { return &s.history }

// Zones returns the current brightness map. Callers must not modify it.
func (s *Session) Zones() Brightness { return s.zones }

// State returns the drag state.
func (s *Session) State() DragState { return s.state }

// Dragged returns the piece being dragged, or nil when idle.
func (s *Session) Dragged() *Piece { return s.dragged }

// Press starts dragging the piece under q, if any. It reports whether a
// piece was picked up.
func (s *Session) Press(q Point) bool {
	if s.state == StateDragging {
		return false
	}
	p := s.board.PieceAt(q)
	if p == nil {
		return false
	}
	s.state = StateDragging
	s.dragged = p
	s.dragFrom = p.Pos
	s.offset = q.Sub(p.Center())
	return true
}

// Motion moves the dragged piece so its grab point follows the cursor.
func (s *Session) Motion(q Point) {
	if s.state != StateDragging {
		return
	}
	s.dragged.Pos = spriteOrigin(q.Sub(s.offset))
	s.refresh()
}

// Release drops the dragged piece at cursor q. Valid drops are snapped and
// recorded in the history; anything else puts the piece back.
func (s *Session) Release(q Point) DropResult {
	if s.state != StateDragging {
		return DropNone
	}
	p := s.dragged
	from := s.dragFrom
	s.state = StateIdle
	s.dragged = nil
	defer s.refresh()

	// The release may arrive with no motion event before it.
	p.Pos = spriteOrigin(q.Sub(s.offset))
	if p.Pos == from {
		return DropUnmoved
	}

	var (
		to     Point
		ok     bool
		result DropResult
	)
	if InTray(q.Y) {
		to, ok = s.board.TrayDropSlot(q.X, p)
		result = DropTray
	} else {
		to = SnapToGrid(spriteOrigin(q.Sub(s.offset)))
		ok = s.board.IsValidPlacement(to, p)
		result = DropCommitted
	}
	if !ok {
		p.Pos = from
		return DropReverted
	}
	p.Pos = to
	if to == from {
		return DropUnmoved
	}
	s.history.Push(Move{Piece: p, From: from, To: to})
	return result
}

// Cancel abandons a drag in progress and restores the piece.
func (s *Session) Cancel() {
	if s.state != StateDragging {
		return
	}
	s.dragged.Pos = s.dragFrom
	s.state = StateIdle
	s.dragged = nil
	s.refresh()
}

// Undo reverts the most recent committed move. It reports false when there
// is nothing to undo. Undo while dragging is refused.
func (s *Session) Undo() bool {
	if s.state == StateDragging {
		return false
	}
	if _, ok := s.history.Undo(); !ok {
		return false
	}
	s.refresh()
	return true
}

// Detonate returns the shots every on-board piece would fire. It does not
// change the board.
func (s *Session) Detonate() []Shot {
	var shots []Shot
	for _, p := range s.board.Pieces {
		for _, c := range s.board.Zone(p) {
			shots = append(shots, Shot{
				Piece: p,
				From:  p.Center(),
				To:    CellCenter(c),
				Cell:  c,
			})
		}
	}
	return shots
}
