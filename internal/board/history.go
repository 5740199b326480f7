package board

// Move is one committed placement.
type Move struct {
	Piece *Piece
	From  Point
	To    Point
}

// History is the undo stack of committed moves.
type History struct {
	moves []Move
}

// Push records a committed move.
func (h *History) Push(m Move) {
	h.moves = append(h.moves, m)
}

// Undo pops the most recent move and puts its piece back where it came
// from. It reports false and changes nothing when the history is empty.
func (h *History) Undo() (Move, bool) {
	if len(h.moves) == 0 {
		return Move{}, false
	}
	m := h.moves[len(h.moves)-1]
	h.moves = h.moves[:len(h.moves)-1]
	m.Piece.Pos = m.From
	return m, true
}

// Last returns the most recent move without removing it.
func (h *History) Last() (Move, bool) {
	if len(h.moves) == 0 {
		return Move{}, false
	}
	return h.moves[len(h.moves)-1], true
}

// Len returns the number of recorded moves.
func (h *History) Len() int {
	return len(h.moves)
}
