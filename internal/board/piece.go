package board

// Kind selects a piece's fire pattern.
type Kind int

const (
	KindStraight Kind = iota // fires along the four cardinal directions
	KindDiagonal             // fires along the four diagonals
)

var (
	straightDirections = [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirections = [4]Cell{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)

// Directions returns the four cell offsets a piece of this kind fires into.
func (k Kind) Directions() [4]Cell {
	if k == KindDiagonal {
		return diagonalDirections
	}
	return straightDirections
}

func (k Kind) String() string {
	switch k {
	case KindStraight:
		return "straight"
	case KindDiagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}

// Piece is an artillery piece. Pos is the top-left of its cell-sized sprite
// and is mutated in place while the piece is dragged.
type Piece struct {
	ID   int
	Kind Kind
	Pos  Point
}

// Center returns the sprite centre.
func (p *Piece) Center() Point {
	return spriteCenter(p.Pos)
}

// Cell returns the grid cell of the piece's top-left corner.
func (p *Piece) Cell() Cell {
	return CellOf(p.Pos)
}

// Hit reports whether q is within the piece's circular pick radius.
func (p *Piece) Hit(q Point) bool {
	c := p.Center()
	dx := q.X - c.X
	dy := q.Y - c.Y
	r := CellSize / 2
	return dx*dx+dy*dy <= r*r
}

// ObstacleKind distinguishes the static blockers.
type ObstacleKind int

const (
	ObstacleTarget ObstacleKind = iota
	ObstacleMonolith
)

func (k ObstacleKind) String() string {
	if k == ObstacleMonolith {
		return "monolith"
	}
	return "target"
}

// Obstacle is a static blocker. It never moves.
type Obstacle struct {
	Kind ObstacleKind
	Pos  Point
}

// Center returns the sprite centre.
func (o Obstacle) Center() Point {
	return spriteCenter(o.Pos)
}

// Cell returns the obstacle's grid cell.
func (o Obstacle) Cell() Cell {
	return CellOf(o.Pos)
}

// Board owns everything placed in a session.
type Board struct {
	Pieces    []*Piece
	Targets   []Obstacle
	Monoliths []Obstacle

	nextID int
}

// Option configures a Board under construction.
type Option func(*Board)

// WithPiece places a piece of kind k on cell c.
func WithPiece(k Kind, c Cell) Option {
	return func(b *Board) {
		b.addPiece(k, CellOrigin(c))
	}
}

// WithTrayPiece parks a piece of kind k in tray slot i.
func WithTrayPiece(k Kind, i int) Option {
	return func(b *Board) {
		b.addPiece(k, TraySlot(i))
	}
}

// WithTarget adds a target on cell c.
func WithTarget(c Cell) Option {
	return func(b *Board) {
		b.Targets = append(b.Targets, Obstacle{Kind: ObstacleTarget, Pos: CellOrigin(c)})
	}
}

// WithMonolith adds a monolith on cell c.
func WithMonolith(c Cell) Option {
	return func(b *Board) {
		b.Monoliths = append(b.Monoliths, Obstacle{Kind: ObstacleMonolith, Pos: CellOrigin(c)})
	}
}

// NewBoard builds a board from options, applied in order.
func NewBoard(opts ...Option) *Board {
	b := &Board{}
	for _, o := range opts {
		o(b)
	}
	return b
}

// DefaultBoard returns the starting layout: one straight and one diagonal
// piece on the board, a spare diagonal piece in the tray, a target and a
// monolith.
func DefaultBoard() *Board {
	return NewBoard(
		WithPiece(KindStraight, Cell{1, 1}),
		WithPiece(KindDiagonal, Cell{4, 4}),
		WithTrayPiece(KindDiagonal, 2),
		WithTarget(Cell{3, 3}),
		WithMonolith(Cell{5, 5}),
	)
}

func (b *Board) addPiece(k Kind, pos Point) *Piece {
	p := &Piece{ID: b.nextID, Kind: k, Pos: pos}
	b.nextID++
	b.Pieces = append(b.Pieces, p)
	return p
}

// Piece returns the piece with the given ID, or nil.
func (b *Board) Piece(id int) *Piece {
	for _, p := range b.Pieces {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PieceAt returns the first piece whose pick circle contains q, or nil.
func (b *Board) PieceAt(q Point) *Piece {
	for _, p := range b.Pieces {
		if p.Hit(q) {
			return p
		}
	}
	return nil
}

// OnBoard reports whether p counts as placed on the board rather than
// parked in the tray.
func (b *Board) OnBoard(p *Piece) bool {
	return p.Pos.Y < TrayY
}

// obstacles returns targets followed by monoliths.
func (b *Board) obstacles() []Obstacle {
	out := make([]Obstacle, 0, len(b.Targets)+len(b.Monoliths))
	out = append(out, b.Targets...)
	return append(out, b.Monoliths...)
}
