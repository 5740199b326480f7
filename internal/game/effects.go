package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/artillery-chain/internal/board"
)

const (
	projectileTicks  = 36 // flight time of one shell (~0.6s at 60 TPS)
	projectileRadius = 4
	arcLift          = 0.6 // control point height as a fraction of shot length
	arcMinLift       = 40.0
	burstCount       = 14
	particleTicks    = 30
	particleSpeedMax = 3.0
	particleDrag     = 0.92
)

var (
	shellColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	burstHot   = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	burstCool  = color.RGBA{R: 255, G: 90, B: 20, A: 255}
)

type vec2 struct {
	x, y float64
}

func toVec(p board.Point) vec2 {
	return vec2{x: float64(p.X), y: float64(p.Y)}
}

// quadBezier evaluates the quadratic Bézier p0 -> p1 -> p2 at t in [0,1].
func quadBezier(p0, p1, p2 vec2, t float64) vec2 {
	u := 1 - t
	return vec2{
		x: u*u*p0.x + 2*u*t*p1.x + t*t*p2.x,
		y: u*u*p0.y + 2*u*t*p1.y + t*t*p2.y,
	}
}

// arcControl returns a control point above the midpoint of from->to so the
// shell lobs upward before landing.
func arcControl(from, to vec2) vec2 {
	dist := math.Hypot(to.x-from.x, to.y-from.y)
	lift := dist * arcLift
	if lift < arcMinLift {
		lift = arcMinLift
	}
	return vec2{x: (from.x + to.x) / 2, y: (from.y+to.y)/2 - lift}
}

// projectile is a shell in flight along a quadratic arc.
type projectile struct {
	from, ctrl, to vec2
	age            int
}

func (p *projectile) progress() float64 {
	return float64(p.age) / projectileTicks
}

func (p *projectile) pos() vec2 {
	return quadBezier(p.from, p.ctrl, p.to, p.progress())
}

// particle is a spark thrown out by a landing shell. It slows down and fades.
type particle struct {
	pos, vel vec2
	age      int
	col      color.RGBA
}

// alpha is the remaining opacity in [0,1].
func (p *particle) alpha() float64 {
	a := 1 - float64(p.age)/particleTicks
	if a < 0 {
		return 0
	}
	return a
}

// Effects owns the cosmetic detonation animation. It never touches the board.
type Effects struct {
	projectiles []*projectile
	particles   []*particle
	rng         *rand.Rand
}

// NewEffects creates an empty effect layer.
func NewEffects(seed int64) *Effects {
	return &Effects{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- cosmetic only
}

// Fire launches one shell per shot.
func (e *Effects) Fire(shots []board.Shot) {
	for _, s := range shots {
		from, to := toVec(s.From), toVec(s.To)
		e.projectiles = append(e.projectiles, &projectile{
			from: from,
			ctrl: arcControl(from, to),
			to:   to,
		})
	}
}

// Active reports whether anything is still animating.
func (e *Effects) Active() bool {
	return len(e.projectiles) > 0 || len(e.particles) > 0
}

// Update advances every spark and shell by one tick. Shells that land burst
// into fresh particles; spent items are dropped.
func (e *Effects) Update() {
	liveSparks := e.particles[:0]
	for _, p := range e.particles {
		p.age++
		if p.age >= particleTicks {
			continue
		}
		p.pos.x += p.vel.x
		p.pos.y += p.vel.y
		p.vel.x *= particleDrag
		p.vel.y *= particleDrag
		liveSparks = append(liveSparks, p)
	}
	e.particles = liveSparks

	liveShells := e.projectiles[:0]
	for _, p := range e.projectiles {
		p.age++
		if p.age >= projectileTicks {
			e.burst(p.to)
			continue
		}
		liveShells = append(liveShells, p)
	}
	e.projectiles = liveShells
}

func (e *Effects) burst(at vec2) {
	for i := 0; i < burstCount; i++ {
		angle := e.rng.Float64() * 2 * math.Pi
		speed := (0.3 + 0.7*e.rng.Float64()) * particleSpeedMax
		col := burstHot
		if i%2 == 1 {
			col = burstCool
		}
		e.particles = append(e.particles, &particle{
			pos: at,
			vel: vec2{x: math.Cos(angle) * speed, y: math.Sin(angle) * speed},
			col: col,
		})
	}
}

func (e *Effects) Draw(screen *ebiten.Image) {
	for _, p := range e.projectiles {
		at := p.pos()
		vector.FillCircle(screen, float32(at.x), float32(at.y), projectileRadius, shellColor, true)
	}
	for _, p := range e.particles {
		a := p.alpha()
		// Premultiply the spark colour by its fade.
		c := color.RGBA{
			R: uint8(float64(p.col.R) * a),
			G: uint8(float64(p.col.G) * a),
			B: uint8(float64(p.col.B) * a),
			A: uint8(255 * a),
		}
		r := float32(1.5 + 2*a)
		vector.FillCircle(screen, float32(p.pos.x), float32(p.pos.y), r, c, true)
	}
}
