package model

// Rect is an axis-aligned box in play-area pixels, origin top-left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Overlaps reports whether r and o intersect. Boxes that only touch along an
// edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// Center returns the middle point of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

type Lane int

const (
	LaneLeft Lane = iota
	LaneRight
)

// Other returns the opposite lane.
func (l Lane) Other() Lane {
	if l == LaneLeft {
		return LaneRight
	}
	return LaneLeft
}

type Vehicle struct {
	Rect
	Lane Lane
}

type Obstacle struct {
	Rect
	Lane Lane
}

type Coin struct {
	Rect
	Lane Lane
}

type Color struct {
	R, G, B uint8
}

var (
	ColorYellow = Color{255, 255, 0}
	ColorWhite  = Color{255, 255, 255}
)

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Opacity float64
	Life    int
	Color   Color
}

// Alive is false once the particle has run out of life or faded out.
func (p *Particle) Alive() bool {
	return p.Life > 0 && p.Opacity > 0
}

type State int

const (
	RUNNING State = iota + 1
	GAME_OVER
)

type Cue int

const (
	CueSwitch Cue = iota + 1
	CueCoin
	CueGameOver
)

// Summary is what the presentation layer gets when a run ends.
type Summary struct {
	Score int
	Stars int
}
