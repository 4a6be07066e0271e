package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
)

// a press that travels further than this is a drag, not a tap
const tapSlop = 24

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke follows one press from the moment it goes down until it is released.
type Stroke struct {
	source StrokeSource

	initX, initY       int
	currentX, currentY int

	released bool
	dragged  bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		initX:    cx,
		initY:    cy,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	s.currentX, s.currentY = s.source.Position()
	dx, dy := s.currentX-s.initX, s.currentY-s.initY
	if dx*dx+dy*dy > tapSlop*tapSlop {
		s.dragged = true
	}
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

// IsTap is true for a released stroke that stayed near where it started.
func (s *Stroke) IsTap() bool {
	return s.released && !s.dragged
}

// tapped collects new presses and reports whether any stroke ended as a tap
// during this frame.
func (g *Game) tapped() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.strokes[NewStroke(&MouseStrokeSource{})] = struct{}{}
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		g.strokes[NewStroke(&TouchStrokeSource{id})] = struct{}{}
	}

	tap := false
	for s := range g.strokes {
		s.Update()
		if s.IsReleased() {
			tap = tap || s.IsTap()
			delete(g.strokes, s)
		}
	}
	return tap
}
