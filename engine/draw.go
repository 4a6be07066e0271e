package engine

import "github.com/zucenko/lanedash/model"

type DrawKind int

const (
	DrawClear DrawKind = iota + 1
	// Rect.X is the line centre, Rect.Y the scroll offset where the first
	// dash starts, Rect.Width the stroke width, Rect.Height the play height.
	DrawLaneLine
	DrawVehicle
	DrawObstacle
	DrawCoin
	// Rect.X, Rect.Y is the centre.
	DrawParticle
	DrawHitbox
	DrawScore
)

// DrawCmd is one instruction for the rendering surface. Only the fields
// relevant to Kind are set.
type DrawCmd struct {
	Kind   DrawKind
	Rect   model.Rect
	Radius float64
	Alpha  float64
	Color  model.Color
	Dash   float64
	Gap    float64
	Value  int
}

var (
	hitboxVehicle  = model.Color{R: 255}
	hitboxObstacle = model.Color{G: 255}
	hitboxCoin     = model.Color{B: 255}
)

// Draw renders the current state without advancing it.
func (w *World) Draw() []DrawCmd {
	cmds := make([]DrawCmd, 0, 4+len(w.Obstacles)+len(w.Coins)+len(w.Particles))
	cmds = append(cmds,
		DrawCmd{Kind: DrawClear, Rect: model.Rect{Width: w.Width, Height: w.Height}},
		DrawCmd{
			Kind:  DrawLaneLine,
			Rect:  model.Rect{X: w.Width / 2, Y: w.ScrollOffset, Width: LineWidth, Height: w.Height},
			Color: model.ColorWhite,
			Alpha: 1,
			Dash:  LineDash,
			Gap:   LineGap,
		})

	sprite := w.Vehicle.Rect
	sprite.Width *= VehicleSpriteScale
	sprite.Height *= VehicleSpriteScale
	cmds = append(cmds, DrawCmd{Kind: DrawVehicle, Rect: sprite, Alpha: 1})

	for _, o := range w.Obstacles {
		cmds = append(cmds, DrawCmd{Kind: DrawObstacle, Rect: o.Rect, Alpha: 1})
	}
	for _, c := range w.Coins {
		cmds = append(cmds, DrawCmd{Kind: DrawCoin, Rect: c.Rect, Alpha: 1})
	}
	for _, p := range w.Particles {
		cmds = append(cmds, DrawCmd{
			Kind:   DrawParticle,
			Rect:   model.Rect{X: p.X, Y: p.Y},
			Radius: p.Size,
			Alpha:  p.Opacity,
			Color:  p.Color,
		})
	}

	if w.debugBoxes {
		cmds = append(cmds, DrawCmd{Kind: DrawHitbox, Rect: w.Vehicle.Rect, Color: hitboxVehicle, Alpha: .5})
		for _, o := range w.Obstacles {
			cmds = append(cmds, DrawCmd{Kind: DrawHitbox, Rect: o.Rect, Color: hitboxObstacle, Alpha: .5})
		}
		for _, c := range w.Coins {
			cmds = append(cmds, DrawCmd{Kind: DrawHitbox, Rect: c.Rect, Color: hitboxCoin, Alpha: .5})
		}
	}

	cmds = append(cmds, DrawCmd{Kind: DrawScore, Value: w.Score, Color: model.ColorWhite, Alpha: 1})
	return cmds
}
