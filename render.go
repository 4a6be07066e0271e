package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/lanedash/engine"
	"github.com/zucenko/lanedash/model"
)

func rgba(c model.Color, alpha float64) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, uint8(math.Round(255 * clampF(alpha, 0, 1)))}
}

// drawSprite stretches img over r.
func drawSprite(screen, img *ebiten.Image, r model.Rect, alpha float64) {
	w, h := img.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(w), r.Height/float64(h))
	op.GeoM.Translate(r.X, r.Y)
	op.ColorM.Scale(1, 1, 1, alpha)
	screen.DrawImage(img, op)
}

// render executes one frame's draw list in order.
func (g *Game) render(screen *ebiten.Image, cmds []engine.DrawCmd) {
	for _, c := range cmds {
		switch c.Kind {
		case engine.DrawClear:
			if err := screen.Fill(colorRoad); err != nil {
				log.WithError(err).Warn("Clear failed")
			}
		case engine.DrawLaneLine:
			g.drawDashes(screen, c)
		case engine.DrawVehicle:
			drawSprite(screen, g.sprites.Vehicle, c.Rect, c.Alpha)
		case engine.DrawObstacle:
			drawSprite(screen, g.sprites.Obstacle, c.Rect, c.Alpha)
		case engine.DrawCoin:
			drawSprite(screen, g.sprites.Coin, c.Rect, c.Alpha)
		case engine.DrawParticle:
			w, _ := g.sprites.Dot.Size()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(2*c.Radius/float64(w), 2*c.Radius/float64(w))
			op.GeoM.Translate(c.Rect.X-c.Radius, c.Rect.Y-c.Radius)
			op.ColorM.Scale(float64(c.Color.R)/255, float64(c.Color.G)/255, float64(c.Color.B)/255, c.Alpha)
			screen.DrawImage(g.sprites.Dot, op)
		case engine.DrawHitbox:
			drawOutline(screen, c.Rect, rgba(c.Color, c.Alpha))
		case engine.DrawScore:
			text.Draw(screen, fmt.Sprintf("Score: %d", c.Value), g.faces.HUD, 12, 34, color.White)
		}
	}
}

func (g *Game) drawDashes(screen *ebiten.Image, c engine.DrawCmd) {
	clr := rgba(c.Color, c.Alpha)
	x := c.Rect.X - c.Rect.Width/2
	for y := c.Rect.Y; y < c.Rect.Height; y += c.Dash + c.Gap {
		ebitenutil.DrawRect(screen, x, y, c.Rect.Width, math.Min(c.Dash, c.Rect.Height-y), clr)
	}
}

func drawOutline(screen *ebiten.Image, r model.Rect, clr color.Color) {
	const w = 2
	ebitenutil.DrawRect(screen, r.X, r.Y, r.Width, w, clr)
	ebitenutil.DrawRect(screen, r.X, r.Y+r.Height-w, r.Width, w, clr)
	ebitenutil.DrawRect(screen, r.X, r.Y, w, r.Height, clr)
	ebitenutil.DrawRect(screen, r.X+r.Width-w, r.Y, w, r.Height, clr)
}
