package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/zucenko/lanedash/model"
	"github.com/zucenko/lanedash/share"
	"golang.org/x/image/font"
)

const (
	modalWidth  = 360
	modalHeight = 380
	starSize    = 56
)

// Modal is the game-over panel.
type Modal struct {
	summary   model.Summary
	links     []share.Link
	alpha     float64
	starScale [3]float64
	// ready once the intro animation is done; restart input is ignored before
	ready bool
}

func centered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	w := font.MeasureString(face, s).Round()
	text.Draw(screen, s, face, cx-w/2, y, clr)
}

func (g *Game) drawModal(screen *ebiten.Image) {
	m := g.modal
	sw, sh := screen.Size()
	ebitenutil.DrawRect(screen, 0, 0, float64(sw), float64(sh), color.NRGBA{0, 0, 0, uint8(160 * m.alpha)})

	w := math.Min(modalWidth, float64(sw)-20)
	x := (float64(sw) - w) / 2
	// slides up into place while fading in
	y := (float64(sh)-modalHeight)/2 + (1-m.alpha)*40
	g.panel.SetBounds(x, y, w, modalHeight)
	g.panel.Draw(screen, m.alpha)

	cx := sw / 2
	top := int(y)
	white := color.NRGBA{0xff, 0xff, 0xff, uint8(255 * m.alpha)}
	centered(screen, "Game Over", g.faces.Title, cx, top+60, white)
	centered(screen, fmt.Sprintf("Your Score: %d", m.summary.Score), g.faces.HUD, cx, top+105, white)

	for i := 0; i < 3; i++ {
		scale := m.starScale[i]
		alpha := .25 * m.alpha
		if i < m.summary.Stars {
			alpha = m.alpha
		} else {
			scale = 1
		}
		sx := float64(cx) + float64(i-1)*(starSize+12)
		sy := float64(top) + 170
		iw, _ := g.sprites.Star.Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(iw)/2, -float64(iw)/2)
		op.GeoM.Scale(scale*starSize/float64(iw), scale*starSize/float64(iw))
		op.GeoM.Translate(sx, sy)
		op.ColorM.Scale(1, 1, 1, alpha)
		screen.DrawImage(g.sprites.Star, op)
	}

	for i, l := range m.links {
		centered(screen, fmt.Sprintf("%d  Share on %s", i+1, l.Destination.Name()), g.faces.Small, cx, top+240+i*28, white)
	}
	if m.ready {
		centered(screen, "Tap or press Space to play again", g.faces.Small, cx, top+modalHeight-20, white)
	}
}
