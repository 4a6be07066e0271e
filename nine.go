package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Nine stretches a nine-slice image over a rectangle: corners keep their
// size, edges stretch along one axis, the centre along both.
type Nine struct {
	image   *ebiten.Image
	R, G, B float64
	// source cut lines: 0, border, size-border, size
	cuts [4]int
	// target cut lines, x and y
	xs, ys [4]float64
}

func NewNine(img *ebiten.Image, border int) *Nine {
	w, h := img.Size()
	n := &Nine{image: img, R: 1, G: 1, B: 1}
	n.cuts = [4]int{0, border, w - border, w}
	if h != w {
		panic("nine-slice image must be square")
	}
	return n
}

func (n *Nine) SetBounds(x, y, width, height float64) {
	border := float64(n.cuts[1])
	n.xs = [4]float64{x, x + border, x + width - border, x + width}
	n.ys = [4]float64{y, y + border, y + height - border, y + height}
}

func (n *Nine) Draw(screen *ebiten.Image, alpha float64) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(n.cuts[col], n.cuts[row], n.cuts[col+1], n.cuts[row+1])
			if src.Empty() {
				continue
			}
			sx := (n.xs[col+1] - n.xs[col]) / float64(src.Dx())
			sy := (n.ys[row+1] - n.ys[row]) / float64(src.Dy())
			if sx <= 0 || sy <= 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(n.xs[col], n.ys[row])
			op.ColorM.Scale(n.R, n.G, n.B, alpha)
			screen.DrawImage(n.image.SubImage(src).(*ebiten.Image), op)
		}
	}
}

// panelImage is a rounded square used as the modal background.
func panelImage(size, radius int, fill, edge color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(radius)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// distance to the nearest corner centre, when inside a corner box
			cx := clampF(float64(x)+.5, r, float64(size)-r)
			cy := clampF(float64(y)+.5, r, float64(size)-r)
			dx, dy := float64(x)+.5-cx, float64(y)+.5-cy
			d := dx*dx + dy*dy
			switch {
			case d > r*r:
			case d > (r-3)*(r-3) || x < 3 || y < 3 || x >= size-3 || y >= size-3:
				img.Set(x, y, edge)
			default:
				img.Set(x, y, fill)
			}
		}
	}
	return img
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
