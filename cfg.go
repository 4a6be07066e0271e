package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"math"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	sedanFile = "sedan.png"
	truckFile = "truck.png"
	coinFile  = "coin.png"
)

var (
	colorRoad     = color.NRGBA{0x33, 0x33, 0x33, 0xff}
	colorSedan    = color.NRGBA{0x2e, 0x86, 0xde, 0xff}
	colorTruck    = color.NRGBA{0xd6, 0x30, 0x31, 0xff}
	colorCoin     = color.NRGBA{0xf5, 0xc5, 0x18, 0xff}
	colorPanel    = color.NRGBA{0x22, 0x22, 0x2a, 0xf0}
	colorPanelRim = color.NRGBA{0xf5, 0xc5, 0x18, 0xff}
)

// Sprites are the images the renderer stretches over draw commands.
type Sprites struct {
	Vehicle  *ebiten.Image
	Obstacle *ebiten.Image
	Coin     *ebiten.Image
	// Dot is a white disc, tinted per particle.
	Dot  *ebiten.Image
	Star *ebiten.Image
}

type Faces struct {
	HUD   font.Face
	Title font.Face
	Small font.Face
}

// LoadSprites reads the sprite files from dir. A missing or broken file is
// replaced by a flat generated shape so the game stays playable.
func LoadSprites(dir string) (*Sprites, error) {
	s := &Sprites{}
	var err error
	if s.Dot, err = fromImage(disc(32, color.White)); err != nil {
		return nil, err
	}
	if s.Star, err = fromImage(star(64, colorCoin)); err != nil {
		return nil, err
	}
	if s.Vehicle, err = loadImage(filepath.Join(dir, "img", sedanFile), solid(100, 40, colorSedan)); err != nil {
		return nil, err
	}
	if s.Obstacle, err = loadImage(filepath.Join(dir, "img", truckFile), solid(100, 40, colorTruck)); err != nil {
		return nil, err
	}
	if s.Coin, err = loadImage(filepath.Join(dir, "img", coinFile), disc(30, colorCoin)); err != nil {
		return nil, err
	}
	return s, nil
}

func loadImage(path string, fallback image.Image) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path, ebiten.FilterDefault)
	if err == nil {
		return img, nil
	}
	log.WithError(err).WithField("path", path).Warn("Sprite missing, drawing a placeholder")
	return fromImage(fallback)
}

func fromImage(img image.Image) (*ebiten.Image, error) {
	e, err := ebiten.NewImageFromImage(img, ebiten.FilterDefault)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	return e, nil
}

func LoadFaces() (*Faces, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := func(size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	return &Faces{HUD: face(24), Title: face(40), Small: face(18)}, nil
}

func solid(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func disc(size int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+.5-r, float64(y)+.5-r
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

// star rasterizes a five-pointed star with the even-odd rule.
func star(size int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	var px, py [10]float64
	for i := 0; i < 10; i++ {
		rad := r
		if i%2 == 1 {
			rad = r * .45
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		px[i] = r + rad*math.Cos(a)
		py[i] = r + rad*math.Sin(a)
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)+.5, float64(y)+.5
			in := false
			for i, j := 0, 9; i < 10; j, i = i, i+1 {
				if (py[i] > fy) != (py[j] > fy) &&
					fx < (px[j]-px[i])*(fy-py[i])/(py[j]-py[i])+px[i] {
					in = !in
				}
			}
			if in {
				img.Set(x, y, c)
			}
		}
	}
	return img
}
