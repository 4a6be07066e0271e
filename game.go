package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/lanedash/config"
	"github.com/zucenko/lanedash/engine"
	"github.com/zucenko/lanedash/share"
	"github.com/zucenko/lanedash/sound"
	"github.com/zucenko/lanedash/store"
)

type GameState int

const (
	PLAYING GameState = iota + 1
	OVER
)

func (s GameState) Name() string {
	switch s {
	case PLAYING:
		return "PLAYING"
	case OVER:
		return "OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Game adapts an engine.World to ebiten: it forwards input, ticks the
// world once per Update and draws the frame it returns.
type Game struct {
	State GameState
	cfg   *config.Config
	world *engine.World
	frame engine.Frame

	store engine.ScoreStore
	audio engine.AudioPlayer

	sprites *Sprites
	faces   *Faces
	panel   *Nine
	modal   *Modal

	strokes map[*Stroke]struct{}
	Tweens  map[*gween.Tween]*Action

	width, height int
}

func NewGame(cfg *config.Config, scores engine.ScoreStore, player engine.AudioPlayer) (*Game, error) {
	sprites, err := LoadSprites(cfg.AssetDir)
	if err != nil {
		return nil, err
	}
	faces, err := LoadFaces()
	if err != nil {
		return nil, err
	}
	panel, err := fromImage(panelImage(48, 16, colorPanel, colorPanelRim))
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		store:   scores,
		audio:   player,
		sprites: sprites,
		faces:   faces,
		panel:   NewNine(panel, 16),
		strokes: map[*Stroke]struct{}{},
		Tweens:  map[*gween.Tween]*Action{},
		width:   cfg.Width,
		height:  cfg.Height,
	}
	g.restart()
	return g, nil
}

func (g *Game) restart() {
	g.world = engine.NewWorld(engine.Options{
		Width:      float64(g.width),
		Height:     float64(g.height),
		Audio:      g.audio,
		Store:      g.store,
		DebugBoxes: g.cfg.DebugBoxes,
	})
	g.frame = engine.Frame{Draw: g.world.Draw(), Continue: true}
	g.modal = nil
	g.State = PLAYING
}

func (g *Game) gameOver(f engine.Frame) {
	g.State = OVER
	g.modal = &Modal{summary: *f.Over, links: share.Build(f.Over.Score, g.cfg.GameURL)}
	g.animateModal(g.modal)
}

func (g *Game) handleInput() {
	tap := g.tapped() || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	switch g.State {
	case PLAYING:
		g.playingInput(tap)
	case OVER:
		for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
			if i < len(g.modal.links) && inpututil.IsKeyJustPressed(key) {
				l := g.modal.links[i]
				log.WithField("destination", l.Destination.Name()).Info("Share link")
				fmt.Println(l.URL)
			}
		}
		g.overInput(tap || inpututil.IsKeyJustPressed(ebiten.KeyEnter))
	}
}

// playingInput unlocks sound on the first trigger and switches lane on each.
func (g *Game) playingInput(tap bool) {
	if !tap {
		return
	}
	g.world.Unlock()
	g.world.SwitchLane()
}

// overInput starts a new run once the modal has finished animating.
func (g *Game) overInput(again bool) bool {
	if !again || !g.modal.ready {
		return false
	}
	g.restart()
	return true
}

func (g *Game) Update(screen *ebiten.Image) error {
	g.updateTweens()
	g.handleInput()

	if g.State == PLAYING {
		g.frame = g.world.Tick()
		if !g.frame.Continue && g.frame.Over != nil {
			g.gameOver(g.frame)
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.render(screen, g.frame.Draw)
	if g.modal != nil {
		g.drawModal(screen)
	}
	if g.cfg.DebugBoxes {
		ebitenutil.DebugPrintAt(screen, g.State.Name()+" "+g.world.State.Name(), 12, g.height-20)
	}
	return nil
}

// Layout follows the window size; the world re-lays its lanes on change.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.world.Resize(float64(outsideWidth), float64(outsideHeight))
		if g.State == OVER {
			g.frame.Draw = g.world.Draw()
		}
	}
	return g.width, g.height
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Config")
	}
	cfg.Apply()

	kv, err := store.Open(cfg.Store, cfg.StorePath)
	if err != nil {
		log.WithError(err).Fatal("Score store")
	}
	defer kv.Close()

	var player engine.AudioPlayer = sound.Nop{}
	if !cfg.Mute {
		a, err := NewAudio(cfg.AssetDir)
		if err != nil {
			log.WithError(err).Warn("Audio disabled")
		} else {
			player = a
		}
	}

	game, err := NewGame(cfg, store.NewScore(kv), player)
	if err != nil {
		log.WithError(err).Fatal("Game")
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Lane Dash")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Error("Game loop")
		kv.Close()
		os.Exit(1)
	}
}
