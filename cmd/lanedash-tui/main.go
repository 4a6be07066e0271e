// Command lanedash-tui plays Lane Dash in a terminal.
package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/lanedash/config"
	"github.com/zucenko/lanedash/engine"
	"github.com/zucenko/lanedash/model"
	"github.com/zucenko/lanedash/share"
	"github.com/zucenko/lanedash/sound"
	"github.com/zucenko/lanedash/store"
)

// the world is laid out on a fixed virtual field and scaled onto the terminal
const (
	fieldWidth  = 400
	fieldHeight = 800
	logFile     = "lanedash-tui.log"
)

var (
	styleRoad     = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleLine     = styleRoad.Foreground(tcell.ColorWhite)
	styleVehicle  = styleRoad.Foreground(tcell.ColorDodgerBlue)
	styleObstacle = styleRoad.Foreground(tcell.ColorRed)
	styleCoin     = styleRoad.Foreground(tcell.ColorGold)
	styleText     = styleRoad.Foreground(tcell.ColorWhite).Bold(true)
)

type Game struct {
	screen        tcell.Screen
	width, height int

	cfg    *config.Config
	world  *engine.World
	frame  engine.Frame
	scores engine.ScoreStore
	audio  engine.AudioPlayer
	over   *model.Summary

	mouseDown bool
}

func NewGame(cfg *config.Config, scores engine.ScoreStore, player engine.AudioPlayer) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	g := &Game{screen: screen, cfg: cfg, scores: scores, audio: player}
	g.width, g.height = screen.Size()
	g.restart()
	return g, nil
}

func (g *Game) restart() {
	g.world = engine.NewWorld(engine.Options{
		Width:      fieldWidth,
		Height:     fieldHeight,
		Audio:      g.audio,
		Store:      g.scores,
		DebugBoxes: g.cfg.DebugBoxes,
	})
	g.frame = engine.Frame{Draw: g.world.Draw(), Continue: true}
	g.over = nil
}

func (g *Game) trigger() {
	if g.over != nil {
		g.restart()
		return
	}
	g.world.Unlock()
	g.world.SwitchLane()
}

// handleInput returns false when the player quits.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			g.trigger()
		case ev.Key() == tcell.KeyEnter && g.over != nil:
			g.restart()
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !g.mouseDown {
			g.trigger()
		}
		g.mouseDown = down
	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
		g.screen.Sync()
	}
	return true
}

func (g *Game) toCell(x, y float64) (int, int) {
	return int(math.Floor(x * float64(g.width) / fieldWidth)),
		int(math.Floor(y * float64(g.height) / fieldHeight))
}

func (g *Game) fill(r model.Rect, ch rune, style tcell.Style) {
	x0, y0 := g.toCell(r.X, r.Y)
	x1, y1 := g.toCell(r.X+r.Width, r.Y+r.Height)
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if x >= 0 && x < g.width && y >= 0 && y < g.height {
				g.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
}

func (g *Game) print(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		if x+i >= 0 && x+i < g.width && y >= 0 && y < g.height {
			g.screen.SetContent(x+i, y, r, nil, style)
		}
	}
}

func (g *Game) printCentered(y int, s string, style tcell.Style) {
	g.print((g.width-len([]rune(s)))/2, y, s, style)
}

func (g *Game) draw() {
	for _, c := range g.frame.Draw {
		switch c.Kind {
		case engine.DrawClear:
			g.screen.Fill(' ', styleRoad)
		case engine.DrawLaneLine:
			for y := c.Rect.Y; y < c.Rect.Height; y += c.Dash + c.Gap {
				g.fill(model.Rect{X: c.Rect.X - c.Rect.Width/2, Y: y, Width: c.Rect.Width, Height: math.Min(c.Dash, c.Rect.Height-y)}, '┃', styleLine)
			}
		case engine.DrawVehicle:
			g.fill(c.Rect, '█', styleVehicle)
		case engine.DrawObstacle:
			g.fill(c.Rect, '█', styleObstacle)
		case engine.DrawCoin:
			g.fill(c.Rect, '●', styleCoin)
		case engine.DrawParticle:
			if c.Alpha > .3 {
				x, y := g.toCell(c.Rect.X, c.Rect.Y)
				g.print(x, y, "*", styleRoad.Foreground(tcell.NewRGBColor(int32(c.Color.R), int32(c.Color.G), int32(c.Color.B))))
			}
		case engine.DrawHitbox:
			x0, y0 := g.toCell(c.Rect.X, c.Rect.Y)
			x1, y1 := g.toCell(c.Rect.X+c.Rect.Width, c.Rect.Y+c.Rect.Height)
			style := styleRoad.Foreground(tcell.NewRGBColor(int32(c.Color.R), int32(c.Color.G), int32(c.Color.B)))
			g.print(x0, y0, "┌", style)
			g.print(x1, y0, "┐", style)
			g.print(x0, y1, "└", style)
			g.print(x1, y1, "┘", style)
		case engine.DrawScore:
			g.print(1, 0, fmt.Sprintf("Score: %d", c.Value), styleText)
		}
	}

	if g.over != nil {
		mid := g.height / 2
		stars := strings.Repeat("★", g.over.Stars) + strings.Repeat("☆", 3-g.over.Stars)
		g.printCentered(mid-3, " GAME OVER ", styleText.Reverse(true))
		g.printCentered(mid-1, fmt.Sprintf("Your Score: %d", g.over.Score), styleText)
		g.printCentered(mid, stars, styleCoin)
		g.printCentered(mid+2, "space/enter: play again   q: quit", styleLine)
	} else if !g.world.SoundsEnabled() {
		g.printCentered(g.height-1, "space or click to switch lanes", styleLine)
	}
	g.screen.Show()
}

// pollEvents forwards terminal events until the screen is finalized or
// done is closed. The returned channel is closed when forwarding stops.
func (g *Game) pollEvents(done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

func (g *Game) step() {
	if g.over == nil {
		g.frame = g.world.Tick()
		if !g.frame.Continue {
			g.over = g.frame.Over
		}
	}
	g.draw()
}

func (g *Game) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := g.pollEvents(done)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.step()
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}

	// the screen owns the terminal, logs go to a file
	if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	cfg.Apply()

	kv, err := store.Open(cfg.Store, cfg.StorePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Score store: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	var player engine.AudioPlayer = sound.Nop{}
	if !cfg.Mute {
		s, err := sound.NewSpeaker()
		if err != nil {
			log.WithError(err).Warn("Audio disabled")
		} else {
			defer s.Close()
			player = s
		}
	}

	game, err := NewGame(cfg, store.NewScore(kv), player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	game.run()
	game.screen.Fini()

	// share the run that ended the session, if any
	if s := game.over; s != nil {
		fmt.Printf("Score %d. Share it:\n", s.Score)
		for _, l := range share.Build(s.Score, cfg.GameURL) {
			fmt.Printf("  %-9s %s\n", l.Destination.Name(), l.URL)
		}
	}
}
