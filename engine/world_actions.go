package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/lanedash/model"
)

func NewWorld(opts Options) *World {
	if opts.Audio == nil {
		opts.Audio = nopAudio{}
	}
	if opts.Store == nil {
		opts.Store = nopStore{}
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.StandardLogger()
	}

	id := uuid.New().String()
	w := &World{
		ID:              id,
		State:           model.RUNNING,
		Width:           opts.Width,
		Height:          opts.Height,
		Obstacles:       make([]model.Obstacle, 0),
		Coins:           make([]model.Coin, 0),
		Particles:       make([]model.Particle, 0, BurstSize),
		obstacleSpawner: spawner{chance: ObstacleChance, gap: ObstacleGap},
		coinSpawner:     spawner{chance: CoinChance, gap: CoinGap},
		audio:           opts.Audio,
		store:           opts.Store,
		clock:           opts.Clock,
		rnd:             opts.Rand,
		debugBoxes:      opts.DebugBoxes,
		log:             opts.Logger.WithField("run", id),
	}

	score, err := w.store.LoadScore()
	if err != nil {
		w.log.WithError(err).Warn("stored score unreadable, starting from 0")
		score = 0
	}
	w.Score = score

	w.Vehicle = model.Vehicle{
		Rect: model.Rect{
			X:      w.laneX(model.LaneLeft, VehicleWidth),
			Y:      w.vehicleY(),
			Width:  VehicleWidth,
			Height: VehicleHeight,
		},
		Lane: model.LaneLeft,
	}
	w.log.WithFields(log.Fields{
		"score":  w.Score,
		"width":  w.Width,
		"height": w.Height,
	}).Info("world created")
	return w
}

func (w *World) laneWidth() float64 {
	return w.Width / 2
}

// laneX is the left edge of an entity of the given width centred in lane.
func (w *World) laneX(lane model.Lane, width float64) float64 {
	lw := w.laneWidth()
	return lw*float64(lane) + lw/2 - width/2
}

func (w *World) vehicleY() float64 {
	return w.Height - VehicleHeight - VehicleMargin
}

func (w *World) SoundsEnabled() bool {
	return w.soundsEnabled
}

// Unlock records the first user gesture: it starts the background track and
// lets cues play from then on. Later calls do nothing.
func (w *World) Unlock() {
	if w.soundsEnabled {
		return
	}
	w.soundsEnabled = true
	w.audio.StartMusic()
	w.log.Info("sound unlocked")
}

func (w *World) SwitchLane() {
	if w.State == model.GAME_OVER {
		return
	}
	w.Vehicle.Lane = w.Vehicle.Lane.Other()
	w.Vehicle.X = w.laneX(w.Vehicle.Lane, VehicleWidth)
	w.play(model.CueSwitch)
	w.log.WithField("lane", w.Vehicle.Lane.Name()).Debug("lane switched")
}

// Resize adopts a new play area and snaps everything back onto its lane.
func (w *World) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == w.Width && height == w.Height {
		return
	}
	w.Width, w.Height = width, height
	w.Vehicle.X = w.laneX(w.Vehicle.Lane, VehicleWidth)
	w.Vehicle.Y = w.vehicleY()
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		o.X = w.laneX(o.Lane, o.Width)
	}
	for i := range w.Coins {
		c := &w.Coins[i]
		c.X = w.laneX(c.Lane, c.Width)
	}
	w.log.WithFields(log.Fields{"width": width, "height": height}).Debug("resized")
}

// Tick advances the world by one frame.
func (w *World) Tick() Frame {
	if w.State == model.GAME_OVER {
		return Frame{Draw: w.Draw(), Over: w.finish()}
	}

	w.scroll()
	w.move()
	w.updateParticles()
	w.collide()
	w.collectCoins()
	w.spawn()

	return Frame{Draw: w.Draw(), Continue: true}
}

func (w *World) scroll() {
	w.ScrollOffset += Speed
	if w.ScrollOffset > LineDash+LineGap {
		w.ScrollOffset = 0
	}
}

func (w *World) move() {
	obstacles := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		o.Y += Speed
		if o.Y > w.Height {
			w.Score += ObstacleBonus
			continue
		}
		obstacles = append(obstacles, o)
	}
	w.Obstacles = obstacles

	coins := w.Coins[:0]
	for _, c := range w.Coins {
		c.Y += Speed
		if c.Y > w.Height {
			continue
		}
		coins = append(coins, c)
	}
	w.Coins = coins
}

func (w *World) collide() {
	for _, o := range w.Obstacles {
		if w.Vehicle.Overlaps(o.Rect) {
			w.gameOver()
		}
	}
}

func (w *World) gameOver() {
	if w.State == model.GAME_OVER {
		return
	}
	w.State = model.GAME_OVER
	w.play(model.CueGameOver)
	w.log.WithFields(log.Fields{
		"score": w.Score,
		"state": w.State.Name(),
	}).Info("crashed")
}

func (w *World) collectCoins() {
	coins := w.Coins[:0]
	for _, c := range w.Coins {
		if !w.Vehicle.Overlaps(c.Rect) {
			coins = append(coins, c)
			continue
		}
		w.Score += CoinBonus
		w.persist()
		w.play(model.CueCoin)
		w.Burst(c.Center())
		w.log.WithField("score", w.Score).Info("coin collected")
	}
	w.Coins = coins
}

func (w *World) persist() {
	if err := w.store.SaveScore(w.Score); err != nil {
		w.log.WithError(err).Warn("score not saved")
	}
}

func (w *World) play(cue model.Cue) {
	if !w.soundsEnabled {
		return
	}
	w.audio.Play(cue)
}

// finish builds the hand-off for the presentation layer once per run.
func (w *World) finish() *model.Summary {
	if w.summary == nil {
		w.summary = &model.Summary{Score: w.Score, Stars: Stars(w.Score)}
		w.log.WithFields(log.Fields{
			"score": w.summary.Score,
			"stars": w.summary.Stars,
			"state": w.State.Name(),
		}).Info("game over")
	}
	s := *w.summary
	return &s
}

// Stars rates a final score from 1 to 3.
func Stars(score int) int {
	switch {
	case score > TwoStarMax:
		return 3
	case score > OneStarMax:
		return 2
	default:
		return 1
	}
}
