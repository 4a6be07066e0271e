package engine

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/lanedash/model"
)

// AudioPlayer plays cues and the background track. Calls must not block the
// frame.
type AudioPlayer interface {
	Play(cue model.Cue)
	StartMusic()
}

// ScoreStore persists the score between runs. LoadScore returns 0 and no
// error when nothing was stored yet.
type ScoreStore interface {
	LoadScore() (int, error)
	SaveScore(score int) error
}

type Clock interface {
	Now() time.Time
}

// Rand is the subset of *rand.Rand the world draws from.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type Options struct {
	Width, Height float64
	Audio         AudioPlayer
	Store         ScoreStore
	Clock         Clock
	Rand          Rand
	// DebugBoxes adds collision boxes to the draw list.
	DebugBoxes bool
	Logger     *log.Logger
}

// World owns every piece of mutable game state. It is driven by one
// goroutine: the host calls Tick once per frame and forwards input between
// ticks.
type World struct {
	ID    string
	State model.State

	Width, Height float64

	Vehicle   model.Vehicle
	Obstacles []model.Obstacle
	Coins     []model.Coin
	Particles []model.Particle

	Score        int
	ScrollOffset float64

	soundsEnabled bool
	summary       *model.Summary

	obstacleSpawner spawner
	coinSpawner     spawner

	audio      AudioPlayer
	store      ScoreStore
	clock      Clock
	rnd        Rand
	debugBoxes bool
	log        *log.Entry
}

// Frame is the result of one Tick.
type Frame struct {
	Draw []DrawCmd
	// Continue is false once the run is over; the host stops ticking.
	Continue bool
	// Over is set on frames produced after the game ended.
	Over *model.Summary
}

type nopAudio struct{}

func (nopAudio) Play(model.Cue) {}
func (nopAudio) StartMusic()    {}

type nopStore struct{}

func (nopStore) LoadScore() (int, error) { return 0, nil }
func (nopStore) SaveScore(int) error     { return nil }
