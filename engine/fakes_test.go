package engine

import (
	"time"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/zucenko/lanedash/model"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeRand returns the same roll every time and always picks lane.
type fakeRand struct {
	roll float64
	lane int
}

func (r *fakeRand) Float64() float64 { return r.roll }
func (r *fakeRand) Intn(n int) int   { return r.lane % n }

// never rolls under any spawn chance
func quietRand() *fakeRand { return &fakeRand{roll: .5} }

type fakeAudio struct {
	cues  []model.Cue
	music int
}

func (a *fakeAudio) Play(cue model.Cue) { a.cues = append(a.cues, cue) }
func (a *fakeAudio) StartMusic()        { a.music++ }

type memStore struct {
	score   int
	saved   []int
	loadErr error
	saveErr error
}

func (s *memStore) LoadScore() (int, error) {
	if s.loadErr != nil {
		return 0, s.loadErr
	}
	return s.score, nil
}

func (s *memStore) SaveScore(score int) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.score = score
	s.saved = append(s.saved, score)
	return nil
}

type harness struct {
	world *World
	clock *fakeClock
	audio *fakeAudio
	store *memStore
	hook  *logtest.Hook
}

func newHarness(width, height float64, rnd Rand) *harness {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	h := &harness{
		clock: newFakeClock(),
		audio: &fakeAudio{},
		store: &memStore{},
		hook:  hook,
	}
	h.world = NewWorld(Options{
		Width:  width,
		Height: height,
		Audio:  h.audio,
		Store:  h.store,
		Clock:  h.clock,
		Rand:   rnd,
		Logger: logger,
	})
	return h
}

func (h *harness) messages(msg string) int {
	n := 0
	for _, e := range h.hook.AllEntries() {
		if e.Message == msg {
			n++
		}
	}
	return n
}
