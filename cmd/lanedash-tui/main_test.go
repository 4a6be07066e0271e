package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/lanedash/config"
	"github.com/zucenko/lanedash/engine"
	"github.com/zucenko/lanedash/model"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)

	g := &Game{screen: screen, cfg: &config.Config{}, width: 40, height: 20}
	g.restart()
	return g
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func mouse(btn tcell.ButtonMask, x int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, 5, btn, tcell.ModNone)
}

func TestSpaceUnlocksThenSwitches(t *testing.T) {
	g := newTestGame(t)
	require.False(t, g.world.SoundsEnabled())

	assert.True(t, g.handleInput(key(' ')))
	assert.True(t, g.world.SoundsEnabled())
	assert.Equal(t, model.LaneRight, g.world.Vehicle.Lane)

	assert.True(t, g.handleInput(key(' ')))
	assert.Equal(t, model.LaneLeft, g.world.Vehicle.Lane)
}

func TestMouseTriggersOnPressOnly(t *testing.T) {
	g := newTestGame(t)

	g.handleInput(mouse(tcell.Button1, 10))
	assert.Equal(t, model.LaneRight, g.world.Vehicle.Lane)

	// dragging with the button held and releasing it do not trigger again
	g.handleInput(mouse(tcell.Button1, 12))
	g.handleInput(mouse(tcell.Button1, 14))
	g.handleInput(mouse(tcell.ButtonNone, 14))
	assert.Equal(t, model.LaneRight, g.world.Vehicle.Lane)

	g.handleInput(mouse(tcell.Button1, 14))
	assert.Equal(t, model.LaneLeft, g.world.Vehicle.Lane)
}

func TestEnterOnlyRestartsAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	first := g.world

	g.handleInput(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.Same(t, first, g.world, "enter does nothing while playing")

	g.over = &model.Summary{Score: 120, Stars: 1}
	assert.True(t, g.handleInput(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.NotSame(t, first, g.world)
	assert.Nil(t, g.over)
}

func TestSpaceRestartsAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	g.handleInput(key(' '))
	first := g.world

	g.over = &model.Summary{Score: 120, Stars: 1}
	assert.True(t, g.handleInput(key(' ')))
	assert.NotSame(t, first, g.world)
	assert.Nil(t, g.over)
	assert.Equal(t, model.LaneLeft, g.world.Vehicle.Lane, "the restarting press does not also switch lanes")
	assert.False(t, g.world.SoundsEnabled())
}

func TestQuitKeys(t *testing.T) {
	for name, ev := range map[string]*tcell.EventKey{
		"q":      key('q'),
		"Q":      key('Q'),
		"escape": tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		"ctrl-c": tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		t.Run(name, func(t *testing.T) {
			g := newTestGame(t)
			assert.False(t, g.handleInput(ev))
		})
	}

	g := newTestGame(t)
	g.over = &model.Summary{}
	assert.False(t, g.handleInput(key('q')), "quit works on the game-over screen too")
}

func TestStepStopsTickingAfterHandOff(t *testing.T) {
	g := newTestGame(t)
	v := g.world.Vehicle.Rect
	g.world.Obstacles = []model.Obstacle{{Rect: v}}

	g.step()
	assert.Nil(t, g.over, "the crash frame completes")
	assert.Equal(t, model.GAME_OVER, g.world.State)

	g.step()
	require.NotNil(t, g.over)
	assert.Equal(t, model.Summary{Score: 0, Stars: 1}, *g.over)

	y := g.world.Obstacles[0].Y
	g.step()
	assert.Equal(t, y, g.world.Obstacles[0].Y)
}

func TestDrawScore(t *testing.T) {
	g := newTestGame(t)
	g.frame = engine.Frame{Draw: []engine.DrawCmd{
		{Kind: engine.DrawClear},
		{Kind: engine.DrawScore, Value: 42},
	}}
	g.draw()

	var got []rune
	for x := 1; x < 10; x++ {
		r, _, _, _ := g.screen.GetContent(x, 0)
		got = append(got, r)
	}
	assert.Equal(t, "Score: 42", string(got))
}

// floodScreen always has another event ready.
type floodScreen struct {
	tcell.Screen
}

func (floodScreen) PollEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
}

type closedScreen struct {
	tcell.Screen
}

func (closedScreen) PollEvent() tcell.Event { return nil }

func drained(t *testing.T, events <-chan tcell.Event) int {
	t.Helper()
	n := 0
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return n
			}
			n++
		case <-timeout:
			t.Fatal("event pump did not stop")
		}
	}
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	g := &Game{screen: floodScreen{}}
	done := make(chan struct{})
	events := g.pollEvents(done)

	// let the buffer fill so the pump blocks on send
	assert.Eventually(t, func() bool { return len(events) == cap(events) }, time.Second, time.Millisecond)
	close(done)
	assert.Greater(t, drained(t, events), 0)
}

func TestPollEventsStopsWhenScreenCloses(t *testing.T) {
	g := &Game{screen: closedScreen{}}
	done := make(chan struct{})
	defer close(done)
	assert.Zero(t, drained(t, g.pollEvents(done)))
}
