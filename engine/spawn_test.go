package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/lanedash/model"
)

func TestSpawnerGap(t *testing.T) {
	s := spawner{chance: .5, gap: 500 * time.Millisecond}
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, s.try(t0, .5), "roll at the chance does not fire")
	assert.True(t, s.try(t0, .1), "first spawn has no gap to respect")
	assert.False(t, s.try(t0.Add(499*time.Millisecond), 0))
	assert.True(t, s.try(t0.Add(500*time.Millisecond), 0))
	assert.False(t, s.try(t0.Add(900*time.Millisecond), 0), "gap counts from the last spawn")
}

func TestSpawnEveryFrameStillRespectsGaps(t *testing.T) {
	// every roll succeeds and everything goes to the right lane
	h := newHarness(testWidth, testHeight, &fakeRand{roll: 0, lane: 1})
	w := h.world

	for i := 0; i < 100; i++ {
		h.clock.Advance(16 * time.Millisecond)
		w.Tick()
	}

	// obstacles at frames 1, 33, 65, 97; coins at frames 1, 64
	require.Len(t, w.Obstacles, 4)
	require.Len(t, w.Coins, 2)
	for i := 1; i < len(w.Obstacles); i++ {
		assert.Equal(t, 32*Speed, w.Obstacles[i-1].Y-w.Obstacles[i].Y)
	}
	assert.Equal(t, 63*Speed, w.Coins[0].Y-w.Coins[1].Y)
	for _, o := range w.Obstacles {
		assert.Equal(t, model.LaneRight, o.Lane)
		assert.Equal(t, rightX, o.X)
	}
	assert.Equal(t, 285.0, w.Coins[0].X)
	assert.Equal(t, model.RUNNING, w.State)
}

func TestSpawnGapHoldsForRandomRolls(t *testing.T) {
	h := newHarness(testWidth, 1e9, rand.New(rand.NewSource(42)))
	w := h.world

	var obstacleTimes, coinTimes []time.Time
	for i := 0; i < 20000; i++ {
		h.clock.Advance(time.Millisecond)
		o, c := len(w.Obstacles), len(w.Coins)
		w.Tick()
		if len(w.Obstacles) > o {
			obstacleTimes = append(obstacleTimes, h.clock.Now())
		}
		if len(w.Coins) > c {
			coinTimes = append(coinTimes, h.clock.Now())
		}
	}

	require.NotEmpty(t, obstacleTimes)
	require.NotEmpty(t, coinTimes)
	for i := 1; i < len(obstacleTimes); i++ {
		assert.GreaterOrEqual(t, int64(obstacleTimes[i].Sub(obstacleTimes[i-1])), int64(ObstacleGap))
	}
	for i := 1; i < len(coinTimes); i++ {
		assert.GreaterOrEqual(t, int64(coinTimes[i].Sub(coinTimes[i-1])), int64(CoinGap))
	}
}

func TestSpawnPositions(t *testing.T) {
	h := newHarness(testWidth, testHeight, &fakeRand{roll: 0, lane: 0})
	w := h.world
	w.spawn()

	require.Len(t, w.Obstacles, 1)
	require.Len(t, w.Coins, 1)
	assert.Equal(t, model.Rect{X: leftX, Y: -VehicleHeight, Width: VehicleWidth, Height: VehicleHeight}, w.Obstacles[0].Rect)
	assert.Equal(t, model.Rect{X: 85, Y: -CoinSize, Width: CoinSize, Height: CoinSize}, w.Coins[0].Rect)
}
