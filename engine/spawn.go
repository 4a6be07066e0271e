package engine

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/lanedash/model"
)

// spawner fires on a per-frame chance, but never twice within gap.
type spawner struct {
	chance float64
	gap    time.Duration
	last   time.Time
	fired  bool
}

func (s *spawner) try(now time.Time, roll float64) bool {
	if roll >= s.chance {
		return false
	}
	if s.fired && now.Sub(s.last) < s.gap {
		return false
	}
	s.last = now
	s.fired = true
	return true
}

func (w *World) spawn() {
	now := w.clock.Now()
	if w.obstacleSpawner.try(now, w.rnd.Float64()) {
		lane := model.Lane(w.rnd.Intn(2))
		w.Obstacles = append(w.Obstacles, model.Obstacle{
			Rect: model.Rect{
				X:      w.laneX(lane, VehicleWidth),
				Y:      -VehicleHeight,
				Width:  VehicleWidth,
				Height: VehicleHeight,
			},
			Lane: lane,
		})
		w.log.WithFields(log.Fields{"kind": "obstacle", "lane": lane.Name()}).Debug("spawned")
	}
	if w.coinSpawner.try(now, w.rnd.Float64()) {
		lane := model.Lane(w.rnd.Intn(2))
		w.Coins = append(w.Coins, model.Coin{
			Rect: model.Rect{
				X:      w.laneX(lane, CoinSize),
				Y:      -CoinSize,
				Width:  CoinSize,
				Height: CoinSize,
			},
			Lane: lane,
		})
		w.log.WithFields(log.Fields{"kind": "coin", "lane": lane.Name()}).Debug("spawned")
	}
}
