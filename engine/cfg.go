package engine

import "time"

// Sizes are in play-area pixels.
const (
	VehicleWidth  = 100.0
	VehicleHeight = 40.0
	// gap between the vehicle and the bottom edge
	VehicleMargin = 30.0
	// the vehicle sprite is drawn smaller than its hitbox
	VehicleSpriteScale = 1 / 1.5

	CoinSize = 30.0

	// downward movement per frame, shared by obstacles, coins and the centre line
	Speed = 5.0
)

const (
	ObstacleChance = 0.02
	ObstacleGap    = 500 * time.Millisecond
	CoinChance     = 0.01
	CoinGap        = 1000 * time.Millisecond
)

const (
	ObstacleBonus = 10
	CoinBonus     = 100
)

const (
	BurstSize          = 20
	ParticleLife       = 30
	ParticleDecay      = 0.03
	ParticleMinSpeed   = 1.0
	ParticleSpeedRange = 4.0
	ParticleMinSize    = 2.0
	ParticleSizeRange  = 5.0
)

// Centre line dash pattern.
const (
	LineDash  = 20.0
	LineGap   = 30.0
	LineWidth = 5.0
)

// Star rating thresholds, inclusive upper bounds.
const (
	OneStarMax = 500
	TwoStarMax = 1500
)
