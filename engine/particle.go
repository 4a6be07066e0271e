package engine

import (
	"math"

	"github.com/zucenko/lanedash/model"
)

// Burst scatters BurstSize particles from (x, y) in random directions.
func (w *World) Burst(x, y float64) {
	for i := 0; i < BurstSize; i++ {
		angle := w.rnd.Float64() * math.Pi * 2
		speed := w.rnd.Float64()*ParticleSpeedRange + ParticleMinSpeed
		w.Particles = append(w.Particles, model.Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Size:    w.rnd.Float64()*ParticleSizeRange + ParticleMinSize,
			Opacity: 1,
			Life:    ParticleLife,
			Color:   model.ColorYellow,
		})
	}
}

func (w *World) updateParticles() {
	alive := w.Particles[:0]
	for _, p := range w.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.Opacity -= ParticleDecay
		p.Life--
		if !p.Alive() {
			continue
		}
		alive = append(alive, p)
	}
	w.Particles = alive
}
