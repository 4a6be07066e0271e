package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// seconds per Update at ebiten's default 60 ticks
const frameDelta = float32(1.0 / 60)

// Action is what happens while a tween runs and after it finishes.
type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

// next schedules t to start once the owning tween finishes.
func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	a.nexts = append(a.nexts, func(g *Game) {
		g.Tweens[t] = action
	})
	return action
}

func (g *Game) start(t *gween.Tween, onChange func(float32)) *Action {
	a := &Action{onChange: onChange}
	g.Tweens[t] = a
	return a
}

func (g *Game) updateTweens() {
	for t, a := range g.Tweens {
		curr, finished := t.Update(frameDelta)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}

// animateModal fades the panel in, then pops the earned stars one by one.
func (g *Game) animateModal(m *Modal) {
	fade := g.start(gween.New(0, 1, .35, ease.OutQuad), func(v float32) {
		m.alpha = float64(v)
	})
	last := fade
	for i := 0; i < m.summary.Stars; i++ {
		i := i
		last = last.next(gween.New(0, 1, .3, ease.OutBack))
		last.onChange = func(v float32) {
			m.starScale[i] = float64(v)
		}
	}
	last.addOnFinish(func() {
		m.ready = true
	})
}
