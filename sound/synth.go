// Package sound synthesizes the game's cues and background track.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/zucenko/lanedash/model"
)

const SampleRate = beep.SampleRate(44100)

// MusicVolume is the background track level relative to the cues.
const MusicVolume = 0.5

var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     WaveType
}

func newOscillator(freq float64, d time.Duration, wave WaveType) beep.Streamer {
	return &oscillator{freq: freq, duration: SampleRate.N(d), wave: wave}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < .5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (o.phase - .5)
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over its last release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   SampleRate.N(attack),
		release:  SampleRate.N(release),
		total:    SampleRate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type note struct {
	freq float64
	d    time.Duration
}

func tune(wave WaveType, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newEnvelope(newOscillator(n.freq, n.d, wave), n.d, 5*time.Millisecond, n.d/2))
	}
	return beep.Seq(parts...)
}

// Cue returns a fresh, finite streamer for cue. Unknown cues are silent.
func Cue(cue model.Cue) beep.Streamer {
	switch cue {
	case model.CueSwitch:
		return volume(tune(WaveSine, note{660, 80 * time.Millisecond}), .6)
	case model.CueCoin:
		return volume(tune(WaveSquare,
			note{987.77, 70 * time.Millisecond},
			note{1318.51, 160 * time.Millisecond}), .3)
	case model.CueGameOver:
		return volume(tune(WaveSaw,
			note{392, 150 * time.Millisecond},
			note{329.63, 150 * time.Millisecond},
			note{261.63, 400 * time.Millisecond}), .4)
	default:
		return beep.Silence(0)
	}
}

// Music is one bar of the background track. It is finite; MusicLoop repeats it.
func Music() beep.Streamer {
	const step = 150 * time.Millisecond
	return volume(tune(WaveSquare,
		note{261.63, step}, note{329.63, step}, note{392, step}, note{523.25, step},
		note{392, step}, note{329.63, step}, note{293.66, step}, note{349.23, step},
		note{440, step}, note{587.33, step}, note{440, step}, note{349.23, step},
		note{246.94, step}, note{293.66, step}, note{392, step}, note{293.66, step},
	), .25)
}

func MusicLoop() beep.Streamer {
	buf := beep.NewBuffer(Format)
	buf.Append(Music())
	return beep.Loop(-1, buf.Streamer(0, buf.Len()))
}

// Render converts a finite streamer to signed 16-bit little-endian stereo
// PCM at SampleRate.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				i := int16(v * math.MaxInt16)
				out = append(out, byte(i), byte(i>>8))
			}
		}
		if !ok {
			return out
		}
	}
}
