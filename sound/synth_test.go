package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/lanedash/engine"
	"github.com/zucenko/lanedash/model"
)

var (
	_ engine.AudioPlayer = Nop{}
	_ engine.AudioPlayer = (*Speaker)(nil)
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	total := 0
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			require.True(t, frame[0] >= -1 && frame[0] <= 1, "sample %f", frame[0])
			require.True(t, frame[1] >= -1 && frame[1] <= 1, "sample %f", frame[1])
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer did not end")
	return 0
}

func TestCuesAreShortAndBounded(t *testing.T) {
	for _, cue := range []model.Cue{model.CueSwitch, model.CueCoin, model.CueGameOver} {
		t.Run(cue.Name(), func(t *testing.T) {
			n := drain(t, Cue(cue))
			assert.Greater(t, n, 0)
			assert.LessOrEqual(t, n, SampleRate.N(time.Second))
		})
	}
}

func TestUnknownCueIsSilent(t *testing.T) {
	assert.Equal(t, 0, drain(t, Cue(model.Cue(99))))
}

func TestCueLengths(t *testing.T) {
	assert.Equal(t, SampleRate.N(80*time.Millisecond), drain(t, Cue(model.CueSwitch)))
	assert.Equal(t, SampleRate.N(70*time.Millisecond)+SampleRate.N(160*time.Millisecond), drain(t, Cue(model.CueCoin)))
}

func TestMusicIsFiniteAndLoops(t *testing.T) {
	bar := drain(t, Music())
	assert.Equal(t, 16*SampleRate.N(150*time.Millisecond), bar)

	loop := MusicLoop()
	buf := make([][2]float64, bar)
	for i := 0; i < 3; i++ {
		n, ok := loop.Stream(buf)
		require.True(t, ok)
		require.Equal(t, bar, n)
	}
}

type constant struct {
	v    float64
	left int
}

func (c *constant) Stream(samples [][2]float64) (int, bool) {
	if c.left == 0 {
		return 0, false
	}
	n := 0
	for i := range samples {
		if c.left == 0 {
			break
		}
		samples[i] = [2]float64{c.v, c.v}
		c.left--
		n++
	}
	return n, true
}

func (c *constant) Err() error { return nil }

func TestRender(t *testing.T) {
	pcm := Render(&constant{v: 1, left: 3})
	require.Len(t, pcm, 3*4)
	for i := 0; i < len(pcm); i += 2 {
		assert.Equal(t, []byte{0xff, 0x7f}, pcm[i:i+2])
	}

	pcm = Render(&constant{v: -2, left: 1})
	assert.Equal(t, []byte{0x01, 0x80, 0x01, 0x80}, pcm, "clipped to -MaxInt16")

	assert.Empty(t, Render(&constant{}))
}

func TestNopDoesNothing(t *testing.T) {
	var p engine.AudioPlayer = Nop{}
	p.StartMusic()
	p.Play(model.CueCoin)
}
