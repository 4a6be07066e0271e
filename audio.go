package main

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/audio"
	"github.com/hajimehoshi/ebiten/audio/mp3"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/lanedash/model"
	"github.com/zucenko/lanedash/sound"
)

var cueFiles = map[model.Cue]string{
	model.CueSwitch:   "tone1.mp3",
	model.CueCoin:     "powerUp8.mp3",
	model.CueGameOver: "powerUp11.mp3",
}

const musicFile = "8-bit-loop.mp3"

// Audio plays cues and the music loop through ebiten's audio context. Files
// that cannot be decoded are replaced by the synthesized versions.
type Audio struct {
	ctx   *audio.Context
	cues  map[model.Cue]*audio.Player
	music *audio.Player
	dir   string
}

func NewAudio(dir string) (*Audio, error) {
	ctx, err := audio.NewContext(int(sound.SampleRate))
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	a := &Audio{ctx: ctx, cues: map[model.Cue]*audio.Player{}, dir: filepath.Join(dir, "audio")}
	for cue, file := range cueFiles {
		p, err := a.load(file, false)
		if err != nil {
			log.WithError(err).WithField("cue", cue.Name()).Warn("Using synthesized cue")
			p, err = audio.NewPlayerFromBytes(ctx, sound.Render(sound.Cue(cue)))
			if err != nil {
				return nil, fmt.Errorf("cue %s: %w", cue.Name(), err)
			}
		}
		a.cues[cue] = p
	}
	return a, nil
}

func (a *Audio) load(file string, loop bool) (*audio.Player, error) {
	f, err := ebitenutil.OpenFile(filepath.Join(a.dir, file))
	if err != nil {
		return nil, err
	}
	s, err := mp3.Decode(a.ctx, f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	if loop {
		return audio.NewPlayer(a.ctx, audio.NewInfiniteLoop(s, s.Length()))
	}
	return audio.NewPlayer(a.ctx, s)
}

func (a *Audio) Play(cue model.Cue) {
	p, ok := a.cues[cue]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.WithError(err).Warn("Rewind failed")
		return
	}
	if err := p.Play(); err != nil {
		log.WithError(err).WithField("cue", cue.Name()).Warn("Play failed")
	}
}

// StartMusic starts the background loop; later calls do nothing.
func (a *Audio) StartMusic() {
	if a.music != nil {
		return
	}
	p, err := a.load(musicFile, true)
	if err != nil {
		log.WithError(err).Warn("Using synthesized music")
		pcm := sound.Render(sound.Music())
		p, err = audio.NewPlayer(a.ctx, audio.NewInfiniteLoop(audio.BytesReadSeekCloser(pcm), int64(len(pcm))))
		if err != nil {
			log.WithError(err).Error("Music unavailable")
			return
		}
	}
	p.SetVolume(sound.MusicVolume)
	if err := p.Play(); err != nil {
		log.WithError(err).Warn("Music failed")
		return
	}
	a.music = p
}
