package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/lanedash/model"
)

// Nop plays nothing. Used when sound is muted or no device is available.
type Nop struct{}

func (Nop) Play(model.Cue) {}
func (Nop) StartMusic()    {}

// Speaker plays synthesized sound through the default output device.
type Speaker struct {
	music *beep.Ctrl
}

func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{}, nil
}

func (s *Speaker) Play(cue model.Cue) {
	log.WithField("cue", cue.Name()).Debug("play")
	speaker.Play(Cue(cue))
}

func (s *Speaker) StartMusic() {
	if s.music != nil {
		return
	}
	s.music = &beep.Ctrl{Streamer: volume(MusicLoop(), MusicVolume)}
	speaker.Play(s.music)
}

func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}
