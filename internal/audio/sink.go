package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"snake/internal/domain"
)

const sampleRate = beep.SampleRate(44100)

// Sink plays a short cue for every game notification. It stays silent when
// the audio device cannot be opened.
type Sink struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	logger  zerolog.Logger
}

func NewSink(logger zerolog.Logger) *Sink {
	return &Sink{
		mixer:  &beep.Mixer{},
		logger: logger.With().Str("component", "audio").Logger(),
	}
}

func (s *Sink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		s.logger.Warn().Err(err).Msg("audio disabled")
		return err
	}
	speaker.Play(s.mixer)
	s.enabled = true
	return nil
}

func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return
	}
	speaker.Clear()
	s.mixer.Clear()
	s.enabled = false
}

func (s *Sink) NotifyScore(score int) {
	if score == 0 {
		return
	}
	s.play(newTone(sampleRate, 440, 880, 120*time.Millisecond, 0.2))
}

func (s *Sink) NotifyPeriod(int) {
	s.play(newTone(sampleRate, 1200, 1200, 30*time.Millisecond, 0.1))
}

func (s *Sink) NotifyGameOver(cause domain.Cause) {
	if cause.Win() {
		s.play(newTone(sampleRate, 523, 1046, 600*time.Millisecond, 0.25))
		return
	}
	s.play(newTone(sampleRate, 330, 110, 500*time.Millisecond, 0.25))
}

func (s *Sink) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}
