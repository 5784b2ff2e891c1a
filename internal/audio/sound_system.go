// internal/audio/sound_system.go
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"cake-defense/internal/event"
	"cake-defense/internal/utils"
)

const (
	sampleRate    = beep.SampleRate(44100)
	DefaultVolume = 0.3
)

// SoundSystem plays a synthesized cue for each game event. It is an event
// listener only and never touches the simulation.
type SoundSystem struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	muted       bool
	initialized bool
}

func NewSoundSystem() *SoundSystem {
	return &SoundSystem{
		mixer:  &beep.Mixer{},
		rate:   sampleRate,
		volume: DefaultVolume,
	}
}

// Initialize opens the audio device. On failure sound stays disabled and
// the game runs silent.
func (s *SoundSystem) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		log.Printf("SoundSystem: audio disabled: %v", err)
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Subscribe registers the system for every event that has a cue.
func (s *SoundSystem) Subscribe(d *event.Dispatcher) []event.Subscription {
	types := make([]event.EventType, 0, len(Cues))
	for _, t := range event.AllTypes {
		if _, ok := Cues[t]; ok {
			types = append(types, t)
		}
	}
	return d.SubscribeAll(s, types...)
}

func (s *SoundSystem) OnEvent(e event.Event) {
	cue, ok := Cues[e.Type]
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized || s.muted {
		return
	}
	streamer := Render(cue, s.rate, s.volume)
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// SetVolume sets the master volume, clamped to [0, 1].
func (s *SoundSystem) SetVolume(v float64) {
	s.mu.Lock()
	s.volume = utils.Clamp(v, 0, 1)
	s.mu.Unlock()
}

func (s *SoundSystem) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// ToggleMute flips mute and reports whether sound is now on.
func (s *SoundSystem) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	return !s.muted
}

func (s *SoundSystem) SetMuted(muted bool) {
	s.mu.Lock()
	s.muted = muted
	s.mu.Unlock()
}

// Close stops playback and releases the device.
func (s *SoundSystem) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}
