package audio

import (
	"time"

	"github.com/gopxl/beep"

	"cake-defense/internal/event"
)

const noteAttack = 10 * time.Millisecond

// Note is one tone of a cue. A zero Volume plays at the system volume.
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
	Volume   float64
	Delay    time.Duration
}

// Cue is a short sequence of possibly overlapping notes.
type Cue []Note

// Length is the time from the cue start to the end of its last note.
func (c Cue) Length() time.Duration {
	var end time.Duration
	for _, n := range c {
		end = max(end, n.Delay+n.Duration)
	}
	return end
}

// Cues maps every audible event to its sound.
var Cues = map[event.EventType]Cue{
	event.TowerPlaced: {
		{Freq: 440, Duration: 100 * time.Millisecond, Wave: WaveSquare},
		{Freq: 550, Duration: 100 * time.Millisecond, Wave: WaveSquare, Delay: 50 * time.Millisecond},
	},
	event.TowerUpgraded: {
		{Freq: 330, Duration: 150 * time.Millisecond, Wave: WaveSine},
		{Freq: 440, Duration: 150 * time.Millisecond, Wave: WaveSine, Delay: 75 * time.Millisecond},
		{Freq: 550, Duration: 150 * time.Millisecond, Wave: WaveSine, Delay: 150 * time.Millisecond},
	},
	event.TowerSold: {
		{Freq: 220, Duration: 200 * time.Millisecond, Wave: WaveSaw, Volume: 0.2},
		{Freq: 165, Duration: 200 * time.Millisecond, Wave: WaveSaw, Volume: 0.15, Delay: 100 * time.Millisecond},
	},
	event.TowerMoved: {
		{Freq: 800, Duration: 30 * time.Millisecond, Wave: WaveSquare, Volume: 0.1},
	},
	event.TowerFired: {
		{Freq: 800, Duration: 30 * time.Millisecond, Wave: WaveSquare, Volume: 0.05},
	},
	event.AntDied: {
		{Freq: 150, Duration: 100 * time.Millisecond, Wave: WaveSaw, Volume: 0.15},
	},
	event.MoneyEarned: {
		{Freq: 660, Duration: 100 * time.Millisecond, Wave: WaveSine, Volume: 0.2},
		{Freq: 880, Duration: 100 * time.Millisecond, Wave: WaveSine, Volume: 0.2, Delay: 50 * time.Millisecond},
	},
	event.WaveStarted: {
		{Freq: 220, Duration: 200 * time.Millisecond, Wave: WaveTriangle},
		{Freq: 330, Duration: 200 * time.Millisecond, Wave: WaveTriangle, Delay: 100 * time.Millisecond},
		{Freq: 440, Duration: 300 * time.Millisecond, Wave: WaveTriangle, Delay: 200 * time.Millisecond},
	},
	event.GameOver: {
		{Freq: 330, Duration: 300 * time.Millisecond, Wave: WaveSine},
		{Freq: 290, Duration: 300 * time.Millisecond, Wave: WaveSine, Delay: 150 * time.Millisecond},
		{Freq: 220, Duration: 500 * time.Millisecond, Wave: WaveSine, Delay: 300 * time.Millisecond},
	},
	event.GamePaused: {
		{Freq: 440, Duration: 100 * time.Millisecond, Wave: WaveSquare, Volume: 0.2},
	},
	event.GameResumed: {
		{Freq: 550, Duration: 100 * time.Millisecond, Wave: WaveSquare, Volume: 0.2},
	},
	event.AntReachedCake: {
		{Freq: 200, Duration: 200 * time.Millisecond, Wave: WaveTriangle, Volume: 0.2},
		{Freq: 180, Duration: 200 * time.Millisecond, Wave: WaveTriangle, Volume: 0.15, Delay: 100 * time.Millisecond},
	},
}

// Render builds a streamer for the cue. Notes with their own volume are
// scaled by master/defaultVolume so the whole table follows the slider.
func Render(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(c))
	for _, n := range c {
		vol := volume
		if n.Volume > 0 {
			vol = n.Volume * volume / DefaultVolume
		}
		tone := NewEnvelope(NewOscillator(n.Freq, n.Duration, n.Wave, rate), n.Duration, noteAttack, rate)
		voice := newVolume(tone, vol)
		if n.Delay > 0 {
			voice = beep.Seq(beep.Silence(rate.N(n.Delay)), voice)
		}
		voices = append(voices, voice)
	}
	return beep.Take(rate.N(c.Length()), beep.Mix(voices...))
}
