// Package audio plays short cues for game events through gopxl/beep.
// Audio is optional: every method is safe to call when the speaker could
// not be initialized.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/glyph-snake/internal/core"
)

const (
	sampleRate = beep.SampleRate(48000)

	buzzFreq     = 110
	buzzDuration = 200 * time.Millisecond
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayFood plays the "food eaten" chime
func (sm *SoundManager) PlayFood() {
	chime, err := NewChime(sampleRate)
	if err != nil {
		return
	}
	sm.add(chime)
}

// PlayReset plays the short buzz for a hazard reset
func (sm *SoundManager) PlayReset() {
	sm.add(beep.Take(sampleRate.N(buzzDuration), NewBuzzGenerator(sampleRate, buzzFreq)))
}

// OnFrame plays the cues for a tick's events. A reset wins over food
// eaten in the same tick.
func (sm *SoundManager) OnFrame(f core.Frame) {
	switch {
	case f.Reset:
		sm.PlayReset()
	case f.Eaten > 0:
		sm.PlayFood()
	}
}

func (sm *SoundManager) add(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
