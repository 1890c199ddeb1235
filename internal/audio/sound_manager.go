package audio

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	// maxVoices bounds concurrent cues so rapid fire cannot pile up streams.
	maxVoices = 16
)

// SoundManager plays cues through the speaker. Until Initialize succeeds it
// behaves like core.MuteSound.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	volume      float64
	initialized bool
}

var _ core.SoundPlayer = (*SoundManager)(nil)

// NewSoundManager creates a sound manager with master volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rng:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)), //#nosec G115 -- seed only
		volume: min(max(volume, 0), 1),
	}
}

// Initialize opens the speaker. On failure the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play implements core.SoundPlayer.
func (sm *SoundManager) Play(cue core.Cue, pitchVariance float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := cueStreamer(cue, sm.pitch(pitchVariance), sm.volume, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	if sm.mixer.Len() < maxVoices {
		sm.mixer.Add(s)
	}
	speaker.Unlock()
}

// pitch draws a playback rate in [1-variance, 1+variance].
func (sm *SoundManager) pitch(variance float64) float64 {
	if variance <= 0 {
		return 1
	}
	variance = min(variance, 0.9)
	return 1 - variance + sm.rng.Float64()*2*variance
}

// Close stops all sounds.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
