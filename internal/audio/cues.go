package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

// voice is one synthesized layer of a cue.
type voice struct {
	freq   float64
	sweep  float64
	wave   Wave
	length time.Duration
	attack time.Duration
	gain   float64
	delay  time.Duration
}

// cueVoices describes every cue. Gains follow the relative loudness of the
// in-game effects: flight is softer than weapons, explosions are loudest.
var cueVoices = map[core.Cue][]voice{
	core.CueJump: {
		{freq: 180, sweep: 140, wave: WaveSaw, length: 120 * time.Millisecond, attack: 5 * time.Millisecond, gain: 0.35},
		{wave: WaveNoise, length: 90 * time.Millisecond, attack: 2 * time.Millisecond, gain: 0.2},
	},
	core.CuePlayerShot: {
		{freq: 1200, sweep: -700, wave: WaveSquare, length: 80 * time.Millisecond, attack: time.Millisecond, gain: 0.3},
	},
	core.CueEnemyShot: {
		{freq: 420, sweep: -220, wave: WaveSaw, length: 110 * time.Millisecond, attack: time.Millisecond, gain: 0.3},
	},
	core.CueDestroy: {
		{wave: WaveNoise, length: 260 * time.Millisecond, attack: 2 * time.Millisecond, gain: 0.45},
		{freq: 90, sweep: -50, wave: WaveSine, length: 260 * time.Millisecond, attack: 2 * time.Millisecond, gain: 0.5},
	},
	core.CuePickup: {
		{freq: 987.77, wave: WaveSquare, length: 70 * time.Millisecond, attack: time.Millisecond, gain: 0.25},
		{freq: 1318.51, wave: WaveSquare, length: 140 * time.Millisecond, attack: time.Millisecond, gain: 0.25, delay: 70 * time.Millisecond},
	},
	core.CueBossPhase: {
		{freq: 110, sweep: 330, wave: WaveSaw, length: 450 * time.Millisecond, attack: 40 * time.Millisecond, gain: 0.4},
	},
	core.CueBossDefeat: {
		{wave: WaveNoise, length: 700 * time.Millisecond, attack: 5 * time.Millisecond, gain: 0.5},
		{freq: 60, sweep: -30, wave: WaveSine, length: 700 * time.Millisecond, attack: 5 * time.Millisecond, gain: 0.6},
		{freq: 880, wave: WaveSine, length: 300 * time.Millisecond, attack: 10 * time.Millisecond, gain: 0.25, delay: 400 * time.Millisecond},
	},
	core.CueGameOver: {
		{freq: 440, sweep: -330, wave: WaveSquare, length: 600 * time.Millisecond, attack: 10 * time.Millisecond, gain: 0.3},
	},
}

// cueStreamer builds a finite streamer for cue, or nil for unknown cues.
// pitch scales both frequency and speed the way a sample played at another
// rate would.
func cueStreamer(cue core.Cue, pitch float64, volume float64, rate beep.SampleRate) beep.Streamer {
	voices, ok := cueVoices[cue]
	if !ok || volume <= 0 {
		return nil
	}

	layers := make([]beep.Streamer, 0, len(voices))
	for _, v := range voices {
		var s beep.Streamer = newTone(v.freq, v.sweep, v.length, v.wave, rate)
		s = newEnvelope(s, v.length, v.attack, rate)
		if v.delay > 0 {
			s = beep.Seq(beep.Silence(rate.N(v.delay)), s)
		}
		layers = append(layers, newVolume(s, v.gain))
	}

	var mixed beep.Streamer = beep.Mix(layers...)
	if pitch > 0 && pitch != 1 {
		mixed = beep.ResampleRatio(3, pitch, mixed)
	}
	return newVolume(mixed, volume)
}
