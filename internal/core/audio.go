package core

// Cue identifies a sound effect requested by the game.
// Playback is fire-and-forget: the game never waits on or checks a cue.
type Cue uint8

const (
	CueJump Cue = iota
	CuePlayerShot
	CueEnemyShot
	CueDestroy
	CuePickup
	CueBossPhase
	CueBossDefeat
	CueGameOver
	CueCount // Sentinel for counting cues
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CuePlayerShot:
		return "player_shot"
	case CueEnemyShot:
		return "enemy_shot"
	case CueDestroy:
		return "destroy"
	case CuePickup:
		return "pickup"
	case CueBossPhase:
		return "boss_phase"
	case CueBossDefeat:
		return "boss_defeat"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SoundPlayer plays cues. Implementations must not block the caller and
// swallow their own failures.
type SoundPlayer interface {
	// Play starts cue with its pitch randomly shifted by up to
	// ±pitchVariance (0.1 means ±10%).
	Play(cue Cue, pitchVariance float64)
}

// MuteSound is a SoundPlayer that plays nothing.
type MuteSound struct{}

// Play does nothing.
func (MuteSound) Play(Cue, float64) {}
