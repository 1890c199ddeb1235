// Package config provides YAML-based tuning for the jetpack game: world size,
// physics, spawn schedules, power-up durations, weapons, bosses and scoring.
package config

// JetpackConfig contains every tunable constant of a run.
// All rates are expressed per reference frame (1000/60 ms) and all
// durations and intervals in milliseconds.
type JetpackConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Speed      SpeedConfig      `yaml:"speed"`
	Spawning   SpawningConfig   `yaml:"spawning"`
	Powerups   PowerupConfig    `yaml:"powerups"`
	Weapons    WeaponConfig     `yaml:"weapons"`
	Bosses     BossConfig       `yaml:"bosses"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Scoreboard ScoreboardConfig `yaml:"scoreboard"`
}

// WorldConfig defines the logical playfield in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"`
}

// GroundY returns the y coordinate of the ground surface.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundOffset
}

// PhysicsConfig defines jetpack flight physics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	Lift         float64 `yaml:"lift"`
	MaxFuel      float64 `yaml:"max_fuel"`
	FuelBurn     float64 `yaml:"fuel_burn"`
	FuelRecharge float64 `yaml:"fuel_recharge"`
	CeilingDamp  float64 `yaml:"ceiling_damp"` // vy multiplier on hitting the top edge
}

// PlayerConfig defines the pilot's body.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartHover   float64 `yaml:"start_hover"` // height above the ground at spawn
	MaxShields   int     `yaml:"max_shields"`
	JetEmitEvery float64 `yaml:"jet_emit_every_ms"`
}

// SpeedConfig defines world scroll speed progression.
type SpeedConfig struct {
	Initial        float64 `yaml:"initial"`
	Max            float64 `yaml:"max"`
	Increment      float64 `yaml:"increment"`
	BurstFactor    float64 `yaml:"burst_factor"`
	BossDefeatBump float64 `yaml:"boss_defeat_bump"`
}

// IntervalConfig defines one adaptive spawn schedule.
type IntervalConfig struct {
	Initial float64 `yaml:"initial"`
	Min     float64 `yaml:"min"`
	Decay   float64 `yaml:"decay"`
}

// SpawningConfig defines the spawn schedules and the boss cadence.
type SpawningConfig struct {
	Obstacle       IntervalConfig `yaml:"obstacle"`
	Enemy          IntervalConfig `yaml:"enemy"`
	Powerup        IntervalConfig `yaml:"powerup"`
	BossPowerup    IntervalConfig `yaml:"boss_powerup"`
	BossIntervalMs float64        `yaml:"boss_interval_ms"`
}

// PowerupConfig defines timed effect durations and pickup behavior.
type PowerupConfig struct {
	WeaponMs      float64 `yaml:"weapon_ms"`
	SpreadMs      float64 `yaml:"spread_ms"`
	RapidMs       float64 `yaml:"rapid_ms"`
	MultiplierMs  float64 `yaml:"multiplier_ms"`
	MagnetMs      float64 `yaml:"magnet_ms"`
	BurstMs       float64 `yaml:"burst_ms"`
	MagnetRadius  float64 `yaml:"magnet_radius"`
	CoinSize      float64 `yaml:"coin_size"`
	Size          float64 `yaml:"size"`
	BobAmplitude  float64 `yaml:"bob_amplitude"`
	LootCoinP     float64 `yaml:"loot_coin_chance"`
	LootFuelP     float64 `yaml:"loot_fuel_chance"`
	DriftFraction float64 `yaml:"drift_fraction"`
}

// WeaponConfig defines player and enemy fire.
type WeaponConfig struct {
	CooldownMs       float64 `yaml:"cooldown_ms"`
	RapidFactor      float64 `yaml:"rapid_factor"`
	SpreadAngle      float64 `yaml:"spread_angle"`
	ShotSpeed        float64 `yaml:"shot_speed"`
	ShotSpeedScale   float64 `yaml:"shot_speed_scale"`
	ShotDamage       float64 `yaml:"shot_damage"`
	AutoFireMs       float64 `yaml:"auto_fire_ms"`
	AutoFireSpreadMs float64 `yaml:"auto_fire_spread_ms"`
	EnemyShotSpeed   float64 `yaml:"enemy_shot_speed"`
	EnemyShotScale   float64 `yaml:"enemy_shot_scale"`
	EnemyShotRadius  float64 `yaml:"enemy_shot_radius"`
}

// BossConfig defines boss scaling and selection.
type BossConfig struct {
	BaseHealth       float64 `yaml:"base_health"`
	HealthPerCycle   float64 `yaml:"health_per_cycle"`
	EntryPerCycle    float64 `yaml:"entry_per_cycle"`
	Gravity          float64 `yaml:"gravity"`
	FirstShotDelayMs float64 `yaml:"first_shot_delay_ms"`
	TankWeight       float64 `yaml:"tank_weight"`
	ShipWeight       float64 `yaml:"ship_weight"`
	FinalWeight      float64 `yaml:"final_weight"`
}

// ScoringConfig defines score contributions.
type ScoringConfig struct {
	CoinValue      int     `yaml:"coin_value"`
	EnemyKillScale float64 `yaml:"enemy_kill_scale"`
	BossKillScale  float64 `yaml:"boss_kill_scale"`
}

// ScoreboardConfig defines the leaderboard and pilot defaults.
type ScoreboardConfig struct {
	TopN        int    `yaml:"top_n"`
	DefaultName string `yaml:"default_name"`
	DateLayout  string `yaml:"date_layout"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
