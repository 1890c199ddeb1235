package config

import (
	_ "embed"
)

//go:embed defaults/jetpack.yaml
var defaultJetpackYAML []byte

// DefaultJetpackConfig returns the built-in tuning used when no YAML is found.
func DefaultJetpackConfig() JetpackConfig {
	return JetpackConfig{
		World: WorldConfig{
			Width:        800,
			Height:       400,
			GroundOffset: 50,
		},
		Physics: PhysicsConfig{
			Gravity:      0.55,
			Lift:         -8.925,
			MaxFuel:      150,
			FuelBurn:     1.0,
			FuelRecharge: 0.4,
			CeilingDamp:  -0.2,
		},
		Player: PlayerConfig{
			X:            100,
			Width:        35,
			Height:       45,
			StartHover:   100,
			MaxShields:   3,
			JetEmitEvery: 50,
		},
		Speed: SpeedConfig{
			Initial:        3,
			Max:            20,
			Increment:      0.0025,
			BurstFactor:    1.5,
			BossDefeatBump: 1.5,
		},
		Spawning: SpawningConfig{
			Obstacle:       IntervalConfig{Initial: 1800, Min: 450, Decay: 0.98},
			Enemy:          IntervalConfig{Initial: 8000, Min: 1500, Decay: 0.97},
			Powerup:        IntervalConfig{Initial: 3200, Min: 1800, Decay: 0.975},
			BossPowerup:    IntervalConfig{Initial: 6000, Min: 3000, Decay: 0.975},
			BossIntervalMs: 60000,
		},
		Powerups: PowerupConfig{
			WeaponMs:      12000,
			SpreadMs:      10000,
			RapidMs:       7000,
			MultiplierMs:  10000,
			MagnetMs:      10000,
			BurstMs:       6000,
			MagnetRadius:  200,
			CoinSize:      20,
			Size:          30,
			BobAmplitude:  8,
			LootCoinP:     0.5,
			LootFuelP:     0.15,
			DriftFraction: 0.85,
		},
		Weapons: WeaponConfig{
			CooldownMs:       300,
			RapidFactor:      0.4,
			SpreadAngle:      0.2,
			ShotSpeed:        15,
			ShotSpeedScale:   1.2,
			ShotDamage:       10,
			AutoFireMs:       133,
			AutoFireSpreadMs: 200,
			EnemyShotSpeed:   2.5,
			EnemyShotScale:   0.55,
			EnemyShotRadius:  6,
		},
		Bosses: BossConfig{
			BaseHealth:       100,
			HealthPerCycle:   0.25,
			EntryPerCycle:    0.1,
			Gravity:          0.3,
			FirstShotDelayMs: 1500,
			TankWeight:       0.4,
			ShipWeight:       0.4,
			FinalWeight:      0.2,
		},
		Scoring: ScoringConfig{
			CoinValue:      10,
			EnemyKillScale: 20,
			BossKillScale:  25,
		},
		Scoreboard: ScoreboardConfig{
			TopN:        5,
			DefaultName: "Recruit",
			DateLayout:  "02/01/2006 15:04",
		},
	}
}
