package config

import (
	_ "embed"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the hardcoded tuning. It mirrors defaults/tuning.yaml
// and is used when the embedded file cannot be parsed.
func DefaultTuning() Tuning {
	return Tuning{
		World: WorldTuning{
			Width:         800,
			Height:        2000,
			ViewHeight:    600,
			GroundHeight:  32,
			FallMargin:    100,
			MaxFrameDelta: 0.1,
		},
		Player: PlayerTuning{
			Width:       36,
			Height:      44,
			StartHearts: 3,
			MaxHearts:   5,
		},
		Physics: PhysicsTuning{
			Gravity:          980,
			Friction:         0.87,
			Accel:            36,
			MaxSpeed:         400,
			LandingTolerance: 12,
			LandingSlack:     2,
			RestBand:         6,
		},
		Layout: LayoutTuning{
			PlatformsPerRow: 4,
			PlatformHeight:  40,
			PlatformGap:     10,
			RowSpacing:      130,
			PreBossSpacing:  90,
		},
		Boss: BossTuning{
			Every:          10,
			Answers:        6,
			BallRadius:     28,
			BonusRadius:    20,
			GateOffset:     280,
			GateJitter:     10,
			EdgeMargin:     60,
			LeverWidth:     100,
			LeverHeight:    22,
			LeverInset:     130,
			LeverBand:      6,
			PlayerStartX:   40,
			Restitution:    0.72,
			FloorFriction:  0.98,
			PickupPadding:  8,
			ReleaseSpread:  160,
			ReleaseMinVY:   30,
			ReleaseRangeVY: 60,
		},
		Camera: CameraTuning{
			Lerp:   0.1,
			Anchor: 0.4,
		},
		Scoring: ScoringTuning{
			Base:             10,
			StreakBonus:      2,
			BossBonus:        25,
			BossCoins:        10,
			StreakCoinEvery:  5,
			StreakCoinValue:  5,
			ShieldChance:     0.15,
			BossShieldChance: 0.5,
		},
		Problems: ProblemTuning{
			Addition:       RampConfig{Base: 11, Step: 30},
			Subtraction:    RampConfig{Base: 11, Step: 30},
			Multiplication: RampConfig{Base: 4, Step: 50},
			CombinedFactor: RampConfig{Base: 8},
		},
	}
}

// DefaultSettings returns the settings used when nothing is persisted.
func DefaultSettings() Settings {
	return Settings{
		JumpHeight:       600,
		SpeedSensitivity: 1.0,
		BossEnabled:      true,
		PowerUpsEnabled:  true,
		MathMode:         ModeAddition,
		Difficulty:       DifficultyEasy,
		ColorScheme:      "light",
		SoundEnabled:     true,
		FontSize:         "normal",
	}
}
