// Package config provides YAML-based tuning, player settings and difficulty
// tables for QuizJump.
package config

// Tuning contains every simulation constant. Defaults live in
// defaults/tuning.yaml and can be overridden by a user file.
type Tuning struct {
	World    WorldTuning   `yaml:"world"`
	Player   PlayerTuning  `yaml:"player"`
	Physics  PhysicsTuning `yaml:"physics"`
	Layout   LayoutTuning  `yaml:"layout"`
	Boss     BossTuning    `yaml:"boss"`
	Camera   CameraTuning  `yaml:"camera"`
	Scoring  ScoringTuning `yaml:"scoring"`
	Problems ProblemTuning `yaml:"problems"`
}

// WorldTuning defines the playfield in world units (pixels).
type WorldTuning struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	ViewHeight    float64 `yaml:"view_height"`
	GroundHeight  float64 `yaml:"ground_height"`
	FallMargin    float64 `yaml:"fall_margin"`     // Depth below Height that ends the run
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Seconds; longer frames are clamped
}

// PlayerTuning defines the player body and lives.
type PlayerTuning struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartHearts int     `yaml:"start_hearts"`
	MaxHearts   int     `yaml:"max_hearts"`
}

// PhysicsTuning defines integration and contact parameters.
type PhysicsTuning struct {
	Gravity          float64 `yaml:"gravity"`
	Friction         float64 `yaml:"friction"`
	Accel            float64 `yaml:"accel"`
	MaxSpeed         float64 `yaml:"max_speed"`
	LandingTolerance float64 `yaml:"landing_tolerance"` // Feet may sink this far below a top and still land
	LandingSlack     float64 `yaml:"landing_slack"`     // Feet may hover this far above a top and still land
	RestBand         float64 `yaml:"rest_band"`         // Distance from a top that counts as standing on it
}

// LayoutTuning defines answer row geometry.
type LayoutTuning struct {
	PlatformsPerRow int     `yaml:"platforms_per_row"`
	PlatformHeight  float64 `yaml:"platform_height"`
	PlatformGap     float64 `yaml:"platform_gap"`
	RowSpacing      float64 `yaml:"row_spacing"`
	PreBossSpacing  float64 `yaml:"pre_boss_spacing"`
}

// BossTuning defines the ball-drop arena.
type BossTuning struct {
	Every          int     `yaml:"every"` // Boss round after every N correct answers
	Answers        int     `yaml:"answers"`
	BallRadius     float64 `yaml:"ball_radius"`
	BonusRadius    float64 `yaml:"bonus_radius"`
	GateOffset     float64 `yaml:"gate_offset"` // Gate height above the ground
	GateJitter     float64 `yaml:"gate_jitter"`
	EdgeMargin     float64 `yaml:"edge_margin"`
	LeverWidth     float64 `yaml:"lever_width"`
	LeverHeight    float64 `yaml:"lever_height"`
	LeverInset     float64 `yaml:"lever_inset"` // Lever left edge distance from the right wall
	LeverBand      float64 `yaml:"lever_band"`
	PlayerStartX   float64 `yaml:"player_start_x"`
	Restitution    float64 `yaml:"restitution"`
	FloorFriction  float64 `yaml:"floor_friction"`
	PickupPadding  float64 `yaml:"pickup_padding"`
	ReleaseSpread  float64 `yaml:"release_spread"` // Horizontal impulse range for released balls
	ReleaseMinVY   float64 `yaml:"release_min_vy"`
	ReleaseRangeVY float64 `yaml:"release_range_vy"`
}

// CameraTuning defines vertical camera smoothing.
type CameraTuning struct {
	Lerp   float64 `yaml:"lerp"`
	Anchor float64 `yaml:"anchor"` // Fraction of the view height kept above the player
}

// ScoringTuning defines points, coins and drop rates.
type ScoringTuning struct {
	Base             int     `yaml:"base"`
	StreakBonus      int     `yaml:"streak_bonus"`
	BossBonus        int     `yaml:"boss_bonus"`
	BossCoins        int     `yaml:"boss_coins"`
	StreakCoinEvery  int     `yaml:"streak_coin_every"`
	StreakCoinValue  int     `yaml:"streak_coin_value"`
	ShieldChance     float64 `yaml:"shield_chance"`
	BossShieldChance float64 `yaml:"boss_shield_chance"`
}

// ProblemTuning defines the score-based operand ramps.
type ProblemTuning struct {
	Addition       RampConfig `yaml:"addition"`
	Subtraction    RampConfig `yaml:"subtraction"`
	Multiplication RampConfig `yaml:"multiplication"`
	CombinedFactor RampConfig `yaml:"combined_factor"`
}

// RampConfig grows an operand ceiling by one every Step points of score,
// starting Base above the tier minimum. Step <= 0 disables growth.
type RampConfig struct {
	Base int `yaml:"base"`
	Step int `yaml:"step"`
}

// Settings are the player-facing options. They are read once when a
// session starts.
type Settings struct {
	JumpHeight       float64    `yaml:"jump_height" toml:"jump_height"`
	SpeedSensitivity float64    `yaml:"speed_sensitivity" toml:"speed_sensitivity"`
	BossEnabled      bool       `yaml:"boss_enabled" toml:"boss_enabled"`
	PowerUpsEnabled  bool       `yaml:"power_ups_enabled" toml:"power_ups_enabled"`
	MathMode         MathMode   `yaml:"math_mode" toml:"math_mode"`
	Difficulty       Difficulty `yaml:"difficulty" toml:"difficulty"`
	ColorScheme      string     `yaml:"color_scheme" toml:"color_scheme"`
	SoundEnabled     bool       `yaml:"sound_enabled" toml:"sound_enabled"`
	FontSize         string     `yaml:"font_size" toml:"font_size"`
}
