// Package config provides YAML-based tunables loading and difficulty
// management for the chase simulation.
package config

// ChaseConfig contains every tunable of the chase simulation.
// Distances are in play-field units, durations in seconds.
type ChaseConfig struct {
	Field        FieldConfig       `yaml:"field"`
	Player       PlayerConfig      `yaml:"player"`
	Dash         DashConfig        `yaml:"dash"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Threats      ThreatConfig      `yaml:"threats"`
	Pickups      PickupConfig      `yaml:"pickups"`
	Magnet       MagnetConfig      `yaml:"magnet"`
	Combo        ComboConfig       `yaml:"combo"`
	Economy      EconomyConfig     `yaml:"economy"`
	Difficulty   DifficultyConfig  `yaml:"difficulty"`
	MaxStep      float64           `yaml:"max_step"` // Upper bound on elapsed time per tick
}

// FieldConfig defines the play-field dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Size               float64 `yaml:"size"`
	Margin             float64 `yaml:"margin"` // Clamp inset from each field edge
	BaseSpeed          float64 `yaml:"base_speed"`
	SpeedPerLevel      float64 `yaml:"speed_per_level"`
	BaseLives          int     `yaml:"base_lives"`
	Invulnerability    float64 `yaml:"invulnerability"`
	ShieldInvulnerable float64 `yaml:"shield_invulnerability"`
	Knockback          float64 `yaml:"knockback"`
}

// DashConfig defines the dash burst.
type DashConfig struct {
	Cooldown   float64 `yaml:"cooldown"`
	Duration   float64 `yaml:"duration"`
	SpeedBoost float64 `yaml:"speed_boost"`
}

// CollectibleConfig defines reward spawning and value.
type CollectibleConfig struct {
	Inset         float64     `yaml:"inset"`       // Minimum distance from the top/left edge
	FarInset      float64     `yaml:"far_inset"`   // Minimum distance from the bottom/right edge
	Initial       int         `yaml:"initial"`     // Spawned at every run start
	MaxOnMap      int         `yaml:"max_on_map"`  // Population cap
	GoldenChance  float64     `yaml:"golden_chance"`
	PhaseRate     float64     `yaml:"phase_rate"` // Animation phase advance per second
	Spawn         SpawnTiming `yaml:"spawn"`
	Standard      RewardValue `yaml:"standard"`
	Golden        RewardValue `yaml:"golden"`
	GoldenWindow  float64     `yaml:"golden_window_bonus"` // Extra ignition time granted by golden pickups
	GoldenOverrun float64     `yaml:"golden_window_cap"`   // Max ignition beyond the combo window
}

// RewardValue defines the size and payout of a collectible variant.
type RewardValue struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Score  int     `yaml:"score"`
	Coins  int     `yaml:"coins"`
}

// SpawnTiming defines a spawn interval that shrinks with the difficulty ramp.
type SpawnTiming struct {
	Every     float64 `yaml:"every"`     // Interval at ramp 0
	Reduction float64 `yaml:"reduction"` // Interval reduction at ramp 1
	Min       float64 `yaml:"min"`       // Floor: spawn rate never exceeds 1/Min
	Max       float64 `yaml:"max"`
}

// ThreatConfig defines homing threats.
type ThreatConfig struct {
	Size      float64     `yaml:"size"`
	SpeedMin  float64     `yaml:"speed_min"`
	SpeedMax  float64     `yaml:"speed_max"`
	MaxOnMap  int         `yaml:"max_on_map"`
	Spawn     SpawnTiming `yaml:"spawn"`
	SpeedRamp float64     `yaml:"speed_ramp"` // Speed factor added at ramp 1
}

// PickupConfig defines power-up drops.
type PickupConfig struct {
	Size       float64 `yaml:"size"`
	Inset      float64 `yaml:"inset"`
	FarInset   float64 `yaml:"far_inset"`
	DropChance float64 `yaml:"drop_chance"`
	Cooldown   float64 `yaml:"cooldown"`
	MagnetBias float64 `yaml:"magnet_bias"` // Probability a drop is a magnet rather than a shield
	MaxOnMap   int     `yaml:"max_on_map"`
	ComboBump  float64 `yaml:"combo_bump"`
	ShieldBump float64 `yaml:"shield_bump"` // Granted when a shield absorbs a hit
}

// MagnetConfig defines the attraction field.
type MagnetConfig struct {
	Duration         float64 `yaml:"duration"`
	DurationPerLevel float64 `yaml:"duration_per_level"`
	Radius           float64 `yaml:"radius"`
	Pull             float64 `yaml:"pull"`
	PullPerLevel     float64 `yaml:"pull_per_level"` // Fractional pull increase per level
	Margin           float64 `yaml:"margin"`         // Clamp inset for attracted collectibles
}

// ComboConfig defines the multiplier state machine.
type ComboConfig struct {
	Window      float64 `yaml:"window"`
	MaxMult     float64 `yaml:"max_multiplier"`
	PerPickup   float64 `yaml:"per_pickup"`
	DecayPerSec float64 `yaml:"decay_per_sec"`
	HitPenalty  float64 `yaml:"hit_penalty"`
}

// EconomyConfig defines the upgrade cost curve.
type EconomyConfig struct {
	BaseCosts    map[string]int `yaml:"base_costs"`
	FallbackCost int            `yaml:"fallback_cost"`
	GrowthRate   float64        `yaml:"growth_rate"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "time", "score", or "none"
	MaxAt float64 `yaml:"max_at"` // Seconds (or score) at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
