package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// Upgrade keys recognized by the default economy.
const (
	UpgradeSpeed  = "speed"
	UpgradeLives  = "lives"
	UpgradeMagnet = "magnet"
)

// DefaultChaseConfig returns the built-in tunables.
// It mirrors defaults/chase.yaml and is used when the embedded file cannot be parsed.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Field: FieldConfig{
			Width:  960,
			Height: 540,
		},
		Player: PlayerConfig{
			Size:               44,
			Margin:             10,
			BaseSpeed:          310,
			SpeedPerLevel:      25,
			BaseLives:          3,
			Invulnerability:    1.0,
			ShieldInvulnerable: 0.55,
			Knockback:          50,
		},
		Dash: DashConfig{
			Cooldown:   1.2,
			Duration:   0.12,
			SpeedBoost: 3.2,
		},
		Collectibles: CollectibleConfig{
			Inset:        24,
			FarInset:     50,
			Initial:      2,
			MaxOnMap:     10,
			GoldenChance: 0.12,
			PhaseRate:    3.2,
			Spawn: SpawnTiming{
				Every:     0.85,
				Reduction: 0.18,
				Min:       0.55,
				Max:       0.95,
			},
			Standard:      RewardValue{Width: 26, Height: 18, Score: 1, Coins: 1},
			Golden:        RewardValue{Width: 32, Height: 22, Score: 6, Coins: 5},
			GoldenWindow:  0.8,
			GoldenOverrun: 0.6,
		},
		Threats: ThreatConfig{
			Size:     44,
			SpeedMin: 98,
			SpeedMax: 155,
			MaxOnMap: 7,
			Spawn: SpawnTiming{
				Every:     2.2,
				Reduction: 0.45,
				Min:       1.35,
				Max:       2.3,
			},
			SpeedRamp: 0.35,
		},
		Pickups: PickupConfig{
			Size:       28,
			Inset:      16,
			FarInset:   30,
			DropChance: 0.14,
			Cooldown:   0.6,
			MagnetBias: 0.55,
			MaxOnMap:   4,
			ComboBump:  0.25,
			ShieldBump: 0.15,
		},
		Magnet: MagnetConfig{
			Duration:         3.0,
			DurationPerLevel: 0.85,
			Radius:           220,
			Pull:             175,
			PullPerLevel:     0.08,
			Margin:           12,
		},
		Combo: ComboConfig{
			Window:      2.6,
			MaxMult:     5.0,
			PerPickup:   0.32,
			DecayPerSec: 0.55,
			HitPenalty:  0.8,
		},
		Economy: EconomyConfig{
			BaseCosts: map[string]int{
				UpgradeSpeed:  30,
				UpgradeLives:  45,
				UpgradeMagnet: 35,
			},
			FallbackCost: 40,
			GrowthRate:   0.65,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 120,
			},
		},
		MaxStep: 1.0 / 30.0,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultChaseYAML
}
