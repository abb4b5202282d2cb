package config

import "math"

// DifficultyManager derives the difficulty ramp, a monotonic factor in [0, 1],
// from elapsed run time (or score) and scales spawn cadence and threat speed by it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current ramp (0.0 to 1.0) for a run that has scored
// score points over elapsed seconds.
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Interval returns the spawn interval for the given ramp level. The interval
// shrinks linearly with the ramp and is clamped to [t.Min, t.Max].
func Interval(t SpawnTiming, level float64) float64 {
	return clampF(t.Every-level*t.Reduction, t.Min, t.Max)
}

// SpeedFactor returns the threat speed multiplier for the given ramp level.
func SpeedFactor(ramp, level float64) float64 {
	return 1.0 + ramp*level
}

// clampF restricts a float64 to [min, max]. NaN collapses to min.
func clampF(val, min, max float64) float64 {
	if math.IsNaN(val) {
		return min
	}
	return math.Max(min, math.Min(max, val))
}
