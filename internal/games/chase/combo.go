package chase

import (
	"math"

	"github.com/vovakirdan/catfish/internal/config"
	"github.com/vovakirdan/catfish/internal/core"
)

// Combo is the score multiplier state machine.
//
// While Timer > 0 the multiplier holds; once it hits 0 the multiplier decays
// linearly toward 1. Mult always stays in [1, MaxMult].
type Combo struct {
	cfg config.ComboConfig

	Mult  float64
	Timer float64 // Remaining ignition window in seconds
}

// NewCombo creates a combo at multiplier 1 with no ignition.
func NewCombo(cfg config.ComboConfig) Combo {
	return Combo{cfg: cfg, Mult: 1}
}

// Reset drops the combo back to its initial state.
func (c *Combo) Reset() {
	c.Mult = 1
	c.Timer = 0
}

// Tick runs the hold/decay update. It must run before the rewards and hits
// of the same step so a pickup can re-ignite a multiplier about to decay.
func (c *Combo) Tick(dt float64) {
	c.Timer = math.Max(0, c.Timer-dt)
	if c.Timer <= 0 {
		c.Mult = c.clamp(c.Mult - c.cfg.DecayPerSec*dt)
	}
}

// Reward re-ignites the full window and raises the multiplier by amount.
func (c *Combo) Reward(amount float64) {
	c.Timer = c.cfg.Window
	c.Mult = c.clamp(c.Mult + amount)
}

// Extend adds bonus ignition time, never beyond the window plus overrun.
func (c *Combo) Extend(bonus, overrun float64) {
	c.Timer = math.Min(c.cfg.Window+overrun, c.Timer+bonus)
}

// Hit applies the damage penalty and forces the decay phase.
func (c *Combo) Hit() {
	c.Mult = math.Max(1, c.Mult-c.cfg.HitPenalty)
	c.Timer = 0
}

// ScoreFor converts a base reward into scored points at the current multiplier.
func (c *Combo) ScoreFor(base int) int {
	return int(math.Round(float64(base) * c.Mult))
}

// Fill returns the remaining ignition as a fraction of the standard window.
func (c *Combo) Fill() float64 {
	if c.cfg.Window <= 0 {
		return 0
	}
	return core.ClampF(c.Timer/c.cfg.Window, 0, 1)
}

// Holding reports whether the multiplier is frozen.
func (c *Combo) Holding() bool {
	return c.Timer > 0
}

func (c *Combo) clamp(v float64) float64 {
	return core.ClampF(v, 1, c.cfg.MaxMult)
}
