package chase

import "github.com/vovakirdan/catfish/internal/config"

// SpawnController owns the spawn accumulators and the pickup-drop cooldown.
//
// An accumulator that reaches its interval always resets, whether or not the
// population cap lets the spawn through: caps throttle count, not cadence.
type SpawnController struct {
	cfg config.ChaseConfig

	CollectibleTimer float64
	ThreatTimer      float64
	DropCooldown     float64
}

// NewSpawnController creates a controller with zeroed timers.
func NewSpawnController(cfg config.ChaseConfig) *SpawnController {
	return &SpawnController{cfg: cfg}
}

// Reset zeroes every timer.
func (s *SpawnController) Reset() {
	s.CollectibleTimer = 0
	s.ThreatTimer = 0
	s.DropCooldown = 0
}

// Due describes which spawns an Advance call allows.
type Due struct {
	Collectible bool
	Threat      bool
}

// Advance moves both accumulators forward by dt at the given ramp level and
// reports which kinds should spawn given the current live counts.
func (s *SpawnController) Advance(dt, level float64, collectibles, threats int) Due {
	var due Due

	s.CollectibleTimer += dt
	if s.CollectibleTimer >= config.Interval(s.cfg.Collectibles.Spawn, level) {
		s.CollectibleTimer = 0
		due.Collectible = collectibles < s.cfg.Collectibles.MaxOnMap
	}

	s.ThreatTimer += dt
	if s.ThreatTimer >= config.Interval(s.cfg.Threats.Spawn, level) {
		s.ThreatTimer = 0
		due.Threat = threats < s.cfg.Threats.MaxOnMap
	}

	return due
}

// CoolDrop decrements the drop cooldown.
func (s *SpawnController) CoolDrop(dt float64) {
	s.DropCooldown = decay(s.DropCooldown, dt)
}

// TryDrop rolls for a pickup drop. The roll only happens while the cooldown
// is idle; a successful drop restarts the cooldown.
func (s *SpawnController) TryDrop(rng RandSource, pickups int) bool {
	if s.DropCooldown > 0 {
		return false
	}
	if rng.Float64() >= s.cfg.Pickups.DropChance {
		return false
	}
	if pickups >= s.cfg.Pickups.MaxOnMap {
		return false
	}
	s.DropCooldown = s.cfg.Pickups.Cooldown
	return true
}
