package chase

import (
	"github.com/vovakirdan/catfish/internal/config"
	"github.com/vovakirdan/catfish/internal/core"
)

// Player is the cat. It is recreated at every run start.
//
// Timer fields are active iff > 0 and are decremented once per step
// before anything reads them.
type Player struct {
	core.Box
	VX, VY    float64
	BaseSpeed float64 // Fixed for the run
	Lives     int     // Starting lives for the run

	Invulnerable float64
	DashCooldown float64
	Dashing      float64
	Magnet       float64
	Shield       int // Single charge: 0 or 1
}

func (p *Player) tickTimers(dt float64) {
	p.Invulnerable = decay(p.Invulnerable, dt)
	p.DashCooldown = decay(p.DashCooldown, dt)
	p.Dashing = decay(p.Dashing, dt)
	p.Magnet = decay(p.Magnet, dt)
}

// CanDash reports whether a dash may start this step.
func (p *Player) CanDash() bool {
	return p.DashCooldown <= 0 && p.Dashing <= 0
}

func decay(t, dt float64) float64 {
	if t <= 0 {
		return t
	}
	if t -= dt; t < 0 {
		return 0
	}
	return t
}

// Entity is anything the player can touch. The set of implementations is
// closed: *Collectible, *Threat and *Pickup.
type Entity interface {
	Bounds() core.Box
	entity()
}

// Collectible is a fish. Golden fish are bigger and pay more.
type Collectible struct {
	core.Box
	Golden bool
	Phase  float64 // Animation phase, advanced by the simulation and read by renderers
}

// Bounds implements Entity.
func (c *Collectible) Bounds() core.Box { return c.Box }
func (*Collectible) entity()            {}

// Value returns the reward for picking up c.
func (c *Collectible) Value(cfg config.CollectibleConfig) (score, coins int) {
	if c.Golden {
		return cfg.Golden.Score, cfg.Golden.Coins
	}
	return cfg.Standard.Score, cfg.Standard.Coins
}

// Threat is a dog that homes on the player's current center.
type Threat struct {
	core.Box
	Speed float64 // Fixed at creation
}

// Bounds implements Entity.
func (t *Threat) Bounds() core.Box { return t.Box }
func (*Threat) entity()            {}

// PickupKind selects a power-up effect.
type PickupKind int

const (
	PickupMagnet PickupKind = iota
	PickupShield
)

func (k PickupKind) String() string {
	switch k {
	case PickupMagnet:
		return "magnet"
	case PickupShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Pickup is a power-up dropped by a collected fish.
type Pickup struct {
	core.Box
	Kind PickupKind
	Age  float64
}

// Bounds implements Entity.
func (p *Pickup) Bounds() core.Box { return p.Box }
func (*Pickup) entity()            {}
