package chase

import (
	"math"

	"github.com/vovakirdan/catfish/internal/config"
	"github.com/vovakirdan/catfish/internal/core"
	"github.com/vovakirdan/catfish/internal/progress"
)

// RandSource supplies uniform values in [0, 1). *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Factory builds entities with randomized attributes.
type Factory struct {
	cfg config.ChaseConfig
	rng RandSource
}

// NewFactory creates a factory drawing from rng.
func NewFactory(cfg config.ChaseConfig, rng RandSource) *Factory {
	return &Factory{cfg: cfg, rng: rng}
}

// uniform returns a value in [min, max).
func (f *Factory) uniform(min, max float64) float64 {
	return min + f.rng.Float64()*(max-min)
}

// MakePlayer creates the player for a new run, centered in the field.
func (f *Factory) MakePlayer(meta progress.Meta) Player {
	pc := f.cfg.Player
	size := pc.Size
	return Player{
		Box:       core.NewBox(f.cfg.Field.Width/2-size/2, f.cfg.Field.Height/2-size/2, size, size),
		BaseSpeed: pc.BaseSpeed + float64(meta.Level(config.UpgradeSpeed))*pc.SpeedPerLevel,
		Lives:     pc.BaseLives + meta.Level(config.UpgradeLives),
	}
}

// MakeCollectible creates a fish at a random spot inside the inset field.
func (f *Factory) MakeCollectible() *Collectible {
	cc := f.cfg.Collectibles
	golden := f.rng.Float64() < cc.GoldenChance
	v := cc.Standard
	if golden {
		v = cc.Golden
	}
	x := f.uniform(cc.Inset, f.cfg.Field.Width-cc.FarInset)
	y := f.uniform(cc.Inset, f.cfg.Field.Height-cc.FarInset)
	return &Collectible{
		Box:    core.NewBox(x, y, v.Width, v.Height),
		Golden: golden,
		Phase:  f.uniform(0, 2*math.Pi),
	}
}

// MakeThreat creates a dog just outside one of the four field edges.
func (f *Factory) MakeThreat() *Threat {
	tc := f.cfg.Threats
	w, h := f.cfg.Field.Width, f.cfg.Field.Height
	size := tc.Size

	var x, y float64
	switch edge := int(math.Floor(f.uniform(0, 4))); edge {
	case 0:
		x, y = -size, f.uniform(0, h-size)
	case 1:
		x, y = w+size, f.uniform(0, h-size)
	case 2:
		x, y = f.uniform(0, w-size), -size
	default:
		x, y = f.uniform(0, w-size), h+size
	}

	return &Threat{
		Box:   core.NewBox(x, y, size, size),
		Speed: f.uniform(tc.SpeedMin, tc.SpeedMax),
	}
}

// MakePickup creates a power-up near (x, y), clamped into the field.
func (f *Factory) MakePickup(x, y float64, kind PickupKind) *Pickup {
	pc := f.cfg.Pickups
	return &Pickup{
		Box: core.NewBox(
			core.ClampF(x, pc.Inset, f.cfg.Field.Width-pc.FarInset),
			core.ClampF(y, pc.Inset, f.cfg.Field.Height-pc.FarInset),
			pc.Size, pc.Size,
		),
		Kind: kind,
	}
}

// PickPickupType chooses the kind of a dropped power-up. Magnets are favored.
func (f *Factory) PickPickupType() PickupKind {
	if f.rng.Float64() < f.cfg.Pickups.MagnetBias {
		return PickupMagnet
	}
	return PickupShield
}
