package chase

import (
	"github.com/vovakirdan/catfish/internal/config"
	"github.com/vovakirdan/catfish/internal/core"
)

// resolveCollisions tests the player against every live entity. Fish and
// power-ups are consumed on contact; at most one dog resolves per step and
// only while the player is not invulnerable.
func (g *Game) resolveCollisions() {
	box := g.player.Box

	for i := len(g.collectibles) - 1; i >= 0; i-- {
		c := g.collectibles[i]
		if !box.Overlaps(c.Box) {
			continue
		}
		g.collectibles = removeAt(g.collectibles, i)
		g.touch(c)
	}

	for i := len(g.pickups) - 1; i >= 0; i-- {
		p := g.pickups[i]
		if !box.Overlaps(p.Box) {
			continue
		}
		g.pickups = removeAt(g.pickups, i)
		g.touch(p)
	}

	if g.player.Invulnerable > 0 {
		return
	}
	for _, t := range g.threats {
		if g.player.Overlaps(t.Box) {
			g.touch(t)
			break
		}
	}
}

// touch applies the effect of the player touching e.
func (g *Game) touch(e Entity) {
	switch v := e.(type) {
	case *Collectible:
		g.collect(v)
	case *Pickup:
		g.applyPickup(v)
	case *Threat:
		g.hit(v)
	}
}

func (g *Game) collect(c *Collectible) {
	cc := g.cfg.Collectibles
	score, coins := c.Value(cc)

	g.addScore(score)
	g.awardCoins(coins)

	if c.Golden {
		g.combo.Reward(g.cfg.Combo.PerPickup * 2)
		g.combo.Extend(cc.GoldenWindow, cc.GoldenOverrun)
	} else {
		g.combo.Reward(g.cfg.Combo.PerPickup)
	}

	if g.spawns.TryDrop(g.rng, len(g.pickups)) {
		g.pickups = append(g.pickups, g.factory.MakePickup(c.X, c.Y, g.factory.PickPickupType()))
	}
}

func (g *Game) applyPickup(p *Pickup) {
	switch p.Kind {
	case PickupMagnet:
		mc := g.cfg.Magnet
		g.player.Magnet = mc.Duration + float64(g.meta.Level(config.UpgradeMagnet))*mc.DurationPerLevel
	case PickupShield:
		g.player.Shield = 1
	}
	g.combo.Reward(g.cfg.Pickups.ComboBump)
}

// hit resolves contact with a dog. A shield charge absorbs the hit without
// touching lives or the multiplier penalty.
func (g *Game) hit(t *Threat) {
	p := &g.player
	if p.Shield > 0 {
		p.Shield = 0
		p.Invulnerable = g.cfg.Player.ShieldInvulnerable
		g.combo.Reward(g.cfg.Pickups.ShieldBump)
		return
	}

	g.lives--
	p.Invulnerable = g.cfg.Player.Invulnerability
	g.combo.Hit()

	px, py := p.Center()
	tx, ty := t.Center()
	ux, uy, _ := core.Normalize(px-tx, py-ty)
	p.X += ux * g.cfg.Player.Knockback
	p.Y += uy * g.cfg.Player.Knockback
	g.clampPlayer()

	if g.lives <= 0 {
		g.lives = 0
		g.state = StateEnded
		g.save()
	}
}

func (g *Game) addScore(base int) {
	g.score += g.combo.ScoreFor(base)
	if g.meta.RecordScore(g.score) {
		g.save()
	}
}

func (g *Game) awardCoins(n int) {
	g.meta.AwardCoins(n)
	g.coinsThisRun += n
	g.save()
}
