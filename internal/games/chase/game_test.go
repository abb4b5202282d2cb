package chase

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/catfish/internal/config"
	"github.com/vovakirdan/catfish/internal/core"
	"github.com/vovakirdan/catfish/internal/progress"
)

func TestNewRunDefaults(t *testing.T) {
	g := NewSeeded(config.DefaultChaseConfig(), progress.Default(), 42, nil)

	assert.Equal(t, StateActive, g.State())
	assert.Equal(t, 3, g.Lives())
	assert.Equal(t, 0, g.Score())
	assert.Len(t, g.Collectibles(), 2)
	assert.Empty(t, g.Threats())
	assert.Empty(t, g.Pickups())

	p := g.Player()
	assert.Equal(t, 310.0, p.BaseSpeed)
	assert.Equal(t, core.NewBox(458, 248, 44, 44), p.Box)

	h := g.HUD()
	assert.Equal(t, "1.0", h.MultiplierText())
}

func TestStandardPickupScenario(t *testing.T) {
	g, saver := newTestGame(t)
	fishOnPlayer(g, false)

	g.Step(frame, core.NewInputFrame())

	h := g.HUD()
	assert.Equal(t, 1, h.Score)
	assert.Equal(t, 1, h.Coins)
	assert.Equal(t, 1, h.CoinsThisRun)
	assert.InDelta(t, 1.32, h.Multiplier, 1e-9)
	assert.Equal(t, g.cfg.Combo.Window, g.combo.Timer)
	assert.Equal(t, 1.0, h.ComboFill)
	assert.Empty(t, g.Collectibles())

	require.NotEmpty(t, saver.saved)
	assert.Equal(t, 1, saver.last().Coins)
	assert.Equal(t, 1, saver.last().BestScore)
}

func TestGoldenPickupBeatsStandard(t *testing.T) {
	std, _ := newTestGame(t)
	fishOnPlayer(std, false)
	std.Step(frame, core.NewInputFrame())

	gold, _ := newTestGame(t)
	fishOnPlayer(gold, true)
	gold.Step(frame, core.NewInputFrame())

	s, gd := std.HUD(), gold.HUD()
	assert.Greater(t, gd.Score, s.Score)
	assert.Greater(t, gd.Coins, s.Coins)
	assert.Greater(t, gd.Multiplier, s.Multiplier)
	assert.Greater(t, gold.combo.Timer, std.combo.Timer)

	assert.Equal(t, 6, gd.Score)
	assert.Equal(t, 5, gd.Coins)
	assert.InDelta(t, 1.64, gd.Multiplier, 1e-9)
	assert.InDelta(t, 3.2, gold.combo.Timer, 1e-9) // window + overrun cap
}

func TestScoreUsesMultiplier(t *testing.T) {
	g, _ := newTestGame(t)
	g.combo.Mult = 2.5
	g.combo.Timer = 1
	fishOnPlayer(g, true)

	g.Step(frame, core.NewInputFrame())
	assert.Equal(t, 15, g.Score()) // round(6 * 2.5)
}

func TestLastLifeScenario(t *testing.T) {
	g, saver := newTestGame(t)
	g.lives = 1
	g.combo.Mult = 2.0
	g.combo.Timer = 1
	dogAt(g, g.player.X, g.player.Y)

	res := g.Step(frame, core.NewInputFrame())

	assert.True(t, res.RunEnded)
	assert.Equal(t, StateEnded, res.State)
	assert.Equal(t, 0, g.Lives())
	assert.InDelta(t, 1.2, g.combo.Mult, 1e-9)
	assert.Equal(t, 0.0, g.combo.Timer)
	assert.NotEmpty(t, saver.saved, "run end must trigger a save")

	// Frozen afterwards.
	before := g.Snapshot()
	for range 10 {
		g.Step(frame, held(core.ActionRight))
	}
	after := g.Snapshot()
	assert.Equal(t, before.Hash(), after.Hash())
	assert.Equal(t, 0, g.Lives())
}

func TestHitPenaltyFloor(t *testing.T) {
	g, _ := newTestGame(t)
	g.combo.Mult = 1.5
	g.combo.Timer = 1
	dogAt(g, g.player.X, g.player.Y)

	g.Step(frame, core.NewInputFrame())

	assert.Equal(t, 1.0, g.combo.Mult)
	assert.Equal(t, 2, g.Lives())
	assert.Equal(t, g.cfg.Player.Invulnerability, g.player.Invulnerable)
}

func TestShieldAbsorbsHit(t *testing.T) {
	g, _ := newTestGame(t)
	g.player.Shield = 1
	g.combo.Mult = 2.0
	g.combo.Timer = 1
	dogAt(g, g.player.X, g.player.Y)

	g.Step(frame, core.NewInputFrame())

	assert.Equal(t, 0, g.player.Shield)
	assert.Equal(t, 3, g.Lives())
	assert.Equal(t, 0.55, g.player.Invulnerable)
	assert.InDelta(t, 2.15, g.combo.Mult, 1e-9)
	assert.Equal(t, StateActive, g.State())

	// Still overlapping, but invulnerable.
	g.Step(frame, core.NewInputFrame())
	assert.Equal(t, 3, g.Lives())
}

func TestOnlyFirstThreatResolves(t *testing.T) {
	g, _ := newTestGame(t)
	dogAt(g, g.player.X, g.player.Y)
	dogAt(g, g.player.X+10, g.player.Y)
	dogAt(g, g.player.X, g.player.Y+10)

	g.Step(frame, core.NewInputFrame())
	assert.Equal(t, 2, g.Lives())
}

func TestKnockbackAwayFromThreat(t *testing.T) {
	g, _ := newTestGame(t)
	startX := g.player.X
	dogAt(g, startX-28, g.player.Y)

	g.Step(frame, core.NewInputFrame())

	assert.InDelta(t, startX+50, g.player.X, 1e-9)
	assert.Equal(t, 2, g.Lives())
}

func TestKnockbackClampedToField(t *testing.T) {
	g, _ := newTestGame(t)
	g.player.X = g.cfg.Field.Width - g.player.W - 10
	dogAt(g, g.player.X-20, g.player.Y)

	g.Step(frame, core.NewInputFrame())
	assert.Equal(t, g.cfg.Field.Width-g.player.W-10, g.player.X)
}

func TestPickupDropAndMagnet(t *testing.T) {
	g, _ := newTestGame(t)
	g.setRand(&scriptedRand{vals: []float64{0.05, 0.1}, fallback: 0.99})
	fishOnPlayer(g, false)

	g.Step(frame, core.NewInputFrame())

	// The drop lands on the player and is collected in the same step.
	assert.Empty(t, g.Pickups())
	assert.Equal(t, 3.0, g.player.Magnet)
	assert.InDelta(t, 1.57, g.combo.Mult, 1e-9)
	assert.Equal(t, g.cfg.Pickups.Cooldown, g.spawns.DropCooldown)
}

func TestMagnetDurationScalesWithLevel(t *testing.T) {
	meta := progress.Default()
	meta.Upgrades[config.UpgradeMagnet] = 2
	g := New(config.DefaultChaseConfig(), meta, &scriptedRand{fallback: 0.99}, nil)
	g.collectibles = nil
	g.pickups = append(g.pickups, g.factory.MakePickup(g.player.X, g.player.Y, PickupMagnet))

	g.Step(frame, core.NewInputFrame())
	assert.InDelta(t, 4.7, g.player.Magnet, 1e-9)
}

func TestShieldPickup(t *testing.T) {
	g, _ := newTestGame(t)
	g.pickups = append(g.pickups, g.factory.MakePickup(g.player.X, g.player.Y, PickupShield))

	g.Step(frame, core.NewInputFrame())
	assert.Equal(t, 1, g.player.Shield)
	assert.Equal(t, g.cfg.Combo.Window, g.combo.Timer)
}

func TestMagnetPullsNearbyFish(t *testing.T) {
	g, _ := newTestGame(t)
	g.player.Magnet = 2
	px, py := g.player.Center()
	near := &Collectible{Box: core.NewBox(px+100, py-9, 26, 18)}
	far := &Collectible{Box: core.NewBox(px+300, py-9, 26, 18)}
	g.collectibles = []*Collectible{near, far}

	g.Step(frame, core.NewInputFrame())

	assert.InDelta(t, px+100-175*frame, near.X, 1e-9)
	assert.Equal(t, px+300, far.X)
}

func TestDiagonalSpeedMatchesAxial(t *testing.T) {
	g, _ := newTestGame(t)
	x0, y0 := g.player.X, g.player.Y

	g.Step(frame, held(core.ActionRight, core.ActionDown))

	dist := math.Hypot(g.player.X-x0, g.player.Y-y0)
	assert.InDelta(t, 310*frame, dist, 1e-9)
}

func TestDashIsEdgeTriggered(t *testing.T) {
	g, _ := newTestGame(t)

	// Not moving: no dash.
	g.Step(frame, pressed(core.ActionDash))
	assert.Equal(t, 0.0, g.player.Dashing)

	in := held(core.ActionRight)
	in.Press(core.ActionDash)
	x0 := g.player.X
	g.Step(frame, in)
	assert.Equal(t, 0.12, g.player.Dashing)
	assert.Equal(t, 1.2, g.player.DashCooldown)
	assert.InDelta(t, x0+310*3.2*frame, g.player.X, 1e-9)

	// Holding the key does not re-trigger once the dash expires.
	for range 20 {
		g.Step(frame, held(core.ActionRight, core.ActionDash))
	}
	assert.Equal(t, 0.0, g.player.Dashing)
}

func TestStepClampsElapsed(t *testing.T) {
	g, _ := newTestGame(t)
	x0 := g.player.X

	g.Step(math.NaN(), held(core.ActionRight))
	assert.Equal(t, x0, g.player.X)

	g.Step(-1, held(core.ActionRight))
	assert.Equal(t, x0, g.player.X)

	g.Step(10, held(core.ActionRight))
	assert.InDelta(t, x0+310*g.cfg.MaxStep, g.player.X, 1e-9)
}

func TestPauseToggleIsEdgeTriggered(t *testing.T) {
	g, _ := newTestGame(t)
	dogAt(g, 0, 0).Speed = 120

	res := g.Step(frame, pressed(core.ActionPause))
	require.Equal(t, StatePaused, res.State)

	before := g.Snapshot()
	for range 30 {
		res = g.Step(frame, held(core.ActionPause, core.ActionRight))
	}
	assert.Equal(t, StatePaused, res.State)
	after := g.Snapshot()
	assert.Equal(t, before.Hash(), after.Hash(), "paused simulation must not advance")

	res = g.Step(frame, pressed(core.ActionPause))
	assert.Equal(t, StateActive, res.State)
}

func TestHardResetKeepsMeta(t *testing.T) {
	g, _ := newTestGame(t)
	fishOnPlayer(g, true)
	g.Step(frame, core.NewInputFrame())
	require.Equal(t, 5, g.Meta().Coins)

	res := g.Step(frame, pressed(core.ActionHardReset))

	assert.True(t, res.Restarted)
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.HUD().CoinsThisRun)
	assert.Equal(t, 5, g.Meta().Coins)
	assert.Equal(t, 6, g.Meta().BestScore)
	assert.Equal(t, 1.0, g.combo.Mult)
}

func TestEndedShopAndRestart(t *testing.T) {
	g, saver := newTestGame(t)
	g.meta.Coins = 30
	g.state = StateEnded

	res := g.Step(frame, pressed(core.ActionBuySpeed))
	require.NotNil(t, res.Purchase)
	assert.True(t, res.Purchase.OK)
	assert.Equal(t, 1, g.Meta().Level(config.UpgradeSpeed))
	assert.Equal(t, 0, g.Meta().Coins)
	assert.Equal(t, 1, saver.last().Level(config.UpgradeSpeed))

	res = g.Step(frame, pressed(core.ActionBuySpeed))
	assert.False(t, res.Purchase.OK)
	assert.Equal(t, 1, g.Meta().Level(config.UpgradeSpeed))

	// Movement and pause are ignored while ended.
	res = g.Step(frame, pressed(core.ActionPause))
	assert.Equal(t, StateEnded, res.State)

	res = g.Step(frame, pressed(core.ActionRestart))
	assert.True(t, res.Restarted)
	assert.Equal(t, StateActive, res.State)
	assert.Equal(t, 335.0, g.Player().BaseSpeed)
}

func TestLivesUpgradeAppliesAtRunStart(t *testing.T) {
	meta := progress.Default()
	meta.Upgrades[config.UpgradeLives] = 2
	g := NewSeeded(config.DefaultChaseConfig(), meta, 1, nil)
	assert.Equal(t, 5, g.Lives())
}

func TestInvariantsUnderLongPlay(t *testing.T) {
	cfg := config.DefaultChaseConfig()
	g := NewSeeded(cfg, progress.Default(), 7, nil)
	rng := rand.New(rand.NewSource(99))
	moves := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

	for i := 0; i < 20000; i++ {
		if g.State() == StateEnded {
			g.Step(frame, pressed(core.ActionRestart))
			continue
		}
		in := held(moves[rng.Intn(len(moves))], moves[rng.Intn(len(moves))])
		if rng.Intn(20) == 0 {
			in.Press(core.ActionDash)
		}
		livesBefore := g.Lives()
		res := g.Step(5, in) // stalls are clamped to one max step

		p := g.Player()
		if p.X < cfg.Player.Margin || p.Right() > cfg.Field.Width-cfg.Player.Margin ||
			p.Y < cfg.Player.Margin || p.Bottom() > cfg.Field.Height-cfg.Player.Margin {
			t.Fatalf("step %d: player out of bounds at (%v, %v)", i, p.X, p.Y)
		}
		if n := len(g.Collectibles()); n > cfg.Collectibles.MaxOnMap {
			t.Fatalf("step %d: %d collectibles over cap", i, n)
		}
		if n := len(g.Threats()); n > cfg.Threats.MaxOnMap {
			t.Fatalf("step %d: %d threats over cap", i, n)
		}
		if n := len(g.Pickups()); n > cfg.Pickups.MaxOnMap {
			t.Fatalf("step %d: %d pickups over cap", i, n)
		}
		if m := g.HUD().Multiplier; m < 1 || m > cfg.Combo.MaxMult {
			t.Fatalf("step %d: multiplier %v out of range", i, m)
		}
		if g.Lives() < 0 || g.Lives() > livesBefore {
			t.Fatalf("step %d: lives went from %d to %d", i, livesBefore, g.Lives())
		}
		if (g.Lives() == 0) != (g.State() == StateEnded) {
			t.Fatalf("step %d: lives %d with state %s", i, g.Lives(), g.State())
		}
		if res.RunEnded && livesBefore == 0 {
			t.Fatalf("step %d: run ended twice", i)
		}
	}
}

func TestMetaNeverDecreasesDuringPlay(t *testing.T) {
	saver := &recordSaver{}
	g := NewSeeded(config.DefaultChaseConfig(), progress.Default(), 3, saver)
	for i := 0; i < 5000 && g.State() != StateEnded; i++ {
		g.Step(frame, held(core.ActionRight, core.ActionUp))
	}

	prevCoins, prevBest := 0, 0
	for i, m := range saver.saved {
		if m.Coins < prevCoins || m.BestScore < prevBest {
			t.Fatalf("save %d: record went backwards: %+v", i, m)
		}
		prevCoins, prevBest = m.Coins, m.BestScore
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := NewSeeded(config.DefaultChaseConfig(), progress.Default(), 12345, nil)
		for i := 0; i < 600; i++ {
			var in core.InputFrame
			switch {
			case i%90 < 30:
				in = held(core.ActionLeft)
			case i%90 < 60:
				in = held(core.ActionDown, core.ActionRight)
			default:
				in = held(core.ActionUp)
			}
			if i%45 == 0 {
				in.Press(core.ActionDash)
			}
			g.Step(frame, in)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Score, b.Score)
}
