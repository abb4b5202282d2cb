// Package chase implements the catfish chase: a cat collects fish while
// homing dogs hunt it, a decaying combo multiplies the score, and coins buy
// permanent upgrades between runs.
//
// The simulation is step-driven and single-threaded. The driver supplies
// elapsed time and an input frame; Game never schedules itself or touches
// devices or storage directly.
package chase

import (
	"math"
	"math/rand"
	"slices"

	"github.com/vovakirdan/catfish/internal/config"
	"github.com/vovakirdan/catfish/internal/core"
	"github.com/vovakirdan/catfish/internal/progress"
)

// ID is the identifier runs are recorded under.
const ID = "chase"

// StepResult reports what happened during one Step.
type StepResult struct {
	State     RunState
	RunEnded  bool // The last life was lost during this step
	Restarted bool // A new run started during this step
	Purchase  *Purchase
}

// Purchase is the outcome of a shop input.
type Purchase struct {
	Key string
	OK  bool
}

// RunSummary describes a run for the history table.
type RunSummary struct {
	Score       int
	CoinsEarned int
	Duration    float64 // Seconds of active play
}

// Game is the simulation context. All run and meta state lives here.
type Game struct {
	cfg        config.ChaseConfig
	rng        RandSource
	saver      progress.Saver
	economy    progress.Economy
	difficulty *config.DifficultyManager
	factory    *Factory
	spawns     *SpawnController
	combo      Combo

	meta progress.Meta

	state        RunState
	score        int
	lives        int
	coinsThisRun int
	elapsed      float64 // Active time this run, drives the ramp
	ramp         float64
	steps        uint64

	player       Player
	collectibles []*Collectible
	threats      []*Threat
	pickups      []*Pickup
}

// New creates a game and starts its first run. A nil rng is replaced by a
// source seeded with 1 and a nil saver by progress.Discard.
func New(cfg config.ChaseConfig, meta progress.Meta, rng RandSource, saver progress.Saver) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if saver == nil {
		saver = progress.Discard
	}
	if cfg.MaxStep <= 0 {
		cfg.MaxStep = config.DefaultChaseConfig().MaxStep
	}
	g := &Game{
		cfg:        cfg,
		rng:        rng,
		saver:      saver,
		economy:    progress.NewEconomy(cfg.Economy),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		factory:    NewFactory(cfg, rng),
		spawns:     NewSpawnController(cfg),
		combo:      NewCombo(cfg.Combo),
		meta:       meta.Clone(),
	}
	g.Reset()
	return g
}

// NewSeeded creates a game drawing from math/rand seeded with seed.
func NewSeeded(cfg config.ChaseConfig, meta progress.Meta, seed int64, saver progress.Saver) *Game {
	return New(cfg, meta, rand.New(rand.NewSource(seed)), saver)
}

// Reset discards the current run and starts a fresh one.
// The meta-progression record is kept.
func (g *Game) Reset() {
	g.state = StateActive
	g.score = 0
	g.coinsThisRun = 0
	g.elapsed = 0
	g.ramp = g.difficulty.Level(0, 0)
	g.steps = 0
	g.combo.Reset()
	g.spawns.Reset()

	g.player = g.factory.MakePlayer(g.meta)
	g.lives = g.player.Lives

	g.collectibles = g.collectibles[:0]
	for range g.cfg.Collectibles.Initial {
		g.collectibles = append(g.collectibles, g.factory.MakeCollectible())
	}
	g.threats = g.threats[:0]
	g.pickups = g.pickups[:0]
}

// Step advances the simulation by dt seconds. dt is clamped to
// [0, MaxStep]; NaN counts as 0.
func (g *Game) Step(dt float64, in core.InputFrame) StepResult {
	dt = clampStep(dt, g.cfg.MaxStep)

	if in.WasPressed(core.ActionHardReset) {
		g.Reset()
		return StepResult{State: g.state, Restarted: true}
	}

	switch g.state {
	case StateEnded:
		return g.stepEnded(in)
	case StatePaused:
		if in.WasPressed(core.ActionPause) {
			g.state = StateActive
		}
		return StepResult{State: g.state}
	}

	if in.WasPressed(core.ActionPause) {
		g.state = StatePaused
		return StepResult{State: g.state}
	}

	g.advance(dt, in)

	return StepResult{State: g.state, RunEnded: g.state == StateEnded}
}

// stepEnded routes the inputs accepted after a run ends: purchases and restart.
func (g *Game) stepEnded(in core.InputFrame) StepResult {
	res := StepResult{State: g.state}

	for _, b := range shopKeys {
		if in.WasPressed(b.action) {
			res.Purchase = &Purchase{Key: b.key, OK: g.Purchase(b.key)}
		}
	}

	if in.WasPressed(core.ActionRestart) {
		g.Reset()
		res.State = g.state
		res.Restarted = true
	}
	return res
}

var shopKeys = []struct {
	action core.Action
	key    string
}{
	{core.ActionBuySpeed, config.UpgradeSpeed},
	{core.ActionBuyLives, config.UpgradeLives},
	{core.ActionBuyMagnet, config.UpgradeMagnet},
}

// Purchase buys one level of an upgrade from the meta record and saves it
// on success. It reports false when coins are insufficient.
func (g *Game) Purchase(key string) bool {
	if !g.economy.Purchase(&g.meta, key) {
		return false
	}
	g.save()
	return true
}

// advance runs one active step.
func (g *Game) advance(dt float64, in core.InputFrame) {
	g.steps++
	g.elapsed += dt
	g.ramp = g.difficulty.Level(g.score, g.elapsed)

	p := &g.player
	p.tickTimers(dt)
	g.combo.Tick(dt)

	mx, my, _ := core.Normalize(in.Axis())
	moving := mx != 0 || my != 0
	if in.WasPressed(core.ActionDash) && moving && p.CanDash() {
		p.Dashing = g.cfg.Dash.Duration
		p.DashCooldown = g.cfg.Dash.Cooldown
	}

	speed := p.BaseSpeed
	if p.Dashing > 0 {
		speed *= g.cfg.Dash.SpeedBoost
	}
	p.VX = mx * speed
	p.VY = my * speed
	p.X += p.VX * dt
	p.Y += p.VY * dt
	g.clampPlayer()

	due := g.spawns.Advance(dt, g.ramp, len(g.collectibles), len(g.threats))
	if due.Collectible {
		g.collectibles = append(g.collectibles, g.factory.MakeCollectible())
	}
	if due.Threat {
		g.threats = append(g.threats, g.factory.MakeThreat())
	}

	g.moveThreats(dt)

	for _, c := range g.collectibles {
		c.Phase += dt * g.cfg.Collectibles.PhaseRate
	}
	for _, pk := range g.pickups {
		pk.Age += dt
	}

	g.spawns.CoolDrop(dt)
	g.applyMagnet(dt)
	g.resolveCollisions()
}

// moveThreats homes every threat on the player's current center.
func (g *Game) moveThreats(dt float64) {
	px, py := g.player.Center()
	factor := config.SpeedFactor(g.cfg.Threats.SpeedRamp, g.ramp)
	for _, t := range g.threats {
		tx, ty := t.Center()
		ux, uy, _ := core.Normalize(px-tx, py-ty)
		step := t.Speed * factor * dt
		t.X += ux * step
		t.Y += uy * step
	}
}

// applyMagnet pulls nearby fish toward the player while the magnet is active.
func (g *Game) applyMagnet(dt float64) {
	if g.player.Magnet <= 0 {
		return
	}
	mc := g.cfg.Magnet
	pull := mc.Pull * (1 + float64(g.meta.Level(config.UpgradeMagnet))*mc.PullPerLevel)
	px, py := g.player.Center()
	for _, c := range g.collectibles {
		cx, cy := c.Center()
		ux, uy, dist := core.Normalize(px-cx, py-cy)
		if dist == 0 || dist > mc.Radius {
			continue
		}
		c.X = core.ClampF(c.X+ux*pull*dt, mc.Margin, g.cfg.Field.Width-c.W-mc.Margin)
		c.Y = core.ClampF(c.Y+uy*pull*dt, mc.Margin, g.cfg.Field.Height-c.H-mc.Margin)
	}
}

func (g *Game) clampPlayer() {
	p := &g.player
	m := g.cfg.Player.Margin
	p.X = core.ClampF(p.X, m, g.cfg.Field.Width-p.W-m)
	p.Y = core.ClampF(p.Y, m, g.cfg.Field.Height-p.H-m)
}

func (g *Game) save() {
	g.saver.SaveMeta(g.meta.Clone())
}

func clampStep(dt, maxStep float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, maxStep)
}

// State returns the current run state.
func (g *Game) State() RunState { return g.state }

// Score returns the current run score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Meta returns a copy of the meta-progression record.
func (g *Game) Meta() progress.Meta { return g.meta.Clone() }

// Economy returns the upgrade price list in use.
func (g *Game) Economy() progress.Economy { return g.economy }

// Config returns the tunables the game runs with.
func (g *Game) Config() config.ChaseConfig { return g.cfg }

// Player returns a copy of the player.
func (g *Game) Player() Player { return g.player }

// Collectibles returns a copy of the live fish.
func (g *Game) Collectibles() []Collectible { return copyAll(g.collectibles) }

// Threats returns a copy of the live dogs.
func (g *Game) Threats() []Threat { return copyAll(g.threats) }

// Pickups returns a copy of the live power-ups.
func (g *Game) Pickups() []Pickup { return copyAll(g.pickups) }

// Summary describes the current run.
func (g *Game) Summary() RunSummary {
	return RunSummary{Score: g.score, CoinsEarned: g.coinsThisRun, Duration: g.elapsed}
}

func copyAll[T any](src []*T) []T {
	out := make([]T, 0, len(src))
	for _, e := range src {
		out = append(out, *e)
	}
	return out
}

func removeAt[T any](s []*T, i int) []*T {
	return slices.Delete(s, i, i+1)
}
