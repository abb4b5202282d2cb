package chase

import (
	"testing"

	"github.com/vovakirdan/catfish/internal/config"
	"github.com/vovakirdan/catfish/internal/core"
	"github.com/vovakirdan/catfish/internal/progress"
)

const frame = 1.0 / 60.0

// scriptedRand replays fixed values, then repeats fallback.
type scriptedRand struct {
	vals     []float64
	fallback float64
}

func (s *scriptedRand) Float64() float64 {
	if len(s.vals) == 0 {
		return s.fallback
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

// recordSaver keeps every record it is asked to save.
type recordSaver struct {
	saved []progress.Meta
}

func (r *recordSaver) SaveMeta(m progress.Meta) {
	r.saved = append(r.saved, m)
}

func (r *recordSaver) last() progress.Meta {
	if len(r.saved) == 0 {
		return progress.Meta{}
	}
	return r.saved[len(r.saved)-1]
}

// newTestGame returns a game with an empty field. Every random roll yields
// 0.99: no golden fish, no drops.
func newTestGame(t *testing.T) (*Game, *recordSaver) {
	t.Helper()
	saver := &recordSaver{}
	g := New(config.DefaultChaseConfig(), progress.Default(), &scriptedRand{fallback: 0.99}, saver)
	g.collectibles = nil
	g.threats = nil
	g.pickups = nil
	return g, saver
}

func (g *Game) setRand(r RandSource) {
	g.rng = r
	g.factory.rng = r
}

// fishOnPlayer places a fish overlapping the player.
func fishOnPlayer(g *Game, golden bool) *Collectible {
	v := g.cfg.Collectibles.Standard
	if golden {
		v = g.cfg.Collectibles.Golden
	}
	c := &Collectible{Box: core.NewBox(g.player.X+5, g.player.Y+5, v.Width, v.Height), Golden: golden}
	g.collectibles = append(g.collectibles, c)
	return c
}

// dogAt places a stationary dog with its top-left at (x, y).
func dogAt(g *Game, x, y float64) *Threat {
	d := &Threat{Box: core.NewBox(x, y, g.cfg.Threats.Size, g.cfg.Threats.Size)}
	g.threats = append(g.threats, d)
	return d
}

func pressed(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Press(a)
	}
	return f
}

func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}
