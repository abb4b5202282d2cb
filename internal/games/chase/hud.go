package chase

import (
	"fmt"

	"github.com/vovakirdan/catfish/internal/progress"
)

// HUD is the read-only state consumers display after each step.
type HUD struct {
	Score        int
	Lives        int
	Coins        int
	Best         int
	CoinsThisRun int
	Multiplier   float64
	ComboFill    float64 // Remaining ignition as a fraction of the window
	Shield       bool
	Magnet       float64 // Seconds of magnet left
	DashReady    bool
	Ramp         float64
	State        RunState
}

// MultiplierText formats the multiplier with one decimal, e.g. "1.3".
func (h HUD) MultiplierText() string {
	return fmt.Sprintf("%.1f", h.Multiplier)
}

// HUD returns the current display state.
func (g *Game) HUD() HUD {
	return HUD{
		Score:        g.score,
		Lives:        g.lives,
		Coins:        g.meta.Coins,
		Best:         g.meta.BestScore,
		CoinsThisRun: g.coinsThisRun,
		Multiplier:   g.combo.Mult,
		ComboFill:    g.combo.Fill(),
		Shield:       g.player.Shield > 0,
		Magnet:       g.player.Magnet,
		DashReady:    g.player.CanDash(),
		Ramp:         g.ramp,
		State:        g.state,
	}
}

// Shop lists the upgrade offers for the current meta record.
func (g *Game) Shop() []progress.Offer {
	return g.economy.Offers(g.meta)
}
