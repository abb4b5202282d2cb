package progress

import (
	"math"

	"github.com/vovakirdan/catfish/internal/config"
)

// Economy prices upgrades. Costs grow linearly with the current level.
type Economy struct {
	BaseCosts map[string]int
	Fallback  int // Base cost for keys missing from BaseCosts
	Growth    float64
}

// NewEconomy builds an economy from the configured cost curve.
func NewEconomy(cfg config.EconomyConfig) Economy {
	costs := make(map[string]int, len(cfg.BaseCosts))
	for k, v := range cfg.BaseCosts {
		costs[k] = v
	}
	return Economy{BaseCosts: costs, Fallback: cfg.FallbackCost, Growth: cfg.GrowthRate}
}

// Cost returns the price of raising key from level to level+1:
// floor(base * (1 + level*growth)).
func (e Economy) Cost(key string, level int) int {
	base, ok := e.BaseCosts[key]
	if !ok {
		base = e.Fallback
	}
	return int(math.Floor(float64(base) * (1 + float64(level)*e.Growth)))
}

// NextCost returns the price of the next level of key for the given record.
func (e Economy) NextCost(m Meta, key string) int {
	return e.Cost(key, m.Level(key))
}

// Purchase buys one level of key. With insufficient coins it returns false
// and leaves m untouched; otherwise it deducts the cost and increments the level.
func (e Economy) Purchase(m *Meta, key string) bool {
	cost := e.NextCost(*m, key)
	if m.Coins < cost {
		return false
	}
	if m.Upgrades == nil {
		m.Upgrades = make(map[string]int)
	}
	m.Coins -= cost
	m.Upgrades[key]++
	return true
}

// Offer describes the next level of one upgrade.
type Offer struct {
	Key        string
	Level      int // Current level
	Cost       int // Price of the next level
	Affordable bool
}

// Offers lists the persisted upgrades in shop order.
func (e Economy) Offers(m Meta) []Offer {
	offers := make([]Offer, 0, len(upgradeKeys))
	for _, k := range upgradeKeys {
		cost := e.NextCost(m, k)
		offers = append(offers, Offer{Key: k, Level: m.Level(k), Cost: cost, Affordable: m.Coins >= cost})
	}
	return offers
}
