// Package progress holds the persistent meta-progression record and the
// upgrade economy that spends from it.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/catfish/internal/config"
)

// ErrCorruptRecord is returned by Decode when a stored record cannot be parsed.
var ErrCorruptRecord = errors.New("progress: corrupt record")

// Meta is the meta-progression record carried across runs.
// Coins only decrease through purchases; BestScore never decreases.
type Meta struct {
	Coins     int            `json:"coins" msgpack:"coins"`
	BestScore int            `json:"bestScore" msgpack:"best_score"`
	Upgrades  map[string]int `json:"upgrades" msgpack:"upgrades"`
}

// Upgrade keys persisted in every record.
var upgradeKeys = []string{config.UpgradeSpeed, config.UpgradeLives, config.UpgradeMagnet}

// Default returns a clean record: no coins, no best score, every upgrade at level 0.
func Default() Meta {
	m := Meta{Upgrades: make(map[string]int, len(upgradeKeys))}
	for _, k := range upgradeKeys {
		m.Upgrades[k] = 0
	}
	return m
}

// Clone returns a deep copy of the record.
func (m Meta) Clone() Meta {
	c := Meta{Coins: m.Coins, BestScore: m.BestScore, Upgrades: make(map[string]int, len(m.Upgrades))}
	for k, v := range m.Upgrades {
		c.Upgrades[k] = v
	}
	return c
}

// Level returns the current level of an upgrade. Unknown keys are level 0.
func (m Meta) Level(key string) int {
	return m.Upgrades[key]
}

// AwardCoins credits n coins. Non-positive amounts are ignored.
func (m *Meta) AwardCoins(n int) {
	if n > 0 {
		m.Coins += n
	}
}

// RecordScore raises BestScore to score if it is higher and reports whether it did.
func (m *Meta) RecordScore(score int) bool {
	if score <= m.BestScore {
		return false
	}
	m.BestScore = score
	return true
}

// Encode renders the record in its persisted JSON form.
func Encode(m Meta) ([]byte, error) {
	data, err := json.Marshal(m.normalized())
	if err != nil {
		return nil, fmt.Errorf("progress: cannot encode record: %w", err)
	}
	return data, nil
}

// Decode parses a persisted record. Empty input yields Default with a nil error;
// unparseable input yields Default together with ErrCorruptRecord so callers
// can log it and carry on.
func Decode(data []byte) (Meta, error) {
	if len(data) == 0 {
		return Default(), nil
	}
	var m Meta
	if err := json.Unmarshal(data, &m); err != nil {
		return Default(), fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return m.normalized(), nil
}

// normalized fills missing upgrade keys and drops negative values.
func (m Meta) normalized() Meta {
	n := m.Clone()
	if n.Coins < 0 {
		n.Coins = 0
	}
	if n.BestScore < 0 {
		n.BestScore = 0
	}
	for k, v := range n.Upgrades {
		if v < 0 {
			n.Upgrades[k] = 0
		}
	}
	for _, k := range upgradeKeys {
		if _, ok := n.Upgrades[k]; !ok {
			n.Upgrades[k] = 0
		}
	}
	return n
}

// Saver receives the record whenever it changes. Implementations must not
// block the caller and must swallow their own write failures.
type Saver interface {
	SaveMeta(m Meta)
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(m Meta)

// SaveMeta calls f(m).
func (f SaverFunc) SaveMeta(m Meta) { f(m) }

// Discard is a Saver that drops every record.
var Discard Saver = SaverFunc(func(Meta) {})
