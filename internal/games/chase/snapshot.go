package chase

import (
	"bytes"
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/catfish/internal/progress"
)

// Snapshot is a serializable copy of the full simulation state, written by
// the ctrl+s hotkey and read back by the inspect command.
type Snapshot struct {
	Step         uint64  `msgpack:"step"`
	State        string  `msgpack:"state"`
	Score        int     `msgpack:"score"`
	Lives        int     `msgpack:"lives"`
	CoinsThisRun int     `msgpack:"coins_this_run"`
	Elapsed      float64 `msgpack:"elapsed"`
	Ramp         float64 `msgpack:"ramp"`

	Multiplier float64 `msgpack:"multiplier"`
	ComboTimer float64 `msgpack:"combo_timer"`

	CollectibleTimer float64 `msgpack:"collectible_timer"`
	ThreatTimer      float64 `msgpack:"threat_timer"`
	DropCooldown     float64 `msgpack:"drop_cooldown"`

	Player       PlayerState   `msgpack:"player"`
	Collectibles []EntityState `msgpack:"collectibles"`
	Threats      []EntityState `msgpack:"threats"`
	Pickups      []EntityState `msgpack:"pickups"`

	Meta progress.Meta `msgpack:"meta"`
}

// PlayerState is the serialized player.
type PlayerState struct {
	X            float64 `msgpack:"x"`
	Y            float64 `msgpack:"y"`
	BaseSpeed    float64 `msgpack:"base_speed"`
	Invulnerable float64 `msgpack:"invulnerable"`
	DashCooldown float64 `msgpack:"dash_cooldown"`
	Dashing      float64 `msgpack:"dashing"`
	Magnet       float64 `msgpack:"magnet"`
	Shield       int     `msgpack:"shield"`
}

// EntityState is a serialized fish, dog or power-up.
type EntityState struct {
	Kind  string  `msgpack:"kind"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	W     float64 `msgpack:"w"`
	H     float64 `msgpack:"h"`
	Speed float64 `msgpack:"speed,omitempty"`
	Timer float64 `msgpack:"timer,omitempty"` // Animation phase or pickup age
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	snap := Snapshot{
		Step:             g.steps,
		State:            g.state.String(),
		Score:            g.score,
		Lives:            g.lives,
		CoinsThisRun:     g.coinsThisRun,
		Elapsed:          g.elapsed,
		Ramp:             g.ramp,
		Multiplier:       g.combo.Mult,
		ComboTimer:       g.combo.Timer,
		CollectibleTimer: g.spawns.CollectibleTimer,
		ThreatTimer:      g.spawns.ThreatTimer,
		DropCooldown:     g.spawns.DropCooldown,
		Player: PlayerState{
			X:            p.X,
			Y:            p.Y,
			BaseSpeed:    p.BaseSpeed,
			Invulnerable: p.Invulnerable,
			DashCooldown: p.DashCooldown,
			Dashing:      p.Dashing,
			Magnet:       p.Magnet,
			Shield:       p.Shield,
		},
		Meta: g.meta.Clone(),
	}

	for _, c := range g.collectibles {
		kind := "fish"
		if c.Golden {
			kind = "golden"
		}
		snap.Collectibles = append(snap.Collectibles, EntityState{Kind: kind, X: c.X, Y: c.Y, W: c.W, H: c.H, Timer: c.Phase})
	}
	for _, t := range g.threats {
		snap.Threats = append(snap.Threats, EntityState{Kind: "dog", X: t.X, Y: t.Y, W: t.W, H: t.H, Speed: t.Speed})
	}
	for _, pk := range g.pickups {
		snap.Pickups = append(snap.Pickups, EntityState{Kind: pk.Kind.String(), X: pk.X, Y: pk.Y, W: pk.W, H: pk.H, Timer: pk.Age})
	}
	return snap
}

// Encode serializes the snapshot with msgpack. Map keys are sorted so equal
// snapshots encode to equal bytes.
func (snap *Snapshot) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(snap); err != nil {
		return nil, fmt.Errorf("chase: cannot encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeSnapshot parses a snapshot written by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("chase: cannot decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns a digest of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	data, err := snap.Encode()
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64()
}
