package chase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/catfish/internal/config"
	"github.com/vovakirdan/catfish/internal/core"
	"github.com/vovakirdan/catfish/internal/progress"
)

func TestSnapshotEncodeDecode(t *testing.T) {
	g := NewSeeded(config.DefaultChaseConfig(), progress.Default(), 5, nil)
	for range 240 {
		g.Step(frame, held(core.ActionLeft))
	}
	snap := g.Snapshot()

	data, err := snap.Encode()
	require.NoError(t, err)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
	assert.Equal(t, snap.Hash(), got.Hash())
	assert.Equal(t, uint64(240), got.Step)
	assert.Equal(t, "active", got.State)
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte{0xc1, 0x00})
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t)
	fishOnPlayer(g, false)
	dogAt(g, 100, 100)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.Row(0), "Score 0")
	assert.Contains(t, screen.String(), string(DogChar))
	assert.Contains(t, screen.String(), string(PlayerChar))

	g.state = StatePaused
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.state = StateEnded
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.True(t, strings.Contains(out, "SPEED") && strings.Contains(out, "MAGNET"))
}

func TestRenderTinyScreen(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(10, 3)
	g.Render(screen)
	assert.Contains(t, screen.Row(0), "terminal")
}
