package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/catfish/internal/storage"
)

type fakeHistory struct {
	top, recent []storage.Run
	err         error
}

func (f fakeHistory) TopRuns(string, int) ([]storage.Run, error)    { return f.top, f.err }
func (f fakeHistory) RecentRuns(string, int) ([]storage.Run, error) { return f.recent, f.err }

func TestHistoryRowsAndToggle(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	src := fakeHistory{
		top: []storage.Run{
			{Score: 1520, CoinsEarned: 40, Duration: 95 * time.Second, CreatedAt: now.Add(-2 * time.Hour)},
			{Score: 12, CoinsEarned: 3, Duration: 10 * time.Second, CreatedAt: now.Add(-time.Minute)},
		},
		recent: []storage.Run{
			{Score: 12, CoinsEarned: 3, Duration: 10 * time.Second, CreatedAt: now.Add(-time.Minute)},
		},
	}

	m := NewHistoryModel(src, "cat", 80, 24)
	m.now = func() time.Time { return now }

	rows := m.rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "1,520", rows[0][1])
	assert.Equal(t, "1m35s", rows[0][3])
	assert.Equal(t, "2 hours ago", rows[0][4])
	assert.Contains(t, m.View(), "BEST RUNS - cat")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	assert.Equal(t, viewRecent, m.view)
	assert.Len(t, m.runs, 1)
	assert.Contains(t, m.View(), "RECENT RUNS")
}

func TestHistoryEmptyAndError(t *testing.T) {
	m := NewHistoryModel(fakeHistory{}, "cat", 80, 24)
	assert.Contains(t, m.View(), "No runs recorded yet")

	m = NewHistoryModel(fakeHistory{err: errors.New("locked")}, "cat", 80, 24)
	assert.Contains(t, m.View(), "locked")

	m = NewHistoryModel(nil, "cat", 80, 24)
	assert.Empty(t, m.runs)
}

func TestHistoryQuit(t *testing.T) {
	m := NewHistoryModel(fakeHistory{}, "cat", 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())
}
