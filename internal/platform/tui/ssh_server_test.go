package tui

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catfish/internal/progress"
	"github.com/vovakirdan/catfish/internal/storage"
)

func TestSessionProfile(t *testing.T) {
	tests := []struct {
		user, expected string
	}{
		{"", "guest"},
		{"tom", "tom"},
	}
	for _, tc := range tests {
		if got := sessionProfile(tc.user); got != tc.expected {
			t.Errorf("sessionProfile(%q) = %q, expected %q", tc.user, got, tc.expected)
		}
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.FPS != 60 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Chase.Field.Width <= 0 {
		t.Error("default chase config should be populated")
	}
}

type memoryMetaStore struct {
	mu    sync.Mutex
	saved map[string]progress.Meta
}

func (m *memoryMetaStore) SaveMeta(profile string, meta progress.Meta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[profile] = meta
	return nil
}

func TestWaitWritersFlushesSessions(t *testing.T) {
	logger := log.New(io.Discard)
	s := &SSHServer{logger: logger}
	mem := &memoryMetaStore{saved: map[string]progress.Meta{}}

	ctx, cancel := context.WithCancel(context.Background())
	w := storage.NewMetaWriter(mem, "tom", logger)
	s.trackWriter(ctx, w)

	m := progress.Default()
	m.Coins = 12
	w.SaveMeta(m)
	cancel()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	s.waitWriters(waitCtx)

	mem.mu.Lock()
	defer mem.mu.Unlock()
	if got := mem.saved["tom"].Coins; got != 12 {
		t.Errorf("flushed coins = %d, expected 12", got)
	}
}

func TestWaitWritersGivesUpAtDeadline(t *testing.T) {
	s := &SSHServer{logger: log.New(io.Discard)}
	mem := &memoryMetaStore{saved: map[string]progress.Meta{}}

	sessionCtx, endSession := context.WithCancel(context.Background())
	defer endSession()
	s.trackWriter(sessionCtx, storage.NewMetaWriter(mem, "tom", s.logger))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	start := time.Now()
	s.waitWriters(ctx)
	if time.Since(start) > time.Second {
		t.Error("waitWriters should return when its context expires")
	}
}
