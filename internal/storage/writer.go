package storage

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catfish/internal/progress"
)

// MetaStore persists meta-progression records by profile.
type MetaStore interface {
	SaveMeta(profile string, m progress.Meta) error
}

// MetaWriter persists records in the background so the simulation never
// waits on disk. Only the most recent pending record is written; older
// ones are superseded. Write failures are logged and dropped.
//
// MetaWriter implements progress.Saver.
type MetaWriter struct {
	store   MetaStore
	profile string
	logger  *log.Logger

	mu      sync.Mutex
	pending *progress.Meta
	closed  bool

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
}

// NewMetaWriter starts a writer for profile. A nil logger uses log.Default().
func NewMetaWriter(store MetaStore, profile string, logger *log.Logger) *MetaWriter {
	if logger == nil {
		logger = log.Default()
	}
	w := &MetaWriter{
		store:   store,
		profile: profile,
		logger:  logger,
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

// SaveMeta queues m for writing and returns immediately.
func (w *MetaWriter) SaveMeta(m progress.Meta) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.logger.Warn("meta write after close dropped", "profile", w.profile)
		return
	}
	c := m.Clone()
	w.pending = &c
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default: // a wake-up is already queued
	}
}

// Close writes any pending record and stops the worker.
func (w *MetaWriter) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		<-w.done
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.quit)
	<-w.done
	return nil
}

func (w *MetaWriter) run() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			w.flush()
		case <-w.quit:
			w.flush()
			return
		}
	}
}

func (w *MetaWriter) flush() {
	w.mu.Lock()
	m := w.pending
	w.pending = nil
	w.mu.Unlock()

	if m == nil {
		return
	}
	if err := w.store.SaveMeta(w.profile, *m); err != nil {
		w.logger.Error("meta write failed", "profile", w.profile, "err", err)
		return
	}
	w.logger.Debug("meta saved", "profile", w.profile, "coins", m.Coins, "best", m.BestScore)
}
