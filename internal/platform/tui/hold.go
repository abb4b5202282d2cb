package tui

import (
	"time"

	"github.com/vovakirdan/catfish/internal/core"
)

// Terminals report key presses and auto-repeats but never releases. A key
// counts as held until its repeat stream stops: the first event holds it for
// InitialDelay (covering the terminal's repeat delay), later repeats for
// RepeatWindow. Two taps of one key closer than InitialDelay are
// indistinguishable from a held key and fire once.
const (
	InitialDelay = 550 * time.Millisecond
	RepeatWindow = 150 * time.Millisecond
)

type keyState struct {
	first   time.Time
	last    time.Time
	repeats int
}

func (s keyState) expires(initial, repeat time.Duration) time.Time {
	if s.repeats == 0 {
		return s.first.Add(initial)
	}
	return s.last.Add(repeat)
}

// HoldTracker turns a stream of key events into per-tick input frames.
// A key event starts a new press (an edge) only when the key was not
// already held, so auto-repeat never re-fires edge-triggered actions.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	keys    map[core.Action]keyState
	edges   map[core.Action]bool
}

// NewHoldTracker creates a tracker with the given hold windows.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		keys:    make(map[core.Action]keyState),
		edges:   make(map[core.Action]bool),
	}
}

// Observe records a key event for a at time now.
func (h *HoldTracker) Observe(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	s, ok := h.keys[a]
	if !ok || now.After(s.expires(h.initial, h.repeat)) {
		h.keys[a] = keyState{first: now, last: now}
		h.edges[a] = true
		return
	}
	s.last = now
	s.repeats++
	h.keys[a] = s
}

// Frame returns the input for a tick at time now and consumes pending edges.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, s := range h.keys {
		if now.After(s.expires(h.initial, h.repeat)) {
			delete(h.keys, a)
			continue
		}
		f.Hold(a)
	}
	for a := range h.edges {
		f.Press(a)
		delete(h.edges, a)
	}
	return f
}

// Reset forgets every key.
func (h *HoldTracker) Reset() {
	clear(h.keys)
	clear(h.edges)
}
