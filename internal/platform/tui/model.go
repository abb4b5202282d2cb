package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catfish/internal/core"
	"github.com/vovakirdan/catfish/internal/games/chase"
	"github.com/vovakirdan/catfish/internal/storage"
)

// RunRecorder stores finished runs.
type RunRecorder interface {
	RecordRun(run storage.Run) (string, error)
}

// Options configures a play session.
type Options struct {
	Runtime     core.RuntimeConfig
	Profile     string
	Recorder    RunRecorder // Optional; runs are not recorded when nil
	Logger      *log.Logger // Optional; defaults to log.Default()
	SnapshotDir string      // Defaults to ~/.catfish/snapshots
}

// runRecordedMsg reports the outcome of an asynchronous RecordRun.
type runRecordedMsg struct {
	id  string
	err error
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a chase session.
type Model struct {
	game     *chase.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	holds    *HoldTracker
	recorder RunRecorder
	logger   *log.Logger

	profile     string
	seed        int64
	fps         int
	snapshotDir string

	last        time.Time
	runRecorded bool
	quitting    bool
	status      string
}

// NewModel creates a model driving game.
func NewModel(game *chase.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	snapshotDir := opts.SnapshotDir
	if snapshotDir == "" {
		snapshotDir = defaultSnapshotDir()
	}
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:        game,
		screen:      core.NewScreen(rt.ScreenW, screenRows(rt.ScreenH)),
		keys:        DefaultKeyMap(),
		help:        h,
		holds:       NewHoldTracker(InitialDelay, RepeatWindow),
		recorder:    opts.Recorder,
		logger:      logger,
		profile:     opts.Profile,
		seed:        rt.Seed,
		fps:         rt.TickRate,
		snapshotDir: snapshotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and advances the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, screenRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case runRecordedMsg:
		if msg.err != nil {
			m.logger.Error("could not record run", "profile", m.profile, "err", msg.err)
		} else {
			m.logger.Debug("run recorded", "profile", m.profile, "id", msg.id)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Snapshot):
		m.status = m.saveSnapshot()
		return m, nil
	}

	m.holds.Observe(m.keys.Action(msg), time.Now())
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now

	res := m.game.Step(dt, m.holds.Frame(now))
	if res.Restarted {
		m.runRecorded = false
		m.status = ""
	}
	if res.Purchase != nil && !res.Purchase.OK {
		m.status = fmt.Sprintf("not enough coins for %s", res.Purchase.Key)
	}

	cmds := []tea.Cmd{tickCmd(m.fps)}
	if res.RunEnded && !m.runRecorded {
		m.runRecorded = true
		cmds = append(cmds, m.recordRun(m.game.Summary()))
	}
	return m, tea.Batch(cmds...)
}

// recordRun stores the finished run off the update loop.
func (m Model) recordRun(sum chase.RunSummary) tea.Cmd {
	if m.recorder == nil {
		return nil
	}
	run := storage.Run{
		Profile:     m.profile,
		Score:       sum.Score,
		CoinsEarned: sum.CoinsEarned,
		Duration:    time.Duration(sum.Duration * float64(time.Second)),
		Seed:        m.seed,
		CreatedAt:   time.Now(),
	}
	recorder := m.recorder
	return func() tea.Msg {
		id, err := recorder.RecordRun(run)
		return runRecordedMsg{id: id, err: err}
	}
}

// saveSnapshot writes the simulation state and a plain-text screenshot.
func (m *Model) saveSnapshot() string {
	if err := os.MkdirAll(m.snapshotDir, 0o755); err != nil {
		m.logger.Warn("could not create snapshot directory", "dir", m.snapshotDir, "err", err)
		return "snapshot failed"
	}

	snap := m.game.Snapshot()
	data, err := snap.Encode()
	if err != nil {
		m.logger.Error("could not encode snapshot", "err", err)
		return "snapshot failed"
	}

	base := filepath.Join(m.snapshotDir, fmt.Sprintf("%s_%s", chase.ID, time.Now().Format("20060102_150405")))
	if err := os.WriteFile(base+".msgpack", data, 0o600); err != nil {
		m.logger.Error("could not write snapshot", "path", base+".msgpack", "err", err)
		return "snapshot failed"
	}

	m.game.Render(m.screen)
	//nolint:errcheck // The screenshot is a convenience next to the snapshot
	os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600)

	m.logger.Info("snapshot saved", "path", base+".msgpack", "hash", fmt.Sprintf("%016x", snap.Hash()))
	return "saved " + filepath.Base(base) + ".msgpack"
}

// View renders the play field and a help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	line := m.help.View(m.keys)
	if m.status != "" {
		line = m.status + "  " + line
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(line)
}

// screenRows leaves the bottom terminal row for the help line.
func screenRows(h int) int {
	return max(h-1, 0)
}

func defaultSnapshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "snapshots"
	}
	return filepath.Join(home, ".catfish", "snapshots")
}

// Run starts a local Bubble Tea program for game.
func Run(game *chase.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
