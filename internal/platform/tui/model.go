package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/match"
)

// Store is what the driver needs from match history.
type Store interface {
	match.ResultSaver
	HistorySource
}

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	Arena   config.ArenaConfig
	Player  string

	Store   Store        // Optional, can be nil
	Logger  *log.Logger  // Optional, discards when nil
	Sampler pong.Sampler // Optional, seeded from Runtime.Seed when nil

	Now func() time.Time // Optional, time.Now when nil
}

// Model is the Bubble Tea model for one player's pong session.
type Model struct {
	game    *pong.Game
	tracker *match.Tracker
	store   Store
	logger  *log.Logger
	config  core.RuntimeConfig
	now     func() time.Time

	screen *core.Screen
	keys   KeyMap
	help   help.Model

	lastUpdate time.Time
	paused     bool
	movement   pong.Movement
	lastResult *match.Result

	history     HistoryModel
	showHistory bool
	quitting    bool
}

// NewModel creates a stopped match for o.Player.
func NewModel(o Options) Model {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	sampler := o.Sampler
	if sampler == nil {
		sampler = pong.NewRandSampler(o.Runtime.ResolveSeed(o.Now()))
	}

	h := help.New()
	h.Width = o.Runtime.ScreenW

	return Model{
		game:    pong.New(o.Arena.Width, o.Arena.Height, o.Arena.Speed, pong.WithSampler(sampler)),
		tracker: match.NewTracker(o.Player, match.WithClock(o.Now)),
		store:   o.Store,
		logger:  o.Logger,
		config:  o.Runtime,
		now:     o.Now,
		screen:  core.NewScreen(o.Runtime.ScreenW, o.Runtime.ScreenH-1),
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHistory {
			return m.updateHistory(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.showHistory {
		return m.updateHistory(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.Abandon()
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		if !m.game.Started() {
			m.game.Start()
			id := m.tracker.Begin()
			m.paused = false
			m.lastUpdate = time.Time{}
			m.lastResult = nil
			m.logger.Debug("match started", "match", id, "player", m.tracker.Player())
		}

	case core.ActionPause:
		if m.game.Started() {
			m.paused = !m.paused
			if !m.paused {
				m.lastUpdate = m.now()
			}
		}

	case core.ActionUp, core.ActionDown:
		m.movement = MovementFor(action)

	case core.ActionHistory:
		if !m.game.Started() || m.paused {
			m.history = NewHistoryModel(m.historySource(), m.tracker.Player(), m.config.ScreenW, m.config.ScreenH)
			m.showHistory = true
		}
	}

	return m, nil
}

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)

	if m.history.Quitting() {
		return m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	}
	if m.history.Closed() {
		m.showHistory = false
	}
	return m, cmd
}

// historySource avoids handing a nil Store to the history view as a non-nil interface.
func (m Model) historySource() HistorySource {
	if m.store == nil {
		return nil
	}
	return m.store
}

// handleResize processes window resize events. The match keeps running;
// only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1) // Last row is the help bar
	m.help.Width = msg.Width

	if m.showHistory {
		m.history, _ = m.history.Update(msg)
	}
	return m, nil
}

// handleTick advances the engine by the wall-clock time since the previous frame.
// The first frame after a start only records the timestamp.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.paused {
		if !m.lastUpdate.IsZero() {
			deltaTime := now.Sub(m.lastUpdate).Seconds()
			res := m.game.Tick(deltaTime, m.movement)
			m.observe(res)
		}
		m.lastUpdate = now
	}

	// Terminals report presses only, so intent lasts one frame
	m.movement = pong.MovementNone

	return m, tickCmd(m.config.FrameInterval())
}

func (m *Model) observe(res pong.TickResult) {
	if res.Goal != pong.SideNone {
		m.logger.Debug("goal", "side", res.Goal, "left", res.LeftScore, "right", res.RightScore)
	}

	result, done := m.tracker.Observe(res)
	if !done {
		return
	}
	m.lastResult = &result
	m.record(result)
}

// Abandon records the running match, if any, as abandoned. Every copy of a
// Model shares one tracker, so calling it on any copy after the program has
// exited is safe and records the match at most once.
func (m Model) Abandon() {
	if result, ok := m.tracker.Abort(); ok {
		m.record(result)
	}
}

// record saves a finished match. Storage errors are logged and otherwise ignored.
func (m *Model) record(result match.Result) {
	m.logger.Info("match ended",
		"match", result.ID,
		"player", result.Player,
		"reason", result.Reason,
		"score", fmt.Sprintf("%d-%d", result.LeftScore, result.RightScore),
	)
	if m.store == nil {
		return
	}
	if err := m.store.SaveMatchResult(result); err != nil {
		m.logger.Warn("could not save match", "match", result.ID, "error", err)
	}
}

// overlay returns the centered messages for the current state.
func (m Model) overlay() []string {
	switch {
	case m.paused:
		return []string{"PAUSED", "Press Space to resume"}
	case m.game.Started():
		return nil
	case m.lastResult != nil:
		r := m.lastResult
		return []string{
			fmt.Sprintf("%s wins %d-%d", titleSide(r.Winner), r.LeftScore, r.RightScore),
			"",
			"Press Enter to start",
		}
	default:
		return []string{"PONG", "", "Press Enter to start"}
	}
}

func titleSide(s pong.Side) string {
	switch s {
	case pong.SideLeft:
		return "Left"
	case pong.SideRight:
		return "Right"
	default:
		return "Nobody"
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}

	DrawArena(m.screen, m.game.Snapshot(), m.overlay()...)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Snapshot returns the engine state shown by the model.
func (m Model) Snapshot() pong.Snapshot {
	return m.game.Snapshot()
}

// Paused reports whether the match is paused.
func (m Model) Paused() bool {
	return m.paused
}

// ShowingHistory reports whether the history view is open.
func (m Model) ShowingHistory() bool {
	return m.showHistory
}

// LastResult returns the most recently finished match, if any.
func (m Model) LastResult() *match.Result {
	return m.lastResult
}

// Run starts the Bubble Tea program with the given options.
func Run(o Options) error {
	p := tea.NewProgram(
		NewModel(o),
		tea.WithAltScreen(),
	)
	return runProgram(p)
}

// runProgram runs p and abandons a match left running when it exits
// without going through the quit key (signals, p.Quit, p.Kill).
func runProgram(p *tea.Program) error {
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.Abandon()
	}
	return err
}
