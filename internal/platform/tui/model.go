// Package tui provides the Bubble Tea front end for the snake game.
// It maps keys to loop commands, renders loop snapshots and hosts the
// game over SSH via Wish.
package tui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
	"github.com/vovakirdan/tui-snake/internal/telemetry"
)

// Options configure a game session.
type Options struct {
	Settings config.Settings
	Store    *storage.Store // Optional; results are not saved without it
	Player   string
	Seed     int64 // Zero picks a time-based seed
	Logger   *log.Logger
	Tracer   trace.Tracer
	Width    int
	Height   int
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	loop    *snake.Loop
	bridge  *bridge
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	palette Palette

	store  *storage.Store
	player string
	logger *log.Logger
	tracer trace.Tracer

	runID    uuid.UUID
	round    *telemetry.Round
	roundGen uint64 // Loop round that runID and round belong to

	// Rounds that finished before a reset whose results are still queued
	// in the bridge, by loop round.
	unsaved map[uint64]pendingRound

	scoreboard *ScoreboardModel
	width      int
	height     int
	quitting   bool
}

type pendingRound struct {
	runID uuid.UUID
	round *telemetry.Round
}

// NewModel creates a session with a fresh round in the stopped state.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Tracer == nil {
		opts.Tracer = telemetry.NoopTracer()
	}

	b := newBridge()
	loopOpts := []snake.Option{
		snake.WithSinks(b.sinks()),
		snake.WithLogger(opts.Logger),
	}
	if opts.Seed != 0 {
		loopOpts = append(loopOpts, snake.WithSeed(opts.Seed))
	}

	loop, err := snake.New(opts.Settings, loopOpts...)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		loop:    loop,
		bridge:  b,
		screen:  core.NewScreen(opts.Width, screenHeight(opts.Height)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		palette: DefaultPalette(),

		store:  opts.Store,
		player: opts.Player,
		logger: opts.Logger,
		tracer: opts.Tracer,
		width:  opts.Width,
		height: opts.Height,

		unsaved: make(map[uint64]pendingRound),
	}
	m.help.Width = opts.Width
	m.startRound()

	return m, nil
}

// screenHeight leaves one line for the help bar.
func screenHeight(h int) int {
	if h <= 1 {
		return h
	}
	return h - 1
}

// Init starts listening for loop output.
func (m Model) Init() tea.Cmd {
	return m.bridge.wait()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case frameMsg:
		return m, m.bridge.wait()

	case finishMsg:
		m.handleFinish(snake.Result(msg))
		return m, m.bridge.wait()

	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if dir, ok := DirectionFor(action); ok {
		m.loop.ChangeDirection(dir)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quit()
		return m, tea.Quit

	case core.ActionToggle:
		m.loop.Toggle()
		if m.loop.Status() == snake.StatusStopped {
			m.round.Event("paused")
		}

	case core.ActionReset:
		if m.loop.Status() == snake.StatusFinished && m.round != nil {
			// The result has not been handled yet; keep its run for it.
			m.unsaved[m.roundGen] = pendingRound{runID: m.runID, round: m.round}
			m.round = nil
		}
		m.abandonRound()
		m.loop.Reset()
		m.startRound()

	case core.ActionScores:
		m.loop.Stop()
		sb := NewScoreboardModel(m.store, m.width, m.height)
		sb.embedded = true
		m.scoreboard = &sb

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// updateScoreboard forwards keys to the open scoreboard.
func (m Model) updateScoreboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quit()
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &sb
	return m, cmd
}

// handleResize processes window resize events. The round keeps running;
// Draw shows a warning while the window is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, screenHeight(msg.Height))
	m.help.Width = msg.Width

	if m.scoreboard != nil {
		next, _ := m.scoreboard.Update(msg)
		if sb, ok := next.(ScoreboardModel); ok {
			m.scoreboard = &sb
		}
	}
	return m, nil
}

// handleFinish saves a finished round under the run it was played in and
// closes that run's span. Results for unknown rounds are dropped.
func (m *Model) handleFinish(r snake.Result) {
	var run pendingRound
	switch p, ok := m.unsaved[r.Round]; {
	case ok:
		run = p
		delete(m.unsaved, r.Round)
	case r.Round == m.roundGen && m.round != nil:
		run = pendingRound{runID: m.runID, round: m.round}
		m.round = nil
	default:
		m.logger.Debug("dropping result of unknown round", "round", r.Round, "current", m.roundGen)
		return
	}

	run.round.Finish(r.Outcome.String(), r.Score, r.Length, r.Ticks)

	if m.store == nil {
		return
	}
	rec := resultRecord(run.runID, m.player, r)
	if _, err := m.store.SaveResult(rec); err != nil {
		// Best-effort save, the session continues regardless
		m.logger.Warn("could not save result", "error", err)
		return
	}
	m.logger.Debug("result saved", "run", run.runID, "round", r.Round, "score", r.Score)
}

func (m *Model) startRound() {
	m.runID = uuid.New()
	m.roundGen = m.loop.Round()
	s := m.loop.Settings()
	m.round = telemetry.StartRound(context.Background(), m.tracer, m.player, telemetry.RoundSettings{
		Rows:         s.RowsCount,
		Cols:         s.ColsCount,
		Speed:        s.Speed,
		WinFoodCount: s.WinFoodCount,
	})
}

func (m *Model) abandonRound() {
	if m.round != nil {
		m.round.Abandon(m.loop.Score())
		m.round = nil
	}
}

func (m *Model) quit() {
	m.quitting = true
	m.loop.Stop()
	for _, r := range m.bridge.drain() {
		m.handleFinish(r)
	}
	m.abandonRound()
	for gen, p := range m.unsaved {
		p.round.Abandon(0)
		delete(m.unsaved, gen)
	}
	m.shutdown()
}

// shutdown stops the ticker and releases the pending wait. It is safe to
// call from any goroutine.
func (m Model) shutdown() {
	m.loop.Stop()
	m.bridge.close()
}

// Loop returns the session's game loop.
func (m Model) Loop() *snake.Loop {
	return m.loop
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	snake.Draw(m.loop.Snapshot(), m.screen)
	return m.palette.Render(m.screen) + "\n" + m.palette.Help.Render(m.help.View(m.keys))
}

// resultRecord converts a finished round to its stored form.
func resultRecord(runID uuid.UUID, player string, r snake.Result) storage.Result {
	return storage.Result{
		RunID:        runID,
		Player:       player,
		Score:        r.Score,
		Outcome:      r.Outcome.String(),
		Length:       r.Length,
		Rows:         r.Settings.RowsCount,
		Cols:         r.Settings.ColsCount,
		Speed:        r.Settings.Speed,
		WinFoodCount: r.Settings.WinFoodCount,
		Ticks:        r.Ticks,
	}
}

// Run starts a local Bubble Tea program for one session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.quit()
	}
	return err
}
