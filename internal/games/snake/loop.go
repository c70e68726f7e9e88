// Package snake implements the wrapped-grid snake game: a snake moves on a
// toroidal grid, eats food to grow and score, and the round ends on
// self-collision or when the body grows past the win threshold.
//
// The package holds pure game logic. Timing is delegated to a Scheduler and
// all output goes through Sinks, so front ends (terminal, SSH, tests) only
// drive the Loop's input surface and consume snapshots.
package snake

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Loop is the game orchestrator. It owns the snake, the food, the score
// and the status, and runs the periodic tick while playing.
//
// All methods are safe for concurrent use. Direction changes and ticks
// arriving from different goroutines are serialized, so the game behaves
// as if driven by a single event loop.
type Loop struct {
	mu sync.Mutex

	settings  config.Settings
	rng       *rand.Rand
	scheduler Scheduler
	sinks     Sinks
	logger    *log.Logger

	snake   *Snake
	food    Food
	score   Score
	status  Status
	outcome Outcome
	ticks   uint64
	round   uint64 // Bumped by every Reset

	// epoch invalidates scheduled tick callbacks: it is bumped whenever
	// ticking stops, and a callback only acts if its epoch is current.
	epoch  uint64
	cancel func()
}

// Option configures a Loop.
type Option func(*Loop)

// WithScheduler sets the timer used while playing.
// The scheduler must not invoke fn synchronously from Every.
func WithScheduler(s Scheduler) Option {
	return func(l *Loop) {
		l.scheduler = s
	}
}

// WithSeed seeds the food placement RNG for reproducible rounds.
func WithSeed(seed int64) Option {
	return func(l *Loop) {
		l.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the food placement RNG.
func WithRand(rng *rand.Rand) Option {
	return func(l *Loop) {
		l.rng = rng
	}
}

// WithSinks sets the output sinks.
func WithSinks(s Sinks) Option {
	return func(l *Loop) {
		l.sinks = s
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// New validates settings and builds a ready-to-play game in the stopped
// state. Invalid settings return a *config.ValidationError listing every
// violated bound, and no game is created.
func New(settings config.Settings, opts ...Option) (*Loop, error) {
	if err := settings.Validate().Err(); err != nil {
		return nil, err
	}

	l := &Loop{
		settings:  settings,
		scheduler: TickerScheduler{},
		status:    StatusIdle,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.rng == nil {
		l.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	l.score.notify = l.sinks.Score

	l.Reset()
	return l, nil
}

// Reset starts a fresh round: ticking stops, the score drops to zero, a
// one-segment snake heading up is placed at the grid center and food is
// placed on a random free cell.
func (l *Loop) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cancelLocked()
	l.round++
	l.status = StatusStopped
	l.outcome = OutcomeNone
	l.ticks = 0
	l.score.Drop()

	cols, rows := l.settings.ColsCount, l.settings.RowsCount
	l.snake = NewSnake(core.Pt(cols/2, rows/2), DirUp, cols, rows)
	l.food.Clear()
	if p, ok := l.randomFreeLocked(); ok {
		l.food.SetCoordinates(p)
	}

	l.logger.Debug("round reset", "round", l.round, "head", l.snake.Head(), "food", l.food.Coordinates())
	l.sinks.render(l.snapshotLocked())
	l.sinks.status(AffordanceFor(l.status))
}

// Play starts ticking every Settings.TickInterval. It only acts when the
// game is stopped; a stopped round resumes where it was.
func (l *Loop) Play() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.playLocked()
}

// Stop pauses a playing round. Play resumes it.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopLocked()
}

// Toggle is the start/stop command: it plays a stopped round and stops a
// playing one. A finished round needs Reset.
func (l *Loop) Toggle() {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.status {
	case StatusStopped:
		l.playLocked()
	case StatusPlaying:
		l.stopLocked()
	}
}

// Tick advances a playing round by one step. It is a no-op in any other
// state. The scheduler calls it once per interval; front ends may call it
// directly to single-step.
func (l *Loop) Tick() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tickLocked()
}

// ChangeDirection requests a new direction. It is accepted only while
// playing and only if it does not reverse the last step; rejected requests
// are ignored and return false.
func (l *Loop) ChangeDirection(d Direction) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.status != StatusPlaying {
		return false
	}
	if d == l.snake.LastStepDirection().Opposite() {
		return false
	}
	l.snake.SetDirection(d)
	return true
}

// RandomFreeCoordinates returns a uniformly random cell that holds neither
// food nor snake. ok is false only if the grid has no free cell.
func (l *Loop) RandomFreeCoordinates() (p core.Point, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.randomFreeLocked()
}

// Status returns the lifecycle state.
func (l *Loop) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Outcome returns how the round finished, or OutcomeNone.
func (l *Loop) Outcome() Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.outcome
}

// Score returns the current score.
func (l *Loop) Score() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.score.Value()
}

// Ticks returns the number of ticks played this round.
func (l *Loop) Ticks() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ticks
}

// Round returns the current round number. It starts at 1 and grows by
// one on every Reset; finish results carry the round they belong to.
func (l *Loop) Round() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.round
}

// Settings returns the game's settings.
func (l *Loop) Settings() config.Settings {
	return l.settings
}

func (l *Loop) playLocked() {
	if l.status != StatusStopped {
		return
	}
	l.status = StatusPlaying

	l.epoch++
	epoch := l.epoch
	l.cancel = l.scheduler.Every(l.settings.TickInterval(), func() {
		l.scheduledTick(epoch)
	})

	l.logger.Debug("playing", "interval", l.settings.TickInterval())
	l.sinks.status(AffordanceFor(l.status))
}

func (l *Loop) stopLocked() {
	if l.status != StatusPlaying {
		return
	}
	l.status = StatusStopped
	l.cancelLocked()

	l.logger.Debug("stopped", "score", l.score.Value())
	l.sinks.status(AffordanceFor(l.status))
}

func (l *Loop) finishLocked(outcome Outcome) {
	l.status = StatusFinished
	l.outcome = outcome
	l.cancelLocked()

	l.logger.Info("round finished", "outcome", outcome, "score", l.score.Value(), "length", l.snake.Len())
	l.sinks.status(AffordanceFor(l.status))
	l.sinks.finish(Result{
		Round:    l.round,
		Outcome:  outcome,
		Score:    l.score.Value(),
		Length:   l.snake.Len(),
		Ticks:    l.ticks,
		Settings: l.settings,
	})
}

// cancelLocked stops the scheduler and moves to a new epoch, so a tick
// callback that was already queued finds a stale epoch and does nothing.
func (l *Loop) cancelLocked() {
	l.epoch++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

func (l *Loop) scheduledTick(epoch uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if epoch != l.epoch {
		return
	}
	l.tickLocked()
}

func (l *Loop) tickLocked() {
	if l.status != StatusPlaying {
		return
	}
	l.ticks++

	next := l.snake.NextStepPoint()
	if l.snake.IsOnPoint(next) {
		// Self-collision. The grid wraps, so there is no wall to hit.
		l.finishLocked(OutcomeLoss)
		l.sinks.render(l.snapshotLocked())
		return
	}

	if l.food.IsOnPoint(next) {
		l.score.Increment()
		l.snake.GrowUp()

		p, ok := l.randomFreeLocked()
		switch {
		case !ok:
			// Nowhere left to put food. The head is about to cover it.
			l.food.Clear()
			l.finishLocked(OutcomeWin)
		case l.snake.Len() > l.settings.WinFoodCount:
			l.food.SetCoordinates(p)
			l.finishLocked(OutcomeWin)
		default:
			l.food.SetCoordinates(p)
		}
	}

	l.snake.MakeStep()
	l.sinks.render(l.snapshotLocked())
}

// randomFreeLocked samples cells until one is free. The free-cell check up
// front keeps it from spinning on a full grid.
func (l *Loop) randomFreeLocked() (core.Point, bool) {
	cols, rows := l.settings.ColsCount, l.settings.RowsCount

	occupied := make(map[core.Point]struct{}, l.snake.Len()+1)
	for _, p := range l.snake.body {
		occupied[p] = struct{}{}
	}
	if l.food.placed {
		occupied[l.food.coords] = struct{}{}
	}
	if len(occupied) >= cols*rows {
		return core.Point{}, false
	}

	for {
		p := core.Pt(l.rng.Intn(cols), l.rng.Intn(rows))
		if l.food.IsOnPoint(p) || l.snake.IsOnPoint(p) {
			continue
		}
		return p, true
	}
}
