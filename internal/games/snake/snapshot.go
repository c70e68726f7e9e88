package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is a render-ready copy of the game state.
type Snapshot struct {
	Round     uint64
	Tick      uint64
	Body      []core.Point // Head first
	Food      core.Point
	HasFood   bool // False once the grid is full
	Score     int
	Status    Status
	Outcome   Outcome
	Direction Direction
	Cols      int
	Rows      int
}

// Head returns the head of the snapshot's body.
func (s Snapshot) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{}
	}
	return s.Body[0]
}

// Result summarizes a finished round.
type Result struct {
	Round    uint64 // Loop.Round at the time of the finish
	Outcome  Outcome
	Score    int
	Length   int
	Ticks    uint64
	Settings config.Settings
}

// Snapshot returns the current render snapshot.
func (l *Loop) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *Loop) snapshotLocked() Snapshot {
	return Snapshot{
		Round:     l.round,
		Tick:      l.ticks,
		Body:      l.snake.Body(),
		Food:      l.food.Coordinates(),
		HasFood:   l.food.Placed(),
		Score:     l.score.Value(),
		Status:    l.status,
		Outcome:   l.outcome,
		Direction: l.snake.Direction(),
		Cols:      l.settings.ColsCount,
		Rows:      l.settings.RowsCount,
	}
}
