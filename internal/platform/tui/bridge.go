package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// frameMsg asks the program to redraw from the loop's current snapshot.
type frameMsg struct{}

// finishMsg reports a finished round.
type finishMsg snake.Result

// bridge carries loop output into the Bubble Tea program.
//
// The loop calls its sinks while holding its lock, so the sinks never
// block: redraw requests coalesce into a single pending frame, and results
// are queued. The program pulls messages with wait.
type bridge struct {
	frames  chan struct{}
	results chan snake.Result
	done    chan struct{}
	once    sync.Once
}

func newBridge() *bridge {
	return &bridge{
		frames:  make(chan struct{}, 1),
		results: make(chan snake.Result, 8),
		done:    make(chan struct{}),
	}
}

// sinks returns the loop sinks that feed this bridge.
func (b *bridge) sinks() snake.Sinks {
	return snake.Sinks{
		Render: func(snake.Snapshot) { b.signal() },
		Score:  func(int) { b.signal() },
		Status: func(snake.Affordance) { b.signal() },
		Finish: func(r snake.Result) {
			select {
			case b.results <- r:
			default:
			}
			b.signal()
		},
	}
}

func (b *bridge) signal() {
	select {
	case b.frames <- struct{}{}:
	default:
	}
}

// wait returns a command that blocks until the loop has output.
// Results are delivered before redraws.
func (b *bridge) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case r := <-b.results:
			return finishMsg(r)
		default:
		}

		select {
		case r := <-b.results:
			return finishMsg(r)
		case <-b.frames:
			return frameMsg{}
		case <-b.done:
			return nil
		}
	}
}

// drain returns the queued results without blocking.
func (b *bridge) drain() []snake.Result {
	var out []snake.Result
	for {
		select {
		case r := <-b.results:
			out = append(out, r)
		default:
			return out
		}
	}
}

// close releases a pending wait.
func (b *bridge) close() {
	b.once.Do(func() { close(b.done) })
}
