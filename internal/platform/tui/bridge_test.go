package tui

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestBridgeCoalescesFrames(t *testing.T) {
	b := newBridge()
	sinks := b.sinks()

	// Many updates while the program is busy collapse into one redraw.
	for i := 0; i < 10; i++ {
		sinks.Render(snake.Snapshot{})
		sinks.Score(i)
	}

	if _, ok := b.wait()().(frameMsg); !ok {
		t.Fatal("Expected a frame message")
	}
	if len(b.frames) != 0 {
		t.Errorf("Expected no pending frames, got %d", len(b.frames))
	}
}

func TestBridgeDeliversResultsFirst(t *testing.T) {
	b := newBridge()
	sinks := b.sinks()

	sinks.Finish(snake.Result{Score: 7, Outcome: snake.OutcomeLoss})

	msg, ok := b.wait()().(finishMsg)
	if !ok {
		t.Fatal("Expected a finish message before the frame")
	}
	if msg.Score != 7 {
		t.Errorf("Score = %d, expected 7", msg.Score)
	}
	if _, ok := b.wait()().(frameMsg); !ok {
		t.Error("Expected the pending frame after the result")
	}
}

func TestBridgeCloseReleasesWait(t *testing.T) {
	b := newBridge()
	done := make(chan any)
	go func() {
		done <- b.wait()()
	}()

	b.close()
	b.close() // Idempotent

	if msg := <-done; msg != nil {
		t.Errorf("Expected nil message after close, got %v", msg)
	}
}
