package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RoundSettings are the span attributes describing a round's grid.
type RoundSettings struct {
	Rows         int
	Cols         int
	Speed        int
	WinFoodCount int
}

// Round is the span covering a single round, from reset to finish.
// A nil *Round is valid and does nothing.
type Round struct {
	span trace.Span
}

// StartRound opens a "snake.round" span.
func StartRound(ctx context.Context, tracer trace.Tracer, player string, s RoundSettings) *Round {
	_, span := tracer.Start(ctx, "snake.round",
		trace.WithAttributes(
			attribute.String("player", player),
			attribute.Int("grid.rows", s.Rows),
			attribute.Int("grid.cols", s.Cols),
			attribute.Int("speed", s.Speed),
			attribute.Int("win_food_count", s.WinFoodCount),
		),
	)
	return &Round{span: span}
}

// Event records a point-in-time event on the round, such as a pause.
func (r *Round) Event(name string, attrs ...attribute.KeyValue) {
	if r == nil {
		return
	}
	r.span.AddEvent(name, trace.WithAttributes(attrs...))
}

// Finish closes the span with the round's result.
func (r *Round) Finish(outcome string, score, length int, ticks uint64) {
	if r == nil {
		return
	}
	r.span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("score", score),
		attribute.Int("length", length),
		attribute.Int64("ticks", int64(ticks)),
	)
	r.span.SetStatus(codes.Ok, "")
	r.span.End()
}

// Abandon closes the span of a round that was reset or quit before it
// finished.
func (r *Round) Abandon(score int) {
	if r == nil {
		return
	}
	r.span.SetAttributes(
		attribute.String("outcome", "abandoned"),
		attribute.Int("score", score),
	)
	r.span.End()
}
