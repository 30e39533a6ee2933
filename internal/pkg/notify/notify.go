// Package notify carries user-facing toast messages from usecases to whoever
// renders them. Handlers attach a Recorder to the request context and return
// its messages alongside the response body.
package notify

import (
	"context"
	"log/slog"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

type Message struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

type Sink interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
	Info(ctx context.Context, msg string)
}

type ctxKey struct{}

func WithRecorder(ctx context.Context, r *Recorder) context.Context {
	return context.WithValue(ctx, ctxKey{}, r)
}

func RecorderFrom(ctx context.Context) (*Recorder, bool) {
	r, ok := ctx.Value(ctxKey{}).(*Recorder)
	return r, ok
}

// MessagesFrom returns the messages recorded on ctx so far, never nil.
func MessagesFrom(ctx context.Context) []Message {
	if r, ok := RecorderFrom(ctx); ok {
		return r.Messages()
	}
	return []Message{}
}

// Recorder collects messages for a single request.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{Level: level, Message: msg})
}

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// ContextSink logs every message and, when the context carries a Recorder,
// records it there as well.
type ContextSink struct {
	logger *slog.Logger
}

func NewContextSink(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContextSink{logger: logger}
}

func (s *ContextSink) Success(ctx context.Context, msg string) {
	s.emit(ctx, LevelSuccess, slog.LevelInfo, msg)
}

func (s *ContextSink) Error(ctx context.Context, msg string) {
	s.emit(ctx, LevelError, slog.LevelWarn, msg)
}

func (s *ContextSink) Info(ctx context.Context, msg string) {
	s.emit(ctx, LevelInfo, slog.LevelInfo, msg)
}

func (s *ContextSink) emit(ctx context.Context, level Level, logLevel slog.Level, msg string) {
	s.logger.Log(ctx, logLevel, "notification", "level", string(level), "message", msg)
	if r, ok := RecorderFrom(ctx); ok {
		r.add(level, msg)
	}
}
