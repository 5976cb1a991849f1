package practice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kolearn/kolearn/internal/ai"
	"github.com/kolearn/kolearn/internal/tutor"
)

// fallbackReply is sent in-band when the conversation partner cannot answer.
// The session keeps going rather than erroring out mid-conversation.
const fallbackReply = "안녕하세요! 오늘 어떤 주제로 대화해볼까요?"

// Session identifies one practice conversation.
type Session struct {
	ID      string
	UserID  string
	Persona tutor.Persona
	Level   int
	Topic   string
}

// Engine drives practice sessions: it records turns and asks the tutor for
// the partner's replies.
type Engine struct {
	tutor   *tutor.Tutor
	history HistoryStore
}

// NewEngine creates a practice engine. A nil history store falls back to
// in-memory.
func NewEngine(t *tutor.Tutor, history HistoryStore) (*Engine, error) {
	if t == nil {
		return nil, fmt.Errorf("tutor is required")
	}
	if history == nil {
		history = NewMemoryHistory()
	}
	return &Engine{tutor: t, history: history}, nil
}

// Open produces the partner's opening line for a new session.
func (e *Engine) Open(ctx context.Context, s Session) (string, error) {
	reply, err := e.tutor.PartnerReply(ctx, s.UserID, s.Persona, s.Level, s.Topic, nil)
	if err != nil {
		slog.Error("partner opener failed", "session_id", s.ID, "error", err)
		reply = fallbackReply
	}

	if err := e.history.Append(ctx, s.ID, ai.Message{Role: "assistant", Content: reply}); err != nil {
		slog.Warn("failed to record opener", "session_id", s.ID, "error", err)
	}
	return reply, nil
}

// Reply records the learner's turn and returns the partner's response. A
// provider failure degrades to the fallback line instead of ending the
// session.
func (e *Engine) Reply(ctx context.Context, s Session, text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("message text is empty")
	}

	if err := e.history.Append(ctx, s.ID, ai.Message{Role: "user", Content: text}); err != nil {
		slog.Warn("failed to record user turn", "session_id", s.ID, "error", err)
	}

	history, err := e.history.History(ctx, s.ID)
	if err != nil {
		slog.Warn("failed to load history", "session_id", s.ID, "error", err)
		history = []ai.Message{{Role: "user", Content: text}}
	}

	reply, err := e.tutor.PartnerReply(ctx, s.UserID, s.Persona, s.Level, s.Topic, history)
	if err != nil {
		slog.Error("partner reply failed", "session_id", s.ID, "error", err)
		reply = fallbackReply
	}

	if err := e.history.Append(ctx, s.ID, ai.Message{Role: "assistant", Content: reply}); err != nil {
		slog.Warn("failed to record partner turn", "session_id", s.ID, "error", err)
	}
	return reply, nil
}
