package practice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/kolearn/kolearn/internal/auth"
	"github.com/kolearn/kolearn/internal/tutor"
)

// Frame is a WebSocket message in either direction.
type Frame struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Handler upgrades requests on the practice endpoint to WebSocket sessions.
// Partner type, topic, and level come from query parameters; level defaults
// to the authenticated user's Korean level.
func (e *Engine) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := auth.UserFrom(r.Context())

		persona := tutor.Persona(r.URL.Query().Get("partnerType"))
		if persona == "" {
			persona = tutor.PersonaFriend
		}
		if !persona.Valid() {
			http.Error(w, "unknown partner type", http.StatusBadRequest)
			return
		}

		topic := r.URL.Query().Get("topic")
		if topic == "" {
			topic = "일상 생활"
		}

		level := claims.KoreanLevel
		if raw := r.URL.Query().Get("level"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				level = parsed
			}
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			slog.Warn("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		session := Session{
			ID:      "practice-" + uuid.NewString(),
			UserID:  auth.UserIDFrom(r.Context()),
			Persona: persona,
			Level:   level,
			Topic:   topic,
		}
		slog.Info("practice session started",
			"session_id", session.ID,
			"user_id", session.UserID,
			"persona", persona,
			"topic", topic,
		)

		ctx := r.Context()
		e.serve(ctx, conn, session)
	})
}

func (e *Engine) serve(ctx context.Context, conn *websocket.Conn, session Session) {
	opener, err := e.Open(ctx, session)
	if err != nil {
		conn.Close(websocket.StatusInternalError, "could not open session")
		return
	}
	if err := wsjson.Write(ctx, conn, Frame{Role: "assistant", Content: opener}); err != nil {
		return
	}

	for {
		var frame Frame
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			var closeErr websocket.CloseError
			if errors.As(err, &closeErr) || errors.Is(err, context.Canceled) {
				slog.Info("practice session ended", "session_id", session.ID)
			} else {
				slog.Warn("websocket read failed", "session_id", session.ID, "error", err)
			}
			return
		}
		if frame.Content == "" {
			continue
		}

		reply, err := e.Reply(ctx, session, frame.Content)
		if err != nil {
			slog.Warn("practice reply failed", "session_id", session.ID, "error", err)
			continue
		}
		if err := wsjson.Write(ctx, conn, Frame{Role: "assistant", Content: reply}); err != nil {
			return
		}
	}
}
