// Package practice runs live conversation practice sessions over WebSocket,
// backed by the tutoring conversation partner.
package practice

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kolearn/kolearn/internal/ai"
)

const (
	// historyLimit caps the turns kept per session so long sessions do not
	// grow the prompt without bound.
	historyLimit = 40

	historyTTL = 24 * time.Hour
)

// HistoryStore keeps the turn history of practice sessions.
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, msg ai.Message) error
	History(ctx context.Context, sessionID string) ([]ai.Message, error)
}

// MemoryHistory is an in-memory HistoryStore.
type MemoryHistory struct {
	mu       sync.RWMutex
	sessions map[string][]ai.Message
}

// NewMemoryHistory creates an empty in-memory history store.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{sessions: make(map[string][]ai.Message)}
}

func (h *MemoryHistory) Append(ctx context.Context, sessionID string, msg ai.Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	msgs := append(h.sessions[sessionID], msg)
	if len(msgs) > historyLimit {
		msgs = msgs[len(msgs)-historyLimit:]
	}
	h.sessions[sessionID] = msgs
	return nil
}

func (h *MemoryHistory) History(ctx context.Context, sessionID string) ([]ai.Message, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	msgs := h.sessions[sessionID]
	out := make([]ai.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// RedisHistory stores session history in Redis lists with a 24h TTL, so
// sessions survive server restarts but stale ones age out on their own.
type RedisHistory struct {
	client *redis.Client
}

// NewRedisHistory creates a Redis-backed history store.
func NewRedisHistory(client *redis.Client) *RedisHistory {
	return &RedisHistory{client: client}
}

func historyKey(sessionID string) string {
	return "practice:history:" + sessionID
}

func (h *RedisHistory) Append(ctx context.Context, sessionID string, msg ai.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	key := historyKey(sessionID)
	pipe := h.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -historyLimit, -1)
	pipe.Expire(ctx, key, historyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (h *RedisHistory) History(ctx context.Context, sessionID string) ([]ai.Message, error) {
	raw, err := h.client.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	msgs := make([]ai.Message, 0, len(raw))
	for _, item := range raw {
		var msg ai.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("unmarshal message: %w", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
