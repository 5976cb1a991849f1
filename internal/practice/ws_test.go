package practice_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/kolearn/kolearn/internal/ai"
	"github.com/kolearn/kolearn/internal/practice"
)

func TestHandler_Conversation(t *testing.T) {
	partner := ai.NewMockProvider("안녕! 오늘 날씨 어때?")
	engine, _ := newTestEngine(t, partner)

	srv := httptest.NewServer(engine.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?partnerType=friend&topic=weather&level=2"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.CloseNow()

	// The partner opens the conversation.
	var opener practice.Frame
	if err := wsjson.Read(ctx, conn, &opener); err != nil {
		t.Fatalf("read opener: %v", err)
	}
	if opener.Role != "assistant" || opener.Content == "" {
		t.Errorf("opener = %+v", opener)
	}

	if err := wsjson.Write(ctx, conn, practice.Frame{Role: "user", Content: "날씨 좋아요"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var reply practice.Frame
	if err := wsjson.Read(ctx, conn, &reply); err != nil {
		t.Fatalf("read reply: %v", err)
	}
	if reply.Role != "assistant" {
		t.Errorf("reply role = %q", reply.Role)
	}
	if reply.Content != "안녕! 오늘 날씨 어때?" {
		t.Errorf("reply = %q", reply.Content)
	}

	// Query parameters reach the persona prompt.
	if partner.LastRequest == nil {
		t.Fatal("partner never called")
	}
	system := partner.LastRequest.Messages[0].Content
	if !strings.Contains(system, "weather") || !strings.Contains(system, "level 2") {
		t.Errorf("system prompt = %q", system)
	}

	conn.Close(websocket.StatusNormalClosure, "")
}

func TestHandler_UnknownPartnerType(t *testing.T) {
	engine, _ := newTestEngine(t, ai.NewMockProvider("x"))

	srv := httptest.NewServer(engine.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?partnerType=robot"
	if _, _, err := websocket.Dial(ctx, url, nil); err == nil {
		t.Error("Dial() with unknown partner type should fail the upgrade")
	}
}
