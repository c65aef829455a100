package line_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"personal-ai-partner/internal/chat"
	lineDelivery "personal-ai-partner/internal/chat/delivery/line"
	pkgLine "personal-ai-partner/pkg/line"
	"personal-ai-partner/pkg/log"
)

const testSecret = "test-channel-secret"

type stubUseCase struct {
	mu       sync.Mutex
	out      chat.ChatOutput
	err      error
	messages []string
}

func (s *stubUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	s.mu.Lock()
	s.messages = append(s.messages, input.Message)
	s.mu.Unlock()
	if s.err != nil {
		return chat.ChatOutput{}, s.err
	}
	return s.out, nil
}

func (s *stubUseCase) History(ctx context.Context, input chat.HistoryInput) (chat.HistoryOutput, error) {
	return chat.HistoryOutput{}, nil
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func webhookBody(t *testing.T, text string) []byte {
	t.Helper()
	body, err := json.Marshal(pkgLine.WebhookBody{
		Events: []pkgLine.Event{{
			Type:       "message",
			ReplyToken: "reply-token-1",
			Message:    &pkgLine.Message{ID: "m1", Type: "text", Text: text},
			Source:     &pkgLine.Source{Type: "user", UserID: "U123"},
		}},
	})
	if err != nil {
		t.Fatalf("marshal webhook: %v", err)
	}
	return body
}

type replyCapture struct {
	mu      sync.Mutex
	replies []string
}

func newReplyServer(t *testing.T, capture *replyCapture) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ReplyToken string `json:"replyToken"`
			Messages   []struct {
				Text string `json:"text"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		capture.mu.Lock()
		for _, m := range req.Messages {
			capture.replies = append(capture.replies, m.Text)
		}
		capture.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newWebhookRouter(uc chat.UseCase, bot *pkgLine.Bot) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := lineDelivery.New(log.NewNop(), uc, bot, testSecret)
	r.POST("/webhook/line", h.HandleWebhook)
	return r
}

func post(r *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/line", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Line-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHandleWebhook(t *testing.T) {
	t.Run("Valid Signature Replies With Completion", func(t *testing.T) {
		capture := &replyCapture{}
		srv := newReplyServer(t, capture)

		bot := pkgLine.NewBot("token")
		bot.SetAPIURL(srv.URL)

		uc := &stubUseCase{out: chat.ChatOutput{Reply: "こんにちは！"}}
		r := newWebhookRouter(uc, bot)

		body := webhookBody(t, "こんにちは")
		w := post(r, body, sign(body))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 ack, got %d: %s", w.Code, w.Body.String())
		}

		waitFor(t, func() bool {
			capture.mu.Lock()
			defer capture.mu.Unlock()
			return len(capture.replies) == 1
		})
		if capture.replies[0] != "こんにちは！" {
			t.Fatalf("unexpected reply: %q", capture.replies[0])
		}
	})

	t.Run("Invalid Signature Rejected", func(t *testing.T) {
		uc := &stubUseCase{}
		r := newWebhookRouter(uc, pkgLine.NewBot("token"))

		body := webhookBody(t, "hello")
		w := post(r, body, "bm90LXRoZS1zaWduYXR1cmU=")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}

		time.Sleep(50 * time.Millisecond)
		uc.mu.Lock()
		defer uc.mu.Unlock()
		if len(uc.messages) != 0 {
			t.Fatalf("events should not be processed on bad signature: %v", uc.messages)
		}
	})

	t.Run("Completion Failure Sends Apology", func(t *testing.T) {
		capture := &replyCapture{}
		srv := newReplyServer(t, capture)

		bot := pkgLine.NewBot("token")
		bot.SetAPIURL(srv.URL)

		uc := &stubUseCase{err: context.DeadlineExceeded}
		r := newWebhookRouter(uc, bot)

		body := webhookBody(t, "hi")
		w := post(r, body, sign(body))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 ack, got %d", w.Code)
		}

		waitFor(t, func() bool {
			capture.mu.Lock()
			defer capture.mu.Unlock()
			return len(capture.replies) == 1
		})
		if !strings.Contains(capture.replies[0], "エラー") {
			t.Fatalf("expected apology reply, got %q", capture.replies[0])
		}
	})

	t.Run("Non Text Events Ignored", func(t *testing.T) {
		uc := &stubUseCase{}
		r := newWebhookRouter(uc, pkgLine.NewBot("token"))

		body, _ := json.Marshal(pkgLine.WebhookBody{
			Events: []pkgLine.Event{{Type: "follow", ReplyToken: "rt"}},
		})
		w := post(r, body, sign(body))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 ack, got %d", w.Code)
		}

		time.Sleep(50 * time.Millisecond)
		uc.mu.Lock()
		defer uc.mu.Unlock()
		if len(uc.messages) != 0 {
			t.Fatalf("non-text events should be ignored: %v", uc.messages)
		}
	})
}
