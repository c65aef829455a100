package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"personal-ai-partner/config"
	"personal-ai-partner/pkg/log"
)

func newMiddleware(perMin int) Middleware {
	cfg := &config.Config{}
	cfg.RateLimit.PerMin = perMin
	return New(log.NewNop(), cfg)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := newMiddleware(60)
	r.Use(mw.CORS())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	t.Run("Sets Headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("expected wildcard origin, got %q", got)
		}
	})

	t.Run("Preflight Short Circuits", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ping", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204 for preflight, got %d", w.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Allows Within Limit", func(t *testing.T) {
		r := gin.New()
		mw := newMiddleware(600)
		r.POST("/chat", mw.RateLimit(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Rejects Beyond Burst", func(t *testing.T) {
		r := gin.New()
		mw := newMiddleware(10)
		r.POST("/chat", mw.RateLimit(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

		var last int
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat", nil))
			last = w.Code
			if last == http.StatusTooManyRequests {
				break
			}
		}
		if last != http.StatusTooManyRequests {
			t.Fatalf("expected 429 after burst exhausted, got %d", last)
		}
	})
}
