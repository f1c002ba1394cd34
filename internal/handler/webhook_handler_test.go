package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noabot/noabot-go/internal/classifier"
	"github.com/noabot/noabot-go/internal/service"
	"github.com/noabot/noabot-go/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// dropTransport 丢弃一切出站消息的假通道
type dropTransport struct{}

func (dropTransport) Send(context.Context, string, string) error { return nil }

// fixedPredictor 固定意图
type fixedPredictor struct{ label string }

func (p fixedPredictor) Classify(string) (string, float64) { return p.label, 0.9 }

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	nop := zap.NewNop()

	dedup := service.NewDeduplicator(100, nop)
	dialog := service.NewDialogService(store.NewMemorySessionStore(),
		fixedPredictor{label: classifier.IntentSaludo}, "Noa Asistente", "", nop)
	dispatcher := service.NewDispatcher(dropTransport{}, time.Millisecond, time.Millisecond, time.Millisecond, nop)
	router := service.NewRouterService(dedup, dialog, dispatcher, nop)

	h := NewWebhookHandler(router, nop)
	r := gin.New()
	r.POST("/webhook", h.Handle)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookAlwaysAcks(t *testing.T) {
	r := newTestEngine()

	// 正常事件
	w := postJSON(r, "/webhook", `{"from": "506111", "text": "hola"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"ok":true`)

	// 无发送者
	w = postJSON(r, "/webhook", `{"foo": "bar"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "no message")

	// 连 JSON 都不是
	w = postJSON(r, "/webhook", `not-json{{`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "bad payload")
}
