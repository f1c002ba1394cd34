package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/noabot/noabot-go/internal/classifier"
	"github.com/noabot/noabot-go/internal/middleware"
	"github.com/noabot/noabot-go/internal/service"
	"github.com/noabot/noabot-go/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "super-secreto"

func newAdminEngine(samples store.SampleStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	nop := zap.NewNop()

	cls := classifier.NewClassifier(0.55, nop)
	trainer := service.NewTrainerService(samples, cls, nop)
	h := NewAdminHandler(samples, trainer, nop)

	r := gin.New()
	admin := r.Group("/api/admin", middleware.AdminAuth(testSecret))
	admin.POST("/samples", h.SubmitSample)
	admin.POST("/retrain", h.Retrain)
	return r
}

func adminRequest(r *gin.Engine, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRejectsWithoutSecret(t *testing.T) {
	samples := store.NewMemorySampleStore()
	r := newAdminEngine(samples)

	w := adminRequest(r, "/api/admin/samples", `{"text": "hola", "label": "saludo"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = adminRequest(r, "/api/admin/samples", `{"text": "hola", "label": "saludo"}`, "equivocado")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// 拒绝时没有副作用
	all, err := samples.All(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestAdminSubmitSample(t *testing.T) {
	samples := store.NewMemorySampleStore()
	r := newAdminEngine(samples)

	w := adminRequest(r, "/api/admin/samples", `{"text": "quiero asegurar la moto", "label": "seguro.vehiculo"}`, testSecret)
	require.Equal(t, http.StatusOK, w.Code)

	all, err := samples.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "seguro.vehiculo", all[0].Label)
}

func TestAdminRejectsUnknownLabel(t *testing.T) {
	samples := store.NewMemorySampleStore()
	r := newAdminEngine(samples)

	w := adminRequest(r, "/api/admin/samples", `{"text": "hola", "label": "no-existe"}`, testSecret)
	require.Equal(t, http.StatusBadRequest, w.Code)

	all, err := samples.All(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestAdminRetrain(t *testing.T) {
	samples := store.NewMemorySampleStore()
	require.NoError(t, samples.Append(context.Background(), "asegurá el camión", "seguro.vehiculo"))
	r := newAdminEngine(samples)

	w := adminRequest(r, "/api/admin/retrain", ``, testSecret)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"sampleCount":1`)
}
