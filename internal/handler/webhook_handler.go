package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/noabot/noabot-go/internal/service"
	"go.uber.org/zap"
)

// WebhookHandler Webhook 处理器。无论处理结果如何都应答 200，
// 避免上游供应商对同一事件无限重投
type WebhookHandler struct {
	router *service.RouterService
	logger *zap.Logger
}

// NewWebhookHandler 创建 Webhook 处理器
func NewWebhookHandler(router *service.RouterService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		router: router,
		logger: logger,
	}
}

// Handle 入站事件入口
func (h *WebhookHandler) Handle(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		// 坏载荷也确认，只留日志
		h.logger.Warn("载荷解析失败", zap.Error(err))
		c.JSON(200, gin.H{"ok": true, "note": "bad payload"})
		return
	}

	result := h.router.Process(c.Request.Context(), payload)

	if result.Note != "" {
		c.JSON(200, gin.H{"ok": true, "note": result.Note})
		return
	}
	c.JSON(200, gin.H{"ok": true})
}
