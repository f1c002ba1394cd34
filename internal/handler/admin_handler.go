package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/noabot/noabot-go/internal/classifier"
	"github.com/noabot/noabot-go/internal/model"
	"github.com/noabot/noabot-go/internal/service"
	"github.com/noabot/noabot-go/internal/store"
	"go.uber.org/zap"
)

// AdminHandler 管理接口处理器（提交样本、触发重训）
type AdminHandler struct {
	samples store.SampleStore
	trainer *service.TrainerService
	logger  *zap.Logger
}

// NewAdminHandler 创建管理接口处理器
func NewAdminHandler(samples store.SampleStore, trainer *service.TrainerService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		samples: samples,
		trainer: trainer,
		logger:  logger,
	}
}

// SubmitSample 提交标注样本
func (h *AdminHandler) SubmitSample(c *gin.Context) {
	var req model.SampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}

	if req.Text == "" {
		c.JSON(400, gin.H{"error": "text 不能为空"})
		return
	}
	if !classifier.IsKnownLabel(req.Label) {
		c.JSON(400, gin.H{"error": "未知标签: " + req.Label})
		return
	}

	if err := h.samples.Append(c.Request.Context(), req.Text, req.Label); err != nil {
		h.logger.Error("追加样本失败", zap.Error(err))
		c.JSON(500, gin.H{"error": "追加样本失败"})
		return
	}

	h.logger.Info("收到标注样本",
		zap.String("label", req.Label),
		zap.Int("length", len(req.Text)))

	c.JSON(200, gin.H{"success": true})
}

// Retrain 触发全量重训
func (h *AdminHandler) Retrain(c *gin.Context) {
	seedCount, sampleCount, err := h.trainer.Retrain(c.Request.Context())
	if err != nil {
		h.logger.Error("重训失败", zap.Error(err))
		c.JSON(500, gin.H{"error": "重训失败"})
		return
	}

	c.JSON(200, model.RetrainResponse{
		Success:     true,
		SeedCount:   seedCount,
		SampleCount: sampleCount,
	})
}
