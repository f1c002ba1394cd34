package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/noabot/noabot-go/internal/model"
	"github.com/noabot/noabot-go/internal/service"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: 生产环境应该检查 Origin 白名单
		return true
	},
}

// ConsoleHandler 开发控制台处理器。通过 WebSocket 直接与对话引擎
// 交互，回复写回连接而不是走出站通道，方便无供应商环境下调试
type ConsoleHandler struct {
	router *service.RouterService
	logger *zap.Logger
}

// NewConsoleHandler 创建开发控制台处理器
func NewConsoleHandler(router *service.RouterService, logger *zap.Logger) *ConsoleHandler {
	return &ConsoleHandler{
		router: router,
		logger: logger,
	}
}

// consoleMessage 控制台消息帧
type consoleMessage struct {
	Text string `json:"text"`
}

// consoleReply 控制台回复帧
type consoleReply struct {
	Reply string `json:"reply"`
}

// Handle 控制台连接入口
func (h *ConsoleHandler) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket 升级失败", zap.Error(err))
		return
	}
	defer conn.Close()

	// 每条连接一个独立的伪发送者，互不串会话
	senderID := "console-" + uuid.New().String()

	h.logger.Info("控制台连接建立", zap.String("sender", senderID))

	for {
		var msg consoleMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("控制台读取错误", zap.Error(err))
			}
			break
		}

		reply, err := h.router.HandleDirect(c.Request.Context(), &model.InboundMessage{
			SenderID:   senderID,
			Text:       msg.Text,
			ReceivedAt: time.Now(),
		})
		if err != nil {
			h.logger.Error("控制台回合处理失败", zap.Error(err))
			reply = "⚠️ error interno"
		}

		if err := conn.WriteJSON(consoleReply{Reply: reply}); err != nil {
			h.logger.Error("控制台写入失败", zap.Error(err))
			break
		}
	}

	h.logger.Info("控制台连接断开", zap.String("sender", senderID))
}
