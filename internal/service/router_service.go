package service

import (
	"context"

	"github.com/noabot/noabot-go/internal/model"
	"github.com/noabot/noabot-go/internal/normalizer"
	"go.uber.org/zap"
)

// ProcessResult 一次入站事件的处理结果
type ProcessResult struct {
	Note  string // 丢弃原因，空表示正常处理
	Reply string // 已派发的回复文本，空表示无回复
}

// RouterService 入站事件路由。串起规范化、去重、对话引擎和派发，
// 处理过程中的任何错误都只记录日志，不向上游供应商报失败
type RouterService struct {
	dedup      *Deduplicator
	dialog     *DialogService
	dispatcher *Dispatcher
	logger     *zap.Logger
}

// NewRouterService 创建路由服务
func NewRouterService(dedup *Deduplicator, dialog *DialogService, dispatcher *Dispatcher, logger *zap.Logger) *RouterService {
	return &RouterService{
		dedup:      dedup,
		dialog:     dialog,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Process 处理一个 Webhook 载荷。规范化、去重和对话同步执行，
// 出站派发异步进行（限速等待不占用请求路径）
func (s *RouterService) Process(ctx context.Context, payload map[string]interface{}) ProcessResult {
	msg := normalizer.Normalize(payload)
	if msg == nil {
		s.logger.Warn("载荷中无可用消息")
		return ProcessResult{Note: "no message"}
	}

	if s.dedup.SeenOrRecord(msg.MessageID) {
		s.logger.Info("重复消息已丢弃",
			zap.String("sender", msg.SenderID),
			zap.String("messageId", msg.MessageID))
		return ProcessResult{Note: "duplicate"}
	}

	reply, err := s.dialog.HandleTurn(ctx, msg)
	if err != nil {
		s.logger.Error("对话回合处理失败",
			zap.String("sender", msg.SenderID),
			zap.Error(err))
		return ProcessResult{Note: "error"}
	}

	if reply != "" {
		s.dispatch(msg.SenderID, reply)
	}
	return ProcessResult{Reply: reply}
}

// HandleDirect 同步处理一条已规范化的消息并返回回复，
// 不经过派发通道（开发控制台使用）
func (s *RouterService) HandleDirect(ctx context.Context, msg *model.InboundMessage) (string, error) {
	return s.dialog.HandleTurn(ctx, msg)
}

// dispatch 异步派发回复，失败只记录日志
func (s *RouterService) dispatch(to, text string) {
	go func() {
		if err := s.dispatcher.Send(context.Background(), to, text); err != nil {
			s.logger.Error("回复派发失败",
				zap.String("to", to),
				zap.Error(err))
		}
	}()
}
