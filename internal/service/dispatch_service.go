package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/noabot/noabot-go/internal/client"
	"go.uber.org/zap"
)

// Transport 出站消息通道
type Transport interface {
	Send(ctx context.Context, to, text string) error
}

// dispatchRecord 单个收件人的发送记录
type dispatchRecord struct {
	mu         sync.Mutex // 串行化对同一收件人的发送
	lastSentAt time.Time  // 仅在发送成功后更新
}

// Dispatcher 出站派发服务。对同一收件人限速（距离上次成功发送不足
// 最小间隔时阻塞等待），收到限流响应时按提示退避并重试一次
type Dispatcher struct {
	transport Transport
	minGap    time.Duration
	retryMin  time.Duration
	retryMax  time.Duration
	records   map[string]*dispatchRecord
	mu        sync.Mutex
	logger    *zap.Logger
}

// NewDispatcher 创建派发服务
func NewDispatcher(transport Transport, minGap, retryMin, retryMax time.Duration, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		minGap:    minGap,
		retryMin:  retryMin,
		retryMax:  retryMax,
		records:   make(map[string]*dispatchRecord),
		logger:    logger,
	}
}

// Send 向收件人发送消息。限速等待只作用于该收件人，不阻塞其他发送
func (d *Dispatcher) Send(ctx context.Context, to, text string) error {
	rec := d.recordFor(to)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	// 距离上次成功发送不足最小间隔则等待补齐（延迟而不丢弃）
	if !rec.lastSentAt.IsZero() {
		if wait := d.minGap - time.Since(rec.lastSentAt); wait > 0 {
			d.logger.Debug("发送限速等待",
				zap.String("to", to),
				zap.Duration("wait", wait))
			if err := sleepCtx(ctx, wait); err != nil {
				return err
			}
		}
	}

	err := d.transport.Send(ctx, to, text)

	// 限流时按提示退避，只重试一次
	var rateErr *client.RateLimitedError
	if errors.As(err, &rateErr) {
		backoff := d.clampBackoff(rateErr.RetryAfter)
		d.logger.Warn("供应商限流，退避后重试",
			zap.String("to", to),
			zap.Duration("backoff", backoff))
		if err := sleepCtx(ctx, backoff); err != nil {
			return err
		}
		err = d.transport.Send(ctx, to, text)
	}

	if err != nil {
		d.logger.Error("消息发送失败",
			zap.String("to", to),
			zap.Error(err))
		return err
	}

	rec.lastSentAt = time.Now()
	d.logger.Info("消息发送成功", zap.String("to", to))
	return nil
}

// recordFor 获取或创建收件人的发送记录
func (d *Dispatcher) recordFor(to string) *dispatchRecord {
	d.mu.Lock()
	defer d.mu.Unlock()

	rec, ok := d.records[to]
	if !ok {
		rec = &dispatchRecord{}
		d.records[to] = rec
	}
	return rec
}

// clampBackoff 把供应商重试提示夹到 [retryMin, retryMax]
func (d *Dispatcher) clampBackoff(hint time.Duration) time.Duration {
	if hint < d.retryMin {
		return d.retryMin
	}
	if hint > d.retryMax {
		return d.retryMax
	}
	return hint
}

// sleepCtx 可取消的等待
func sleepCtx(ctx context.Context, dur time.Duration) error {
	timer := time.NewTimer(dur)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
