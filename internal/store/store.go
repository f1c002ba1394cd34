// Package store 提供会话与标注样本的持久化接口及内存/Redis 两种实现。
package store

import (
	"context"

	"github.com/noabot/noabot-go/internal/model"
)

// SessionStore 会话存储。Get 未命中时返回 (nil, nil)
type SessionStore interface {
	Get(ctx context.Context, senderID string) (*model.DialogSession, error)
	Put(ctx context.Context, session *model.DialogSession) error
	Delete(ctx context.Context, senderID string) error
}

// SampleStore 标注样本存储（只追加）
type SampleStore interface {
	Append(ctx context.Context, text, label string) error
	All(ctx context.Context) ([]model.IntentExample, error)
}
