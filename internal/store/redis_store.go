package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/noabot/noabot-go/internal/model"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "dialog_session:"
	sampleListKey    = "intent_samples"

	// sessionTTL 会话兜底过期时间，防止弃用会话永久占用存储
	sessionTTL = 24 * time.Hour
)

// RedisSessionStore Redis 会话存储（JSON 值）
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore 创建 Redis 会话存储
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

// Get 查询会话，未命中返回 nil
func (s *RedisSessionStore) Get(ctx context.Context, senderID string) (*model.DialogSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+senderID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取会话失败: %w", err)
	}

	var session model.DialogSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("解析会话失败: %w", err)
	}
	return &session, nil
}

// Put 写入会话
func (s *RedisSessionStore) Put(ctx context.Context, session *model.DialogSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("序列化会话失败: %w", err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+session.SenderID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("写入会话失败: %w", err)
	}
	return nil
}

// Delete 删除会话
func (s *RedisSessionStore) Delete(ctx context.Context, senderID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+senderID).Err(); err != nil {
		return fmt.Errorf("删除会话失败: %w", err)
	}
	return nil
}

// RedisSampleStore Redis 样本存储（JSON 列表）
type RedisSampleStore struct {
	client *redis.Client
}

// NewRedisSampleStore 创建 Redis 样本存储
func NewRedisSampleStore(client *redis.Client) *RedisSampleStore {
	return &RedisSampleStore{client: client}
}

// Append 追加标注样本
func (s *RedisSampleStore) Append(ctx context.Context, text, label string) error {
	data, err := json.Marshal(model.IntentExample{Text: text, Label: label})
	if err != nil {
		return fmt.Errorf("序列化样本失败: %w", err)
	}

	if err := s.client.RPush(ctx, sampleListKey, data).Err(); err != nil {
		return fmt.Errorf("追加样本失败: %w", err)
	}
	return nil
}

// All 返回全部样本
func (s *RedisSampleStore) All(ctx context.Context) ([]model.IntentExample, error) {
	items, err := s.client.LRange(ctx, sampleListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("读取样本失败: %w", err)
	}

	samples := make([]model.IntentExample, 0, len(items))
	for _, item := range items {
		var ex model.IntentExample
		if err := json.Unmarshal([]byte(item), &ex); err != nil {
			return nil, fmt.Errorf("解析样本失败: %w", err)
		}
		samples = append(samples, ex)
	}
	return samples, nil
}
