package store

import (
	"context"
	"sync"

	"github.com/noabot/noabot-go/internal/model"
)

// MemorySessionStore 内存会话存储
type MemorySessionStore struct {
	sessions map[string]*model.DialogSession
	mu       sync.RWMutex // 读写锁保护
}

// NewMemorySessionStore 创建内存会话存储
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*model.DialogSession),
	}
}

// Get 查询会话，未命中返回 nil
func (s *MemorySessionStore) Get(_ context.Context, senderID string) (*model.DialogSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[senderID]
	if !ok {
		return nil, nil
	}
	// 返回副本，避免调用方绕过 Put 修改存储内容
	copied := *session
	copied.Slots = make(map[string]string, len(session.Slots))
	for k, v := range session.Slots {
		copied.Slots[k] = v
	}
	return &copied, nil
}

// Put 写入会话
func (s *MemorySessionStore) Put(_ context.Context, session *model.DialogSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SenderID] = session
	return nil
}

// Delete 删除会话
func (s *MemorySessionStore) Delete(_ context.Context, senderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, senderID)
	return nil
}

// MemorySampleStore 内存样本存储
type MemorySampleStore struct {
	samples []model.IntentExample
	mu      sync.RWMutex
}

// NewMemorySampleStore 创建内存样本存储
func NewMemorySampleStore() *MemorySampleStore {
	return &MemorySampleStore{}
}

// Append 追加标注样本
func (s *MemorySampleStore) Append(_ context.Context, text, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = append(s.samples, model.IntentExample{Text: text, Label: label})
	return nil
}

// All 返回全部样本
func (s *MemorySampleStore) All(_ context.Context) ([]model.IntentExample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.IntentExample, len(s.samples))
	copy(out, s.samples)
	return out, nil
}
