package model

import "time"

// DialogSession 多轮对话会话（每个发送者至多一个）
type DialogSession struct {
	SenderID  string            `json:"senderId"`
	Intent    string            `json:"intent"`
	Step      int               `json:"step"`
	Slots     map[string]string `json:"slots"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// NewDialogSession 创建处于第一步的会话
func NewDialogSession(senderID, intent string) *DialogSession {
	return &DialogSession{
		SenderID:  senderID,
		Intent:    intent,
		Step:      1,
		Slots:     make(map[string]string),
		UpdatedAt: time.Now(),
	}
}

// SetSlot 写入槽位值
func (s *DialogSession) SetSlot(name, value string) {
	if s.Slots == nil {
		s.Slots = make(map[string]string)
	}
	s.Slots[name] = value
	s.UpdatedAt = time.Now()
}

// HasSlot 判断槽位是否已填
func (s *DialogSession) HasSlot(name string) bool {
	v, ok := s.Slots[name]
	return ok && v != ""
}

// HasSlots 判断一组槽位是否全部已填
func (s *DialogSession) HasSlots(names ...string) bool {
	for _, name := range names {
		if !s.HasSlot(name) {
			return false
		}
	}
	return true
}
