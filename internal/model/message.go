package model

import "time"

// InboundMessage 规范化后的入站消息
type InboundMessage struct {
	SenderID   string    // 去掉传输后缀的发送者标识
	Text       string    // 清洗后的文本
	MessageID  string    // 供应商消息 ID，可能为空
	ReceivedAt time.Time // 收到时间
}

// IntentExample 标注样本（追加写，供再训练使用）
type IntentExample struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// SampleRequest 提交标注样本请求
type SampleRequest struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// RetrainResponse 再训练响应
type RetrainResponse struct {
	Success     bool `json:"success"`
	SeedCount   int  `json:"seedCount"`
	SampleCount int  `json:"sampleCount"`
}
