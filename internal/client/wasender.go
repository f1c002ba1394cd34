package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RateLimitedError 供应商限流响应（429），可携带重试提示
type RateLimitedError struct {
	RetryAfter time.Duration // 供应商建议的等待时间，0 表示未提供
}

// Error 实现 error 接口
func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("供应商限流，建议等待 %s", e.RetryAfter)
}

// WasenderClient Wasender 发送接口客户端
type WasenderClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewWasenderClient 创建 Wasender 客户端
func NewWasenderClient(baseURL, token string, logger *zap.Logger) *WasenderClient {
	return &WasenderClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// sendRequest 发送请求体
type sendRequest struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// rateLimitBody 限流响应体中的重试提示
type rateLimitBody struct {
	RetryAfter float64 `json:"retry_after"`
}

// Send 调用发送接口。2xx 视为成功，429 返回 RateLimitedError
func (c *WasenderClient) Send(ctx context.Context, to, text string) error {
	jsonData, err := json.Marshal(sendRequest{To: to, Text: text})
	if err != nil {
		return fmt.Errorf("序列化请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Debug("消息发送成功",
			zap.String("to", to),
			zap.Int("status", resp.StatusCode))
		return nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		var hint rateLimitBody
		_ = json.Unmarshal(body, &hint)
		return &RateLimitedError{
			RetryAfter: time.Duration(hint.RetryAfter * float64(time.Second)),
		}
	}

	return fmt.Errorf("API 返回错误: %d, body: %s", resp.StatusCode, string(body))
}
