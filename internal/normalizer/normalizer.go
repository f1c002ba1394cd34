// Package normalizer 将供应商 Webhook 载荷解析为规范化入站消息。
// 按优先级依次尝试一组完备的形状匹配器，全部不命中则视为无消息。
package normalizer

import (
	"strings"
	"time"

	"github.com/noabot/noabot-go/internal/model"
)

// matcher 形状匹配器：ok 表示载荷命中该形状；命中但 msg 为 nil 表示应丢弃
// （自发回显、缺少发送者等）
type matcher func(payload map[string]interface{}) (msg *model.InboundMessage, ok bool)

// matchers 按优先级排列，嵌套事件形状优先于扁平形状
var matchers = []matcher{
	matchProviderEvent,
	matchFlat,
}

// Normalize 解析载荷，无法提取时返回 nil
func Normalize(payload map[string]interface{}) *model.InboundMessage {
	for _, m := range matchers {
		if msg, ok := m(payload); ok {
			return msg
		}
	}
	return nil
}

// matchProviderEvent 嵌套事件形状（messages.upsert 信封）
func matchProviderEvent(payload map[string]interface{}) (*model.InboundMessage, bool) {
	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		return nil, false
	}

	// messages 可能是单个对象或列表（取第一个）
	var msgObj map[string]interface{}
	switch v := data["messages"].(type) {
	case map[string]interface{}:
		msgObj = v
	case []interface{}:
		if len(v) == 0 {
			return nil, true
		}
		msgObj, ok = v[0].(map[string]interface{})
		if !ok {
			return nil, true
		}
	default:
		return nil, false
	}

	key, ok := msgObj["key"].(map[string]interface{})
	if !ok {
		return nil, true
	}

	// 机器人自己发出的回显直接丢弃
	if fromMe, _ := key["fromMe"].(bool); fromMe {
		return nil, true
	}

	sender := NormalizeSender(stringField(key, "remoteJid"))
	if sender == "" {
		return nil, true
	}

	text := extractBody(msgObj["message"])

	return &model.InboundMessage{
		SenderID:   sender,
		Text:       NormalizeText(text),
		MessageID:  stringField(key, "id"),
		ReceivedAt: time.Now(),
	}, true
}

// extractBody 从消息块中提取正文（纯文本、扩展文本或媒体说明）
func extractBody(v interface{}) string {
	message, ok := v.(map[string]interface{})
	if !ok {
		return ""
	}

	if s := stringField(message, "conversation"); s != "" {
		return s
	}
	if ext, ok := message["extendedTextMessage"].(map[string]interface{}); ok {
		if s := stringField(ext, "text"); s != "" {
			return s
		}
	}
	for _, k := range []string{"imageMessage", "videoMessage"} {
		if media, ok := message[k].(map[string]interface{}); ok {
			if s := stringField(media, "caption"); s != "" {
				return s
			}
		}
	}
	return ""
}

// flatSenderKeys 扁平形状下可能承载发送者的键
var flatSenderKeys = []string{"from", "jid", "phone", "waId", "waid"}

// flatTextKeys 扁平形状下可能承载正文的键
var flatTextKeys = []string{"text", "message", "body", "content"}

// matchFlat 扁平形状（发送者与正文直接挂在顶层备选键下）
func matchFlat(payload map[string]interface{}) (*model.InboundMessage, bool) {
	var sender string
	for _, k := range flatSenderKeys {
		if s := stringField(payload, k); s != "" {
			sender = s
			break
		}
	}
	// 嵌套 sender 对象兜底
	if sender == "" {
		if snd, ok := payload["sender"].(map[string]interface{}); ok {
			sender = stringField(snd, "id")
			if sender == "" {
				sender = stringField(snd, "phone")
			}
		}
	}
	if sender == "" {
		return nil, false
	}

	var text string
	for _, k := range flatTextKeys {
		switch v := payload[k].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				text = v
			}
		case map[string]interface{}:
			// 一层嵌套的 body/text 子字段
			if s := stringField(v, "body"); s != "" {
				text = s
			} else if s := stringField(v, "text"); s != "" {
				text = s
			}
		}
		if text != "" {
			break
		}
	}

	return &model.InboundMessage{
		SenderID:   NormalizeSender(sender),
		Text:       NormalizeText(text),
		MessageID:  stringField(payload, "id"),
		ReceivedAt: time.Now(),
	}, true
}

// NormalizeSender 去掉 @ 之后的传输后缀，再去掉空格和连字符
func NormalizeSender(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.Index(s, "@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// quoteReplacer 把弯引号归一为直引号
var quoteReplacer = strings.NewReplacer(
	"‘", "'", "’", "'",
	"“", `"`, "”", `"`,
)

// NormalizeText 去掉首尾空白并归一引号
func NormalizeText(raw string) string {
	return quoteReplacer.Replace(strings.TrimSpace(raw))
}

// stringField 读取非空字符串字段
func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}
