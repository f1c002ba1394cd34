package normalizer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// parsePayload 把 JSON 文本解析成通用载荷
func parsePayload(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestNormalizeProviderEvent(t *testing.T) {
	payload := parsePayload(t, `{
		"event": "messages.upsert",
		"data": {
			"messages": {
				"key": {"remoteJid": "50688887777@s.whatsapp.net", "id": "abc1", "fromMe": false},
				"message": {"conversation": "hola"}
			}
		}
	}`)

	msg := Normalize(payload)
	require.NotNil(t, msg)
	require.Equal(t, "50688887777", msg.SenderID)
	require.Equal(t, "hola", msg.Text)
	require.Equal(t, "abc1", msg.MessageID)
}

func TestNormalizeProviderEventList(t *testing.T) {
	payload := parsePayload(t, `{
		"data": {
			"messages": [{
				"key": {"remoteJid": "123@s.whatsapp.net", "id": "m1"},
				"message": {"extendedTextMessage": {"text": "buenas"}}
			}]
		}
	}`)

	msg := Normalize(payload)
	require.NotNil(t, msg)
	require.Equal(t, "123", msg.SenderID)
	require.Equal(t, "buenas", msg.Text)
}

func TestNormalizeMediaCaption(t *testing.T) {
	payload := parsePayload(t, `{
		"data": {
			"messages": {
				"key": {"remoteJid": "123@x", "id": "m2"},
				"message": {"imageMessage": {"caption": "mirá esto"}}
			}
		}
	}`)

	msg := Normalize(payload)
	require.NotNil(t, msg)
	require.Equal(t, "mirá esto", msg.Text)
}

func TestNormalizeDropsFromMe(t *testing.T) {
	payload := parsePayload(t, `{
		"data": {
			"messages": {
				"key": {"remoteJid": "50688887777@s.whatsapp.net", "id": "abc1", "fromMe": true},
				"message": {"conversation": "hola"}
			}
		}
	}`)

	require.Nil(t, Normalize(payload))
}

func TestNormalizeFlatShapes(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantSender string
		wantText   string
	}{
		{
			name:       "from y text directos",
			raw:        `{"from": "506 8888-7777@s.whatsapp.net", "text": "hola"}`,
			wantSender: "50688887777",
			wantText:   "hola",
		},
		{
			name:       "message con body anidado",
			raw:        `{"phone": "123", "message": {"body": "qué tal"}}`,
			wantSender: "123",
			wantText:   "qué tal",
		},
		{
			name:       "sender objeto anidado",
			raw:        `{"sender": {"id": "99"}, "content": "precio del seguro"}`,
			wantSender: "99",
			wantText:   "precio del seguro",
		},
		{
			name:       "waId y body",
			raw:        `{"waId": "777", "body": "  agenda  "}`,
			wantSender: "777",
			wantText:   "agenda",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Normalize(parsePayload(t, tt.raw))
			require.NotNil(t, msg)
			require.Equal(t, tt.wantSender, msg.SenderID)
			require.Equal(t, tt.wantText, msg.Text)
		})
	}
}

func TestNormalizeMalformed(t *testing.T) {
	require.Nil(t, Normalize(parsePayload(t, `{"foo": "bar"}`)))
	require.Nil(t, Normalize(map[string]interface{}{}))
	require.Nil(t, Normalize(parsePayload(t, `{"data": {"messages": {"message": {"conversation": "sin key"}}}}`)))
}

func TestNormalizeText(t *testing.T) {
	require.Equal(t, `"hola"`, NormalizeText("  “hola”  "))
	require.Equal(t, "it's ok", NormalizeText("it’s ok"))
}

func TestNormalizeSender(t *testing.T) {
	require.Equal(t, "50688887777", NormalizeSender(" 506 8888-7777@s.whatsapp.net "))
	require.Equal(t, "+50611112222", NormalizeSender("+506 1111-2222"))
}
