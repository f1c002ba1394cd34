package service

import (
	"fmt"

	"github.com/noabot/noabot-go/internal/classifier"
	"github.com/noabot/noabot-go/internal/extract"
	"github.com/noabot/noabot-go/internal/model"
)

// dialogStep 多轮流程中的一步：进入时的提问、槽位提取、完成判定
type dialogStep struct {
	prompt string
	fill   func(session *model.DialogSession, text string)
	ready  func(session *model.DialogSession) bool
}

// dialogFlow 多轮意图的完整流程
type dialogFlow struct {
	steps   []dialogStep
	summary func(session *model.DialogSession) string
}

// dialogFlows 多轮意图 -> 流程。会话打开后只走本意图的步骤，
// 不再重新分类
var dialogFlows = map[string]dialogFlow{
	classifier.IntentVehiculo: vehicleFlow(),
	classifier.IntentAgenda:   agendaFlow(),
}

// IsMultiTurn 判断标签是否为多轮意图
func IsMultiTurn(label string) bool {
	_, ok := dialogFlows[label]
	return ok
}

// vehicleFlow 车辆保险报价：先问年份/品牌/型号，再问价值和邮箱
func vehicleFlow() dialogFlow {
	return dialogFlow{
		steps: []dialogStep{
			{
				prompt: "🚗 ¡Con gusto te cotizo el seguro de tu vehículo! Decime el año, la marca y el modelo (ej: 2018 Toyota Corolla).",
				fill: func(session *model.DialogSession, text string) {
					v := extract.VehicleInfo(text)
					if v.Year != "" {
						session.SetSlot("anio", v.Year)
					}
					if v.Make != "" {
						session.SetSlot("marca", v.Make)
					}
					if v.Model != "" {
						session.SetSlot("modelo", v.Model)
					}
				},
				ready: func(session *model.DialogSession) bool {
					return session.HasSlots("anio", "marca", "modelo")
				},
			},
			{
				prompt: "📑 ¡Perfecto! Ahora decime el valor aproximado del vehículo y tu correo electrónico.",
				fill: func(session *model.DialogSession, text string) {
					if email := extract.Email(text); email != "" {
						session.SetSlot("correo", email)
					}
					// 先去掉邮箱再找金额，避免数字误匹配
					if amount := extract.Amount(stripEmail(text)); amount != "" {
						session.SetSlot("valor", amount)
					}
				},
				ready: func(session *model.DialogSession) bool {
					return session.HasSlots("valor", "correo")
				},
			},
		},
		summary: func(session *model.DialogSession) string {
			return fmt.Sprintf("✅ ¡Listo! Resumen de tu cotización:\n"+
				"• Año: %s\n• Marca: %s\n• Modelo: %s\n• Valor: %s\n• Correo: %s\n"+
				"Un agente te contacta pronto. 🙌",
				session.Slots["anio"], session.Slots["marca"], session.Slots["modelo"],
				session.Slots["valor"], session.Slots["correo"])
		},
	}
}

// agendaFlow 电话预约：需要人名和日期，开场消息带齐则一轮完成
func agendaFlow() dialogFlow {
	return dialogFlow{
		steps: []dialogStep{
			{
				prompt: "📞 ¿Te agendo una llamada? Decime con quién, día y hora (ej: con Ana el 15 de setiembre a las 9am).",
				fill: func(session *model.DialogSession, text string) {
					if person := extract.Person(text); person != "" {
						session.SetSlot("persona", person)
					}
					if d, ok := extract.DatePhrase(text); ok {
						session.SetSlot("fecha", fmt.Sprintf("%02d/%02d", d.Day, d.Month))
						if d.Hour > 0 {
							session.SetSlot("hora", fmt.Sprintf("%02d:%02d", d.Hour, d.Minute))
						}
					}
				},
				ready: func(session *model.DialogSession) bool {
					return session.HasSlots("persona", "fecha")
				},
			},
		},
		summary: func(session *model.DialogSession) string {
			reply := fmt.Sprintf("📞 ¡Listo! Te agendo con %s el %s",
				session.Slots["persona"], session.Slots["fecha"])
			if session.HasSlot("hora") {
				reply += " a las " + session.Slots["hora"]
			}
			return reply + ". Te confirmo por este medio. ✅"
		},
	}
}

// stripEmail 去掉文本中的邮箱片段
func stripEmail(text string) string {
	email := extract.Email(text)
	if email == "" {
		return text
	}
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); {
		if i+len(email) <= len(text) && text[i:i+len(email)] == email {
			i += len(email)
			continue
		}
		out = append(out, text[i])
		i++
	}
	return string(out)
}
