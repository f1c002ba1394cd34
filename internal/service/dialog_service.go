package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/noabot/noabot-go/internal/classifier"
	"github.com/noabot/noabot-go/internal/model"
	"github.com/noabot/noabot-go/internal/normalizer"
	"github.com/noabot/noabot-go/internal/store"
	"go.uber.org/zap"
)

// Predictor 意图判定接口
type Predictor interface {
	Classify(text string) (label string, confidence float64)
}

// DialogService 对话引擎。按发送者维护状态机：有打开的会话时
// 直接路由到当前步骤（不重新分类），否则分类后决定单轮回复
// 或开启多轮流程。同一发送者的回合串行执行
type DialogService struct {
	sessions   store.SessionStore
	predictor  Predictor
	botName    string
	ownerPhone string
	locks      map[string]*sync.Mutex // 发送者级别的回合锁
	mu         sync.Mutex
	logger     *zap.Logger
}

// NewDialogService 创建对话引擎
func NewDialogService(sessions store.SessionStore, predictor Predictor, botName, ownerPhone string, logger *zap.Logger) *DialogService {
	return &DialogService{
		sessions:   sessions,
		predictor:  predictor,
		botName:    botName,
		ownerPhone: strings.TrimPrefix(normalizer.NormalizeSender(ownerPhone), "+"),
		locks:      make(map[string]*sync.Mutex),
		logger:     logger,
	}
}

// cancelWords 任意步骤都可显式重置会话的命令
var cancelWords = map[string]bool{
	"cancelar":  true,
	"salir":     true,
	"reiniciar": true,
}

// HandleTurn 处理一个对话回合，返回回复文本（可能为空）
func (s *DialogService) HandleTurn(ctx context.Context, msg *model.InboundMessage) (string, error) {
	lock := s.lockFor(msg.SenderID)
	lock.Lock()
	defer lock.Unlock()

	text := msg.Text

	// 主人命令优先于一切
	if s.isOwner(msg.SenderID) {
		if reply, ok := s.ownerCommand(text); ok {
			return reply, nil
		}
	}

	session, err := s.sessions.Get(ctx, msg.SenderID)
	if err != nil {
		return "", fmt.Errorf("查询会话失败: %w", err)
	}

	// 会话打开时优先于重新分类，保证多轮连续性
	if session != nil {
		if cancelWords[strings.ToLower(strings.TrimSpace(text))] {
			if err := s.sessions.Delete(ctx, msg.SenderID); err != nil {
				return "", fmt.Errorf("重置会话失败: %w", err)
			}
			s.logger.Info("会话已显式重置", zap.String("sender", msg.SenderID))
			return "🔄 Listo, reinicié la conversación. ¿En qué te puedo ayudar?", nil
		}
		return s.runStep(ctx, session, text)
	}

	label, confidence := s.predictor.Classify(text)
	s.logger.Info("新回合意图",
		zap.String("sender", msg.SenderID),
		zap.String("label", label),
		zap.Float64("confidence", confidence))

	if IsMultiTurn(label) {
		return s.runStep(ctx, model.NewDialogSession(msg.SenderID, label), text)
	}

	return s.cannedReply(label), nil
}

// runStep 执行会话当前步骤：提取槽位，未齐则重新提问且不推进，
// 齐了则推进到下一步或完成（发摘要并删除会话）
func (s *DialogService) runStep(ctx context.Context, session *model.DialogSession, text string) (string, error) {
	flow, ok := dialogFlows[session.Intent]
	if !ok {
		// 残留的未知意图会话，清掉重来
		s.logger.Warn("会话意图无对应流程，丢弃",
			zap.String("sender", session.SenderID),
			zap.String("intent", session.Intent))
		if err := s.sessions.Delete(ctx, session.SenderID); err != nil {
			return "", fmt.Errorf("删除会话失败: %w", err)
		}
		return s.cannedReply(classifier.IntentDesconocido), nil
	}

	step := flow.steps[session.Step-1]
	step.fill(session, text)

	if !step.ready(session) {
		if err := s.sessions.Put(ctx, session); err != nil {
			return "", fmt.Errorf("保存会话失败: %w", err)
		}
		return step.prompt, nil
	}

	if session.Step >= len(flow.steps) {
		if err := s.sessions.Delete(ctx, session.SenderID); err != nil {
			return "", fmt.Errorf("删除会话失败: %w", err)
		}
		s.logger.Info("多轮流程完成",
			zap.String("sender", session.SenderID),
			zap.String("intent", session.Intent))
		return flow.summary(session), nil
	}

	session.Step++
	if err := s.sessions.Put(ctx, session); err != nil {
		return "", fmt.Errorf("保存会话失败: %w", err)
	}
	return flow.steps[session.Step-1].prompt, nil
}

// cannedReply 单轮意图的固定回复表
func (s *DialogService) cannedReply(label string) string {
	switch label {
	case classifier.IntentSaludo:
		return fmt.Sprintf("👋 Hola, soy *%s*. ¿En qué te puedo ayudar hoy?", s.botName)
	case classifier.IntentTodoRiesgo:
		return "🔒 *Seguro Todo Riesgo*: daños materiales, robo, RC y adicionales según póliza. " +
			"¿Querés una cotización? Nombre y correo, porfa."
	case classifier.IntentConstruccion:
		return "🏗️ *Todo Riesgo Construcción*: cubre obra, materiales, equipo y RC durante la ejecución. " +
			"Decime nombre y correo para enviarte una propuesta."
	case classifier.IntentElectronico:
		return "💻 *Equipo Electrónico*: protege computadoras, servidores y equipos de oficina contra " +
			"daños accidentales, picos de tensión y robo con violencia."
	case classifier.IntentCotizacion:
		return "📑 Para cotizar: *nombre, correo y tipo de seguro* (Todo Riesgo, Construcción, Electrónicos)."
	case classifier.IntentRecordatorio:
		return "⏰ Lo anoto. Próximamente conectaré con calendario para recordarte automáticamente."
	case classifier.IntentResumen:
		return "📄 Enviame el audio o texto y te lo resumo en 3 puntos."
	default:
		return "🤖 Puedo ayudarte con *seguros en Costa Rica* (Todo Riesgo, Construcción, Electrónicos), " +
			"cotizaciones y recordatorios. ¿Qué ocupás?"
	}
}

// ownerCommand 处理主人命令，第二个返回值表示是否命中
func (s *DialogService) ownerCommand(text string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(text))

	switch {
	case t == "ayuda":
		return "📋 *Comandos (dueño)*\n" +
			"• ayuda\n" +
			"• status kb\n" +
			"• modo silencio on / modo silencio off\n" +
			"• nota: <texto>", true
	case t == "status kb":
		return fmt.Sprintf("✅ %s en línea. Webhook activo.", s.botName), true
	case strings.HasPrefix(t, "nota:"):
		nota := strings.TrimSpace(t[len("nota:"):])
		if nota == "" {
			return "Decime el texto de la nota: `nota: …`", true
		}
		s.logger.Info("主人留言", zap.String("nota", nota))
		return fmt.Sprintf("📝 Guardé tu nota: %s", nota), true
	case t == "modo silencio on" || t == "modo silencio off":
		return "🔇 Modo silencio es placeholder por ahora. Lo activamos luego con horario.", true
	}
	return "", false
}

// isOwner 判断发送者是否为配置的主人号码
func (s *DialogService) isOwner(senderID string) bool {
	return s.ownerPhone != "" && strings.TrimPrefix(senderID, "+") == s.ownerPhone
}

// lockFor 获取发送者的回合锁
func (s *DialogService) lockFor(senderID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[senderID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[senderID] = lock
	}
	return lock
}
