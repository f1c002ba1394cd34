// Package classifier 实现意图分类：tf-idf n-gram 特征上的线性概率模型，
// 置信度不足时回退到有序关键词规则。
package classifier

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

// Classifier 意图分类器。活动模型通过原子引用持有，
// 再训练完成后整体替换，预测方永远看到完整一致的模型
type Classifier struct {
	active    atomic.Pointer[Model]
	threshold float64
	logger    *zap.Logger
}

// NewClassifier 创建分类器（初始为空模型，冷启动安全）
func NewClassifier(threshold float64, logger *zap.Logger) *Classifier {
	c := &Classifier{
		threshold: threshold,
		logger:    logger,
	}
	c.active.Store(Train(nil))
	return c
}

// Swap 原子替换活动模型，旧模型继续服务在途预测
func (c *Classifier) Swap(m *Model) {
	c.active.Store(m)
	c.logger.Info("分类模型已切换", zap.Int("labels", len(m.labels)), zap.Int("vocab", len(m.vocab)))
}

// Predict 模型原始预测；空输入或冷启动返回兜底标签、零置信度
func (c *Classifier) Predict(text string) (string, float64) {
	if strings.TrimSpace(text) == "" {
		return IntentDesconocido, 0
	}

	label, confidence := c.active.Load().Predict(text)
	if label == "" {
		return IntentDesconocido, 0
	}
	return label, confidence
}

// Classify 完整分类流程：先模型预测，置信度低于阈值时
// 用关键词规则改判（顺序固定：预测 -> 阈值 -> 规则）。
// 空输入不走规则，直接返回兜底标签
func (c *Classifier) Classify(text string) (string, float64) {
	if strings.TrimSpace(text) == "" {
		return IntentDesconocido, 0
	}

	label, confidence := c.Predict(text)
	if confidence < c.threshold {
		if override := HeuristicLabel(text); override != "" {
			c.logger.Debug("关键词规则改判",
				zap.String("model", label),
				zap.Float64("confidence", confidence),
				zap.String("override", override))
			label = override
		}
	}

	c.logger.Info("意图分类完成",
		zap.String("label", label),
		zap.Float64("confidence", confidence))

	return label, confidence
}

// Threshold 返回当前置信度阈值
func (c *Classifier) Threshold() float64 {
	return c.threshold
}
