package service

import (
	"context"
	"fmt"

	"github.com/noabot/noabot-go/internal/classifier"
	"github.com/noabot/noabot-go/internal/model"
	"github.com/noabot/noabot-go/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// TrainerService 再训练服务。每次从种子语料加累积样本全量重训，
// 训练完成后整体替换活动模型；并发触发的重训合并为一次
type TrainerService struct {
	samples    store.SampleStore
	classifier *classifier.Classifier
	group      singleflight.Group
	logger     *zap.Logger
}

// NewTrainerService 创建再训练服务
func NewTrainerService(samples store.SampleStore, cls *classifier.Classifier, logger *zap.Logger) *TrainerService {
	return &TrainerService{
		samples:    samples,
		classifier: cls,
		logger:     logger,
	}
}

// retrainResult 一次重训的统计
type retrainResult struct {
	seedCount   int
	sampleCount int
}

// Retrain 全量重训并发布新模型。旧模型在训练期间继续服务，
// 返回种子与累积样本的数量
func (s *TrainerService) Retrain(ctx context.Context) (seedCount, sampleCount int, err error) {
	v, err, _ := s.group.Do("retrain", func() (interface{}, error) {
		seed := classifier.SeedExamples()

		accumulated, err := s.samples.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("读取样本失败: %w", err)
		}

		examples := make([]model.IntentExample, 0, len(seed)+len(accumulated))
		examples = append(examples, seed...)
		examples = append(examples, accumulated...)

		s.logger.Info("开始重训模型",
			zap.Int("seed", len(seed)),
			zap.Int("samples", len(accumulated)))

		m := classifier.Train(examples)
		s.classifier.Swap(m)

		return retrainResult{seedCount: len(seed), sampleCount: len(accumulated)}, nil
	})
	if err != nil {
		return 0, 0, err
	}

	result := v.(retrainResult)
	return result.seedCount, result.sampleCount, nil
}
