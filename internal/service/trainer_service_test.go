package service

import (
	"context"
	"testing"

	"github.com/noabot/noabot-go/internal/classifier"
	"github.com/noabot/noabot-go/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTrainerRetrainFromSeed(t *testing.T) {
	ctx := context.Background()
	nop := zap.NewNop()
	samples := store.NewMemorySampleStore()
	cls := classifier.NewClassifier(0.55, nop)
	trainer := NewTrainerService(samples, cls, nop)

	seedCount, sampleCount, err := trainer.Retrain(ctx)
	require.NoError(t, err)
	require.Greater(t, seedCount, 0)
	require.Zero(t, sampleCount)

	// 训练后模型可用，置信度在界内
	label, confidence := cls.Predict("hola")
	require.Contains(t, classifier.KnownLabels(), label)
	require.GreaterOrEqual(t, confidence, 0.0)
	require.LessOrEqual(t, confidence, 1.0)
}

func TestTrainerIncludesAccumulatedSamples(t *testing.T) {
	ctx := context.Background()
	nop := zap.NewNop()
	samples := store.NewMemorySampleStore()
	require.NoError(t, samples.Append(ctx, "asegurá el camión", "seguro.vehiculo"))
	require.NoError(t, samples.Append(ctx, "precio de la póliza", "cotizacion"))

	cls := classifier.NewClassifier(0.55, nop)
	trainer := NewTrainerService(samples, cls, nop)

	_, sampleCount, err := trainer.Retrain(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, sampleCount)
}
