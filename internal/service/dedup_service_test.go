package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDeduplicator(t *testing.T) {
	d := NewDeduplicator(100, zap.NewNop())

	require.False(t, d.SeenOrRecord("abc1"))
	require.True(t, d.SeenOrRecord("abc1"))
	require.True(t, d.Seen("abc1"))
	require.False(t, d.Seen("abc2"))
}

func TestDeduplicatorEmptyIDNeverDuplicate(t *testing.T) {
	d := NewDeduplicator(100, zap.NewNop())

	require.False(t, d.SeenOrRecord(""))
	require.False(t, d.SeenOrRecord(""))
	require.False(t, d.Seen(""))
}

func TestDeduplicatorClearsWhenFull(t *testing.T) {
	d := NewDeduplicator(2, zap.NewNop())

	require.False(t, d.SeenOrRecord("a"))
	require.False(t, d.SeenOrRecord("b"))

	// 容量到顶：整体清空后再记录 c
	require.False(t, d.SeenOrRecord("c"))
	require.False(t, d.Seen("a"))
	require.False(t, d.Seen("b"))
	require.True(t, d.Seen("c"))
}
