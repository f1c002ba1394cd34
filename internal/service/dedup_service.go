package service

import (
	"sync"

	"go.uber.org/zap"
)

// Deduplicator 消息去重服务。维护一个容量受限的已见 ID 集合，
// 超出容量时整体清空（粗粒度淘汰，不是 LRU），尽力而为
type Deduplicator struct {
	ids      map[string]struct{}
	capacity int
	mu       sync.Mutex
	logger   *zap.Logger
}

// NewDeduplicator 创建去重服务
func NewDeduplicator(capacity int, logger *zap.Logger) *Deduplicator {
	return &Deduplicator{
		ids:      make(map[string]struct{}),
		capacity: capacity,
		logger:   logger,
	}
}

// SeenOrRecord 判断 ID 是否已见过，未见过则记录（单次加锁，避免并发窗口）。
// 空 ID 永远视为未见过且不记录
func (d *Deduplicator) SeenOrRecord(id string) bool {
	if id == "" {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.ids[id]; ok {
		return true
	}

	if len(d.ids) >= d.capacity {
		d.logger.Info("去重缓存已满，整体清空", zap.Int("capacity", d.capacity))
		d.ids = make(map[string]struct{})
	}
	d.ids[id] = struct{}{}
	return false
}

// Seen 判断 ID 是否已见过
func (d *Deduplicator) Seen(id string) bool {
	if id == "" {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.ids[id]
	return ok
}

// Record 记录 ID
func (d *Deduplicator) Record(id string) {
	if id == "" {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.ids) >= d.capacity {
		d.logger.Info("去重缓存已满，整体清空", zap.Int("capacity", d.capacity))
		d.ids = make(map[string]struct{})
	}
	d.ids[id] = struct{}{}
}
