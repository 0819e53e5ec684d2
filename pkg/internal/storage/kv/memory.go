package kv

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yeisme/destvault/pkg/configs"
)

// memoryEntry 内存键值条目，expiresAt 为零值时永不过期.
type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryKV 基于 sync.Map 的内存 KV 实现，过期采用读取时惰性校验.
type MemoryKV struct {
	data sync.Map
}

// NewMemoryKV 创建内存 KV 实例.
func NewMemoryKV(_ context.Context, _ *configs.KVConfig) (KVStore, error) {
	// 内存实现不需要特殊配置
	return &MemoryKV{}, nil
}

// Get 获取键的值.
func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	value, exists := m.data.Load(key)
	if !exists {
		return nil, fmt.Errorf("key not found: %s", key)
	}

	entry, ok := value.(memoryEntry)
	if !ok {
		return nil, fmt.Errorf("invalid value type for key: %s", key)
	}

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.data.Delete(key)
		return nil, fmt.Errorf("key not found: %s", key)
	}

	// 返回副本
	result := make([]byte, len(entry.data))
	copy(result, entry.data)

	return result, nil
}

// Set 设置键的值.
func (m *MemoryKV) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	data := make([]byte, len(value))
	copy(data, value)

	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	m.data.Store(key, entry)

	return nil
}

// Delete 删除键.
func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.data.Delete(key)
	return nil
}

// Exists 检查键是否存在.
func (m *MemoryKV) Exists(ctx context.Context, key string) (bool, error) {
	if _, err := m.Get(ctx, key); err != nil {
		return false, nil
	}

	return true, nil
}

// Close 关闭存储（内存实现无需操作）.
func (m *MemoryKV) Close() error {
	return nil
}

func init() {
	RegisterKVFactory(KVTypeMemory, NewMemoryKV)
}
