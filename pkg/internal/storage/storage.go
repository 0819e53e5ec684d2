// Package storage 聚合数据库、KV 缓存与消息队列客户端.
//
// Example:
//
//	ctx := context.Background()
//	mgr, err := storage.Init(ctx)
//	if err != nil {
//	    // 处理错误
//	}
//
//	dbClient := mgr.GetDBClient()
package storage

import (
	"context"
	"sync"

	"github.com/yeisme/destvault/pkg/configs"
	dbc "github.com/yeisme/destvault/pkg/internal/storage/db"
	kvc "github.com/yeisme/destvault/pkg/internal/storage/kv"
	mqc "github.com/yeisme/destvault/pkg/internal/storage/mq"
	nlog "github.com/yeisme/destvault/pkg/log"
)

// Manager 聚合所有存储资源. MQ 为可选，未启用时为 nil.
type Manager struct {
	DB *dbc.Client
	KV *kvc.Client
	MQ *mqc.Client
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// NewManager 按给定配置构建存储管理器，不涉及全局单例，测试时可指向临时库.
func NewManager(ctx context.Context, cfg *configs.AppConfig) (*Manager, error) {
	m := &Manager{}

	// DB
	dbi, err := dbc.New(ctx, &cfg.DB)
	if err != nil {
		return nil, err
	}

	m.DB = dbi

	// KV
	kvi, err := kvc.New(ctx, &cfg.KV)
	if err != nil {
		return nil, err
	}

	m.KV = kvi

	// MQ（可选）
	if cfg.MQ.Enabled {
		mqi, err := mqc.New(ctx, &cfg.MQ)
		if err != nil {
			return nil, err
		}

		m.MQ = mqi
	}

	return m, nil
}

// Init 初始化默认存储，使用全局配置.重复调用只返回已初始化实例.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		var m *Manager

		m, err = NewManager(ctx, configs.GetConfig())
		if err != nil {
			return
		}

		mgr = m

		nlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// GetDBClient 获取 DB 客户端.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetKVClient 获取 KV 客户端.
func (m *Manager) GetKVClient() *kvc.Client {
	return m.KV
}

// GetMQClient 获取 MQ 客户端，未启用时返回 nil.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}
