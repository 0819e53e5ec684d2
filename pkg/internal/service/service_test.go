package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/yeisme/destvault/pkg/configs"
	ctxPkg "github.com/yeisme/destvault/pkg/context"
	"github.com/yeisme/destvault/pkg/internal/storage"
	"github.com/yeisme/destvault/pkg/internal/storage/db"
	"github.com/yeisme/destvault/pkg/internal/storage/kv"
)

// newTestContext 构造带有独立临时 SQLite 库与内存 KV 的测试上下文.
// 每次调用都得到一套全新的存储，测试之间互不干扰.
func newTestContext(t *testing.T) context.Context {
	t.Helper()

	// 无配置文件时回退默认值，Organizer 等配置段由此就绪
	if err := configs.InitConfig(t.TempDir()); err != nil {
		t.Fatalf("初始化配置失败: %v", err)
	}

	ctx := context.Background()

	dbClient, err := db.New(ctx, &configs.DBConfig{
		Type:     configs.SQLite,
		Database: filepath.Join(t.TempDir(), "destvault_test"),
	})
	if err != nil {
		t.Fatalf("初始化测试数据库失败: %v", err)
	}

	kvClient, err := kv.New(ctx, &configs.KVConfig{Type: "memory"})
	if err != nil {
		t.Fatalf("初始化测试 KV 失败: %v", err)
	}

	mgr := &storage.Manager{DB: dbClient, KV: kvClient}

	return ctxPkg.WithStorageManager(ctx, mgr)
}
