package kv_test

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"fmt"
	mrand "math/rand"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yeisme/destvault/pkg/configs"
	"github.com/yeisme/destvault/pkg/internal/storage/kv"
)

// TestMemoryKV 测试内存 KV 的基本读写与删除.
func TestMemoryKV(t *testing.T) {
	ctx := context.Background()

	store, err := kv.New(ctx, &configs.KVConfig{Type: "memory"})
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "k1", []byte("v1"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := store.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if !bytes.Equal(got, []byte("v1")) {
		t.Errorf("get = %q, 期望 %q", got, "v1")
	}

	exists, err := store.Exists(ctx, "k1")
	if err != nil || !exists {
		t.Errorf("exists = %v/%v, 期望 true/nil", exists, err)
	}

	if err := store.Delete(ctx, "k1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := store.Get(ctx, "k1"); err == nil {
		t.Error("删除后 get 应当失败")
	}

	exists, err = store.Exists(ctx, "k1")
	if err != nil || exists {
		t.Errorf("删除后 exists = %v/%v, 期望 false/nil", exists, err)
	}
}

// TestMemoryKVTTL 测试过期键在读取时被惰性清理.
func TestMemoryKVTTL(t *testing.T) {
	ctx := context.Background()

	store, err := kv.New(ctx, &configs.KVConfig{Type: "memory"})
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "ephemeral", []byte("x"), 20*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if _, err := store.Get(ctx, "ephemeral"); err != nil {
		t.Fatalf("过期前 get 不应失败: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	if _, err := store.Get(ctx, "ephemeral"); err == nil {
		t.Error("过期后 get 应当失败")
	}
}

// TestUnsupportedKVType 测试未注册类型的错误.
func TestUnsupportedKVType(t *testing.T) {
	if _, err := kv.New(context.Background(), &configs.KVConfig{Type: "etcd"}); err == nil {
		t.Error("未注册的 KV 类型应当报错")
	}
}

func BenchmarkMemoryKV(b *testing.B) {
	store, err := kv.New(context.Background(), &configs.KVConfig{Type: "memory"})
	if err != nil {
		b.Fatalf("create memory kv: %v", err)
	}

	benchKV(b, "memory", store)
	benchKVParallel(b, "memory", store)
	_ = store.Close()
}

// Optional: enable with ENABLE_REDIS_BENCH=1 and REDIS_ADDR set (default 127.0.0.1:6379).
func BenchmarkRedisKV(b *testing.B) {
	if os.Getenv("ENABLE_REDIS_BENCH") == "" {
		b.Skip("set ENABLE_REDIS_BENCH=1 to enable")
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}

	cfg := &configs.KVConfig{
		Type:  "redis",
		Redis: configs.RedisKVConfig{Addr: addr, Password: "", DB: 0},
	}

	store, err := kv.New(context.Background(), cfg)
	if err != nil {
		b.Skipf("redis not available: %v", err)
		return
	}

	benchKV(b, "redis", store)
	benchKVParallel(b, "redis", store)
	_ = store.Close()
}

// randBytes returns n random bytes, seeded reproducibly for bench.
func randBytes(n int) []byte {
	b := make([]byte, n)
	// Try crypto/rand; if it fails (unlikely in tests), fallback to deterministic PRNG.
	if _, err := crand.Read(b); err != nil {
		mr := mrand.New(mrand.NewSource(42))
		for i := range b {
			b[i] = byte(mr.Intn(256))
		}
	}

	return b
}

// benchKV 执行基本的 Set/Get/Delete 基准测试.
func benchKV(b *testing.B, name string, store kv.KVStore) {
	ctx := context.Background()
	sizes := []int{32, 1024, 64 * 1024}
	ttls := []time.Duration{0, 5 * time.Second}

	for _, size := range sizes {
		payload := randBytes(size)
		for _, ttl := range ttls {
			b.Run(fmt.Sprintf("%s/size=%d/ttl=%s", name, size, ttl), func(b *testing.B) {
				b.ReportAllocs()

				for i := 0; b.Loop(); i++ {
					key := fmt.Sprintf("bench-%s-%d", name, i)
					if err := store.Set(ctx, key, payload, ttl); err != nil {
						b.Fatalf("set failed: %v", err)
					}

					if _, err := store.Get(ctx, key); err != nil {
						b.Fatalf("get failed: %v", err)
					}

					if err := store.Delete(ctx, key); err != nil {
						b.Fatalf("delete failed: %v", err)
					}
				}
			})
		}
	}
}

// benchKVParallel 执行并行的 Set/Get/Delete 基准测试.
func benchKVParallel(b *testing.B, name string, store kv.KVStore) {
	ctx := context.Background()
	size := 1024
	payload := randBytes(size)

	var ctr uint64

	b.Run(fmt.Sprintf("%s/parallel", name), func(b *testing.B) {
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				i := atomic.AddUint64(&ctr, 1)

				key := fmt.Sprintf("bench-%s-p-%d", name, i)
				if err := store.Set(ctx, key, payload, 0); err != nil {
					b.Fatalf("set failed: %v", err)
				}

				if _, err := store.Get(ctx, key); err != nil {
					b.Fatalf("get failed: %v", err)
				}

				if err := store.Delete(ctx, key); err != nil {
					b.Fatalf("delete failed: %v", err)
				}
			}
		})
	})
}
