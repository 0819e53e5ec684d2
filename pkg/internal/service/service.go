package service

import (
	"context"

	ctxPkg "github.com/yeisme/destvault/pkg/context"
	"github.com/yeisme/destvault/pkg/internal/storage/db"
	"github.com/yeisme/destvault/pkg/internal/storage/kv"
	"github.com/yeisme/destvault/pkg/internal/storage/mq"
)

// DestinationService 是目录记忆的核心服务，其余服务在其之上组合.
type DestinationService struct {
	dbClient *db.Client
	kvClient *kv.Client
	mqClient *mq.Client
}

// NewDestinationService 从 context 取出存储客户端构造服务.
func NewDestinationService(c context.Context) *DestinationService {
	return &DestinationService{
		dbClient: ctxPkg.GetDBClient(c),
		kvClient: ctxPkg.GetKVClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}
