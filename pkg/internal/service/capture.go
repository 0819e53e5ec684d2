package service

import (
	"context"
	"fmt"

	"github.com/yeisme/destvault/pkg/configs"
	"github.com/yeisme/destvault/pkg/internal/types"
	nlog "github.com/yeisme/destvault/pkg/log"
	"github.com/yeisme/destvault/pkg/pathutil"
)

// CaptureService 从已完成的文件操作中学习新的目标目录.
type CaptureService struct{ *DestinationService }

func NewCaptureService(c context.Context) *CaptureService {
	return &CaptureService{NewDestinationService(c)}
}

// Capture 处理一批已完成的文件操作：对每条操作取目标文件的父目录，去重后
// 逐个记住。单条损坏的记录只计入 Errors，不会让整批失败——上报发生在文件
// 操作完成之后，这里没有可以回滚的东西。
func (s *CaptureService) Capture(ctx context.Context, user, clientID string, req *types.CaptureRequest) (*types.CaptureResponse, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: user is required", ErrValidation)
	}

	if req == nil || len(req.Operations) == 0 {
		return nil, fmt.Errorf("%w: operations is required", ErrValidation)
	}

	if maxBatch := configs.GetConfig().Organizer.CaptureBatchMax; len(req.Operations) > maxBatch {
		return nil, fmt.Errorf("%w: too many operations (%d > %d)", ErrValidation, len(req.Operations), maxBatch)
	}

	resp := &types.CaptureResponse{Total: len(req.Operations), Captured: []types.DestinationInfo{}}

	// 批内按父目录去重，一个目录只处理一次
	seen := make(map[string]struct{})

	for _, op := range req.Operations {
		if op.DestinationPath == "" {
			resp.Errors++
			continue
		}

		filePath, err := pathutil.Normalize(op.DestinationPath)
		if err != nil {
			nlog.Logger().Debug().Err(err).Str("path", op.DestinationPath).Msg("capture: bad destination path")

			resp.Errors++

			continue
		}

		dir := pathutil.Parent(filePath)
		if dir == "" || dir == filePath || dir == pathutil.Parent(dir) {
			// 根路径或无法取父目录，不值得记住
			resp.Errors++
			continue
		}

		if _, ok := seen[dir]; ok {
			resp.Skipped++
			continue
		}

		seen[dir] = struct{}{}

		info, created, err := s.add(ctx, user, clientID, &types.AddDestinationRequest{Path: dir}, false, "auto")
		if err != nil {
			nlog.Logger().Warn().Err(err).Str("dir", dir).Msg("capture: remember failed")

			resp.Errors++

			continue
		}

		if created {
			resp.Created++
			resp.Captured = append(resp.Captured, *info)
		} else {
			resp.Skipped++
		}
	}

	return resp, nil
}
