package service_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/yeisme/destvault/pkg/configs"
	"github.com/yeisme/destvault/pkg/internal/service"
	"github.com/yeisme/destvault/pkg/internal/types"
)

// TestCapture 测试从已完成操作中学习父目录，批内去重.
func TestCapture(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewCaptureService(ctx)

	resp, err := svc.Capture(ctx, "alice", "c1", &types.CaptureRequest{
		Operations: []types.FileOperation{
			{DestinationPath: "/srv/dv/docs/report.pdf", OperationType: "move"},
			{DestinationPath: "/srv/dv/docs/invoice.pdf", OperationType: "move"},
			{DestinationPath: "/srv/dv/music/song.mp3", OperationType: "copy"},
		},
	})
	if err != nil {
		t.Fatalf("Capture 失败: %v", err)
	}

	if resp.Total != 3 {
		t.Errorf("Total = %d, 期望 3", resp.Total)
	}

	// docs 目录只学一次，第二条计入 Skipped
	if resp.Created != 2 || resp.Skipped != 1 || resp.Errors != 0 {
		t.Errorf("Created/Skipped/Errors = %d/%d/%d, 期望 2/1/0", resp.Created, resp.Skipped, resp.Errors)
	}

	if len(resp.Captured) != 2 {
		t.Fatalf("Captured 数 = %d, 期望 2", len(resp.Captured))
	}

	// 学到的是父目录而不是文件本身
	got := map[string]bool{}
	for _, d := range resp.Captured {
		got[d.Path] = true
	}

	if !got["/srv/dv/docs"] || !got["/srv/dv/music"] {
		t.Errorf("学习到的目录错误: %+v", got)
	}
}

// TestCaptureKnownDirectory 测试已记住的目录不重复创建.
func TestCaptureKnownDirectory(t *testing.T) {
	ctx := newTestContext(t)
	dests := service.NewDestinationService(ctx)
	svc := service.NewCaptureService(ctx)

	if _, _, err := dests.Add(ctx, "alice", "c1", &types.AddDestinationRequest{Path: "/srv/dv/docs"}, false); err != nil {
		t.Fatalf("Add 失败: %v", err)
	}

	resp, err := svc.Capture(ctx, "alice", "c1", &types.CaptureRequest{
		Operations: []types.FileOperation{
			{DestinationPath: "/srv/dv/docs/report.pdf"},
		},
	})
	if err != nil {
		t.Fatalf("Capture 失败: %v", err)
	}

	if resp.Created != 0 || resp.Skipped != 1 {
		t.Errorf("已知目录应计入 Skipped: %+v", resp)
	}
}

// TestCaptureBadEntries 测试损坏条目只计入 Errors，不中断整批.
func TestCaptureBadEntries(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewCaptureService(ctx)

	resp, err := svc.Capture(ctx, "alice", "c1", &types.CaptureRequest{
		Operations: []types.FileOperation{
			{DestinationPath: ""},
			{DestinationPath: "   "},
			{DestinationPath: "/stray.txt"}, // 父目录是根路径，不值得记住
			{DestinationPath: "/srv/dv/docs/good.pdf"},
		},
	})
	if err != nil {
		t.Fatalf("Capture 失败: %v", err)
	}

	if resp.Errors != 3 {
		t.Errorf("Errors = %d, 期望 3", resp.Errors)
	}

	if resp.Created != 1 {
		t.Errorf("Created = %d, 期望 1", resp.Created)
	}
}

// TestCaptureValidation 测试空批与超大批的参数校验.
func TestCaptureValidation(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewCaptureService(ctx)

	if _, err := svc.Capture(ctx, "", "c1", &types.CaptureRequest{
		Operations: []types.FileOperation{{DestinationPath: "/srv/dv/x/a.txt"}},
	}); !errors.Is(err, service.ErrValidation) {
		t.Errorf("缺少用户应返回 ErrValidation, got %v", err)
	}

	if _, err := svc.Capture(ctx, "alice", "c1", &types.CaptureRequest{}); !errors.Is(err, service.ErrValidation) {
		t.Errorf("空批应返回 ErrValidation, got %v", err)
	}

	tooMany := configs.GetConfig().Organizer.CaptureBatchMax + 1
	ops := make([]types.FileOperation, 0, tooMany)

	for i := 0; i < tooMany; i++ {
		ops = append(ops, types.FileOperation{DestinationPath: fmt.Sprintf("/srv/dv/bulk/%d/file.txt", i)})
	}

	if _, err := svc.Capture(ctx, "alice", "c1", &types.CaptureRequest{Operations: ops}); !errors.Is(err, service.ErrValidation) {
		t.Errorf("超大批应返回 ErrValidation, got %v", err)
	}
}

// TestCaptureResolvesDrive 测试捕获的目录自动归属到覆盖其路径的驱动器.
func TestCaptureResolvesDrive(t *testing.T) {
	ctx := newTestContext(t)
	drives := service.NewDriveService(ctx)
	svc := service.NewCaptureService(ctx)

	drive, _, err := drives.Register(ctx, "alice", "c1", &types.RegisterDriveRequest{
		MountPoint:       "/mnt/usb",
		DriveType:        "usb",
		UniqueIdentifier: "serial-123",
	})
	if err != nil {
		t.Fatalf("Register 失败: %v", err)
	}

	resp, err := svc.Capture(ctx, "alice", "c1", &types.CaptureRequest{
		Operations: []types.FileOperation{
			{DestinationPath: "/mnt/usb/photos/img.jpg"},
		},
	})
	if err != nil {
		t.Fatalf("Capture 失败: %v", err)
	}

	if len(resp.Captured) != 1 {
		t.Fatalf("Captured 数 = %d, 期望 1", len(resp.Captured))
	}

	if resp.Captured[0].DriveID != drive.ID {
		t.Errorf("DriveID = %q, 期望 %q", resp.Captured[0].DriveID, drive.ID)
	}
}
