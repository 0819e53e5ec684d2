package types

// FileOperation 已完成文件操作的结果，由整理器在执行后上报.
type FileOperation struct {
	SourcePath      string `json:"source_path,omitempty"`
	DestinationPath string `json:"destination_path"` // 目标文件的完整路径
	OperationType   string `json:"operation_type,omitempty"`
}

// CaptureRequest 自动捕获请求：从一批已完成操作中学习新的目标目录.
type CaptureRequest struct {
	Operations []FileOperation `binding:"required" json:"operations"`
}

// CaptureResponse 自动捕获结果.
// 单条操作的错误不会中断整批：损坏的条目被跳过并计入 Errors.
type CaptureResponse struct {
	Captured []DestinationInfo `json:"captured"`
	Total    int               `json:"total"`
	Created  int               `json:"created"`
	Skipped  int               `json:"skipped"`
	Errors   int               `json:"errors"`
}
