package service

import "errors"

// 业务错误哨兵，handle 层用 errors.Is 映射为 HTTP 状态码.
var (
	// ErrValidation 请求参数非法（缺字段、越界等）.
	ErrValidation = errors.New("validation error")
	// ErrInvalidPath 路径无法规范化或不是目录.
	ErrInvalidPath = errors.New("invalid path")
	// ErrNotFound 目标资源不存在或对当前用户不可见.
	ErrNotFound = errors.New("not found")
	// ErrTransaction 事务执行失败，整批回滚.
	ErrTransaction = errors.New("transaction error")
)
