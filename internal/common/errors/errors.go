// Package errors 定义业务错误码和错误处理
package errors

import (
	"fmt"
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 实现 errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的应用错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithMessage 修改错误消息
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: message,
		Err:     e.Err,
	}
}

// WithError 添加原始错误
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// 通用错误码 (1000-1999)
var (
	ErrUnknown         = New(1000, "未知错误")
	ErrInvalidParams   = New(1001, "参数错误")
	ErrNotFound        = New(1002, "资源不存在")
	ErrAlreadyExists   = New(1003, "资源已存在")
	ErrDatabaseError   = New(1004, "数据库错误")
	ErrCacheError      = New(1005, "缓存错误")
	ErrInternalError   = New(1006, "内部错误")
	ErrExternalService = New(1007, "外部服务错误")
	ErrRateLimitExceed = New(1008, "请求过于频繁")
	ErrOperationFailed = New(1009, "操作失败")
)

// 认证错误码 (2000-2999)
var (
	ErrUnauthorized     = New(2000, "未登录")
	ErrTokenExpired     = New(2001, "登录已过期")
	ErrTokenInvalid     = New(2002, "无效的令牌")
	ErrTokenRefreshFail = New(2003, "刷新令牌失败")
	ErrPermissionDenied = New(2004, "权限不足")
	ErrAccountDisabled  = New(2005, "账号已禁用")
	ErrPasswordError    = New(2006, "用户名或密码错误")
	ErrSmsSendFail      = New(2007, "短信发送失败")
)

// 客户/员工错误码 (3000-3999)
var (
	ErrCustomerNotFound = New(3000, "客户不存在")
	ErrStaffNotFound    = New(3001, "员工不存在")
	ErrStaffExists      = New(3002, "用户名已被使用")
	ErrRoleNotFound     = New(3003, "角色不存在")
	ErrPhoneInvalid     = New(3004, "无效的手机号")
)

// 房间错误码 (4000-4999)
var (
	ErrRoomNotFound       = New(4000, "房间不存在")
	ErrRoomExists         = New(4001, "房间号已存在")
	ErrRoomTypeNotFound   = New(4002, "房型不存在")
	ErrRoomStatusNotFound = New(4003, "房间状态不存在")
)

// 预订错误码 (5000-5999)
var (
	ErrBookingNotFound       = New(5000, "预订不存在")
	ErrBookingStatusError    = New(5001, "预订状态不允许该操作")
	ErrBookingStatusNotFound = New(5002, "预订状态不存在")
	ErrCheckInTooEarly       = New(5003, "未到可入住时间")
	ErrCheckInExists         = New(5004, "该预订已有入住记录")
	ErrCheckInNotFound       = New(5005, "入住记录不存在")
	ErrCheckOutNotFound      = New(5006, "退房记录不存在")
	ErrCancellationNotFound  = New(5007, "取消记录不存在")
	ErrStatusVocabularyError = New(5008, "预订状态字典与程序常量不一致")
)

// 付款错误码 (6000-6999)
var (
	ErrPaymentNotFound        = New(6000, "付款记录不存在")
	ErrPaymentCheckOutMissing = New(6001, "付款引用的退房记录不存在")
)

// IsAppError 判断是否为应用错误
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError 获取应用错误
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrUnknown.WithError(err)
}
