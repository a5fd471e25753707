// Package sms 短信服务
package sms

import (
	"context"
	"time"
)

// 模板键名
const (
	TemplateBookingConfirm = "booking_confirm" // 预订确认通知
	TemplateCheckInRemind  = "check_in_remind" // 入住提醒
)

// DefaultTemplates 默认模板编码，生产环境通过 SetTemplates 覆盖
var DefaultTemplates = map[string]string{
	TemplateBookingConfirm: "SMS_xxxxxx",
	TemplateCheckInRemind:  "SMS_xxxxxx",
}

// Sender 短信发送器接口
type Sender interface {
	Send(ctx context.Context, phone, templateCode string, params map[string]string) error
	SendBookingConfirm(ctx context.Context, phone, bookingNo string) error
	SendCheckInRemind(ctx context.Context, phone, bookingNo string) error
}

// MockSender 模拟短信发送器（用于开发/测试）
type MockSender struct {
	SentMessages []MockMessage
}

// MockMessage 模拟消息
type MockMessage struct {
	Phone        string
	TemplateCode string
	Params       map[string]string
	SentAt       time.Time
}

// NewMockSender 创建模拟发送器
func NewMockSender() *MockSender {
	return &MockSender{
		SentMessages: make([]MockMessage, 0),
	}
}

// Send 模拟发送
func (s *MockSender) Send(ctx context.Context, phone, templateCode string, params map[string]string) error {
	s.SentMessages = append(s.SentMessages, MockMessage{
		Phone:        phone,
		TemplateCode: templateCode,
		Params:       params,
		SentAt:       time.Now(),
	})
	return nil
}

// SendBookingConfirm 模拟发送预订确认通知
func (s *MockSender) SendBookingConfirm(ctx context.Context, phone, bookingNo string) error {
	return s.Send(ctx, phone, TemplateBookingConfirm, map[string]string{"booking_no": bookingNo})
}

// SendCheckInRemind 模拟发送入住提醒
func (s *MockSender) SendCheckInRemind(ctx context.Context, phone, bookingNo string) error {
	return s.Send(ctx, phone, TemplateCheckInRemind, map[string]string{"booking_no": bookingNo})
}

// GetLastMessage 获取最后发送的消息
func (s *MockSender) GetLastMessage() *MockMessage {
	if len(s.SentMessages) == 0 {
		return nil
	}
	return &s.SentMessages[len(s.SentMessages)-1]
}

// Clear 清空消息记录
func (s *MockSender) Clear() {
	s.SentMessages = make([]MockMessage, 0)
}
