package models

import (
	"time"
)

// OperationLog 员工操作日志
type OperationLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	StaffID   int64     `gorm:"index" json:"staff_id"`
	Method    string    `gorm:"type:varchar(10);not null" json:"method"`
	Path      string    `gorm:"type:varchar(255);not null" json:"path"`
	Query     *string   `gorm:"type:varchar(512)" json:"query,omitempty"`
	IP        string    `gorm:"type:varchar(45)" json:"ip"`
	Status    int       `gorm:"not null" json:"status"`
	LatencyMs int64     `gorm:"not null" json:"latency_ms"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// 关联
	Staff *Staff `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

// TableName 表名
func (OperationLog) TableName() string {
	return "operation_logs"
}
