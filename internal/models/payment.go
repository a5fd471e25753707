package models

import (
	"time"
)

// Payment 付款记录，在退房后登记
type Payment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CheckOutID  int64     `gorm:"index;not null" json:"check_out_id"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentDate time.Time `gorm:"type:date;not null" json:"payment_date"`
	StaffID     int64     `gorm:"index;not null" json:"staff_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// 关联
	CheckOut *CheckOut `gorm:"foreignKey:CheckOutID" json:"check_out,omitempty"`
	Staff    *Staff    `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

// TableName 表名
func (Payment) TableName() string {
	return "payments"
}
