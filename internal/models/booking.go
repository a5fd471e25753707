// Package models 定义数据库模型
package models

import (
	"time"
)

// BookingStatus 预订状态字典
type BookingStatus struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:varchar(255)" json:"description,omitempty"`
}

// TableName 表名
func (BookingStatus) TableName() string {
	return "booking_statuses"
}

// 预订状态编号，与 booking_statuses 字典表一致（启动时校验）
const (
	BookingStatusPending   = 1 // 待确认
	BookingStatusConfirmed = 2 // 已确认
	BookingStatusCheckedIn = 3 // 已入住
	BookingStatusCompleted = 4 // 已完成
	BookingStatusCancelled = 5 // 已取消
)

// BookingStatusNames 状态编号到名称的映射
var BookingStatusNames = map[int64]string{
	BookingStatusPending:   "Pending",
	BookingStatusConfirmed: "Confirmed",
	BookingStatusCheckedIn: "CheckedIn",
	BookingStatusCompleted: "Completed",
	BookingStatusCancelled: "Cancelled",
}

// Booking 预订模型
type Booking struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingNo    string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"booking_no"`
	BookingDate  time.Time `gorm:"type:date;not null" json:"booking_date"`
	CheckInDate  time.Time `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"type:date;not null" json:"check_out_date"`
	RoomID       int64     `gorm:"index;not null" json:"room_id"`
	CustomerID   int64     `gorm:"index;not null" json:"customer_id"`
	StaffID      int64     `gorm:"index;not null" json:"staff_id"`
	StatusID     int64     `gorm:"index;not null;default:1" json:"status_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Room         *Room          `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Customer     *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Staff        *Staff         `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	Status       *BookingStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	CheckIn      *CheckIn       `gorm:"foreignKey:BookingID" json:"check_in,omitempty"`
	Cancellation *Cancellation  `gorm:"foreignKey:BookingID" json:"cancellation,omitempty"`
}

// TableName 表名
func (Booking) TableName() string {
	return "bookings"
}

// CheckIn 入住记录，每个预订最多一条
type CheckIn struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID    int64     `gorm:"uniqueIndex;not null" json:"booking_id"`
	CheckInDate  time.Time `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"type:date;not null" json:"check_out_date"`
	RoomID       int64     `gorm:"index;not null" json:"room_id"`
	CustomerID   int64     `gorm:"index;not null" json:"customer_id"`
	StaffID      int64     `gorm:"index;not null" json:"staff_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// 关联
	Booking  *Booking  `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	Room     *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Staff    *Staff    `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	CheckOut *CheckOut `gorm:"foreignKey:CheckInID" json:"check_out,omitempty"`
}

// TableName 表名
func (CheckIn) TableName() string {
	return "check_ins"
}

// CheckOut 退房记录，引用对应的入住记录
type CheckOut struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CheckInID    int64     `gorm:"uniqueIndex;not null" json:"check_in_id"`
	CheckOutDate time.Time `gorm:"type:date;not null" json:"check_out_date"`
	RoomID       int64     `gorm:"index;not null" json:"room_id"`
	StaffID      int64     `gorm:"index;not null" json:"staff_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// 关联
	CheckIn *CheckIn `gorm:"foreignKey:CheckInID" json:"check_in,omitempty"`
	Room    *Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Staff   *Staff   `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

// TableName 表名
func (CheckOut) TableName() string {
	return "check_outs"
}

// Cancellation 取消记录
type Cancellation struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID  int64     `gorm:"uniqueIndex;not null" json:"booking_id"`
	CancelDate time.Time `gorm:"type:date;not null" json:"cancel_date"`
	Reason     *string   `gorm:"type:varchar(255)" json:"reason,omitempty"`
	StaffID    int64     `gorm:"index;not null" json:"staff_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// 关联
	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	Staff   *Staff   `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

// TableName 表名
func (Cancellation) TableName() string {
	return "cancellations"
}
