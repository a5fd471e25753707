package models

import (
	"time"
)

// RoomType 房型字典
type RoomType struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:varchar(255)" json:"description,omitempty"`
}

// TableName 表名
func (RoomType) TableName() string {
	return "room_types"
}

// RoomStatus 房间状态字典
type RoomStatus struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:varchar(255)" json:"description,omitempty"`
}

// TableName 表名
func (RoomStatus) TableName() string {
	return "room_statuses"
}

// Room 房间模型
type Room struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomNo       string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"room_no"`
	Floor        *int      `json:"floor,omitempty"`
	RoomTypeID   int64     `gorm:"index;not null" json:"room_type_id"`
	RoomStatusID int64     `gorm:"index;not null" json:"room_status_id"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	RoomType   *RoomType   `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
	RoomStatus *RoomStatus `gorm:"foreignKey:RoomStatusID" json:"room_status,omitempty"`
	Bookings   []Booking   `gorm:"foreignKey:RoomID" json:"bookings,omitempty"`
}

// TableName 表名
func (Room) TableName() string {
	return "rooms"
}
