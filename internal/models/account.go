package models

import (
	"time"
)

// Customer 客户模型
type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(20);index;not null" json:"phone"`
	Email     *string   `gorm:"type:varchar(100)" json:"email,omitempty"`
	IDCard    *string   `gorm:"type:varchar(18)" json:"id_card,omitempty"`
	Address   *string   `gorm:"type:varchar(255)" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Bookings []Booking `gorm:"foreignKey:CustomerID" json:"bookings,omitempty"`
}

// TableName 表名
func (Customer) TableName() string {
	return "customers"
}

// Role 员工角色
type Role struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:varchar(255)" json:"description,omitempty"`
}

// TableName 表名
func (Role) TableName() string {
	return "roles"
}

// 角色名称
const (
	RoleAdmin     = "admin"     // 管理员
	RoleReception = "reception" // 前台
)

// Staff 员工模型
type Staff struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password    string     `gorm:"type:varchar(255);not null" json:"-"`
	Name        string     `gorm:"type:varchar(50);not null" json:"name"`
	Phone       *string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	RoleID      int64      `gorm:"index;not null" json:"role_id"`
	Status      int8       `gorm:"type:smallint;not null;default:1" json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

// TableName 表名
func (Staff) TableName() string {
	return "staffs"
}

// StaffStatus 员工账号状态
const (
	StaffStatusDisabled = 0 // 禁用
	StaffStatusActive   = 1 // 正常
)
