// Package repository 提供数据访问层
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
)

// BookingSpec 预订资源查询规格
var BookingSpec = &query.Spec{
	DefaultSort: "bookings.created_at DESC",
	Searchable:  []string{"bookings.booking_no"},
	Filterable: map[string]string{
		"id":             "bookings.id",
		"booking_no":     "bookings.booking_no",
		"room_id":        "bookings.room_id",
		"customer_id":    "bookings.customer_id",
		"staff_id":       "bookings.staff_id",
		"status_id":      "bookings.status_id",
		"booking_date":   "bookings.booking_date",
		"check_in_date":  "bookings.check_in_date",
		"check_out_date": "bookings.check_out_date",
	},
	Sortable: map[string]string{
		"id":             "bookings.id",
		"booking_date":   "bookings.booking_date",
		"check_in_date":  "bookings.check_in_date",
		"check_out_date": "bookings.check_out_date",
		"created_at":     "bookings.created_at",
	},
	Relations: map[string]string{
		"room":               "Room",
		"room.room_type":     "Room.RoomType",
		"room.room_status":   "Room.RoomStatus",
		"customer":           "Customer",
		"staff":              "Staff",
		"status":             "Status",
		"check_in":           "CheckIn",
		"check_in.check_out": "CheckIn.CheckOut",
		"cancellation":       "Cancellation",
	},
}

// BookingRepository 预订仓储
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository 创建预订仓储
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create 创建预订
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// GetByID 根据 ID 获取预订
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByIDWithDetails 根据 ID 获取预订（包含关联信息）
func (r *BookingRepository) GetByIDWithDetails(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Customer").
		Preload("Staff").
		Preload("Status").
		Preload("CheckIn").
		Preload("Cancellation").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByBookingNo 根据预订号获取预订
func (r *BookingRepository) GetByBookingNo(ctx context.Context, bookingNo string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("booking_no = ?", bookingNo).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Update 更新预订
func (r *BookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

// UpdateFields 更新指定字段
func (r *BookingRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Updates(fields).Error
}

// UpdateStatus 更新预订状态
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, statusID int64) error {
	return r.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Update("status_id", statusID).Error
}

// Delete 删除预订
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

// Exists 检查预订是否存在
func (r *BookingRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindMany 按声明式查询返回预订列表
func (r *BookingRepository) FindMany(ctx context.Context, q *query.Query) ([]models.Booking, error) {
	return query.FindMany[models.Booking](ctx, r.db, BookingSpec, q)
}

// FindOne 按声明式查询返回首条匹配的预订
func (r *BookingRepository) FindOne(ctx context.Context, q *query.Query) (*models.Booking, error) {
	return query.FindOne[models.Booking](ctx, r.db, BookingSpec, q)
}

// Count 按声明式查询统计预订数量
func (r *BookingRepository) Count(ctx context.Context, q *query.Query) (int64, error) {
	return query.Count[models.Booking](ctx, r.db, BookingSpec, q)
}

// CountByStatus 统计指定状态的预订数量
func (r *BookingRepository) CountByStatus(ctx context.Context, statusID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("status_id = ?", statusID).
		Count(&count).Error
	return count, err
}

// ListByCustomer 获取客户的预订列表
func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Status").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}
