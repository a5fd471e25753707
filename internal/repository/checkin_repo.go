package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
)

// CheckInSpec 入住记录查询规格
var CheckInSpec = &query.Spec{
	DefaultSort: "check_ins.created_at DESC",
	Filterable: map[string]string{
		"id":             "check_ins.id",
		"booking_id":     "check_ins.booking_id",
		"room_id":        "check_ins.room_id",
		"customer_id":    "check_ins.customer_id",
		"staff_id":       "check_ins.staff_id",
		"check_in_date":  "check_ins.check_in_date",
		"check_out_date": "check_ins.check_out_date",
	},
	Sortable: map[string]string{
		"id":            "check_ins.id",
		"check_in_date": "check_ins.check_in_date",
		"created_at":    "check_ins.created_at",
	},
	Relations: map[string]string{
		"booking":        "Booking",
		"booking.status": "Booking.Status",
		"room":           "Room",
		"customer":       "Customer",
		"staff":          "Staff",
		"check_out":      "CheckOut",
	},
}

// CheckInRepository 入住记录仓储
type CheckInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository 创建入住记录仓储
func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

// Create 创建入住记录
func (r *CheckInRepository) Create(ctx context.Context, checkIn *models.CheckIn) error {
	return r.db.WithContext(ctx).Create(checkIn).Error
}

// GetByID 根据 ID 获取入住记录
func (r *CheckInRepository) GetByID(ctx context.Context, id int64) (*models.CheckIn, error) {
	var checkIn models.CheckIn
	err := r.db.WithContext(ctx).First(&checkIn, id).Error
	if err != nil {
		return nil, err
	}
	return &checkIn, nil
}

// GetByBookingID 根据预订 ID 获取入住记录
func (r *CheckInRepository) GetByBookingID(ctx context.Context, bookingID int64) (*models.CheckIn, error) {
	var checkIn models.CheckIn
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&checkIn).Error
	if err != nil {
		return nil, err
	}
	return &checkIn, nil
}

// ExistsByBookingID 检查预订是否已有入住记录
func (r *CheckInRepository) ExistsByBookingID(ctx context.Context, bookingID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CheckIn{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error
	return count > 0, err
}

// Update 更新入住记录
func (r *CheckInRepository) Update(ctx context.Context, checkIn *models.CheckIn) error {
	return r.db.WithContext(ctx).Save(checkIn).Error
}

// Delete 删除入住记录
func (r *CheckInRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.CheckIn{}, id).Error
}

// Exists 检查入住记录是否存在
func (r *CheckInRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CheckIn{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindMany 按声明式查询返回入住记录列表
func (r *CheckInRepository) FindMany(ctx context.Context, q *query.Query) ([]models.CheckIn, error) {
	return query.FindMany[models.CheckIn](ctx, r.db, CheckInSpec, q)
}

// FindOne 按声明式查询返回首条匹配的入住记录
func (r *CheckInRepository) FindOne(ctx context.Context, q *query.Query) (*models.CheckIn, error) {
	return query.FindOne[models.CheckIn](ctx, r.db, CheckInSpec, q)
}

// Count 按声明式查询统计入住记录数量
func (r *CheckInRepository) Count(ctx context.Context, q *query.Query) (int64, error) {
	return query.Count[models.CheckIn](ctx, r.db, CheckInSpec, q)
}

// ListByCustomer 获取客户的入住记录列表
func (r *CheckInRepository) ListByCustomer(ctx context.Context, customerID int64) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Booking").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&checkIns).Error
	return checkIns, err
}
