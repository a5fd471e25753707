package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
)

// CheckOutSpec 退房记录查询规格
var CheckOutSpec = &query.Spec{
	DefaultSort: "check_outs.created_at DESC",
	Filterable: map[string]string{
		"id":             "check_outs.id",
		"check_in_id":    "check_outs.check_in_id",
		"room_id":        "check_outs.room_id",
		"staff_id":       "check_outs.staff_id",
		"check_out_date": "check_outs.check_out_date",
	},
	Sortable: map[string]string{
		"id":             "check_outs.id",
		"check_out_date": "check_outs.check_out_date",
		"created_at":     "check_outs.created_at",
	},
	Relations: map[string]string{
		"check_in":         "CheckIn",
		"check_in.booking": "CheckIn.Booking",
		"room":             "Room",
		"staff":            "Staff",
	},
}

// CheckOutRepository 退房记录仓储
type CheckOutRepository struct {
	db *gorm.DB
}

// NewCheckOutRepository 创建退房记录仓储
func NewCheckOutRepository(db *gorm.DB) *CheckOutRepository {
	return &CheckOutRepository{db: db}
}

// Create 创建退房记录
func (r *CheckOutRepository) Create(ctx context.Context, checkOut *models.CheckOut) error {
	return r.db.WithContext(ctx).Create(checkOut).Error
}

// GetByID 根据 ID 获取退房记录
func (r *CheckOutRepository) GetByID(ctx context.Context, id int64) (*models.CheckOut, error) {
	var checkOut models.CheckOut
	err := r.db.WithContext(ctx).First(&checkOut, id).Error
	if err != nil {
		return nil, err
	}
	return &checkOut, nil
}

// GetByCheckInID 根据入住记录 ID 获取退房记录
func (r *CheckOutRepository) GetByCheckInID(ctx context.Context, checkInID int64) (*models.CheckOut, error) {
	var checkOut models.CheckOut
	err := r.db.WithContext(ctx).
		Where("check_in_id = ?", checkInID).
		First(&checkOut).Error
	if err != nil {
		return nil, err
	}
	return &checkOut, nil
}

// Update 更新退房记录
func (r *CheckOutRepository) Update(ctx context.Context, checkOut *models.CheckOut) error {
	return r.db.WithContext(ctx).Save(checkOut).Error
}

// Delete 删除退房记录
func (r *CheckOutRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.CheckOut{}, id).Error
}

// Exists 检查退房记录是否存在
func (r *CheckOutRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CheckOut{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindMany 按声明式查询返回退房记录列表
func (r *CheckOutRepository) FindMany(ctx context.Context, q *query.Query) ([]models.CheckOut, error) {
	return query.FindMany[models.CheckOut](ctx, r.db, CheckOutSpec, q)
}

// FindOne 按声明式查询返回首条匹配的退房记录
func (r *CheckOutRepository) FindOne(ctx context.Context, q *query.Query) (*models.CheckOut, error) {
	return query.FindOne[models.CheckOut](ctx, r.db, CheckOutSpec, q)
}

// Count 按声明式查询统计退房记录数量
func (r *CheckOutRepository) Count(ctx context.Context, q *query.Query) (int64, error) {
	return query.Count[models.CheckOut](ctx, r.db, CheckOutSpec, q)
}
