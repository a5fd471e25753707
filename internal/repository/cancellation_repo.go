package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
)

// CancellationSpec 取消记录查询规格
var CancellationSpec = &query.Spec{
	DefaultSort: "cancellations.created_at DESC",
	Filterable: map[string]string{
		"id":          "cancellations.id",
		"booking_id":  "cancellations.booking_id",
		"staff_id":    "cancellations.staff_id",
		"cancel_date": "cancellations.cancel_date",
	},
	Sortable: map[string]string{
		"id":          "cancellations.id",
		"cancel_date": "cancellations.cancel_date",
		"created_at":  "cancellations.created_at",
	},
	Relations: map[string]string{
		"booking":          "Booking",
		"booking.customer": "Booking.Customer",
		"staff":            "Staff",
	},
}

// CancellationRepository 取消记录仓储
type CancellationRepository struct {
	db *gorm.DB
}

// NewCancellationRepository 创建取消记录仓储
func NewCancellationRepository(db *gorm.DB) *CancellationRepository {
	return &CancellationRepository{db: db}
}

// Create 创建取消记录
func (r *CancellationRepository) Create(ctx context.Context, cancellation *models.Cancellation) error {
	return r.db.WithContext(ctx).Create(cancellation).Error
}

// GetByID 根据 ID 获取取消记录
func (r *CancellationRepository) GetByID(ctx context.Context, id int64) (*models.Cancellation, error) {
	var cancellation models.Cancellation
	err := r.db.WithContext(ctx).First(&cancellation, id).Error
	if err != nil {
		return nil, err
	}
	return &cancellation, nil
}

// GetByBookingID 根据预订 ID 获取取消记录
func (r *CancellationRepository) GetByBookingID(ctx context.Context, bookingID int64) (*models.Cancellation, error) {
	var cancellation models.Cancellation
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&cancellation).Error
	if err != nil {
		return nil, err
	}
	return &cancellation, nil
}

// Update 更新取消记录
func (r *CancellationRepository) Update(ctx context.Context, cancellation *models.Cancellation) error {
	return r.db.WithContext(ctx).Save(cancellation).Error
}

// Delete 删除取消记录
func (r *CancellationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Cancellation{}, id).Error
}

// Exists 检查取消记录是否存在
func (r *CancellationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cancellation{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindMany 按声明式查询返回取消记录列表
func (r *CancellationRepository) FindMany(ctx context.Context, q *query.Query) ([]models.Cancellation, error) {
	return query.FindMany[models.Cancellation](ctx, r.db, CancellationSpec, q)
}

// FindOne 按声明式查询返回首条匹配的取消记录
func (r *CancellationRepository) FindOne(ctx context.Context, q *query.Query) (*models.Cancellation, error) {
	return query.FindOne[models.Cancellation](ctx, r.db, CancellationSpec, q)
}

// Count 按声明式查询统计取消记录数量
func (r *CancellationRepository) Count(ctx context.Context, q *query.Query) (int64, error) {
	return query.Count[models.Cancellation](ctx, r.db, CancellationSpec, q)
}
