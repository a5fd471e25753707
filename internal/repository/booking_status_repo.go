package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
)

// BookingStatusSpec 预订状态字典查询规格
var BookingStatusSpec = &query.Spec{
	DefaultSort: "booking_statuses.id ASC",
	Searchable:  []string{"booking_statuses.name", "booking_statuses.description"},
	Filterable: map[string]string{
		"id":   "booking_statuses.id",
		"name": "booking_statuses.name",
	},
	Sortable: map[string]string{
		"id":   "booking_statuses.id",
		"name": "booking_statuses.name",
	},
}

// BookingStatusRepository 预订状态字典仓储
type BookingStatusRepository struct {
	db *gorm.DB
}

// NewBookingStatusRepository 创建预订状态字典仓储
func NewBookingStatusRepository(db *gorm.DB) *BookingStatusRepository {
	return &BookingStatusRepository{db: db}
}

// Create 创建预订状态
func (r *BookingStatusRepository) Create(ctx context.Context, status *models.BookingStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

// GetByID 根据 ID 获取预订状态
func (r *BookingStatusRepository) GetByID(ctx context.Context, id int64) (*models.BookingStatus, error) {
	var status models.BookingStatus
	err := r.db.WithContext(ctx).First(&status, id).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ListAll 获取全部预订状态
func (r *BookingStatusRepository) ListAll(ctx context.Context) ([]models.BookingStatus, error) {
	var statuses []models.BookingStatus
	err := r.db.WithContext(ctx).Order("id ASC").Find(&statuses).Error
	return statuses, err
}

// Update 更新预订状态
func (r *BookingStatusRepository) Update(ctx context.Context, status *models.BookingStatus) error {
	return r.db.WithContext(ctx).Save(status).Error
}

// Delete 删除预订状态
func (r *BookingStatusRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.BookingStatus{}, id).Error
}

// Exists 检查预订状态是否存在
func (r *BookingStatusRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BookingStatus{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindMany 按声明式查询返回预订状态列表
func (r *BookingStatusRepository) FindMany(ctx context.Context, q *query.Query) ([]models.BookingStatus, error) {
	return query.FindMany[models.BookingStatus](ctx, r.db, BookingStatusSpec, q)
}

// Count 按声明式查询统计预订状态数量
func (r *BookingStatusRepository) Count(ctx context.Context, q *query.Query) (int64, error) {
	return query.Count[models.BookingStatus](ctx, r.db, BookingStatusSpec, q)
}
