package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
)

// RoomStatusSpec 房间状态字典查询规格
var RoomStatusSpec = &query.Spec{
	DefaultSort: "room_statuses.id ASC",
	Searchable:  []string{"room_statuses.name", "room_statuses.description"},
	Filterable: map[string]string{
		"id":   "room_statuses.id",
		"name": "room_statuses.name",
	},
	Sortable: map[string]string{
		"id":   "room_statuses.id",
		"name": "room_statuses.name",
	},
}

// RoomStatusRepository 房间状态字典仓储
type RoomStatusRepository struct {
	db *gorm.DB
}

// NewRoomStatusRepository 创建房间状态字典仓储
func NewRoomStatusRepository(db *gorm.DB) *RoomStatusRepository {
	return &RoomStatusRepository{db: db}
}

// Create 创建房间状态
func (r *RoomStatusRepository) Create(ctx context.Context, roomStatus *models.RoomStatus) error {
	return r.db.WithContext(ctx).Create(roomStatus).Error
}

// GetByID 根据 ID 获取房间状态
func (r *RoomStatusRepository) GetByID(ctx context.Context, id int64) (*models.RoomStatus, error) {
	var roomStatus models.RoomStatus
	err := r.db.WithContext(ctx).First(&roomStatus, id).Error
	if err != nil {
		return nil, err
	}
	return &roomStatus, nil
}

// Update 更新房间状态
func (r *RoomStatusRepository) Update(ctx context.Context, roomStatus *models.RoomStatus) error {
	return r.db.WithContext(ctx).Save(roomStatus).Error
}

// Delete 删除房间状态
func (r *RoomStatusRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.RoomStatus{}, id).Error
}

// Exists 检查房间状态是否存在
func (r *RoomStatusRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RoomStatus{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindMany 按声明式查询返回房间状态列表
func (r *RoomStatusRepository) FindMany(ctx context.Context, q *query.Query) ([]models.RoomStatus, error) {
	return query.FindMany[models.RoomStatus](ctx, r.db, RoomStatusSpec, q)
}

// Count 按声明式查询统计房间状态数量
func (r *RoomStatusRepository) Count(ctx context.Context, q *query.Query) (int64, error) {
	return query.Count[models.RoomStatus](ctx, r.db, RoomStatusSpec, q)
}
