package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
)

// RoomTypeSpec 房型字典查询规格
var RoomTypeSpec = &query.Spec{
	DefaultSort: "room_types.id ASC",
	Searchable:  []string{"room_types.name", "room_types.description"},
	Filterable: map[string]string{
		"id":   "room_types.id",
		"name": "room_types.name",
	},
	Sortable: map[string]string{
		"id":   "room_types.id",
		"name": "room_types.name",
	},
}

// RoomTypeRepository 房型字典仓储
type RoomTypeRepository struct {
	db *gorm.DB
}

// NewRoomTypeRepository 创建房型字典仓储
func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

// Create 创建房型
func (r *RoomTypeRepository) Create(ctx context.Context, roomType *models.RoomType) error {
	return r.db.WithContext(ctx).Create(roomType).Error
}

// GetByID 根据 ID 获取房型
func (r *RoomTypeRepository) GetByID(ctx context.Context, id int64) (*models.RoomType, error) {
	var roomType models.RoomType
	err := r.db.WithContext(ctx).First(&roomType, id).Error
	if err != nil {
		return nil, err
	}
	return &roomType, nil
}

// Update 更新房型
func (r *RoomTypeRepository) Update(ctx context.Context, roomType *models.RoomType) error {
	return r.db.WithContext(ctx).Save(roomType).Error
}

// Delete 删除房型
func (r *RoomTypeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.RoomType{}, id).Error
}

// Exists 检查房型是否存在
func (r *RoomTypeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RoomType{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindMany 按声明式查询返回房型列表
func (r *RoomTypeRepository) FindMany(ctx context.Context, q *query.Query) ([]models.RoomType, error) {
	return query.FindMany[models.RoomType](ctx, r.db, RoomTypeSpec, q)
}

// Count 按声明式查询统计房型数量
func (r *RoomTypeRepository) Count(ctx context.Context, q *query.Query) (int64, error) {
	return query.Count[models.RoomType](ctx, r.db, RoomTypeSpec, q)
}
