package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
)

// RoomSpec 房间资源查询规格
var RoomSpec = &query.Spec{
	DefaultSort: "rooms.room_no ASC",
	Searchable:  []string{"rooms.room_no"},
	Filterable: map[string]string{
		"id":             "rooms.id",
		"room_no":        "rooms.room_no",
		"floor":          "rooms.floor",
		"room_type_id":   "rooms.room_type_id",
		"room_status_id": "rooms.room_status_id",
	},
	Sortable: map[string]string{
		"id":         "rooms.id",
		"room_no":    "rooms.room_no",
		"price":      "rooms.price",
		"created_at": "rooms.created_at",
	},
	Relations: map[string]string{
		"room_type":   "RoomType",
		"room_status": "RoomStatus",
		"bookings":    "Bookings",
	},
}

// RoomRepository 房间仓储
type RoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository 创建房间仓储
func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create 创建房间
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// GetByID 根据 ID 获取房间
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByIDWithDetails 根据 ID 获取房间（包含房型和状态）
func (r *RoomRepository) GetByIDWithDetails(ctx context.Context, id int64) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).
		Preload("RoomType").
		Preload("RoomStatus").
		First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByRoomNo 根据房间号获取房间
func (r *RoomRepository) GetByRoomNo(ctx context.Context, roomNo string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).
		Where("room_no = ?", roomNo).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// Update 更新房间
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

// UpdateStatus 更新房间状态
func (r *RoomRepository) UpdateStatus(ctx context.Context, id int64, roomStatusID int64) error {
	return r.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Update("room_status_id", roomStatusID).Error
}

// Delete 删除房间
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Room{}, id).Error
}

// Exists 检查房间是否存在
func (r *RoomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindMany 按声明式查询返回房间列表
func (r *RoomRepository) FindMany(ctx context.Context, q *query.Query) ([]models.Room, error) {
	return query.FindMany[models.Room](ctx, r.db, RoomSpec, q)
}

// FindOne 按声明式查询返回首条匹配的房间
func (r *RoomRepository) FindOne(ctx context.Context, q *query.Query) (*models.Room, error) {
	return query.FindOne[models.Room](ctx, r.db, RoomSpec, q)
}

// Count 按声明式查询统计房间数量
func (r *RoomRepository) Count(ctx context.Context, q *query.Query) (int64, error) {
	return query.Count[models.Room](ctx, r.db, RoomSpec, q)
}
