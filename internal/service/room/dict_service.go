package room

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/errors"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
)

// DictService 房型与房间状态字典服务
type DictService struct {
	roomTypeRepo   *repository.RoomTypeRepository
	roomStatusRepo *repository.RoomStatusRepository
}

// NewDictService 创建字典服务
func NewDictService(
	roomTypeRepo *repository.RoomTypeRepository,
	roomStatusRepo *repository.RoomStatusRepository,
) *DictService {
	return &DictService{
		roomTypeRepo:   roomTypeRepo,
		roomStatusRepo: roomStatusRepo,
	}
}

// DictRequest 字典条目请求
type DictRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// ListRoomTypes 返回房型列表
func (s *DictService) ListRoomTypes(ctx context.Context, q *query.Query) ([]models.RoomType, error) {
	types, err := s.roomTypeRepo.FindMany(ctx, q)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return types, nil
}

// GetRoomType 获取房型
func (s *DictService) GetRoomType(ctx context.Context, id int64) (*models.RoomType, error) {
	roomType, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomTypeNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return roomType, nil
}

// CreateRoomType 创建房型
func (s *DictService) CreateRoomType(ctx context.Context, req *DictRequest) (*models.RoomType, error) {
	roomType := &models.RoomType{Name: req.Name, Description: req.Description}
	if err := s.roomTypeRepo.Create(ctx, roomType); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return roomType, nil
}

// UpdateRoomType 更新房型
func (s *DictService) UpdateRoomType(ctx context.Context, id int64, req *DictRequest) (*models.RoomType, error) {
	roomType, err := s.GetRoomType(ctx, id)
	if err != nil {
		return nil, err
	}
	roomType.Name = req.Name
	roomType.Description = req.Description
	if err := s.roomTypeRepo.Update(ctx, roomType); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return roomType, nil
}

// DeleteRoomType 删除房型
func (s *DictService) DeleteRoomType(ctx context.Context, id int64) error {
	exists, err := s.roomTypeRepo.Exists(ctx, id)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return errors.ErrRoomTypeNotFound
	}
	return s.roomTypeRepo.Delete(ctx, id)
}

// ListRoomStatuses 返回房间状态列表
func (s *DictService) ListRoomStatuses(ctx context.Context, q *query.Query) ([]models.RoomStatus, error) {
	statuses, err := s.roomStatusRepo.FindMany(ctx, q)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return statuses, nil
}

// GetRoomStatus 获取房间状态
func (s *DictService) GetRoomStatus(ctx context.Context, id int64) (*models.RoomStatus, error) {
	roomStatus, err := s.roomStatusRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomStatusNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return roomStatus, nil
}

// CreateRoomStatus 创建房间状态
func (s *DictService) CreateRoomStatus(ctx context.Context, req *DictRequest) (*models.RoomStatus, error) {
	roomStatus := &models.RoomStatus{Name: req.Name, Description: req.Description}
	if err := s.roomStatusRepo.Create(ctx, roomStatus); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return roomStatus, nil
}

// UpdateRoomStatus 更新房间状态
func (s *DictService) UpdateRoomStatus(ctx context.Context, id int64, req *DictRequest) (*models.RoomStatus, error) {
	roomStatus, err := s.GetRoomStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	roomStatus.Name = req.Name
	roomStatus.Description = req.Description
	if err := s.roomStatusRepo.Update(ctx, roomStatus); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return roomStatus, nil
}

// DeleteRoomStatus 删除房间状态
func (s *DictService) DeleteRoomStatus(ctx context.Context, id int64) error {
	exists, err := s.roomStatusRepo.Exists(ctx, id)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return errors.ErrRoomStatusNotFound
	}
	return s.roomStatusRepo.Delete(ctx, id)
}
