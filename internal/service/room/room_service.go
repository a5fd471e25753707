// Package room 提供房间管理服务
package room

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/errors"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/logger"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
)

// RoomService 房间服务
type RoomService struct {
	roomRepo       *repository.RoomRepository
	roomTypeRepo   *repository.RoomTypeRepository
	roomStatusRepo *repository.RoomStatusRepository
}

// NewRoomService 创建房间服务
func NewRoomService(
	roomRepo *repository.RoomRepository,
	roomTypeRepo *repository.RoomTypeRepository,
	roomStatusRepo *repository.RoomStatusRepository,
) *RoomService {
	return &RoomService{
		roomRepo:       roomRepo,
		roomTypeRepo:   roomTypeRepo,
		roomStatusRepo: roomStatusRepo,
	}
}

// CreateRoomRequest 创建房间请求
type CreateRoomRequest struct {
	RoomNo       string  `json:"room_no" binding:"required"`
	Floor        *int    `json:"floor"`
	RoomTypeID   int64   `json:"room_type_id" binding:"required"`
	RoomStatusID int64   `json:"room_status_id" binding:"required"`
	Price        float64 `json:"price" binding:"required,min=0"`
	Description  *string `json:"description"`
}

// UpdateRoomRequest 更新房间请求
type UpdateRoomRequest struct {
	Floor        *int     `json:"floor"`
	RoomTypeID   *int64   `json:"room_type_id"`
	RoomStatusID *int64   `json:"room_status_id"`
	Price        *float64 `json:"price"`
	Description  *string  `json:"description"`
}

// CreateRoom 创建房间
func (s *RoomService) CreateRoom(ctx context.Context, req *CreateRoomRequest) (*models.Room, error) {
	if _, err := s.roomRepo.GetByRoomNo(ctx, req.RoomNo); err == nil {
		return nil, errors.ErrRoomExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	if err := s.checkDictionaries(ctx, req.RoomTypeID, req.RoomStatusID); err != nil {
		return nil, err
	}

	room := &models.Room{
		RoomNo:       req.RoomNo,
		Floor:        req.Floor,
		RoomTypeID:   req.RoomTypeID,
		RoomStatusID: req.RoomStatusID,
		Price:        req.Price,
		Description:  req.Description,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("创建房间", logger.RoomID(room.ID), logger.String("room_no", room.RoomNo))
	return room, nil
}

// GetRoom 获取房间详情
func (s *RoomService) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	room, err := s.roomRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return room, nil
}

// UpdateRoom 更新房间
func (s *RoomService) UpdateRoom(ctx context.Context, id int64, req *UpdateRoomRequest) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	if req.RoomTypeID != nil {
		exists, err := s.roomTypeRepo.Exists(ctx, *req.RoomTypeID)
		if err != nil {
			return nil, errors.ErrDatabaseError.WithError(err)
		}
		if !exists {
			return nil, errors.ErrRoomTypeNotFound
		}
		room.RoomTypeID = *req.RoomTypeID
	}
	if req.RoomStatusID != nil {
		exists, err := s.roomStatusRepo.Exists(ctx, *req.RoomStatusID)
		if err != nil {
			return nil, errors.ErrDatabaseError.WithError(err)
		}
		if !exists {
			return nil, errors.ErrRoomStatusNotFound
		}
		room.RoomStatusID = *req.RoomStatusID
	}
	if req.Floor != nil {
		room.Floor = req.Floor
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.Description != nil {
		room.Description = req.Description
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return room, nil
}

// UpdateRoomStatus 更新房间状态
func (s *RoomService) UpdateRoomStatus(ctx context.Context, id int64, roomStatusID int64) error {
	exists, err := s.roomRepo.Exists(ctx, id)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return errors.ErrRoomNotFound
	}
	exists, err = s.roomStatusRepo.Exists(ctx, roomStatusID)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return errors.ErrRoomStatusNotFound
	}
	return s.roomRepo.UpdateStatus(ctx, id, roomStatusID)
}

// DeleteRoom 删除房间
func (s *RoomService) DeleteRoom(ctx context.Context, id int64) error {
	exists, err := s.roomRepo.Exists(ctx, id)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return errors.ErrRoomNotFound
	}
	return s.roomRepo.Delete(ctx, id)
}

// ListRooms 按声明式查询返回房间列表及总数
func (s *RoomService) ListRooms(ctx context.Context, q *query.Query) ([]models.Room, int64, error) {
	rooms, err := s.roomRepo.FindMany(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	total, err := s.roomRepo.Count(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return rooms, total, nil
}

// checkDictionaries 校验房型和房间状态存在
func (s *RoomService) checkDictionaries(ctx context.Context, roomTypeID, roomStatusID int64) error {
	exists, err := s.roomTypeRepo.Exists(ctx, roomTypeID)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return errors.ErrRoomTypeNotFound
	}
	exists, err = s.roomStatusRepo.Exists(ctx, roomStatusID)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return errors.ErrRoomStatusNotFound
	}
	return nil
}
