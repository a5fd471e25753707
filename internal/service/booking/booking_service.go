// Package booking 提供预订管理服务
package booking

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/errors"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/logger"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/utils"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
)

// BookingService 预订服务
type BookingService struct {
	db           *gorm.DB
	bookingRepo  *repository.BookingRepository
	roomRepo     *repository.RoomRepository
	customerRepo *repository.CustomerRepository
}

// NewBookingService 创建预订服务
func NewBookingService(
	db *gorm.DB,
	bookingRepo *repository.BookingRepository,
	roomRepo *repository.RoomRepository,
	customerRepo *repository.CustomerRepository,
) *BookingService {
	return &BookingService{
		db:           db,
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
	}
}

// CreateBookingRequest 创建预订请求
type CreateBookingRequest struct {
	RoomID       int64     `json:"room_id" binding:"required"`
	CustomerID   int64     `json:"customer_id" binding:"required"`
	CheckInDate  time.Time `json:"check_in_date" binding:"required" time_format:"2006-01-02"`
	CheckOutDate time.Time `json:"check_out_date" binding:"required" time_format:"2006-01-02"`
}

// UpdateBookingRequest 更新预订请求
type UpdateBookingRequest struct {
	RoomID       *int64     `json:"room_id"`
	CheckInDate  *time.Time `json:"check_in_date" time_format:"2006-01-02"`
	CheckOutDate *time.Time `json:"check_out_date" time_format:"2006-01-02"`
}

// CreateBooking 创建预订，初始状态为待确认
func (s *BookingService) CreateBooking(ctx context.Context, staffID int64, req *CreateBookingRequest) (*models.Booking, error) {
	if !req.CheckOutDate.After(req.CheckInDate) {
		return nil, errors.ErrInvalidParams.WithMessage("退房日期必须晚于入住日期")
	}

	exists, err := s.roomRepo.Exists(ctx, req.RoomID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return nil, errors.ErrRoomNotFound
	}

	exists, err = s.customerRepo.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return nil, errors.ErrCustomerNotFound
	}

	booking := &models.Booking{
		BookingNo:    utils.GenerateBookingNo(),
		BookingDate:  utils.DateOnly(time.Now()),
		CheckInDate:  utils.DateOnly(req.CheckInDate),
		CheckOutDate: utils.DateOnly(req.CheckOutDate),
		RoomID:       req.RoomID,
		CustomerID:   req.CustomerID,
		StaffID:      staffID,
		StatusID:     models.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("创建预订",
		logger.BookingID(booking.ID),
		logger.BookingNo(booking.BookingNo),
		logger.RoomID(booking.RoomID),
		logger.CustomerID(booking.CustomerID),
		logger.StaffID(staffID),
	)

	return booking, nil
}

// GetBooking 获取预订详情
func (s *BookingService) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return booking, nil
}

// GetBookingByNo 根据预订号获取预订
func (s *BookingService) GetBookingByNo(ctx context.Context, bookingNo string) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByBookingNo(ctx, bookingNo)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return booking, nil
}

// UpdateBooking 更新预订，仅待确认状态可修改
func (s *BookingService) UpdateBooking(ctx context.Context, id int64, req *UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	if booking.StatusID != models.BookingStatusPending {
		return nil, errors.ErrBookingStatusError.WithMessage("只有待确认的预订可以修改")
	}

	if req.RoomID != nil {
		exists, err := s.roomRepo.Exists(ctx, *req.RoomID)
		if err != nil {
			return nil, errors.ErrDatabaseError.WithError(err)
		}
		if !exists {
			return nil, errors.ErrRoomNotFound
		}
		booking.RoomID = *req.RoomID
	}
	if req.CheckInDate != nil {
		booking.CheckInDate = utils.DateOnly(*req.CheckInDate)
	}
	if req.CheckOutDate != nil {
		booking.CheckOutDate = utils.DateOnly(*req.CheckOutDate)
	}
	if !booking.CheckOutDate.After(booking.CheckInDate) {
		return nil, errors.ErrInvalidParams.WithMessage("退房日期必须晚于入住日期")
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return booking, nil
}

// DeleteBooking 删除预订
func (s *BookingService) DeleteBooking(ctx context.Context, id int64) error {
	exists, err := s.bookingRepo.Exists(ctx, id)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return errors.ErrBookingNotFound
	}
	return s.bookingRepo.Delete(ctx, id)
}

// ListBookings 按声明式查询返回预订列表及总数
func (s *BookingService) ListBookings(ctx context.Context, q *query.Query) ([]models.Booking, int64, error) {
	bookings, err := s.bookingRepo.FindMany(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	total, err := s.bookingRepo.Count(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return bookings, total, nil
}

// FindBooking 按声明式查询返回首条匹配的预订
func (s *BookingService) FindBooking(ctx context.Context, q *query.Query) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindOne(ctx, q)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return booking, nil
}

// ListByCustomer 获取客户的全部预订
func (s *BookingService) ListByCustomer(ctx context.Context, customerID int64) ([]models.Booking, error) {
	exists, err := s.customerRepo.Exists(ctx, customerID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return nil, errors.ErrCustomerNotFound
	}
	bookings, err := s.bookingRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return bookings, nil
}
