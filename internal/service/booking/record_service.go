package booking

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/errors"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
)

// RecordService 入住/退房/取消记录查询服务
type RecordService struct {
	checkInRepo      *repository.CheckInRepository
	checkOutRepo     *repository.CheckOutRepository
	cancellationRepo *repository.CancellationRepository
}

// NewRecordService 创建记录查询服务
func NewRecordService(
	checkInRepo *repository.CheckInRepository,
	checkOutRepo *repository.CheckOutRepository,
	cancellationRepo *repository.CancellationRepository,
) *RecordService {
	return &RecordService{
		checkInRepo:      checkInRepo,
		checkOutRepo:     checkOutRepo,
		cancellationRepo: cancellationRepo,
	}
}

// GetCheckIn 获取入住记录
func (s *RecordService) GetCheckIn(ctx context.Context, id int64) (*models.CheckIn, error) {
	checkIn, err := s.checkInRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCheckInNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return checkIn, nil
}

// GetCheckInByBooking 获取预订的入住记录
func (s *RecordService) GetCheckInByBooking(ctx context.Context, bookingID int64) (*models.CheckIn, error) {
	checkIn, err := s.checkInRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCheckInNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return checkIn, nil
}

// ListCheckIns 按声明式查询返回入住记录列表及总数
func (s *RecordService) ListCheckIns(ctx context.Context, q *query.Query) ([]models.CheckIn, int64, error) {
	checkIns, err := s.checkInRepo.FindMany(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	total, err := s.checkInRepo.Count(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return checkIns, total, nil
}

// ListCheckInsByCustomer 获取客户的入住记录
func (s *RecordService) ListCheckInsByCustomer(ctx context.Context, customerID int64) ([]models.CheckIn, error) {
	checkIns, err := s.checkInRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return checkIns, nil
}

// GetCheckOut 获取退房记录
func (s *RecordService) GetCheckOut(ctx context.Context, id int64) (*models.CheckOut, error) {
	checkOut, err := s.checkOutRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCheckOutNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return checkOut, nil
}

// ListCheckOuts 按声明式查询返回退房记录列表及总数
func (s *RecordService) ListCheckOuts(ctx context.Context, q *query.Query) ([]models.CheckOut, int64, error) {
	checkOuts, err := s.checkOutRepo.FindMany(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	total, err := s.checkOutRepo.Count(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return checkOuts, total, nil
}

// GetCancellation 获取取消记录
func (s *RecordService) GetCancellation(ctx context.Context, id int64) (*models.Cancellation, error) {
	cancellation, err := s.cancellationRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCancellationNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return cancellation, nil
}

// GetCancellationByBooking 获取预订的取消记录
func (s *RecordService) GetCancellationByBooking(ctx context.Context, bookingID int64) (*models.Cancellation, error) {
	cancellation, err := s.cancellationRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCancellationNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return cancellation, nil
}

// ListCancellations 按声明式查询返回取消记录列表及总数
func (s *RecordService) ListCancellations(ctx context.Context, q *query.Query) ([]models.Cancellation, int64, error) {
	cancellations, err := s.cancellationRepo.FindMany(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	total, err := s.cancellationRepo.Count(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return cancellations, total, nil
}
