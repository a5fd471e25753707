package booking

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/cache"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/config"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/errors"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/logger"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/metrics"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/qrcode"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/utils"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
	"github.com/dumeirei/hotel-reservation-backend/pkg/sms"
)

// LifecycleService 预订生命周期服务
// 负责确认、入住、退房、取消四个状态流转，每次流转在一个数据库事务内完成
type LifecycleService struct {
	db               *gorm.DB
	bookingRepo      *repository.BookingRepository
	checkInRepo      *repository.CheckInRepository
	checkOutRepo     *repository.CheckOutRepository
	cancellationRepo *repository.CancellationRepository
	sender           sms.Sender
	qrGen            *qrcode.Generator
	cfg              *config.BookingConfig
}

// NewLifecycleService 创建预订生命周期服务
func NewLifecycleService(
	db *gorm.DB,
	bookingRepo *repository.BookingRepository,
	checkInRepo *repository.CheckInRepository,
	checkOutRepo *repository.CheckOutRepository,
	cancellationRepo *repository.CancellationRepository,
	sender sms.Sender,
	cfg *config.BookingConfig,
) *LifecycleService {
	size := cfg.QRCodeSize
	if size <= 0 {
		size = 256
	}
	return &LifecycleService{
		db:               db,
		bookingRepo:      bookingRepo,
		checkInRepo:      checkInRepo,
		checkOutRepo:     checkOutRepo,
		cancellationRepo: cancellationRepo,
		sender:           sender,
		qrGen:            qrcode.NewGenerator(qrcode.WithSize(size)),
		cfg:              cfg,
	}
}

// CancelRequest 取消预订请求
type CancelRequest struct {
	Reason *string `json:"reason"`
}

// BookingStats 各状态的预订数量统计
type BookingStats struct {
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	CheckedIn int64 `json:"checked_in"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	Total     int64 `json:"total"`
}

// loadBooking 在事务内取出预订记录
func (s *LifecycleService) loadBooking(tx *gorm.DB, id int64) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return &booking, nil
}

// Confirm 确认预订：待确认 -> 已确认
func (s *LifecycleService) Confirm(ctx context.Context, id int64, staffID int64) (*models.Booking, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.loadBooking(tx, id)
		if err != nil {
			return err
		}
		if booking.StatusID != models.BookingStatusPending {
			return errors.ErrBookingStatusError.WithMessage("只有待确认的预订可以确认")
		}
		if err := tx.Model(&models.Booking{}).Where("id = ?", id).
			Update("status_id", models.BookingStatusConfirmed).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		metrics.RecordBookingTransitionGlobal("confirm", "failure")
		return nil, err
	}
	metrics.RecordBookingTransitionGlobal("confirm", "success")

	booking, err := s.bookingRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("预订已确认",
		logger.BookingID(booking.ID),
		logger.BookingNo(booking.BookingNo),
		logger.StaffID(staffID),
	)

	// 确认通知在事务外发送，失败不影响流转结果
	if s.sender != nil && booking.Customer != nil {
		if err := s.sender.SendBookingConfirm(ctx, booking.Customer.Phone, booking.BookingNo); err != nil {
			logger.Warn("发送预订确认短信失败",
				logger.BookingNo(booking.BookingNo),
				logger.Err(err),
			)
		}
	}

	return booking, nil
}

// CheckIn 办理入住：已确认 -> 已入住
// 最早可在入住日期前 EarlyCheckInDays 个日历日办理，迟到入住允许但会记录日志
func (s *LifecycleService) CheckIn(ctx context.Context, id int64, staffID int64) (*models.Booking, error) {
	now := time.Now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.loadBooking(tx, id)
		if err != nil {
			return err
		}
		// 重复入住先于状态判断：已入住的预订再次办理时返回冲突而非状态错误
		var count int64
		if err := tx.Model(&models.CheckIn{}).Where("booking_id = ?", id).Count(&count).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		if count > 0 {
			return errors.ErrCheckInExists
		}

		if booking.StatusID != models.BookingStatusConfirmed {
			return errors.ErrBookingStatusError.WithMessage("只有已确认的预订可以办理入住")
		}

		earlyDays := s.cfg.EarlyCheckInDays
		if earlyDays < 0 {
			earlyDays = 0
		}
		earliest := utils.DateOnly(booking.CheckInDate).AddDate(0, 0, -earlyDays)
		if utils.DateOnly(now).Before(earliest) {
			return errors.ErrCheckInTooEarly
		}
		if utils.DateOnly(now).After(utils.DateOnly(booking.CheckInDate)) {
			logger.Warn("迟到入住",
				logger.BookingID(booking.ID),
				logger.BookingNo(booking.BookingNo),
				logger.Time("check_in_date", booking.CheckInDate),
			)
		}

		checkIn := &models.CheckIn{
			BookingID:    booking.ID,
			CheckInDate:  utils.DateOnly(now),
			CheckOutDate: booking.CheckOutDate,
			RoomID:       booking.RoomID,
			CustomerID:   booking.CustomerID,
			StaffID:      staffID,
		}
		if err := tx.Create(checkIn).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}

		if err := tx.Model(&models.Booking{}).Where("id = ?", id).
			Update("status_id", models.BookingStatusCheckedIn).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		metrics.RecordBookingTransitionGlobal("check_in", "failure")
		return nil, err
	}
	metrics.RecordBookingTransitionGlobal("check_in", "success")

	booking, err := s.bookingRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("办理入住",
		logger.BookingID(booking.ID),
		logger.BookingNo(booking.BookingNo),
		logger.StaffID(staffID),
	)
	return booking, nil
}

// CheckOut 办理退房：已入住 -> 已完成
// 退房记录引用对应的入住记录，缺少入住记录时拒绝退房
func (s *LifecycleService) CheckOut(ctx context.Context, id int64, staffID int64) (*models.Booking, error) {
	now := time.Now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.loadBooking(tx, id)
		if err != nil {
			return err
		}
		if booking.StatusID != models.BookingStatusCheckedIn {
			return errors.ErrBookingStatusError.WithMessage("只有已入住的预订可以办理退房")
		}

		var checkIn models.CheckIn
		if err := tx.Where("booking_id = ?", id).First(&checkIn).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrCheckInNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}

		checkOut := &models.CheckOut{
			CheckInID:    checkIn.ID,
			CheckOutDate: utils.DateOnly(now),
			RoomID:       booking.RoomID,
			StaffID:      staffID,
		}
		if err := tx.Create(checkOut).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}

		if err := tx.Model(&models.Booking{}).Where("id = ?", id).
			Update("status_id", models.BookingStatusCompleted).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		metrics.RecordBookingTransitionGlobal("check_out", "failure")
		return nil, err
	}
	metrics.RecordBookingTransitionGlobal("check_out", "success")

	booking, err := s.bookingRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("办理退房",
		logger.BookingID(booking.ID),
		logger.BookingNo(booking.BookingNo),
		logger.StaffID(staffID),
	)
	return booking, nil
}

// Cancel 取消预订：待确认/已确认 -> 已取消
func (s *LifecycleService) Cancel(ctx context.Context, id int64, staffID int64, req *CancelRequest) (*models.Booking, error) {
	now := time.Now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.loadBooking(tx, id)
		if err != nil {
			return err
		}
		if booking.StatusID != models.BookingStatusPending && booking.StatusID != models.BookingStatusConfirmed {
			return errors.ErrBookingStatusError.WithMessage("只有待确认或已确认的预订可以取消")
		}

		cancellation := &models.Cancellation{
			BookingID:  booking.ID,
			CancelDate: utils.DateOnly(now),
			StaffID:    staffID,
		}
		if req != nil {
			cancellation.Reason = req.Reason
		}
		if err := tx.Create(cancellation).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}

		if err := tx.Model(&models.Booking{}).Where("id = ?", id).
			Update("status_id", models.BookingStatusCancelled).Error; err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		metrics.RecordBookingTransitionGlobal("cancel", "failure")
		return nil, err
	}
	metrics.RecordBookingTransitionGlobal("cancel", "success")

	booking, err := s.bookingRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("取消预订",
		logger.BookingID(booking.ID),
		logger.BookingNo(booking.BookingNo),
		logger.StaffID(staffID),
	)
	return booking, nil
}

// ListByStatus 按状态返回预订列表，在调用方查询上叠加状态过滤和默认关联
func (s *LifecycleService) ListByStatus(ctx context.Context, statusID int64, q *query.Query) ([]models.Booking, int64, error) {
	if _, ok := models.BookingStatusNames[statusID]; !ok {
		return nil, 0, errors.ErrBookingStatusNotFound
	}

	merged := query.Merge(q, &query.Query{
		Filter:    map[string]interface{}{"status_id": statusID},
		Relations: []string{"room", "customer", "status"},
	})

	bookings, err := s.bookingRepo.FindMany(ctx, merged)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	total, err := s.bookingRepo.Count(ctx, merged)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return bookings, total, nil
}

// Stats 返回各状态的预订数量，结果短暂缓存
func (s *LifecycleService) Stats(ctx context.Context) (*BookingStats, error) {
	cacheKey := cache.KeyPrefixBookingStats + "counts"

	var stats BookingStats
	if cache.GetClient() != nil {
		if err := cache.Get(ctx, cacheKey, &stats); err == nil {
			metrics.RecordCacheHitGlobal("booking_stats")
			return &stats, nil
		}
		metrics.RecordCacheMissGlobal("booking_stats")
	}

	counts := map[int64]*int64{
		models.BookingStatusPending:   &stats.Pending,
		models.BookingStatusConfirmed: &stats.Confirmed,
		models.BookingStatusCheckedIn: &stats.CheckedIn,
		models.BookingStatusCompleted: &stats.Completed,
		models.BookingStatusCancelled: &stats.Cancelled,
	}
	for statusID, dest := range counts {
		count, err := s.bookingRepo.CountByStatus(ctx, statusID)
		if err != nil {
			return nil, errors.ErrDatabaseError.WithError(err)
		}
		*dest = count
		stats.Total += count
	}

	m := metrics.GetMetrics()
	m.SetBookingsByStatus("pending", float64(stats.Pending))
	m.SetBookingsByStatus("confirmed", float64(stats.Confirmed))
	m.SetBookingsByStatus("checked_in", float64(stats.CheckedIn))
	m.SetBookingsByStatus("completed", float64(stats.Completed))
	m.SetBookingsByStatus("cancelled", float64(stats.Cancelled))

	if cache.GetClient() != nil {
		if err := cache.Set(ctx, cacheKey, &stats, s.cfg.StatsCacheDuration()); err != nil {
			logger.Warn("写入预订统计缓存失败", logger.Err(err))
		}
	}

	return &stats, nil
}

// RefreshStats 丢弃缓存并重新统计，供定时任务调用
func (s *LifecycleService) RefreshStats(ctx context.Context) error {
	if cache.GetClient() != nil {
		if err := cache.Delete(ctx, cache.KeyPrefixBookingStats+"counts"); err != nil {
			logger.Warn("删除预订统计缓存失败", logger.Err(err))
		}
	}
	_, err := s.Stats(ctx)
	return err
}

// CheckInQRCode 为已确认的预订生成入住二维码（Data URL）
func (s *LifecycleService) CheckInQRCode(ctx context.Context, id int64) (string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.ErrBookingNotFound
		}
		return "", errors.ErrDatabaseError.WithError(err)
	}
	if booking.StatusID != models.BookingStatusConfirmed {
		return "", errors.ErrBookingStatusError.WithMessage("只有已确认的预订可以生成入住二维码")
	}

	content := fmt.Sprintf("booking:%s", booking.BookingNo)
	dataURL, err := s.qrGen.GenerateDataURL(content)
	if err != nil {
		return "", errors.ErrInternalError.WithError(err)
	}
	return dataURL, nil
}
