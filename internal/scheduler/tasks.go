// Package scheduler 提供定时任务
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/cache"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/config"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/utils"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
	bookingService "github.com/dumeirei/hotel-reservation-backend/internal/service/booking"
	"github.com/dumeirei/hotel-reservation-backend/pkg/sms"
)

// TaskHandler 任务处理器
type TaskHandler struct {
	bookingRepo      *repository.BookingRepository
	lifecycleService *bookingService.LifecycleService
	sender           sms.Sender
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(
	bookingRepo *repository.BookingRepository,
	lifecycleSvc *bookingService.LifecycleService,
	sender sms.Sender,
) *TaskHandler {
	return &TaskHandler{
		bookingRepo:      bookingRepo,
		lifecycleService: lifecycleSvc,
		sender:           sender,
	}
}

// RefreshBookingStats 刷新预订统计缓存
func (h *TaskHandler) RefreshBookingStats(ctx context.Context) error {
	return h.lifecycleService.RefreshStats(ctx)
}

// SendCheckInReminders 给今天入住的已确认预订发送提醒短信
func (h *TaskHandler) SendCheckInReminders(ctx context.Context) error {
	if h.sender == nil {
		return nil
	}

	today := utils.DateOnly(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	bookings, err := h.bookingRepo.FindMany(ctx, &query.Query{
		Take:      utils.IntPtr(200),
		Relations: []string{"customer"},
		Filter: map[string]interface{}{
			"status_id":           models.BookingStatusConfirmed,
			"check_in_date_start": today,
			"check_in_date_end":   tomorrow,
		},
	})
	if err != nil {
		return err
	}

	for _, booking := range bookings {
		if booking.Customer == nil || booking.Customer.Phone == "" {
			continue
		}

		// 用 Redis 去重，保证每个预订只提醒一次
		if cache.GetClient() != nil {
			key := fmt.Sprintf("%sremind:%d", cache.KeyPrefixBooking, booking.ID)
			ok, err := cache.SetNX(ctx, key, 1, 48*time.Hour)
			if err == nil && !ok {
				continue
			}
		}

		if err := h.sender.SendCheckInRemind(ctx, booking.Customer.Phone, booking.BookingNo); err != nil {
			log.Printf("[Task] Failed to send check-in reminder for booking %s: %v", booking.BookingNo, err)
		}
	}

	return nil
}

// SetupTasks 设置所有任务
func SetupTasks(scheduler *Scheduler, handler *TaskHandler, cfg *config.BookingConfig) {
	statsInterval := time.Duration(cfg.StatsRefreshInterval) * time.Second
	if statsInterval <= 0 {
		statsInterval = time.Minute
	}

	// 周期性刷新预订统计
	scheduler.AddTask("RefreshBookingStats", statsInterval, handler.RefreshBookingStats)

	// 每小时检查当日待入住的预订并发送提醒
	scheduler.AddTask("SendCheckInReminders", time.Hour, handler.SendCheckInReminders)
}
