package booking

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/errors"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/logger"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
)

// StatusService 预订状态字典服务
type StatusService struct {
	statusRepo *repository.BookingStatusRepository
}

// NewStatusService 创建预订状态字典服务
func NewStatusService(statusRepo *repository.BookingStatusRepository) *StatusService {
	return &StatusService{statusRepo: statusRepo}
}

// ListStatuses 返回全部预订状态
func (s *StatusService) ListStatuses(ctx context.Context) ([]models.BookingStatus, error) {
	statuses, err := s.statusRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return statuses, nil
}

// GetStatus 获取预订状态
func (s *StatusService) GetStatus(ctx context.Context, id int64) (*models.BookingStatus, error) {
	status, err := s.statusRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingStatusNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return status, nil
}

// VerifyVocabulary 校验状态字典表与程序常量一致
// 启动时调用，五个基础状态缺失或名称不符都视为配置错误
func (s *StatusService) VerifyVocabulary(ctx context.Context) error {
	statuses, err := s.statusRepo.ListAll(ctx)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}

	byID := make(map[int64]string, len(statuses))
	for _, status := range statuses {
		byID[status.ID] = status.Name
	}

	for id, want := range models.BookingStatusNames {
		got, ok := byID[id]
		if !ok {
			return errors.ErrStatusVocabularyError.WithMessage(
				fmt.Sprintf("状态字典缺少编号 %d（%s）", id, want))
		}
		if got != want {
			return errors.ErrStatusVocabularyError.WithMessage(
				fmt.Sprintf("状态编号 %d 名称不符：期望 %s，实际 %s", id, want, got))
		}
	}

	logger.Info("预订状态字典校验通过", logger.Int("count", len(statuses)))
	return nil
}

// SeedVocabulary 写入缺失的基础状态，空库初始化用
func (s *StatusService) SeedVocabulary(ctx context.Context) error {
	existing, err := s.statusRepo.ListAll(ctx)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	byID := make(map[int64]struct{}, len(existing))
	for _, status := range existing {
		byID[status.ID] = struct{}{}
	}

	for id := int64(models.BookingStatusPending); id <= models.BookingStatusCancelled; id++ {
		if _, ok := byID[id]; ok {
			continue
		}
		status := &models.BookingStatus{ID: id, Name: models.BookingStatusNames[id]}
		if err := s.statusRepo.Create(ctx, status); err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
	}
	return nil
}
