// Package payment 提供付款记录服务
package payment

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/errors"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/logger"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/metrics"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/utils"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
)

// PaymentService 付款记录服务
type PaymentService struct {
	paymentRepo  *repository.PaymentRepository
	checkOutRepo *repository.CheckOutRepository
}

// NewPaymentService 创建付款记录服务
func NewPaymentService(
	paymentRepo *repository.PaymentRepository,
	checkOutRepo *repository.CheckOutRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		checkOutRepo: checkOutRepo,
	}
}

// CreatePaymentRequest 创建付款记录请求
type CreatePaymentRequest struct {
	CheckOutID  int64      `json:"check_out_id" binding:"required"`
	Amount      float64    `json:"amount" binding:"required,min=0"`
	PaymentDate *time.Time `json:"payment_date" time_format:"2006-01-02"`
}

// CreatePayment 创建付款记录，退房记录必须已存在
func (s *PaymentService) CreatePayment(ctx context.Context, staffID int64, req *CreatePaymentRequest) (*models.Payment, error) {
	exists, err := s.checkOutRepo.Exists(ctx, req.CheckOutID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		metrics.GetMetrics().RecordPayment("rejected")
		return nil, errors.ErrPaymentCheckOutMissing
	}

	paymentDate := utils.DateOnly(time.Now())
	if req.PaymentDate != nil {
		paymentDate = utils.DateOnly(*req.PaymentDate)
	}

	payment := &models.Payment{
		CheckOutID:  req.CheckOutID,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		StaffID:     staffID,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		metrics.GetMetrics().RecordPayment("failure")
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	metrics.GetMetrics().RecordPayment("success")
	logger.Info("创建付款记录",
		logger.Int64("payment_id", payment.ID),
		logger.Int64("check_out_id", payment.CheckOutID),
		logger.Float64("amount", payment.Amount),
		logger.StaffID(staffID),
	)
	return payment, nil
}

// GetPayment 获取付款记录
func (s *PaymentService) GetPayment(ctx context.Context, id int64) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPaymentNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return payment, nil
}

// GetPaymentByCheckOut 根据退房记录获取付款记录
func (s *PaymentService) GetPaymentByCheckOut(ctx context.Context, checkOutID int64) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByCheckOutID(ctx, checkOutID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPaymentNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return payment, nil
}

// DeletePayment 删除付款记录
func (s *PaymentService) DeletePayment(ctx context.Context, id int64) error {
	exists, err := s.paymentRepo.Exists(ctx, id)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return errors.ErrPaymentNotFound
	}
	return s.paymentRepo.Delete(ctx, id)
}

// ListPayments 按声明式查询返回付款记录列表及总数
func (s *PaymentService) ListPayments(ctx context.Context, q *query.Query) ([]models.Payment, int64, error) {
	payments, err := s.paymentRepo.FindMany(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	total, err := s.paymentRepo.Count(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return payments, total, nil
}
