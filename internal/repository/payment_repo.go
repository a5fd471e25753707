package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
)

// PaymentSpec 付款记录查询规格
var PaymentSpec = &query.Spec{
	DefaultSort: "payments.created_at DESC",
	Filterable: map[string]string{
		"id":           "payments.id",
		"check_out_id": "payments.check_out_id",
		"staff_id":     "payments.staff_id",
		"payment_date": "payments.payment_date",
	},
	Sortable: map[string]string{
		"id":           "payments.id",
		"amount":       "payments.amount",
		"payment_date": "payments.payment_date",
		"created_at":   "payments.created_at",
	},
	Relations: map[string]string{
		"check_out":          "CheckOut",
		"check_out.check_in": "CheckOut.CheckIn",
		"staff":              "Staff",
	},
}

// PaymentRepository 付款记录仓储
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository 创建付款记录仓储
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create 创建付款记录
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// GetByID 根据 ID 获取付款记录
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).First(&payment, id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByCheckOutID 根据退房记录 ID 获取付款记录
func (r *PaymentRepository) GetByCheckOutID(ctx context.Context, checkOutID int64) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Where("check_out_id = ?", checkOutID).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Update 更新付款记录
func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete 删除付款记录
func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Payment{}, id).Error
}

// Exists 检查付款记录是否存在
func (r *PaymentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindMany 按声明式查询返回付款记录列表
func (r *PaymentRepository) FindMany(ctx context.Context, q *query.Query) ([]models.Payment, error) {
	return query.FindMany[models.Payment](ctx, r.db, PaymentSpec, q)
}

// FindOne 按声明式查询返回首条匹配的付款记录
func (r *PaymentRepository) FindOne(ctx context.Context, q *query.Query) (*models.Payment, error) {
	return query.FindOne[models.Payment](ctx, r.db, PaymentSpec, q)
}

// Count 按声明式查询统计付款记录数量
func (r *PaymentRepository) Count(ctx context.Context, q *query.Query) (int64, error) {
	return query.Count[models.Payment](ctx, r.db, PaymentSpec, q)
}
