package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
)

// CustomerSpec 客户资源查询规格
var CustomerSpec = &query.Spec{
	DefaultSort: "customers.created_at DESC",
	Searchable:  []string{"customers.name", "customers.phone"},
	Filterable: map[string]string{
		"id":    "customers.id",
		"name":  "customers.name",
		"phone": "customers.phone",
		"email": "customers.email",
	},
	Sortable: map[string]string{
		"id":         "customers.id",
		"name":       "customers.name",
		"created_at": "customers.created_at",
	},
	Relations: map[string]string{
		"bookings":        "Bookings",
		"bookings.status": "Bookings.Status",
	},
}

// CustomerRepository 客户仓储
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓储
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create 创建客户
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// GetByID 根据 ID 获取客户
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByPhone 根据手机号获取客户
func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update 更新客户
func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// Delete 删除客户
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Customer{}, id).Error
}

// Exists 检查客户是否存在
func (r *CustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindMany 按声明式查询返回客户列表
func (r *CustomerRepository) FindMany(ctx context.Context, q *query.Query) ([]models.Customer, error) {
	return query.FindMany[models.Customer](ctx, r.db, CustomerSpec, q)
}

// FindOne 按声明式查询返回首条匹配的客户
func (r *CustomerRepository) FindOne(ctx context.Context, q *query.Query) (*models.Customer, error) {
	return query.FindOne[models.Customer](ctx, r.db, CustomerSpec, q)
}

// Count 按声明式查询统计客户数量
func (r *CustomerRepository) Count(ctx context.Context, q *query.Query) (int64, error) {
	return query.Count[models.Customer](ctx, r.db, CustomerSpec, q)
}
