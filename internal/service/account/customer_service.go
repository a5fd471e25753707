// Package account 提供客户与员工账号管理服务
package account

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/errors"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/logger"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/utils"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
)

// CustomerService 客户服务
type CustomerService struct {
	customerRepo *repository.CustomerRepository
}

// NewCustomerService 创建客户服务
func NewCustomerService(customerRepo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerRequest 客户信息请求
type CustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Email   *string `json:"email"`
	IDCard  *string `json:"id_card"`
	Address *string `json:"address"`
}

// CreateCustomer 创建客户
func (s *CustomerService) CreateCustomer(ctx context.Context, req *CustomerRequest) (*models.Customer, error) {
	if !utils.ValidatePhone(req.Phone) {
		return nil, errors.ErrPhoneInvalid
	}
	if req.Email != nil && *req.Email != "" && !utils.ValidateEmail(*req.Email) {
		return nil, errors.ErrInvalidParams.WithMessage("无效的邮箱")
	}

	customer := &models.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		IDCard:  req.IDCard,
		Address: req.Address,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("创建客户", logger.CustomerID(customer.ID))
	return customer, nil
}

// GetCustomer 获取客户
func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCustomerNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return customer, nil
}

// GetCustomerByPhone 根据手机号获取客户
func (s *CustomerService) GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByPhone(ctx, phone)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCustomerNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return customer, nil
}

// UpdateCustomer 更新客户
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, req *CustomerRequest) (*models.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if !utils.ValidatePhone(req.Phone) {
		return nil, errors.ErrPhoneInvalid
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.IDCard = req.IDCard
	customer.Address = req.Address

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return customer, nil
}

// DeleteCustomer 删除客户
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	exists, err := s.customerRepo.Exists(ctx, id)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return errors.ErrCustomerNotFound
	}
	return s.customerRepo.Delete(ctx, id)
}

// ListCustomers 按声明式查询返回客户列表及总数
func (s *CustomerService) ListCustomers(ctx context.Context, q *query.Query) ([]models.Customer, int64, error) {
	customers, err := s.customerRepo.FindMany(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	total, err := s.customerRepo.Count(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return customers, total, nil
}
