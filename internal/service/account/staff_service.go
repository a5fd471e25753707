package account

import (
	"context"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/crypto"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/errors"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/logger"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
)

// StaffService 员工服务
type StaffService struct {
	staffRepo *repository.StaffRepository
}

// NewStaffService 创建员工服务
func NewStaffService(staffRepo *repository.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// CreateStaffRequest 创建员工请求
type CreateStaffRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Password string  `json:"password" binding:"required,min=6"`
	Name     string  `json:"name" binding:"required"`
	Phone    *string `json:"phone"`
	RoleID   int64   `json:"role_id" binding:"required"`
}

// UpdateStaffRequest 更新员工请求
type UpdateStaffRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	RoleID *int64  `json:"role_id"`
	Status *int8   `json:"status"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// CreateStaff 创建员工账号
func (s *StaffService) CreateStaff(ctx context.Context, req *CreateStaffRequest) (*models.Staff, error) {
	exists, err := s.staffRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if exists {
		return nil, errors.ErrStaffExists
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, errors.ErrInternalError.WithError(err)
	}

	staff := &models.Staff{
		Username: req.Username,
		Password: hashed,
		Name:     req.Name,
		Phone:    req.Phone,
		RoleID:   req.RoleID,
		Status:   models.StaffStatusActive,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("创建员工账号", logger.StaffID(staff.ID), logger.String("username", staff.Username))
	return staff, nil
}

// GetStaff 获取员工（含角色）
func (s *StaffService) GetStaff(ctx context.Context, id int64) (*models.Staff, error) {
	staff, err := s.staffRepo.GetByIDWithRole(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrStaffNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return staff, nil
}

// UpdateStaff 更新员工
func (s *StaffService) UpdateStaff(ctx context.Context, id int64, req *UpdateStaffRequest) (*models.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrStaffNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Phone != nil {
		staff.Phone = req.Phone
	}
	if req.RoleID != nil {
		staff.RoleID = *req.RoleID
	}
	if req.Status != nil {
		staff.Status = *req.Status
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return staff, nil
}

// ChangePassword 修改密码
func (s *StaffService) ChangePassword(ctx context.Context, id int64, req *ChangePasswordRequest) error {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrStaffNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}

	if !crypto.VerifyPassword(req.OldPassword, staff.Password) {
		return errors.ErrPasswordError
	}

	hashed, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		return errors.ErrInternalError.WithError(err)
	}
	if err := s.staffRepo.UpdatePassword(ctx, id, hashed); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// DeleteStaff 删除员工
func (s *StaffService) DeleteStaff(ctx context.Context, id int64) error {
	exists, err := s.staffRepo.Exists(ctx, id)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return errors.ErrStaffNotFound
	}
	return s.staffRepo.Delete(ctx, id)
}

// ListStaff 按声明式查询返回员工列表及总数
func (s *StaffService) ListStaff(ctx context.Context, q *query.Query) ([]models.Staff, int64, error) {
	staff, err := s.staffRepo.FindMany(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	total, err := s.staffRepo.Count(ctx, q)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	return staff, total, nil
}
