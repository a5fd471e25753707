// Package auth 提供员工登录认证服务
package auth

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/crypto"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/errors"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/jwt"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/logger"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
)

// AuthService 认证服务
type AuthService struct {
	staffRepo  *repository.StaffRepository
	jwtManager *jwt.Manager
}

// NewAuthService 创建认证服务
func NewAuthService(staffRepo *repository.StaffRepository, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{
		staffRepo:  staffRepo,
		jwtManager: jwtManager,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresAt    int64      `json:"expires_at"`
	Staff        *StaffInfo `json:"staff"`
}

// StaffInfo 员工信息
type StaffInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

// Login 员工登录
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	staff, err := s.staffRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPasswordError
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	if !crypto.VerifyPassword(req.Password, staff.Password) {
		return nil, errors.ErrPasswordError
	}
	if staff.Status != models.StaffStatusActive {
		return nil, errors.ErrAccountDisabled
	}

	role := ""
	if staff.Role != nil {
		role = staff.Role.Name
	}

	pair, err := s.jwtManager.GenerateTokenPair(staff.ID, jwt.UserTypeStaff, role)
	if err != nil {
		return nil, errors.ErrInternalError.WithError(err)
	}

	if err := s.staffRepo.UpdateLastLogin(ctx, staff.ID, time.Now()); err != nil {
		logger.Warn("更新最后登录时间失败", logger.StaffID(staff.ID), logger.Err(err))
	}

	logger.Info("员工登录", logger.StaffID(staff.ID), logger.String("username", staff.Username))

	return &LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
		Staff: &StaffInfo{
			ID:       staff.ID,
			Username: staff.Username,
			Name:     staff.Name,
			Role:     role,
		},
	}, nil
}

// RefreshToken 刷新令牌
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := s.jwtManager.ParseToken(refreshToken)
	if err != nil {
		if err == jwt.ErrTokenExpired {
			return nil, errors.ErrTokenExpired
		}
		return nil, errors.ErrTokenInvalid
	}

	// 令牌有效期内账号可能已被禁用
	staff, err := s.staffRepo.GetByIDWithRole(ctx, claims.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrStaffNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if staff.Status != models.StaffStatusActive {
		return nil, errors.ErrAccountDisabled
	}

	role := ""
	if staff.Role != nil {
		role = staff.Role.Name
	}
	pair, err := s.jwtManager.GenerateTokenPair(staff.ID, jwt.UserTypeStaff, role)
	if err != nil {
		return nil, errors.ErrTokenRefreshFail.WithError(err)
	}
	return pair, nil
}

// GetProfile 获取当前登录员工信息
func (s *AuthService) GetProfile(ctx context.Context, staffID int64) (*StaffInfo, error) {
	staff, err := s.staffRepo.GetByIDWithRole(ctx, staffID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrStaffNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	role := ""
	if staff.Role != nil {
		role = staff.Role.Name
	}
	return &StaffInfo{
		ID:       staff.ID,
		Username: staff.Username,
		Name:     staff.Name,
		Role:     role,
	}, nil
}
