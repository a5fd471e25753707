// Package auth 认证服务单元测试
package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/crypto"
	appErrors "github.com/dumeirei/hotel-reservation-backend/internal/common/errors"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/jwt"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/repository"
)

// setupTestAuthService 创建测试用的 AuthService
func setupTestAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Role{}, &models.Staff{})
	require.NoError(t, err)

	jwtManager := jwt.NewManager(&jwt.Config{
		Secret:            "test-secret-key",
		AccessExpireTime:  time.Hour,
		RefreshExpireTime: 24 * time.Hour,
		Issuer:            "hotel-reservation-backend",
	})

	return NewAuthService(repository.NewStaffRepository(db), jwtManager), db
}

// createTestStaff 创建指定密码的员工账号
func createTestStaff(t *testing.T, db *gorm.DB, username, password string, status int8) *models.Staff {
	role := &models.Role{}
	err := db.Where("name = ?", models.RoleReception).First(role).Error
	if err == gorm.ErrRecordNotFound {
		role = &models.Role{Name: models.RoleReception}
		require.NoError(t, db.Create(role).Error)
	} else {
		require.NoError(t, err)
	}

	hashed, err := crypto.HashPassword(password)
	require.NoError(t, err)

	staff := &models.Staff{
		Username: username,
		Password: hashed,
		Name:     "测试员工",
		RoleID:   role.ID,
		Status:   status,
	}
	require.NoError(t, db.Create(staff).Error)
	return staff
}

func TestLogin(t *testing.T) {
	service, db := setupTestAuthService(t)
	ctx := context.Background()

	staff := createTestStaff(t, db, "frontdesk", "pass123456", models.StaffStatusActive)

	t.Run("登录成功", func(t *testing.T) {
		resp, err := service.Login(ctx, &LoginRequest{
			Username: "frontdesk",
			Password: "pass123456",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
		require.NotNil(t, resp.Staff)
		assert.Equal(t, staff.ID, resp.Staff.ID)
		assert.Equal(t, models.RoleReception, resp.Staff.Role)

		// 登录后更新最后登录时间
		var current models.Staff
		require.NoError(t, db.First(&current, staff.ID).Error)
		assert.NotNil(t, current.LastLoginAt)
	})

	t.Run("密码错误", func(t *testing.T) {
		_, err := service.Login(ctx, &LoginRequest{
			Username: "frontdesk",
			Password: "wrongpass",
		})
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrPasswordError.Code, appErr.Code)
	})

	t.Run("用户名不存在时返回相同错误", func(t *testing.T) {
		_, err := service.Login(ctx, &LoginRequest{
			Username: "nobody",
			Password: "pass123456",
		})
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrPasswordError.Code, appErr.Code)
	})

	t.Run("账号已禁用", func(t *testing.T) {
		createTestStaff(t, db, "disabled_staff", "pass123456", models.StaffStatusDisabled)

		_, err := service.Login(ctx, &LoginRequest{
			Username: "disabled_staff",
			Password: "pass123456",
		})
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrAccountDisabled.Code, appErr.Code)
	})
}

func TestRefreshToken(t *testing.T) {
	service, db := setupTestAuthService(t)
	ctx := context.Background()

	createTestStaff(t, db, "frontdesk", "pass123456", models.StaffStatusActive)

	resp, err := service.Login(ctx, &LoginRequest{
		Username: "frontdesk",
		Password: "pass123456",
	})
	require.NoError(t, err)

	t.Run("刷新令牌成功", func(t *testing.T) {
		pair, err := service.RefreshToken(ctx, resp.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("无效令牌", func(t *testing.T) {
		_, err := service.RefreshToken(ctx, "not-a-token")
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrTokenInvalid.Code, appErr.Code)
	})

	t.Run("账号被禁用后拒绝刷新", func(t *testing.T) {
		require.NoError(t, db.Model(&models.Staff{}).
			Where("username = ?", "frontdesk").
			Update("status", models.StaffStatusDisabled).Error)

		_, err := service.RefreshToken(ctx, resp.RefreshToken)
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrAccountDisabled.Code, appErr.Code)
	})
}

func TestGetProfile(t *testing.T) {
	service, db := setupTestAuthService(t)
	ctx := context.Background()

	staff := createTestStaff(t, db, "frontdesk", "pass123456", models.StaffStatusActive)

	t.Run("返回当前员工信息", func(t *testing.T) {
		info, err := service.GetProfile(ctx, staff.ID)
		require.NoError(t, err)
		assert.Equal(t, staff.ID, info.ID)
		assert.Equal(t, "frontdesk", info.Username)
		assert.Equal(t, models.RoleReception, info.Role)
	})

	t.Run("员工不存在", func(t *testing.T) {
		_, err := service.GetProfile(ctx, 99999)
		require.Error(t, err)
		appErr := appErrors.GetAppError(err)
		assert.Equal(t, appErrors.ErrStaffNotFound.Code, appErr.Code)
	})
}
