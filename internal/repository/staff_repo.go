package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	"github.com/dumeirei/hotel-reservation-backend/internal/query"
)

// StaffSpec 员工资源查询规格
var StaffSpec = &query.Spec{
	DefaultSort: "staffs.created_at DESC",
	Searchable:  []string{"staffs.username", "staffs.name"},
	Filterable: map[string]string{
		"id":       "staffs.id",
		"username": "staffs.username",
		"name":     "staffs.name",
		"role_id":  "staffs.role_id",
		"status":   "staffs.status",
	},
	Sortable: map[string]string{
		"id":         "staffs.id",
		"username":   "staffs.username",
		"created_at": "staffs.created_at",
	},
	Relations: map[string]string{
		"role": "Role",
	},
}

// StaffRepository 员工仓储
type StaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository 创建员工仓储
func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create 创建员工
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

// GetByID 根据 ID 获取员工
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.WithContext(ctx).First(&staff, id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// GetByIDWithRole 根据 ID 获取员工（包含角色）
func (r *StaffRepository) GetByIDWithRole(ctx context.Context, id int64) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.WithContext(ctx).
		Preload("Role").
		First(&staff, id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// GetByUsername 根据用户名获取员工
func (r *StaffRepository) GetByUsername(ctx context.Context, username string) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("username = ?", username).
		First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// Update 更新员工
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	return r.db.WithContext(ctx).Save(staff).Error
}

// UpdateLastLogin 更新最后登录时间
func (r *StaffRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Staff{}).Where("id = ?", id).Update("last_login_at", at).Error
}

// UpdatePassword 更新密码
func (r *StaffRepository) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	return r.db.WithContext(ctx).Model(&models.Staff{}).Where("id = ?", id).Update("password", hashed).Error
}

// Delete 删除员工
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Staff{}, id).Error
}

// Exists 检查员工是否存在
func (r *StaffRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Staff{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByUsername 检查用户名是否已被使用
func (r *StaffRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Staff{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// FindMany 按声明式查询返回员工列表
func (r *StaffRepository) FindMany(ctx context.Context, q *query.Query) ([]models.Staff, error) {
	return query.FindMany[models.Staff](ctx, r.db, StaffSpec, q)
}

// FindOne 按声明式查询返回首条匹配的员工
func (r *StaffRepository) FindOne(ctx context.Context, q *query.Query) (*models.Staff, error) {
	return query.FindOne[models.Staff](ctx, r.db, StaffSpec, q)
}

// Count 按声明式查询统计员工数量
func (r *StaffRepository) Count(ctx context.Context, q *query.Query) (int64, error) {
	return query.Count[models.Staff](ctx, r.db, StaffSpec, q)
}
