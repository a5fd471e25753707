package account

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/handler"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/response"
	accountService "github.com/dumeirei/hotel-reservation-backend/internal/service/account"
)

// StaffHandler 员工处理器
type StaffHandler struct {
	staffService *accountService.StaffService
}

// NewStaffHandler 创建员工处理器
func NewStaffHandler(staffSvc *accountService.StaffService) *StaffHandler {
	return &StaffHandler{
		staffService: staffSvc,
	}
}

// CreateStaff 创建员工账号
// @Summary 创建员工账号
// @Tags 员工
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body accountService.CreateStaffRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Staff}
// @Router /api/v1/staff [post]
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req accountService.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), &req)
	handler.MustSucceed(c, err, staff)
}

// GetStaff 获取员工详情
// @Summary 获取员工详情
// @Tags 员工
// @Produce json
// @Security Bearer
// @Param id path int true "员工ID"
// @Success 200 {object} response.Response{data=models.Staff}
// @Router /api/v1/staff/{id} [get]
func (h *StaffHandler) GetStaff(c *gin.Context) {
	id, ok := handler.ParseID(c, "员工")
	if !ok {
		return
	}

	staff, err := h.staffService.GetStaff(c.Request.Context(), id)
	handler.MustSucceed(c, err, staff)
}

// ListStaff 获取员工列表
// @Summary 获取员工列表
// @Tags 员工
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/staff [get]
func (h *StaffHandler) ListStaff(c *gin.Context) {
	q := handler.BindQuery(c)
	staff, total, err := h.staffService.ListStaff(c.Request.Context(), q)
	handler.MustSucceedList(c, err, staff, total)
}

// UpdateStaff 更新员工
// @Summary 更新员工
// @Tags 员工
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "员工ID"
// @Param request body accountService.UpdateStaffRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Staff}
// @Router /api/v1/staff/{id} [put]
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id, ok := handler.ParseID(c, "员工")
	if !ok {
		return
	}

	var req accountService.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	staff, err := h.staffService.UpdateStaff(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, staff)
}

// ChangePassword 修改当前员工密码
// @Summary 修改密码
// @Tags 员工
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body accountService.ChangePasswordRequest true "请求参数"
// @Success 200 {object} response.Response
// @Router /api/v1/staff/password [put]
func (h *StaffHandler) ChangePassword(c *gin.Context) {
	staffID, ok := handler.RequireStaffID(c)
	if !ok {
		return
	}

	var req accountService.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	err := h.staffService.ChangePassword(c.Request.Context(), staffID, &req)
	handler.MustSucceed(c, err, nil)
}

// DeleteStaff 删除员工
// @Summary 删除员工
// @Tags 员工
// @Produce json
// @Security Bearer
// @Param id path int true "员工ID"
// @Success 200 {object} response.Response
// @Router /api/v1/staff/{id} [delete]
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id, ok := handler.ParseID(c, "员工")
	if !ok {
		return
	}

	err := h.staffService.DeleteStaff(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}

// RegisterRoutes 注册路由，除修改密码外均要求管理员角色
func (h *StaffHandler) RegisterRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	staff := r.Group("/staff")
	{
		staff.PUT("/password", h.ChangePassword)
		staff.POST("", adminOnly, h.CreateStaff)
		staff.GET("", adminOnly, h.ListStaff)
		staff.GET("/:id", adminOnly, h.GetStaff)
		staff.PUT("/:id", adminOnly, h.UpdateStaff)
		staff.DELETE("/:id", adminOnly, h.DeleteStaff)
	}
}
