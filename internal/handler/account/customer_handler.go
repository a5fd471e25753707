// Package account 提供客户与员工账号相关的 HTTP Handler
package account

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/handler"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/response"
	accountService "github.com/dumeirei/hotel-reservation-backend/internal/service/account"
)

// CustomerHandler 客户处理器
type CustomerHandler struct {
	customerService *accountService.CustomerService
}

// NewCustomerHandler 创建客户处理器
func NewCustomerHandler(customerSvc *accountService.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerSvc,
	}
}

// CreateCustomer 创建客户
// @Summary 创建客户
// @Tags 客户
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body accountService.CustomerRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Customer}
// @Router /api/v1/customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req accountService.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &req)
	handler.MustSucceed(c, err, customer)
}

// GetCustomer 获取客户详情
// @Summary 获取客户详情
// @Tags 客户
// @Produce json
// @Security Bearer
// @Param id path int true "客户ID"
// @Success 200 {object} response.Response{data=models.Customer}
// @Router /api/v1/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := handler.ParseID(c, "客户")
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	handler.MustSucceed(c, err, customer)
}

// ListCustomers 获取客户列表
// @Summary 获取客户列表
// @Tags 客户
// @Produce json
// @Security Bearer
// @Param search query string false "按姓名或手机号搜索"
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	q := handler.BindQuery(c)
	customers, total, err := h.customerService.ListCustomers(c.Request.Context(), q)
	handler.MustSucceedList(c, err, customers, total)
}

// UpdateCustomer 更新客户
// @Summary 更新客户
// @Tags 客户
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "客户ID"
// @Param request body accountService.CustomerRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Customer}
// @Router /api/v1/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := handler.ParseID(c, "客户")
	if !ok {
		return
	}

	var req accountService.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, customer)
}

// DeleteCustomer 删除客户
// @Summary 删除客户
// @Tags 客户
// @Produce json
// @Security Bearer
// @Param id path int true "客户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := handler.ParseID(c, "客户")
	if !ok {
		return
	}

	err := h.customerService.DeleteCustomer(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}

// RegisterRoutes 注册路由
func (h *CustomerHandler) RegisterRoutes(r *gin.RouterGroup) {
	customers := r.Group("/customers")
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}
}
