// Package payment 提供支付相关的 HTTP Handler
package payment

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/handler"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/response"
	paymentService "github.com/dumeirei/hotel-reservation-backend/internal/service/payment"
)

// Handler 支付处理器
type Handler struct {
	paymentService *paymentService.PaymentService
}

// NewHandler 创建支付处理器
func NewHandler(paymentSvc *paymentService.PaymentService) *Handler {
	return &Handler{
		paymentService: paymentSvc,
	}
}

// CreatePayment 登记支付
// @Summary 登记支付
// @Tags 支付
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body paymentService.CreatePaymentRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Payment}
// @Router /api/v1/payments [post]
func (h *Handler) CreatePayment(c *gin.Context) {
	staffID, ok := handler.RequireStaffID(c)
	if !ok {
		return
	}

	var req paymentService.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), staffID, &req)
	handler.MustSucceed(c, err, payment)
}

// GetPayment 获取支付记录
// @Summary 获取支付记录
// @Tags 支付
// @Produce json
// @Security Bearer
// @Param id path int true "支付记录ID"
// @Success 200 {object} response.Response{data=models.Payment}
// @Router /api/v1/payments/{id} [get]
func (h *Handler) GetPayment(c *gin.Context) {
	id, ok := handler.ParseID(c, "支付记录")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	handler.MustSucceed(c, err, payment)
}

// GetPaymentByCheckOut 按退房记录查询支付
// @Summary 按退房记录查询支付
// @Tags 支付
// @Produce json
// @Security Bearer
// @Param check_out_id path int true "退房记录ID"
// @Success 200 {object} response.Response{data=models.Payment}
// @Router /api/v1/payments/check-out/{check_out_id} [get]
func (h *Handler) GetPaymentByCheckOut(c *gin.Context) {
	checkOutID, ok := handler.ParseParamID(c, "check_out_id", "退房记录")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPaymentByCheckOut(c.Request.Context(), checkOutID)
	handler.MustSucceed(c, err, payment)
}

// ListPayments 获取支付记录列表
// @Summary 获取支付记录列表
// @Tags 支付
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	q := handler.BindQuery(c)
	payments, total, err := h.paymentService.ListPayments(c.Request.Context(), q)
	handler.MustSucceedList(c, err, payments, total)
}

// DeletePayment 删除支付记录
// @Summary 删除支付记录
// @Tags 支付
// @Produce json
// @Security Bearer
// @Param id path int true "支付记录ID"
// @Success 200 {object} response.Response
// @Router /api/v1/payments/{id} [delete]
func (h *Handler) DeletePayment(c *gin.Context) {
	id, ok := handler.ParseID(c, "支付记录")
	if !ok {
		return
	}

	err := h.paymentService.DeletePayment(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}

// RegisterRoutes 注册路由
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	{
		payments.POST("", h.CreatePayment)
		payments.GET("", h.ListPayments)
		payments.GET("/:id", h.GetPayment)
		payments.GET("/check-out/:check_out_id", h.GetPaymentByCheckOut)
		payments.DELETE("/:id", h.DeletePayment)
	}
}
