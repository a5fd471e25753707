package booking

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/handler"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/response"
	"github.com/dumeirei/hotel-reservation-backend/internal/models"
	bookingService "github.com/dumeirei/hotel-reservation-backend/internal/service/booking"
)

// LifecycleHandler 预订生命周期处理器
type LifecycleHandler struct {
	lifecycleService *bookingService.LifecycleService
}

// NewLifecycleHandler 创建预订生命周期处理器
func NewLifecycleHandler(lifecycleSvc *bookingService.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{
		lifecycleService: lifecycleSvc,
	}
}

// Confirm 确认预订
// @Summary 确认预订
// @Tags 预订流转
// @Produce json
// @Security Bearer
// @Param id path int true "预订ID"
// @Success 200 {object} response.Response{data=models.Booking}
// @Router /api/v1/bookings/{id}/confirm [post]
func (h *LifecycleHandler) Confirm(c *gin.Context) {
	staffID, id, ok := handler.RequireStaffAndParseID(c, "预订")
	if !ok {
		return
	}

	booking, err := h.lifecycleService.Confirm(c.Request.Context(), id, staffID)
	handler.MustSucceed(c, err, booking)
}

// CheckIn 办理入住
// @Summary 办理入住
// @Tags 预订流转
// @Produce json
// @Security Bearer
// @Param id path int true "预订ID"
// @Success 200 {object} response.Response{data=models.Booking}
// @Router /api/v1/bookings/{id}/check-in [post]
func (h *LifecycleHandler) CheckIn(c *gin.Context) {
	staffID, id, ok := handler.RequireStaffAndParseID(c, "预订")
	if !ok {
		return
	}

	booking, err := h.lifecycleService.CheckIn(c.Request.Context(), id, staffID)
	handler.MustSucceed(c, err, booking)
}

// CheckOut 办理退房
// @Summary 办理退房
// @Tags 预订流转
// @Produce json
// @Security Bearer
// @Param id path int true "预订ID"
// @Success 200 {object} response.Response{data=models.Booking}
// @Router /api/v1/bookings/{id}/check-out [post]
func (h *LifecycleHandler) CheckOut(c *gin.Context) {
	staffID, id, ok := handler.RequireStaffAndParseID(c, "预订")
	if !ok {
		return
	}

	booking, err := h.lifecycleService.CheckOut(c.Request.Context(), id, staffID)
	handler.MustSucceed(c, err, booking)
}

// Cancel 取消预订
// @Summary 取消预订
// @Tags 预订流转
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "预订ID"
// @Param request body bookingService.CancelRequest false "取消原因"
// @Success 200 {object} response.Response{data=models.Booking}
// @Router /api/v1/bookings/{id}/cancel [post]
func (h *LifecycleHandler) Cancel(c *gin.Context) {
	staffID, id, ok := handler.RequireStaffAndParseID(c, "预订")
	if !ok {
		return
	}

	var req bookingService.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "参数错误")
			return
		}
	}

	booking, err := h.lifecycleService.Cancel(c.Request.Context(), id, staffID, &req)
	handler.MustSucceed(c, err, booking)
}

// statusRoutes 状态名到状态编号的映射
var statusRoutes = map[string]int64{
	"pending":    models.BookingStatusPending,
	"confirmed":  models.BookingStatusConfirmed,
	"checked-in": models.BookingStatusCheckedIn,
	"completed":  models.BookingStatusCompleted,
	"cancelled":  models.BookingStatusCancelled,
}

// ListByStatus 按状态获取预订列表
// @Summary 按状态获取预订列表
// @Tags 预订流转
// @Produce json
// @Security Bearer
// @Param status path string true "状态名" Enums(pending, confirmed, checked-in, completed, cancelled)
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/bookings/status/{status} [get]
func (h *LifecycleHandler) ListByStatus(c *gin.Context) {
	statusID, ok := statusRoutes[c.Param("status")]
	if !ok {
		response.BadRequest(c, "无效的预订状态")
		return
	}

	q := handler.BindQuery(c)
	bookings, total, err := h.lifecycleService.ListByStatus(c.Request.Context(), statusID, q)
	handler.MustSucceedList(c, err, bookings, total)
}

// Stats 获取各状态预订数量统计
// @Summary 获取预订统计
// @Tags 预订流转
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=bookingService.BookingStats}
// @Router /api/v1/bookings/stats [get]
func (h *LifecycleHandler) Stats(c *gin.Context) {
	stats, err := h.lifecycleService.Stats(c.Request.Context())
	handler.MustSucceed(c, err, stats)
}

// CheckInQRCode 获取入住二维码
// @Summary 获取入住二维码
// @Tags 预订流转
// @Produce json
// @Security Bearer
// @Param id path int true "预订ID"
// @Success 200 {object} response.Response{data=string}
// @Router /api/v1/bookings/{id}/qrcode [get]
func (h *LifecycleHandler) CheckInQRCode(c *gin.Context) {
	id, ok := handler.ParseID(c, "预订")
	if !ok {
		return
	}

	dataURL, err := h.lifecycleService.CheckInQRCode(c.Request.Context(), id)
	handler.MustSucceed(c, err, gin.H{"qr_code": dataURL})
}

// RegisterRoutes 注册路由
func (h *LifecycleHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("/:id/confirm", h.Confirm)
		bookings.POST("/:id/check-in", h.CheckIn)
		bookings.POST("/:id/check-out", h.CheckOut)
		bookings.POST("/:id/cancel", h.Cancel)
		bookings.GET("/:id/qrcode", h.CheckInQRCode)
		bookings.GET("/status/:status", h.ListByStatus)
		bookings.GET("/stats", h.Stats)
	}
}
