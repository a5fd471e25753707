// Package booking 提供预订相关的 HTTP Handler
package booking

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/handler"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/response"
	bookingService "github.com/dumeirei/hotel-reservation-backend/internal/service/booking"
)

// BookingHandler 预订处理器
type BookingHandler struct {
	bookingService *bookingService.BookingService
}

// NewBookingHandler 创建预订处理器
func NewBookingHandler(bookingSvc *bookingService.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingSvc,
	}
}

// CreateBooking 创建预订
// @Summary 创建预订
// @Tags 预订
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body bookingService.CreateBookingRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Booking}
// @Router /api/v1/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	staffID, ok := handler.RequireStaffID(c)
	if !ok {
		return
	}

	var req bookingService.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), staffID, &req)
	handler.MustSucceed(c, err, booking)
}

// GetBooking 获取预订详情
// @Summary 获取预订详情
// @Tags 预订
// @Produce json
// @Security Bearer
// @Param id path int true "预订ID"
// @Success 200 {object} response.Response{data=models.Booking}
// @Router /api/v1/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := handler.ParseID(c, "预订")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	handler.MustSucceed(c, err, booking)
}

// GetBookingByNo 根据预订号获取预订
// @Summary 根据预订号获取预订
// @Tags 预订
// @Produce json
// @Security Bearer
// @Param booking_no path string true "预订号"
// @Success 200 {object} response.Response{data=models.Booking}
// @Router /api/v1/bookings/no/{booking_no} [get]
func (h *BookingHandler) GetBookingByNo(c *gin.Context) {
	bookingNo := c.Param("booking_no")
	if bookingNo == "" {
		response.BadRequest(c, "预订号不能为空")
		return
	}

	booking, err := h.bookingService.GetBookingByNo(c.Request.Context(), bookingNo)
	handler.MustSucceed(c, err, booking)
}

// ListBookings 获取预订列表
// @Summary 获取预订列表
// @Tags 预订
// @Produce json
// @Security Bearer
// @Param skip query int false "跳过条数"
// @Param take query int false "返回条数"
// @Param search query string false "按预订号搜索"
// @Param order_by_field query string false "排序字段"
// @Param order query string false "排序方向 ASC/DESC"
// @Param relations query string false "关联，逗号分隔"
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	q := handler.BindQuery(c)
	bookings, total, err := h.bookingService.ListBookings(c.Request.Context(), q)
	handler.MustSucceedList(c, err, bookings, total)
}

// UpdateBooking 更新预订
// @Summary 更新预订
// @Tags 预订
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "预订ID"
// @Param request body bookingService.UpdateBookingRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.Booking}
// @Router /api/v1/bookings/{id} [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, ok := handler.ParseID(c, "预订")
	if !ok {
		return
	}

	var req bookingService.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, booking)
}

// DeleteBooking 删除预订
// @Summary 删除预订
// @Tags 预订
// @Produce json
// @Security Bearer
// @Param id path int true "预订ID"
// @Success 200 {object} response.Response
// @Router /api/v1/bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := handler.ParseID(c, "预订")
	if !ok {
		return
	}

	err := h.bookingService.DeleteBooking(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}

// ListCustomerBookings 获取客户的预订列表
// @Summary 获取客户的预订列表
// @Tags 预订
// @Produce json
// @Security Bearer
// @Param id path int true "客户ID"
// @Success 200 {object} response.Response{data=[]models.Booking}
// @Router /api/v1/customers/{id}/bookings [get]
func (h *BookingHandler) ListCustomerBookings(c *gin.Context) {
	customerID, ok := handler.ParseID(c, "客户")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByCustomer(c.Request.Context(), customerID)
	handler.MustSucceed(c, err, bookings)
}

// RegisterRoutes 注册路由
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/no/:booking_no", h.GetBookingByNo)
		bookings.GET("/:id", h.GetBooking)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.DELETE("/:id", h.DeleteBooking)
	}
	r.GET("/customers/:id/bookings", h.ListCustomerBookings)
}
