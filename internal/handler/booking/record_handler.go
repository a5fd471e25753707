package booking

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/handler"
	bookingService "github.com/dumeirei/hotel-reservation-backend/internal/service/booking"
)

// RecordHandler 入住/退房/取消记录处理器
type RecordHandler struct {
	recordService *bookingService.RecordService
	statusService *bookingService.StatusService
}

// NewRecordHandler 创建记录处理器
func NewRecordHandler(
	recordSvc *bookingService.RecordService,
	statusSvc *bookingService.StatusService,
) *RecordHandler {
	return &RecordHandler{
		recordService: recordSvc,
		statusService: statusSvc,
	}
}

// ListCheckIns 获取入住记录列表
// @Summary 获取入住记录列表
// @Tags 记录
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/check-ins [get]
func (h *RecordHandler) ListCheckIns(c *gin.Context) {
	q := handler.BindQuery(c)
	checkIns, total, err := h.recordService.ListCheckIns(c.Request.Context(), q)
	handler.MustSucceedList(c, err, checkIns, total)
}

// GetCheckIn 获取入住记录
// @Summary 获取入住记录
// @Tags 记录
// @Produce json
// @Security Bearer
// @Param id path int true "入住记录ID"
// @Success 200 {object} response.Response{data=models.CheckIn}
// @Router /api/v1/check-ins/{id} [get]
func (h *RecordHandler) GetCheckIn(c *gin.Context) {
	id, ok := handler.ParseID(c, "入住记录")
	if !ok {
		return
	}
	checkIn, err := h.recordService.GetCheckIn(c.Request.Context(), id)
	handler.MustSucceed(c, err, checkIn)
}

// ListCheckOuts 获取退房记录列表
// @Summary 获取退房记录列表
// @Tags 记录
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/check-outs [get]
func (h *RecordHandler) ListCheckOuts(c *gin.Context) {
	q := handler.BindQuery(c)
	checkOuts, total, err := h.recordService.ListCheckOuts(c.Request.Context(), q)
	handler.MustSucceedList(c, err, checkOuts, total)
}

// GetCheckOut 获取退房记录
// @Summary 获取退房记录
// @Tags 记录
// @Produce json
// @Security Bearer
// @Param id path int true "退房记录ID"
// @Success 200 {object} response.Response{data=models.CheckOut}
// @Router /api/v1/check-outs/{id} [get]
func (h *RecordHandler) GetCheckOut(c *gin.Context) {
	id, ok := handler.ParseID(c, "退房记录")
	if !ok {
		return
	}
	checkOut, err := h.recordService.GetCheckOut(c.Request.Context(), id)
	handler.MustSucceed(c, err, checkOut)
}

// ListCancellations 获取取消记录列表
// @Summary 获取取消记录列表
// @Tags 记录
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /api/v1/cancellations [get]
func (h *RecordHandler) ListCancellations(c *gin.Context) {
	q := handler.BindQuery(c)
	cancellations, total, err := h.recordService.ListCancellations(c.Request.Context(), q)
	handler.MustSucceedList(c, err, cancellations, total)
}

// GetCancellation 获取取消记录
// @Summary 获取取消记录
// @Tags 记录
// @Produce json
// @Security Bearer
// @Param id path int true "取消记录ID"
// @Success 200 {object} response.Response{data=models.Cancellation}
// @Router /api/v1/cancellations/{id} [get]
func (h *RecordHandler) GetCancellation(c *gin.Context) {
	id, ok := handler.ParseID(c, "取消记录")
	if !ok {
		return
	}
	cancellation, err := h.recordService.GetCancellation(c.Request.Context(), id)
	handler.MustSucceed(c, err, cancellation)
}

// ListBookingStatuses 获取预订状态字典
// @Summary 获取预订状态字典
// @Tags 记录
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=[]models.BookingStatus}
// @Router /api/v1/booking-statuses [get]
func (h *RecordHandler) ListBookingStatuses(c *gin.Context) {
	statuses, err := h.statusService.ListStatuses(c.Request.Context())
	handler.MustSucceed(c, err, statuses)
}

// RegisterRoutes 注册路由
func (h *RecordHandler) RegisterRoutes(r *gin.RouterGroup) {
	checkIns := r.Group("/check-ins")
	{
		checkIns.GET("", h.ListCheckIns)
		checkIns.GET("/:id", h.GetCheckIn)
	}
	checkOuts := r.Group("/check-outs")
	{
		checkOuts.GET("", h.ListCheckOuts)
		checkOuts.GET("/:id", h.GetCheckOut)
	}
	cancellations := r.Group("/cancellations")
	{
		cancellations.GET("", h.ListCancellations)
		cancellations.GET("/:id", h.GetCancellation)
	}
	r.GET("/booking-statuses", h.ListBookingStatuses)
}
