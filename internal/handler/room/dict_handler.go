package room

import (
	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-reservation-backend/internal/common/handler"
	"github.com/dumeirei/hotel-reservation-backend/internal/common/response"
	roomService "github.com/dumeirei/hotel-reservation-backend/internal/service/room"
)

// DictHandler 房型与房间状态字典处理器
type DictHandler struct {
	dictService *roomService.DictService
}

// NewDictHandler 创建字典处理器
func NewDictHandler(dictSvc *roomService.DictService) *DictHandler {
	return &DictHandler{
		dictService: dictSvc,
	}
}

// ListRoomTypes 获取房型列表
// @Summary 获取房型列表
// @Tags 房间字典
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=[]models.RoomType}
// @Router /api/v1/room-types [get]
func (h *DictHandler) ListRoomTypes(c *gin.Context) {
	q := handler.BindQuery(c)
	types, err := h.dictService.ListRoomTypes(c.Request.Context(), q)
	handler.MustSucceed(c, err, types)
}

// CreateRoomType 创建房型
// @Summary 创建房型
// @Tags 房间字典
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body roomService.DictRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.RoomType}
// @Router /api/v1/room-types [post]
func (h *DictHandler) CreateRoomType(c *gin.Context) {
	var req roomService.DictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}
	roomType, err := h.dictService.CreateRoomType(c.Request.Context(), &req)
	handler.MustSucceed(c, err, roomType)
}

// UpdateRoomType 更新房型
// @Summary 更新房型
// @Tags 房间字典
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "房型ID"
// @Param request body roomService.DictRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.RoomType}
// @Router /api/v1/room-types/{id} [put]
func (h *DictHandler) UpdateRoomType(c *gin.Context) {
	id, ok := handler.ParseID(c, "房型")
	if !ok {
		return
	}
	var req roomService.DictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}
	roomType, err := h.dictService.UpdateRoomType(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, roomType)
}

// DeleteRoomType 删除房型
// @Summary 删除房型
// @Tags 房间字典
// @Produce json
// @Security Bearer
// @Param id path int true "房型ID"
// @Success 200 {object} response.Response
// @Router /api/v1/room-types/{id} [delete]
func (h *DictHandler) DeleteRoomType(c *gin.Context) {
	id, ok := handler.ParseID(c, "房型")
	if !ok {
		return
	}
	err := h.dictService.DeleteRoomType(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}

// ListRoomStatuses 获取房间状态列表
// @Summary 获取房间状态列表
// @Tags 房间字典
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=[]models.RoomStatus}
// @Router /api/v1/room-statuses [get]
func (h *DictHandler) ListRoomStatuses(c *gin.Context) {
	q := handler.BindQuery(c)
	statuses, err := h.dictService.ListRoomStatuses(c.Request.Context(), q)
	handler.MustSucceed(c, err, statuses)
}

// CreateRoomStatus 创建房间状态
// @Summary 创建房间状态
// @Tags 房间字典
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body roomService.DictRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.RoomStatus}
// @Router /api/v1/room-statuses [post]
func (h *DictHandler) CreateRoomStatus(c *gin.Context) {
	var req roomService.DictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}
	roomStatus, err := h.dictService.CreateRoomStatus(c.Request.Context(), &req)
	handler.MustSucceed(c, err, roomStatus)
}

// UpdateRoomStatus 更新房间状态
// @Summary 更新房间状态
// @Tags 房间字典
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "房间状态ID"
// @Param request body roomService.DictRequest true "请求参数"
// @Success 200 {object} response.Response{data=models.RoomStatus}
// @Router /api/v1/room-statuses/{id} [put]
func (h *DictHandler) UpdateRoomStatus(c *gin.Context) {
	id, ok := handler.ParseID(c, "房间状态")
	if !ok {
		return
	}
	var req roomService.DictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}
	roomStatus, err := h.dictService.UpdateRoomStatus(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, roomStatus)
}

// DeleteRoomStatus 删除房间状态
// @Summary 删除房间状态
// @Tags 房间字典
// @Produce json
// @Security Bearer
// @Param id path int true "房间状态ID"
// @Success 200 {object} response.Response
// @Router /api/v1/room-statuses/{id} [delete]
func (h *DictHandler) DeleteRoomStatus(c *gin.Context) {
	id, ok := handler.ParseID(c, "房间状态")
	if !ok {
		return
	}
	err := h.dictService.DeleteRoomStatus(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}

// RegisterRoutes 注册路由
func (h *DictHandler) RegisterRoutes(r *gin.RouterGroup) {
	roomTypes := r.Group("/room-types")
	{
		roomTypes.GET("", h.ListRoomTypes)
		roomTypes.POST("", h.CreateRoomType)
		roomTypes.PUT("/:id", h.UpdateRoomType)
		roomTypes.DELETE("/:id", h.DeleteRoomType)
	}
	roomStatuses := r.Group("/room-statuses")
	{
		roomStatuses.GET("", h.ListRoomStatuses)
		roomStatuses.POST("", h.CreateRoomStatus)
		roomStatuses.PUT("/:id", h.UpdateRoomStatus)
		roomStatuses.DELETE("/:id", h.DeleteRoomStatus)
	}
}
