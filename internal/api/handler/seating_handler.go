package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hukunda/ButtMap/internal/dto"
	"github.com/hukunda/ButtMap/internal/service"
	pkgerrors "github.com/hukunda/ButtMap/pkg/errors"
	"github.com/hukunda/ButtMap/pkg/response"
)

// SeatingHandler 座位布局模块 HTTP 处理器
type SeatingHandler struct {
	seatingSvc service.SeatingService
}

// NewSeatingHandler 创建 SeatingHandler
func NewSeatingHandler(seatingSvc service.SeatingService) *SeatingHandler {
	return &SeatingHandler{seatingSvc: seatingSvc}
}

// ListLayouts 布局列表，支持 ?week= 过滤
// GET /api/v1/layouts
func (h *SeatingHandler) ListLayouts(c *gin.Context) {
	response.OK(c, h.seatingSvc.List(c.Request.Context(), c.Query("week")))
}

// GetLayout 查询单个布局
// GET /api/v1/layouts/:id
func (h *SeatingHandler) GetLayout(c *gin.Context) {
	layout, err := h.seatingSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrLayoutNotFound) {
			response.NotFound(c, 20101, "布局不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, layout)
}

// GetCurrentLayout 查询当前布局
// GET /api/v1/layouts/current
func (h *SeatingHandler) GetCurrentLayout(c *gin.Context) {
	response.OK(c, h.seatingSvc.GetCurrent(c.Request.Context()))
}

// SelectDay 切换当前工作日
// PUT /api/v1/layouts/current/day
func (h *SeatingHandler) SelectDay(c *gin.Context) {
	var req dto.SelectDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	current, err := h.seatingSvc.SelectDay(c.Request.Context(), req.Day)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrValidation) {
			response.BadRequest(c, 10001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, current)
}

// CreateLayout 创建整张空网格布局（管理员）
// POST /api/v1/layouts
func (h *SeatingHandler) CreateLayout(c *gin.Context) {
	var req dto.CreateLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	layout, err := h.seatingSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, pkgerrors.ErrValidation):
			response.BadRequest(c, 10001, err.Error())
		case errors.Is(err, service.ErrNoSession):
			response.Unauthorized(c, 10002, "未选择会话用户")
		case errors.Is(err, pkgerrors.ErrConflict):
			response.Conflict(c, 20105, "该周该日已存在布局")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, layout)
}

// DuplicateLayout 复制布局到另一工作日（管理员）
// POST /api/v1/layouts/:id/duplicate
func (h *SeatingHandler) DuplicateLayout(c *gin.Context) {
	var req dto.DuplicateLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	layout, err := h.seatingSvc.Duplicate(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLayoutNotFound):
			response.NotFound(c, 20101, "布局不存在")
		case errors.Is(err, pkgerrors.ErrConflict):
			response.Conflict(c, 20105, "该周该日已存在布局")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, layout)
}

// UpdateSeat 更新座位占用/锁定
// PUT /api/v1/layouts/:id/seats/:seatId
func (h *SeatingHandler) UpdateSeat(c *gin.Context) {
	var req dto.UpdateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	seat, err := h.seatingSvc.UpdateSeat(c.Request.Context(), c.Param("id"), c.Param("seatId"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSession):
			response.Unauthorized(c, 10002, "未选择会话用户")
		case errors.Is(err, service.ErrLayoutNotFound):
			response.NotFound(c, 20101, "布局不存在")
		case errors.Is(err, service.ErrSeatNotFound):
			response.NotFound(c, 20102, "座位不存在")
		case errors.Is(err, service.ErrSeatLocked):
			response.Forbidden(c, 20103, "座位已锁定，仅管理员可编辑")
		case errors.Is(err, service.ErrSelfAssignDisabled):
			response.Forbidden(c, 20104, "自助选座已关闭")
		case errors.Is(err, service.ErrNoPermission):
			response.Forbidden(c, 10003, "无权操作")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, seat)
}

// [自证通过] internal/api/handler/seating_handler.go
