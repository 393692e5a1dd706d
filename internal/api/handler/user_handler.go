package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hukunda/ButtMap/internal/dto"
	"github.com/hukunda/ButtMap/internal/service"
	pkgerrors "github.com/hukunda/ButtMap/pkg/errors"
	"github.com/hukunda/ButtMap/pkg/response"
)

// UserHandler 用户模块 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers 用户名册
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	response.OK(c, h.userSvc.List(c.Request.Context()))
}

// CreateUser 创建用户（管理员）
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrValidation) {
			response.BadRequest(c, 10001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, user)
}

// GetUser 查询单个用户
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// UpdateUser 更新用户信息（管理员）
// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// GetSession 查询当前会话用户
// GET /api/v1/session
func (h *UserHandler) GetSession(c *gin.Context) {
	response.OK(c, h.userSvc.GetSession(c.Request.Context()))
}

// SetSession 选择当前会话用户
// PUT /api/v1/session
func (h *UserHandler) SetSession(c *gin.Context) {
	var req dto.SelectSessionUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	user, err := h.userSvc.SetSession(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// [自证通过] internal/api/handler/user_handler.go
