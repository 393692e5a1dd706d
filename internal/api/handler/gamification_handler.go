package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hukunda/ButtMap/internal/dto"
	"github.com/hukunda/ButtMap/internal/service"
	"github.com/hukunda/ButtMap/pkg/response"
)

// GamificationHandler 游戏化模块 HTTP 处理器
type GamificationHandler struct {
	gamSvc service.GamificationService
}

// NewGamificationHandler 创建 GamificationHandler
func NewGamificationHandler(gamSvc service.GamificationService) *GamificationHandler {
	return &GamificationHandler{gamSvc: gamSvc}
}

// ListBadges 徽章目录
// GET /api/v1/badges
func (h *GamificationHandler) ListBadges(c *gin.Context) {
	response.OK(c, h.gamSvc.ListBadges(c.Request.Context()))
}

// AwardBadge 授予徽章
// POST /api/v1/badges/award
func (h *GamificationHandler) AwardBadge(c *gin.Context) {
	var req dto.AwardBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	user, err := h.gamSvc.AwardBadge(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGamificationDisabled):
			response.Forbidden(c, 20201, "游戏化功能已关闭")
		case errors.Is(err, service.ErrBadgeNotFound):
			response.NotFound(c, 20203, "徽章不存在")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, "用户不存在")
		case errors.Is(err, service.ErrBadgeNotEligible):
			response.BadRequest(c, 20204, "未满足徽章解锁条件")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user)
}

// ListChallenges 挑战列表
// GET /api/v1/challenges
func (h *GamificationHandler) ListChallenges(c *gin.Context) {
	response.OK(c, h.gamSvc.ListChallenges(c.Request.Context()))
}

// CompleteChallenge 完成挑战
// POST /api/v1/challenges/:id/complete
func (h *GamificationHandler) CompleteChallenge(c *gin.Context) {
	var req dto.CompleteChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	challenge, err := h.gamSvc.CompleteChallenge(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGamificationDisabled):
			response.Forbidden(c, 20201, "游戏化功能已关闭")
		case errors.Is(err, service.ErrChallengeNotFound):
			response.NotFound(c, 20205, "挑战不存在")
		case errors.Is(err, service.ErrChallengeInactive):
			response.Forbidden(c, 20206, "挑战未开放")
		case errors.Is(err, service.ErrChallengeDone):
			response.Conflict(c, 20208, "已完成过该挑战")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, "用户不存在")
		case errors.Is(err, service.ErrChallengeNotMet):
			response.BadRequest(c, 20207, "当前布局未满足挑战图案")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, challenge)
}

// GetLeaderboard 积分排行榜
// GET /api/v1/leaderboard
func (h *GamificationHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.gamSvc.Leaderboard(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGamificationDisabled):
			response.Forbidden(c, 20201, "游戏化功能已关闭")
		case errors.Is(err, service.ErrLeaderboardHidden):
			response.Forbidden(c, 20202, "排行榜已隐藏")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, entries)
}

// ListEasterEggs 彩蛋目录
// GET /api/v1/easter-eggs
func (h *GamificationHandler) ListEasterEggs(c *gin.Context) {
	response.OK(c, h.gamSvc.ListEasterEggs(c.Request.Context()))
}

// DiscoverEasterEgg 发现彩蛋
// POST /api/v1/easter-eggs/:id/discover
func (h *GamificationHandler) DiscoverEasterEgg(c *gin.Context) {
	var req dto.DiscoverEasterEggRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	egg, err := h.gamSvc.DiscoverEasterEgg(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGamificationDisabled):
			response.Forbidden(c, 20201, "游戏化功能已关闭")
		case errors.Is(err, service.ErrEasterEggNotFound):
			response.NotFound(c, 20209, "彩蛋不存在")
		case errors.Is(err, service.ErrEasterEggFound):
			response.Conflict(c, 20210, "彩蛋已被发现")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, "用户不存在")
		case errors.Is(err, service.ErrEasterEggNotMet):
			response.BadRequest(c, 20211, "当前布局未触发彩蛋图案")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, egg)
}

// RecordActions 记录积分动作
// POST /api/v1/users/:id/actions
func (h *GamificationHandler) RecordActions(c *gin.Context) {
	var req dto.RecordActionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	user, err := h.gamSvc.RecordActions(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGamificationDisabled):
			response.Forbidden(c, 20201, "游戏化功能已关闭")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, "用户不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user)
}

// [自证通过] internal/api/handler/gamification_handler.go
