package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hukunda/ButtMap/config"
	"github.com/hukunda/ButtMap/internal/api/handler"
	"github.com/hukunda/ButtMap/internal/api/router"
	"github.com/hukunda/ButtMap/internal/metrics"
	"github.com/hukunda/ButtMap/internal/service"
	"github.com/hukunda/ButtMap/internal/store"
	applogger "github.com/hukunda/ButtMap/pkg/logger"
	"github.com/hukunda/ButtMap/pkg/storage"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 打开本地快照存储
	snapshots, err := storage.NewSnapshotStore(&cfg.Storage, logger)
	if err != nil {
		logger.Fatal("打开快照存储失败", zap.Error(err))
	}
	logger.Info("快照存储就绪", zap.String("path", cfg.Storage.Path))

	// 4. 注册指标
	metrics.Register()

	// 5. 初始化状态仓库并引导默认数据
	st := store.New(cfg, snapshots, logger)
	st.InitializeDefaultData()

	// 6. 依赖注入: Store → Service → Handler
	svc := service.NewService(st, logger)
	h := handler.NewHandler(svc)

	// 7. 初始化路由
	engine := router.Setup(cfg, h, st, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if err := snapshots.Close(); err != nil {
		logger.Error("关闭快照存储异常", zap.Error(err))
	}

	logger.Info("服务器已关闭")
}
